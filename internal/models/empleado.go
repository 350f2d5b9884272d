package models

// UserAgent identifies this service in outgoing HTTP requests.
const UserAgent = "empleados-ms/1.0"

// Empleado represents an employee record as stored and served by the service.
type Empleado struct {
	ID       int    `json:"id"`
	Nombres  string `json:"nombres"`
	Telefono string `json:"telefono"`
}

// NuevoEmpleado is the creation payload: the server assigns the identifier.
type NuevoEmpleado struct {
	Nombres  string `json:"nombres"`
	Telefono string `json:"telefono"`
}
