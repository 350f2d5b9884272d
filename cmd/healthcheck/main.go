package main

import (
	"context"
	"os"
	"time"

	"github.com/dmezav/empleados-ms/pkg/empleados"
)

// Container liveness probe: asks the empleados service for its health and
// reports through the exit code.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := empleados.NewClient("", 0, nil)
	if _, err := client.Health(ctx); err != nil {
		os.Exit(1) // marked UNHEALTHY
	}
	os.Exit(0)
}
