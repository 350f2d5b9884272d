package empleados_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmezav/empleados-ms/pkg/empleados"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		t.Setenv(empleados.EnvBaseURL, "http://from-env:9000")

		assert.Equal(t, "http://explicit:8000", empleados.ResolveBaseURL("http://explicit:8000"))
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(empleados.EnvBaseURL, "http://custom-host:9000")

		assert.Equal(t, "http://custom-host:9000", empleados.ResolveBaseURL(""))
	})

	t.Run("in-cluster default", func(t *testing.T) {
		t.Setenv(empleados.EnvBaseURL, "")

		assert.Equal(t, "http://parte1-ms-service:8000", empleados.ResolveBaseURL(""))
	})
}

func TestHealth(t *testing.T) {
	t.Run("returns body verbatim", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok","database":"ok"}`))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		body, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "/health", gotPath)
		assert.JSONEq(t, `{"status":"ok","database":"ok"}`, string(body))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		_, err := client.Health(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed JSON response")
	})
}

func TestListEmpleados(t *testing.T) {
	t.Run("returns records in server order", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":2,"nombres":"Ana Gómez","telefono":"555123"},
				{"id":1,"nombres":"Juan Pérez","telefono":"1234567890"}
			]`))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		got, err := client.ListEmpleados(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "/get", gotPath)
		require.Len(t, got, 2)
		assert.Equal(t, empleados.Empleado{ID: 2, Nombres: "Ana Gómez", Telefono: "555123"}, got[0])
		assert.Equal(t, empleados.Empleado{ID: 1, Nombres: "Juan Pérez", Telefono: "1234567890"}, got[1])
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		got, err := client.ListEmpleados(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-2xx status surfaces as ErrUnexpectedStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"db error"}`))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		got, err := client.ListEmpleados(context.Background())

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, empleados.ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("connection failure is not an HTTP-level error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // nothing listens anymore

		client := empleados.NewClient(server.URL, 0, nil)
		_, err := client.ListEmpleados(context.Background())

		require.Error(t, err)
		assert.False(t, errors.Is(err, empleados.ErrUnexpectedStatus))
	})
}

func TestCreateEmpleado(t *testing.T) {
	t.Run("sends exactly the documented fields", func(t *testing.T) {
		var gotPath, gotMethod string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"nombres":"Juan Pérez","telefono":"1234567890"}`))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		body, err := client.CreateEmpleado(context.Background(), empleados.NuevoEmpleado{
			Nombres:  "Juan Pérez",
			Telefono: "1234567890",
		})

		require.NoError(t, err)
		assert.Equal(t, "/post", gotPath)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, map[string]any{"nombres": "Juan Pérez", "telefono": "1234567890"}, gotBody)
		// The created-record payload is passed through untouched.
		assert.JSONEq(t, `{"id":7,"nombres":"Juan Pérez","telefono":"1234567890"}`, string(body))
	})

	t.Run("non-2xx status surfaces as ErrUnexpectedStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"nombres is required"}`))
		}))
		defer server.Close()

		client := empleados.NewClient(server.URL, 0, nil)
		_, err := client.CreateEmpleado(context.Background(), empleados.NuevoEmpleado{})

		require.Error(t, err)
		assert.ErrorIs(t, err, empleados.ErrUnexpectedStatus)
	})
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := empleados.NewClient("http://parte1-ms-service:8000/", 0, nil)

	assert.Equal(t, "http://parte1-ms-service:8000", client.BaseURL())
}
