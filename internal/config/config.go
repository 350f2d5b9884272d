package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTP     HTTPConfig     // HTTP holds the API server configuration.
	Postgres PostgresConfig // Postgres holds the database configuration.
	Remote   RemoteConfig   // Remote holds the upstream empleados service configuration.
}

// HTTPConfig struct holds the configuration details for the API server.
type HTTPConfig struct {
	Port string // Port is the port the API listens on.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// RemoteConfig struct holds the configuration details for calling the remote empleados service.
type RemoteConfig struct {
	BaseURL      string        // BaseURL is the remote service address, e.g. `http://parte1-ms-service:8000`.
	Timeout      time.Duration // Timeout is the per-request timeout.
	SyncInterval time.Duration // SyncInterval is the time between mirror sync cycles.
}

// MustLoad loads the configuration and panics on failure. A YAML file pointed
// to by CONFIG_PATH is optional; environment variables always take precedence
// so the service can be configured entirely from a Kubernetes Secret, the way
// the original deployment does.
func MustLoad() *Config {
	_ = godotenv.Load(".env")

	viper.Reset()

	viper.SetDefault("env", "local")
	viper.SetDefault("http.port", "8000")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.user", "myuser")
	viper.SetDefault("postgres.password", "mypassword")
	viper.SetDefault("postgres.db_name", "mydb")
	viper.SetDefault("remote.timeout", 5*time.Second)
	viper.SetDefault("remote.sync_interval", 15*time.Minute)

	// Env names match the original k8s manifests.
	_ = viper.BindEnv("env", "ENV")
	_ = viper.BindEnv("http.port", "HTTP_PORT")
	_ = viper.BindEnv("postgres.host", "POSTGRES_HOST")
	_ = viper.BindEnv("postgres.port", "POSTGRES_PORT")
	_ = viper.BindEnv("postgres.user", "POSTGRES_USER")
	_ = viper.BindEnv("postgres.password", "POSTGRES_PASSWORD")
	_ = viper.BindEnv("postgres.db_name", "POSTGRES_DB")
	_ = viper.BindEnv("remote.url", "PARTE1_MS_URL")
	_ = viper.BindEnv("remote.sync_interval", "SYNC_INTERVAL")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	return &Config{
		Env: viper.GetString("env"),
		HTTP: HTTPConfig{
			Port: viper.GetString("http.port"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
		Remote: RemoteConfig{
			BaseURL:      viper.GetString("remote.url"),
			Timeout:      viper.GetDuration("remote.timeout"),
			SyncInterval: viper.GetDuration("remote.sync_interval"),
		},
	}
}
