package cli

import (
	"os"
	"os/user"
	"strconv"

	"github.com/dataheck/tickload/internal/config"
	"github.com/dataheck/tickload/internal/db"
)

// connectionStringFromEnv returns the first non-empty connection string from
// TICKLOAD_CONNECTION_STRING or DATABASE_URL environment variables.
func connectionStringFromEnv() string {
	if s := os.Getenv("TICKLOAD_CONNECTION_STRING"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// envConnValues captures the standard PostgreSQL environment variables.
type envConnValues struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
	Password string
}

func loadFromEnvironment() envConnValues {
	env := envConnValues{
		Host:     os.Getenv("PGHOST"),
		Username: os.Getenv("PGUSER"),
		Database: os.Getenv("PGDATABASE"),
		SSLMode:  os.Getenv("PGSSLMODE"),
		Password: os.Getenv("PGPASSWORD"),
	}
	if portStr := os.Getenv("PGPORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			env.Port = port
		}
	}
	return env
}

// resolveConnection builds the final connection parameters.
//
// Precedence (highest first):
//  1. Granular flags: --host, --port, --username, --database, --sslmode
//  2. --connection string (or $TICKLOAD_CONNECTION_STRING / $DATABASE_URL)
//  3. PostgreSQL environment variables ($PGHOST, $PGPORT, ...)
//  4. tickload.yaml in the data directory
//  5. Defaults: localhost:5432, database postgres, sslmode prefer
func resolveConnection(flags *loadFlagValues, projectConfig *config.ProjectConfig) (*db.ConnConfig, error) {
	connString := flags.connection
	if connString == "" {
		connString = connectionStringFromEnv()
	}

	var connConfig *db.ConnConfig
	if connString != "" {
		parsed, err := db.ParseConnString(connString)
		if err != nil {
			return nil, err
		}
		connConfig = parsed
	} else {
		connConfig = &db.ConnConfig{
			Host:             "localhost",
			Port:             5432,
			Database:         "postgres",
			SSLMode:          "prefer",
			AdditionalParams: make(map[string]string),
		}

		if projectConfig != nil {
			applyProjectConfig(connConfig, projectConfig)
		}
		applyEnvironment(connConfig, loadFromEnvironment())
	}

	applyGranularFlags(connConfig, flags)

	if connConfig.Username == "" {
		connConfig.Username = currentOSUser()
	}
	if connConfig.AppName == "" {
		connConfig.AppName = "tickload"
	}

	return connConfig, nil
}

func applyProjectConfig(connConfig *db.ConnConfig, projectConfig *config.ProjectConfig) {
	if projectConfig.Connection.Host != "" {
		connConfig.Host = projectConfig.Connection.Host
	}
	if projectConfig.Connection.Port != 0 {
		connConfig.Port = projectConfig.Connection.Port
	}
	if projectConfig.Connection.Username != "" {
		connConfig.Username = projectConfig.Connection.Username
	}
	if projectConfig.Connection.Database != "" {
		connConfig.Database = projectConfig.Connection.Database
	}
	if projectConfig.Connection.SSLMode != "" {
		connConfig.SSLMode = projectConfig.Connection.SSLMode
	}
}

func applyEnvironment(connConfig *db.ConnConfig, env envConnValues) {
	if env.Host != "" {
		connConfig.Host = env.Host
	}
	if env.Port != 0 {
		connConfig.Port = env.Port
	}
	if env.Username != "" {
		connConfig.Username = env.Username
	}
	if env.Database != "" {
		connConfig.Database = env.Database
	}
	if env.SSLMode != "" {
		connConfig.SSLMode = env.SSLMode
	}
}

func applyGranularFlags(connConfig *db.ConnConfig, flags *loadFlagValues) {
	if flags.host != "" {
		connConfig.Host = flags.host
	}
	if flags.port != 0 {
		connConfig.Port = flags.port
	}
	if flags.username != "" {
		connConfig.Username = flags.username
	}
	if flags.database != "" {
		connConfig.Database = flags.database
	}
	if flags.sslMode != "" {
		connConfig.SSLMode = flags.sslMode
	}
}

func currentOSUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "postgres"
}
