package config

const (
	EnvPrefix = "MASKRX"

	AppVersion = "1.0"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "MASKRX_APP_ENV"
	EnvPort   = "MASKRX_APP_PORT"

	EnvDBDSN  = "MASKRX_DB_DSN"
	EnvDBHost = "MASKRX_DB_HOST"
	EnvDBUser = "MASKRX_DB_USER"
	EnvDBName = "MASKRX_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
