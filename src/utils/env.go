package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads a .env file from the working
// directory. Missing files are not an error: production deployments
// set real environment variables instead.
func InitEnvironmentVariables(goEnv string) error {
	envFile := DEV_ENV_FILENAME
	if goEnv == "production" {
		envFile = PROD_ENV_FILENAME
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debugf("no %s file found, using process environment", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return err
	}

	log.Debugf("loaded environment variables from %s", envFile)
	return nil
}
