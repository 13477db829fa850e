package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that the environment schema version, when declared,
// matches what this build expects. Every variable has a working default,
// so an empty environment is valid.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like running without authentication)
func ValidateEnvWithWarnings() ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("ENV_SCHEMA_VERSION") == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set - add it to your .env file to catch outdated configuration (expected: %s)", ExpectedEnvSchemaVersion))
	}

	switch os.Getenv("API_KEY") {
	case "":
		warnings = append(warnings, "API_KEY is not set - mutating API endpoints will accept unauthenticated requests")
	case "generate_with_openssl_rand_hex_32":
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	return warnings, nil
}
