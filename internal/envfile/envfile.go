// Package envfile loads publish settings from STACKPLAN_* environment
// variables, optionally seeded from a .env file.
package envfile

import (
	"fmt"
	"os"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings configures where deploy publishes plan documents.
type Settings struct {
	// S3Endpoint is the object store endpoint from STACKPLAN_S3_ENDPOINT.
	// Empty means AWS S3 itself.
	S3Endpoint string `env:"STACKPLAN_S3_ENDPOINT"`
	// Region is the object store region from STACKPLAN_S3_REGION.
	Region string `env:"STACKPLAN_S3_REGION" envDefault:"us-east-1"`
	// AccessKey is the access key ID from STACKPLAN_S3_ACCESS_KEY.
	AccessKey string `env:"STACKPLAN_S3_ACCESS_KEY"`
	// SecretKey is the secret access key from STACKPLAN_S3_SECRET_KEY.
	SecretKey string `env:"STACKPLAN_S3_SECRET_KEY"`
	// Bucket is the plan bucket from STACKPLAN_S3_BUCKET.
	Bucket string `env:"STACKPLAN_S3_BUCKET" envDefault:"stackplan-plans"`
}

// Credentialed reports whether object store credentials are present.
func (s Settings) Credentialed() bool {
	return s.AccessKey != "" && s.SecretKey != ""
}

// LoadSettings reads settings from the process environment. When envFile
// names an existing .env file it is loaded first without overriding
// variables already set.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Settings{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	var s Settings
	if err := envparse.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}
