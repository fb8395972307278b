package common

import (
	"os"
	"strings"
)

// ServiceName is reported as the module id of the monitored resource.
const ServiceName = "bq-metadata-search"

var (
	// ProjectID is the GCP project that hosts the service (logging, profiler).
	ProjectID string

	// ServiceVersion is the deployed version, "localhost" when unset.
	ServiceVersion string
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	ServiceVersion = GetEnv("SERVICE_VERSION", "localhost")
}

func init() {
	initEnvVariables()
}

// GetEnv returns the value of the environment variable key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// SplitAndTrim splits a comma separated list, dropping empty entries.
func SplitAndTrim(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
