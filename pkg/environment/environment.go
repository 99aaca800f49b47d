// Package environment names the deployment environment and carries it
// through request contexts and log records.
package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Parse maps a configured name, including the short aliases "dev", "stage"
// and "prod", to an Environment. Unknown names fall back to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
