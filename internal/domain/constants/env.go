// Package constants holds shared domain-level constants.
package constants

// Deployment environment names used in configuration.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)
