// Package constants holds shared domain-level constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types selectable via configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
