// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal routes task events to a local HTTP push endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes task events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
