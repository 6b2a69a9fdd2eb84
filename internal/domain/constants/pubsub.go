// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers accepted by the event publisher configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
