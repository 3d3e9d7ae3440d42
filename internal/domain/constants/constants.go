// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used for production deployments.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint, mimicking Pub/Sub push.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderKafka publishes events to a Kafka topic.
	PubSubProviderKafka = "kafka"
)
