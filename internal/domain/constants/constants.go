package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published for review lifecycle changes
const (
	EventReviewSubmitted = "review.submitted"
	EventReviewDeleted   = "review.deleted"
)

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
