package entities

// ConnectionType defines the semantic of a directed edge
type ConnectionType string

const (
	ConnectionAuthored    ConnectionType = "authored"
	ConnectionViewed      ConnectionType = "viewed"
	ConnectionCommentedOn ConnectionType = "commented_on"
)
