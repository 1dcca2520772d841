package gateway

import "context"

// Role of a conversation turn
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one prior message of a chat
type Turn struct {
	Role Role
	Text string
}

// Source is a grounding citation returned with web-grounded answers
type Source struct {
	Title string `yaml:"title" json:"title"`
	URI   string `yaml:"uri" json:"uri"`
}

// Response is the text of an answer plus its grounding sources
type Response struct {
	Text    string   `yaml:"text" json:"text"`
	Sources []Source `yaml:"sources" json:"sources"`
}

// Request is a single generateContent call
type Request struct {
	Contents          []Turn
	SystemInstruction string
	Grounded          bool
	Temperature       *float64
}

// Fallback answers, shown in place of a response when the gateway is unavailable
const (
	FallbackTerminal = "Error: Kernel panic in AI sub-process."
	FallbackChat     = "Neural link interrupted. Please retry."
	FallbackSearch   = "Search matrix unreachable."
)

// Service defines the operations the desktop needs from the AI backend.
// Implementations never return errors: failures come back as a fallback text with no sources.
type Service interface {
	// ExecuteCommand answers a terminal command
	ExecuteCommand(ctx context.Context, command, systemContext string) Response

	// Chat answers a message given the prior conversation
	Chat(ctx context.Context, message string, history []Turn) Response

	// Search runs a web-grounded query
	Search(ctx context.Context, query string) Response
}

// Temperature is a helper for Request.Temperature
func Temperature(t float64) *float64 {
	return &t
}
