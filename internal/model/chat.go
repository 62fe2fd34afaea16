package model

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one line of the assistant transcript. The transcript is
// in-memory only and never persisted; a fresh session starts with a single
// greeting message.
type ChatMessage struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}
