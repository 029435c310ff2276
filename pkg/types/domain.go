package types

// ModelInfo identifies an available model.
type ModelInfo struct {
	// Lowercase model identifier.
	// example: echo
	Name string `json:"name" example:"echo"`
	// Model type: CHAT, SUMMARIZE or GENERATE_IMAGE.
	// example: CHAT
	Type string `json:"type" example:"CHAT"`
}

// Message is one entry of a chat conversation.
type Message struct {
	// Who produced the message: user, model or system.
	// example: user
	Actor string `json:"actor" example:"user"`
	// Message text.
	// example: Hello there
	Content string `json:"content" example:"Hello there"`
}
