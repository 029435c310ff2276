package types

// ChatRequest is the body of POST /api/process/chat. Fields other than
// modelName are passed to the model unchanged.
type ChatRequest struct {
	// Model to run.
	// example: echo
	ModelName string `json:"modelName" example:"echo"`
	// Latest user message.
	// example: hi
	UserMessage string `json:"userMessage" example:"hi"`
	// Conversation so far, including the latest user message.
	ConversationHistory []Message `json:"conversationHistory,omitempty"`
}

// ChatResponse is a chat model reply or a chat error envelope.
type ChatResponse struct {
	// example: model
	Actor string `json:"actor" example:"model"`
	// example: You said: "hi" - Hello from the Python Echo Model!
	Content string `json:"content" example:"You said: \"hi\" - Hello from the Python Echo Model!"`
	// Set only on failure.
	Error string `json:"error,omitempty"`
}

// SummarizeRequest is the body of POST /api/process/summarize.
type SummarizeRequest struct {
	// example: py-summary
	ModelName string `json:"modelName" example:"py-summary"`
	// Text to summarize.
	OriginalText string `json:"originalText"`
}

// SummarizeResponse is a summarizer reply or a summarize error envelope.
type SummarizeResponse struct {
	Actor string `json:"actor,omitempty" example:"model"`
	// example: This is from the Python environment
	Summary string `json:"summary" example:"This is from the Python environment"`
	// Set only on failure.
	Error string `json:"error,omitempty"`
}

// ModelsResponse is returned by GET /api/models and GET /api/models/types/{type}.
type ModelsResponse struct {
	// Available model names.
	// example: ["echo","py-summary"]
	AvailableModels []string `json:"availableModels"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// example: ok
	Status string `json:"status" example:"ok"`
	// RFC 3339 server time.
	Timestamp string `json:"timestamp"`
}

// InstanceStatus describes a cached model instance.
type InstanceStatus struct {
	// example: echo
	Name string `json:"name" example:"echo"`
	// example: CHAT
	Type string `json:"type" example:"CHAT"`
	// example: active
	State string `json:"state" example:"active"`
	// Creation time (unix seconds).
	CreatedAt int64 `json:"created_at_unix" example:"1700000000"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Models exposed to callers.
	Available []ModelInfo `json:"available"`
	// Live instances.
	Instances []InstanceStatus `json:"instances"`
	// Constructions in progress.
	Loading int `json:"loading"`
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// RegisterRequest is sent to the service registry on startup.
type RegisterRequest struct {
	// Public URL of this service.
	URL    string      `json:"url"`
	Models []ModelInfo `json:"models"`
}

// UnregisterRequest is sent to the service registry on shutdown.
type UnregisterRequest struct {
	URL string `json:"url"`
}

// LogEntry is forwarded to the logging service for each process request.
type LogEntry struct {
	// Request start (unix milliseconds).
	Timestamp      int64   `json:"timestamp"`
	Endpoint       string  `json:"endpoint"`
	Input          any     `json:"input"`
	Model          string  `json:"model,omitempty"`
	Output         any     `json:"output"`
	ResponseTimeMs float64 `json:"responseTimeMs"`
}
