package dto

// ChatRequest is one user turn addressed to the assistant.
type ChatRequest struct {
	Message   string `json:"message"`
	UserEmail string `json:"userEmail"`
}

// ChatResponse carries the assistant reply, with web-search source titles
// when search was consulted.
type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources,omitempty"`
}
