package dto

// InsightRequest represents an analytical query over the dataset
type InsightRequest struct {
	Query string `json:"query" binding:"required" example:"Which students are below 75% attendance?"`
}

// ChatRequest represents one stateless chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"How is my attendance this month?"`
}

// InsightResponse represents the generated free-text answer. The text is
// Markdown-flavored and rendered verbatim by clients.
type InsightResponse struct {
	Text string `json:"text"`
}
