package models

// Message is one turn of the coach conversation.
type Message struct {
	Role  string `json:"role"` // "user" or "coach"
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Feedback is the structured result of an image analysis.
type Feedback struct {
	Score  int      `json:"score"`
	Points []string `json:"points"`
}

// LevelInfo is derived from history, never persisted.
type LevelInfo struct {
	Level       int     `json:"level"`
	Title       string  `json:"title"`
	Progress    float64 `json:"progress"`
	TotalVolume float64 `json:"totalVolume"`
}
