package model

// ModelDetails mirrors the model_details block of the models listing.
type ModelDetails struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Created     int64    `json:"created"`
	MaxTokens   int      `json:"max_tokens"`
	Endpoint    string   `json:"endpoint"`
	Owner       string   `json:"owner"`
	Permissions []string `json:"permissions"`
}

// ModelRecord is one registered mock model.
type ModelRecord struct {
	ID           string       `json:"id"`
	Object       string       `json:"object"`
	Created      int64        `json:"created"`
	ModelDetails ModelDetails `json:"model_details"`
}

type CreateModelRequest struct {
	VectorDB          string `json:"vectorDB" binding:"required"`
	Collection        string `json:"collection" binding:"required"`
	EmbeddingFunction string `json:"embeddingFunction" binding:"required"`
	Description       string `json:"description"`
}
