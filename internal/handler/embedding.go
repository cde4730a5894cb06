package handler

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitsnaps/mockai/internal/model"
)

const embeddingDimensions = 1536

var (
	embRng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	embRngMu sync.Mutex
)

type EmbeddingHandler struct{}

func NewEmbeddingHandler() *EmbeddingHandler {
	return &EmbeddingHandler{}
}

// Create handles POST /v1/embeddings with pseudo-random vectors, one per
// input element. Input may be a single string or an array of strings.
func (h *EmbeddingHandler) Create(c *gin.Context) {
	var req model.EmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	count := inputCount(req.Input)
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": `missing or invalid "input" in request body`})
		return
	}

	data := make([]model.Embedding, 0, count)
	for i := 0; i < count; i++ {
		data = append(data, model.Embedding{
			Object:    "embedding",
			Embedding: mockVector(embeddingDimensions),
			Index:     i,
		})
	}

	c.JSON(http.StatusOK, model.EmbeddingResponse{
		Object: "list",
		Data:   data,
		Model:  req.Model,
		Usage:  model.Usage{PromptTokens: 10, TotalTokens: 10},
	})
}

func inputCount(input any) int {
	switch v := input.(type) {
	case string:
		if v == "" {
			return 0
		}
		return 1
	case []any:
		return len(v)
	default:
		return 0
	}
}

func mockVector(dim int) []float64 {
	embRngMu.Lock()
	defer embRngMu.Unlock()

	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = embRng.Float64()*2 - 1
	}
	return vec
}
