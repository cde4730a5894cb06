package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/bitsnaps/mockai/internal/chat"
	"github.com/bitsnaps/mockai/internal/model"
)

// ChatHandler serves the completion endpoints backed by the mock resolver.
type ChatHandler struct {
	resolver        *chat.Resolver
	streamer        *chat.Streamer
	defaultMockType string
}

func NewChatHandler(resolver *chat.Resolver, streamer *chat.Streamer, defaultMockType string) *ChatHandler {
	return &ChatHandler{
		resolver:        resolver,
		streamer:        streamer,
		defaultMockType: defaultMockType,
	}
}

// Completions handles POST /v1/chat/completions.
func (h *ChatHandler) Completions(c *gin.Context) {
	var req model.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Covers non-boolean stream values and non-array messages.
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": `missing or invalid "messages" in request body`})
		return
	}

	content, ok := h.resolve(c, req.MockType, req.Messages, req.MockFixedContents)
	if !ok {
		return
	}

	if req.Stream != nil && *req.Stream {
		// n is ignored while streaming; one stream is produced regardless.
		h.streamer.Stream(c, req.Model, content)
		return
	}

	c.JSON(http.StatusOK, chat.BuildChatCompletion(req.Model, content, req.N))
}

// TextCompletions handles the legacy POST /v1/completions.
func (h *ChatHandler) TextCompletions(c *gin.Context) {
	var req model.TextCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `missing "prompt" in request body`})
		return
	}

	messages := []model.Message{{Role: "user", Content: req.Prompt}}
	content, ok := h.resolve(c, req.MockType, messages, req.MockFixedContents)
	if !ok {
		return
	}

	if req.Stream != nil && *req.Stream {
		h.streamer.StreamText(c, req.Model, content)
		return
	}

	c.JSON(http.StatusOK, chat.BuildTextCompletion(req.Model, content, req.N))
}

// resolve runs mode parsing plus content resolution and writes the error
// response itself when either fails.
func (h *ChatHandler) resolve(c *gin.Context, mockType string, messages []model.Message, fixedContents *string) (string, bool) {
	mode, err := chat.ParseMode(mockType, h.defaultMockType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	content, err := h.resolver.Resolve(c.Request.Context(), mode, messages, fixedContents)
	if err != nil {
		if errors.Is(err, chat.ErrMissingFixedContents) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", false
		}
		log.Errorf("completions: resolve (%s) failed: %v", mode, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return "", false
	}
	return content, true
}
