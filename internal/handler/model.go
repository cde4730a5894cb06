package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/bitsnaps/mockai/internal/model"
	"github.com/bitsnaps/mockai/internal/repository"
)

type ModelHandler struct {
	repo *repository.ModelRepository
}

func NewModelHandler() *ModelHandler {
	return &ModelHandler{
		repo: repository.NewModelRepository(),
	}
}

// List handles GET /v1/models.
func (h *ModelHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		log.Errorf("models: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if len(list) == 0 {
		list = []*model.ModelRecord{builtinModel()}
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// Create handles POST /v1/models. The duplicate response body is plain text;
// the admin page surfaces it verbatim.
func (h *ModelHandler) Create(c *gin.Context) {
	var req model.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rec, err := h.repo.Create(&req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateModel) {
			c.String(http.StatusConflict, "A model with this Vector DB, Collection and Embedding Function already exists.")
			return
		}
		log.Errorf("models: create failed: %v", err)
		c.String(http.StatusInternalServerError, "Failed to add model")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /v1/models/*id. The route is a wildcard because model
// ids contain a slash. Deleting an unknown id still reports success.
func (h *ModelHandler) Delete(c *gin.Context) {
	id := strings.TrimPrefix(c.Param("id"), "/")

	if err := h.repo.Delete(id); err != nil {
		log.Errorf("models: delete %q failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete model"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Model deleted successfully"})
}

// builtinModel is served when the registry is empty, so that clients probing
// /v1/models before any registration still get a plausible model entry.
func builtinModel() *model.ModelRecord {
	return &model.ModelRecord{
		ID:      "LLMentor/spectrum-128k",
		Object:  "model",
		Created: 1619110515,
		ModelDetails: model.ModelDetails{
			ID:          "text-davinci-003",
			Name:        "Davinci",
			Type:        "text",
			Description: "Davinci is a general purpose AI model created by OpenAI. It is the successor to GPT-3.",
			Created:     1619110515,
			MaxTokens:   4096,
			Endpoint:    "https://api.openai.com",
			Owner:       "openai",
			Permissions: []string{"read", "write"},
		},
	}
}
