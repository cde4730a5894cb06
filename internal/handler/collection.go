package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/bitsnaps/mockai/internal/chroma"
)

type CollectionHandler struct {
	client *chroma.Client
}

func NewCollectionHandler(client *chroma.Client) *CollectionHandler {
	return &CollectionHandler{client: client}
}

// List handles GET /api/collections, passing the collaborator's collection
// list through unchanged.
func (h *CollectionHandler) List(c *gin.Context) {
	body, err := h.client.ListCollections(c.Request.Context())
	if err != nil {
		log.Errorf("collections: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
