package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitsnaps/mockai/internal/model"
)

type ImageHandler struct{}

func NewImageHandler() *ImageHandler {
	return &ImageHandler{}
}

// Generate handles POST /v1/images/generations with placeholder image urls.
func (h *ImageHandler) Generate(c *gin.Context) {
	var req model.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `missing "prompt" in request body`})
		return
	}

	n := req.N
	if n <= 0 {
		n = 1
	}
	size := req.Size
	if size == "" {
		size = "1024x1024"
	}

	data := make([]model.ImageData, 0, n)
	for i := 0; i < n; i++ {
		data = append(data, model.ImageData{
			URL: "https://placehold.co/" + size + "?text=" + url.QueryEscape(req.Prompt),
		})
	}

	c.JSON(http.StatusOK, model.ImageResponse{
		Created: time.Now().Unix(),
		Data:    data,
	})
}
