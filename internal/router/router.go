package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitsnaps/mockai/internal/chat"
	"github.com/bitsnaps/mockai/internal/chroma"
	"github.com/bitsnaps/mockai/internal/config"
	"github.com/bitsnaps/mockai/internal/handler"
	"github.com/bitsnaps/mockai/internal/middleware"
	"github.com/bitsnaps/mockai/internal/web"
)

func Setup(pool *chat.Pool) *gin.Engine {
	r := gin.Default()

	cfg := config.Get()

	chromaClient := chroma.NewClient(cfg.ChromaURL())
	resolver := chat.NewResolver(pool, chromaClient, cfg.ChromaCollection)
	streamer := chat.NewStreamer(time.Duration(cfg.StreamIntervalMs) * time.Millisecond)

	chatHandler := handler.NewChatHandler(resolver, streamer, cfg.DefaultMockType)
	modelHandler := handler.NewModelHandler()
	collectionHandler := handler.NewCollectionHandler(chromaClient)
	embeddingHandler := handler.NewEmbeddingHandler()
	imageHandler := handler.NewImageHandler()

	registryLimiter := middleware.NewRateLimiter(5, 10)

	v1 := r.Group("/v1")
	{
		v1.POST("/chat/completions", chatHandler.Completions)
		v1.POST("/completions", chatHandler.TextCompletions)
		v1.POST("/embeddings", embeddingHandler.Create)
		v1.POST("/images/generations", imageHandler.Generate)

		v1.GET("/models", modelHandler.List)
		v1.POST("/models", registryLimiter.RateLimitByIP(), modelHandler.Create)
		// Wildcard: model ids contain a slash.
		v1.DELETE("/models/*id", registryLimiter.RateLimitByIP(), modelHandler.Delete)
	}

	r.GET("/api/collections", collectionHandler.List)

	// Admin page and 404 fallback.
	web.RegisterStaticRoutes(r)

	return r
}
