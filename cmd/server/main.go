package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/bitsnaps/mockai/internal/chat"
	"github.com/bitsnaps/mockai/internal/config"
	"github.com/bitsnaps/mockai/internal/database"
	"github.com/bitsnaps/mockai/internal/router"
)

func main() {
	_ = godotenv.Load()

	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()

	if err := database.Init(cfg.DBPath); err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	defer database.Close()

	pool, err := chat.LoadPool(cfg.ContentsFile)
	if err != nil {
		log.Fatalf("content pool load failed: %v", err)
	}
	log.Infof("loaded %d random contents", pool.Len())

	r := router.Setup(pool)

	log.Infof("MockAI server listening on http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
