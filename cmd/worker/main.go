package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-cleanup/internal/config"
	"github.com/BruksfildServices01/barber-cleanup/internal/logging"
	"github.com/BruksfildServices01/barber-cleanup/internal/routes"
	"github.com/BruksfildServices01/barber-cleanup/internal/store"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	st, err := store.NewFirestoreStore(context.Background(), cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatalf("failed to connect firestore: %v", err)
	}
	defer st.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg, logger)

	log.Printf("Worker running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
