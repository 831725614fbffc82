package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	drafthandler "github.com/inkhaven/inkhaven/backend/go-services/internal/draft/handler"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft/service"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft/store"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/events"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/middleware"
)

// Standalone draft service: memory-only store, no Redis/Mongo/MinIO. Handy
// for local frontend work and integration test fixtures.
func main() {
	port := os.Getenv("DRAFT_SERVICE_PORT")
	if port == "" {
		port = "5012"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ViewerMiddleware(os.Getenv("JWT_SECRET")))

	emitter := events.NewEmitter()
	svc := service.New(store.New(emitter), emitter, nil, nil)
	drafthandler.RegisterDraftRoutes(r, svc)

	r.POST("/api/test/reset", func(c *gin.Context) {
		svc.Reset()
		c.Status(204)
	})

	log.Printf("draft service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
