package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the draft service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>inkhaven-drafts — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the draft workspace endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "inkhaven-drafts", "version": "v0.1.0" },
  "paths": {
    "/api/drafts": {
      "post": {
        "summary": "Create a draft",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"ownerId":{"type":"string"},"title":{"type":"string"},"content":{"type":"string"},"visibility":{"type":"string","enum":["private","shared","public"]},"sharedWith":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": { "201": { "description": "draft with revision #1" } }
      },
      "get": { "summary": "List drafts readable by the viewer", "responses": { "200": { "description": "drafts" } } }
    },
    "/api/drafts/buckets": {
      "get": { "summary": "Partition the viewer's drafts into owned/collaborating/public", "responses": { "200": { "description": "buckets" } } }
    },
    "/api/drafts/collaborators": {
      "get": { "summary": "List potential collaborators (all writers except the viewer)", "responses": { "200": { "description": "writers" } } }
    },
    "/api/drafts/{id}": {
      "get": { "summary": "Full draft workspace with revisions and comments", "responses": { "200": { "description": "draft" }, "403": { "description": "not authorized" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Update title/content/visibility/sharing; content changes append a revision", "responses": { "200": { "description": "updated draft" }, "403": { "description": "not authorized" }, "404": { "description": "not found" } } }
    },
    "/api/drafts/{id}/revisions": {
      "get": { "summary": "Revision history, oldest first", "responses": { "200": { "description": "revisions" } } }
    },
    "/api/drafts/{id}/revisions/compare": {
      "get": { "summary": "Word-level diff between two revisions (?base=&target=)", "responses": { "200": { "description": "diff segments" }, "404": { "description": "unknown revision" } } }
    },
    "/api/drafts/{id}/comments": {
      "post": { "summary": "Comment on a draft (read access suffices)", "responses": { "201": { "description": "comment" }, "400": { "description": "empty body" } } },
      "get": { "summary": "List comments in creation order", "responses": { "200": { "description": "comments" } } }
    },
    "/api/drafts/{id}/events": {
      "get": { "summary": "Server-sent event stream: ready, draft, draft:updated, draft:commented", "responses": { "200": { "description": "text/event-stream" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
