package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/storage"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/logger"
)

// RegisterAssetRoutes mounts the attachment hand-off endpoint. Binaries go
// straight to MinIO; the draft core only ever sees the returned metadata.
func RegisterAssetRoutes(r *gin.Engine, store *storage.MinIOStorage) {
	r.POST("/api/assets", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		key := storage.AttachmentKey(fh.Filename)
		if err := store.UploadFile(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
			logger.Errorf("asset upload failed for %s: %v", fh.Filename, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "asset store unavailable"})
			return
		}

		url, err := store.GetPresignedURL(c.Request.Context(), key, 15*time.Minute)
		if err != nil {
			logger.Warnf("presign failed for %s: %v", key, err)
		}
		c.JSON(http.StatusCreated, gin.H{
			"attachment": draft.Attachment{
				Filename:    fh.Filename,
				ContentType: contentType,
				Size:        fh.Size,
				Key:         key,
			},
			"url": url,
		})
	})

	// Direct download fallback for clients that cannot follow presigned URLs.
	r.GET("/api/assets/*key", func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asset key is required"})
			return
		}
		obj, err := store.DownloadFile(c.Request.Context(), key)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
			return
		}
		defer obj.Close()
		c.DataFromReader(http.StatusOK, -1, "application/octet-stream", obj, nil)
	})
}
