package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	storageapp "github.com/storefront/backend/internal/application/storage"
	"go.uber.org/zap"
)

// UploadHandler issues presigned upload URLs for media files
type UploadHandler struct {
	BaseHandler
	uploads *storageapp.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploads *storageapp.UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		BaseHandler: NewBaseHandler(logger),
		uploads:     uploads,
	}
}

// RegisterRoutes registers the upload route
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/generate-presigned-url", h.GeneratePresignedURL)
}

// GeneratePresignedURL handles GET /generate-presigned-url. The caller
// supplies fileName, category and fileType as query parameters and
// receives a short-lived URL to PUT the file to.
func (h *UploadHandler) GeneratePresignedURL(c *gin.Context) {
	input := storageapp.UploadInput{
		FileName: c.Query("fileName"),
		Category: c.Query("category"),
		FileType: c.Query("fileType"),
	}

	result, err := h.uploads.GeneratePresignedURL(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL})
}
