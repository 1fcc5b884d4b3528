package api

import (
	"net/http"

	"academiafit/gym-app/internal/catalog"
	"academiafit/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the exercise catalog and presigned URLs for the
// demonstration videos attached to cataloged exercises.
type CatalogHandler struct {
	catalog      *catalog.Catalog
	mediaStorage storage.MediaStorage
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog, mediaStorage storage.MediaStorage) *CatalogHandler {
	return &CatalogHandler{catalog: cat, mediaStorage: mediaStorage}
}

// List returns the full catalog grouped by muscle group.
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.catalog.Groups()})
}

type VideoUploadURLRequest struct {
	ExerciseName string `json:"exerciseName" binding:"required"`
	ContentType  string `json:"contentType" binding:"required"`
}

// VideoUploadURL returns a presigned PUT URL so a trainer can attach a
// demonstration video to a cataloged exercise. Trainer-only (enforced by
// route middleware).
func (h *CatalogHandler) VideoUploadURL(c *gin.Context) {
	var req VideoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.catalog.Contains(req.ExerciseName) {
		abortWithError(c, http.StatusNotFound, "Exercise is not in the catalog.")
		return
	}

	key := storage.VideoObjectKey(req.ExerciseName)
	url, err := h.mediaStorage.GeneratePresignedUploadURL(c.Request.Context(), key, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url, "objectKey": key})
}

// VideoDownloadURL returns a presigned GET URL for an exercise's
// demonstration video. Exercise name comes in the query string because
// cataloged names contain spaces and accents.
func (h *CatalogHandler) VideoDownloadURL(c *gin.Context) {
	name := c.Query("exerciseName")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "exerciseName query parameter is required.")
		return
	}
	if !h.catalog.Contains(name) {
		abortWithError(c, http.StatusNotFound, "Exercise is not in the catalog.")
		return
	}

	key := storage.VideoObjectKey(name)
	url, err := h.mediaStorage.GeneratePresignedDownloadURL(c.Request.Context(), key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url, "objectKey": key})
}
