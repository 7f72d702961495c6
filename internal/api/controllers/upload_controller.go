package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/models/response_models"
	"hiddengems/pkg/gallery"
	"hiddengems/pkg/middleware"
	"hiddengems/pkg/storage"
	"hiddengems/pkg/utils"
)

type UploadController struct {
	uploader *storage.Uploader
	gallery  *gallery.Store
}

func NewUploadController(uploader *storage.Uploader, gallery *gallery.Store) *UploadController {
	return &UploadController{
		uploader: uploader,
		gallery:  gallery,
	}
}

func (uc *UploadController) PresignUpload(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !storage.ValidImageType(req.ContentType) {
		utils.RespondError(c, http.StatusBadRequest, "Unsupported image type")
		return
	}
	if !storage.ValidImageSize(req.FileSize) {
		utils.RespondError(c, http.StatusBadRequest, "File size exceeds limit")
		return
	}

	presigned, err := uc.uploader.PresignUpload(c.Request.Context(), userID, req.FileName, req.ContentType)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create upload URL")
		return
	}

	utils.RespondSuccess(c, response_models.PresignedUpload{
		UploadURL: presigned.UploadURL,
		FileURL:   presigned.FileURL,
		Key:       presigned.Key,
		ExpiresIn: presigned.ExpiresIn,
	}, "Upload URL generated successfully")
}

// GetGallery lists the pre-seeded default images from the deploy-time
// manifest.
func (uc *UploadController) GetGallery(c *gin.Context) {
	images, err := uc.gallery.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Gallery manifest unavailable")
		return
	}

	utils.RespondSuccess(c, images, "Gallery fetched successfully")
}
