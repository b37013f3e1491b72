package handlers

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/objectstore"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

type UploadImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
}

type UploadHandler struct {
	uploader *objectstore.Uploader
}

func NewUploadHandler(uploader *objectstore.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) UploadUserThumbnail(ctx *gin.Context) {
	h.upload(ctx, "user")
}

func (h *UploadHandler) UploadTeamThumbnail(ctx *gin.Context) {
	h.upload(ctx, "team")
}

func (h *UploadHandler) UploadProjectThumbnail(ctx *gin.Context) {
	h.upload(ctx, "project")
}

// upload stores the first file of the multipart form. A form without a file
// answers success=false, matching the upload contract.
func (h *UploadHandler) upload(ctx *gin.Context, category string) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	form, err := ctx.MultipartForm()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	field, header := firstFile(form)

	if header == nil {
		ctx.JSON(http.StatusOK, UploadImageResponse{Success: false})
		return
	}

	file, err := header.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	imageURL, err := h.uploader.UploadThumbnail(ctx.Request.Context(), category, field, header.Filename, data)

	if err != nil {
		log.Printf("Failed to upload thumbnail: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, UploadImageResponse{Success: true, ImageURL: imageURL})
}

func firstFile(form *multipart.Form) (string, *multipart.FileHeader) {
	for field, files := range form.File {
		if len(files) > 0 {
			return field, files[0]
		}
	}

	return "", nil
}
