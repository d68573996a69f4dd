package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/dto"
	"trustgate/repositories"
)

// UploadHandler godoc
// @Summary      Upload an asset
// @Description  Accepts jpeg/png/gif/webp/pdf up to 10 MiB and returns its public URL
// @Tags         content
// @Accept       multipart/form-data
// @Param        file  formData  file  true  "The file to upload"
// @Produce      json
// @Success      201  {object}  object{url=string}
// @Failure      400  {object}  object{code=string,error=string}
// @Router       /api/blog/upload [post]
func UploadHandler(uploads *repositories.UploadRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "missing file field"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "unreadable upload"))
			return
		}
		defer file.Close()

		// Read one byte past the cap so an oversized body is detected
		// without buffering all of it.
		data, err := io.ReadAll(io.LimitReader(file, uploads.MaxBytes()+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "unreadable upload"))
			return
		}
		if int64(len(data)) > uploads.MaxBytes() {
			c.JSON(http.StatusRequestEntityTooLarge, dto.Err(dto.CodeValidationFailed, "file exceeds size limit"))
			return
		}

		url, err := uploads.Store(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrUploadType):
				c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "file type not allowed"))
			case errors.Is(err, repositories.ErrUploadTooLarge):
				c.JSON(http.StatusRequestEntityTooLarge, dto.Err(dto.CodeValidationFailed, "file exceeds size limit"))
			default:
				c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "upload failed"))
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
