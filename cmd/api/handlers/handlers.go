package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"trustgate/cmd/api/dto"
	"trustgate/cmd/api/services"
	"trustgate/repositories"
)

// HealthHandler godoc
// @Summary      Liveness check
// @Description  Reports service health and whether the scan API credential is configured
// @Tags         system
// @Produce      json
// @Success      200  {object}  object{status=string,scan_api_configured=bool}
// @Router       /health [get]
func HealthHandler(scanSvc *services.ScanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":              "ok",
			"scan_api_configured": scanSvc.Configured(),
		})
	}
}

// writeStoreError maps document-store errors onto the API error taxonomy.
// Validation errors keep their field detail: the admin UI shows them so the
// author can fix the document.
func writeStoreError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Err(dto.CodeNotFound, "document not found"))
	case errors.Is(err, repositories.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.Err(dto.CodeSlugConflict, "slug already exists"))
	case errors.Is(err, repositories.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid slug"))
	case errors.Is(err, repositories.ErrInvalidClass):
		c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid document class"))
	case errors.As(err, &vErrs):
		c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, vErrs.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "internal error"))
	}
}
