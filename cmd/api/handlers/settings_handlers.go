package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/dto"
	"trustgate/models"
	"trustgate/repositories"
)

// GetSettingsHandler godoc
// @Summary      Read site settings
// @Description  Returns the singleton settings record, defaults if never written
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.SiteSettings
// @Router       /api/settings [get]
func GetSettingsHandler(settings *repositories.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := settings.Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "failed to read settings"))
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// PutSettingsHandler godoc
// @Summary      Replace site settings
// @Description  Full replace of the settings record; there is no partial patch
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body  models.SiteSettings  true  "Complete settings record"
// @Success      200  {object}  models.SiteSettings
// @Router       /api/settings [put]
func PutSettingsHandler(settings *repositories.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s models.SiteSettings
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}
		if err := settings.Put(s); err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "failed to write settings"))
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
