package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/clients/crmclient"
	"trustgate/cmd/api/dto"
)

// SubmitFormHandler godoc
// @Summary      Relay a marketing form submission to the CRM
// @Description  Always returns a boolean outcome, never an upstream error: forms must not hard-fail the page
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        kind     path  string          true  "Form kind (contact|newsletter|risk-assessment)"
// @Param        payload  body  map[string]any  true  "Form fields"
// @Success      200  {object}  object{success=bool}
// @Router       /api/forms/{kind} [post]
func SubmitFormHandler(relay *crmclient.Relay) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := crmclient.FormKind(c.Param("kind"))
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "unknown form kind"))
			return
		}

		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}

		ok := relay.Relay(c.Request.Context(), kind, payload)
		c.JSON(http.StatusOK, gin.H{"success": ok})
	}
}
