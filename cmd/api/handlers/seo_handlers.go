package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/dto"
	"trustgate/cmd/api/services"
	"trustgate/seoassist"
)

// SEOAssistHandler godoc
// @Summary      Suggest SEO metadata for a draft
// @Description  Returns advisory suggestions; responses from the offline heuristic carry _mock=true
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request  body  dto.SEOAssistRequest  true  "Title, rich-HTML content and document type"
// @Success      200  {object}  seoassist.Suggestions
// @Failure      400  {object}  object{code=string,error=string}
// @Router       /api/ai/seo-assist [post]
func SEOAssistHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SEOAssistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, err.Error()))
			return
		}

		suggestions, err := svc.Analyze(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, seoassist.ErrContentTooShort) {
				c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "content too short for analysis"))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "analysis failed"))
			return
		}
		c.JSON(http.StatusOK, suggestions)
	}
}
