package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/dto"
	"trustgate/cmd/api/services"
	"trustgate/feed"
	"trustgate/models"
)

// BlogFeedHandler godoc
// @Summary      RSS 2.0 feed of published posts
// @Tags         content
// @Produce      xml
// @Success      200
// @Router       /api/blog/feed [get]
func BlogFeedHandler(svc *services.ContentService, siteURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.List(models.ClassPost, models.StatusPublished)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "failed to list posts"))
			return
		}

		body, err := feed.Render(siteURL, "Trustgate Blog", "Security insights from the Trustgate team", posts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Err(dto.CodeInternal, "failed to render feed"))
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
	}
}
