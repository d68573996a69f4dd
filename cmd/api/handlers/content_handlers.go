package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/dto"
	"trustgate/cmd/api/middleware"
	"trustgate/cmd/api/services"
	"trustgate/models"
)

// ListDocumentsHandler godoc
// @Summary      List content documents
// @Description  List posts or webinars, newest first. Drafts are visible only to admins.
// @Tags         content
// @Param        status  query  string  false  "Status filter (draft|published)"
// @Produce      json
// @Success      200  {array}  models.ContentDocument
// @Router       /api/blog/posts [get]
func ListDocumentsHandler(svc *services.ContentService, class models.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.DocumentStatus(c.Query("status"))

		// Anonymous callers only ever see published documents, whatever
		// they asked for.
		if !middleware.IsAdmin(c) {
			status = models.StatusPublished
		}

		docs, err := svc.List(class, status)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

// GetDocumentHandler godoc
// @Summary      Fetch one document by slug
// @Tags         content
// @Param        slug  path  string  true  "Document slug"
// @Produce      json
// @Success      200  {object}  models.ContentDocument
// @Failure      404  {object}  object{code=string,error=string}
// @Router       /api/blog/posts/{slug} [get]
func GetDocumentHandler(svc *services.ContentService, class models.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := svc.Get(class, c.Param("slug"))
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// CreateDocumentHandler godoc
// @Summary      Create a document
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.DocumentPayload  true  "Document body"
// @Success      201  {object}  models.ContentDocument
// @Failure      409  {object}  object{code=string,error=string}
// @Router       /api/blog/posts [post]
func CreateDocumentHandler(svc *services.ContentService, class models.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload dto.DocumentPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}

		doc, err := svc.Create(class, payload)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, doc)
	}
}

// UpdateDocumentHandler godoc
// @Summary      Update or rename a document
// @Description  Full replace. A payload slug differing from the path slug renames the document.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        slug     path  string               true  "Current slug"
// @Param        payload  body  dto.DocumentPayload  true  "Document body"
// @Success      200  {object}  models.ContentDocument
// @Router       /api/blog/posts/{slug} [put]
func UpdateDocumentHandler(svc *services.ContentService, class models.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload dto.DocumentPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}

		doc, err := svc.Update(class, c.Param("slug"), payload)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// DeleteDocumentHandler godoc
// @Summary      Delete a document permanently
// @Tags         content
// @Param        slug  path  string  true  "Document slug"
// @Success      204
// @Failure      404  {object}  object{code=string,error=string}
// @Router       /api/blog/posts/{slug} [delete]
func DeleteDocumentHandler(svc *services.ContentService, class models.DocumentClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(class, c.Param("slug")); err != nil {
			writeStoreError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
