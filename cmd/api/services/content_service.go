package services

import (
	"trustgate/cmd/api/dto"
	"trustgate/models"
	"trustgate/repositories"
)

// ContentService is the CMS logic over the file-backed document store:
// payload validation, slug derivation, and the publish lifecycle both
// document classes share.
type ContentService struct {
	repo *repositories.DocumentRepository
}

func NewContentService(repo *repositories.DocumentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// List returns documents of a class, optionally narrowed by status. Public
// callers must be pinned to models.StatusPublished by the handler.
func (s *ContentService) List(class models.DocumentClass, status models.DocumentStatus) ([]models.ContentDocument, error) {
	return s.repo.List(class, status)
}

func (s *ContentService) Get(class models.DocumentClass, slug string) (models.ContentDocument, error) {
	return s.repo.Get(class, slug)
}

func (s *ContentService) Create(class models.DocumentClass, payload dto.DocumentPayload) (models.ContentDocument, error) {
	if err := payload.Validate(class); err != nil {
		return models.ContentDocument{}, err
	}
	doc := payload.ToModel()
	if doc.Slug == "" {
		return models.ContentDocument{}, repositories.ErrInvalidSlug
	}
	return s.repo.Create(class, doc)
}

// Update replaces the document at slug. A payload slug differing from the
// path slug renames the document.
func (s *ContentService) Update(class models.DocumentClass, slug string, payload dto.DocumentPayload) (models.ContentDocument, error) {
	if err := payload.Validate(class); err != nil {
		return models.ContentDocument{}, err
	}
	doc := payload.ToModel()
	return s.repo.Update(class, slug, doc)
}

func (s *ContentService) Delete(class models.DocumentClass, slug string) error {
	return s.repo.Delete(class, slug)
}
