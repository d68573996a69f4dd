package services

import (
	"context"

	"trustgate/cmd/api/dto"
	"trustgate/models"
	"trustgate/seoassist"
)

// SEOService adapts the analyzer to the HTTP surface, mapping the loose
// "type" strings editors send into a document class.
type SEOService struct {
	analyzer *seoassist.Analyzer
}

func NewSEOService(analyzer *seoassist.Analyzer) *SEOService {
	return &SEOService{analyzer: analyzer}
}

func (s *SEOService) Analyze(ctx context.Context, req dto.SEOAssistRequest) (*seoassist.Suggestions, error) {
	class := models.ClassPost
	switch req.Type {
	case "webinars", "webinar":
		class = models.ClassWebinar
	}
	return s.analyzer.Analyze(ctx, req.Title, req.Content, class)
}
