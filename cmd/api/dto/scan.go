package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateScanRequest starts an external security assessment.
type CreateScanRequest struct {
	OrganizationName string `json:"organizationName"`
	Domain           string `json:"domain"`
	ClientCategory   string `json:"clientCategory"`
	ClientStatus     string `json:"clientStatus"`
}

func (r CreateScanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrganizationName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Domain, validation.Required, is.Host),
	)
}

// SEOAssistRequest asks for metadata suggestions for a draft.
type SEOAssistRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (r SEOAssistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Type, validation.In("", "posts", "webinars", "post", "webinar")),
	)
}

// LoginRequest carries the admin password to exchange for a session token.
type LoginRequest struct {
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required),
	)
}
