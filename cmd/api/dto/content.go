package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"trustgate/models"
)

// DocumentPayload is the create/update body for posts and webinars. Slug is
// optional on create (derived from the title) and doubles as the rename
// target on update.
type DocumentPayload struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`

	Category string `json:"category"`
	Type     string `json:"type"`

	Tags   []string `json:"tags"`
	Status string   `json:"status"`

	Author          string `json:"author"`
	MetaDescription string `json:"metaDescription"`
	OgImage         string `json:"ogImage"`

	Date            string           `json:"date"`
	Duration        string           `json:"duration"`
	Speakers        []models.Speaker `json:"speakers"`
	YoutubeURL      string           `json:"youtubeUrl"`
	RegistrationURL string           `json:"registrationUrl"`
}

// Validate applies the class-dependent rules: webinars may carry a type, and
// only the two status values exist. An empty status means draft.
func (p DocumentPayload) Validate(class models.DocumentClass) error {
	rules := []*validation.FieldRules{
		validation.Field(&p.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&p.Status, validation.In("", string(models.StatusDraft), string(models.StatusPublished))),
	}
	if class == models.ClassWebinar {
		rules = append(rules,
			validation.Field(&p.Type, validation.In("", models.WebinarUpcoming, models.WebinarPast)),
		)
	}
	return validation.ValidateStruct(&p, rules...)
}

// ToModel maps the payload onto a document, deriving the slug from the
// title when the author did not pick one. Timestamps stay zero; the store
// owns them.
func (p DocumentPayload) ToModel() models.ContentDocument {
	slug := p.Slug
	if slug == "" {
		slug = models.Slugify(p.Title)
	} else {
		slug = models.Slugify(slug)
	}

	status := models.DocumentStatus(p.Status)
	if status == "" {
		status = models.StatusDraft
	}

	return models.ContentDocument{
		Slug:            slug,
		Title:           p.Title,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		Category:        p.Category,
		Type:            p.Type,
		Tags:            p.Tags,
		Status:          status,
		Author:          p.Author,
		MetaDescription: p.MetaDescription,
		OgImage:         p.OgImage,
		Date:            p.Date,
		Duration:        p.Duration,
		Speakers:        p.Speakers,
		YoutubeURL:      p.YoutubeURL,
		RegistrationURL: p.RegistrationURL,
	}
}
