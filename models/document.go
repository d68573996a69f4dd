package models

import (
	"time"
)

// DocumentClass is the namespace a content document belongs to. Slug
// uniqueness is scoped per class, so a post and a webinar may share a slug.
type DocumentClass string

const (
	ClassPost    DocumentClass = "posts"
	ClassWebinar DocumentClass = "webinars"
)

func (c DocumentClass) Valid() bool {
	return c == ClassPost || c == ClassWebinar
}

// DocumentStatus is the publication state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPublished DocumentStatus = "published"
)

// Webinar type classification.
const (
	WebinarUpcoming = "upcoming"
	WebinarPast     = "past"
)

// Speaker is a webinar speaker entry; order is preserved for display.
type Speaker struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// ContentDocument is a blog post or webinar. Both classes share this shape
// and differ only in which fields they populate: Category is blog-only,
// Type/Date/Duration/Speakers/YoutubeURL/RegistrationURL are webinar-only.
type ContentDocument struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Content string `json:"content,omitempty"`

	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`

	Tags   []string       `json:"tags,omitempty"`
	Status DocumentStatus `json:"status"`

	Author          string `json:"author,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	OgImage         string `json:"ogImage,omitempty"`

	// PublishedAt is set on the first transition to published and kept
	// across later edits, including unpublish/republish cycles.
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Date            string    `json:"date,omitempty"`
	Duration        string    `json:"duration,omitempty"`
	Speakers        []Speaker `json:"speakers,omitempty"`
	YoutubeURL      string    `json:"youtubeUrl,omitempty"`
	RegistrationURL string    `json:"registrationUrl,omitempty"`
}

// SortKey orders listings newest first: publishedAt when present, else
// updatedAt.
func (d ContentDocument) SortKey() time.Time {
	if d.PublishedAt != nil {
		return *d.PublishedAt
	}
	return d.UpdatedAt
}
