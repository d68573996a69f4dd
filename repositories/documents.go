package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"trustgate/models"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrSlugTaken    = errors.New("slug already exists")
	ErrInvalidSlug  = errors.New("invalid slug")
	ErrInvalidClass = errors.New("invalid document class")
)

// DocumentRepository stores one JSON file per document under
// <baseDir>/<class>/<slug>.json. There is no locking: last write wins, which
// is the accepted tradeoff for a single-admin authoring tool. Writes go
// through a temp file and rename so a crash cannot leave a torn document.
type DocumentRepository struct {
	baseDir string
	now     func() time.Time
}

func NewDocumentRepository(baseDir string) (*DocumentRepository, error) {
	for _, class := range []models.DocumentClass{models.ClassPost, models.ClassWebinar} {
		if err := os.MkdirAll(filepath.Join(baseDir, string(class)), 0o755); err != nil {
			return nil, fmt.Errorf("create document dir: %w", err)
		}
	}
	return &DocumentRepository{baseDir: baseDir, now: time.Now}, nil
}

// SetClock overrides the timestamp source. Tests only.
func (r *DocumentRepository) SetClock(now func() time.Time) {
	r.now = now
}

// List returns documents of a class ordered newest first (publishedAt when
// set, else updatedAt). statusFilter narrows to a single status; empty means
// everything including drafts, so callers serving public traffic must pass
// models.StatusPublished themselves.
func (r *DocumentRepository) List(class models.DocumentClass, statusFilter models.DocumentStatus) ([]models.ContentDocument, error) {
	if !class.Valid() {
		return nil, ErrInvalidClass
	}

	entries, err := os.ReadDir(filepath.Join(r.baseDir, string(class)))
	if err != nil {
		return nil, fmt.Errorf("read document dir: %w", err)
	}

	docs := make([]models.ContentDocument, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		doc, err := r.readFile(filepath.Join(r.baseDir, string(class), entry.Name()))
		if err != nil {
			// A torn or foreign file must not take the whole listing down.
			continue
		}
		if statusFilter != "" && doc.Status != statusFilter {
			continue
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].SortKey().After(docs[j].SortKey())
	})
	return docs, nil
}

func (r *DocumentRepository) Get(class models.DocumentClass, slug string) (models.ContentDocument, error) {
	if !class.Valid() {
		return models.ContentDocument{}, ErrInvalidClass
	}
	path, err := r.docPath(class, slug)
	if err != nil {
		return models.ContentDocument{}, err
	}
	doc, err := r.readFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.ContentDocument{}, ErrNotFound
		}
		return models.ContentDocument{}, err
	}
	return doc, nil
}

// Create stores a new document. The slug must already be set by the caller
// (derived from the title when the author did not choose one). Fails with
// ErrSlugTaken when the slug is in use within the class.
func (r *DocumentRepository) Create(class models.DocumentClass, doc models.ContentDocument) (models.ContentDocument, error) {
	if !class.Valid() {
		return models.ContentDocument{}, ErrInvalidClass
	}
	path, err := r.docPath(class, doc.Slug)
	if err != nil {
		return models.ContentDocument{}, err
	}
	if _, err := os.Stat(path); err == nil {
		return models.ContentDocument{}, ErrSlugTaken
	}

	now := r.now().UTC()
	doc.UpdatedAt = now
	if doc.Status == models.StatusPublished {
		doc.PublishedAt = &now
	} else {
		doc.PublishedAt = nil
	}

	if err := r.writeFile(path, doc); err != nil {
		return models.ContentDocument{}, err
	}
	return doc, nil
}

// Update replaces the document stored under slug. When doc.Slug differs from
// slug this is a rename: the new file is written before the old one is
// removed, so a listing taken at any point sees at least one of the two and
// a crash between the steps loses nothing.
//
// publishedAt policy: the first transition to published wins. Later edits,
// including unpublish/republish cycles, keep the original timestamp; only
// delete and recreate resets it.
func (r *DocumentRepository) Update(class models.DocumentClass, slug string, doc models.ContentDocument) (models.ContentDocument, error) {
	if !class.Valid() {
		return models.ContentDocument{}, ErrInvalidClass
	}
	oldPath, err := r.docPath(class, slug)
	if err != nil {
		return models.ContentDocument{}, err
	}
	existing, err := r.readFile(oldPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.ContentDocument{}, ErrNotFound
		}
		return models.ContentDocument{}, err
	}

	if doc.Slug == "" {
		doc.Slug = slug
	}
	newPath := oldPath
	if doc.Slug != slug {
		newPath, err = r.docPath(class, doc.Slug)
		if err != nil {
			return models.ContentDocument{}, err
		}
		if _, err := os.Stat(newPath); err == nil {
			return models.ContentDocument{}, ErrSlugTaken
		}
	}

	now := r.now().UTC()
	doc.UpdatedAt = now
	doc.PublishedAt = existing.PublishedAt
	if doc.Status == models.StatusPublished && doc.PublishedAt == nil {
		doc.PublishedAt = &now
	}

	if err := r.writeFile(newPath, doc); err != nil {
		return models.ContentDocument{}, err
	}
	if newPath != oldPath {
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			return models.ContentDocument{}, fmt.Errorf("remove renamed document: %w", err)
		}
	}
	return doc, nil
}

// Delete removes the document permanently. Not idempotent: a missing slug is
// ErrNotFound so the admin UI can tell the user the document was already gone.
func (r *DocumentRepository) Delete(class models.DocumentClass, slug string) error {
	if !class.Valid() {
		return ErrInvalidClass
	}
	path, err := r.docPath(class, slug)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *DocumentRepository) docPath(class models.DocumentClass, slug string) (string, error) {
	if !validSlug(slug) {
		return "", ErrInvalidSlug
	}
	return filepath.Join(r.baseDir, string(class), slug+".json"), nil
}

// validSlug keeps slugs usable as both URL segment and file name.
func validSlug(slug string) bool {
	if slug == "" || len(slug) > 200 {
		return false
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return !strings.HasPrefix(slug, "-") && !strings.HasSuffix(slug, "-")
}

func (r *DocumentRepository) readFile(path string) (models.ContentDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ContentDocument{}, err
	}
	var doc models.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.ContentDocument{}, fmt.Errorf("decode document %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

func (r *DocumentRepository) writeFile(path string, doc models.ContentDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".doc-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
