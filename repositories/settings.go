package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trustgate/models"
)

// SettingsRepository persists the singleton site settings as one JSON file.
// Get returns defaults until the first Put; Put replaces the whole record.
// Concurrent writers race last-write-wins, same as the document store.
type SettingsRepository struct {
	path string
}

func NewSettingsRepository(path string) (*SettingsRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	return &SettingsRepository{path: path}, nil
}

func (r *SettingsRepository) Get() (models.SiteSettings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSiteSettings(), nil
		}
		return models.SiteSettings{}, err
	}
	var s models.SiteSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return models.SiteSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

func (r *SettingsRepository) Put(s models.SiteSettings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".settings-*.tmp")
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
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
