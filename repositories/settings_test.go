package repositories

import (
	"path/filepath"
	"testing"

	"trustgate/models"
)

func TestSettingsGetReturnsDefaultsBeforeFirstPut(t *testing.T) {
	repo, err := NewSettingsRepository(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("unexpected error creating repository: %v", err)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Banner.Enabled {
		t.Fatalf("expected banner disabled by default")
	}
	if got.Banner.Style != "info" {
		t.Fatalf("expected default banner style info, got %q", got.Banner.Style)
	}
	if got.FeaturedWebinar.Enabled {
		t.Fatalf("expected featured webinar disabled by default")
	}
}

func TestSettingsPutReplacesWholeRecord(t *testing.T) {
	repo, err := NewSettingsRepository(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("unexpected error creating repository: %v", err)
	}

	first := models.SiteSettings{
		Banner: models.BannerSettings{Enabled: true, Text: "Maintenance window Friday", Style: "warning"},
		FeaturedWebinar: models.FeaturedWebinarSettings{
			Enabled: true,
			Title:   "Ransomware Readiness",
			Speaker: "J. Alvarez",
		},
	}
	if err := repo.Put(first); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Banner.Text != first.Banner.Text || !got.FeaturedWebinar.Enabled {
		t.Fatalf("stored settings do not match input: %+v", got)
	}

	// The second put carries no banner text; it must not merge with the first.
	second := models.SiteSettings{Banner: models.BannerSettings{Style: "info"}}
	if err := repo.Put(second); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	got, err = repo.Get()
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Banner.Text != "" || got.FeaturedWebinar.Enabled {
		t.Fatalf("expected full replacement, got %+v", got)
	}
}
