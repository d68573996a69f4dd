package models

// BannerSettings drives the site-wide announcement bar.
type BannerSettings struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Link    string `json:"link"`
	Style   string `json:"style"`
}

// FeaturedWebinarSettings drives the promoted webinar block on the homepage.
type FeaturedWebinarSettings struct {
	Enabled          bool   `json:"enabled"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Description      string `json:"description"`
	RegistrationLink string `json:"registrationLink"`
	Speaker          string `json:"speaker"`
	Host             string `json:"host"`
}

// SiteSettings is the singleton site configuration document. Reads return
// the whole record and writes replace it, there is no partial patch.
type SiteSettings struct {
	Banner          BannerSettings          `json:"banner"`
	FeaturedWebinar FeaturedWebinarSettings `json:"featuredWebinar"`
}

// DefaultSiteSettings is what get returns before the settings file exists.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Banner: BannerSettings{
			Enabled: false,
			Style:   "info",
		},
		FeaturedWebinar: FeaturedWebinarSettings{
			Enabled: false,
		},
	}
}
