package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Port    int           `yaml:"port"`
	SiteURL string        `yaml:"site_url"`
	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
	Content ContentConfig `yaml:"content"`
	Uploads UploadsConfig `yaml:"uploads"`
	ScanAPI ScanAPIConfig `yaml:"scan_api"`
	SEO     SEOConfig     `yaml:"seo"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ContentConfig points the document and settings stores at their data
// directories. Relative paths are resolved against the config base path.
type ContentConfig struct {
	DataDir      string `yaml:"data_dir"`
	SettingsFile string `yaml:"settings_file"`
}

type UploadsConfig struct {
	Dir string `yaml:"dir"`
	// PublicBasePath is the URL prefix uploaded files are served under.
	PublicBasePath string `yaml:"public_base_path"`
	MaxBytes       int64  `yaml:"max_bytes"`
}

// ScanAPIConfig configures the third-party security-scan API proxy.
// The API key itself comes from the SCAN_API_KEY environment variable so it
// never lands in a checked-in file.
type ScanAPIConfig struct {
	BaseURL string `yaml:"base_url"`

	// PollIntervalSeconds is the delay between assessment status reads
	// while waiting for a scan to finish. 0 falls back to 5.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	// PollMaxAttempts bounds the wait. 0 falls back to 60 (5 minutes
	// at the default interval).
	PollMaxAttempts int `yaml:"poll_max_attempts"`
}

type SEOConfig struct {
	GeminiModel string `yaml:"gemini_model"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// SetForTest swaps the loaded configuration. Tests use it to point the
// stores at temp directories without a config.yaml on disk.
func SetForTest(c AppConfig) {
	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.SiteURL == "" {
		c.SiteURL = "https://www.trustgate.io"
	}
	if c.Uploads.MaxBytes == 0 {
		c.Uploads.MaxBytes = 10 << 20
	}
	if c.Uploads.PublicBasePath == "" {
		c.Uploads.PublicBasePath = "/uploads"
	}
	if c.ScanAPI.PollIntervalSeconds == 0 {
		c.ScanAPI.PollIntervalSeconds = 5
	}
	if c.ScanAPI.PollMaxAttempts == 0 {
		c.ScanAPI.PollMaxAttempts = 60
	}
	if c.SEO.GeminiModel == "" {
		c.SEO.GeminiModel = "gemini-2.0-flash"
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// ResolvePath resolves a possibly relative data path against the config base.
func ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GetBasePath(), p)
}
