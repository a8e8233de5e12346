package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"headliner/internal/model"
)

const (
	DefaultServerURL     = "http://localhost:8080"
	DefaultReaderTimeout = 15 * time.Second
)

type Reader struct {
	ServerURL  string `yaml:"server_url"`
	Timeout    string `yaml:"timeout,omitempty"`
	DefaultTab string `yaml:"default_tab,omitempty"`
}

func DefaultReader() *Reader {
	return &Reader{
		ServerURL:  DefaultServerURL,
		Timeout:    DefaultReaderTimeout.String(),
		DefaultTab: model.CategoryKorean,
	}
}

func (r *Reader) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(r.Timeout)
	if err != nil || d <= 0 {
		return DefaultReaderTimeout
	}
	return d
}

func DefaultReaderPath() string {
	return filepath.Join(xdg.ConfigHome, "headliner", "config.yaml")
}

func ReaderLogPath() string {
	return filepath.Join(xdg.StateHome, "headliner", "reader.log")
}

// LoadReader reads path (or the default location). A missing file yields the defaults.
func LoadReader(path string) (*Reader, error) {
	if path == "" {
		path = DefaultReaderPath()
	}

	cfg := DefaultReader()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.DefaultTab == "" {
		cfg.DefaultTab = model.CategoryKorean
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r *Reader) Validate() error {
	u, err := url.Parse(r.ServerURL)
	if err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_url scheme must be http or https, got %q", u.Scheme)
	}

	switch r.DefaultTab {
	case model.CategoryKorean, model.CategoryTech:
	default:
		return fmt.Errorf("unknown default_tab %q (valid: %s, %s)", r.DefaultTab, model.CategoryKorean, model.CategoryTech)
	}

	return nil
}
