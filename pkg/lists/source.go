package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigLoad reports that the base option lists could not be loaded. The
// form keeps working with empty lists.
var ErrConfigLoad = errors.New("lists: config load failed")

// Source provides the base option configuration.
type Source interface {
	Fetch(ctx context.Context) (Config, error)
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource otherwise.
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: location}
}

// FileSource reads a YAML or JSON config file.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(_ context.Context) (Config, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// HTTPSource fetches the config with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Fetch(ctx context.Context) (Config, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := client.Do(req)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Config{}, fmt.Errorf("%w: config error: %d", ErrConfigLoad, resp.StatusCode)
	}
	return ParseConfig(resp.Body)
}

// ParseConfig decodes a YAML or JSON config. JSON is read as YAML.
func ParseConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	if cfg.Lists == nil {
		cfg.Lists = make(Lists)
	}
	return cfg, nil
}
