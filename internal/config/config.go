// Package config loads twin configuration from a JSON file merged over
// defaults, with provider credentials supplied through the environment
// (optionally via a .env file).
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names for provider credentials.
const (
	EnvVectorURL   = "UPSTASH_VECTOR_REST_URL"
	EnvVectorToken = "UPSTASH_VECTOR_REST_TOKEN"
	EnvGroqKey     = "GROQ_API_KEY"
	EnvGroqModel   = "GROQ_MODEL"
)

// Config holds application configuration.
type Config struct {
	// ProfilePath points at the profile JSON. Empty means probe the
	// default locations (data/digitaltwin.json, then ./digitaltwin.json).
	ProfilePath string `json:"profile_path,omitempty"`

	// TopK is the retrieval depth for the general semantic search.
	TopK int `json:"top_k"`

	// ContextMaxChars bounds the assembled context in long-context mode.
	ContextMaxChars int `json:"context_max_chars"`

	// Model overrides the generation model identifier.
	Model string `json:"model,omitempty"`

	// DBMaxOpenConns limits open transcript-store connections. If set to 1,
	// all database access is serialized. 0 means the sql.DB default.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits idle transcript-store connections.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`
}

// Credentials carries the provider secrets read from the environment.
// Either provider may be absent; the engine degrades accordingly.
type Credentials struct {
	VectorURL   string
	VectorToken string
	GroqKey     string
	GroqModel   string
}

// HasVector reports whether the vector provider is configured.
func (c Credentials) HasVector() bool { return c.VectorURL != "" && c.VectorToken != "" }

// HasGenerator reports whether the generation provider is configured.
func (c Credentials) HasGenerator() bool { return c.GroqKey != "" }

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TopK:            10,
		ContextMaxChars: 1200,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.twin.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadEnv reads provider credentials from the environment, after loading a
// .env file from the working directory when one exists. A missing .env is
// not an error; the environment alone may carry everything.
func LoadEnv() Credentials {
	_ = godotenv.Load()
	return Credentials{
		VectorURL:   os.Getenv(EnvVectorURL),
		VectorToken: os.Getenv(EnvVectorToken),
		GroqKey:     os.Getenv(EnvGroqKey),
		GroqModel:   os.Getenv(EnvGroqModel),
	}
}

// BaseDir returns the twin state directory (~/.twin).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".twin"), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs; overlay values win when set.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.ProfilePath = overlay.ProfilePath
	if result.ProfilePath == "" {
		result.ProfilePath = base.ProfilePath
	}

	result.TopK = overlay.TopK
	if result.TopK == 0 {
		result.TopK = base.TopK
	}

	result.ContextMaxChars = overlay.ContextMaxChars
	if result.ContextMaxChars == 0 {
		result.ContextMaxChars = base.ContextMaxChars
	}

	result.Model = overlay.Model
	if result.Model == "" {
		result.Model = base.Model
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	return result
}
