package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is the profile filename probed when no explicit path is given.
const DefaultFile = "digitaltwin.json"

// Resolve picks the profile path: the explicit argument if set, then the
// TWIN_PROFILE environment variable, then data/digitaltwin.json and
// ./digitaltwin.json relative to the working directory. The last candidate
// is returned even if nothing exists, so the caller gets a concrete path in
// its error message.
func Resolve(explicit string) string {
	candidates := []string{explicit, os.Getenv("TWIN_PROFILE"), filepath.Join("data", DefaultFile), DefaultFile}
	last := DefaultFile
	for _, c := range candidates {
		if c == "" {
			continue
		}
		last = c
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return last
}

// Load reads and decodes the profile JSON at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// CanonicalName returns the profile's personal name, trimmed, or the
// fallback when the profile has none. The generation prompt uses it to pin
// the correct spelling of the person's name.
func (p *Profile) CanonicalName(fallback string) string {
	if p == nil {
		return fallback
	}
	if name := strings.TrimSpace(p.Personal.Name); name != "" {
		return name
	}
	return fallback
}
