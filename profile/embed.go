package profile

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var embedded embed.FS

// Load returns the raw bytes of a profile by file name. A file with the
// same name under profiles/ on disk wins over the embedded copy, so a
// checkout can override the shipped defaults without rebuilding.
func Load(name string) ([]byte, error) {
	base := baseName(name)
	if data, err := os.ReadFile(filepath.Join("profiles", base)); err == nil {
		return data, nil
	}
	return embedded.ReadFile(base)
}

// LoadProfile loads and parses a profile by file name.
func LoadProfile(name string) (*Profile, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("profile: load %s: %w", name, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", name, err)
	}
	return p, nil
}

// Default returns the shipped default profile.
func Default() (*Profile, error) {
	return LoadProfile("default.yaml")
}

// Names lists the loadable profile file names, sorted: the embedded
// profiles plus any yaml files under profiles/ on disk.
func Names() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	shipped, _ := fs.Glob(embedded, "*.yaml")
	for _, name := range shipped {
		add(name)
	}
	entries, _ := os.ReadDir("profiles")
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			add(e.Name())
		}
	}

	sort.Strings(names)
	return names
}

// baseName strips any directory part so "default.yaml" and
// "profiles/default.yaml" name the same profile.
func baseName(name string) string {
	return filepath.Base(filepath.FromSlash(name))
}
