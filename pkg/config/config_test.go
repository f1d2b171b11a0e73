package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	pmerrors "github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/matrix"
	"github.com/matzehuels/pymatrix/pkg/tags"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pymatrix.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Repository != tags.DefaultRepository {
		t.Errorf("Repository = %q", cfg.Repository)
	}
	if cfg.Source != tags.KindClone {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.Major != 3 || cfg.MinMinor != 7 {
		t.Errorf("range = %d.%d, want 3.7", cfg.Major, cfg.MinMinor)
	}
	if !reflect.DeepEqual(cfg.OS, []string{"ubuntu-22.04", "windows-2022", "macos-14"}) {
		t.Errorf("OS = %v", cfg.OS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
repository = "https://example.com/cpython.git"
source = "remote"
min_minor = 9
os = ["ubuntu-24.04"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Repository != "https://example.com/cpython.git" {
		t.Errorf("Repository = %q", cfg.Repository)
	}
	if cfg.Source != tags.KindRemote {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.MinMinor != 9 {
		t.Errorf("MinMinor = %d", cfg.MinMinor)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Major != 3 || cfg.Filter != FilterLexical {
		t.Errorf("defaults lost: major=%d filter=%q", cfg.Major, cfg.Filter)
	}
	if !reflect.DeepEqual(cfg.OS, []string{"ubuntu-24.04"}) {
		t.Errorf("OS = %v", cfg.OS)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `source = `},
		{"unknown key", `sauce = "clone"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !pmerrors.Is(err, pmerrors.ErrCodeConfig) {
				t.Fatalf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}
}

func TestLoadDefersValidation(t *testing.T) {
	cfg, err := Load(writeConfig(t, `filter = "fuzzy"`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate should reject the file value")
	}

	cfg.Filter = FilterLexical
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after override: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    pmerrors.Code
	}{
		{"bad source", `source = "svn"`, pmerrors.ErrCodeConfig},
		{"bad filter", `filter = "fuzzy"`, pmerrors.ErrCodeConfig},
		{"empty os", `os = []`, pmerrors.ErrCodeConfig},
		{"bad repository", `repository = "cpython"`, pmerrors.ErrCodeInvalidURL},
		{"negative minor", `min_minor = -1`, pmerrors.ErrCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if err := cfg.Validate(); !pmerrors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !pmerrors.Is(err, pmerrors.ErrCodeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestNewFilter(t *testing.T) {
	cfg := Default()
	f, err := cfg.NewFilter()
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if _, ok := f.(matrix.LexicalFilter); !ok {
		t.Errorf("expected LexicalFilter, got %T", f)
	}

	cfg.Filter = FilterSemver
	f, err = cfg.NewFilter()
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if _, ok := f.(*matrix.SemverFilter); !ok {
		t.Errorf("expected *SemverFilter, got %T", f)
	}

	cfg.Constraint = "not a constraint"
	if _, err := cfg.NewFilter(); !pmerrors.Is(err, pmerrors.ErrCodeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}
