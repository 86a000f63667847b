package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libfinder/pkg/errors"
	"github.com/matzehuels/libfinder/pkg/integrations/maven"
	"github.com/matzehuels/libfinder/pkg/libdir"
	"github.com/matzehuels/libfinder/pkg/overrides"
	"github.com/matzehuels/libfinder/pkg/report"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings(filepath.Join(t.TempDir(), defaultSettingsPath), false, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}

	if s.Search.Endpoint != maven.DefaultBaseURL {
		t.Errorf("endpoint = %q", s.Search.Endpoint)
	}
	if s.Scan.Extension != libdir.DefaultExtension {
		t.Errorf("extension = %q", s.Scan.Extension)
	}
	if s.excludePrefix() != libdir.DefaultExcludePrefix {
		t.Errorf("exclude prefix = %q", s.excludePrefix())
	}
	if s.Report.Configuration != report.DefaultConfiguration {
		t.Errorf("configuration = %q", s.Report.Configuration)
	}
	if s.Overrides.Path != overrides.DefaultPath {
		t.Errorf("overrides path = %q", s.Overrides.Path)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultSettingsPath)
	if err := os.WriteFile(path, []byte("[scan]\nextension = \".aar\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(path, true, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if s.Scan.Extension != ".aar" {
		t.Errorf("extension = %q, want .aar", s.Scan.Extension)
	}
	if s.excludePrefix() != libdir.DefaultExcludePrefix {
		t.Errorf("untouched keys should keep defaults, prefix = %q", s.excludePrefix())
	}
	if s.Search.Endpoint != maven.DefaultBaseURL {
		t.Errorf("untouched keys should keep defaults, endpoint = %q", s.Search.Endpoint)
	}
}

func TestLoadSettingsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultSettingsPath)
	if err := os.WriteFile(path, []byte("[scan]\nrecursive = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	if _, err := loadSettings(path, true, log.New(&logs)); err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if !strings.Contains(logs.String(), "scan.recursive") {
		t.Errorf("unknown key not reported, logs: %q", logs.String())
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultSettingsPath)
	if err := os.WriteFile(path, []byte("[scan\nextension = "), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadSettings(path, false, log.New(&bytes.Buffer{}))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadSettings() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
