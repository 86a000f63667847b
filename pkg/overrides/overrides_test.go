package overrides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/libfinder/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `[main]
bar-2.0.jar = com.acme:bar:2.0
Legacy-Utils.jar = org.example:utils:0.9

[other]
ignored.jar = should:not:load
`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"bar-2.0.jar", "com.acme:bar:2.0", true},
		{"legacy-utils.jar", "org.example:utils:0.9", true},
		{"LEGACY-UTILS.JAR", "org.example:utils:0.9", true},
		{"ignored.jar", "", false},
		{"missing.jar", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Lookup(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope.properties"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}

func TestLoadMissingSection(t *testing.T) {
	path := writeFile(t, "[other]\nfoo.jar = a:b:c\n")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := table.Lookup("foo.jar"); ok {
		t.Error("keys outside [main] should be ignored")
	}
}

func TestLoadColonDelimiter(t *testing.T) {
	path := writeFile(t, "[main]\nbaz-1.0.jar = org.baz:baz:1.0\n")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, _ := table.Lookup("baz-1.0.jar"); got != "org.baz:baz:1.0" {
		t.Errorf("value = %q, want colons kept in the value", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "[main]\nthis line has no delimiter\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail on a malformed file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup("x.jar"); ok {
		t.Error("nil table should have no entries")
	}
	if table.Len() != 0 {
		t.Error("nil table Len() should be 0")
	}
}

func TestFromMap(t *testing.T) {
	table := FromMap(map[string]string{" Foo.jar ": "a:foo:1"})
	if got, ok := table.Lookup("foo.jar"); !ok || got != "a:foo:1" {
		t.Errorf("Lookup() = %q, %v", got, ok)
	}
}
