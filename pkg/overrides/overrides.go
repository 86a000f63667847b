// Package overrides loads the manually maintained filename → coordinate table.
//
// Some jars are published under a different artifact name than their file
// name suggests, or not published at all. For those, users list the answer
// in an INI file (custom-equivalences.properties by default):
//
//	[main]
//	bar-2.0.jar = com.acme:bar:2.0
//	legacy-utils.jar = org.example:utils:0.9
//
// Only the [main] section is read. A missing file or section is not an
// error; it simply yields an empty [Table].
package overrides

import (
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/matzehuels/libfinder/pkg/errors"
)

// DefaultPath is the override file looked up in the working directory.
const DefaultPath = "custom-equivalences.properties"

// Section is the only INI section consulted.
const Section = "main"

// Table maps library file names to manually supplied coordinates.
// It is read-only after [Load] returns.
//
// Keys are matched case-insensitively.
type Table struct {
	entries map[string]string
}

// Empty returns a table with no entries.
func Empty() *Table {
	return &Table{entries: map[string]string{}}
}

// FromMap builds a table from m, folding keys the same way [Load] does.
func FromMap(m map[string]string) *Table {
	t := Empty()
	for k, v := range m {
		t.entries[foldKey(k)] = v
	}
	return t
}

// Load reads the [main] section of the INI file at path.
//
// A missing file or a file without a [main] section yields an empty table
// and a nil error. A file that exists but cannot be parsed returns an
// [errors.ErrCodeInvalidConfig] error.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Empty(), nil
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true}, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read overrides file %s", path)
	}

	sec, err := cfg.GetSection(Section)
	if err != nil {
		return Empty(), nil
	}

	t := Empty()
	for _, key := range sec.Keys() {
		t.entries[foldKey(key.Name())] = key.Value()
	}
	return t, nil
}

// Lookup returns the coordinate configured for name, if any.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[foldKey(name)]
	return v, ok
}

// Len returns the number of configured overrides.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func foldKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
