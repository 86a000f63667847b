// Package libdir lists library archives in a folder and splits their file
// names into an artifact name and a version.
//
// A typical lib folder is a flat directory of jars copied out of an old
// build, e.g. commons-lang3-3.12.0.jar or jackson-databind-2.15.2.jar.
// Hidden files and files carrying the reserved application prefix are
// skipped by [Scan]; [ParseName] then recovers ("commons-lang3", "3.12.0")
// from each remaining name.
package libdir

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/libfinder/pkg/errors"
)

const (
	// DefaultExtension is the archive suffix lib-finder resolves.
	DefaultExtension = ".jar"

	// DefaultExcludePrefix marks the application's own jars, which are never
	// looked up.
	DefaultExcludePrefix = "biospace"
)

// ScanOptions controls which directory entries [Scan] returns.
type ScanOptions struct {
	// ExcludePrefix drops files whose name starts with it. Empty disables
	// the check.
	ExcludePrefix string
}

// Scan returns the names of the regular files directly inside dir.
//
// Names beginning with "." or with opts.ExcludePrefix are skipped, as are
// subdirectories; symlinks count when they point at a regular file. Files
// with other extensions are kept: deciding what is an archive is the
// resolver's job. The order is the order os.ReadDir reports.
func Scan(dir string, opts ScanOptions) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot list library folder %s", dir)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if !isFile(dir, e) {
			continue
		}
		if excluded(name, opts.ExcludePrefix) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

// isFile reports whether e is a regular file, following symlinks.
func isFile(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}

func excluded(name, prefix string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return prefix != "" && strings.HasPrefix(name, prefix)
}
