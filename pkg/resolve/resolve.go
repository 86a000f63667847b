// Package resolve maps library file names to published Maven coordinates.
//
// For each file the [Resolver] applies, in order:
//
//  1. the extension check: non-archives are reported and skipped
//  2. the override table: a manual mapping wins and skips the network
//  3. the name parser: names without a recognisable version are reported
//  4. one search request for (name, version), taking the first hit
//
// Every input file yields exactly one [Equivalence]. Files without a
// coordinate carry the [Missing] sentinel.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libfinder/pkg/integrations"
	"github.com/matzehuels/libfinder/pkg/integrations/maven"
	"github.com/matzehuels/libfinder/pkg/libdir"
	"github.com/matzehuels/libfinder/pkg/observability"
)

// Missing is the coordinate recorded when none could be determined.
const Missing = "?"

// Status says how an [Equivalence] was obtained.
type Status int

const (
	// Resolved means the search index returned a match.
	Resolved Status = iota
	// Override means the coordinate came from the override table.
	Override
	// NotArchive means the file does not carry the archive extension.
	NotArchive
	// Malformed means the file name has no recognisable version.
	Malformed
	// NotFound means the index answered but had no match.
	NotFound
	// LookupFailed means the index could not be queried or answered
	// with something unusable.
	LookupFailed
)

var statusNames = [...]string{
	Resolved:     "resolved",
	Override:     "override",
	NotArchive:   "not-archive",
	Malformed:    "malformed",
	NotFound:     "not-found",
	LookupFailed: "lookup-failed",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Equivalence pairs a library file with its coordinate.
type Equivalence struct {
	File       string
	Coordinate string
	Status     Status
}

// Found reports whether a coordinate was determined.
func (e Equivalence) Found() bool {
	return e.Coordinate != Missing
}

// Lookup returns a manually configured coordinate for a file name.
// [*overrides.Table] implements it.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// Searcher finds the published artifact for a name and version.
// [*maven.Client] implements it.
type Searcher interface {
	Search(ctx context.Context, name, version string) (*maven.Artifact, error)
}

// Resolver turns file names into equivalences. It holds no mutable state;
// each call is independent of the previous ones.
type Resolver struct {
	overrides Lookup
	searcher  Searcher
	parser    *libdir.Parser
	diagnose  func(msg string)
	logger    *log.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithExtension sets the archive extension (default ".jar").
func WithExtension(ext string) Option {
	return func(r *Resolver) {
		if ext != "" {
			r.parser = libdir.NewParser(ext)
		}
	}
}

// WithOutput prints per-file diagnostics to w as "! <message>" lines.
func WithOutput(w io.Writer) Option {
	return WithDiagnostics(func(msg string) {
		fmt.Fprintf(w, "! %s\n", msg)
	})
}

// WithDiagnostics hands per-file diagnostics (non-archives, unparseable
// names) to fn. By default they are dropped.
func WithDiagnostics(fn func(msg string)) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.diagnose = fn
		}
	}
}

// WithLogger sets the logger used for lookup warnings and debug traces.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Resolver. overrides may be nil.
func New(overrides Lookup, searcher Searcher, opts ...Option) *Resolver {
	r := &Resolver{
		overrides: overrides,
		searcher:  searcher,
		parser:    libdir.NewParser(libdir.DefaultExtension),
		diagnose:  func(string) {},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve determines the coordinate for a single file.
//
// Lookup problems never surface as errors: they are recorded in the
// returned Equivalence. The only error is ctx's, when the run is cancelled
// during a search.
func (r *Resolver) Resolve(ctx context.Context, file string) (Equivalence, error) {
	start := time.Now()
	eq, err := r.resolve(ctx, file)
	if err != nil {
		return eq, err
	}
	observability.Resolve().OnResolve(ctx, file, eq.Status.String(), time.Since(start))
	return eq, nil
}

func (r *Resolver) resolve(ctx context.Context, file string) (Equivalence, error) {
	ext := r.parser.Extension()
	if !strings.HasSuffix(file, ext) {
		r.diagnose(fmt.Sprintf("%s does not look like a %s, ignoring...", file, strings.TrimPrefix(ext, ".")))
		return missing(file, NotArchive), nil
	}

	if r.overrides != nil {
		if coord, ok := r.overrides.Lookup(file); ok {
			r.logger.Debug("using override", "file", file, "coordinate", coord)
			return Equivalence{File: file, Coordinate: coord, Status: Override}, nil
		}
	}

	nv, ok := r.parser.Parse(file)
	if !ok {
		r.diagnose(file + " does not conform with the expected format name...")
		return missing(file, Malformed), nil
	}

	r.logger.Debug("searching", "file", file, "query", maven.Query(nv.Name, nv.Version))
	artifact, err := r.searcher.Search(ctx, nv.Name, nv.Version)
	switch {
	case err == nil:
		return Equivalence{File: file, Coordinate: artifact.Coordinate(), Status: Resolved}, nil
	case ctx.Err() != nil:
		return missing(file, LookupFailed), ctx.Err()
	case errors.Is(err, integrations.ErrNotFound):
		r.logger.Debug("no match", "file", file)
		return missing(file, NotFound), nil
	default:
		r.logger.Warn("lookup failed", "file", file, "err", err)
		return missing(file, LookupFailed), nil
	}
}

// ResolveAll resolves files one after another, returning one Equivalence
// per file in input order. It stops early only if ctx is cancelled.
func (r *Resolver) ResolveAll(ctx context.Context, files []string) ([]Equivalence, error) {
	eqs := make([]Equivalence, 0, len(files))
	for _, f := range files {
		eq, err := r.Resolve(ctx, f)
		if err != nil {
			return eqs, err
		}
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

func missing(file string, s Status) Equivalence {
	return Equivalence{File: file, Coordinate: Missing, Status: s}
}
