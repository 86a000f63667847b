package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/libfinder/pkg/integrations/maven"
	"github.com/matzehuels/libfinder/pkg/libdir"
	"github.com/matzehuels/libfinder/pkg/overrides"
	"github.com/matzehuels/libfinder/pkg/report"
	"github.com/matzehuels/libfinder/pkg/resolve"
)

// find runs the whole pipeline for one library folder: list, resolve each
// file in turn, then print the report. Individual files that cannot be
// resolved never fail the run.
func (c *CLI) find(ctx context.Context, dir string, s settings) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	registerHooks(logger)

	files, err := libdir.Scan(dir, libdir.ScanOptions{ExcludePrefix: s.excludePrefix()})
	if err != nil {
		return err
	}
	logger.Debug("scanned library folder", "dir", dir, "files", len(files))

	table, err := overrides.Load(s.Overrides.Path)
	if err != nil {
		return err
	}
	logger.Debug("loaded overrides", "file", s.Overrides.Path, "entries", table.Len())

	client := maven.NewClient(maven.WithBaseURL(s.Search.Endpoint))
	r := resolve.New(table, client,
		resolve.WithExtension(s.Scan.Extension),
		resolve.WithLogger(logger),
		resolve.WithDiagnostics(func(msg string) {
			c.styles.printWarning(c.stdout, "%s", msg)
		}),
	)

	eqs, err := r.ResolveAll(ctx, files)
	if err != nil {
		return err
	}

	if err := report.Write(c.stdout, eqs, report.Options{Configuration: s.Report.Configuration}); err != nil {
		return err
	}

	found := 0
	for _, eq := range eqs {
		if eq.Found() {
			found++
		}
	}
	prog.done(fmt.Sprintf("Resolved %d of %d libraries", found, len(eqs)))
	return nil
}
