// Package cli implements the lib-finder command-line interface.
//
// lib-finder takes a folder of jars, works out the Maven coordinate of each
// one and prints a table plus Gradle declarations. The CLI is built using
// cobra and logs through charmbracelet/log on stderr, keeping stdout for
// the report itself.
//
// # Logging
//
// --verbose (-v) switches to debug level, which also traces every search
// request and every per-file outcome.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/libfinder/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "lib-finder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrUsage is returned when the command line is incomplete. The usage text
// has already been printed when it is returned.
var ErrUsage = errors.New("usage")

const usageText = `Usage: lib-finder lib-folder

       lib-folder: path of the folder that contains the libraries to search in Maven
`

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	stdout io.Writer
	styles styles
}

// New creates a CLI that prints its report to stdout and logs to logw.
func New(stdout, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		stdout: stdout,
		styles: newStyles(stdout),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// options holds the raw flag values of the root command.
type options struct {
	verbose       bool
	settingsPath  string
	overridesPath string
	endpoint      string
	extension     string
	excludePrefix string
	configuration string
}

// RootCommand creates the lib-finder command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   appName + " <lib-folder>",
		Short: "Find the Maven coordinates of a folder of jars",
		Long: `lib-finder scans a folder of jar files, looks each one up on Maven Central
by the name and version in its file name, and prints a table of results
followed by Gradle dependency declarations.

Jars that cannot be found automatically can be mapped by hand in
custom-equivalences.properties:

  [main]
  bar-2.0.jar = com.acme:bar:2.0`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprint(c.stdout, usageText)
				return ErrUsage
			}
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			s, err := c.settings(cmd, opts)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.find(ctx, args[0], s)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.stdout)

	flags := root.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&opts.settingsPath, "config", defaultSettingsPath, "settings file (TOML), used when present")
	flags.StringVar(&opts.overridesPath, "overrides", "", "manual name→coordinate mappings (INI, [main] section)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Maven search endpoint")
	flags.StringVar(&opts.extension, "extension", "", "archive extension to resolve")
	flags.StringVar(&opts.excludePrefix, "exclude-prefix", "", "skip files whose name starts with this prefix")
	flags.StringVar(&opts.configuration, "configuration", "", "Gradle configuration used in declarations")

	return root
}

// settings merges defaults, the settings file and explicitly set flags.
func (c *CLI) settings(cmd *cobra.Command, opts options) (settings, error) {
	flags := cmd.Flags()
	s, err := loadSettings(opts.settingsPath, flags.Changed("config"), c.Logger)
	if err != nil {
		return s, err
	}

	if flags.Changed("overrides") {
		s.Overrides.Path = opts.overridesPath
	}
	if flags.Changed("endpoint") {
		s.Search.Endpoint = opts.endpoint
	}
	if flags.Changed("extension") {
		s.Scan.Extension = opts.extension
	}
	if flags.Changed("exclude-prefix") {
		prefix := opts.excludePrefix
		s.Scan.ExcludePrefix = &prefix
	}
	if flags.Changed("configuration") {
		s.Report.Configuration = opts.configuration
	}
	return s, nil
}
