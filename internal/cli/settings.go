package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/libfinder/pkg/errors"
	"github.com/matzehuels/libfinder/pkg/integrations/maven"
	"github.com/matzehuels/libfinder/pkg/libdir"
	"github.com/matzehuels/libfinder/pkg/overrides"
	"github.com/matzehuels/libfinder/pkg/report"
)

// defaultSettingsPath is read from the working directory when present.
const defaultSettingsPath = "lib-finder.toml"

// settings is the merged run configuration: built-in defaults, then the
// optional TOML file, then command-line flags.
//
//	[search]
//	endpoint = "https://search.maven.org/solrsearch/select"
//
//	[scan]
//	extension = ".jar"
//	exclude_prefix = "biospace"
//
//	[report]
//	configuration = "implementation"
//
//	[overrides]
//	path = "custom-equivalences.properties"
type settings struct {
	Search struct {
		Endpoint string `toml:"endpoint"`
	} `toml:"search"`

	Scan struct {
		Extension string `toml:"extension"`
		// pointer so an explicit "" can disable the prefix check
		ExcludePrefix *string `toml:"exclude_prefix"`
	} `toml:"scan"`

	Report struct {
		Configuration string `toml:"configuration"`
	} `toml:"report"`

	Overrides struct {
		Path string `toml:"path"`
	} `toml:"overrides"`
}

func defaultSettings() settings {
	var s settings
	s.Search.Endpoint = maven.DefaultBaseURL
	s.Scan.Extension = libdir.DefaultExtension
	prefix := libdir.DefaultExcludePrefix
	s.Scan.ExcludePrefix = &prefix
	s.Report.Configuration = report.DefaultConfiguration
	s.Overrides.Path = overrides.DefaultPath
	return s
}

// loadSettings layers the TOML file at path over the defaults.
//
// A missing file is fine unless the user named it explicitly. Unknown keys
// are logged and otherwise ignored.
func loadSettings(path string, explicit bool, logger *log.Logger) (settings, error) {
	s := defaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return s, errors.New(errors.ErrCodeInvalidConfig, "settings file %s does not exist", path)
		}
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse settings file %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("ignoring unknown setting", "file", path, "key", key.String())
	}
	logger.Debug("loaded settings", "file", path)
	return s, nil
}

func (s settings) excludePrefix() string {
	if s.Scan.ExcludePrefix == nil {
		return ""
	}
	return *s.Scan.ExcludePrefix
}
