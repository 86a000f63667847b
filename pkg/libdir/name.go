package libdir

import (
	"regexp"
)

// NameVersion is the artifact name and version recovered from a file name.
type NameVersion struct {
	Name    string
	Version string
}

// Parser splits archive file names of the form <name>-<version><ext>.
//
// The name part is greedy, so the version begins at the last hyphen that is
// followed by a digit: "jackson-databind-2.15.2.jar" yields
// ("jackson-databind", "2.15.2"). The version ends at the first extension
// after it, so "foo-1.0.jar.jar" yields ("foo", "1.0"). Neither part spans a
// newline. Matching is case-insensitive.
//
// The pattern is not anchored to the end of the name; callers check the
// extension before parsing.
type Parser struct {
	ext string
	re  *regexp.Regexp
}

// NewParser returns a Parser for archives ending in ext (e.g. ".jar").
func NewParser(ext string) *Parser {
	return &Parser{
		ext: ext,
		re:  regexp.MustCompile(`(?i)(?P<name>.*)-(?P<version>\d.*?)` + regexp.QuoteMeta(ext)),
	}
}

// Extension returns the archive suffix the parser was built for.
func (p *Parser) Extension() string { return p.ext }

// Parse returns the name and version encoded in filename, or false if the
// file name does not contain <name>-<digit...><ext>.
func (p *Parser) Parse(filename string) (NameVersion, bool) {
	m := p.re.FindStringSubmatch(filename)
	if m == nil {
		return NameVersion{}, false
	}
	return NameVersion{
		Name:    m[p.re.SubexpIndex("name")],
		Version: m[p.re.SubexpIndex("version")],
	}, true
}

var defaultParser = NewParser(DefaultExtension)

// ParseName splits a jar file name using the default ".jar" parser.
func ParseName(filename string) (NameVersion, bool) {
	return defaultParser.Parse(filename)
}
