// Package report renders resolved equivalences for humans and for Gradle.
//
// The output has two parts: an org-mode table pairing each jar with its
// coordinate, and one declaration line per jar that can be pasted into a
// build.gradle dependencies block:
//
//	| Jar           | Gradle import         |
//	|---------------+-----------------------|
//	| foo-1.2.3.jar | com.example:foo:1.2.3 |
//	| weird.txt     | ?                     |
//
//	implementation 'com.example:foo:1.2.3' // foo-1.2.3.jar
//	// MISSING weird.txt
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/libfinder/pkg/resolve"
)

// DefaultConfiguration is the Gradle configuration used in declarations.
const DefaultConfiguration = "implementation"

// Headers are the column titles of the table.
var Headers = []string{"Jar", "Gradle import"}

// orgBorder draws tables the way Emacs org-mode does: pipes on the sides,
// a dashed rule under the header, '+' where the rule crosses a column.
var orgBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "|",
	TopRight:     "|",
	BottomLeft:   "|",
	BottomRight:  "|",
	MiddleLeft:   "|",
	MiddleRight:  "|",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Options controls [Write].
type Options struct {
	// Configuration is the Gradle configuration name; empty means
	// [DefaultConfiguration].
	Configuration string
}

// Sort orders eqs by file name, ascending.
func Sort(eqs []resolve.Equivalence) {
	sort.SliceStable(eqs, func(i, j int) bool {
		return eqs[i].File < eqs[j].File
	})
}

// Table renders eqs as an org-mode table, one row per entry, in the order
// given.
func Table(eqs []resolve.Equivalence) string {
	rows := make([][]string, len(eqs))
	for i, eq := range eqs {
		rows[i] = []string{eq.File, eq.Coordinate}
	}

	return table.New().
		Border(orgBorder).
		BorderTop(false).
		BorderBottom(false).
		BorderRow(false).
		BorderHeader(true).
		BorderColumn(true).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		String()
}

// Declaration returns the Gradle line for one entry: a dependency
// declaration, or a MISSING comment when no coordinate was found.
func Declaration(eq resolve.Equivalence, configuration string) string {
	if !eq.Found() {
		return "// MISSING " + eq.File
	}
	if configuration == "" {
		configuration = DefaultConfiguration
	}
	return fmt.Sprintf("%s '%s' // %s", configuration, eq.Coordinate, eq.File)
}

// Declarations returns one [Declaration] per entry, in the order given.
func Declarations(eqs []resolve.Equivalence, configuration string) []string {
	lines := make([]string, len(eqs))
	for i, eq := range eqs {
		lines[i] = Declaration(eq, configuration)
	}
	return lines
}

// Write sorts eqs in place and prints the table followed by the
// declarations, each preceded by a blank line.
func Write(w io.Writer, eqs []resolve.Equivalence, opts Options) error {
	Sort(eqs)

	if _, err := fmt.Fprintf(w, "\n%s\n\n", Table(eqs)); err != nil {
		return err
	}
	for _, line := range Declarations(eqs, opts.Configuration) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
