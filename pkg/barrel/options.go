// Package barrel scans a directory of UI component sources and renders a
// single barrel (re-export) file, distinguishing value exports from type-only
// exports so strict module-isolation settings accept the output.
package barrel

import (
	"io"
	"os"
	"strings"
)

// ExtensionMode selects how module specifiers get their file extension.
// The policy is a closed enumeration resolved in one place; see
// resolveExtension.
type ExtensionMode int

const (
	// ExtModeAuto lets the environment probe decide: bare specifiers unless
	// the project is an ES-module/strict-resolution project, in which case
	// every specifier is rewritten to .js.
	ExtModeAuto ExtensionMode = iota
	// ExtModeNone emits bare specifiers with no extension.
	ExtModeNone
	// ExtModeActual keeps each file's real source extension.
	ExtModeActual
	// ExtModeOverride applies one literal extension to every specifier.
	ExtModeOverride
)

// Default configuration values.
const (
	DefaultDir                 = "src/components/ui"
	DefaultOutput              = "index.ts"
	DefaultSingleLineThreshold = 3
)

// DefaultHeader is the warning comment prepended to generated barrels.
const DefaultHeader = "// AUTO-GENERATED FILE. DO NOT EDIT.\n// Run barrelgen to regenerate.\n"

// DefaultExcludes are glob patterns (matched against base names) skipped
// during scanning, alongside the output file itself.
var DefaultExcludes = []string{"*.d.ts", "*.test.*", "*.stories.*"}

// Options configures one generation run. Every field is optional; the zero
// value means "use the default". A SingleLineThreshold of zero or less
// selects the default of 3.
type Options struct {
	// Dir is the directory to scan. Empty selects DefaultDir and allows the
	// environment probe to redirect scanning into a detected monorepo
	// component directory; a non-empty value is honored verbatim.
	Dir string

	// Output is the generated file name, written inside Dir.
	Output string

	// NoSort preserves directory enumeration order instead of sorting
	// statements lexicographically by base name. Enumeration order is
	// platform dependent and intentionally undocumented.
	NoSort bool

	// SingleLineThreshold is the maximum specifier count rendered on a
	// single line.
	SingleLineThreshold int

	// ExtMode and Ext drive the module-specifier extension policy. Ext is
	// only consulted under ExtModeOverride.
	ExtMode ExtensionMode
	Ext     string

	// Header replaces DefaultHeader when non-empty.
	Header string

	// TypePatterns replaces the default type-name heuristics when non-nil.
	TypePatterns []string

	// Excludes replaces DefaultExcludes when non-nil.
	Excludes []string

	// DryRun renders and prints the result without writing any file.
	DryRun bool

	// Verbose enables per-file progress and reclassification notices.
	Verbose bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// withDefaults returns a copy with every zero-value field resolved, plus
// whether the directory was chosen explicitly by the caller.
func (o Options) withDefaults() (Options, bool) {
	dirExplicit := o.Dir != ""

	if o.Dir == "" {
		o.Dir = DefaultDir
	}

	if o.Output == "" {
		o.Output = DefaultOutput
	}

	if o.SingleLineThreshold <= 0 {
		o.SingleLineThreshold = DefaultSingleLineThreshold
	}

	if o.Header == "" {
		o.Header = DefaultHeader
	}

	if o.Excludes == nil {
		o.Excludes = DefaultExcludes
	}

	if o.Ext != "" && !strings.HasPrefix(o.Ext, ".") {
		o.Ext = "." + o.Ext
	}

	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}

	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}

	return o, dirExplicit
}

// resolveExtension is the single place the extension policy is applied.
// ExtModeAuto must be lowered to a concrete mode before rendering; it
// resolves to a bare specifier here as a safety net.
func resolveExtension(mode ExtensionMode, override, actual string) string {
	switch mode {
	case ExtModeActual:
		return actual
	case ExtModeOverride:
		return override
	default:
		return ""
	}
}
