// Package job implements the GSS driver: the "Job descriptor" of
// spec.md §6, wiring source text through parse, the pass.Scheduler
// pipeline, and serialize into a compiled stylesheet. It is the single
// entry point external callers (cmd/gssc, or any embedder) use instead of
// reaching into parse/pass/serialize directly, matching the teacher's
// cmd/lessgo/main.go pattern of a small orchestration layer in front of
// the real packages.
package job

import (
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/parse"
	"github.com/gssc/gss/pass"
	"github.com/gssc/gss/renamemap"
	"github.com/gssc/gss/serialize"
	"github.com/gssc/gss/source"
	"github.com/gssc/gss/visit"
)

// Orientation names a text-direction setting (spec.md §6
// inputOrientation/outputOrientation).
type Orientation int

const (
	NoChange Orientation = iota
	LTR
	RTL
)

// OutputFormat selects the serializer's rendering mode.
type OutputFormat int

const (
	Pretty OutputFormat = iota
	Compressed
	Debug
)

// OptimizeLevel gates simplification / dead-style elimination.
type OptimizeLevel int

const (
	OptimizeNone OptimizeLevel = iota
	OptimizeSafe
	OptimizeMaximum
)

// Vendor names a vendor-prefix family for filtering vendor-prefixed
// declarations (spec.md §6 `vendor`).
type Vendor int

const (
	AnyVendor Vendor = iota
	Webkit
	Mozilla
	Opera
	Microsoft
	Konqueror
)

var vendorPrefix = map[Vendor]string{
	Webkit:    "-webkit-",
	Mozilla:   "-moz-",
	Opera:     "-o-",
	Microsoft: "-ms-",
}

// RenamingMapFormat selects the serialization shape of the output
// renaming map (spec.md §6 outputRenamingMapFormat). The core only needs
// to know this to pick a renamemap.Format; the surrounding preamble/
// postamble conventions named in spec.md are a concern of whatever writes
// the map to disk, left to the caller.
type RenamingMapFormat int

const (
	ClosureCompiled RenamingMapFormat = iota
	ClosureCompiledByWhole
	ClosureCompiledSplitHyphens
	ClosureUncompiled
	JSON
	Properties
	JscompVariableMap
)

// AsRenameMapFormat maps a RenamingMapFormat to the renamemap package's
// serialization Format. ClosureCompiled variants have no dedicated writer
// in renamemap (spec.md frames their preamble/postamble as an output-
// serializer concern outside the core, §1 Non-goals); JSON and Properties
// map onto renamemap directly. JscompVariableMap is written with the
// Properties writer (key=value lines); renamemap has no key:value writer.
func (f RenamingMapFormat) AsRenameMapFormat() renamemap.Format {
	switch f {
	case Properties:
		return renamemap.FormatProperties
	case JscompVariableMap:
		return renamemap.FormatProperties
	default:
		return renamemap.FormatJSON
	}
}

// SourceMapLevel names the detail level of a generated source map
// (spec.md §6 sourceMapLevel). Source-map emission itself is an output-
// serializer concern per spec.md §1's Non-goals; this core stores the
// setting and exposes the location data a map writer needs (every node's
// ast.Node.Location()) without producing the map bytes itself.
type SourceMapLevel int

const (
	SourceMapDefault SourceMapLevel = iota
	SourceMapAll
)

// Options is the immutable Job Descriptor (spec.md §6): every compiler
// behavior a caller can opt into or out of. The zero value is a reasonable
// default (pretty output, no RTL flip, no optimization, no renaming).
type Options struct {
	OutputFormat OutputFormat

	InputOrientation  Orientation
	OutputOrientation Orientation

	Optimize OptimizeLevel

	// TrueConditionNames is the set of boolean constants the @if/@elseif
	// chain sees as true; any name not present defaults to false.
	TrueConditionNames map[string]bool
	// CompileConstants seeds named integer constants consulted during
	// value folding, as if declared by an implicit leading `@def`.
	CompileConstants map[string]int

	// AllowedAtRules names unknown at-rules that pass through without a
	// diagnostic.
	AllowedAtRules map[string]bool

	AllowedNonStandardFunctions map[string]bool
	AllowUnrecognizedFunctions  bool
	AllowedUnrecognizedProperties map[string]bool
	AllowUnrecognizedProperties   bool

	AllowDefPropagation      bool
	AllowUndefinedConstants  bool
	AllowMozDocument         bool
	AllowKeyframes           bool
	AllowWebkitKeyframes     bool
	AllowDuplicateDeclarations bool

	Vendor Vendor

	CSSRenamingPrefix           string
	ExcludedClassesFromRenaming map[string]bool
	// RenameClasses/RenameIDs opt into the rename pass; GSS's renaming is
	// off unless a caller explicitly turns it on, since most consumers
	// want stable, readable class names.
	RenameClasses bool
	RenameIDs     bool

	OutputRenamingMapFormat RenamingMapFormat

	PreserveComments          bool
	PreserveImportantComments bool

	CreateSourceMap bool
	SourceMapLevel  SourceMapLevel
}

// NewOptions returns the default Options: pretty output, no orientation
// change, no optimization, renaming off.
func NewOptions() Options {
	return Options{}
}

// Result is everything one Compile call produces: the rendered CSS, the
// diagnostics accumulated along the way, and (if renaming was enabled)
// the rename map a host build needs to keep markup templates in sync.
type Result struct {
	CSS       string
	Diags     *diag.Manager
	RenameMap *renamemap.Map
}

// Compile concatenates inputs (spec.md §6 "ordered sources; parser
// concatenates virtually"), parses, runs the pass pipeline, and
// serializes the result. name identifies the compilation unit for
// diagnostics (typically the primary input file's name).
func Compile(inputs []string, name string, opts Options) Result {
	diags := diag.New()
	src := source.New(name, strings.Join(inputs, "\n"))
	root := parseSource(src, diags)
	if diags.HasErrors() {
		return Result{Diags: diags}
	}

	ctx := newContext(diags, opts)
	validateAtRules(root, opts, diags)
	if diags.HasErrors() {
		return Result{Diags: diags}
	}

	scheduler := schedulerFor(opts)
	scheduler.Run(root, ctx)
	if diags.HasErrors() {
		return Result{Diags: diags}
	}

	if opts.Vendor != AnyVendor {
		filterVendor(root, opts.Vendor)
	}

	css := serialize.Serialize(root, serialize.Options{
		Compressed: opts.OutputFormat == Compressed,
	})
	return Result{CSS: css, Diags: diags, RenameMap: ctx.Rename}
}

func newContext(diags *diag.Manager, opts Options) *pass.Context {
	ctx := pass.NewContext(diags)
	for name, v := range opts.CompileConstants {
		ctx.Constants[name] = ast.NewNumeric(float64(v), "")
	}
	for name, truthy := range opts.TrueConditionNames {
		if truthy {
			ctx.Constants[name] = ast.NewLiteral("true")
		}
	}
	ctx.RTL = opts.InputOrientation != opts.OutputOrientation &&
		opts.InputOrientation != NoChange && opts.OutputOrientation != NoChange
	ctx.RenameClasses = opts.RenameClasses
	ctx.RenameIDs = opts.RenameIDs
	ctx.RenameExcluded = opts.ExcludedClassesFromRenaming
	ctx.AllowUndefinedConstants = opts.AllowUndefinedConstants
	ctx.RenameSplitHyphens = opts.OutputRenamingMapFormat == ClosureCompiledSplitHyphens
	if opts.CSSRenamingPrefix != "" {
		ctx.Rename = renamemap.NewWithPrefix(opts.CSSRenamingPrefix)
	}
	return ctx
}

// schedulerFor builds pass.Default() and strips the simplify stage when
// optimization is disabled (spec.md §6 `optimize` "gates simplification /
// dead-style elimination").
func schedulerFor(opts Options) *pass.Scheduler {
	s := pass.Default()
	if opts.Optimize == OptimizeNone {
		filtered := s.Passes[:0]
		for _, p := range s.Passes {
			if p.Name() == "simplify" {
				continue
			}
			filtered = append(filtered, p)
		}
		s.Passes = filtered
	}
	return s
}

func parseSource(src *source.File, diags *diag.Manager) *ast.Root {
	return parse.New(src, diags).Parse()
}

// validateAtRules reports a diagnostic for every unknown at-rule not
// named in opts.AllowedAtRules (or implied allowed by
// AllowKeyframes/AllowWebkitKeyframes/AllowMozDocument), per spec.md §6.
func validateAtRules(root *ast.Root, opts Options, diags *diag.Manager) {
	visit.Walk(root, &atRuleValidator{opts: opts, diags: diags})
}

type atRuleValidator struct {
	visit.Base
	opts  Options
	diags *diag.Manager
}

func (v *atRuleValidator) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || r.Kind != ast.AtUnknown {
		return
	}
	name := "@" + r.Name
	if v.opts.AllowedAtRules[name] || v.opts.AllowedAtRules[r.Name] {
		return
	}
	if v.opts.AllowMozDocument && r.Name == "-moz-document" {
		return
	}
	v.diags.ReportError(r.Location(), "unrecognized at-rule %q", name)
}

// filterVendor drops declarations whose property carries a different
// vendor prefix than the one the job is targeting, leaving unprefixed
// declarations untouched.
func filterVendor(root *ast.Root, vendor Vendor) {
	want := vendorPrefix[vendor]
	visit.Walk(root, &vendorFilter{want: want})
}

type vendorFilter struct {
	visit.Base
	want string
}

func (f *vendorFilter) Enter(n ast.Node, ctl *visit.Controller) {
	d, ok := n.(*ast.Declaration)
	if !ok || d.Prop == nil {
		return
	}
	prefix := d.Prop.Meta.VendorPrefix
	if prefix != "" && prefix != f.want {
		ctl.RemoveCurrentNode()
	}
}
