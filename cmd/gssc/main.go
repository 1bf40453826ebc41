// Command gssc is the GSS compiler's command-line front end: read one or
// more .gss source files, compile them as a single job (spec.md §6), and
// print the resulting CSS to stdout. Diagnostics go to stderr; a non-zero
// exit code follows any compile error, matching the teacher's
// cmd/lessgo/main.go convention of small flag-driven subcommands that
// fail loudly rather than silently emitting partial output.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/job"
	"github.com/gssc/gss/renamemap"
	"github.com/gssc/gss/source"
)

func main() {
	fs := flag.NewFlagSet("gssc", flag.ExitOnError)
	compressed := fs.Bool("compressed", false, "emit minified CSS instead of pretty output")
	rtl := fs.Bool("rtl", false, "flip the output for right-to-left writing mode")
	renameClasses := fs.Bool("rename-classes", false, "rename class selectors to short, stable identifiers")
	renameIDs := fs.Bool("rename-ids", false, "rename id selectors to short, stable identifiers")
	renamePrefix := fs.String("rename-prefix", "", "prefix prepended to every renamed identifier")
	optimize := fs.Bool("optimize", false, "run dead-style elimination")
	renameMapOut := fs.String("rename-map-out", "", "write the renaming map as JSON to this path")
	fs.Parse(os.Args[1:])

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: gssc [flags] <file.gss> [file.gss ...]")
		fs.PrintDefaults()
		os.Exit(1)
	}

	var inputs []string
	for _, path := range files {
		contents, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gssc: %v\n", err)
			os.Exit(1)
		}
		inputs = append(inputs, string(contents))
	}

	opts := job.NewOptions()
	if *compressed {
		opts.OutputFormat = job.Compressed
	}
	if *rtl {
		opts.InputOrientation = job.LTR
		opts.OutputOrientation = job.RTL
	}
	if *optimize {
		opts.Optimize = job.OptimizeSafe
	}
	opts.RenameClasses = *renameClasses
	opts.RenameIDs = *renameIDs
	opts.CSSRenamingPrefix = *renamePrefix

	name := strings.Join(files, ",")
	res := job.Compile(inputs, name, opts)
	src := source.New(name, strings.Join(inputs, "\n"))
	for _, d := range res.Diags.All() {
		fmt.Fprint(os.Stderr, diag.Format(d, src))
	}
	if res.Diags.HasErrors() {
		fmt.Fprintln(os.Stderr, diag.Summary(res.Diags))
		os.Exit(1)
	}

	fmt.Print(res.CSS)

	if *renameMapOut != "" && res.RenameMap != nil {
		if err := writeRenameMap(*renameMapOut, res.RenameMap); err != nil {
			fmt.Fprintf(os.Stderr, "gssc: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeRenameMap(path string, m *renamemap.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return renamemap.Write(f, m, renamemap.FormatJSON)
}
