package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/langtools/es6to5/pkg/config"
	"github.com/langtools/es6to5/pkg/convert"
	"github.com/langtools/es6to5/pkg/driver"
	"github.com/langtools/es6to5/pkg/frontend"
	"github.com/langtools/es6to5/pkg/printer"
	"github.com/langtools/es6to5/pkg/report"
)

// main is the CLI entry point. It exits with status 1 on any fatal
// error, following the teacher's main.go shape.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses arguments, converts every path in cfg.Paths, and either
// rewrites each file in place or prints a unified diff, depending on
// cfg.DryRun.
func run(args []string, stdout io.Writer) error {
	var cfg Config
	parser, err := kong.New(&cfg,
		kong.Name("es6to5"),
		kong.Description("Rewrite class, for-of, rest/spread, and computed/shorthand object-literal syntax into ES5-compatible equivalents."),
		kong.Writers(stdout, io.Discard),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cfg.Config != "" {
		fileCfg, err := config.Load(cfg.Config)
		if err != nil {
			return err
		}
		merged := config.File{LanguageOut: cfg.LanguageOut, Paths: cfg.Paths, DryRun: cfg.DryRun, Report: cfg.Report}
		config.MergeUnderFlags(&merged, fileCfg)
		cfg.LanguageOut = merged.LanguageOut
		cfg.Paths = merged.Paths
		cfg.DryRun = merged.DryRun
		cfg.Report = merged.Report
	}

	log.SetOutput(stdout)
	log.Printf("Converting %d file(s), languageOut=%s", len(cfg.Paths), cfg.LanguageOut)

	languageOut := driver.ES5
	if cfg.LanguageOut == "es3" {
		languageOut = driver.ES3
	}

	reporter := report.New()
	for _, path := range cfg.Paths {
		if err := convertFile(path, languageOut, cfg.DryRun, stdout, reporter); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		reporter.AddFile(path)
	}

	if cfg.Report == "json" {
		if err := reporter.WriteJSON(stdout); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(path string, languageOut driver.LanguageOut, dryRun bool, stdout io.Writer, reporter *report.Reporter) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	root, err := frontend.Parse(path, string(src))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	ctx := driver.NewContext(languageOut)
	if err := convert.Process(ctx, nil, root); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	applyStats(reporter, ctx.Stats())
	reporter.SetNeedsRuntime(ctx.NeedsRuntime())
	reporter.AddDiagnostics(ctx.Diagnostics.Diagnostics())

	out := printer.Print(root)
	if !ctx.CodeChanged() {
		return nil
	}

	if dryRun {
		edits := myers.ComputeEdits(span.URIFromPath(path), string(src), out)
		unified := gotextdiff.ToUnified(path, path, string(src), edits)
		fmt.Fprint(stdout, unified)
		return nil
	}

	return os.WriteFile(path, []byte(out), 0o644)
}

func applyStats(r *report.Reporter, s driver.Stats) {
	for i := 0; i < s.ClassesLowered; i++ {
		r.IncClasses()
	}
	for i := 0; i < s.ForOfLowered; i++ {
		r.IncForOf()
	}
	for i := 0; i < s.RestParamsLowered; i++ {
		r.IncRestParams()
	}
	for i := 0; i < s.SpreadSitesLowered; i++ {
		r.IncSpreadSites()
	}
	for i := 0; i < s.ComputedPropsLowered; i++ {
		r.IncComputedProps()
	}
	for i := 0; i < s.ShorthandsLowered; i++ {
		r.IncShorthands()
	}
}
