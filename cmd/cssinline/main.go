// Command cssinline moves the embedded stylesheets of an HTML document into
// inline style attributes, for use in emails.
//
//    cssinline [--strip-attrs] [--config FILE] [SOURCE [DESTINATION]]
//
// SOURCE and DESTINATION default to stdin and stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	inliner "github.com/lasse-unity3d/CSS-Inliner"
	"github.com/lasse-unity3d/CSS-Inliner/dom/domdbg"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

var traceKeys = []string{"inliner", "inliner.cascade", "inliner.cssom", "inliner.dom", "inliner.style"}

func main() {
	app := &cli.Command{
		Name:            "cssinline",
		Usage:           "inlines the stylesheets of an HTML document (for emails)",
		ArgsUsage:       "[SOURCE [DESTINATION]]",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "strip-attrs", Usage: "remove id and class attributes after inlining"},
			&cli.BoolFlag{Name: "leave-style", Usage: "keep <style> blocks in the document"},
			&cli.BoolFlag{Name: "preserve", Usage: "keep rules which cannot be inlined (:hover, @media) in a <style> block"},
			&cli.BoolFlag{Name: "strict", Usage: "fail if a selector has been skipped"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "trace the cascade"},
			&cli.BoolFlag{Name: "dump", Usage: "log the document tree after inlining"},
			&cli.StringFlag{Name: "dot", Usage: "write the document tree after inlining to `FILE` (GraphViz DOT)"},
		},
		Action: run,
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) (err error) {
	cfg, err := LoadConfiguration(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	cfg.applyFlags(cmd)

	log, err := newLogger(cmd.Bool("debug") || cfg.Dump)
	if err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	defer func() { _ = log.Sync() }()
	if cmd.Bool("debug") {
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}

	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)

	var in io.Reader = os.Stdin
	if src != "" && src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("unable to open source: %w", err)
		}
		defer f.Close()
		in = f
	}
	var out io.Writer = os.Stdout
	if dst != "" && dst != "-" {
		f, ferr := os.Create(dst)
		if ferr != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, ferr)
		}
		defer func() {
			if er := f.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close destination file '%s': %w", dst, er))
			}
		}()
		out = f
	}
	log.Debug("Inlining", zap.String("source", src), zap.String("destination", dst),
		zap.Bool("strip-attrs", cfg.Inliner.StripAttrs), zap.Bool("leave-style", cfg.Inliner.LeaveStyle))
	return process(in, out, cfg, log)
}

// ErrSkippedSelectors is returned in strict mode if any selector could not be
// inlined.
var ErrSkippedSelectors = errors.New("selectors have been skipped")

// process reads a document from in, inlines it and writes the result to out.
func process(in io.Reader, out io.Writer, cfg *Config, log *zap.Logger) error {
	inl := inliner.New(cfg.Inliner)
	if err := inl.Read(in); err != nil {
		return err
	}
	if err := inl.InlineDocument(); err != nil {
		return err
	}
	var warnings error
	for _, w := range inl.Warnings() {
		log.Warn("Selector skipped", zap.Error(w))
		warnings = multierr.Append(warnings, w)
	}
	if cfg.Dump {
		log.Debug("Document tree after inlining", zap.String("tree", domdbg.Print(inl.Document())))
	}
	if cfg.Dot != "" {
		if err := writeDot(cfg.Dot, inl.Document()); err != nil {
			return err
		}
	}
	if err := inl.Render(out); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}
	if warnings != nil && cfg.Strict {
		return fmt.Errorf("%w: %v", ErrSkippedSelectors, warnings)
	}
	return nil
}

// writeDot writes a document tree as GraphViz DOT, including inline styles.
func writeDot(fname string, doc *html.Node) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create DOT file '%s': %w", fname, err)
	}
	defer func() {
		if er := f.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close DOT file '%s': %w", fname, er))
		}
	}()
	if err := domdbg.ToGraphViz(doc, f, true); err != nil {
		return fmt.Errorf("unable to write DOT file '%s': %w", fname, err)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	conf := zap.NewDevelopmentConfig()
	conf.DisableCaller = true
	conf.DisableStacktrace = true
	if !debug {
		conf.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return conf.Build()
}
