package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/assets"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/hints"
	"github.com/alnah/go-resume2pdf/internal/schema"
)

// Sentinel errors for CLI-level failures.
var (
	ErrNoInput       = errors.New("no input file given (use - for stdin)")
	ErrReadInput     = errors.New("failed to read resume input")
	ErrInvalidFormat = errors.New("invalid output format")
)

// run executes one generation: read input, validate, render, write.
func run(env *Environment, flags *cliFlags, args []string) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	inputPath := args[0]

	cfg := env.Config
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyEnvOverrides(env, cfg)

	data, err := readInput(env, inputPath)
	if err != nil {
		return err
	}

	if !flags.skipValidation && !cfg.Input.SkipValidation {
		if err := schema.Validate(data); err != nil {
			return err
		}
	}

	resume, err := resume2pdf.ParseResume(data)
	if err != nil {
		return err
	}

	opts, err := buildRenderOptions(cfg, flags)
	if err != nil {
		return err
	}

	format := resolveFormat(cfg, flags)
	outputPath, err := resolveOutputPath(flags.output, cfg, inputPath, format)
	if err != nil {
		return err
	}
	opts.OutputPath = outputPath

	genOpts, err := generatorOptions(cfg, flags)
	if err != nil {
		return err
	}
	g := resume2pdf.NewGenerator(genOpts...)
	defer func() { _ = g.Close() }()

	switch format {
	case "pdf":
		err = g.GeneratePDF(context.Background(), resume, opts)
	case "html":
		err = g.GenerateHTML(resume, opts)
	case "txt":
		err = g.GenerateText(resume, opts)
	default:
		return fmt.Errorf("%w: %q (must be pdf, html, or txt)", ErrInvalidFormat, format)
	}
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, outputPath)
	}
	return nil
}

// readInput reads résumé JSON from a file, or stdin when path is "-".
func readInput(env *Environment, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	return data, nil
}

// buildRenderOptions merges config file and flag values; flags win.
func buildRenderOptions(cfg *config.Config, flags *cliFlags) (resume2pdf.RenderOptions, error) {
	opts := resume2pdf.DefaultRenderOptions()

	if cfg.Render.Template != "" {
		opts.Template = cfg.Render.Template
	}
	if flags.render.template != "" {
		opts.Template = flags.render.template
	}

	opts.ATSMode = cfg.Render.ATSMode || flags.render.ats

	opts.Deterministic = cfg.Determinism.Enabled
	if flags.determinism.disabled {
		opts.Deterministic = false
	}

	if cfg.Determinism.FixedCreationDate != "" {
		opts.Determinism.FixedCreationDate = cfg.Determinism.FixedCreationDate
	}
	if flags.determinism.fixedDate != "" {
		opts.Determinism.FixedCreationDate = flags.determinism.fixedDate
	}

	return opts, opts.Validate()
}

// generatorOptions maps config and flags onto Generator options.
func generatorOptions(cfg *config.Config, flags *cliFlags) ([]resume2pdf.Option, error) {
	var genOpts []resume2pdf.Option

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid --timeout %q (want e.g. 30s)", flags.timeout)
		}
		genOpts = append(genOpts, resume2pdf.WithContentTimeout(d))
	} else if cfg.Browser.ContentTimeoutSec > 0 {
		genOpts = append(genOpts, resume2pdf.WithContentTimeout(time.Duration(cfg.Browser.ContentTimeoutSec)*time.Second))
	}

	if cfg.Browser.IdleTimeoutSec > 0 {
		genOpts = append(genOpts, resume2pdf.WithIdleTimeout(time.Duration(cfg.Browser.IdleTimeoutSec)*time.Second))
	}

	if flags.determinism.verify || cfg.Determinism.Verify {
		genOpts = append(genOpts, resume2pdf.WithVerifyOutput())
	}

	return genOpts, nil
}

// resolveFormat picks the output format; flags win over config.
func resolveFormat(cfg *config.Config, flags *cliFlags) string {
	if flags.format != "" {
		return strings.ToLower(flags.format)
	}
	if cfg.Output.Format != "" {
		return strings.ToLower(cfg.Output.Format)
	}
	return "pdf"
}

// resolveOutputPath derives the artifact path. An explicit file path wins;
// an explicit directory (or the config default dir) gets the input's base
// name with the format's extension; otherwise the artifact lands next to
// the input. Stdin input defaults to "resume.<ext>". The containing
// directory is created if missing.
func resolveOutputPath(output string, cfg *config.Config, inputPath, format string) (string, error) {
	base := "resume"
	if inputPath != "-" {
		base = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}
	name := base + "." + format

	var path string
	switch {
	case output != "" && isDir(output):
		path = filepath.Join(output, name)
	case output != "":
		path = output
	case cfg.Output.DefaultDir != "":
		path = filepath.Join(cfg.Output.DefaultDir, name)
	case inputPath != "-":
		path = filepath.Join(filepath.Dir(inputPath), name)
	default:
		path = name
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	return path, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hintFor appends an actionable hint to boundary errors where one exists.
func hintFor(err error) string {
	switch {
	case errors.Is(err, resume2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case isValidationError(err):
		return hints.ForSchemaValidation()
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.ListTemplates())
	case errors.Is(err, resume2pdf.ErrFileSystem):
		return hints.ForOutputDirectory()
	}
	return ""
}

func isValidationError(err error) bool {
	var ve *schema.ValidationError
	return errors.As(err, &ve)
}
