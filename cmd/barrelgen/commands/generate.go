package commands

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/componentry/barrelgen/internal/config"
	"github.com/componentry/barrelgen/internal/watch"
	"github.com/componentry/barrelgen/pkg/barrel"
	"github.com/componentry/barrelgen/pkg/version"
)

// GenerateCommand holds the flags for the root generate command.
type GenerateCommand struct {
	output          string
	ext             string
	configPath      string
	threshold       int
	noSort          bool
	verbose         bool
	dryRun          bool
	forceExtensions bool
	watchMode       bool
	noColor         bool
}

// NewRootCommand creates and configures the barrelgen root command.
func NewRootCommand() *cobra.Command {
	c := &GenerateCommand{}

	cmd := &cobra.Command{
		Use:   "barrelgen [directory]",
		Short: "Generate a barrel file for a directory of UI components",
		Long: `Barrelgen scans a directory of TypeScript/TSX component sources and writes a
single barrel (re-export) file, marking type-level exports with specifier-level
type modifiers so strict module-isolation settings accept the output.

Classification is a best-effort heuristic over export syntax and naming
conventions, not a type-checker.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.Run,
	}

	cmd.Flags().StringVarP(&c.output, "output", "o", barrel.DefaultOutput, "output file name, written inside the target directory")
	cmd.Flags().BoolVar(&c.noSort, "no-sort", false, "keep directory enumeration order instead of sorting statements")
	cmd.Flags().IntVarP(&c.threshold, "single-line-threshold", "t", barrel.DefaultSingleLineThreshold, "maximum export count rendered as a single-line statement")
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "per-file progress and reclassification notices")
	cmd.Flags().BoolVar(&c.dryRun, "dry-run", false, "render to stdout without writing the output file")
	cmd.Flags().BoolVar(&c.forceExtensions, "force-extensions", false, "use each file's actual source extension in generated import paths")
	cmd.Flags().StringVar(&c.ext, "ext", "", "force one literal extension on every generated import path")
	cmd.Flags().StringVar(&c.configPath, "config", "", "config file (default .barrelgen.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&c.watchMode, "watch", false, "regenerate whenever component sources change")
	cmd.Flags().BoolVar(&c.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewMCPCommand())

	return cmd
}

// Run executes one generation pass, then optionally keeps watching.
func (c *GenerateCommand) Run(cmd *cobra.Command, args []string) error {
	if c.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	opts, err := c.buildOptions(cmd, args, cfg)
	if err != nil {
		return err
	}

	res, err := barrel.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if !c.watchMode || c.dryRun {
		return nil
	}

	// Pin the directory Generate actually used so probe redirects cannot
	// move the scan between regenerations.
	w, err := watch.New(filepath.Dir(res.OutputPath), opts)
	if err != nil {
		return err
	}
	defer w.Close()

	return w.Run(cmd.Context())
}

// buildOptions layers settings: built-in defaults, then config file/env,
// then explicitly set CLI flags.
func (c *GenerateCommand) buildOptions(cmd *cobra.Command, args []string, cfg *config.Config) (barrel.Options, error) {
	extMode, err := cfg.ExtensionMode()
	if err != nil {
		return barrel.Options{}, err
	}

	opts := barrel.Options{
		Dir:                 cfg.Dir,
		Output:              cfg.Output,
		NoSort:              !cfg.Sort,
		SingleLineThreshold: cfg.SingleLineThreshold,
		Header:              cfg.Header,
		TypePatterns:        cfg.TypePatterns,
		ExtMode:             extMode,
		Ext:                 cfg.Ext,
		DryRun:              c.dryRun,
		Verbose:             c.verbose,
	}

	if len(cfg.Exclude) > 0 {
		opts.Excludes = cfg.Exclude
	}

	if len(args) > 0 {
		opts.Dir = args[0]
	}

	flags := cmd.Flags()

	if flags.Changed("output") {
		opts.Output = c.output
	}

	if flags.Changed("no-sort") {
		opts.NoSort = c.noSort
	}

	if flags.Changed("single-line-threshold") {
		opts.SingleLineThreshold = c.threshold
	}

	// --ext beats --force-extensions beats config/auto detection.
	switch {
	case flags.Changed("ext"):
		opts.ExtMode = barrel.ExtModeOverride
		opts.Ext = c.ext
	case c.forceExtensions:
		opts.ExtMode = barrel.ExtModeActual
	}

	return opts, nil
}
