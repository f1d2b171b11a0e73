package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pymatrix/pkg/config"
	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/ghoutput"
	"github.com/matzehuels/pymatrix/pkg/matrix"
	"github.com/matzehuels/pymatrix/pkg/tags"
)

// matrixOpts holds flag values for the matrix command.
type matrixOpts struct {
	repository string
	source     string
	filter     string
	major      int
	minMinor   int
	constraint string
	osList     []string
	output     string
	stdout     bool
	tagsFile   string
}

// matrixCommand creates the matrix command.
func (c *CLI) matrixCommand() *cobra.Command {
	var opts matrixOpts

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Write the Python version matrix to the GitHub Actions output",
		Long: `Read the tags of the CPython repository, keep final 3.x releases from 3.7 on,
and append a line of the form

  matrix={"os": ["ubuntu-22.04", "windows-2022", "macos-14"], "python-version": [...]}

to the file named by GITHUB_OUTPUT.`,
		Example: `  # Inside a workflow step
  pymatrix matrix

  # Locally, without cloning
  pymatrix matrix --source remote --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runMatrix(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.repository, "repo", tags.DefaultRepository, "repository to read tags from")
	cmd.Flags().StringVar(&opts.source, "source", tags.KindClone, "tag source: clone or remote")
	cmd.Flags().StringVar(&opts.filter, "filter", config.FilterLexical, "tag filter: lexical or semver")
	cmd.Flags().IntVar(&opts.major, "major", matrix.DefaultMajor, "major version to accept (lexical filter)")
	cmd.Flags().IntVar(&opts.minMinor, "min-minor", matrix.DefaultMinMinor, "lowest minor version to accept (lexical filter)")
	cmd.Flags().StringVar(&opts.constraint, "constraint", matrix.DefaultConstraint, "version constraint (semver filter)")
	cmd.Flags().StringSliceVar(&opts.osList, "os", matrix.DefaultOS(), "runner operating systems")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default $"+ghoutput.EnvVar+")")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the output line instead of writing a file")
	cmd.Flags().StringVar(&opts.tagsFile, "tags-file", "", "read tags from a file (one per line) instead of the repository")
	cmd.MarkFlagsMutuallyExclusive("output", "stdout")
	registerMatrixCompletions(cmd)

	return cmd
}

// apply copies explicitly set flags over the config file values.
func (o *matrixOpts) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("repo") {
		cfg.Repository = o.repository
	}
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("filter") {
		cfg.Filter = o.filter
	}
	if flags.Changed("major") {
		cfg.Major = o.major
	}
	if flags.Changed("min-minor") {
		cfg.MinMinor = o.minMinor
	}
	if flags.Changed("constraint") {
		cfg.Constraint = o.constraint
	}
	if flags.Changed("os") {
		cfg.OS = o.osList
	}
}

// runMatrix resolves the output destination first so a misconfigured run
// fails before any network access, then lists, builds and writes.
func (c *CLI) runMatrix(ctx context.Context, stdout io.Writer, cfg *config.Config, opts matrixOpts) error {
	logger := loggerFromContext(ctx)

	sink, closeSink, dest, err := c.openSink(stdout, opts)
	if err != nil {
		return err
	}
	defer closeSink()

	src, err := c.newSource(cfg, opts)
	if err != nil {
		return err
	}
	filter, err := cfg.NewFilter()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Reading tags from "+cfg.Repository)
	spinner.Start()
	m, err := matrix.NewBuilder(filter, cfg.OS, logger).Run(ctx, spinnerSource{src, spinner}, sink)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("Built matrix")

	if err := closeSink(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "close %s", dest)
	}

	if len(m.PythonVersions) == 0 {
		printWarning("No tags qualified; python-version is empty")
	} else {
		printSuccess("Wrote %s output with %d Python versions", matrix.OutputName, len(m.PythonVersions))
	}
	printKeyValue("os", strings.Join(m.OS, ", "))
	printKeyValue("versions", strings.Join(m.PythonVersions, ", "))
	printDetail("Destination: %s", dest)
	return nil
}

// openSink returns the output writer selected by flags or the environment.
// The returned close function is safe to call more than once.
func (c *CLI) openSink(stdout io.Writer, opts matrixOpts) (*ghoutput.Writer, func() error, string, error) {
	if opts.stdout {
		return ghoutput.NewWriter(stdout), func() error { return nil }, "stdout", nil
	}

	path := opts.output
	if path == "" {
		var err error
		if path, err = ghoutput.PathFromEnv(c.lookupEnv); err != nil {
			return nil, nil, "", err
		}
	}

	f, err := ghoutput.OpenFile(path)
	if err != nil {
		return nil, nil, "", err
	}
	closed := false
	closeFn := func() error {
		if closed {
			return nil
		}
		closed = true
		return f.Close()
	}
	return ghoutput.NewWriter(f), closeFn, path, nil
}

// newSource picks the tag source: a tags file wins over the repository.
func (c *CLI) newSource(cfg *config.Config, opts matrixOpts) (matrix.Source, error) {
	if opts.tagsFile != "" {
		return tags.ReadFile(opts.tagsFile)
	}
	return tags.New(cfg.Source, cfg.Repository)
}

// spinnerSource stops the spinner as soon as listing finishes so later log
// lines are not overwritten.
type spinnerSource struct {
	matrix.Source
	spinner *Spinner
}

func (s spinnerSource) List(ctx context.Context) ([]string, error) {
	defer s.spinner.Stop()
	return s.Source.List(ctx)
}
