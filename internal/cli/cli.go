package cli

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pymatrix/pkg/buildinfo"
	"github.com/matzehuels/pymatrix/pkg/config"
	"github.com/matzehuels/pymatrix/pkg/doctor"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// lookupEnv reads the environment; replaced in tests.
	lookupEnv func(string) (string, bool)

	// runner and httpClient back the doctor command; nil selects the
	// doctor package defaults.
	runner     doctor.CommandRunner
	httpClient *http.Client

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level, lookupEnv func(string) (string, bool)) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		lookupEnv: lookupEnv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pymatrix",
		Short:         "pymatrix derives CI build matrices of supported Python versions",
		Long:          `pymatrix reads the CPython tag list, picks the final 3.x releases from 3.7 on, and writes a GitHub Actions matrix of operating systems and Python versions.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			registerHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.doctorCommand())

	return root
}

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}
