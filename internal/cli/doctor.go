package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pymatrix/pkg/buildinfo"
	"github.com/matzehuels/pymatrix/pkg/doctor"
	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/ghoutput"
)

// reportOutputName is the step output holding the doctor report.
const reportOutputName = "report"

// doctorCommand creates the doctor command.
func (c *CLI) doctorCommand() *cobra.Command {
	var python, tlsURL string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Print Python module locations and test TLS certificates",
		Long: `Ask the Python interpreter where it, os, pip and numpy are installed,
then make one HTTPS request to confirm the certificate store works.

Inside GitHub Actions the report is also written as the multi-line step
output "report". Intended as a smoke test at the end of a CI job.`,
		Example: `  pymatrix doctor
  pymatrix doctor --python python3.12 --tls-url https://pypi.org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("python") {
				cfg.Python = python
			}
			if cmd.Flags().Changed("tls-url") {
				cfg.TLSURL = tlsURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			logger.Debug("build", "info", buildinfo.String())

			report, err := doctor.Locate(ctx, c.runner, cfg.Python)
			if err != nil {
				return err
			}
			if err := report.Print(cmd.OutOrStdout()); err != nil {
				return err
			}
			if err := c.writeReportOutput(report); err != nil {
				return err
			}

			printInfo("Testing ssl certificates...")
			if err := doctor.CheckTLS(ctx, c.httpClient, cfg.TLSURL); err != nil {
				return err
			}
			printSuccess("TLS request to %s succeeded", cfg.TLSURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&python, "python", doctor.DefaultPython, "Python interpreter to probe")
	cmd.Flags().StringVar(&tlsURL, "tls-url", doctor.DefaultTLSURL, "HTTPS URL used for the certificate check")

	return cmd
}

// writeReportOutput appends the report to GITHUB_OUTPUT when it is set.
// Outside of GitHub Actions it does nothing.
func (c *CLI) writeReportOutput(report *doctor.Report) error {
	path, ok := c.lookupEnv(ghoutput.EnvVar)
	if !ok || path == "" {
		return nil
	}
	f, err := ghoutput.OpenFile(path)
	if err != nil {
		return err
	}
	if err := ghoutput.NewWriter(f).Set(reportOutputName, report.String()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "close %s", path)
	}
	printDetail("Wrote %s output", reportOutputName)
	return nil
}
