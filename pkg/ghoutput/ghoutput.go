// Package ghoutput writes GitHub Actions step outputs.
//
// Outputs are appended to the file named by the GITHUB_OUTPUT environment
// variable, one entry per call:
//
//	matrix={"os": [...], "python-version": [...]}
//
// Values containing newlines use the heredoc form with a random delimiter:
//
//	report<<ghadelimiter_6f1c...
//	line one
//	line two
//	ghadelimiter_6f1c...
//
// Only the CLI entry point reads the environment; everything else receives
// an io.Writer through [NewWriter].
package ghoutput

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/pymatrix/pkg/errors"
)

// EnvVar names the environment variable holding the output file path.
const EnvVar = "GITHUB_OUTPUT"

// Writer appends step outputs to an underlying writer.
type Writer struct {
	w         io.Writer
	delimiter func() string
}

// NewWriter creates a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, delimiter: randomDelimiter}
}

// Set writes name=value, switching to the heredoc form when value spans
// multiple lines.
func (w *Writer) Set(name, value string) error {
	if err := errors.ValidateOutputName(name); err != nil {
		return err
	}

	var entry string
	if strings.ContainsAny(value, "\r\n") {
		delim := w.delimiter()
		if strings.Contains(value, delim) {
			return errors.New(errors.ErrCodeOutput, "value of %s contains its delimiter", name)
		}
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
	} else {
		entry = fmt.Sprintf("%s=%s\n", name, value)
	}

	if _, err := io.WriteString(w.w, entry); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "write output %s", name)
	}
	return nil
}

func randomDelimiter() string {
	return "ghadelimiter_" + uuid.NewString()
}

// OpenFile opens path for appending, creating it if needed.
// The caller must close the returned file.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutput, err, "open output file")
	}
	return f, nil
}

// PathFromEnv returns the output file path from lookup (usually
// os.LookupEnv). An unset or empty variable is a configuration error.
func PathFromEnv(lookup func(string) (string, bool)) (string, error) {
	path, ok := lookup(EnvVar)
	if !ok || path == "" {
		return "", errors.New(errors.ErrCodeConfig, "%s is not set; run inside GitHub Actions or pass --output", EnvVar)
	}
	return path, nil
}
