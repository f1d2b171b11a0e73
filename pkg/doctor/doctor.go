// Package doctor checks that a CI runner's Python installation is usable.
//
// [Locate] asks an interpreter where it and its core modules live, and
// [CheckTLS] makes one HTTPS request to confirm the trust store works.
package doctor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/observability"
)

const (
	// DefaultPython is the interpreter probed when none is configured.
	DefaultPython = "python"

	// DefaultTLSURL is requested by CheckTLS when no URL is configured.
	DefaultTLSURL = "https://google.com"

	httpTimeout = 10 * time.Second
)

// probe prints one location per line, in Report field order.
const probe = `import sys, os, pip, numpy
print(sys.executable)
print(os.__file__)
print(pip.__file__)
print(numpy.__file__)`

// Report holds the locations printed by the doctor command.
type Report struct {
	Executable string
	OS         string
	Pip        string
	Numpy      string
}

// String returns the four "label: value" lines without a trailing newline.
func (r *Report) String() string {
	return fmt.Sprintf("executable: %s\nos location: %s\npip location: %s\nnumpy location: %s",
		r.Executable, r.OS, r.Pip, r.Numpy)
}

// Print writes the four "label: value" lines.
func (r *Report) Print(w io.Writer) error {
	_, err := io.WriteString(w, r.String()+"\n")
	return err
}

// CommandRunner runs name with args and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec. On failure the returned error
// includes the command's standard error.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, lastLine(msg))
		}
		return nil, err
	}
	return out, nil
}

// Locate runs python with a short probe script and parses its output.
// If run is nil, ExecRunner is used.
func Locate(ctx context.Context, run CommandRunner, python string) (*Report, error) {
	if run == nil {
		run = ExecRunner
	}
	if python == "" {
		python = DefaultPython
	}

	out, err := run(ctx, python, "-c", probe)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInterpreter, err, "probe %s", python)
	}

	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(string(out), "\r\n", "\n")), "\n")
	if len(lines) != 4 {
		return nil, errors.New(errors.ErrCodeInterpreter, "unexpected probe output from %s: %q", python, out)
	}
	return &Report{
		Executable: lines[0],
		OS:         lines[1],
		Pip:        lines[2],
		Numpy:      lines[3],
	}, nil
}

// NewHTTPClient creates an HTTP client with a standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// CheckTLS performs one GET request to rawURL and fails on any transport
// error, including certificate verification, or on a 4xx/5xx status.
func CheckTLS(ctx context.Context, client *http.Client, rawURL string) error {
	if client == nil {
		client = NewHTTPClient()
	}
	if rawURL == "" {
		rawURL = DefaultTLSURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", rawURL)
	}

	hooks := observability.HTTP()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", rawURL)
	}

	hooks.OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, u.Host, u.Path, err)
		return errors.Wrap(errors.ErrCodeTLS, err, "GET %s", rawURL)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	hooks.OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.New(errors.ErrCodeNetwork, "GET %s: status %d", rawURL, resp.StatusCode)
	}
	return nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
