package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateRepositoryURL validates a git remote URL before it is handed to the
// clone or listing transport.
//
// Accepted forms:
//   - https:// and http:// URLs
//   - ssh:// and git:// URLs
//   - scp-style git@host:owner/repo
//   - file:// URLs and absolute local paths
func ValidateRepositoryURL(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidURL, "repository URL cannot be empty")
	}

	for _, r := range raw {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidURL, "repository URL contains invalid characters: %q", raw)
		}
	}

	for _, prefix := range []string{"https://", "http://", "ssh://", "git://", "file://", "git@", "/"} {
		if strings.HasPrefix(raw, prefix) && len(raw) > len(prefix) {
			return nil
		}
	}
	return New(ErrCodeInvalidURL, "unsupported repository URL: %q", raw)
}

// outputNameRegex matches names accepted by the GitHub Actions output file.
var outputNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateOutputName validates a step output name.
// Names may not contain '=', '<' or newlines since those delimit the
// name=value and heredoc forms of the output file.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidOutput, "output name cannot be empty")
	}
	if !outputNameRegex.MatchString(name) {
		return New(ErrCodeInvalidOutput, "invalid output name: %q", name)
	}
	return nil
}
