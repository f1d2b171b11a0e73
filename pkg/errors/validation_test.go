package errors

import (
	"testing"
)

func TestValidateRepositoryURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://github.com/python/cpython.git", false},
		{"http", "http://example.com/repo.git", false},
		{"ssh", "ssh://git@github.com/python/cpython.git", false},
		{"scp style", "git@github.com:python/cpython.git", false},
		{"file url", "file:///srv/git/cpython", false},
		{"absolute path", "/srv/git/cpython", false},

		{"empty", "", true},
		{"bare scheme", "https://", true},
		{"relative path", "cpython", true},
		{"ftp", "ftp://example.com/repo", true},
		{"whitespace", "https://github.com/python/ cpython", true},
		{"newline", "https://github.com/python/cpython\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepositoryURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepositoryURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidURL) {
				t.Errorf("expected INVALID_URL code, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "matrix", false},
		{"dash", "python-version", false},
		{"underscore", "_private", false},

		{"empty", "", true},
		{"equals", "a=b", true},
		{"heredoc marker", "a<<b", true},
		{"newline", "a\nb", true},
		{"leading digit", "1matrix", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
