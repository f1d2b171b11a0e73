// Package tags lists tag names from git repositories.
//
// Three sources are available:
//   - [CloneSource] clones the repository into a temporary directory and
//     reads its tags. The directory is always removed before List returns.
//   - [RemoteSource] asks the remote for its references without fetching any
//     objects, which is much cheaper for large repositories.
//   - [StaticSource] returns a fixed list, for tests and offline runs.
//
// All sources return names without the refs/tags/ prefix, sorted
// lexically so repeated runs see the same order. Failures are returned
// as-is; nothing is retried.
package tags

import (
	"bufio"
	"context"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/observability"
)

// Source kinds, as accepted by configuration and reported to hooks.
const (
	KindClone  = "clone"
	KindRemote = "remote"
	KindStatic = "static"
)

// DefaultRepository is the CPython source repository.
const DefaultRepository = "https://github.com/python/cpython.git"

// Source lists the tag names of a repository.
type Source interface {
	List(ctx context.Context) ([]string, error)
}

// New returns the source of the given kind for url.
func New(kind, url string) (Source, error) {
	if err := errors.ValidateRepositoryURL(url); err != nil {
		return nil, err
	}
	switch kind {
	case KindClone, "":
		return NewCloneSource(url), nil
	case KindRemote:
		return NewRemoteSource(url), nil
	default:
		return nil, errors.New(errors.ErrCodeConfig, "unknown tag source %q (want %s or %s)", kind, KindClone, KindRemote)
	}
}

// StaticSource is a fixed list of tag names.
type StaticSource []string

// List returns a sorted copy of the tag names. Hooks see it as a listing
// of kind KindStatic with an empty URL.
func (s StaticSource) List(ctx context.Context) ([]string, error) {
	hooks := observability.Source()
	start := time.Now()
	hooks.OnListStart(ctx, KindStatic, "")

	names := slices.Clone([]string(s))
	slices.Sort(names)

	hooks.OnListComplete(ctx, KindStatic, "", len(names), time.Since(start), nil)
	return names, nil
}

// ReadFile loads a StaticSource from a file with one tag per line.
// Blank lines and lines starting with '#' are skipped.
func ReadFile(path string) (StaticSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "open tags file")
	}
	defer f.Close()

	var names StaticSource
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "read tags file")
	}
	return names, nil
}

var (
	_ Source = (*CloneSource)(nil)
	_ Source = (*RemoteSource)(nil)
	_ Source = StaticSource(nil)
)
