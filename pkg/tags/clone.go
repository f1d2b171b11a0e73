package tags

import (
	"context"
	"io"
	"os"
	"slices"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/observability"
)

// cloneFunc clones url into dir and returns the opened repository.
type cloneFunc func(ctx context.Context, dir, url string, progress io.Writer) (*git.Repository, error)

// CloneSource clones a repository into a temporary directory to read its tags.
type CloneSource struct {
	URL string

	// TempDir is the parent of the working directory. Empty means os.TempDir().
	TempDir string

	// Progress receives the remote's sideband progress output, if set.
	Progress io.Writer

	clone cloneFunc
}

// NewCloneSource creates a CloneSource for url.
func NewCloneSource(url string) *CloneSource {
	return &CloneSource{URL: url, clone: bareClone}
}

// List clones the repository and returns its tag names.
//
// The working directory is created before cloning and removed when List
// returns, whether cloning, opening or tag iteration failed or not.
func (s *CloneSource) List(ctx context.Context) (names []string, err error) {
	hooks := observability.Source()
	start := time.Now()
	hooks.OnListStart(ctx, KindClone, s.URL)
	defer func() {
		hooks.OnListComplete(ctx, KindClone, s.URL, len(names), time.Since(start), err)
	}()

	dir, err := os.MkdirTemp(s.TempDir, "pymatrix-clone-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create working directory")
	}
	defer os.RemoveAll(dir)

	clone := s.clone
	if clone == nil {
		clone = bareClone
	}
	repo, err := clone(ctx, dir, s.URL, s.Progress)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeClone, err, "clone %s", s.URL)
	}
	return repoTags(repo)
}

// bareClone fetches every tag without checking out a worktree.
func bareClone(ctx context.Context, dir, url string, progress io.Writer) (*git.Repository, error) {
	return git.PlainCloneContext(ctx, dir, true, &git.CloneOptions{
		URL:      url,
		Tags:     git.AllTags,
		Progress: progress,
	})
}

// repoTags returns the short names of all tags in repo, sorted.
func repoTags(repo *git.Repository) ([]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeClone, err, "read tags")
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeClone, err, "iterate tags")
	}
	slices.Sort(names)
	return names, nil
}
