package tags

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/observability"
)

// RemoteSource lists tags by advertising the remote's references into
// in-memory storage. No objects are downloaded.
type RemoteSource struct {
	URL string
}

// NewRemoteSource creates a RemoteSource for url.
func NewRemoteSource(url string) *RemoteSource {
	return &RemoteSource{URL: url}
}

// List returns the tag names advertised by the remote.
func (s *RemoteSource) List(ctx context.Context) (names []string, err error) {
	hooks := observability.Source()
	start := time.Now()
	hooks.OnListStart(ctx, KindRemote, s.URL)
	defer func() {
		hooks.OnListComplete(ctx, KindRemote, s.URL, len(names), time.Since(start), err)
	}()

	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{s.URL},
	})
	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list references of %s", s.URL)
	}
	return tagNames(refs), nil
}

// tagNames keeps refs/tags/* entries, drops peeled "^{}" duplicates and
// returns the short names sorted.
func tagNames(refs []*plumbing.Reference) []string {
	var names []string
	for _, ref := range refs {
		if !ref.Name().IsTag() {
			continue
		}
		name := ref.Name().Short()
		if strings.HasSuffix(name, "^{}") {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
