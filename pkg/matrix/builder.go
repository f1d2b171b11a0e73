package matrix

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pymatrix/pkg/errors"
	"github.com/matzehuels/pymatrix/pkg/observability"
)

// OutputName is the step output the encoded matrix is written under.
const OutputName = "matrix"

// Source lists the tag names of a repository.
type Source interface {
	List(ctx context.Context) ([]string, error)
}

// Output receives named step outputs.
type Output interface {
	Set(name, value string) error
}

// Builder turns tag lists into matrices.
//
// A Builder holds no state between calls; Build and Run may be called any
// number of times and produce the same result for the same tags.
type Builder struct {
	Filter Filter
	OS     []string
	Logger *log.Logger
}

// NewBuilder creates a builder.
// If filter is nil, a LexicalFilter with the default range is used.
// If osList is empty, DefaultOS is used.
// If logger is nil, log.Default() is used.
func NewBuilder(filter Filter, osList []string, logger *log.Logger) *Builder {
	if filter == nil {
		filter = NewLexicalFilter(DefaultMajor, DefaultMinMinor)
	}
	if len(osList) == 0 {
		osList = DefaultOS()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		Filter: filter,
		OS:     append([]string(nil), osList...),
		Logger: logger,
	}
}

// Build walks tags once and returns the matrix of qualifying versions in
// first-seen order. Tags normalizing to an already collected version are
// skipped.
func (b *Builder) Build(ctx context.Context, tags []string) *Matrix {
	hooks := observability.Matrix()

	m := &Matrix{
		OS:             append([]string(nil), b.OS...),
		PythonVersions: []string{},
	}
	seen := make(map[string]struct{})

	for _, tag := range tags {
		version, err := b.Filter.Qualify(tag)
		if err != nil {
			hooks.OnTagRejected(ctx, tag, err.Error())
			continue
		}
		if _, dup := seen[version]; dup {
			continue
		}
		seen[version] = struct{}{}
		m.PythonVersions = append(m.PythonVersions, version)
		hooks.OnVersionAccepted(ctx, tag, version)
	}

	hooks.OnBuildComplete(ctx, len(tags), len(m.PythonVersions))
	return m
}

// Run lists tags from src, builds the matrix and writes it to out under
// OutputName. Listing errors are returned as-is and nothing is written.
func (b *Builder) Run(ctx context.Context, src Source, out Output) (*Matrix, error) {
	tags, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	b.Logger.Debug("listed tags", "count", len(tags))

	m := b.Build(ctx, tags)
	b.Logger.Info("built matrix",
		"versions", len(m.PythonVersions),
		"os", len(m.OS))

	if err := out.Set(OutputName, m.Encode()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutput, err, "write %s output", OutputName)
	}
	return m, nil
}
