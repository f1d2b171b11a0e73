// Package pkg provides the libraries behind pymatrix.
//
// # Overview
//
// pymatrix turns the CPython tag list into a GitHub Actions build matrix.
// The pkg directory is organized by concern:
//
//  1. [tags] - Tag sources (bare clone, remote listing, static lists)
//  2. [matrix] - Tag filters, the matrix type and its builder
//  3. [ghoutput] - GITHUB_OUTPUT writer
//  4. [doctor] - Interpreter and TLS diagnostics
//  5. [config] - pymatrix.toml loading and validation
//
// Supporting packages: [errors] for coded errors, [observability] for hooks,
// and [buildinfo] for ldflags-injected version data.
//
// # Architecture
//
// The data flow of the matrix command:
//
//	CPython repository
//	         ↓
//	    [tags] package (clone or ls-remote, sorted tag names)
//	         ↓
//	    [matrix] package (filter, dedup, encode)
//	         ↓
//	    [ghoutput] package (append matrix=<json> to $GITHUB_OUTPUT)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/pymatrix/pkg/ghoutput"
//	    "github.com/matzehuels/pymatrix/pkg/matrix"
//	    "github.com/matzehuels/pymatrix/pkg/tags"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    path, err := ghoutput.PathFromEnv(os.LookupEnv)
//	    if err != nil {
//	        panic(err)
//	    }
//	    f, err := ghoutput.OpenFile(path)
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer f.Close()
//
//	    b := matrix.NewBuilder(matrix.NewLexicalFilter(3, 7), nil, nil)
//	    if _, err := b.Run(ctx, tags.NewCloneSource(tags.DefaultRepository), ghoutput.NewWriter(f)); err != nil {
//	        panic(err)
//	    }
//	}
//
// [tags]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/tags
// [matrix]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/matrix
// [ghoutput]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/ghoutput
// [doctor]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/doctor
// [config]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pymatrix/pkg/buildinfo
package pkg
