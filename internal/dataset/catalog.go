package dataset

import (
	"context"
	"log/slog"

	"github.com/euncover/euncover/internal/logger"
	"github.com/euncover/euncover/internal/mep"
)

// Catalog looks MEP records up by full display name.
// Lookups return ErrNotFound for absent names and a *LoadError when the
// backing dataset cannot be read.
type Catalog interface {
	Biography(ctx context.Context, name string) (mep.Biography, error)
	Declaration(ctx context.Context, name string) (mep.Declaration, error)
	Network(ctx context.Context, name string) (mep.Network, error)
	Articles(ctx context.Context, name string) ([]mep.Article, error)
}

// Paths locates the dataset files.
type Paths struct {
	Biographies  string
	Declarations string
	Networks     string
	Articles     string
}

// Files is a Catalog that reads the dataset files on every lookup, so a
// corrected file is picked up by the next render.
type Files struct {
	paths Paths
	log   *slog.Logger
}

// NewFiles returns a file-backed catalog.
func NewFiles(paths Paths) *Files {
	return &Files{paths: paths, log: logger.Discard()}
}

// WithLogger sets the logger that reports skipped rows.
func (f *Files) WithLogger(log *slog.Logger) *Files {
	if log != nil {
		f.log = log
	}
	return f
}

func (f *Files) logInvalid(path string, invalid []InvalidRow) {
	for _, row := range invalid {
		f.log.Warn("skipping invalid row", "path", path, "line", row.Line, "name", row.Name, "reason", row.Reason)
	}
}

// Paths returns the configured file locations.
func (f *Files) Paths() Paths {
	return f.paths
}

// Biography returns the biography of name. A row whose list columns could
// not be decoded is returned together with an error wrapping mep.ErrMalformedList.
func (f *Files) Biography(_ context.Context, name string) (mep.Biography, error) {
	rows, invalid, err := ReadBiographies(f.paths.Biographies)
	if err != nil {
		return mep.Biography{}, err
	}
	f.logInvalid(f.paths.Biographies, invalid)
	row, ok := FindBiography(rows, name)
	if !ok {
		return mep.Biography{}, notFound("biographies", name)
	}
	return row.Biography, row.Err
}

// Declaration returns the declaration of name.
func (f *Files) Declaration(_ context.Context, name string) (mep.Declaration, error) {
	decls, err := ReadDeclarations(f.paths.Declarations)
	if err != nil {
		return mep.Declaration{}, err
	}
	d, ok := decls[name]
	if !ok {
		return mep.Declaration{}, notFound("declarations", name)
	}
	return d, nil
}

// Network returns the relationship network of name.
func (f *Files) Network(_ context.Context, name string) (mep.Network, error) {
	networks, err := ReadNetworks(f.paths.Networks)
	if err != nil {
		return mep.Network{}, err
	}
	n, ok := networks[name]
	if !ok {
		return mep.Network{}, notFound("networks", name)
	}
	return n, nil
}

// Articles returns the articles mentioning name. No matches is not an error.
func (f *Files) Articles(_ context.Context, name string) ([]mep.Article, error) {
	articles, invalid, err := ReadArticles(f.paths.Articles)
	if err != nil {
		return nil, err
	}
	f.logInvalid(f.paths.Articles, invalid)
	return ArticlesFor(articles, name), nil
}
