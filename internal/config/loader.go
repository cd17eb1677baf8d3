package config

import (
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader reads options files from a file system. The format follows
// the file extension: .yaml, .yml or .toml.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
}

type LoaderOption func(*Loader)

func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{fsys: fsys}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = zap.NewNop()
	}

	return l
}

func (l *Loader) Load(name string) (*Config, error) {
	var parse func([]byte) (*Config, error)

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", name)
	}

	l.logger.Debug("loading config", zap.String("name", name), zap.Int("size", len(data)))

	cfg, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", name)
	}
	return cfg, nil
}
