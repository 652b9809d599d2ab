package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/streamforge/encoding-examples/internal/params"
)

// Source names in resolution order. Earlier sources take precedence.
const (
	sourceCommandLine    = "command line arguments"
	sourceLocalFile      = "local properties file"
	sourceEnvironment    = "environment variables"
	sourceUserFile       = "user properties file"
	userPropertiesSubdir = ".bitmovin"
)

// source pairs a human-readable origin name with the values parsed from it.
type source struct {
	name   string
	values map[string]string
}

// Resolver answers "what is the value of parameter K" by scanning an ordered
// list of configuration sources. All sources are parsed once, eagerly, when
// the Resolver is constructed; lookups afterwards are pure in-memory scans.
//
// Priority order: command line arguments, then examples.properties in the
// working directory, then environment variables, then examples.properties
// under ~/.bitmovin.
type Resolver struct {
	sources []source
	logger  *zap.Logger
}

// Option configures Resolver construction.
type Option func(*settings)

type settings struct {
	appName string
	args    []string
	workDir string
	homeDir string
	environ []string
	logger  *zap.Logger
}

// WithArgs overrides the command-line argument vector (without the program
// name). Defaults to os.Args[1:].
func WithArgs(args []string) Option {
	return func(s *settings) {
		s.args = args
	}
}

// WithWorkingDir overrides the directory searched for the local
// examples.properties file. Defaults to the current working directory.
func WithWorkingDir(dir string) Option {
	return func(s *settings) {
		s.workDir = dir
	}
}

// WithHomeDir overrides the directory whose .bitmovin subdirectory is
// searched for the user examples.properties file. Defaults to the user's
// home directory.
func WithHomeDir(dir string) Option {
	return func(s *settings) {
		s.homeDir = dir
	}
}

// WithEnviron overrides the environment snapshot ("KEY=VALUE" entries).
// Defaults to os.Environ().
func WithEnviron(environ []string) Option {
	return func(s *settings) {
		s.environ = environ
	}
}

// WithLogger sets the logger used to record which source satisfied each
// lookup. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New parses all four configuration sources and returns a Resolver holding
// them in priority order. Construction fails if the command line cannot be
// parsed or if a properties file exists but cannot be read.
func New(appName string, opts ...Option) (*Resolver, error) {
	s := settings{
		appName: appName,
		args:    os.Args[1:],
		environ: os.Environ(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.workDir == "" {
		workDir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		s.workDir = workDir
	}
	if s.homeDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		s.homeDir = homeDir
	}

	cli, err := parseCommandLine(s.appName, s.args)
	if err != nil {
		return nil, err
	}

	local, err := parsePropertiesFile(s.workDir)
	if err != nil {
		return nil, err
	}

	user, err := parsePropertiesFile(filepath.Join(s.homeDir, userPropertiesSubdir))
	if err != nil {
		return nil, err
	}

	return &Resolver{
		sources: []source{
			{name: sourceCommandLine, values: cli},
			{name: sourceLocalFile, values: local},
			{name: sourceEnvironment, values: parseEnvironment(s.environ)},
			{name: sourceUserFile, values: user},
		},
		logger: s.logger,
	}, nil
}

// Get returns the value of key from the highest-priority source containing
// it with a non-empty value. If no source contains the key, a
// *MissingParameterError is returned carrying the key and its registered
// description (or a generic one for unregistered keys).
func (r *Resolver) Get(key params.Key) (string, error) {
	for _, src := range r.sources {
		if value, ok := src.values[string(key)]; ok {
			r.logger.Info("resolved configuration parameter",
				zap.String("key", string(key)),
				zap.String("source", src.name),
			)
			return value, nil
		}
	}
	return "", newMissingParameterError(key)
}

// normalizeBasePath turns an S3 base path into a path-prefix form suitable
// for concatenation with object keys: a single leading '/' is stripped and
// exactly one trailing '/' is guaranteed. The transformation is idempotent.
func normalizeBasePath(value string) string {
	value = strings.TrimPrefix(value, "/")
	if !strings.HasSuffix(value, "/") {
		value += "/"
	}
	return value
}
