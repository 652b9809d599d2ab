package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/ini.v1"

	"github.com/streamforge/encoding-examples/internal/params"
)

// propertiesFileName is the file looked up inside each properties directory.
const propertiesFileName = "examples.properties"

// parseCommandLine exposes every registered parameter as an optional
// --<flag-name> string flag and parses args (the argument vector without the
// program name). Flags left unset produce no entry. Unknown flags are a
// usage error reported by kingpin itself.
func parseCommandLine(appName string, args []string) (map[string]string, error) {
	if len(args) == 0 {
		return map[string]string{}, nil
	}

	app := kingpin.New(appName, "Configuration flags for the encoding example programs.")
	specs := params.All()
	values := make(map[params.Key]*string, len(specs))
	for key, spec := range specs {
		values[key] = app.Flag(spec.FlagName, spec.Description).String()
	}

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	parsed := make(map[string]string, len(values))
	for key, value := range values {
		parsed[string(key)] = *value
	}
	return withoutEmptyValues(parsed), nil
}

// parsePropertiesFile reads <dir>/examples.properties as flat key=value text.
// Both "key=value" and "key: value" lines are accepted, '#' and ';' start
// comment lines, blank lines are skipped, and key names keep their exact
// case. A file that does not exist yields an empty map; any other failure is
// a *SourceReadError.
func parsePropertiesFile(dir string) (map[string]string, error) {
	path := filepath.Join(dir, propertiesFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &SourceReadError{Path: path, Err: err}
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}

	return withoutEmptyValues(file.Section(ini.DefaultSection).KeysHash()), nil
}

// parseEnvironment snapshots environ ("KEY=VALUE" entries, as returned by
// os.Environ) into a map. Later mutation of the process environment does not
// affect the snapshot.
func parseEnvironment(environ []string) map[string]string {
	parsed := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		parsed[key] = value
	}
	return withoutEmptyValues(parsed)
}

// withoutEmptyValues drops empty values so that an empty entry in one source
// can never shadow a real value in a lower-priority source.
func withoutEmptyValues(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if value != "" {
			out[key] = value
		}
	}
	return out
}
