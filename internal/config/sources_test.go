package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProperties(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, propertiesFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties file: %v", err)
	}
	return path
}

func TestParseCommandLine(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		parsed, err := parseCommandLine("test", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(parsed) != 0 {
			t.Fatalf("expected empty map, got %v", parsed)
		}
	})

	t.Run("registered flags", func(t *testing.T) {
		args := []string{"--bitmovin-api-key=secret", "--http-input-host", "example.com"}
		parsed, err := parseCommandLine("test", args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := parsed["BITMOVIN_API_KEY"]; got != "secret" {
			t.Fatalf("unexpected api key %q", got)
		}
		if got := parsed["HTTP_INPUT_HOST"]; got != "example.com" {
			t.Fatalf("unexpected input host %q", got)
		}
		if len(parsed) != 2 {
			t.Fatalf("unset flags must produce no entries, got %v", parsed)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, err := parseCommandLine("test", []string{"--no-such-flag=x"}); err == nil {
			t.Fatalf("expected error for unknown flag")
		}
	})

	t.Run("empty flag value dropped", func(t *testing.T) {
		parsed, err := parseCommandLine("test", []string{"--drm-key="})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := parsed["DRM_KEY"]; ok {
			t.Fatalf("empty flag value must not produce an entry")
		}
	})
}

func TestParsePropertiesFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		parsed, err := parsePropertiesFile(t.TempDir())
		if err != nil {
			t.Fatalf("missing file must not be an error, got %v", err)
		}
		if len(parsed) != 0 {
			t.Fatalf("expected empty map, got %v", parsed)
		}
	})

	t.Run("flat key value text", func(t *testing.T) {
		dir := t.TempDir()
		writeProperties(t, dir, strings.Join([]string{
			"# a comment",
			"; another comment",
			"",
			"BITMOVIN_API_KEY=abc123",
			"HTTP_INPUT_HOST: example.com",
			"S3_OUTPUT_BASE_PATH = /outputs",
			"TEXT_FILTER_TEXT=",
		}, "\n"))

		parsed, err := parsePropertiesFile(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := map[string]string{
			"BITMOVIN_API_KEY":    "abc123",
			"HTTP_INPUT_HOST":     "example.com",
			"S3_OUTPUT_BASE_PATH": "/outputs",
		}
		if len(parsed) != len(want) {
			t.Fatalf("unexpected entries: %v", parsed)
		}
		for key, value := range want {
			if parsed[key] != value {
				t.Fatalf("expected %s=%q, got %q", key, value, parsed[key])
			}
		}
	})

	t.Run("keys keep their case", func(t *testing.T) {
		dir := t.TempDir()
		writeProperties(t, dir, "MixedCase=one\nMIXEDCASE=two\n")

		parsed, err := parsePropertiesFile(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed["MixedCase"] != "one" || parsed["MIXEDCASE"] != "two" {
			t.Fatalf("expected case-sensitive keys, got %v", parsed)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeProperties(t, dir, "this line has no delimiter\n")

		_, err := parsePropertiesFile(dir)
		var readErr *SourceReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("expected SourceReadError, got %v", err)
		}
		if readErr.Path != path {
			t.Fatalf("expected path %s, got %s", path, readErr.Path)
		}
		if readErr.Unwrap() == nil {
			t.Fatalf("expected wrapped cause")
		}
	})
}

func TestParseEnvironment(t *testing.T) {
	parsed := parseEnvironment([]string{
		"HTTP_INPUT_HOST=example.com",
		"EMPTY_VALUE=",
		"no-delimiter-entry",
	})

	if got := parsed["HTTP_INPUT_HOST"]; got != "example.com" {
		t.Fatalf("unexpected value %q", got)
	}
	if _, ok := parsed["EMPTY_VALUE"]; ok {
		t.Fatalf("empty environment values must be dropped")
	}
	if len(parsed) != 1 {
		t.Fatalf("unexpected entries: %v", parsed)
	}
}
