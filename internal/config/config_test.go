package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	fs.String("reference", "", "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "allgreens.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", newFlags())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.LogLevel != "warn" || c.LogFormat != "console" || c.Reference != "" {
		t.Errorf("defaults = %+v", c)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "log_level: info\nreference: x3\nlog_format: json\n")

	c, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.LogLevel != "info" || c.Reference != "x3" || c.LogFormat != "json" {
		t.Errorf("file values not applied: %+v", c)
	}

	t.Setenv("ALLGREENS_REFERENCE", "x4")
	c, err = Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Reference != "x4" {
		t.Errorf("env should override file: Reference = %q", c.Reference)
	}

	fs := newFlags()
	if err := fs.Set("reference", "x5"); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path, fs)
	if err != nil {
		t.Fatal(err)
	}
	if c.Reference != "x5" {
		t.Errorf("flag should override env: Reference = %q", c.Reference)
	}
	if c.LogLevel != "info" {
		t.Errorf("unset flag must not mask the file value: LogLevel = %q", c.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("bad level", func(t *testing.T) {
		fs := newFlags()
		_ = fs.Set("log-level", "loud")
		_, err := Load("", fs)
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Load() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		t.Setenv("ALLGREENS_LOG_FORMAT", "xml")
		_, err := Load("", nil)
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Load() error = %v, want ErrInvalidInput", err)
		}
	})
}
