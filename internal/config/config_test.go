package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/mathbox"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mathbox.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
size = 48
ink = "#ff0000"
shaper = "gotext"
parallelism = 4
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Size = 48
	want.Ink = "#ff0000"
	want.Shaper = ShaperGoText
	want.Parallelism = 4
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	ink, err := got.InkColor()
	if err != nil {
		t.Fatal(err)
	}
	if ink != mathbox.RGB(1, 0, 0) {
		t.Errorf("InkColor = %+v, want red", ink)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"syntax", `size = `, false},
		{"wrong type", `size = "big"`, false},
		{"unknown key", "size = 10\ncolour = \"#fff\"", true},
		{"zero size", `size = 0`, true},
		{"bad shaper", `shaper = "harfbuzz"`, true},
		{"bad parallelism", `parallelism = 0`, true},
		{"negative cache", `cache_size = -1`, true},
		{"bad script scale", `script_scale = 1.5`, true},
		{"bad ink", `ink = "#12"`, true},
		{"bad background", `background = "white"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestBackgroundColor(t *testing.T) {
	c := Default()
	c.Background = ""
	bg, err := c.BackgroundColor()
	if err != nil {
		t.Fatal(err)
	}
	if bg != mathbox.Transparent {
		t.Errorf("empty background = %+v, want transparent", bg)
	}
}
