package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/rovetabs/internal/tabs"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	l := Default()
	if err := l.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if len(l.Tabs) != 4 {
		t.Errorf("expected 4 default tabs, got %d", len(l.Tabs))
	}
	if !l.Tabs[2].Disabled {
		t.Error("expected the third default tab to be disabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Layout)
		wantField string
	}{
		{"valid", func(*Layout) {}, ""},
		{"out of range default is allowed", func(l *Layout) { l.DefaultIndex = 42 }, ""},
		{"negative default is allowed", func(l *Layout) { l.DefaultIndex = -3 }, ""},
		{"disabled default is allowed", func(l *Layout) { l.DefaultIndex = 2 }, ""},
		{"bad version", func(l *Layout) { l.Version = 7 }, "version"},
		{"bad orientation", func(l *Layout) { l.Orientation = tabs.Orientation(9) }, "orientation"},
		{"bad activation", func(l *Layout) { l.Activation = tabs.Activation(-1) }, "activation"},
		{"no tabs", func(l *Layout) { l.Tabs = nil }, "tabs"},
		{"blank label", func(l *Layout) { l.Tabs[1].Label = "  " }, "tabs[1].label"},
		{"bad colour", func(l *Layout) { l.Theme.Accent = "purple" }, "theme.accent"},
		{"first bad colour wins", func(l *Layout) {
			l.Theme.Disabled = "grey"
			l.Theme.Muted = "dim"
			l.Theme.Focus = "green"
		}, "theme.focus"},
		{"ansi colour", func(l *Layout) { l.Theme.Focus = "205" }, ""},
		{"nil theme", func(l *Layout) { l.Theme = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(l)
			err := l.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateNoTabsWrapsSentinel(t *testing.T) {
	l := Default()
	l.Tabs = nil
	if err := l.Validate(); !errors.Is(err, ErrNoTabs) {
		t.Errorf("expected ErrNoTabs, got %v", err)
	}
}

func TestGroupConfig(t *testing.T) {
	l := Default()
	l.DefaultIndex = 2
	l.Orientation = tabs.Vertical
	l.Activation = tabs.Manual

	cfg, err := l.GroupConfig()
	if err != nil {
		t.Fatalf("GroupConfig() error: %v", err)
	}
	if cfg.DefaultIndex != 2 || cfg.Orientation != tabs.Vertical || cfg.Activation != tabs.Manual {
		t.Errorf("unexpected config: %+v", cfg)
	}

	// The disabled default resolves forward once tabs are registered.
	g := tabs.New(cfg)
	for _, def := range l.Tabs {
		g.Register(def.Disabled)
	}
	if got := g.SelectedIndex(); got != 3 {
		t.Errorf("SelectedIndex() = %d, want 3", got)
	}
}

func TestThemeMerged(t *testing.T) {
	var nilTheme *Theme
	if got := nilTheme.Merged(); got != *DefaultTheme() {
		t.Errorf("nil theme should merge to defaults, got %+v", got)
	}

	partial := &Theme{Accent: "#000000"}
	got := partial.Merged()
	if got.Accent != "#000000" {
		t.Errorf("Accent = %q, want override", got.Accent)
	}
	if got.Focus != DefaultTheme().Focus {
		t.Errorf("Focus = %q, want default", got.Focus)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
default_index: 1
orientation: vertical
activation: manual
tabs:
  - label: One
  - label: Two
    disabled: true
  - label: Three
    content: hello
`)
	l, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if l.Version != CurrentVersion {
		t.Errorf("missing version should default to %d, got %d", CurrentVersion, l.Version)
	}
	if got := strings.Join(l.Labels(), ","); got != "One,Two,Three" {
		t.Errorf("Labels() = %q", got)
	}
	if !l.Tabs[1].Disabled || l.Tabs[2].Content != "hello" {
		t.Errorf("unexpected tabs: %+v", l.Tabs)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("tabs: [")); err == nil {
		t.Error("expected YAML syntax error")
	}
	_, err := Parse([]byte("orientation: sideways\ntabs:\n  - label: a\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown orientation") {
		t.Errorf("expected orientation error, got %v", err)
	}
	_, err = Parse([]byte("activation: eager\ntabs:\n  - label: a\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown activation mode") {
		t.Errorf("expected activation error, got %v", err)
	}
}

func TestParseModesAreTextDecoded(t *testing.T) {
	l, err := Parse([]byte("orientation: Vertical\nactivation: MANUAL\ntabs:\n  - label: a\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if l.Orientation != tabs.Vertical || l.Activation != tabs.Manual {
		t.Errorf("modes = %s/%s, want vertical/manual", l.Orientation, l.Activation)
	}

	l, err = Parse([]byte("tabs:\n  - label: a\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if l.Orientation != tabs.Horizontal || l.Activation != tabs.Auto {
		t.Errorf("omitted modes = %s/%s, want horizontal/auto", l.Orientation, l.Activation)
	}
}

func TestMarshalWritesModeNames(t *testing.T) {
	l := Default()
	l.Orientation = tabs.Vertical
	l.Activation = tabs.Manual

	data, err := l.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	for _, want := range []string{"orientation: vertical\n", "activation: manual\n"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("marshaled layout missing %q:\n%s", want, data)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "layout.yaml")

	original := Default()
	original.Activation = tabs.Manual
	original.DefaultIndex = 3

	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("layout file not written: %v", err)
	}
	if runtimeSupportsPermissions() && info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# rovetabs layout file") {
		t.Error("saved file is missing the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Activation != tabs.Manual || loaded.DefaultIndex != 3 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Tabs) != len(original.Tabs) {
		t.Errorf("tab count = %d, want %d", len(loaded.Tabs), len(original.Tabs))
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	l := Default()
	l.Tabs = nil
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := l.Save(path); err == nil {
		t.Fatal("expected Save to refuse an invalid layout")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid layout should not be written")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOCALAPPDATA", t.TempDir())

	l, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if len(l.Tabs) != len(Default().Tabs) {
		t.Errorf("expected built-in default layout")
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error: %v", err)
	}
	if filepath.Base(path) != "layout.yaml" {
		t.Errorf("unexpected file name: %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != "rovetabs" {
		t.Errorf("unexpected directory: %s", path)
	}
}

func runtimeSupportsPermissions() bool {
	return os.PathSeparator == '/'
}
