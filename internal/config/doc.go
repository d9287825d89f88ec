// Package config manages the YAML layout files that describe a tabs widget.
//
// A layout lists the tabs (label, disabled flag, panel content), the default
// index, the orientation, the activation mode and the colour theme. The CLI
// loads it to build a tabs.Group and the Bubble Tea model around it.
//
// # Configuration File Location
//
// The default layout file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/rovetabs/layout.yaml or $HOME/.config/rovetabs/layout.yaml
//   - macOS: $HOME/.config/rovetabs/layout.yaml
//   - Windows: %LOCALAPPDATA%\rovetabs\layout.yaml
//
// # Usage Example
//
//	layout, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//	cfg, err := layout.GroupConfig()
//	if err != nil {
//	    return err // *config.ValidationError
//	}
//	group := tabs.New(cfg)
//
// # Validation
//
// Out-of-range default indexes and disabled defaults are NOT validation
// errors: the tabs package resolves them at runtime. Only values that cannot
// be interpreted at all (unknown orientation, malformed colours, a layout
// with no tabs) are rejected.
//
// # Thread Safety
//
// Save is serialised by a package mutex and writes atomically via a temporary
// file and rename.
package config
