// Package logging provides structured logging for rovetabs.
//
// This package wraps a global zap logger that is silent by default. Library
// code (internal/tabs) receives a *zap.Logger explicitly; the UI and the CLI
// use the package-level helpers.
//
// # Log Levels
//
//   - Debug: key presses, intents, clicks, focus ring moves
//   - Info: committed selections, layout files loaded
//   - Warn: recoverable problems (unknown keys in a replay script)
//   - Error: failures surfaced to the user
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeToFile(level, logFile); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// ROVETABS_LOG_LEVEL enables logging when no level is passed explicitly.
// ROVETABS_LOG_FILE sends output to a file as JSON lines, which is what the
// interactive "run" command needs because Bubble Tea owns the terminal.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
