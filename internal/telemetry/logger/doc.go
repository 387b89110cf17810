// Package logger provides structured logging for gitops-demo.
//
//   - logger.go: slog based Logger, JSON or charmbracelet/log text output
//   - context.go: Context-aware logging with request IDs
//
// The level is process-wide and can be changed at runtime with SetLevel,
// which the config watcher uses when log.level changes on disk.
package logger
