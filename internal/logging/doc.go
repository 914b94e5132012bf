// Package logging provides structured logging for the HighFlowNext tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the CLI tools. It provides both general logging
// functions and specialized functions for protocol-specific logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (hex dumps, frame parsing)
//   - Info: Normal operations (frames decoded, files read)
//   - Warn: Non-fatal issues (unknown fields, skipped frames)
//   - Error: Fatal issues (decode failures, I/O errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Frame decoded",
//	    zap.String("kind", "sensor values"),
//	    zap.Int("length", 37),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
// Frame Logging:
//
//	logging.LogFrame("received", kind, raw)
//	logging.LogRawBytes("payload", payload)
//
// # Configuration
//
// Logging is silent by default so decoded output stays clean. Set the
// HFN_LOG_LEVEL environment variable, or pass a level explicitly:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Log output goes to stderr in console format so it never mixes with the
// decoded frames written to stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
