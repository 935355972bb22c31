// Package log provides structured logging for galleon.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt output,
//              request-scoped fields, integration with the error package and
//              simple operation timing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Synchronous writes only, sorted field output
//
// Usage:
//   import mdwlog "github.com/msto63/galleon/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatText,
//     Output: os.Stderr,
//     Name:   "galleon",
//   })
//
//   reqLogger := logger.WithRequestID(id)
//   reqLogger.Debug("tokenized input", mdwlog.Int("tokens", len(tokens)))
//
//   timer := reqLogger.StartTimer("convert")
//   defer timer.Stop()
package log
