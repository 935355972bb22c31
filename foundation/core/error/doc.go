// Package error provides structured errors for galleon.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a machine-readable code, a severity and a set of
//              details next to the human-readable message. The length parser
//              reports its aggregate parse failures through this type and the
//              logger maps severities to log levels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Reduced to the codes used by the length converter
//
// Usage:
//   import mdwerror "github.com/msto63/galleon/foundation/core/error"
//
//   err := mdwerror.New("config file not found").
//     WithCode(mdwerror.CodeMissingConfig).
//     WithDetail("path", path)
//
//   if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
//     // fall back to defaults
//   }
package error
