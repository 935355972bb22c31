// ============================================================================
// galleon - Längenangaben parsen und umrechnen
// ============================================================================
//
// Package:     version
// Description: Central version and build information
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants
const (
	// Application version
	Platform = "1.0.0"

	// Component versions
	Parser    = "1.0.0"
	Converter = "1.0.0"
)

// Set via -ldflags "-X github.com/msto63/galleon/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "converter":
		return Converter
	default:
		return Platform
	}
}

// Info returns a multi-line description of the build
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "galleon v%s\n", Platform)
	fmt.Fprintf(&b, "  Parser:     v%s\n", Parser)
	fmt.Fprintf(&b, "  Git Commit: %s\n", GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(&b, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
