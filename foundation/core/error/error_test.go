// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Parser codes, chain lookup through fmt wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "context", wantNil: true},
		{name: "wrap standard error", err: errors.New("boom"), message: "loading", wantMsg: "loading: boom"},
		{name: "wrap foundation error", err: New("inner"), message: "outer", wantMsg: "outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped cause")
			}
		})
	}
}

func TestWrap_InheritsCodeAndDetails(t *testing.T) {
	inner := New("config file not found").
		WithCode(CodeMissingConfig).
		WithDetail("path", "/tmp/x.toml").
		WithRequestID("req-1")

	outer := Wrap(inner, "loading configuration")

	if outer.Code() != CodeMissingConfig {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeMissingConfig)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Details()["path"] != "/tmp/x.toml" {
		t.Errorf("Details()[path] = %v", outer.Details()["path"])
	}
	if outer.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", outer.RequestID())
	}
}

func TestWrap_TruncatesDeepChains(t *testing.T) {
	err := New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if err.Details()["truncated"] != true {
		t.Error("deep chain should be truncated")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("truncated error should keep the root message, got %q", err.Error())
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnevenTokens, SeverityLow},
		{CodeMixedUnitSystems, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCode_KeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityHigh).WithCode(CodeUnevenTokens)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestHasCode(t *testing.T) {
	base := New("odd tokens").WithCode(CodeUnevenTokens)
	wrapped := fmt.Errorf("convert: %w", base)

	if !HasCode(base, CodeUnevenTokens) {
		t.Error("HasCode() should match the direct code")
	}
	if !HasCode(wrapped, CodeUnevenTokens) {
		t.Error("HasCode() should look through fmt wrapping")
	}
	if HasCode(wrapped, CodeMixedUnitSystems) {
		t.Error("HasCode() matched a code that is not in the chain")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode() should be false for plain errors")
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityMedium)
	}

	err := fmt.Errorf("outer: %w", New("x").WithCode(CodeOutputFailed))
	if got := GetCode(err); got != CodeOutputFailed {
		t.Errorf("GetCode() = %v, want %v", got, CodeOutputFailed)
	}
	if got := GetSeverity(err); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
}

func TestString(t *testing.T) {
	err := New("mix").
		WithCode(CodeMixedUnitSystems).
		WithOperation("length.parse").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: mix",
		"Code: MIXED_UNIT_SYSTEMS",
		"Severity: low",
		"Operation: length.parse",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "writing output").
		WithCode(CodeOutputFailed).
		WithRequestID("abc")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "OUTPUT_FAILED" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "disk full" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["request_id"] != "abc" {
		t.Errorf("request_id = %v", decoded["request_id"])
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeUnevenTokens, "parse"},
		{CodeMixedUnitSystems, "parse"},
		{CodeMissingConfig, "configuration"},
		{CodeInvalidFormat, "validation"},
		{CodeOutputFailed, "output"},
		{CodeInternal, "generic"},
		{Code("NOPE"), "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
