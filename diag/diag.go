// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diag implements the diagnostic sink for the declaration-and-type
// subsystem. Diagnostics are never raised as exceptions; every producer
// pushes them to an explicit *Sink and returns a boolean or nil result.
package diag

import "fmt"

// Kind identifies the shape of a diagnostic, independent of its message text.
type Kind string

// The error kinds named in the error handling design.
const (
	EmptyDeclarator           Kind = "empty-declarator"
	NoArrayDimensions         Kind = "no-array-dimensions"
	NonFirstDimensionUnspec   Kind = "non-first-dimension-unspecified"
	PointerUsedAsArraySize    Kind = "pointer-used-as-array-size"
	InvalidArraySizeExpr      Kind = "invalid-array-size-expression"
	ArrayInitializerTooLong   Kind = "array-initializer-too-long"
	FunctionReturningArray    Kind = "function-returning-array"
	BitFieldZeroWidth         Kind = "bit-field-zero-width"
	BitFieldWidthExceedsType  Kind = "bit-field-width-exceeds-type"
	BitFieldNonIntegral       Kind = "bit-field-non-integral"
	BitFieldInvalidWidthExpr  Kind = "bit-field-invalid-width-expression"
	BitFieldNegativeWidth     Kind = "bit-field-negative-width"
	EnumeratorInFormalParam   Kind = "enumerator-in-formal-parameter"
	AssumeSingleElement       Kind = "assume-single-element"
	UnexpectedException       Kind = "unexpected-exception"
	DuplicateBaseType         Kind = "duplicate-base-type"
	DivisionByZero            Kind = "division-by-zero"
)

// Severity distinguishes a warning (recoverable, does not block code
// emission) from an error (increments the sink's error counter).
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single pushed message, tied to a source position.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Filename string
	Line     int
	Message  string
}

// Error implements the error interface so a Diagnostic can be returned or
// compared directly in tests.
func (d Diagnostic) Error() string {
	filename := d.Filename
	if filename == "" {
		filename = "-"
	}
	return fmt.Sprintf("%s:%d: %s: %s", filename, d.Line, d.Severity, d.Message)
}

// Quote wraps an identifier in back-ticks the way every diagnostic message
// in this subsystem identifies user-level names.
func Quote(identifier string) string {
	return "`" + identifier + "`"
}

// Sink accumulates diagnostics for one translation unit. It is threaded
// explicitly through the compiler (Declarator, Finisher, Evaluator all carry
// a *Sink field) rather than kept as a package-level global, even though in
// practice a process builds exactly one.
type Sink struct {
	diagnostics []Diagnostic
	errorCount  int
}

// NewSink returns an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Errorf pushes an error-severity diagnostic and increments the error
// counter that the outermost driver consults before emitting code.
func (s *Sink) Errorf(kind Kind, filename string, line int, format string, args ...interface{}) {
	s.push(kind, Error, filename, line, format, args...)
}

// Warnf pushes a warning-severity diagnostic. Warnings never block code
// emission on their own.
func (s *Sink) Warnf(kind Kind, filename string, line int, format string, args ...interface{}) {
	s.push(kind, Warning, filename, line, format, args...)
}

func (s *Sink) push(kind Kind, severity Severity, filename string, line int, format string, args ...interface{}) {
	d := Diagnostic{
		Kind:     kind,
		Severity: severity,
		Filename: filename,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
	s.diagnostics = append(s.diagnostics, d)
	if severity == Error {
		s.errorCount++
	}
}

// HasErrors reports whether any error-severity diagnostic (as opposed to a
// warning) has been pushed. The driver uses this to decide whether to skip
// code emission.
func (s *Sink) HasErrors() bool {
	return s.errorCount > 0
}

// ErrorCount returns the number of error-severity diagnostics pushed so far.
func (s *Sink) ErrorCount() int {
	return s.errorCount
}

// Diagnostics returns all diagnostics pushed so far, in push order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}
