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

// Package clog is a condensed port of the teacher repository's
// context-carried logger. It keeps the severity-level call shape
// (clog.I, clog.W, clog.E) and the idea of a Handler plugged into a
// context.Context, but drops the fluent builder, the tag/trace chain and
// the broadcast/channel machinery, none of which this repository's single
// in-process compiler driver needs.
package clog

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Severity mirrors the teacher's severity ladder, trimmed to the levels
// this compiler actually emits.
type Severity int32

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warning:
		return "W"
	case Error:
		return "E"
	default:
		return "?"
	}
}

// Handler receives one formatted log line per call.
type Handler interface {
	Handle(severity Severity, message string)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(severity Severity, message string)

// Handle implements Handler.
func (f HandlerFunc) Handle(severity Severity, message string) { f(severity, message) }

type handlerKey struct{}

var defaultHandler Handler = HandlerFunc(func(severity Severity, message string) {
	log.New(os.Stderr, "", log.Ltime).Printf("%s: %s", severity, message)
})

// WithHandler returns a context that routes log calls to h instead of the
// package default (stderr via the standard log package).
func WithHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey{}, h)
}

func handlerFrom(ctx context.Context) Handler {
	if h, ok := ctx.Value(handlerKey{}).(Handler); ok {
		return h
	}
	return defaultHandler
}

func emit(ctx context.Context, severity Severity, format string, args ...interface{}) {
	handlerFrom(ctx).Handle(severity, fmt.Sprintf(format, args...))
}

// D logs a debug-level message against ctx's handler.
func D(ctx context.Context, format string, args ...interface{}) { emit(ctx, Debug, format, args...) }

// I logs an info-level message against ctx's handler.
func I(ctx context.Context, format string, args ...interface{}) { emit(ctx, Info, format, args...) }

// W logs a warning-level message against ctx's handler.
func W(ctx context.Context, format string, args ...interface{}) { emit(ctx, Warning, format, args...) }

// E logs an error-level message against ctx's handler.
func E(ctx context.Context, format string, args ...interface{}) { emit(ctx, Error, format, args...) }
