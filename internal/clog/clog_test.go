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

package clog_test

import (
	"context"
	"testing"

	"github.com/cc6809/compiler/internal/clog"
	"github.com/cc6809/compiler/internal/xassert"
)

type capture struct {
	severity clog.Severity
	message  string
	calls    int
}

func (c *capture) Handle(severity clog.Severity, message string) {
	c.severity = severity
	c.message = message
	c.calls++
}

func TestHandlerFromContextReceivesFormattedMessage(t *testing.T) {
	c := &capture{}
	ctx := clog.WithHandler(context.Background(), c)

	clog.W(ctx, "dimension %d exceeds %d", 9, 8)

	xassert.For(t, "severity").That(c.severity).Equals(clog.Warning)
	xassert.For(t, "formatted message").That(c.message).Equals("dimension 9 exceeds 8")
	xassert.For(t, "called once").That(c.calls).Equals(1)
}

func TestSeveritiesAreDistinctAndRouteToTheSameHandler(t *testing.T) {
	c := &capture{}
	ctx := clog.WithHandler(context.Background(), c)

	clog.D(ctx, "d")
	xassert.For(t, "debug").That(c.severity).Equals(clog.Debug)
	clog.I(ctx, "i")
	xassert.For(t, "info").That(c.severity).Equals(clog.Info)
	clog.E(ctx, "e")
	xassert.For(t, "error").That(c.severity).Equals(clog.Error)
	xassert.For(t, "three calls total").That(c.calls).Equals(3)
}

func TestWithoutAHandlerFallsBackWithoutPanicking(t *testing.T) {
	clog.I(context.Background(), "no handler installed, should not panic")
}
