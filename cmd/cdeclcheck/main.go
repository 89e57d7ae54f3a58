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

// Command cdeclcheck is a thin driver over the declaration-and-type
// subsystem. It carries no lexer or grammar of its own; it builds a small,
// fixed set of declarations directly against the package API (the way a
// parser's reduction actions would) and reports whatever diagnostics and
// resolved types come out the other end. It exists to exercise the full
// pipeline - type interning, declarator construction, constant folding and
// the two-phase finisher - end to end, the way one of the teacher's own
// single-purpose cmd/* tools wraps a library around a flag-driven main.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cc6809/compiler/decl"
	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/internal/clog"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"

	"github.com/pkg/errors"
)

var verbose = flag.Bool("v", false, "log every declaration as it is registered")

func main() {
	flag.Parse()

	ctx := clog.WithHandler(context.Background(), clog.HandlerFunc(func(sev clog.Severity, msg string) {
		if *verbose || sev >= clog.Warning {
			fmt.Fprintf(os.Stderr, "%s: %s\n", sev, msg)
		}
	}))

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "cdeclcheck"))
		os.Exit(1)
	}
}

// run builds a handful of declarations representative of the constructs
// this subsystem resolves: a plain array sized by an enumerator not yet
// known at registration time, a bit-field, and an array of function
// pointers.
func run(ctx context.Context) error {
	m := types.NewManager()
	sink := diag.NewSink()
	ce := eval.NewConstantEvaluator(sink)
	finisher := decl.NewFinisher(m, ce, sink)

	colorCount := int32(3)
	colorCountRef := &tree.Identifier{Name: "COLOR_COUNT", Type: m.Word(true), EnumValue: &colorCount}

	clog.I(ctx, "registering array `palette` sized by enumerator COLOR_COUNT")
	palette := decl.New("palette", "sample.c", 10, sink)
	palette.AddArraySizeExpr(colorCountRef)
	paletteDecl, ok := palette.DeclareVariable(m.Byte(true), false, false)
	if !ok {
		return errors.New("failed to declare `palette`")
	}
	finisher.Register(paletteDecl)

	clog.I(ctx, "registering bit-field `flags : 5`")
	flags := decl.New("flags", "sample.c", 11, sink)
	flags.SetBitFieldWidth(&tree.IntLiteral{Value: 5, Type: m.Word(true)}, m, ce)
	if !flags.CheckBitField(m.Byte(true)) {
		clog.W(ctx, "bit-field `flags` failed validation")
	}

	clog.I(ctx, "registering array-of-function-pointers `handlers[4]`")
	handlers := decl.New("handlers", "sample.c", 12, sink)
	params := types.NewFormalParamList()
	params.Add(&types.FormalParameter{Type: m.Byte(true), Name: "event"})
	subscripts := tree.NewSequence()
	subscripts.Add(&tree.IntLiteral{Value: 4, Type: m.Word(true)})
	handlers.SetAsArrayOfFunctionPointers(params, subscripts)
	handlersParam, ok := handlers.CreateFormalParameter(decl.NewSpecifierList(m.Word(true)), m, ce)
	if !ok {
		return errors.New("failed to build `handlers` formal parameter")
	}
	fmt.Printf("handlers: %s\n", handlersParam.Type.String())

	if !finisher.FinishAll() {
		clog.E(ctx, "one or more registered declarations failed to resolve")
	}

	for _, d := range finisher.Pending() {
		if d.ResolvedType != nil {
			fmt.Printf("%s: %s\n", d.Name, d.ResolvedType.String())
		}
	}

	for _, diagnostic := range sink.Diagnostics() {
		fmt.Fprintln(os.Stderr, diagnostic.Error())
	}
	if sink.HasErrors() {
		return errors.Errorf("%d error(s) reported", sink.ErrorCount())
	}
	return nil
}
