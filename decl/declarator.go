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

package decl

import (
	"fmt"

	"github.com/cc6809/compiler/diag"
	"github.com/cc6809/compiler/eval"
	"github.com/cc6809/compiler/tree"
	"github.com/cc6809/compiler/types"
)

// Kind distinguishes the three shapes a Declarator can take. A
// Declarator starts as Singleton and transitions to Array (on the first
// addArraySizeExpr) or to FuncPtr (on setAsFunctionPointer /
// setAsArrayOfFunctionPointers). Once it leaves Singleton it never goes
// back: SetAsFunctionPointer on an already-Array declarator is a misuse
// the parser must not produce, so it panics instead of silently
// corrupting state.
type Kind int

const (
	Singleton Kind = iota
	Array
	FuncPtr
)

func (k Kind) String() string {
	switch k {
	case Singleton:
		return "SINGLETON"
	case Array:
		return "ARRAY"
	case FuncPtr:
		return "FUNCPTR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Declarator is the part of a declaration that comes after the
// specifier list: a name, decorated with zero or more `*`, `[n]` or `()`
// levels. It is mutated in place while the parser reduces the grammar
// for one declarator, then consumed exactly once by DeclareVariable or
// CreateFormalParameter.
type Declarator struct {
	ID             string
	SrcFilename    string
	Line           int
	InitExpr       tree.Tree
	ArraySizeExprs []tree.Tree // a nil entry means "dimension unspecified"
	FormalParams   *types.FormalParamList
	Kind           Kind
	Qualifiers     []types.Qualifier // one pointer level per entry, deepest first
	BitField       BitFieldWidth

	sink *diag.Sink
}

// New returns an empty Singleton declarator for id.
func New(id, srcFilename string, line int, sink *diag.Sink) *Declarator {
	return &Declarator{ID: id, SrcFilename: srcFilename, Line: line, BitField: BitFieldWidth{Kind: NotBitField}, sink: sink}
}

// SetInitExpr attaches this declarator's initializer. Calling it twice
// is a parser bug.
func (d *Declarator) SetInitExpr(init tree.Tree) {
	if d.InitExpr != nil {
		panic("decl: initializer already set")
	}
	d.InitExpr = init
}

// CheckForFunctionReturningArray reports (via the sink) a function
// declarator whose return type is itself an array (`f(char)[3]`: a
// parameter list followed by array subscripts), which this dialect
// forbids. An array of function pointers is not reported.
func (d *Declarator) CheckForFunctionReturningArray() {
	if d.Kind == Array && d.FormalParams != nil {
		d.sink.Errorf(diag.FunctionReturningArray, d.SrcFilename, d.Line,
			"%s declared as function returning an array", diag.Quote(d.ID))
	}
}

// AddArraySizeExpr appends one `[expr]` (expr nil for `[]`) and commits
// this declarator to Array kind.
func (d *Declarator) AddArraySizeExpr(sizeExpr tree.Tree) {
	d.ArraySizeExprs = append(d.ArraySizeExprs, sizeExpr)
	d.Kind = Array
}

// IsArray reports whether this declarator is an array.
func (d *Declarator) IsArray() bool { return d.Kind == Array }

// IsFunctionPointer reports whether this declarator is a (non-array)
// function pointer.
func (d *Declarator) IsFunctionPointer() bool { return d.Kind == FuncPtr && len(d.ArraySizeExprs) == 0 }

// IsArrayOfFunctionPointers reports whether this declarator is an array
// whose element type is a function pointer.
func (d *Declarator) IsArrayOfFunctionPointers() bool {
	return d.Kind == FuncPtr && len(d.ArraySizeExprs) > 0
}

// SetFormalParamList stores the parameter list of a function declarator
// without changing its kind: a plain function declaration (`int f(char)`)
// stays a Singleton, and only the function-pointer constructors flip the
// kind. An Array declarator can never take a parameter list; the grammar
// does not produce that, so it panics as an invariant violation rather
// than diagnosing a user error.
func (d *Declarator) SetFormalParamList(params *types.FormalParamList) {
	if d.Kind != Singleton && d.Kind != FuncPtr {
		panic("decl: formal parameter list on an array declarator")
	}
	d.FormalParams = params
}

// DetachFormalParamList transfers ownership of the parameter list to the
// caller, leaving this declarator without one.
func (d *Declarator) DetachFormalParamList() *types.FormalParamList {
	params := d.FormalParams
	d.FormalParams = nil
	return params
}

// SetAsFunctionPointer commits this declarator to FuncPtr kind with the
// given parameter list. It panics if this declarator already carries
// array dimensions: a plain function pointer and an array of function
// pointers are set up through different constructors
// (SetAsArrayOfFunctionPointers) precisely to keep that invariant
// explicit at the call site instead of silently overwriting state.
func (d *Declarator) SetAsFunctionPointer(params *types.FormalParamList) {
	if params == nil {
		panic("decl: function pointer requires a parameter list")
	}
	if len(d.ArraySizeExprs) != 0 {
		panic("decl: declarator already has array dimensions")
	}
	d.Kind = FuncPtr
	d.SetFormalParamList(params)
}

// SetAsArrayOfFunctionPointers commits this declarator to FuncPtr kind
// carrying the array dimensions drained from subscripts, in order.
// subscripts is left empty, mirroring the original's TreeSequence::clear()
// contract: this Declarator now owns the subtrees, not the caller's
// temporary sequence.
func (d *Declarator) SetAsArrayOfFunctionPointers(params *types.FormalParamList, subscripts *tree.Sequence) {
	if params == nil {
		panic("decl: function pointer requires a parameter list")
	}
	if subscripts == nil || subscripts.Size() == 0 {
		panic("decl: array of function pointers requires subscripts")
	}
	d.Kind = FuncPtr
	d.SetFormalParamList(params)
	for _, sub := range subscripts.Children() {
		d.ArraySizeExprs = append(d.ArraySizeExprs, sub)
	}
	subscripts.Clear()
}

// ProcessPointerLevel applies this declarator's pointer-qualifier stack
// (if any) to td, returning the resulting pointer type, or td unchanged
// if this declarator has no pointer level at all.
func (d *Declarator) ProcessPointerLevel(td *types.Desc, m *types.Manager) *types.Desc {
	if d.Qualifiers == nil {
		return td
	}
	return m.GetPointerTo(td, d.Qualifiers)
}

// GetNumDimensions reports the number of array dimensions this
// declarator carries. For a non-array declarator it succeeds with zero.
// It fails (pushing a diagnostic) for an array declarator with no
// dimensions at all, which the grammar should never produce but which
// this method defends against the way the original does.
func (d *Declarator) GetNumDimensions() (int, bool) {
	if d.Kind != Array {
		return 0, true
	}
	if len(d.ArraySizeExprs) == 0 {
		d.sink.Errorf(diag.NoArrayDimensions, d.SrcFilename, d.Line, "array %s: no dimensions", diag.Quote(d.ID))
		return 0, false
	}
	return len(d.ArraySizeExprs), true
}

// ComputeArrayDimensions folds this declarator's array-size expressions
// to concrete dimensions. allowUnknownFirstDimension controls what
// happens when the first `[]` has no size and there is no initializer to
// infer it from: if true the dimension is simply omitted (used when
// sizing a formal parameter, which decays to a pointer regardless); if
// false a first dimension of 1 is assumed and a warning is pushed.
func (d *Declarator) ComputeArrayDimensions(allowUnknownFirstDimension bool, m *types.Manager, ce *eval.ConstantEvaluator) ([]uint16, bool) {
	if len(d.ArraySizeExprs) == 0 {
		d.sink.Errorf(diag.NoArrayDimensions, d.SrcFilename, d.Line, "array %s: no dimensions", diag.Quote(d.ID))
		return nil, false
	}

	for i, e := range d.ArraySizeExprs {
		if e == nil && i != 0 {
			d.sink.Errorf(diag.NonFirstDimensionUnspec, d.SrcFilename, d.Line,
				"array %s: dimension other than first one is unspecified", diag.Quote(d.ID))
			return nil, false
		}
	}

	var dims []uint16

	if d.ArraySizeExprs[0] == nil {
		switch {
		case d.InitExpr != nil:
			dims = append(dims, d.firstDimensionFromInit())
		case !allowUnknownFirstDimension:
			d.sink.Warnf(diag.AssumeSingleElement, d.SrcFilename, d.Line,
				"array %s assumed to have one element", diag.Quote(d.ID))
			dims = append(dims, 1)
		}
	}

	for i, e := range d.ArraySizeExprs {
		if e == nil {
			// Only the first dimension can be nil here, and the block
			// above already inferred, assumed or deliberately omitted it.
			continue
		}

		dim, ok := d.foldOneDimension(e, i, m, ce)
		if !ok {
			return nil, false
		}
		dims = append(dims, dim)
	}

	return dims, true
}

// foldOneDimension resolves a single non-nil size expression. Any panic
// out of the type setter or the evaluator (an internal bug, not a user
// error) is caught and turned into a diagnostic so the translation unit
// still terminates cleanly.
func (d *Declarator) foldOneDimension(e tree.Tree, index int, m *types.Manager, ce *eval.ConstantEvaluator) (dim uint16, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.sink.Errorf(diag.UnexpectedException, d.SrcFilename, d.Line,
				"unexpected exception caught while computing dimensions of array %s", diag.Quote(d.ID))
			dim, ok = 0, false
		}
	}()

	eval.SetExpressionTypes(e, m)
	if td := e.TypeDesc(); td != nil && td.IsPtrOrArray() {
		d.sink.Errorf(diag.PointerUsedAsArraySize, d.SrcFilename, d.Line,
			"pointer or array expression used for size of array %s", diag.Quote(d.ID))
		return 0, false
	}
	value, folded := ce.EvaluateConstantExpr(e)
	if !folded {
		d.sink.Errorf(diag.InvalidArraySizeExpr, d.SrcFilename, d.Line,
			"invalid size expression for dimension %d of array %s", index+1, diag.Quote(d.ID))
		return 0, false
	}
	return value, true
}

func (d *Declarator) firstDimensionFromInit() uint16 {
	const maxArrayLen = 0xFFFF
	var length int
	switch n := d.InitExpr.(type) {
	case *tree.Sequence:
		length = n.Size()
	case *tree.StringLiteral:
		length = n.Length()
	default:
		// Left to the initializer checker, which diagnoses a scalar
		// initializer against an array type.
		length = 1
	}
	if length > maxArrayLen {
		d.sink.Errorf(diag.ArrayInitializerTooLong, d.SrcFilename, d.Line, "array initializer too long")
		length = maxArrayLen
	}
	return uint16(length)
}

// GetNumArrayElements returns the product of this declarator's array
// dimensions, or zero if it is not an array or its dimensions could not
// be resolved.
func (d *Declarator) GetNumArrayElements(m *types.Manager, ce *eval.ConstantEvaluator) uint16 {
	dims, ok := d.ComputeArrayDimensions(false, m, ce)
	if !ok || len(dims) == 0 {
		return 0
	}
	product := uint32(1)
	for _, dim := range dims {
		product *= uint32(dim)
	}
	if product > 0xFFFF {
		return 0xFFFF
	}
	return uint16(product)
}

// CreateFormalParameter builds the FormalParameter this declarator
// denotes when it appears in a function's parameter list, folding in the
// specifier list's base type, function-pointer wrapping, and
// array-to-pointer decay.
func (d *Declarator) CreateFormalParameter(dsl *SpecifierList, m *types.Manager, ce *eval.ConstantEvaluator) (*types.FormalParameter, bool) {
	if dsl.HasEnumeratorList() {
		d.sink.Errorf(diag.EnumeratorInFormalParam, d.SrcFilename, d.Line,
			"enum with enumerated names is not supported in a function's formal parameter")
		dsl.DetachEnumeratorList()
	}

	td := d.ProcessPointerLevel(dsl.TypeDesc(), m)

	if d.InitExpr != nil {
		panic("decl: formal parameter must not carry an initializer")
	}

	if d.IsFunctionPointer() || d.IsArrayOfFunctionPointers() {
		td = m.GetFunctionPointerType(td, d.FormalParams, dsl.IsInterruptServiceFunction(), dsl.IsFunctionReceivingFirstParamInRegister())
	}

	var arrayDims []uint16
	if len(d.ArraySizeExprs) > 0 {
		// Not d.IsArray(): an array of function pointers carries array
		// dimensions under Kind == FuncPtr, and it decays to a pointer
		// exactly like a plain array parameter does.
		dims, ok := d.ComputeArrayDimensions(true, m, ce)
		if !ok {
			return nil, false
		}
		arrayDims = dims
		if dsl.TypeDesc().IsArray() {
			td.AppendDimensions(arrayDims)
			for td.IsArray() {
				td = td.PointedTypeDesc()
			}
		}
		if len(arrayDims) > 1 {
			arr := m.GetArrayOf(td, len(arrayDims)-1)
			arr.AppendDimensions(arrayDims[1:])
			td = m.Intern(arr)
		}
		td = m.GetPointerTo(td, nil)
	} else if dsl.TypeDesc().IsArray() {
		td = m.GetPointerTo(dsl.TypeDesc().PointedTypeDesc(), nil)
	}

	return &types.FormalParameter{Type: td, Name: d.ID, ArrayDims: arrayDims, EnumTag: dsl.EnumTypeName}, true
}

// SetBitFieldWidth folds widthExpr to this declarator's BitFieldWidth,
// classifying a non-constant expression as InvalidWidthExpr and a
// negative signed constant as NegativeWidthExpr rather than failing
// outright: the surrounding declaration keeps parsing so later errors in
// the same translation unit can still be reported.
func (d *Declarator) SetBitFieldWidth(widthExpr tree.Tree, m *types.Manager, ce *eval.ConstantEvaluator) {
	eval.SetExpressionTypes(widthExpr, m)
	v, ok := ce.Fold(widthExpr)
	if !ok {
		d.BitField = BitFieldWidth{Kind: InvalidWidthExpr}
		return
	}
	if v.Signed && v.Signed64() < 0 {
		d.BitField = BitFieldWidth{Kind: NegativeWidthExpr}
		return
	}
	d.BitField = BitFieldWidth{Kind: FixedWidth, Width: uint16(v.Unsigned64())}
}

// CheckBitField validates this declarator's bit-field width (if any)
// against typeDesc, pushing a diagnostic for the first problem found and
// returning false. A Declarator with no `: width` suffix always succeeds.
func (d *Declarator) CheckBitField(typeDesc *types.Desc) bool {
	switch d.BitField.Kind {
	case NotBitField:
		return true
	case InvalidWidthExpr:
		d.sink.Errorf(diag.BitFieldInvalidWidthExpr, d.SrcFilename, d.Line, "invalid width in bit-field %s", diag.Quote(d.ID))
		return false
	case NegativeWidthExpr:
		d.sink.Errorf(diag.BitFieldNegativeWidth, d.SrcFilename, d.Line, "negative width in bit-field %s", diag.Quote(d.ID))
		return false
	}

	width := d.BitField.Width
	if width == 0 {
		d.sink.Errorf(diag.BitFieldZeroWidth, d.SrcFilename, d.Line, "zero width for bit-field %s", diag.Quote(d.ID))
		return false
	}
	if (typeDesc.Kind == types.Byte && width > 8) ||
		(typeDesc.Kind == types.Word && width > 16) ||
		(typeDesc.IsLong() && width > 32) {
		d.sink.Errorf(diag.BitFieldWidthExceedsType, d.SrcFilename, d.Line,
			"width of %s exceeds its type (%s)", diag.Quote(d.ID), typeDesc.String())
		return false
	}
	if !typeDesc.IsIntegral() {
		d.sink.Errorf(diag.BitFieldNonIntegral, d.SrcFilename, d.Line,
			"bit-field %s has invalid type (%s)", diag.Quote(d.ID), typeDesc.String())
		return false
	}
	return true
}

// DeclareVariable builds this declarator's Declaration, transferring
// ownership of its array-size expressions and initializer the way the
// original clears its own fields after handing them off, so a Declarator
// is only ever consumed once.
func (d *Declarator) DeclareVariable(varType *types.Desc, isStatic, isExtern bool) (*Declaration, bool) {
	if d.ID == "" {
		d.sink.Errorf(diag.EmptyDeclarator, d.SrcFilename, d.Line, "empty declarator name")
		return nil, false
	}

	decl := &Declaration{
		Name:           d.ID,
		Type:           varType,
		ArraySizeExprs: d.ArraySizeExprs,
		IsStatic:       isStatic,
		IsExtern:       isExtern,
		InitExpr:       d.InitExpr,
		SrcFilename:    d.SrcFilename,
		Line:           d.Line,
	}
	d.ArraySizeExprs = nil
	d.InitExpr = nil
	return decl, true
}

// String renders the declarator roughly as CMOC's own debug dump does.
func (d *Declarator) String() string {
	s := fmt.Sprintf("Declarator(id '%s' of type %s at %s:%d", d.ID, d.Kind, d.SrcFilename, d.Line)
	if d.InitExpr != nil {
		s += ", with init expr"
	}
	switch d.Kind {
	case Array:
		s += fmt.Sprintf(", array with %d size expression(s)", len(d.ArraySizeExprs))
	case FuncPtr:
		s += ", function pointer"
	}
	if d.FormalParams != nil {
		s += ", with formal param list"
	}
	return s + ")"
}
