package scope

import (
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// ExpressionErrorKind names an error whose validity depends on how an
// ambiguous head is eventually interpreted.
type ExpressionErrorKind int

const (
	// 矢印関数の頭部でのみ誤りとなるもの
	AwaitExpressionInParameter ExpressionErrorKind = iota
	YieldExpressionInParameter
	AwaitIdentifierInParameter

	// strict モードでのみ誤りとなるもの
	StrictEvalArguments
	StrictReservedWord
	StrictLegacyOctal
	StrictOctalEscape
	StrictYieldIdentifier
	StrictLetBinding
	StrictDuplicateParameter
)

// String returns the string representation of ExpressionErrorKind.
func (k ExpressionErrorKind) String() string {
	switch k {
	case AwaitExpressionInParameter:
		return "await expression in parameter"
	case YieldExpressionInParameter:
		return "yield expression in parameter"
	case AwaitIdentifierInParameter:
		return "await identifier in parameter"
	case StrictEvalArguments:
		return "eval or arguments binding"
	case StrictReservedWord:
		return "strict reserved word"
	case StrictLegacyOctal:
		return "legacy octal literal"
	case StrictOctalEscape:
		return "octal escape"
	case StrictYieldIdentifier:
		return "yield identifier"
	case StrictLetBinding:
		return "let binding"
	case StrictDuplicateParameter:
		return "duplicate parameter"
	default:
		return "unknown"
	}
}

// Record is a pending error.
type Record struct {
	Kind ExpressionErrorKind
	Name string
	Span position.Span
	// Previous is the earlier occurrence for duplicate parameters.
	Previous position.Span
}

// ===== Arrow heads =====

type arrowLayer struct {
	blank   bool
	records []Record
}

// ArrowScopes holds errors found while parsing something that may turn
// out to be the parameter list of an arrow function, such as
// `(a = await x)` or `async(yield)`. A blank layer isolates a function
// body from the heads around it.
type ArrowScopes struct {
	layers []*arrowLayer
}

func NewArrowScopes() *ArrowScopes {
	return &ArrowScopes{}
}

// Enter opens a layer for a possible arrow head.
func (a *ArrowScopes) Enter() {
	a.layers = append(a.layers, &arrowLayer{})
}

// EnterBlank opens a layer that swallows nothing and forwards nothing.
func (a *ArrowScopes) EnterBlank() {
	a.layers = append(a.layers, &arrowLayer{blank: true})
}

// Depth returns the number of open layers.
func (a *ArrowScopes) Depth() int { return len(a.layers) }

// Record notes an error against every head that is still open up to the
// nearest blank layer. It reports whether any head took it.
func (a *ArrowScopes) Record(kind ExpressionErrorKind, name string, span position.Span) bool {
	n := len(a.layers)
	if n == 0 || a.layers[n-1].blank {
		return false
	}
	top := a.layers[n-1]
	top.records = append(top.records, Record{Kind: kind, Name: name, Span: span})

	return true
}

// Current returns the records of the innermost layer.
func (a *ArrowScopes) Current() []Record {
	if len(a.layers) == 0 {
		return nil
	}
	return a.layers[len(a.layers)-1].records
}

// Clear drops the records of the innermost layer.
func (a *ArrowScopes) Clear() {
	if len(a.layers) > 0 {
		a.layers[len(a.layers)-1].records = nil
	}
}

// Exit closes the innermost layer. Its remaining records move to the
// enclosing layer unless that layer is blank, since an outer head may
// still become an arrow containing this expression.
func (a *ArrowScopes) Exit() {
	n := len(a.layers)
	if n == 0 {
		return
	}
	cur := a.layers[n-1]
	a.layers = a.layers[:n-1]
	if cur.blank || n == 1 {
		return
	}
	if parent := a.layers[n-2]; !parent.blank {
		parent.records = append(parent.records, cur.records...)
	}
}

// ===== Strictness =====

type strictKind int

const (
	strictLHS strictKind = iota
	strictCapture
	strictRHS
)

type strictLayer struct {
	kind    strictKind
	records []Record
}

// StrictScopes holds errors that only apply if the enclosing function
// turns out to be strict, which a "use strict" directive in the body can
// decide after the name and parameters were parsed. Capture layers wrap a
// function's name and parameters; RHS layers stop collection inside
// default values and computed keys, whose own strictness is already known.
type StrictScopes struct {
	layers []*strictLayer
}

func NewStrictScopes() *StrictScopes {
	return &StrictScopes{}
}

// EnterLHS opens a layer whose records flow to the nearest capture.
func (s *StrictScopes) EnterLHS() {
	s.layers = append(s.layers, &strictLayer{kind: strictLHS})
}

// EnterCapture opens a collecting layer.
func (s *StrictScopes) EnterCapture() {
	s.layers = append(s.layers, &strictLayer{kind: strictCapture})
}

// EnterRHS opens a layer that records nothing.
func (s *StrictScopes) EnterRHS() {
	s.layers = append(s.layers, &strictLayer{kind: strictRHS})
}

// InLHS reports whether records are currently being collected.
func (s *StrictScopes) InLHS() bool {
	n := len(s.layers)
	return n > 0 && s.layers[n-1].kind != strictRHS
}

// Record stores an error; it reports false when no collecting layer is
// open, in which case the caller decides on its own.
func (s *StrictScopes) Record(kind ExpressionErrorKind, name string, span, previous position.Span) bool {
	if !s.InLHS() {
		return false
	}
	top := s.layers[len(s.layers)-1]
	top.records = append(top.records, Record{Kind: kind, Name: name, Span: span, Previous: previous})

	return true
}

// Current returns the records of the innermost layer.
func (s *StrictScopes) Current() []Record {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1].records
}

// Clear drops the records of the innermost layer.
func (s *StrictScopes) Clear() {
	if len(s.layers) > 0 {
		s.layers[len(s.layers)-1].records = nil
	}
}

// Exit closes the innermost layer. Records of an LHS layer move to the
// layer below it unless that is an RHS layer.
func (s *StrictScopes) Exit() {
	n := len(s.layers)
	if n == 0 {
		return
	}
	cur := s.layers[n-1]
	s.layers = s.layers[:n-1]
	if cur.kind != strictLHS || n == 1 {
		return
	}
	if parent := s.layers[n-2]; parent.kind != strictRHS {
		parent.records = append(parent.records, cur.records...)
	}
}
