package scope

import (
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// BindingKind represents how a name was declared.
type BindingKind int

const (
	BindVar BindingKind = iota
	BindLet
	BindConst
	BindClass
	BindFunction
	BindImport
	BindCatchParam
)

// String returns the string representation of BindingKind.
func (bk BindingKind) String() string {
	switch bk {
	case BindVar:
		return "var"
	case BindLet:
		return "let"
	case BindConst:
		return "const"
	case BindClass:
		return "class"
	case BindFunction:
		return "function"
	case BindImport:
		return "import"
	case BindCatchParam:
		return "catch parameter"
	default:
		return "unknown"
	}
}

// lexical reports whether bk forbids redeclaration by var.
func (bk BindingKind) lexical() bool {
	switch bk {
	case BindLet, BindConst, BindClass, BindImport:
		return true
	}
	return false
}

// ScopeKind represents the kind of symbol scope.
type ScopeKind int

const (
	ScopeProgram ScopeKind = iota
	ScopeFunction
	ScopeBlock
	ScopeClass
)

// String returns the string representation of ScopeKind.
func (sk ScopeKind) String() string {
	switch sk {
	case ScopeProgram:
		return "program"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeClass:
		return "class"
	default:
		return "unknown"
	}
}

// Binding is a declared name.
type Binding struct {
	Kind BindingKind
	Span position.Span
}

// Name is a name with the span of one occurrence.
type Name struct {
	Name string
	Span position.Span
}

// Duplicate is a name declared twice; Previous is the first declaration.
type Duplicate struct {
	Name     string
	Span     position.Span
	Previous position.Span
}

// PrivateKind classifies private name definitions.
type PrivateKind int

const (
	PrivateOther PrivateKind = iota
	PrivateGet
	PrivateSet
	PrivateStaticGet
	PrivateStaticSet
)

type symbolScope struct {
	kind     ScopeKind
	bindings map[string]Binding

	// function
	params    map[string]position.Span
	dupParams []Duplicate

	// program
	exports    map[string]position.Span
	exportRefs []Name

	// class
	privates     map[string][]PrivateKind
	privateSpans map[string]position.Span
	unresolved   []Name
}

// Symbols records declarations per scope and detects redeclarations.
type Symbols struct {
	scopes []*symbolScope
	module bool

	catchParams []Name
}

// NewSymbols creates an empty recorder.
func NewSymbols() *Symbols {
	return &Symbols{scopes: make([]*symbolScope, 0, 16)}
}

// Depth returns the number of open scopes.
func (s *Symbols) Depth() int { return len(s.scopes) }

// ===== Enter / exit =====

// EnterProgram opens the program scope. In a module, top-level functions
// are lexical bindings.
func (s *Symbols) EnterProgram(module bool) {
	s.module = module
	s.scopes = append(s.scopes, &symbolScope{
		kind:     ScopeProgram,
		bindings: make(map[string]Binding),
		exports:  make(map[string]position.Span),
	})
}

func (s *Symbols) EnterFunction() {
	s.scopes = append(s.scopes, &symbolScope{
		kind:     ScopeFunction,
		bindings: make(map[string]Binding),
		params:   make(map[string]position.Span),
	})
}

func (s *Symbols) EnterBlock() {
	s.scopes = append(s.scopes, &symbolScope{kind: ScopeBlock, bindings: make(map[string]Binding)})
}

func (s *Symbols) EnterClass() {
	s.scopes = append(s.scopes, &symbolScope{
		kind:         ScopeClass,
		privates:     make(map[string][]PrivateKind),
		privateSpans: make(map[string]position.Span),
	})
}

// Exit closes the innermost scope. Closing a class returns the private
// names used but never defined when no enclosing class can define them;
// otherwise they move to the enclosing class.
func (s *Symbols) Exit() []Name {
	n := len(s.scopes)
	if n == 0 {
		return nil
	}
	cur := s.scopes[n-1]
	s.scopes = s.scopes[:n-1]
	if cur.kind != ScopeClass || len(cur.unresolved) == 0 {
		return nil
	}

	if outer := s.class(); outer != nil {
		for _, ref := range cur.unresolved {
			if _, ok := outer.privates[ref.Name]; !ok {
				outer.unresolved = append(outer.unresolved, ref)
			}
		}
		return nil
	}

	return cur.unresolved
}

// ===== Helpers =====

// declarable returns the innermost non-class scope.
func (s *Symbols) declarable() *symbolScope {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].kind != ScopeClass {
			return s.scopes[i]
		}
	}
	return nil
}

// functional returns the innermost function or program scope.
func (s *Symbols) functional() *symbolScope {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if k := s.scopes[i].kind; k == ScopeFunction || k == ScopeProgram {
			return s.scopes[i]
		}
	}
	return nil
}

func (s *Symbols) class() *symbolScope {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].kind == ScopeClass {
			return s.scopes[i]
		}
	}
	return nil
}

func (s *Symbols) program() *symbolScope {
	if len(s.scopes) == 0 || s.scopes[0].kind != ScopeProgram {
		return nil
	}
	return s.scopes[0]
}

// ===== Declarations =====

// Declare records name with kind in the appropriate scope. On conflict it
// returns the span of the earlier declaration and false. Functions must
// use DeclareFunction.
func (s *Symbols) Declare(kind BindingKind, name string, span position.Span) (position.Span, bool) {
	switch kind {
	case BindVar:
		return s.DeclareVar(name, span)
	case BindFunction:
		return s.DeclareFunction(name, span, false)
	default:
		return s.declareLexical(kind, name, span)
	}
}

// DeclareLet declares a let binding in the innermost scope.
func (s *Symbols) DeclareLet(name string, span position.Span) (position.Span, bool) {
	return s.declareLexical(BindLet, name, span)
}

// DeclareConst declares a const binding in the innermost scope.
func (s *Symbols) DeclareConst(name string, span position.Span) (position.Span, bool) {
	return s.declareLexical(BindConst, name, span)
}

// DeclareClass declares a class name in the innermost scope.
func (s *Symbols) DeclareClass(name string, span position.Span) (position.Span, bool) {
	return s.declareLexical(BindClass, name, span)
}

func (s *Symbols) declareLexical(kind BindingKind, name string, span position.Span) (position.Span, bool) {
	sc := s.declarable()
	if sc == nil {
		return position.Span{}, true
	}
	if prev, ok := sc.bindings[name]; ok {
		return prev.Span, false
	}
	if sc.kind == ScopeFunction {
		if prev, ok := sc.params[name]; ok {
			return prev, false
		}
	}
	sc.bindings[name] = Binding{Kind: kind, Span: span}

	return position.Span{}, true
}

// DeclareVar declares a var binding. The name is hoisted through every
// block up to the nearest function or program scope; a lexical binding of
// the same name in any of those scopes is a conflict.
func (s *Symbols) DeclareVar(name string, span position.Span) (position.Span, bool) {
	top := -1
	for i := len(s.scopes) - 1; i >= 0; i-- {
		sc := s.scopes[i]
		if sc.kind == ScopeClass {
			continue
		}
		if prev, ok := sc.bindings[name]; ok {
			switch {
			case prev.Kind.lexical():
				return prev.Span, false
			case prev.Kind == BindFunction && (sc.kind == ScopeBlock || s.module && sc.kind == ScopeProgram):
				return prev.Span, false
			}
		}
		if sc.kind == ScopeFunction || sc.kind == ScopeProgram {
			top = i
			break
		}
	}
	if top < 0 {
		return position.Span{}, true
	}

	for i := len(s.scopes) - 1; i >= top; i-- {
		sc := s.scopes[i]
		if sc.kind == ScopeClass {
			continue
		}
		if _, ok := sc.bindings[name]; !ok {
			sc.bindings[name] = Binding{Kind: BindVar, Span: span}
		}
	}

	return position.Span{}, true
}

// DeclareFunction declares a function name. At the top of a function or
// script it behaves like var; in blocks and at module top level it is
// lexical, except that sloppy-mode blocks may repeat a function name.
func (s *Symbols) DeclareFunction(name string, span position.Span, strict bool) (position.Span, bool) {
	sc := s.declarable()
	if sc == nil {
		return position.Span{}, true
	}

	prev, exists := sc.bindings[name]
	lexicalScope := sc.kind == ScopeBlock || (s.module && sc.kind == ScopeProgram)
	switch {
	case !exists:
	case prev.Kind.lexical() || prev.Kind == BindCatchParam:
		return prev.Span, false
	case lexicalScope && prev.Kind == BindFunction && !strict && sc.kind == ScopeBlock:
		return position.Span{}, true
	case lexicalScope:
		return prev.Span, false
	default:
		return position.Span{}, true
	}
	sc.bindings[name] = Binding{Kind: BindFunction, Span: span}

	return position.Span{}, true
}

// DeclareParam records a parameter name of the innermost function.
// Duplicates are not rejected here; they are reported through
// DuplicateParams because only some parameter lists forbid them.
func (s *Symbols) DeclareParam(name string, span position.Span) {
	fn := s.functional()
	if fn == nil || fn.kind != ScopeFunction {
		return
	}
	if prev, ok := fn.params[name]; ok {
		fn.dupParams = append(fn.dupParams, Duplicate{Name: name, Span: span, Previous: prev})
		return
	}
	fn.params[name] = span
}

// DuplicateParams returns the repeated parameter names of the innermost
// function.
func (s *Symbols) DuplicateParams() []Duplicate {
	fn := s.functional()
	if fn == nil {
		return nil
	}
	return fn.dupParams
}

// IsDeclared reports whether name is bound in the innermost scope.
func (s *Symbols) IsDeclared(name string) bool {
	sc := s.declarable()
	if sc == nil {
		return false
	}
	_, ok := sc.bindings[name]
	return ok
}

// ===== Catch parameters =====

// BufferCatchParam holds a catch parameter name until the parameter shape
// is known.
func (s *Symbols) BufferCatchParam(name string, span position.Span) {
	s.catchParams = append(s.catchParams, Name{Name: name, Span: span})
}

// CommitCatchParams declares the buffered names in the innermost scope. A
// plain identifier parameter (asVar) may be redeclared by var in the catch
// body; destructured names behave like let. Conflicts among the names are
// returned.
func (s *Symbols) CommitCatchParams(asVar bool) []Duplicate {
	kind := BindLet
	if asVar {
		kind = BindCatchParam
	}

	var dups []Duplicate
	sc := s.declarable()
	for _, n := range s.catchParams {
		if sc == nil {
			break
		}
		if prev, ok := sc.bindings[n.Name]; ok {
			dups = append(dups, Duplicate{Name: n.Name, Span: n.Span, Previous: prev.Span})
			continue
		}
		sc.bindings[n.Name] = Binding{Kind: kind, Span: n.Span}
	}
	s.catchParams = s.catchParams[:0]

	return dups
}

// ===== Exports =====

// DeclareExport records an exported name. A repeated name returns the
// earlier span and false.
func (s *Symbols) DeclareExport(name string, span position.Span) (position.Span, bool) {
	prog := s.program()
	if prog == nil {
		return position.Span{}, true
	}
	if prev, ok := prog.exports[name]; ok {
		return prev, false
	}
	prog.exports[name] = span

	return position.Span{}, true
}

// MarkDefaultExport records `export default`.
func (s *Symbols) MarkDefaultExport(span position.Span) (position.Span, bool) {
	return s.DeclareExport("default", span)
}

// RecordExportReference records a local name exported by `export { name }`.
func (s *Symbols) RecordExportReference(name string, span position.Span) {
	if prog := s.program(); prog != nil {
		prog.exportRefs = append(prog.exportRefs, Name{Name: name, Span: span})
	}
}

// UndefinedExports returns the export references that name no top-level
// binding.
func (s *Symbols) UndefinedExports() []Name {
	prog := s.program()
	if prog == nil {
		return nil
	}

	var out []Name
	for _, ref := range prog.exportRefs {
		if _, ok := prog.bindings[ref.Name]; !ok {
			out = append(out, ref)
		}
	}
	return out
}

// ===== Private names =====

// DefinePrivate records a private member of the innermost class. A getter
// and a setter of the same staticness may share a name; any other repeat
// returns the earlier span and false.
func (s *Symbols) DefinePrivate(name string, kind PrivateKind, span position.Span) (position.Span, bool) {
	c := s.class()
	if c == nil {
		return position.Span{}, true
	}

	existing := c.privates[name]
	dup := len(existing) > 0
	if len(existing) == 1 {
		switch {
		case kind == PrivateGet && existing[0] == PrivateSet,
			kind == PrivateSet && existing[0] == PrivateGet,
			kind == PrivateStaticGet && existing[0] == PrivateStaticSet,
			kind == PrivateStaticSet && existing[0] == PrivateStaticGet:
			dup = false
		}
	}
	if dup {
		return c.privateSpans[name], false
	}

	c.privates[name] = append(existing, kind)
	if _, ok := c.privateSpans[name]; !ok {
		c.privateSpans[name] = span
	}

	kept := c.unresolved[:0]
	for _, ref := range c.unresolved {
		if ref.Name != name {
			kept = append(kept, ref)
		}
	}
	c.unresolved = kept

	return position.Span{}, true
}

// UsePrivate records a reference to a private name. It returns false when
// no class encloses the reference. Names not yet defined stay pending
// until the class closes.
func (s *Symbols) UsePrivate(name string, span position.Span) bool {
	var inner *symbolScope
	for i := len(s.scopes) - 1; i >= 0; i-- {
		sc := s.scopes[i]
		if sc.kind != ScopeClass {
			continue
		}
		if inner == nil {
			inner = sc
		}
		if _, ok := sc.privates[name]; ok {
			return true
		}
	}
	if inner == nil {
		return false
	}
	inner.unresolved = append(inner.unresolved, Name{Name: name, Span: span})

	return true
}

// PrivateCheckpoint returns the number of pending private references of
// each open class, for a later RollbackPrivate.
func (s *Symbols) PrivateCheckpoint() []int {
	var cp []int
	for _, sc := range s.scopes {
		if sc.kind == ScopeClass {
			cp = append(cp, len(sc.unresolved))
		}
	}
	return cp
}

// RollbackPrivate drops the pending private references recorded since cp
// was taken. The classes open then must still be open.
func (s *Symbols) RollbackPrivate(cp []int) {
	i := 0
	for _, sc := range s.scopes {
		if sc.kind != ScopeClass {
			continue
		}
		if i == len(cp) {
			return
		}
		if cp[i] < len(sc.unresolved) {
			sc.unresolved = sc.unresolved[:cp[i]]
		}
		i++
	}
}
