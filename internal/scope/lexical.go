// Package scope tracks the parser's position-dependent context: which
// function, class, block or loop encloses the current token, which names
// are bound where, and which expression-level errors are still pending.
package scope

// FrameKind represents the kind of a lexical frame.
type FrameKind int

const (
	FrameProgram FrameKind = iota
	FrameFunction
	FrameClass
	FrameBlock
	FrameVirtual
)

// String returns the string representation of FrameKind.
func (fk FrameKind) String() string {
	switch fk {
	case FrameProgram:
		return "program"
	case FrameFunction:
		return "function"
	case FrameClass:
		return "class"
	case FrameBlock:
		return "block"
	case FrameVirtual:
		return "virtual"
	default:
		return "unknown"
	}
}

// VirtualKind distinguishes the statements that are targets of break and
// continue without opening a block of their own.
type VirtualKind int

const (
	VirtualLoop VirtualKind = iota
	VirtualSwitch
	VirtualLabel
)

// String returns the string representation of VirtualKind.
func (vk VirtualKind) String() string {
	switch vk {
	case VirtualLoop:
		return "loop"
	case VirtualSwitch:
		return "switch"
	case VirtualLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Frame is one entry of the lexical stack. Only the fields relevant to
// its Kind are meaningful.
type Frame struct {
	Kind FrameKind

	// program and function
	Async        bool
	Generator    bool
	Arrow        bool
	Method       bool
	Ctor         bool
	StaticBlock  bool
	Strict       bool
	InParameter  bool
	SimpleParams bool

	// class
	Extends        bool
	Abstract       bool
	InCtor         bool
	HaveCtor       bool
	InDelete       bool
	InPropertyName bool

	// block
	Catch bool

	// virtual
	Virtual   VirtualKind
	Label     string
	LabelLoop bool
}

// Lexical is the stack of frames enclosing the parse position.
type Lexical struct {
	frames []*Frame
}

// NewLexical creates an empty recorder.
func NewLexical() *Lexical {
	return &Lexical{frames: make([]*Frame, 0, 16)}
}

// Depth returns the number of open frames.
func (l *Lexical) Depth() int { return len(l.frames) }

// Top returns the innermost frame, or nil.
func (l *Lexical) Top() *Frame {
	if len(l.frames) == 0 {
		return nil
	}
	return l.frames[len(l.frames)-1]
}

func (l *Lexical) push(f *Frame) { l.frames = append(l.frames, f) }

// Exit pops the innermost frame.
func (l *Lexical) Exit() {
	if len(l.frames) > 0 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

// ===== Enter =====

// EnterProgram opens the root frame. Async allows top-level await.
func (l *Lexical) EnterProgram(async, strict bool) {
	l.push(&Frame{Kind: FrameProgram, Async: async, Strict: strict, SimpleParams: true})
}

// EnterFunction opens a function frame inheriting strictness.
func (l *Lexical) EnterFunction(async, generator bool) {
	l.push(&Frame{
		Kind:         FrameFunction,
		Async:        async,
		Generator:    generator,
		Strict:       l.InStrictMode(),
		SimpleParams: true,
	})
}

// EnterMethod opens a function frame for an object or class method, where
// super property access is valid. Ctor marks a class constructor.
func (l *Lexical) EnterMethod(async, generator, ctor bool) {
	l.EnterFunction(async, generator)
	f := l.Top()
	f.Method = true
	f.Ctor = ctor
}

// EnterStaticBlock opens the function-like frame of a class static block.
func (l *Lexical) EnterStaticBlock() {
	l.push(&Frame{Kind: FrameFunction, Method: true, StaticBlock: true, Strict: true, SimpleParams: true})
}

// EnterArrow opens an arrow function frame.
func (l *Lexical) EnterArrow(async bool) {
	l.push(&Frame{
		Kind:         FrameFunction,
		Arrow:        true,
		Async:        async,
		Strict:       l.InStrictMode(),
		SimpleParams: true,
	})
}

// EnterClass opens a class frame. Class bodies are always strict.
func (l *Lexical) EnterClass(extends, abstract bool) {
	l.push(&Frame{Kind: FrameClass, Extends: extends, Abstract: abstract})
}

// EnterBlock opens a block frame.
func (l *Lexical) EnterBlock() {
	l.push(&Frame{Kind: FrameBlock})
}

// EnterCatch opens the block frame of a catch clause.
func (l *Lexical) EnterCatch() {
	l.push(&Frame{Kind: FrameBlock, Catch: true})
}

// EnterVirtual opens a loop, switch or label frame. It returns false when
// label is already reachable from the current position; the frame is
// pushed either way.
func (l *Lexical) EnterVirtual(kind VirtualKind, label string) bool {
	ok := true
	if kind == VirtualLabel {
		ok = !l.LabelReachable(label)
	}
	l.push(&Frame{Kind: FrameVirtual, Virtual: kind, Label: label})

	return ok
}

// MarkLabelsAsLoop flags the label frames directly on top of the stack as
// labelling an iteration statement, making them continue targets.
func (l *Lexical) MarkLabelsAsLoop() {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		if f.Kind != FrameVirtual || f.Virtual != VirtualLabel {
			return
		}
		f.LabelLoop = true
	}
}

// ===== Helpers =====

func (l *Lexical) function() *Frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		if k := l.frames[i].Kind; k == FrameFunction || k == FrameProgram {
			return l.frames[i]
		}
	}
	return nil
}

func (l *Lexical) class() *Frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		if l.frames[i].Kind == FrameClass {
			return l.frames[i]
		}
	}
	return nil
}

// functionOrClass returns the n-th (0-based) function, program or class
// frame from the top.
func (l *Lexical) functionOrClass(n int) *Frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch l.frames[i].Kind {
		case FrameFunction, FrameProgram, FrameClass:
			if n == 0 {
				return l.frames[i]
			}
			n--
		}
	}
	return nil
}

// ===== Toggles =====

// EnterParameter marks the current function as parsing its parameters.
func (l *Lexical) EnterParameter() {
	if f := l.function(); f != nil {
		f.InParameter = true
	}
}

// ExitParameter ends parameter parsing.
func (l *Lexical) ExitParameter() {
	if f := l.function(); f != nil {
		f.InParameter = false
	}
}

func (l *Lexical) EnterCtor() {
	if c := l.class(); c != nil {
		c.InCtor = true
	}
}

func (l *Lexical) ExitCtor() {
	if c := l.class(); c != nil {
		c.InCtor = false
	}
}

func (l *Lexical) EnterDelete() {
	if c := l.class(); c != nil {
		c.InDelete = true
	}
}

func (l *Lexical) ExitDelete() {
	if c := l.class(); c != nil {
		c.InDelete = false
	}
}

// EnterPropertyName marks that a computed class member key is being
// parsed; it is evaluated in the context enclosing the class.
func (l *Lexical) EnterPropertyName() {
	if c := l.class(); c != nil {
		c.InPropertyName = true
	}
}

func (l *Lexical) ExitPropertyName() {
	if c := l.class(); c != nil {
		c.InPropertyName = false
	}
}

// SetStrict puts the current function in strict mode after a directive.
func (l *Lexical) SetStrict() {
	if f := l.function(); f != nil {
		f.Strict = true
	}
}

// SetGenerator marks the current function as a generator.
func (l *Lexical) SetGenerator() {
	if f := l.function(); f != nil {
		f.Generator = true
	}
}

// SetNonSimpleParams records that the current function has default,
// rest or destructured parameters.
func (l *Lexical) SetNonSimpleParams() {
	if f := l.function(); f != nil {
		f.SimpleParams = false
	}
}

// TestAndSetCtor reports whether the current class already has a
// constructor and records that it now has one.
func (l *Lexical) TestAndSetCtor() bool {
	c := l.class()
	if c == nil {
		return false
	}
	had := c.HaveCtor
	c.HaveCtor = true

	return had
}

// ===== Queries =====

// InStrictMode reports whether the current position is strict code.
func (l *Lexical) InStrictMode() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch f := l.frames[i]; f.Kind {
		case FrameClass:
			return true
		case FrameFunction, FrameProgram:
			return f.Strict
		}
	}
	return false
}

// CanAwaitAsExpression reports whether `await` starts an await expression.
func (l *Lexical) CanAwaitAsExpression() bool {
	f := l.functionOrClass(0)
	if f == nil {
		return false
	}
	if f.Kind == FrameClass {
		if !f.InPropertyName {
			return false
		}
		parent := l.functionOrClass(1)
		return parent != nil && parent.Kind != FrameClass && parent.Async
	}

	return f.Async
}

// CanYieldAsExpression reports whether `yield` starts a yield expression.
func (l *Lexical) CanYieldAsExpression() bool {
	f := l.functionOrClass(0)
	if f == nil {
		return false
	}
	if f.Kind == FrameClass {
		if !f.InPropertyName {
			return false
		}
		parent := l.functionOrClass(1)
		return parent != nil && parent.Kind != FrameClass && parent.Generator
	}

	return f.Generator
}

// InParameter reports whether the nearest function is parsing parameters.
func (l *Lexical) InParameter() bool {
	f := l.functionOrClass(0)
	return f != nil && f.Kind != FrameClass && f.InParameter
}

// InStaticBlock reports whether the nearest non-arrow function is a class
// static block.
func (l *Lexical) InStaticBlock() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		switch f.Kind {
		case FrameFunction:
			if f.Arrow {
				continue
			}
			return f.StaticBlock
		case FrameProgram, FrameClass:
			return false
		}
	}
	return false
}

// BreakValid reports whether an unlabelled break has a target.
func (l *Lexical) BreakValid() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch f := l.frames[i]; f.Kind {
		case FrameFunction, FrameProgram, FrameClass:
			return false
		case FrameVirtual:
			if f.Virtual != VirtualLabel {
				return true
			}
		}
	}
	return false
}

// ContinueValid reports whether an unlabelled continue has a target.
func (l *Lexical) ContinueValid() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch f := l.frames[i]; f.Kind {
		case FrameFunction, FrameProgram, FrameClass:
			return false
		case FrameVirtual:
			if f.Virtual == VirtualLoop {
				return true
			}
		}
	}
	return false
}

// LabelReachable reports whether a label named name encloses the current
// position within the same function.
func (l *Lexical) LabelReachable(name string) bool {
	return l.label(name) != nil
}

// ContinueLabelValid reports whether name labels an enclosing loop.
func (l *Lexical) ContinueLabelValid(name string) bool {
	f := l.label(name)
	return f != nil && f.LabelLoop
}

func (l *Lexical) label(name string) *Frame {
	for i := len(l.frames) - 1; i >= 0; i-- {
		switch f := l.frames[i]; f.Kind {
		case FrameFunction, FrameProgram, FrameClass:
			return nil
		case FrameVirtual:
			if f.Virtual == VirtualLabel && f.Label == name {
				return f
			}
		}
	}
	return nil
}

// ReturnValid reports whether return is allowed here.
func (l *Lexical) ReturnValid() bool {
	f := l.functionOrClass(0)
	return f != nil && f.Kind == FrameFunction && !f.StaticBlock
}

// InTopLevel reports whether the nearest non-arrow function is the program.
func (l *Lexical) InTopLevel() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		switch {
		case f.Kind == FrameProgram:
			return true
		case f.Kind == FrameFunction && !f.Arrow, f.Kind == FrameClass:
			return false
		}
	}
	return true
}

// InClass reports whether any class encloses the current position.
func (l *Lexical) InClass() bool { return l.class() != nil }

// DirectInClass reports whether the innermost frame is a class body.
func (l *Lexical) DirectInClass() bool {
	top := l.Top()
	return top != nil && top.Kind == FrameClass
}

// DirectFunction reports whether the innermost frame is a function or the
// program, where directives apply.
func (l *Lexical) DirectFunction() bool {
	top := l.Top()
	return top != nil && (top.Kind == FrameFunction || top.Kind == FrameProgram)
}

func (l *Lexical) InPropertyName() bool {
	c := l.class()
	return c != nil && c.InPropertyName
}

func (l *Lexical) InCtor() bool {
	c := l.class()
	return c != nil && c.InCtor
}

func (l *Lexical) InDelete() bool {
	c := l.class()
	return c != nil && c.InDelete
}

// ClassExtends reports whether the nearest class has a heritage clause.
func (l *Lexical) ClassExtends() bool {
	c := l.class()
	return c != nil && c.Extends
}

// ClassAbstract reports whether the nearest class is abstract.
func (l *Lexical) ClassAbstract() bool {
	c := l.class()
	return c != nil && c.Abstract
}

// EnclosedInFunction reports whether the nearest function or class frame
// is a function.
func (l *Lexical) EnclosedInFunction() bool {
	f := l.functionOrClass(0)
	return f != nil && f.Kind == FrameFunction
}

// ParentFunctionAsync reports whether the function enclosing the current
// one is async.
func (l *Lexical) ParentFunctionAsync() bool {
	f := l.functionOrClass(1)
	return f != nil && f.Kind != FrameClass && f.Async
}

// ParentFunctionGenerator reports whether the function enclosing the
// current one is a generator.
func (l *Lexical) ParentFunctionGenerator() bool {
	f := l.functionOrClass(1)
	return f != nil && f.Kind != FrameClass && f.Generator
}

// SimpleParams reports whether the current function's parameters are
// simple.
func (l *Lexical) SimpleParams() bool {
	f := l.function()
	return f == nil || f.SimpleParams
}

// NewTargetValid reports whether new.target may appear here: inside a
// non-arrow function or a class field initializer.
func (l *Lexical) NewTargetValid() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		switch f.Kind {
		case FrameFunction:
			if !f.Arrow {
				return true
			}
		case FrameClass:
			if !f.InPropertyName {
				return true
			}
		case FrameProgram:
			return false
		}
	}
	return false
}

// SuperPropertyValid reports whether super.x may appear here.
func (l *Lexical) SuperPropertyValid() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		switch f.Kind {
		case FrameFunction:
			if !f.Arrow {
				return f.Method
			}
		case FrameClass:
			if !f.InPropertyName {
				return true
			}
		case FrameProgram:
			return false
		}
	}
	return false
}

// SuperCallValid reports whether super() may appear here: inside the
// constructor of a derived class, possibly through arrow functions.
func (l *Lexical) SuperCallValid() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		switch f.Kind {
		case FrameFunction:
			if !f.Arrow {
				return f.Ctor && l.ClassExtends()
			}
		case FrameClass, FrameProgram:
			return false
		}
	}
	return false
}

// ArgumentsValid reports whether the identifier `arguments` may be
// referenced: not in a class field initializer or static block.
func (l *Lexical) ArgumentsValid() bool {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		switch f.Kind {
		case FrameFunction:
			if !f.Arrow {
				return !f.StaticBlock
			}
		case FrameClass:
			if !f.InPropertyName {
				return false
			}
		case FrameProgram:
			return true
		}
	}
	return true
}
