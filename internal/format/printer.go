package format

import (
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/ast"
)

// Printer writes syntax trees as source text. A Printer is not safe for
// concurrent use; Node creates one per call.
type Printer struct {
	opts   Options
	indent int
	buffer strings.Builder
}

// NewPrinter creates a printer with the given options
func NewPrinter(opts Options) *Printer {
	if opts.Indent == "" {
		opts.Indent = DefaultOptions().Indent
	}
	return &Printer{opts: opts}
}

// Print returns the source text of n, ending in a single line break.
func (p *Printer) Print(n ast.Node) string {
	p.buffer.Reset()
	p.indent = 0

	if n != nil {
		p.node(n)
	}

	return finish(p.buffer.String(), p.opts)
}

func (p *Printer) writeString(s string) {
	p.buffer.WriteString(s)
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buffer.WriteString(p.opts.Indent)
	}
}

func (p *Printer) writeNewline() {
	p.buffer.WriteByte('\n')
	p.writeIndent()
}

// node prints any node. Parenthesized expressions keep their parentheses;
// no others are added, so the output re-parses to the same tree.
func (p *Printer) node(n ast.Node) {
	if e, ok := n.(ast.Expression); ok && e.Parenthesized() {
		p.writeString("(")
		defer p.writeString(")")
	}

	groups := []func(ast.Node) bool{
		p.statementNode, p.expressionNode, p.patternNode,
		p.classNode, p.moduleNode, p.typeNode, p.jsxNode,
	}
	for _, visit := range groups {
		if visit(n) {
			return
		}
	}
}

// statement prints a statement in statement position, adding the
// semicolon that a bare variable declaration leaves off.
func (p *Printer) statement(s ast.Statement) {
	p.node(s)
	if _, ok := s.(*ast.VariableDeclaration); ok {
		p.writeString(";")
	}
}

func (p *Printer) statementList(list []ast.Statement) {
	for _, s := range list {
		p.writeNewline()
		p.statement(s)
	}
}

func (p *Printer) block(list []ast.Statement) {
	if len(list) == 0 {
		p.writeString("{}")
		return
	}
	p.writeString("{")
	p.indent++
	p.statementList(list)
	p.indent--
	p.writeNewline()
	p.writeString("}")
}

// body prints a nested statement after a keyword or header.
func (p *Printer) body(s ast.Statement) {
	p.writeString(" ")
	p.statement(s)
}

func (p *Printer) statementNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Program:
		if n.Hashbang != "" {
			p.writeString("#!" + n.Hashbang + "\n")
		}
		for i, s := range n.Body {
			if i > 0 {
				p.writeNewline()
			}
			p.statement(s)
		}

	case *ast.ExpressionStatement:
		p.node(n.Expression)
		p.writeString(";")

	case *ast.BlockStatement:
		p.block(n.Body)

	case *ast.EmptyStatement:
		p.writeString(";")

	case *ast.DebuggerStatement:
		p.writeString("debugger;")

	case *ast.WithStatement:
		p.writeString("with (")
		p.node(n.Object)
		p.writeString(")")
		p.body(n.Body)

	case *ast.ReturnStatement:
		p.writeString("return")
		if n.Argument != nil {
			p.writeString(" ")
			p.node(n.Argument)
		}
		p.writeString(";")

	case *ast.LabeledStatement:
		p.writeString(n.Label.Name + ":")
		p.body(n.Body)

	case *ast.BreakStatement:
		p.jump("break", n.Label)

	case *ast.ContinueStatement:
		p.jump("continue", n.Label)

	case *ast.IfStatement:
		p.writeString("if (")
		p.node(n.Test)
		p.writeString(")")
		p.body(n.Consequent)
		if n.Alternate != nil {
			p.writeString(" else")
			p.body(n.Alternate)
		}

	case *ast.SwitchStatement:
		p.writeString("switch (")
		p.node(n.Discriminant)
		p.writeString(") {")
		p.indent++
		for _, c := range n.Cases {
			p.writeNewline()
			p.node(c)
		}
		p.indent--
		p.writeNewline()
		p.writeString("}")

	case *ast.SwitchCase:
		if n.Test == nil {
			p.writeString("default:")
		} else {
			p.writeString("case ")
			p.node(n.Test)
			p.writeString(":")
		}
		p.indent++
		p.statementList(n.Consequent)
		p.indent--

	case *ast.ThrowStatement:
		p.writeString("throw ")
		p.node(n.Argument)
		p.writeString(";")

	case *ast.TryStatement:
		p.writeString("try ")
		p.node(n.Block)
		if n.Handler != nil {
			p.writeString(" ")
			p.node(n.Handler)
		}
		if n.Finalizer != nil {
			p.writeString(" finally ")
			p.node(n.Finalizer)
		}

	case *ast.CatchClause:
		p.writeString("catch ")
		if n.Param != nil {
			p.writeString("(")
			p.node(n.Param)
			p.writeString(") ")
		}
		p.node(n.Body)

	case *ast.WhileStatement:
		p.writeString("while (")
		p.node(n.Test)
		p.writeString(")")
		p.body(n.Body)

	case *ast.DoWhileStatement:
		p.writeString("do")
		p.body(n.Body)
		p.writeString(" while (")
		p.node(n.Test)
		p.writeString(");")

	case *ast.ForStatement:
		p.writeString("for (")
		if n.Init != nil {
			p.node(n.Init)
		}
		p.writeString(";")
		if n.Test != nil {
			p.writeString(" ")
			p.node(n.Test)
		}
		p.writeString(";")
		if n.Update != nil {
			p.writeString(" ")
			p.node(n.Update)
		}
		p.writeString(")")
		p.body(n.Body)

	case *ast.ForInStatement:
		p.writeString("for (")
		p.node(n.Left)
		p.writeString(" in ")
		p.node(n.Right)
		p.writeString(")")
		p.body(n.Body)

	case *ast.ForOfStatement:
		p.writeString("for ")
		if n.Await {
			p.writeString("await ")
		}
		p.writeString("(")
		p.node(n.Left)
		p.writeString(" of ")
		p.node(n.Right)
		p.writeString(")")
		p.body(n.Body)

	case *ast.FunctionDeclaration:
		p.function(&n.Function)

	case *ast.TSDeclareFunction:
		if n.Declare {
			p.writeString("declare ")
		}
		p.function(&n.Function)
		p.writeString(";")

	case *ast.VariableDeclaration:
		if n.Declare {
			p.writeString("declare ")
		}
		p.writeString(n.DeclKind.String() + " ")
		for i, d := range n.Declarations {
			if i > 0 {
				p.writeString(", ")
			}
			p.node(d)
		}

	case *ast.VariableDeclarator:
		if id, ok := n.ID.(*ast.Identifier); ok && n.Definite {
			p.writeString(id.Name + "!")
			p.annotation(id.TypeAnnotation)
		} else {
			p.node(n.ID)
		}
		if n.Init != nil {
			p.writeString(" = ")
			p.node(n.Init)
		}

	case *ast.ClassDeclaration:
		p.class(&n.Class)

	case *ast.TSTypeAliasDeclaration:
		if n.Declare {
			p.writeString("declare ")
		}
		p.writeString("type " + n.ID.Name)
		p.typeParameters(n.TypeParameters)
		p.writeString(" = ")
		p.node(n.TypeAnnotation)
		p.writeString(";")

	case *ast.TSInterfaceDeclaration:
		if n.Declare {
			p.writeString("declare ")
		}
		p.writeString("interface " + n.ID.Name)
		p.typeParameters(n.TypeParameters)
		if len(n.Extends) > 0 {
			p.writeString(" extends ")
			for i, h := range n.Extends {
				if i > 0 {
					p.writeString(", ")
				}
				p.node(h)
			}
		}
		p.writeString(" ")
		p.node(n.Body)

	case *ast.TSInterfaceBody:
		if len(n.Body) == 0 {
			p.writeString("{}")
			break
		}
		p.writeString("{")
		p.indent++
		for _, m := range n.Body {
			p.writeNewline()
			p.node(m)
			p.writeString(";")
		}
		p.indent--
		p.writeNewline()
		p.writeString("}")

	case *ast.TSEnumDeclaration:
		if n.Declare {
			p.writeString("declare ")
		}
		if n.Const {
			p.writeString("const ")
		}
		p.writeString("enum " + n.ID.Name + " ")
		if len(n.Members) == 0 {
			p.writeString("{}")
			break
		}
		p.writeString("{")
		p.indent++
		for _, m := range n.Members {
			p.writeNewline()
			p.node(m)
			p.writeString(",")
		}
		p.indent--
		p.writeNewline()
		p.writeString("}")

	case *ast.TSEnumMember:
		p.node(n.ID)
		if n.Initializer != nil {
			p.writeString(" = ")
			p.node(n.Initializer)
		}

	default:
		return false
	}
	return true
}

func (p *Printer) jump(keyword string, label *ast.Identifier) {
	p.writeString(keyword)
	if label != nil {
		p.writeString(" " + label.Name)
	}
	p.writeString(";")
}

// function prints a function declaration, expression or signature.
func (p *Printer) function(f *ast.Function) {
	if f.Async {
		p.writeString("async ")
	}
	p.writeString("function")
	if f.Generator {
		p.writeString("*")
	}
	if f.ID != nil {
		p.writeString(" " + f.ID.Name)
	}
	p.functionRest(f)
}

// functionRest prints everything after a function's name: type
// parameters, parameters, return type and body.
func (p *Printer) functionRest(f *ast.Function) {
	p.signature(f.TypeParameters, f.Params, f.ReturnType)
	if f.Body != nil {
		p.writeString(" ")
		p.node(f.Body)
	}
}

func (p *Printer) signature(typeParams *ast.TSTypeParameterDeclaration, params []ast.Pattern, ret *ast.TSTypeAnnotation) {
	p.typeParameters(typeParams)
	p.params(params)
	p.annotation(ret)
}

func (p *Printer) params(params []ast.Pattern) {
	p.writeString("(")
	for i, param := range params {
		if i > 0 {
			p.writeString(", ")
		}
		p.node(param)
	}
	p.writeString(")")
}

// annotation prints `: T` when a is present.
func (p *Printer) annotation(a *ast.TSTypeAnnotation) {
	if a == nil {
		return
	}
	p.writeString(": ")
	p.node(a.TypeAnnotation)
}

// ===== Classes =====

func (p *Printer) decorators(list []*ast.Decorator) {
	for _, d := range list {
		p.node(d)
		p.writeString(" ")
	}
}

func (p *Printer) class(c *ast.Class) {
	p.decorators(c.Decorators)
	if c.Declare {
		p.writeString("declare ")
	}
	if c.Abstract {
		p.writeString("abstract ")
	}
	p.writeString("class")
	if c.ID != nil {
		p.writeString(" " + c.ID.Name)
	}
	p.typeParameters(c.TypeParameters)
	if c.SuperClass != nil {
		p.writeString(" extends ")
		p.node(c.SuperClass)
		p.typeArguments(c.SuperTypeArguments)
	}
	if len(c.Implements) > 0 {
		p.writeString(" implements ")
		for i, h := range c.Implements {
			if i > 0 {
				p.writeString(", ")
			}
			p.node(h)
		}
	}
	p.writeString(" ")
	p.node(c.Body)
}

func (p *Printer) modifiers(m ast.Modifiers, static bool) {
	if m.Declare {
		p.writeString("declare ")
	}
	if m.Accessibility != "" {
		p.writeString(m.Accessibility + " ")
	}
	if static {
		p.writeString("static ")
	}
	if m.Abstract {
		p.writeString("abstract ")
	}
	if m.Override {
		p.writeString("override ")
	}
	if m.Readonly {
		p.writeString("readonly ")
	}
}

func (p *Printer) propertyKey(key ast.Expression, computed bool) {
	if computed {
		p.writeString("[")
		p.node(key)
		p.writeString("]")
		return
	}
	p.node(key)
}

func (p *Printer) classProperty(c *ast.ClassProperty, accessor bool) {
	p.decorators(c.Decorators)
	p.modifiers(c.Modifiers, c.Static)
	if accessor {
		p.writeString("accessor ")
	}
	p.propertyKey(c.Key, c.Computed)
	if c.Optional {
		p.writeString("?")
	}
	if c.Definite {
		p.writeString("!")
	}
	p.annotation(c.TypeAnnotation)
	if c.Value != nil {
		p.writeString(" = ")
		p.node(c.Value)
	}
	p.writeString(";")
}

func (p *Printer) classNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ClassBody:
		if len(n.Body) == 0 {
			p.writeString("{}")
			break
		}
		p.writeString("{")
		p.indent++
		for _, m := range n.Body {
			p.writeNewline()
			p.node(m)
			if _, ok := m.(*ast.TSIndexSignature); ok {
				p.writeString(";")
			}
		}
		p.indent--
		p.writeNewline()
		p.writeString("}")

	case *ast.MethodDefinition:
		p.decorators(n.Decorators)
		p.modifiers(n.Modifiers, n.Static)
		fn := &n.Value.Function
		if fn.Async {
			p.writeString("async ")
		}
		if fn.Generator {
			p.writeString("*")
		}
		switch n.MethodKind {
		case ast.MethodGet:
			p.writeString("get ")
		case ast.MethodSet:
			p.writeString("set ")
		}
		p.propertyKey(n.Key, n.Computed)
		if n.Optional {
			p.writeString("?")
		}
		p.functionRest(fn)
		if fn.Body == nil {
			p.writeString(";")
		}

	case *ast.PropertyDefinition:
		p.classProperty(&n.ClassProperty, false)

	case *ast.AccessorProperty:
		p.classProperty(&n.ClassProperty, true)

	case *ast.StaticBlock:
		p.writeString("static ")
		p.block(n.Body)

	case *ast.Decorator:
		p.writeString("@")
		p.node(n.Expression)

	case *ast.TSIndexSignature:
		if n.Static {
			p.writeString("static ")
		}
		if n.Readonly {
			p.writeString("readonly ")
		}
		p.writeString("[")
		for i, param := range n.Parameters {
			if i > 0 {
				p.writeString(", ")
			}
			p.node(param)
		}
		p.writeString("]")
		p.annotation(n.TypeAnnotation)

	default:
		return false
	}
	return true
}
