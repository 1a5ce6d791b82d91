package format

import (
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
)

func (p *Printer) expressionNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Identifier:
		p.writeString(n.Name)
		if n.Optional {
			p.writeString("?")
		}
		p.annotation(n.TypeAnnotation)

	case *ast.PrivateName:
		p.writeString("#" + n.Name)

	case *ast.StringLiteral:
		p.writeString(n.Raw)

	case *ast.NumericLiteral:
		p.writeString(n.Raw)

	case *ast.BigIntLiteral:
		p.writeString(n.Raw)

	case *ast.BooleanLiteral:
		if n.Value {
			p.writeString("true")
		} else {
			p.writeString("false")
		}

	case *ast.NullLiteral:
		p.writeString("null")

	case *ast.RegExpLiteral:
		p.writeString("/" + n.Pattern + "/" + n.Flags)

	case *ast.TemplateLiteral:
		p.template(n.Quasis, len(n.Expressions), func(i int) { p.node(n.Expressions[i]) })

	case *ast.TaggedTemplateExpression:
		p.node(n.Tag)
		p.typeArguments(n.TypeArguments)
		p.node(n.Quasi)

	case *ast.ThisExpression:
		p.writeString("this")

	case *ast.Super:
		p.writeString("super")

	case *ast.ArrayExpression:
		p.writeString("[")
		for i, e := range n.Elements {
			if i > 0 {
				p.writeString(", ")
			}
			if e != nil {
				p.node(e)
			}
		}
		if k := len(n.Elements); k > 0 && n.Elements[k-1] == nil {
			p.writeString(",")
		}
		p.writeString("]")

	case *ast.ObjectExpression:
		p.members(n.Properties)

	case *ast.Property:
		p.property(n)

	case *ast.FunctionExpression:
		p.function(&n.Function)

	case *ast.ArrowFunctionExpression:
		if n.Async {
			p.writeString("async ")
		}
		p.signature(n.TypeParameters, n.Params, n.ReturnType)
		p.writeString(" => ")
		p.node(n.Body)

	case *ast.ClassExpression:
		p.class(&n.Class)

	case *ast.UnaryExpression:
		p.writeString(n.Operator.String())
		if n.Operator.IsKeyword() || needsSpace(n.Operator, n.Argument) {
			p.writeString(" ")
		}
		p.node(n.Argument)

	case *ast.UpdateExpression:
		if n.Prefix {
			p.writeString(n.Operator.String())
			p.node(n.Argument)
		} else {
			p.node(n.Argument)
			p.writeString(n.Operator.String())
		}

	case *ast.BinaryExpression:
		p.binary(n.Left, n.Operator, n.Right)

	case *ast.LogicalExpression:
		p.binary(n.Left, n.Operator, n.Right)

	case *ast.AssignmentExpression:
		p.binary(n.Left, n.Operator, n.Right)

	case *ast.ConditionalExpression:
		p.node(n.Test)
		p.writeString(" ? ")
		p.node(n.Consequent)
		p.writeString(" : ")
		p.node(n.Alternate)

	case *ast.CallExpression:
		p.node(n.Callee)
		if n.Optional {
			p.writeString("?.")
		}
		p.typeArguments(n.TypeArguments)
		p.arguments(n.Arguments)

	case *ast.NewExpression:
		p.writeString("new ")
		p.node(n.Callee)
		p.typeArguments(n.TypeArguments)
		p.arguments(n.Arguments)

	case *ast.MemberExpression:
		p.node(n.Object)
		if isBareInteger(n.Object) && !n.Computed && !n.Optional {
			p.writeString(" ")
		}
		switch {
		case n.Computed && n.Optional:
			p.writeString("?.[")
		case n.Computed:
			p.writeString("[")
		case n.Optional:
			p.writeString("?.")
		default:
			p.writeString(".")
		}
		p.node(n.Property)
		if n.Computed {
			p.writeString("]")
		}

	case *ast.SequenceExpression:
		for i, e := range n.Expressions {
			if i > 0 {
				p.writeString(", ")
			}
			p.node(e)
		}

	case *ast.SpreadElement:
		p.writeString("...")
		p.node(n.Argument)

	case *ast.YieldExpression:
		p.writeString("yield")
		if n.Delegate {
			p.writeString("*")
		}
		if n.Argument != nil {
			p.writeString(" ")
			p.node(n.Argument)
		}

	case *ast.AwaitExpression:
		p.writeString("await ")
		p.node(n.Argument)

	case *ast.MetaProperty:
		p.writeString(n.Meta.Name + "." + n.Property.Name)

	case *ast.ImportExpression:
		p.writeString("import(")
		p.node(n.Source)
		if n.Options != nil {
			p.writeString(", ")
			p.node(n.Options)
		}
		p.writeString(")")

	case *ast.TSAsExpression:
		p.node(n.Expression)
		p.writeString(" as ")
		p.node(n.TypeAnnotation)

	case *ast.TSSatisfiesExpression:
		p.node(n.Expression)
		p.writeString(" satisfies ")
		p.node(n.TypeAnnotation)

	case *ast.TSTypeAssertion:
		p.writeString("<")
		p.node(n.TypeAnnotation)
		p.writeString(">")
		p.node(n.Expression)

	case *ast.TSNonNullExpression:
		p.node(n.Expression)
		p.writeString("!")

	case *ast.TSInstantiationExpression:
		p.node(n.Expression)
		p.typeArguments(n.TypeArguments)

	default:
		return false
	}
	return true
}

func (p *Printer) binary(left ast.Node, op lexer.TokenType, right ast.Node) {
	p.node(left)
	p.writeString(" " + op.String() + " ")
	p.node(right)
}

func (p *Printer) arguments(args []ast.Expression) {
	p.writeString("(")
	for i, a := range args {
		if i > 0 {
			p.writeString(", ")
		}
		p.node(a)
	}
	p.writeString(")")
}

// template prints a template whose substitutions are printed by sub.
func (p *Printer) template(quasis []*ast.TemplateElement, subs int, sub func(int)) {
	p.writeString("`")
	for i, q := range quasis {
		p.writeString(q.Raw)
		if i < subs {
			p.writeString("${")
			sub(i)
			p.writeString("}")
		}
	}
	p.writeString("`")
}

// members prints the braces of an object literal or object pattern.
func (p *Printer) members(list []ast.Node) {
	if len(list) == 0 {
		p.writeString("{}")
		return
	}
	p.writeString("{ ")
	for i, m := range list {
		if i > 0 {
			p.writeString(", ")
		}
		p.node(m)
	}
	p.writeString(" }")
}

func (p *Printer) property(n *ast.Property) {
	if n.Shorthand {
		p.node(n.Value)
		return
	}

	fn, isFunc := n.Value.(*ast.FunctionExpression)
	if !isFunc || (!n.Method && n.PropKind == ast.PropertyInit) {
		p.propertyKey(n.Key, n.Computed)
		p.writeString(": ")
		p.node(n.Value)
		return
	}

	switch n.PropKind {
	case ast.PropertyGet:
		p.writeString("get ")
	case ast.PropertySet:
		p.writeString("set ")
	default:
		if fn.Async {
			p.writeString("async ")
		}
		if fn.Generator {
			p.writeString("*")
		}
	}
	p.propertyKey(n.Key, n.Computed)
	p.functionRest(&fn.Function)
}

// needsSpace reports whether a prefix operator would fuse with the start
// of its operand, as in `- -x` or `+ ++x`.
func needsSpace(op lexer.TokenType, arg ast.Expression) bool {
	if arg.Parenthesized() {
		return false
	}
	var next lexer.TokenType
	switch a := arg.(type) {
	case *ast.UnaryExpression:
		next = a.Operator
	case *ast.UpdateExpression:
		if !a.Prefix {
			return false
		}
		next = a.Operator
	default:
		return false
	}
	first := next.String()[0]
	return (op == lexer.TokenPlus || op == lexer.TokenMinus) && first == op.String()[0]
}

// isBareInteger reports whether e is a decimal literal that would absorb a
// following dot.
func isBareInteger(e ast.Expression) bool {
	num, ok := e.(*ast.NumericLiteral)
	if !ok || num.Parenthesized() {
		return false
	}
	return strings.Trim(num.Raw, "0123456789_") == ""
}

// ===== Patterns =====

func (p *Printer) patternNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ObjectPattern:
		p.members(n.Properties)
		p.annotation(n.TypeAnnotation)

	case *ast.ArrayPattern:
		p.writeString("[")
		for i, e := range n.Elements {
			if i > 0 {
				p.writeString(", ")
			}
			if e != nil {
				p.node(e)
			}
		}
		if k := len(n.Elements); k > 0 && n.Elements[k-1] == nil {
			p.writeString(",")
		}
		p.writeString("]")
		p.annotation(n.TypeAnnotation)

	case *ast.AssignmentPattern:
		p.node(n.Left)
		p.writeString(" = ")
		p.node(n.Right)

	case *ast.RestElement:
		p.writeString("...")
		p.node(n.Argument)
		p.annotation(n.TypeAnnotation)

	case *ast.TSParameterProperty:
		if n.Accessibility != "" {
			p.writeString(n.Accessibility + " ")
		}
		if n.Override {
			p.writeString("override ")
		}
		if n.Readonly {
			p.writeString("readonly ")
		}
		p.node(n.Parameter)

	default:
		return false
	}
	return true
}

// ===== Modules =====

func (p *Printer) moduleNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ImportDeclaration:
		p.writeString("import ")
		if n.TypeOnly {
			p.writeString("type ")
		}
		p.importClause(n.Specifiers)
		p.node(n.Source)
		p.attributes(n.Attributes)
		p.writeString(";")

	case *ast.ImportSpecifier:
		if n.TypeOnly {
			p.writeString("type ")
		}
		p.node(n.Imported)
		if id, ok := n.Imported.(*ast.Identifier); !ok || id.Name != n.Local.Name {
			p.writeString(" as " + n.Local.Name)
		}

	case *ast.ImportDefaultSpecifier:
		p.writeString(n.Local.Name)

	case *ast.ImportNamespaceSpecifier:
		p.writeString("* as " + n.Local.Name)

	case *ast.ImportAttribute:
		p.node(n.Key)
		p.writeString(": ")
		p.node(n.Value)

	case *ast.ExportNamedDeclaration:
		p.writeString("export ")
		if n.Declaration != nil {
			p.statement(n.Declaration)
			break
		}
		if n.TypeOnly {
			p.writeString("type ")
		}
		p.writeString("{")
		for i, s := range n.Specifiers {
			if i > 0 {
				p.writeString(",")
			}
			p.writeString(" ")
			p.node(s)
		}
		if len(n.Specifiers) > 0 {
			p.writeString(" ")
		}
		p.writeString("}")
		if n.Source != nil {
			p.writeString(" from ")
			p.node(n.Source)
			p.attributes(n.Attributes)
		}
		p.writeString(";")

	case *ast.ExportSpecifier:
		if n.TypeOnly {
			p.writeString("type ")
		}
		p.node(n.Local)
		if !sameModuleName(n.Local, n.Exported) {
			p.writeString(" as ")
			p.node(n.Exported)
		}

	case *ast.ExportDefaultDeclaration:
		p.writeString("export default ")
		p.node(n.Declaration)
		if _, ok := n.Declaration.(ast.Expression); ok {
			p.writeString(";")
		}

	case *ast.ExportAllDeclaration:
		p.writeString("export ")
		if n.TypeOnly {
			p.writeString("type ")
		}
		p.writeString("*")
		if n.Exported != nil {
			p.writeString(" as ")
			p.node(n.Exported)
		}
		p.writeString(" from ")
		p.node(n.Source)
		p.attributes(n.Attributes)
		p.writeString(";")

	default:
		return false
	}
	return true
}

// importClause prints the bindings of an import up to and including
// `from`. A side-effect import prints nothing.
func (p *Printer) importClause(specs []ast.Node) {
	if len(specs) == 0 {
		return
	}

	var named []ast.Node
	wrote := false
	for _, s := range specs {
		switch s.(type) {
		case *ast.ImportDefaultSpecifier, *ast.ImportNamespaceSpecifier:
			if wrote {
				p.writeString(", ")
			}
			p.node(s)
			wrote = true
		default:
			named = append(named, s)
		}
	}

	if len(named) > 0 {
		if wrote {
			p.writeString(", ")
		}
		p.writeString("{ ")
		for i, s := range named {
			if i > 0 {
				p.writeString(", ")
			}
			p.node(s)
		}
		p.writeString(" }")
	}
	p.writeString(" from ")
}

func (p *Printer) attributes(attrs []*ast.ImportAttribute) {
	if len(attrs) == 0 {
		return
	}
	p.writeString(" with { ")
	for i, a := range attrs {
		if i > 0 {
			p.writeString(", ")
		}
		p.node(a)
	}
	p.writeString(" }")
}

// sameModuleName reports whether an export specifier can drop its `as`
// clause.
func sameModuleName(local, exported ast.Node) bool {
	switch l := local.(type) {
	case *ast.Identifier:
		e, ok := exported.(*ast.Identifier)
		return ok && e.Name == l.Name
	case *ast.StringLiteral:
		e, ok := exported.(*ast.StringLiteral)
		return ok && e.Raw == l.Raw
	}
	return false
}
