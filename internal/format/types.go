package format

import (
	"github.com/orizon-lang/ecmaparse/internal/ast"
)

func (p *Printer) typeParameters(d *ast.TSTypeParameterDeclaration) {
	if d == nil {
		return
	}
	p.writeString("<")
	for i, tp := range d.Params {
		if i > 0 {
			p.writeString(", ")
		}
		p.node(tp)
	}
	p.writeString(">")
}

func (p *Printer) typeArguments(inst *ast.TSTypeParameterInstantiation) {
	if inst == nil {
		return
	}
	p.writeString("<")
	for i, t := range inst.Params {
		if i > 0 {
			p.writeString(", ")
		}
		p.node(t)
	}
	p.writeString(">")
}

func (p *Printer) typeList(types []ast.TSType, sep string) {
	if len(types) == 1 {
		// a lone member keeps its leading operator, otherwise it would
		// re-parse as the member itself
		p.writeString(sep[1:])
	}
	for i, t := range types {
		if i > 0 {
			p.writeString(sep)
		}
		p.node(t)
	}
}

// typeMembers prints the braces of a type literal on one line.
func (p *Printer) typeMembers(list []ast.Node) {
	if len(list) == 0 {
		p.writeString("{}")
		return
	}
	p.writeString("{ ")
	for i, m := range list {
		if i > 0 {
			p.writeString("; ")
		}
		p.node(m)
	}
	p.writeString(" }")
}

func (p *Printer) typeNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.TSTypeAnnotation:
		p.node(n.TypeAnnotation)

	case *ast.TSTypeParameter:
		if n.Const {
			p.writeString("const ")
		}
		if n.In {
			p.writeString("in ")
		}
		if n.Out {
			p.writeString("out ")
		}
		p.writeString(n.Name)
		if n.Constraint != nil {
			p.writeString(" extends ")
			p.node(n.Constraint)
		}
		if n.Default != nil {
			p.writeString(" = ")
			p.node(n.Default)
		}

	case *ast.TSExpressionWithTypeArguments:
		p.node(n.Expression)
		p.typeArguments(n.TypeArguments)

	case *ast.TSKeywordType:
		p.writeString(n.Name)

	case *ast.TSThisType:
		p.writeString("this")

	case *ast.TSTypeReference:
		p.node(n.TypeName)
		p.typeArguments(n.TypeArguments)

	case *ast.TSQualifiedName:
		p.node(n.Left)
		p.writeString("." + n.Right.Name)

	case *ast.TSUnionType:
		p.typeList(n.Types, " | ")

	case *ast.TSIntersectionType:
		p.typeList(n.Types, " & ")

	case *ast.TSConditionalType:
		p.node(n.CheckType)
		p.writeString(" extends ")
		p.node(n.ExtendsType)
		p.writeString(" ? ")
		p.node(n.TrueType)
		p.writeString(" : ")
		p.node(n.FalseType)

	case *ast.TSInferType:
		p.writeString("infer ")
		p.node(n.TypeParameter)

	case *ast.TSFunctionType:
		p.typeParameters(n.TypeParameters)
		p.params(n.Params)
		p.writeString(" => ")
		p.node(n.ReturnType)

	case *ast.TSConstructorType:
		if n.Abstract {
			p.writeString("abstract ")
		}
		p.writeString("new ")
		p.typeParameters(n.TypeParameters)
		p.params(n.Params)
		p.writeString(" => ")
		p.node(n.ReturnType)

	case *ast.TSArrayType:
		p.node(n.ElementType)
		p.writeString("[]")

	case *ast.TSTupleType:
		p.writeString("[")
		for i, t := range n.ElementTypes {
			if i > 0 {
				p.writeString(", ")
			}
			p.node(t)
		}
		p.writeString("]")

	case *ast.TSNamedTupleMember:
		p.writeString(n.Label.Name)
		if n.Optional {
			p.writeString("?")
		}
		p.writeString(": ")
		p.node(n.ElementType)

	case *ast.TSOptionalType:
		p.node(n.TypeAnnotation)
		p.writeString("?")

	case *ast.TSRestType:
		p.writeString("...")
		p.node(n.TypeAnnotation)

	case *ast.TSIndexedAccessType:
		p.node(n.ObjectType)
		p.writeString("[")
		p.node(n.IndexType)
		p.writeString("]")

	case *ast.TSTypeOperator:
		p.writeString(n.Operator + " ")
		p.node(n.TypeAnnotation)

	case *ast.TSTypeQuery:
		p.writeString("typeof ")
		p.node(n.ExprName)
		p.typeArguments(n.TypeArguments)

	case *ast.TSLiteralType:
		p.node(n.Literal)

	case *ast.TSTemplateLiteralType:
		p.template(n.Quasis, len(n.Types), func(i int) { p.node(n.Types[i]) })

	case *ast.TSTypeLiteral:
		p.typeMembers(n.Members)

	case *ast.TSParenthesizedType:
		p.writeString("(")
		p.node(n.TypeAnnotation)
		p.writeString(")")

	case *ast.TSTypePredicate:
		if n.Asserts {
			p.writeString("asserts ")
		}
		p.node(n.ParameterName)
		if n.TypeAnnotation != nil {
			p.writeString(" is ")
			p.node(n.TypeAnnotation)
		}

	case *ast.TSMappedType:
		p.writeString("{ ")
		p.writeString(mappedModifier(n.Readonly, "readonly "))
		p.writeString("[" + n.TypeParameter.Name + " in ")
		p.node(n.TypeParameter.Constraint)
		if n.NameType != nil {
			p.writeString(" as ")
			p.node(n.NameType)
		}
		p.writeString("]")
		p.writeString(mappedModifier(n.Optional, "?"))
		if n.TypeAnnotation != nil {
			p.writeString(": ")
			p.node(n.TypeAnnotation)
		}
		p.writeString(" }")

	case *ast.TSPropertySignature:
		if n.Readonly {
			p.writeString("readonly ")
		}
		p.propertyKey(n.Key, n.Computed)
		if n.Optional {
			p.writeString("?")
		}
		p.annotation(n.TypeAnnotation)

	case *ast.TSMethodSignature:
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
		p.signature(n.TypeParameters, n.Params, n.ReturnType)

	case *ast.TSCallSignatureDeclaration:
		p.signature(n.TypeParameters, n.Params, n.ReturnType)

	case *ast.TSConstructSignatureDeclaration:
		p.writeString("new ")
		p.signature(n.TypeParameters, n.Params, n.ReturnType)

	default:
		return false
	}
	return true
}

// mappedModifier renders a mapped type modifier: "true" is the bare
// keyword, "+" and "-" prefix it.
func mappedModifier(mod, keyword string) string {
	switch mod {
	case "":
		return ""
	case "true":
		return keyword
	}
	return mod + keyword
}

// ===== JSX =====

func (p *Printer) jsxNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.JSXElement:
		p.node(n.OpeningElement)
		p.jsxChildren(n.Children)
		if n.ClosingElement != nil {
			p.node(n.ClosingElement)
		}

	case *ast.JSXOpeningElement:
		p.writeString("<")
		p.node(n.Name)
		p.typeArguments(n.TypeArguments)
		for _, a := range n.Attributes {
			p.writeString(" ")
			p.node(a)
		}
		if n.SelfClosing {
			p.writeString(" />")
		} else {
			p.writeString(">")
		}

	case *ast.JSXClosingElement:
		p.writeString("</")
		p.node(n.Name)
		p.writeString(">")

	case *ast.JSXFragment:
		p.writeString("<>")
		p.jsxChildren(n.Children)
		p.writeString("</>")

	case *ast.JSXAttribute:
		p.node(n.Name)
		if n.Value != nil {
			p.writeString("=")
			p.node(n.Value)
		}

	case *ast.JSXSpreadAttribute:
		p.writeString("{...")
		p.node(n.Argument)
		p.writeString("}")

	case *ast.JSXIdentifier:
		p.writeString(n.Name)

	case *ast.JSXMemberExpression:
		p.node(n.Object)
		p.writeString("." + n.Property.Name)

	case *ast.JSXNamespacedName:
		p.writeString(n.Namespace.Name + ":" + n.Name.Name)

	case *ast.JSXExpressionContainer:
		p.writeString("{")
		p.node(n.Expression)
		p.writeString("}")

	case *ast.JSXEmptyExpression:

	case *ast.JSXText:
		p.writeString(n.Raw)

	case *ast.JSXSpreadChild:
		p.writeString("{...")
		p.node(n.Expression)
		p.writeString("}")

	default:
		return false
	}
	return true
}

// jsxChildren prints children verbatim; whitespace inside JSX is content.
func (p *Printer) jsxChildren(children []ast.Node) {
	for _, c := range children {
		p.node(c)
	}
}
