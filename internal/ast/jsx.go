package ast

// JSXElement is `<name ...>children</name>` or a self-closing element;
// ClosingElement is nil when self-closing.
type JSXElement struct {
	ExprBase
	OpeningElement *JSXOpeningElement
	Children       []Node
	ClosingElement *JSXClosingElement
}

// JSXOpeningElement Name is a *JSXIdentifier, *JSXMemberExpression or
// *JSXNamespacedName. Attributes are *JSXAttribute or *JSXSpreadAttribute.
type JSXOpeningElement struct {
	Base
	Name          Node
	Attributes    []Node
	TypeArguments *TSTypeParameterInstantiation
	SelfClosing   bool
}

type JSXClosingElement struct {
	Base
	Name Node
}

// JSXFragment is `<>children</>`.
type JSXFragment struct {
	ExprBase
	Children []Node
}

// JSXAttribute Value is nil, a *StringLiteral, a *JSXExpressionContainer,
// a *JSXElement or a *JSXFragment.
type JSXAttribute struct {
	Base
	Name  Node
	Value Node
}

type JSXSpreadAttribute struct {
	Base
	Argument Expression
}

type JSXIdentifier struct {
	Base
	Name string
}

type JSXMemberExpression struct {
	Base
	Object   Node
	Property *JSXIdentifier
}

type JSXNamespacedName struct {
	Base
	Namespace *JSXIdentifier
	Name      *JSXIdentifier
}

// JSXExpressionContainer holds `{expr}`; an empty container holds a
// *JSXEmptyExpression.
type JSXExpressionContainer struct {
	Base
	Expression Expression
}

type JSXEmptyExpression struct{ ExprBase }

type JSXText struct {
	Base
	Value string
	Raw   string
}

type JSXSpreadChild struct {
	Base
	Expression Expression
}
