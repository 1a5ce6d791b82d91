// Package ast defines the syntax tree produced by the parser.
//
// Every node carries its source span and reports its Kind. Nodes are
// grouped by the category interfaces Statement, Expression, Pattern,
// Declaration, ClassElement and TSType; one node may belong to several
// (an Identifier is both an Expression and a Pattern). Operators and
// declaration kinds are lexer token types rather than strings.
package ast

import (
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// Node is the base interface for all AST nodes
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// Kind returns the concrete node kind
	Kind() Kind
}

// Statement represents all statement nodes in the AST
type Statement interface {
	Node
	statementNode()
}

// Declaration is a statement that introduces bindings
type Declaration interface {
	Statement
	declarationNode()
}

// Expression represents all expression nodes in the AST
type Expression interface {
	Node
	expressionNode()
	// Parenthesized reports whether the source wrapped the expression in
	// parentheses.
	Parenthesized() bool
	SetParenthesized(bool)
}

// Pattern is a binding or assignment target
type Pattern interface {
	Node
	patternNode()
}

// ClassElement is a member of a class body
type ClassElement interface {
	Node
	classElementNode()
}

// Base holds the span shared by every node
type Base struct {
	Span position.Span
}

func (b *Base) GetSpan() position.Span { return b.Span }

// SetSpan replaces the node's span.
func (b *Base) SetSpan(span position.Span) { b.Span = span }

// ExprBase is embedded by every expression node
type ExprBase struct {
	Base
	Parens bool
}

func (e *ExprBase) expressionNode()         {}
func (e *ExprBase) Parenthesized() bool     { return e.Parens }
func (e *ExprBase) SetParenthesized(v bool) { e.Parens = v }

// ===== Program Structure =====

// Program represents the root of the AST
type Program struct {
	Base
	SourceType string // "script" or "module"
	Hashbang   string
	Body       []Statement
}

// ===== Statements =====

// ExpressionStatement wraps an expression. Directive holds the raw text of a
// directive prologue entry such as "use strict".
type ExpressionStatement struct {
	Base
	Expression Expression
	Directive  string
}

type BlockStatement struct {
	Base
	Body []Statement
}

type EmptyStatement struct{ Base }

type DebuggerStatement struct{ Base }

type WithStatement struct {
	Base
	Object Expression
	Body   Statement
}

type ReturnStatement struct {
	Base
	Argument Expression
}

type LabeledStatement struct {
	Base
	Label *Identifier
	Body  Statement
}

type BreakStatement struct {
	Base
	Label *Identifier
}

type ContinueStatement struct {
	Base
	Label *Identifier
}

type IfStatement struct {
	Base
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

type SwitchStatement struct {
	Base
	Discriminant Expression
	Cases        []*SwitchCase
}

// SwitchCase is a case clause; Test is nil for `default`.
type SwitchCase struct {
	Base
	Test       Expression
	Consequent []Statement
}

type ThrowStatement struct {
	Base
	Argument Expression
}

type TryStatement struct {
	Base
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// CatchClause is the catch part of a try statement; Param is nil for an
// optional catch binding.
type CatchClause struct {
	Base
	Param Pattern
	Body  *BlockStatement
}

type WhileStatement struct {
	Base
	Test Expression
	Body Statement
}

type DoWhileStatement struct {
	Base
	Body Statement
	Test Expression
}

// ForStatement is a C-style loop. Init is a *VariableDeclaration, an
// Expression or nil.
type ForStatement struct {
	Base
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

// ForInStatement iterates over keys. Left is a *VariableDeclaration or a
// Pattern.
type ForInStatement struct {
	Base
	Left  Node
	Right Expression
	Body  Statement
}

type ForOfStatement struct {
	Base
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

// ===== Declarations =====

// Function holds the parts shared by function declarations, expressions
// and TypeScript function signatures.
type Function struct {
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
	Body           *BlockStatement
	Async          bool
	Generator      bool
}

type FunctionDeclaration struct {
	Base
	Function
}

// VariableDeclaration is a var, let or const declaration.
type VariableDeclaration struct {
	Base
	DeclKind     lexer.TokenType
	Declarations []*VariableDeclarator
	Declare      bool
}

type VariableDeclarator struct {
	Base
	ID       Pattern
	Init     Expression
	Definite bool
}

// Class holds the parts shared by class declarations and expressions.
type Class struct {
	Decorators         []*Decorator
	ID                 *Identifier
	TypeParameters     *TSTypeParameterDeclaration
	SuperClass         Expression
	SuperTypeArguments *TSTypeParameterInstantiation
	Implements         []*TSExpressionWithTypeArguments
	Body               *ClassBody
	Abstract           bool
	Declare            bool
}

type ClassDeclaration struct {
	Base
	Class
}

type ClassBody struct {
	Base
	Body []ClassElement
}

// MethodKind distinguishes constructors, methods and accessors.
type MethodKind int

const (
	MethodNormal MethodKind = iota
	MethodConstructor
	MethodGet
	MethodSet
)

func (mk MethodKind) String() string {
	switch mk {
	case MethodConstructor:
		return "constructor"
	case MethodGet:
		return "get"
	case MethodSet:
		return "set"
	default:
		return "method"
	}
}

// Modifiers are the TypeScript member modifiers of a class element.
type Modifiers struct {
	Accessibility string // "", "public", "private" or "protected"
	Abstract      bool
	Override      bool
	Readonly      bool
	Declare       bool
	Optional      bool
}

type MethodDefinition struct {
	Base
	Decorators []*Decorator
	Key        Expression
	Value      *FunctionExpression
	MethodKind MethodKind
	Computed   bool
	Static     bool
	Modifiers
}

// ClassProperty holds the fields shared by PropertyDefinition and
// AccessorProperty.
type ClassProperty struct {
	Decorators     []*Decorator
	Key            Expression
	TypeAnnotation *TSTypeAnnotation
	Value          Expression
	Computed       bool
	Static         bool
	Definite       bool
	Modifiers
}

type PropertyDefinition struct {
	Base
	ClassProperty
}

// AccessorProperty is a field declared with the `accessor` keyword.
type AccessorProperty struct {
	Base
	ClassProperty
}

type StaticBlock struct {
	Base
	Body []Statement
}

type Decorator struct {
	Base
	Expression Expression
}

// ===== Modules =====

// ImportDeclaration is an import statement. Specifiers hold
// *ImportSpecifier, *ImportDefaultSpecifier and *ImportNamespaceSpecifier.
type ImportDeclaration struct {
	Base
	Specifiers []Node
	Source     *StringLiteral
	Attributes []*ImportAttribute
	TypeOnly   bool
}

// ImportSpecifier is `imported as local`; Imported is an *Identifier or a
// *StringLiteral.
type ImportSpecifier struct {
	Base
	Imported Node
	Local    *Identifier
	TypeOnly bool
}

type ImportDefaultSpecifier struct {
	Base
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier
}

// ImportAttribute is one `key: "value"` entry of a `with { }` clause.
type ImportAttribute struct {
	Base
	Key   Node
	Value *StringLiteral
}

type ExportNamedDeclaration struct {
	Base
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
	Attributes  []*ImportAttribute
	TypeOnly    bool
}

// ExportSpecifier is `local as exported`; either side may be a string
// literal.
type ExportSpecifier struct {
	Base
	Local    Node
	Exported Node
	TypeOnly bool
}

// ExportDefaultDeclaration holds a declaration or an expression.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node
}

type ExportAllDeclaration struct {
	Base
	Exported   Node
	Source     *StringLiteral
	Attributes []*ImportAttribute
	TypeOnly   bool
}

// ===== Expressions =====

// Identifier is a name reference or binding. In TypeScript binding
// positions it may carry a type annotation and the optional marker.
type Identifier struct {
	ExprBase
	Name           string
	TypeAnnotation *TSTypeAnnotation
	Optional       bool
}

// PrivateName is `#name`; Name excludes the hash.
type PrivateName struct {
	ExprBase
	Name string
}

type StringLiteral struct {
	ExprBase
	Value string
	Raw   string
}

// NumericLiteral keeps the lexical subkind of the number in NumberKind.
type NumericLiteral struct {
	ExprBase
	Value      float64
	Raw        string
	NumberKind lexer.TokenType
}

type BigIntLiteral struct {
	ExprBase
	Value string
	Raw   string
}

type BooleanLiteral struct {
	ExprBase
	Value bool
}

type NullLiteral struct{ ExprBase }

type RegExpLiteral struct {
	ExprBase
	Pattern string
	Flags   string
}

// TemplateLiteral alternates Quasis and Expressions, starting and ending
// with a quasi.
type TemplateLiteral struct {
	ExprBase
	Quasis      []*TemplateElement
	Expressions []Expression
}

// TemplateElement is a literal chunk of a template. Invalid is set when the
// chunk contains an escape that has no cooked value.
type TemplateElement struct {
	Base
	Raw     string
	Cooked  string
	Invalid bool
	Tail    bool
}

type TaggedTemplateExpression struct {
	ExprBase
	Tag           Expression
	TypeArguments *TSTypeParameterInstantiation
	Quasi         *TemplateLiteral
}

type ThisExpression struct{ ExprBase }

type Super struct{ ExprBase }

// ArrayExpression elements may be nil for holes.
type ArrayExpression struct {
	ExprBase
	Elements []Expression
}

// ObjectExpression properties are *Property or *SpreadElement.
type ObjectExpression struct {
	ExprBase
	Properties []Node
}

// PropertyKind distinguishes data properties from accessors.
type PropertyKind int

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
)

func (pk PropertyKind) String() string {
	switch pk {
	case PropertyGet:
		return "get"
	case PropertySet:
		return "set"
	default:
		return "init"
	}
}

// Property is an object literal or object pattern member. In a pattern the
// Value is a Pattern.
type Property struct {
	Base
	Key       Expression
	Value     Node
	PropKind  PropertyKind
	Method    bool
	Shorthand bool
	Computed  bool
}

type FunctionExpression struct {
	ExprBase
	Function
}

// ArrowFunctionExpression has a *BlockStatement body or, when Concise is
// set, an Expression body.
type ArrowFunctionExpression struct {
	ExprBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
	Body           Node
	Async          bool
	Concise        bool
}

type ClassExpression struct {
	ExprBase
	Class
}

type UnaryExpression struct {
	ExprBase
	Operator lexer.TokenType
	Argument Expression
}

type UpdateExpression struct {
	ExprBase
	Operator lexer.TokenType
	Prefix   bool
	Argument Expression
}

type BinaryExpression struct {
	ExprBase
	Operator lexer.TokenType
	Left     Expression
	Right    Expression
}

// LogicalExpression is `&&`, `||` or `??`.
type LogicalExpression struct {
	ExprBase
	Operator lexer.TokenType
	Left     Expression
	Right    Expression
}

type AssignmentExpression struct {
	ExprBase
	Operator lexer.TokenType
	Left     Pattern
	Right    Expression
}

type ConditionalExpression struct {
	ExprBase
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type CallExpression struct {
	ExprBase
	Callee        Expression
	Arguments     []Expression
	TypeArguments *TSTypeParameterInstantiation
	Optional      bool
}

type NewExpression struct {
	ExprBase
	Callee        Expression
	Arguments     []Expression
	TypeArguments *TSTypeParameterInstantiation
}

// MemberExpression is `object.property`, `object[property]` or
// `object.#private`; Optional marks a `?.` link.
type MemberExpression struct {
	ExprBase
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

type SequenceExpression struct {
	ExprBase
	Expressions []Expression
}

type SpreadElement struct {
	ExprBase
	Argument Expression
}

type YieldExpression struct {
	ExprBase
	Argument Expression
	Delegate bool
}

type AwaitExpression struct {
	ExprBase
	Argument Expression
}

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	ExprBase
	Meta     *Identifier
	Property *Identifier
}

// ImportExpression is a dynamic `import(source, options)`.
type ImportExpression struct {
	ExprBase
	Source  Expression
	Options Expression
}

// ===== Patterns =====

// ObjectPattern properties are *Property (with Pattern values) or
// *RestElement.
type ObjectPattern struct {
	Base
	Properties     []Node
	TypeAnnotation *TSTypeAnnotation
}

// ArrayPattern elements may be nil for holes.
type ArrayPattern struct {
	Base
	Elements       []Pattern
	TypeAnnotation *TSTypeAnnotation
}

type AssignmentPattern struct {
	Base
	Left  Pattern
	Right Expression
}

type RestElement struct {
	Base
	Argument       Pattern
	TypeAnnotation *TSTypeAnnotation
}
