package ast

// TSType represents all TypeScript type nodes
type TSType interface {
	Node
	tsTypeNode()
}

// TSTypeBase is embedded by every type node
type TSTypeBase struct {
	Base
}

func (t *TSTypeBase) tsTypeNode() {}

// ===== Annotations and generics =====

// TSTypeAnnotation is the `: Type` suffix of a binding or signature.
type TSTypeAnnotation struct {
	Base
	TypeAnnotation TSType
}

type TSTypeParameterDeclaration struct {
	Base
	Params []*TSTypeParameter
}

// TSTypeParameter is `const in out Name extends Constraint = Default`.
type TSTypeParameter struct {
	Base
	Name       string
	Constraint TSType
	Default    TSType
	In         bool
	Out        bool
	Const      bool
}

type TSTypeParameterInstantiation struct {
	Base
	Params []TSType
}

// ===== Expressions =====

type TSAsExpression struct {
	ExprBase
	Expression     Expression
	TypeAnnotation TSType
}

type TSSatisfiesExpression struct {
	ExprBase
	Expression     Expression
	TypeAnnotation TSType
}

// TSTypeAssertion is the angle bracket form `<Type>expr`.
type TSTypeAssertion struct {
	ExprBase
	TypeAnnotation TSType
	Expression     Expression
}

type TSNonNullExpression struct {
	ExprBase
	Expression Expression
}

// TSInstantiationExpression is `expr<Types>` not followed by a call.
type TSInstantiationExpression struct {
	ExprBase
	Expression    Expression
	TypeArguments *TSTypeParameterInstantiation
}

// ===== Declarations =====

type TSTypeAliasDeclaration struct {
	Base
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	TypeAnnotation TSType
	Declare        bool
}

type TSInterfaceDeclaration struct {
	Base
	ID             *Identifier
	TypeParameters *TSTypeParameterDeclaration
	Extends        []*TSExpressionWithTypeArguments
	Body           *TSInterfaceBody
	Declare        bool
}

// TSInterfaceBody holds signatures: *TSPropertySignature,
// *TSMethodSignature, *TSCallSignatureDeclaration,
// *TSConstructSignatureDeclaration and *TSIndexSignature.
type TSInterfaceBody struct {
	Base
	Body []Node
}

// TSExpressionWithTypeArguments is a heritage clause entry; Expression is
// an *Identifier, a *TSQualifiedName or a *MemberExpression.
type TSExpressionWithTypeArguments struct {
	Base
	Expression    Node
	TypeArguments *TSTypeParameterInstantiation
}

type TSEnumDeclaration struct {
	Base
	ID      *Identifier
	Members []*TSEnumMember
	Const   bool
	Declare bool
}

// TSEnumMember ID is an *Identifier or a *StringLiteral.
type TSEnumMember struct {
	Base
	ID          Node
	Initializer Expression
}

// TSDeclareFunction is a function signature without a body: an overload or
// a `declare function`.
type TSDeclareFunction struct {
	Base
	Function
	Declare bool
}

// TSParameterProperty is a constructor parameter with an accessibility or
// readonly modifier.
type TSParameterProperty struct {
	Base
	Accessibility string
	Readonly      bool
	Override      bool
	Parameter     Pattern
}

// ===== Types =====

// TSKeywordType is a predefined type such as `number` or `never`.
type TSKeywordType struct {
	TSTypeBase
	Name string
}

type TSThisType struct{ TSTypeBase }

// TSTypeReference TypeName is an *Identifier or a *TSQualifiedName.
type TSTypeReference struct {
	TSTypeBase
	TypeName      Node
	TypeArguments *TSTypeParameterInstantiation
}

type TSQualifiedName struct {
	Base
	Left  Node
	Right *Identifier
}

type TSUnionType struct {
	TSTypeBase
	Types []TSType
}

type TSIntersectionType struct {
	TSTypeBase
	Types []TSType
}

type TSConditionalType struct {
	TSTypeBase
	CheckType   TSType
	ExtendsType TSType
	TrueType    TSType
	FalseType   TSType
}

type TSInferType struct {
	TSTypeBase
	TypeParameter *TSTypeParameter
}

type TSFunctionType struct {
	TSTypeBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
}

type TSConstructorType struct {
	TSTypeBase
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
	Abstract       bool
}

type TSArrayType struct {
	TSTypeBase
	ElementType TSType
}

type TSTupleType struct {
	TSTypeBase
	ElementTypes []TSType
}

type TSNamedTupleMember struct {
	TSTypeBase
	Label       *Identifier
	ElementType TSType
	Optional    bool
}

type TSOptionalType struct {
	TSTypeBase
	TypeAnnotation TSType
}

type TSRestType struct {
	TSTypeBase
	TypeAnnotation TSType
}

type TSIndexedAccessType struct {
	TSTypeBase
	ObjectType TSType
	IndexType  TSType
}

// TSTypeOperator is `keyof T`, `unique T` or `readonly T`.
type TSTypeOperator struct {
	TSTypeBase
	Operator       string
	TypeAnnotation TSType
}

// TSTypeQuery is `typeof expr`; ExprName is an *Identifier,
// *TSQualifiedName or *ThisExpression.
type TSTypeQuery struct {
	TSTypeBase
	ExprName      Node
	TypeArguments *TSTypeParameterInstantiation
}

// TSLiteralType wraps a string, number, bigint, boolean, template or
// negated numeric literal.
type TSLiteralType struct {
	TSTypeBase
	Literal Expression
}

// TSTemplateLiteralType is a template whose substitutions are types.
type TSTemplateLiteralType struct {
	TSTypeBase
	Quasis []*TemplateElement
	Types  []TSType
}

// TSTypeLiteral members are the same signatures as TSInterfaceBody.
type TSTypeLiteral struct {
	TSTypeBase
	Members []Node
}

type TSPropertySignature struct {
	Base
	Key            Expression
	TypeAnnotation *TSTypeAnnotation
	Computed       bool
	Optional       bool
	Readonly       bool
}

type TSMethodSignature struct {
	Base
	Key            Expression
	MethodKind     MethodKind
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
	Computed       bool
	Optional       bool
}

type TSCallSignatureDeclaration struct {
	Base
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
}

type TSConstructSignatureDeclaration struct {
	Base
	TypeParameters *TSTypeParameterDeclaration
	Params         []Pattern
	ReturnType     *TSTypeAnnotation
}

// TSIndexSignature is `[key: K]: V`, in type literals and class bodies.
type TSIndexSignature struct {
	Base
	Parameters     []*Identifier
	TypeAnnotation *TSTypeAnnotation
	Readonly       bool
	Static         bool
}

type TSParenthesizedType struct {
	TSTypeBase
	TypeAnnotation TSType
}

// TSTypePredicate is `x is T`, `asserts x` or `asserts x is T`.
// ParameterName is an *Identifier or a *TSThisType.
type TSTypePredicate struct {
	TSTypeBase
	ParameterName  Node
	TypeAnnotation *TSTypeAnnotation
	Asserts        bool
}

// TSMappedType is `{ readonly [K in T as N]?: V }`. Readonly and Optional
// hold "", "+", "-" or "true".
type TSMappedType struct {
	TSTypeBase
	TypeParameter  *TSTypeParameter
	NameType       TSType
	TypeAnnotation TSType
	Readonly       string
	Optional       string
}
