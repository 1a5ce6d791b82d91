package ast

import "fmt"

// Kind identifies the concrete type of a node.
type Kind int

const (
	KindInvalid Kind = iota

	// プログラムと文
	KindProgram
	KindExpressionStatement
	KindBlockStatement
	KindEmptyStatement
	KindDebuggerStatement
	KindWithStatement
	KindReturnStatement
	KindLabeledStatement
	KindBreakStatement
	KindContinueStatement
	KindIfStatement
	KindSwitchStatement
	KindSwitchCase
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement

	// 宣言
	KindFunctionDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindClassDeclaration
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindAccessorProperty
	KindStaticBlock
	KindDecorator

	// モジュール
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindImportAttribute
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration

	// 式
	KindIdentifier
	KindPrivateName
	KindStringLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindThisExpression
	KindSuper
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSequenceExpression
	KindSpreadElement
	KindYieldExpression
	KindAwaitExpression
	KindMetaProperty
	KindImportExpression

	// パターン
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement

	// TypeScript
	KindTSTypeAnnotation
	KindTSTypeParameterDeclaration
	KindTSTypeParameter
	KindTSTypeParameterInstantiation
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSTypeAssertion
	KindTSNonNullExpression
	KindTSInstantiationExpression
	KindTSTypeAliasDeclaration
	KindTSInterfaceDeclaration
	KindTSInterfaceBody
	KindTSExpressionWithTypeArguments
	KindTSEnumDeclaration
	KindTSEnumMember
	KindTSDeclareFunction
	KindTSParameterProperty

	// TypeScript 型
	KindTSKeywordType
	KindTSThisType
	KindTSTypeReference
	KindTSQualifiedName
	KindTSUnionType
	KindTSIntersectionType
	KindTSConditionalType
	KindTSInferType
	KindTSFunctionType
	KindTSConstructorType
	KindTSArrayType
	KindTSTupleType
	KindTSNamedTupleMember
	KindTSOptionalType
	KindTSRestType
	KindTSIndexedAccessType
	KindTSTypeOperator
	KindTSTypeQuery
	KindTSLiteralType
	KindTSTemplateLiteralType
	KindTSTypeLiteral
	KindTSPropertySignature
	KindTSMethodSignature
	KindTSCallSignatureDeclaration
	KindTSConstructSignatureDeclaration
	KindTSIndexSignature
	KindTSParenthesizedType
	KindTSTypePredicate
	KindTSMappedType

	// JSX
	KindJSXElement
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXFragment
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXIdentifier
	KindJSXMemberExpression
	KindJSXNamespacedName
	KindJSXExpressionContainer
	KindJSXEmptyExpression
	KindJSXText
	KindJSXSpreadChild

	kindCount
)

var kindNames = [...]string{
	KindInvalid: "Invalid",

	KindProgram:             "Program",
	KindExpressionStatement: "ExpressionStatement",
	KindBlockStatement:      "BlockStatement",
	KindEmptyStatement:      "EmptyStatement",
	KindDebuggerStatement:   "DebuggerStatement",
	KindWithStatement:       "WithStatement",
	KindReturnStatement:     "ReturnStatement",
	KindLabeledStatement:    "LabeledStatement",
	KindBreakStatement:      "BreakStatement",
	KindContinueStatement:   "ContinueStatement",
	KindIfStatement:         "IfStatement",
	KindSwitchStatement:     "SwitchStatement",
	KindSwitchCase:          "SwitchCase",
	KindThrowStatement:      "ThrowStatement",
	KindTryStatement:        "TryStatement",
	KindCatchClause:         "CatchClause",
	KindWhileStatement:      "WhileStatement",
	KindDoWhileStatement:    "DoWhileStatement",
	KindForStatement:        "ForStatement",
	KindForInStatement:      "ForInStatement",
	KindForOfStatement:      "ForOfStatement",

	KindFunctionDeclaration: "FunctionDeclaration",
	KindVariableDeclaration: "VariableDeclaration",
	KindVariableDeclarator:  "VariableDeclarator",
	KindClassDeclaration:    "ClassDeclaration",
	KindClassBody:           "ClassBody",
	KindMethodDefinition:    "MethodDefinition",
	KindPropertyDefinition:  "PropertyDefinition",
	KindAccessorProperty:    "AccessorProperty",
	KindStaticBlock:         "StaticBlock",
	KindDecorator:           "Decorator",

	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindImportAttribute:          "ImportAttribute",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",

	KindIdentifier:               "Identifier",
	KindPrivateName:              "PrivateName",
	KindStringLiteral:            "StringLiteral",
	KindNumericLiteral:           "NumericLiteral",
	KindBigIntLiteral:            "BigIntLiteral",
	KindBooleanLiteral:           "BooleanLiteral",
	KindNullLiteral:              "NullLiteral",
	KindRegExpLiteral:            "RegExpLiteral",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTemplateElement:          "TemplateElement",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindThisExpression:           "ThisExpression",
	KindSuper:                    "Super",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassExpression:          "ClassExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindSpreadElement:            "SpreadElement",
	KindYieldExpression:          "YieldExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindMetaProperty:             "MetaProperty",
	KindImportExpression:         "ImportExpression",

	KindObjectPattern:     "ObjectPattern",
	KindArrayPattern:      "ArrayPattern",
	KindAssignmentPattern: "AssignmentPattern",
	KindRestElement:       "RestElement",

	KindTSTypeAnnotation:              "TSTypeAnnotation",
	KindTSTypeParameterDeclaration:    "TSTypeParameterDeclaration",
	KindTSTypeParameter:               "TSTypeParameter",
	KindTSTypeParameterInstantiation:  "TSTypeParameterInstantiation",
	KindTSAsExpression:                "TSAsExpression",
	KindTSSatisfiesExpression:         "TSSatisfiesExpression",
	KindTSTypeAssertion:               "TSTypeAssertion",
	KindTSNonNullExpression:           "TSNonNullExpression",
	KindTSInstantiationExpression:     "TSInstantiationExpression",
	KindTSTypeAliasDeclaration:        "TSTypeAliasDeclaration",
	KindTSInterfaceDeclaration:        "TSInterfaceDeclaration",
	KindTSInterfaceBody:               "TSInterfaceBody",
	KindTSExpressionWithTypeArguments: "TSExpressionWithTypeArguments",
	KindTSEnumDeclaration:             "TSEnumDeclaration",
	KindTSEnumMember:                  "TSEnumMember",
	KindTSDeclareFunction:             "TSDeclareFunction",
	KindTSParameterProperty:           "TSParameterProperty",

	KindTSKeywordType:                   "TSKeywordType",
	KindTSThisType:                      "TSThisType",
	KindTSTypeReference:                 "TSTypeReference",
	KindTSQualifiedName:                 "TSQualifiedName",
	KindTSUnionType:                     "TSUnionType",
	KindTSIntersectionType:              "TSIntersectionType",
	KindTSConditionalType:               "TSConditionalType",
	KindTSInferType:                     "TSInferType",
	KindTSFunctionType:                  "TSFunctionType",
	KindTSConstructorType:               "TSConstructorType",
	KindTSArrayType:                     "TSArrayType",
	KindTSTupleType:                     "TSTupleType",
	KindTSNamedTupleMember:              "TSNamedTupleMember",
	KindTSOptionalType:                  "TSOptionalType",
	KindTSRestType:                      "TSRestType",
	KindTSIndexedAccessType:             "TSIndexedAccessType",
	KindTSTypeOperator:                  "TSTypeOperator",
	KindTSTypeQuery:                     "TSTypeQuery",
	KindTSLiteralType:                   "TSLiteralType",
	KindTSTemplateLiteralType:           "TSTemplateLiteralType",
	KindTSTypeLiteral:                   "TSTypeLiteral",
	KindTSPropertySignature:             "TSPropertySignature",
	KindTSMethodSignature:               "TSMethodSignature",
	KindTSCallSignatureDeclaration:      "TSCallSignatureDeclaration",
	KindTSConstructSignatureDeclaration: "TSConstructSignatureDeclaration",
	KindTSIndexSignature:                "TSIndexSignature",
	KindTSParenthesizedType:             "TSParenthesizedType",
	KindTSTypePredicate:                 "TSTypePredicate",
	KindTSMappedType:                    "TSMappedType",

	KindJSXElement:             "JSXElement",
	KindJSXOpeningElement:      "JSXOpeningElement",
	KindJSXClosingElement:      "JSXClosingElement",
	KindJSXFragment:            "JSXFragment",
	KindJSXAttribute:           "JSXAttribute",
	KindJSXSpreadAttribute:     "JSXSpreadAttribute",
	KindJSXIdentifier:          "JSXIdentifier",
	KindJSXMemberExpression:    "JSXMemberExpression",
	KindJSXNamespacedName:      "JSXNamespacedName",
	KindJSXExpressionContainer: "JSXExpressionContainer",
	KindJSXEmptyExpression:     "JSXEmptyExpression",
	KindJSXText:                "JSXText",
	KindJSXSpreadChild:         "JSXSpreadChild",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindByName returns the kind with the given name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}
