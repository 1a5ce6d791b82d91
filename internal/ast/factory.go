// Constructors for every node kind. Each takes the node span followed by
// the node fields in declaration order.

package ast

import (
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

func NewProgram(span position.Span, sourceType string, hashbang string, body []Statement) *Program {
	return &Program{
		Base:       Base{Span: span},
		SourceType: sourceType,
		Hashbang:   hashbang,
		Body:       body,
	}
}

func NewExpressionStatement(span position.Span, expression Expression, directive string) *ExpressionStatement {
	return &ExpressionStatement{
		Base:       Base{Span: span},
		Expression: expression,
		Directive:  directive,
	}
}

func NewBlockStatement(span position.Span, body []Statement) *BlockStatement {
	return &BlockStatement{
		Base: Base{Span: span},
		Body: body,
	}
}

func NewEmptyStatement(span position.Span) *EmptyStatement {
	return &EmptyStatement{Base: Base{Span: span}}
}

func NewDebuggerStatement(span position.Span) *DebuggerStatement {
	return &DebuggerStatement{Base: Base{Span: span}}
}

func NewWithStatement(span position.Span, object Expression, body Statement) *WithStatement {
	return &WithStatement{
		Base:   Base{Span: span},
		Object: object,
		Body:   body,
	}
}

func NewReturnStatement(span position.Span, argument Expression) *ReturnStatement {
	return &ReturnStatement{
		Base:     Base{Span: span},
		Argument: argument,
	}
}

func NewLabeledStatement(span position.Span, label *Identifier, body Statement) *LabeledStatement {
	return &LabeledStatement{
		Base:  Base{Span: span},
		Label: label,
		Body:  body,
	}
}

func NewBreakStatement(span position.Span, label *Identifier) *BreakStatement {
	return &BreakStatement{
		Base:  Base{Span: span},
		Label: label,
	}
}

func NewContinueStatement(span position.Span, label *Identifier) *ContinueStatement {
	return &ContinueStatement{
		Base:  Base{Span: span},
		Label: label,
	}
}

func NewIfStatement(span position.Span, test Expression, consequent Statement, alternate Statement) *IfStatement {
	return &IfStatement{
		Base:       Base{Span: span},
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func NewSwitchStatement(span position.Span, discriminant Expression, cases []*SwitchCase) *SwitchStatement {
	return &SwitchStatement{
		Base:         Base{Span: span},
		Discriminant: discriminant,
		Cases:        cases,
	}
}

func NewSwitchCase(span position.Span, test Expression, consequent []Statement) *SwitchCase {
	return &SwitchCase{
		Base:       Base{Span: span},
		Test:       test,
		Consequent: consequent,
	}
}

func NewThrowStatement(span position.Span, argument Expression) *ThrowStatement {
	return &ThrowStatement{
		Base:     Base{Span: span},
		Argument: argument,
	}
}

func NewTryStatement(span position.Span, block *BlockStatement, handler *CatchClause, finalizer *BlockStatement) *TryStatement {
	return &TryStatement{
		Base:      Base{Span: span},
		Block:     block,
		Handler:   handler,
		Finalizer: finalizer,
	}
}

func NewCatchClause(span position.Span, param Pattern, body *BlockStatement) *CatchClause {
	return &CatchClause{
		Base:  Base{Span: span},
		Param: param,
		Body:  body,
	}
}

func NewWhileStatement(span position.Span, test Expression, body Statement) *WhileStatement {
	return &WhileStatement{
		Base: Base{Span: span},
		Test: test,
		Body: body,
	}
}

func NewDoWhileStatement(span position.Span, body Statement, test Expression) *DoWhileStatement {
	return &DoWhileStatement{
		Base: Base{Span: span},
		Body: body,
		Test: test,
	}
}

func NewForStatement(span position.Span, init Node, test Expression, update Expression, body Statement) *ForStatement {
	return &ForStatement{
		Base:   Base{Span: span},
		Init:   init,
		Test:   test,
		Update: update,
		Body:   body,
	}
}

func NewForInStatement(span position.Span, left Node, right Expression, body Statement) *ForInStatement {
	return &ForInStatement{
		Base:  Base{Span: span},
		Left:  left,
		Right: right,
		Body:  body,
	}
}

func NewForOfStatement(span position.Span, left Node, right Expression, body Statement, await bool) *ForOfStatement {
	return &ForOfStatement{
		Base:  Base{Span: span},
		Left:  left,
		Right: right,
		Body:  body,
		Await: await,
	}
}

func NewFunctionDeclaration(span position.Span, fn Function) *FunctionDeclaration {
	return &FunctionDeclaration{
		Base:     Base{Span: span},
		Function: fn,
	}
}

func NewVariableDeclaration(span position.Span, declKind lexer.TokenType, declarations []*VariableDeclarator, declare bool) *VariableDeclaration {
	return &VariableDeclaration{
		Base:         Base{Span: span},
		DeclKind:     declKind,
		Declarations: declarations,
		Declare:      declare,
	}
}

func NewVariableDeclarator(span position.Span, id Pattern, init Expression, definite bool) *VariableDeclarator {
	return &VariableDeclarator{
		Base:     Base{Span: span},
		ID:       id,
		Init:     init,
		Definite: definite,
	}
}

func NewClassDeclaration(span position.Span, class Class) *ClassDeclaration {
	return &ClassDeclaration{
		Base:  Base{Span: span},
		Class: class,
	}
}

func NewClassBody(span position.Span, body []ClassElement) *ClassBody {
	return &ClassBody{
		Base: Base{Span: span},
		Body: body,
	}
}

func NewMethodDefinition(span position.Span, decorators []*Decorator, key Expression, value *FunctionExpression, methodKind MethodKind, computed bool, static bool, mods Modifiers) *MethodDefinition {
	return &MethodDefinition{
		Base:       Base{Span: span},
		Decorators: decorators,
		Key:        key,
		Value:      value,
		MethodKind: methodKind,
		Computed:   computed,
		Static:     static,
		Modifiers:  mods,
	}
}

func NewPropertyDefinition(span position.Span, prop ClassProperty) *PropertyDefinition {
	return &PropertyDefinition{
		Base:          Base{Span: span},
		ClassProperty: prop,
	}
}

func NewAccessorProperty(span position.Span, prop ClassProperty) *AccessorProperty {
	return &AccessorProperty{
		Base:          Base{Span: span},
		ClassProperty: prop,
	}
}

func NewStaticBlock(span position.Span, body []Statement) *StaticBlock {
	return &StaticBlock{
		Base: Base{Span: span},
		Body: body,
	}
}

func NewDecorator(span position.Span, expression Expression) *Decorator {
	return &Decorator{
		Base:       Base{Span: span},
		Expression: expression,
	}
}

func NewImportDeclaration(span position.Span, specifiers []Node, source *StringLiteral, attributes []*ImportAttribute, typeOnly bool) *ImportDeclaration {
	return &ImportDeclaration{
		Base:       Base{Span: span},
		Specifiers: specifiers,
		Source:     source,
		Attributes: attributes,
		TypeOnly:   typeOnly,
	}
}

func NewImportSpecifier(span position.Span, imported Node, local *Identifier, typeOnly bool) *ImportSpecifier {
	return &ImportSpecifier{
		Base:     Base{Span: span},
		Imported: imported,
		Local:    local,
		TypeOnly: typeOnly,
	}
}

func NewImportDefaultSpecifier(span position.Span, local *Identifier) *ImportDefaultSpecifier {
	return &ImportDefaultSpecifier{
		Base:  Base{Span: span},
		Local: local,
	}
}

func NewImportNamespaceSpecifier(span position.Span, local *Identifier) *ImportNamespaceSpecifier {
	return &ImportNamespaceSpecifier{
		Base:  Base{Span: span},
		Local: local,
	}
}

func NewImportAttribute(span position.Span, key Node, value *StringLiteral) *ImportAttribute {
	return &ImportAttribute{
		Base:  Base{Span: span},
		Key:   key,
		Value: value,
	}
}

func NewExportNamedDeclaration(span position.Span, declaration Statement, specifiers []*ExportSpecifier, source *StringLiteral, attributes []*ImportAttribute, typeOnly bool) *ExportNamedDeclaration {
	return &ExportNamedDeclaration{
		Base:        Base{Span: span},
		Declaration: declaration,
		Specifiers:  specifiers,
		Source:      source,
		Attributes:  attributes,
		TypeOnly:    typeOnly,
	}
}

func NewExportSpecifier(span position.Span, local Node, exported Node, typeOnly bool) *ExportSpecifier {
	return &ExportSpecifier{
		Base:     Base{Span: span},
		Local:    local,
		Exported: exported,
		TypeOnly: typeOnly,
	}
}

func NewExportDefaultDeclaration(span position.Span, declaration Node) *ExportDefaultDeclaration {
	return &ExportDefaultDeclaration{
		Base:        Base{Span: span},
		Declaration: declaration,
	}
}

func NewExportAllDeclaration(span position.Span, exported Node, source *StringLiteral, attributes []*ImportAttribute, typeOnly bool) *ExportAllDeclaration {
	return &ExportAllDeclaration{
		Base:       Base{Span: span},
		Exported:   exported,
		Source:     source,
		Attributes: attributes,
		TypeOnly:   typeOnly,
	}
}

func NewIdentifier(span position.Span, name string, typeAnnotation *TSTypeAnnotation, optional bool) *Identifier {
	return &Identifier{
		ExprBase:       ExprBase{Base: Base{Span: span}},
		Name:           name,
		TypeAnnotation: typeAnnotation,
		Optional:       optional,
	}
}

func NewPrivateName(span position.Span, name string) *PrivateName {
	return &PrivateName{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Name:     name,
	}
}

func NewStringLiteral(span position.Span, value string, raw string) *StringLiteral {
	return &StringLiteral{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Value:    value,
		Raw:      raw,
	}
}

func NewNumericLiteral(span position.Span, value float64, raw string, numberKind lexer.TokenType) *NumericLiteral {
	return &NumericLiteral{
		ExprBase:   ExprBase{Base: Base{Span: span}},
		Value:      value,
		Raw:        raw,
		NumberKind: numberKind,
	}
}

func NewBigIntLiteral(span position.Span, value string, raw string) *BigIntLiteral {
	return &BigIntLiteral{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Value:    value,
		Raw:      raw,
	}
}

func NewBooleanLiteral(span position.Span, value bool) *BooleanLiteral {
	return &BooleanLiteral{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Value:    value,
	}
}

func NewNullLiteral(span position.Span) *NullLiteral {
	return &NullLiteral{ExprBase: ExprBase{Base: Base{Span: span}}}
}

func NewRegExpLiteral(span position.Span, pattern string, flags string) *RegExpLiteral {
	return &RegExpLiteral{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Pattern:  pattern,
		Flags:    flags,
	}
}

func NewTemplateLiteral(span position.Span, quasis []*TemplateElement, expressions []Expression) *TemplateLiteral {
	return &TemplateLiteral{
		ExprBase:    ExprBase{Base: Base{Span: span}},
		Quasis:      quasis,
		Expressions: expressions,
	}
}

func NewTemplateElement(span position.Span, raw string, cooked string, invalid bool, tail bool) *TemplateElement {
	return &TemplateElement{
		Base:    Base{Span: span},
		Raw:     raw,
		Cooked:  cooked,
		Invalid: invalid,
		Tail:    tail,
	}
}

func NewTaggedTemplateExpression(span position.Span, tag Expression, typeArguments *TSTypeParameterInstantiation, quasi *TemplateLiteral) *TaggedTemplateExpression {
	return &TaggedTemplateExpression{
		ExprBase:      ExprBase{Base: Base{Span: span}},
		Tag:           tag,
		TypeArguments: typeArguments,
		Quasi:         quasi,
	}
}

func NewThisExpression(span position.Span) *ThisExpression {
	return &ThisExpression{ExprBase: ExprBase{Base: Base{Span: span}}}
}

func NewSuper(span position.Span) *Super {
	return &Super{ExprBase: ExprBase{Base: Base{Span: span}}}
}

func NewArrayExpression(span position.Span, elements []Expression) *ArrayExpression {
	return &ArrayExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Elements: elements,
	}
}

func NewObjectExpression(span position.Span, properties []Node) *ObjectExpression {
	return &ObjectExpression{
		ExprBase:   ExprBase{Base: Base{Span: span}},
		Properties: properties,
	}
}

func NewProperty(span position.Span, key Expression, value Node, propKind PropertyKind, method bool, shorthand bool, computed bool) *Property {
	return &Property{
		Base:      Base{Span: span},
		Key:       key,
		Value:     value,
		PropKind:  propKind,
		Method:    method,
		Shorthand: shorthand,
		Computed:  computed,
	}
}

func NewFunctionExpression(span position.Span, fn Function) *FunctionExpression {
	return &FunctionExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Function: fn,
	}
}

func NewArrowFunctionExpression(span position.Span, typeParameters *TSTypeParameterDeclaration, params []Pattern, returnType *TSTypeAnnotation, body Node, async bool, concise bool) *ArrowFunctionExpression {
	return &ArrowFunctionExpression{
		ExprBase:       ExprBase{Base: Base{Span: span}},
		TypeParameters: typeParameters,
		Params:         params,
		ReturnType:     returnType,
		Body:           body,
		Async:          async,
		Concise:        concise,
	}
}

func NewClassExpression(span position.Span, class Class) *ClassExpression {
	return &ClassExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Class:    class,
	}
}

func NewUnaryExpression(span position.Span, operator lexer.TokenType, argument Expression) *UnaryExpression {
	return &UnaryExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Operator: operator,
		Argument: argument,
	}
}

func NewUpdateExpression(span position.Span, operator lexer.TokenType, prefix bool, argument Expression) *UpdateExpression {
	return &UpdateExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Operator: operator,
		Prefix:   prefix,
		Argument: argument,
	}
}

func NewBinaryExpression(span position.Span, operator lexer.TokenType, left Expression, right Expression) *BinaryExpression {
	return &BinaryExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

func NewLogicalExpression(span position.Span, operator lexer.TokenType, left Expression, right Expression) *LogicalExpression {
	return &LogicalExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

func NewAssignmentExpression(span position.Span, operator lexer.TokenType, left Pattern, right Expression) *AssignmentExpression {
	return &AssignmentExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

func NewConditionalExpression(span position.Span, test Expression, consequent Expression, alternate Expression) *ConditionalExpression {
	return &ConditionalExpression{
		ExprBase:   ExprBase{Base: Base{Span: span}},
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func NewCallExpression(span position.Span, callee Expression, arguments []Expression, typeArguments *TSTypeParameterInstantiation, optional bool) *CallExpression {
	return &CallExpression{
		ExprBase:      ExprBase{Base: Base{Span: span}},
		Callee:        callee,
		Arguments:     arguments,
		TypeArguments: typeArguments,
		Optional:      optional,
	}
}

func NewNewExpression(span position.Span, callee Expression, arguments []Expression, typeArguments *TSTypeParameterInstantiation) *NewExpression {
	return &NewExpression{
		ExprBase:      ExprBase{Base: Base{Span: span}},
		Callee:        callee,
		Arguments:     arguments,
		TypeArguments: typeArguments,
	}
}

func NewMemberExpression(span position.Span, object Expression, property Expression, computed bool, optional bool) *MemberExpression {
	return &MemberExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Object:   object,
		Property: property,
		Computed: computed,
		Optional: optional,
	}
}

func NewSequenceExpression(span position.Span, expressions []Expression) *SequenceExpression {
	return &SequenceExpression{
		ExprBase:    ExprBase{Base: Base{Span: span}},
		Expressions: expressions,
	}
}

func NewSpreadElement(span position.Span, argument Expression) *SpreadElement {
	return &SpreadElement{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Argument: argument,
	}
}

func NewYieldExpression(span position.Span, argument Expression, delegate bool) *YieldExpression {
	return &YieldExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Argument: argument,
		Delegate: delegate,
	}
}

func NewAwaitExpression(span position.Span, argument Expression) *AwaitExpression {
	return &AwaitExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Argument: argument,
	}
}

func NewMetaProperty(span position.Span, meta *Identifier, property *Identifier) *MetaProperty {
	return &MetaProperty{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Meta:     meta,
		Property: property,
	}
}

func NewImportExpression(span position.Span, source Expression, options Expression) *ImportExpression {
	return &ImportExpression{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Source:   source,
		Options:  options,
	}
}

func NewObjectPattern(span position.Span, properties []Node, typeAnnotation *TSTypeAnnotation) *ObjectPattern {
	return &ObjectPattern{
		Base:           Base{Span: span},
		Properties:     properties,
		TypeAnnotation: typeAnnotation,
	}
}

func NewArrayPattern(span position.Span, elements []Pattern, typeAnnotation *TSTypeAnnotation) *ArrayPattern {
	return &ArrayPattern{
		Base:           Base{Span: span},
		Elements:       elements,
		TypeAnnotation: typeAnnotation,
	}
}

func NewAssignmentPattern(span position.Span, left Pattern, right Expression) *AssignmentPattern {
	return &AssignmentPattern{
		Base:  Base{Span: span},
		Left:  left,
		Right: right,
	}
}

func NewRestElement(span position.Span, argument Pattern, typeAnnotation *TSTypeAnnotation) *RestElement {
	return &RestElement{
		Base:           Base{Span: span},
		Argument:       argument,
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSTypeAnnotation(span position.Span, typeAnnotation TSType) *TSTypeAnnotation {
	return &TSTypeAnnotation{
		Base:           Base{Span: span},
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSTypeParameterDeclaration(span position.Span, params []*TSTypeParameter) *TSTypeParameterDeclaration {
	return &TSTypeParameterDeclaration{
		Base:   Base{Span: span},
		Params: params,
	}
}

func NewTSTypeParameter(span position.Span, name string, constraint TSType, def TSType, in bool, out bool, isConst bool) *TSTypeParameter {
	return &TSTypeParameter{
		Base:       Base{Span: span},
		Name:       name,
		Constraint: constraint,
		Default:    def,
		In:         in,
		Out:        out,
		Const:      isConst,
	}
}

func NewTSTypeParameterInstantiation(span position.Span, params []TSType) *TSTypeParameterInstantiation {
	return &TSTypeParameterInstantiation{
		Base:   Base{Span: span},
		Params: params,
	}
}

func NewTSAsExpression(span position.Span, expression Expression, typeAnnotation TSType) *TSAsExpression {
	return &TSAsExpression{
		ExprBase:       ExprBase{Base: Base{Span: span}},
		Expression:     expression,
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSSatisfiesExpression(span position.Span, expression Expression, typeAnnotation TSType) *TSSatisfiesExpression {
	return &TSSatisfiesExpression{
		ExprBase:       ExprBase{Base: Base{Span: span}},
		Expression:     expression,
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSTypeAssertion(span position.Span, typeAnnotation TSType, expression Expression) *TSTypeAssertion {
	return &TSTypeAssertion{
		ExprBase:       ExprBase{Base: Base{Span: span}},
		TypeAnnotation: typeAnnotation,
		Expression:     expression,
	}
}

func NewTSNonNullExpression(span position.Span, expression Expression) *TSNonNullExpression {
	return &TSNonNullExpression{
		ExprBase:   ExprBase{Base: Base{Span: span}},
		Expression: expression,
	}
}

func NewTSInstantiationExpression(span position.Span, expression Expression, typeArguments *TSTypeParameterInstantiation) *TSInstantiationExpression {
	return &TSInstantiationExpression{
		ExprBase:      ExprBase{Base: Base{Span: span}},
		Expression:    expression,
		TypeArguments: typeArguments,
	}
}

func NewTSTypeAliasDeclaration(span position.Span, id *Identifier, typeParameters *TSTypeParameterDeclaration, typeAnnotation TSType, declare bool) *TSTypeAliasDeclaration {
	return &TSTypeAliasDeclaration{
		Base:           Base{Span: span},
		ID:             id,
		TypeParameters: typeParameters,
		TypeAnnotation: typeAnnotation,
		Declare:        declare,
	}
}

func NewTSInterfaceDeclaration(span position.Span, id *Identifier, typeParameters *TSTypeParameterDeclaration, extends []*TSExpressionWithTypeArguments, body *TSInterfaceBody, declare bool) *TSInterfaceDeclaration {
	return &TSInterfaceDeclaration{
		Base:           Base{Span: span},
		ID:             id,
		TypeParameters: typeParameters,
		Extends:        extends,
		Body:           body,
		Declare:        declare,
	}
}

func NewTSInterfaceBody(span position.Span, body []Node) *TSInterfaceBody {
	return &TSInterfaceBody{
		Base: Base{Span: span},
		Body: body,
	}
}

func NewTSExpressionWithTypeArguments(span position.Span, expression Node, typeArguments *TSTypeParameterInstantiation) *TSExpressionWithTypeArguments {
	return &TSExpressionWithTypeArguments{
		Base:          Base{Span: span},
		Expression:    expression,
		TypeArguments: typeArguments,
	}
}

func NewTSEnumDeclaration(span position.Span, id *Identifier, members []*TSEnumMember, isConst bool, declare bool) *TSEnumDeclaration {
	return &TSEnumDeclaration{
		Base:    Base{Span: span},
		ID:      id,
		Members: members,
		Const:   isConst,
		Declare: declare,
	}
}

func NewTSEnumMember(span position.Span, id Node, initializer Expression) *TSEnumMember {
	return &TSEnumMember{
		Base:        Base{Span: span},
		ID:          id,
		Initializer: initializer,
	}
}

func NewTSDeclareFunction(span position.Span, fn Function, declare bool) *TSDeclareFunction {
	return &TSDeclareFunction{
		Base:     Base{Span: span},
		Function: fn,
		Declare:  declare,
	}
}

func NewTSParameterProperty(span position.Span, accessibility string, readonly bool, override bool, parameter Pattern) *TSParameterProperty {
	return &TSParameterProperty{
		Base:          Base{Span: span},
		Accessibility: accessibility,
		Readonly:      readonly,
		Override:      override,
		Parameter:     parameter,
	}
}

func NewTSKeywordType(span position.Span, name string) *TSKeywordType {
	return &TSKeywordType{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		Name:       name,
	}
}

func NewTSThisType(span position.Span) *TSThisType {
	return &TSThisType{TSTypeBase: TSTypeBase{Base{Span: span}}}
}

func NewTSTypeReference(span position.Span, typeName Node, typeArguments *TSTypeParameterInstantiation) *TSTypeReference {
	return &TSTypeReference{
		TSTypeBase:    TSTypeBase{Base{Span: span}},
		TypeName:      typeName,
		TypeArguments: typeArguments,
	}
}

func NewTSQualifiedName(span position.Span, left Node, right *Identifier) *TSQualifiedName {
	return &TSQualifiedName{
		Base:  Base{Span: span},
		Left:  left,
		Right: right,
	}
}

func NewTSUnionType(span position.Span, types []TSType) *TSUnionType {
	return &TSUnionType{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		Types:      types,
	}
}

func NewTSIntersectionType(span position.Span, types []TSType) *TSIntersectionType {
	return &TSIntersectionType{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		Types:      types,
	}
}

func NewTSConditionalType(span position.Span, checkType TSType, extendsType TSType, trueType TSType, falseType TSType) *TSConditionalType {
	return &TSConditionalType{
		TSTypeBase:  TSTypeBase{Base{Span: span}},
		CheckType:   checkType,
		ExtendsType: extendsType,
		TrueType:    trueType,
		FalseType:   falseType,
	}
}

func NewTSInferType(span position.Span, typeParameter *TSTypeParameter) *TSInferType {
	return &TSInferType{
		TSTypeBase:    TSTypeBase{Base{Span: span}},
		TypeParameter: typeParameter,
	}
}

func NewTSFunctionType(span position.Span, typeParameters *TSTypeParameterDeclaration, params []Pattern, returnType *TSTypeAnnotation) *TSFunctionType {
	return &TSFunctionType{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		TypeParameters: typeParameters,
		Params:         params,
		ReturnType:     returnType,
	}
}

func NewTSConstructorType(span position.Span, typeParameters *TSTypeParameterDeclaration, params []Pattern, returnType *TSTypeAnnotation, abstract bool) *TSConstructorType {
	return &TSConstructorType{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		TypeParameters: typeParameters,
		Params:         params,
		ReturnType:     returnType,
		Abstract:       abstract,
	}
}

func NewTSArrayType(span position.Span, elementType TSType) *TSArrayType {
	return &TSArrayType{
		TSTypeBase:  TSTypeBase{Base{Span: span}},
		ElementType: elementType,
	}
}

func NewTSTupleType(span position.Span, elementTypes []TSType) *TSTupleType {
	return &TSTupleType{
		TSTypeBase:   TSTypeBase{Base{Span: span}},
		ElementTypes: elementTypes,
	}
}

func NewTSNamedTupleMember(span position.Span, label *Identifier, elementType TSType, optional bool) *TSNamedTupleMember {
	return &TSNamedTupleMember{
		TSTypeBase:  TSTypeBase{Base{Span: span}},
		Label:       label,
		ElementType: elementType,
		Optional:    optional,
	}
}

func NewTSOptionalType(span position.Span, typeAnnotation TSType) *TSOptionalType {
	return &TSOptionalType{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSRestType(span position.Span, typeAnnotation TSType) *TSRestType {
	return &TSRestType{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSIndexedAccessType(span position.Span, objectType TSType, indexType TSType) *TSIndexedAccessType {
	return &TSIndexedAccessType{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		ObjectType: objectType,
		IndexType:  indexType,
	}
}

func NewTSTypeOperator(span position.Span, operator string, typeAnnotation TSType) *TSTypeOperator {
	return &TSTypeOperator{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		Operator:       operator,
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSTypeQuery(span position.Span, exprName Node, typeArguments *TSTypeParameterInstantiation) *TSTypeQuery {
	return &TSTypeQuery{
		TSTypeBase:    TSTypeBase{Base{Span: span}},
		ExprName:      exprName,
		TypeArguments: typeArguments,
	}
}

func NewTSLiteralType(span position.Span, literal Expression) *TSLiteralType {
	return &TSLiteralType{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		Literal:    literal,
	}
}

func NewTSTemplateLiteralType(span position.Span, quasis []*TemplateElement, types []TSType) *TSTemplateLiteralType {
	return &TSTemplateLiteralType{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		Quasis:     quasis,
		Types:      types,
	}
}

func NewTSTypeLiteral(span position.Span, members []Node) *TSTypeLiteral {
	return &TSTypeLiteral{
		TSTypeBase: TSTypeBase{Base{Span: span}},
		Members:    members,
	}
}

func NewTSPropertySignature(span position.Span, key Expression, typeAnnotation *TSTypeAnnotation, computed bool, optional bool, readonly bool) *TSPropertySignature {
	return &TSPropertySignature{
		Base:           Base{Span: span},
		Key:            key,
		TypeAnnotation: typeAnnotation,
		Computed:       computed,
		Optional:       optional,
		Readonly:       readonly,
	}
}

func NewTSMethodSignature(span position.Span, key Expression, methodKind MethodKind, typeParameters *TSTypeParameterDeclaration, params []Pattern, returnType *TSTypeAnnotation, computed bool, optional bool) *TSMethodSignature {
	return &TSMethodSignature{
		Base:           Base{Span: span},
		Key:            key,
		MethodKind:     methodKind,
		TypeParameters: typeParameters,
		Params:         params,
		ReturnType:     returnType,
		Computed:       computed,
		Optional:       optional,
	}
}

func NewTSCallSignatureDeclaration(span position.Span, typeParameters *TSTypeParameterDeclaration, params []Pattern, returnType *TSTypeAnnotation) *TSCallSignatureDeclaration {
	return &TSCallSignatureDeclaration{
		Base:           Base{Span: span},
		TypeParameters: typeParameters,
		Params:         params,
		ReturnType:     returnType,
	}
}

func NewTSConstructSignatureDeclaration(span position.Span, typeParameters *TSTypeParameterDeclaration, params []Pattern, returnType *TSTypeAnnotation) *TSConstructSignatureDeclaration {
	return &TSConstructSignatureDeclaration{
		Base:           Base{Span: span},
		TypeParameters: typeParameters,
		Params:         params,
		ReturnType:     returnType,
	}
}

func NewTSIndexSignature(span position.Span, parameters []*Identifier, typeAnnotation *TSTypeAnnotation, readonly bool, static bool) *TSIndexSignature {
	return &TSIndexSignature{
		Base:           Base{Span: span},
		Parameters:     parameters,
		TypeAnnotation: typeAnnotation,
		Readonly:       readonly,
		Static:         static,
	}
}

func NewTSParenthesizedType(span position.Span, typeAnnotation TSType) *TSParenthesizedType {
	return &TSParenthesizedType{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		TypeAnnotation: typeAnnotation,
	}
}

func NewTSTypePredicate(span position.Span, parameterName Node, typeAnnotation *TSTypeAnnotation, asserts bool) *TSTypePredicate {
	return &TSTypePredicate{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		ParameterName:  parameterName,
		TypeAnnotation: typeAnnotation,
		Asserts:        asserts,
	}
}

func NewTSMappedType(span position.Span, typeParameter *TSTypeParameter, nameType TSType, typeAnnotation TSType, readonly string, optional string) *TSMappedType {
	return &TSMappedType{
		TSTypeBase:     TSTypeBase{Base{Span: span}},
		TypeParameter:  typeParameter,
		NameType:       nameType,
		TypeAnnotation: typeAnnotation,
		Readonly:       readonly,
		Optional:       optional,
	}
}

func NewJSXElement(span position.Span, openingElement *JSXOpeningElement, children []Node, closingElement *JSXClosingElement) *JSXElement {
	return &JSXElement{
		ExprBase:       ExprBase{Base: Base{Span: span}},
		OpeningElement: openingElement,
		Children:       children,
		ClosingElement: closingElement,
	}
}

func NewJSXOpeningElement(span position.Span, name Node, attributes []Node, typeArguments *TSTypeParameterInstantiation, selfClosing bool) *JSXOpeningElement {
	return &JSXOpeningElement{
		Base:          Base{Span: span},
		Name:          name,
		Attributes:    attributes,
		TypeArguments: typeArguments,
		SelfClosing:   selfClosing,
	}
}

func NewJSXClosingElement(span position.Span, name Node) *JSXClosingElement {
	return &JSXClosingElement{
		Base: Base{Span: span},
		Name: name,
	}
}

func NewJSXFragment(span position.Span, children []Node) *JSXFragment {
	return &JSXFragment{
		ExprBase: ExprBase{Base: Base{Span: span}},
		Children: children,
	}
}

func NewJSXAttribute(span position.Span, name Node, value Node) *JSXAttribute {
	return &JSXAttribute{
		Base:  Base{Span: span},
		Name:  name,
		Value: value,
	}
}

func NewJSXSpreadAttribute(span position.Span, argument Expression) *JSXSpreadAttribute {
	return &JSXSpreadAttribute{
		Base:     Base{Span: span},
		Argument: argument,
	}
}

func NewJSXIdentifier(span position.Span, name string) *JSXIdentifier {
	return &JSXIdentifier{
		Base: Base{Span: span},
		Name: name,
	}
}

func NewJSXMemberExpression(span position.Span, object Node, property *JSXIdentifier) *JSXMemberExpression {
	return &JSXMemberExpression{
		Base:     Base{Span: span},
		Object:   object,
		Property: property,
	}
}

func NewJSXNamespacedName(span position.Span, namespace *JSXIdentifier, name *JSXIdentifier) *JSXNamespacedName {
	return &JSXNamespacedName{
		Base:      Base{Span: span},
		Namespace: namespace,
		Name:      name,
	}
}

func NewJSXExpressionContainer(span position.Span, expression Expression) *JSXExpressionContainer {
	return &JSXExpressionContainer{
		Base:       Base{Span: span},
		Expression: expression,
	}
}

func NewJSXEmptyExpression(span position.Span) *JSXEmptyExpression {
	return &JSXEmptyExpression{ExprBase: ExprBase{Base: Base{Span: span}}}
}

func NewJSXText(span position.Span, value string, raw string) *JSXText {
	return &JSXText{
		Base:  Base{Span: span},
		Value: value,
		Raw:   raw,
	}
}

func NewJSXSpreadChild(span position.Span, expression Expression) *JSXSpreadChild {
	return &JSXSpreadChild{
		Base:       Base{Span: span},
		Expression: expression,
	}
}
