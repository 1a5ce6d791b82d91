package ast

// Kind implementations

func (*Program) Kind() Kind                         { return KindProgram }
func (*ExpressionStatement) Kind() Kind             { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind                  { return KindBlockStatement }
func (*EmptyStatement) Kind() Kind                  { return KindEmptyStatement }
func (*DebuggerStatement) Kind() Kind               { return KindDebuggerStatement }
func (*WithStatement) Kind() Kind                   { return KindWithStatement }
func (*ReturnStatement) Kind() Kind                 { return KindReturnStatement }
func (*LabeledStatement) Kind() Kind                { return KindLabeledStatement }
func (*BreakStatement) Kind() Kind                  { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind               { return KindContinueStatement }
func (*IfStatement) Kind() Kind                     { return KindIfStatement }
func (*SwitchStatement) Kind() Kind                 { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind                      { return KindSwitchCase }
func (*ThrowStatement) Kind() Kind                  { return KindThrowStatement }
func (*TryStatement) Kind() Kind                    { return KindTryStatement }
func (*CatchClause) Kind() Kind                     { return KindCatchClause }
func (*WhileStatement) Kind() Kind                  { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind                { return KindDoWhileStatement }
func (*ForStatement) Kind() Kind                    { return KindForStatement }
func (*ForInStatement) Kind() Kind                  { return KindForInStatement }
func (*ForOfStatement) Kind() Kind                  { return KindForOfStatement }
func (*FunctionDeclaration) Kind() Kind             { return KindFunctionDeclaration }
func (*VariableDeclaration) Kind() Kind             { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind              { return KindVariableDeclarator }
func (*ClassDeclaration) Kind() Kind                { return KindClassDeclaration }
func (*ClassBody) Kind() Kind                       { return KindClassBody }
func (*MethodDefinition) Kind() Kind                { return KindMethodDefinition }
func (*PropertyDefinition) Kind() Kind              { return KindPropertyDefinition }
func (*AccessorProperty) Kind() Kind                { return KindAccessorProperty }
func (*StaticBlock) Kind() Kind                     { return KindStaticBlock }
func (*Decorator) Kind() Kind                       { return KindDecorator }
func (*ImportDeclaration) Kind() Kind               { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind                 { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind          { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind        { return KindImportNamespaceSpecifier }
func (*ImportAttribute) Kind() Kind                 { return KindImportAttribute }
func (*ExportNamedDeclaration) Kind() Kind          { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind                 { return KindExportSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind        { return KindExportDefaultDeclaration }
func (*ExportAllDeclaration) Kind() Kind            { return KindExportAllDeclaration }
func (*Identifier) Kind() Kind                      { return KindIdentifier }
func (*PrivateName) Kind() Kind                     { return KindPrivateName }
func (*StringLiteral) Kind() Kind                   { return KindStringLiteral }
func (*NumericLiteral) Kind() Kind                  { return KindNumericLiteral }
func (*BigIntLiteral) Kind() Kind                   { return KindBigIntLiteral }
func (*BooleanLiteral) Kind() Kind                  { return KindBooleanLiteral }
func (*NullLiteral) Kind() Kind                     { return KindNullLiteral }
func (*RegExpLiteral) Kind() Kind                   { return KindRegExpLiteral }
func (*TemplateLiteral) Kind() Kind                 { return KindTemplateLiteral }
func (*TemplateElement) Kind() Kind                 { return KindTemplateElement }
func (*TaggedTemplateExpression) Kind() Kind        { return KindTaggedTemplateExpression }
func (*ThisExpression) Kind() Kind                  { return KindThisExpression }
func (*Super) Kind() Kind                           { return KindSuper }
func (*ArrayExpression) Kind() Kind                 { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind                { return KindObjectExpression }
func (*Property) Kind() Kind                        { return KindProperty }
func (*FunctionExpression) Kind() Kind              { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind         { return KindArrowFunctionExpression }
func (*ClassExpression) Kind() Kind                 { return KindClassExpression }
func (*UnaryExpression) Kind() Kind                 { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind                { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind                { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind               { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind            { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind           { return KindConditionalExpression }
func (*CallExpression) Kind() Kind                  { return KindCallExpression }
func (*NewExpression) Kind() Kind                   { return KindNewExpression }
func (*MemberExpression) Kind() Kind                { return KindMemberExpression }
func (*SequenceExpression) Kind() Kind              { return KindSequenceExpression }
func (*SpreadElement) Kind() Kind                   { return KindSpreadElement }
func (*YieldExpression) Kind() Kind                 { return KindYieldExpression }
func (*AwaitExpression) Kind() Kind                 { return KindAwaitExpression }
func (*MetaProperty) Kind() Kind                    { return KindMetaProperty }
func (*ImportExpression) Kind() Kind                { return KindImportExpression }
func (*ObjectPattern) Kind() Kind                   { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind                    { return KindArrayPattern }
func (*AssignmentPattern) Kind() Kind               { return KindAssignmentPattern }
func (*RestElement) Kind() Kind                     { return KindRestElement }
func (*TSTypeAnnotation) Kind() Kind                { return KindTSTypeAnnotation }
func (*TSTypeParameterDeclaration) Kind() Kind      { return KindTSTypeParameterDeclaration }
func (*TSTypeParameter) Kind() Kind                 { return KindTSTypeParameter }
func (*TSTypeParameterInstantiation) Kind() Kind    { return KindTSTypeParameterInstantiation }
func (*TSAsExpression) Kind() Kind                  { return KindTSAsExpression }
func (*TSSatisfiesExpression) Kind() Kind           { return KindTSSatisfiesExpression }
func (*TSTypeAssertion) Kind() Kind                 { return KindTSTypeAssertion }
func (*TSNonNullExpression) Kind() Kind             { return KindTSNonNullExpression }
func (*TSInstantiationExpression) Kind() Kind       { return KindTSInstantiationExpression }
func (*TSTypeAliasDeclaration) Kind() Kind          { return KindTSTypeAliasDeclaration }
func (*TSInterfaceDeclaration) Kind() Kind          { return KindTSInterfaceDeclaration }
func (*TSInterfaceBody) Kind() Kind                 { return KindTSInterfaceBody }
func (*TSExpressionWithTypeArguments) Kind() Kind   { return KindTSExpressionWithTypeArguments }
func (*TSEnumDeclaration) Kind() Kind               { return KindTSEnumDeclaration }
func (*TSEnumMember) Kind() Kind                    { return KindTSEnumMember }
func (*TSDeclareFunction) Kind() Kind               { return KindTSDeclareFunction }
func (*TSParameterProperty) Kind() Kind             { return KindTSParameterProperty }
func (*TSKeywordType) Kind() Kind                   { return KindTSKeywordType }
func (*TSThisType) Kind() Kind                      { return KindTSThisType }
func (*TSTypeReference) Kind() Kind                 { return KindTSTypeReference }
func (*TSQualifiedName) Kind() Kind                 { return KindTSQualifiedName }
func (*TSUnionType) Kind() Kind                     { return KindTSUnionType }
func (*TSIntersectionType) Kind() Kind              { return KindTSIntersectionType }
func (*TSConditionalType) Kind() Kind               { return KindTSConditionalType }
func (*TSInferType) Kind() Kind                     { return KindTSInferType }
func (*TSFunctionType) Kind() Kind                  { return KindTSFunctionType }
func (*TSConstructorType) Kind() Kind               { return KindTSConstructorType }
func (*TSArrayType) Kind() Kind                     { return KindTSArrayType }
func (*TSTupleType) Kind() Kind                     { return KindTSTupleType }
func (*TSNamedTupleMember) Kind() Kind              { return KindTSNamedTupleMember }
func (*TSOptionalType) Kind() Kind                  { return KindTSOptionalType }
func (*TSRestType) Kind() Kind                      { return KindTSRestType }
func (*TSIndexedAccessType) Kind() Kind             { return KindTSIndexedAccessType }
func (*TSTypeOperator) Kind() Kind                  { return KindTSTypeOperator }
func (*TSTypeQuery) Kind() Kind                     { return KindTSTypeQuery }
func (*TSLiteralType) Kind() Kind                   { return KindTSLiteralType }
func (*TSTemplateLiteralType) Kind() Kind           { return KindTSTemplateLiteralType }
func (*TSTypeLiteral) Kind() Kind                   { return KindTSTypeLiteral }
func (*TSPropertySignature) Kind() Kind             { return KindTSPropertySignature }
func (*TSMethodSignature) Kind() Kind               { return KindTSMethodSignature }
func (*TSCallSignatureDeclaration) Kind() Kind      { return KindTSCallSignatureDeclaration }
func (*TSConstructSignatureDeclaration) Kind() Kind { return KindTSConstructSignatureDeclaration }
func (*TSIndexSignature) Kind() Kind                { return KindTSIndexSignature }
func (*TSParenthesizedType) Kind() Kind             { return KindTSParenthesizedType }
func (*TSTypePredicate) Kind() Kind                 { return KindTSTypePredicate }
func (*TSMappedType) Kind() Kind                    { return KindTSMappedType }
func (*JSXElement) Kind() Kind                      { return KindJSXElement }
func (*JSXOpeningElement) Kind() Kind               { return KindJSXOpeningElement }
func (*JSXClosingElement) Kind() Kind               { return KindJSXClosingElement }
func (*JSXFragment) Kind() Kind                     { return KindJSXFragment }
func (*JSXAttribute) Kind() Kind                    { return KindJSXAttribute }
func (*JSXSpreadAttribute) Kind() Kind              { return KindJSXSpreadAttribute }
func (*JSXIdentifier) Kind() Kind                   { return KindJSXIdentifier }
func (*JSXMemberExpression) Kind() Kind             { return KindJSXMemberExpression }
func (*JSXNamespacedName) Kind() Kind               { return KindJSXNamespacedName }
func (*JSXExpressionContainer) Kind() Kind          { return KindJSXExpressionContainer }
func (*JSXEmptyExpression) Kind() Kind              { return KindJSXEmptyExpression }
func (*JSXText) Kind() Kind                         { return KindJSXText }
func (*JSXSpreadChild) Kind() Kind                  { return KindJSXSpreadChild }

// statements
func (*ExpressionStatement) statementNode()      {}
func (*BlockStatement) statementNode()           {}
func (*EmptyStatement) statementNode()           {}
func (*DebuggerStatement) statementNode()        {}
func (*WithStatement) statementNode()            {}
func (*ReturnStatement) statementNode()          {}
func (*LabeledStatement) statementNode()         {}
func (*BreakStatement) statementNode()           {}
func (*ContinueStatement) statementNode()        {}
func (*IfStatement) statementNode()              {}
func (*SwitchStatement) statementNode()          {}
func (*ThrowStatement) statementNode()           {}
func (*TryStatement) statementNode()             {}
func (*WhileStatement) statementNode()           {}
func (*DoWhileStatement) statementNode()         {}
func (*ForStatement) statementNode()             {}
func (*ForInStatement) statementNode()           {}
func (*ForOfStatement) statementNode()           {}
func (*FunctionDeclaration) statementNode()      {}
func (*VariableDeclaration) statementNode()      {}
func (*ClassDeclaration) statementNode()         {}
func (*ImportDeclaration) statementNode()        {}
func (*ExportNamedDeclaration) statementNode()   {}
func (*ExportDefaultDeclaration) statementNode() {}
func (*ExportAllDeclaration) statementNode()     {}
func (*TSTypeAliasDeclaration) statementNode()   {}
func (*TSInterfaceDeclaration) statementNode()   {}
func (*TSEnumDeclaration) statementNode()        {}
func (*TSDeclareFunction) statementNode()        {}

// declarations
func (*FunctionDeclaration) declarationNode()    {}
func (*VariableDeclaration) declarationNode()    {}
func (*ClassDeclaration) declarationNode()       {}
func (*TSTypeAliasDeclaration) declarationNode() {}
func (*TSInterfaceDeclaration) declarationNode() {}
func (*TSEnumDeclaration) declarationNode()      {}
func (*TSDeclareFunction) declarationNode()      {}

// patterns
func (*Identifier) patternNode()            {}
func (*MemberExpression) patternNode()      {}
func (*ObjectPattern) patternNode()         {}
func (*ArrayPattern) patternNode()          {}
func (*AssignmentPattern) patternNode()     {}
func (*RestElement) patternNode()           {}
func (*TSAsExpression) patternNode()        {}
func (*TSSatisfiesExpression) patternNode() {}
func (*TSTypeAssertion) patternNode()       {}
func (*TSNonNullExpression) patternNode()   {}
func (*TSParameterProperty) patternNode()   {}

// class elements
func (*MethodDefinition) classElementNode()   {}
func (*PropertyDefinition) classElementNode() {}
func (*AccessorProperty) classElementNode()   {}
func (*StaticBlock) classElementNode()        {}
func (*TSIndexSignature) classElementNode()   {}
