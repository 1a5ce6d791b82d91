package parser

import (
	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// fnContext says where a function keyword appears.
type fnContext int

const (
	fnExpression fnContext = iota
	fnDeclaration
	// fnDefaultExport is `export default function`, whose name is optional.
	fnDefaultExport
	// fnDeclare is a TypeScript `declare function` without a body.
	fnDeclare
)

// parseFunction parses a function declaration or expression starting at
// the `function` keyword; `async` has already been consumed.
func (p *Parser) parseFunction(start position.Position, async bool, ctx fnContext) ast.Node {
	if p.tok.Escaped {
		p.fatal(diagnostic.CodeEscapedKeyword, p.tok.Span)
	}
	p.expect(lexer.TokenFunction)
	generator := p.eat(lexer.TokenMul)
	p.requireFunctionFeatures(async, generator, start)

	// A "use strict" body also applies to the function's own name.
	p.stricts.EnterCapture()
	defer p.stricts.Exit()

	var id *ast.Identifier
	if ctx != fnExpression {
		if p.isIdentifier() {
			id = p.parseBindingIdentifier()
			p.checkBindingName(id.Name, id.Span, declNone)
		} else if ctx != fnDefaultExport {
			p.unexpected()
		}
	}

	fn := p.parseFunctionRest(async, generator, id, ctx)
	span := p.spanFrom(start)

	if ctx == fnExpression {
		return ast.NewFunctionExpression(span, fn)
	}
	if fn.Body == nil {
		return ast.NewTSDeclareFunction(span, fn, ctx == fnDeclare)
	}
	if id != nil {
		if prev, ok := p.symbols.DeclareFunction(id.Name, id.Span, p.lexical.InStrictMode()); !ok {
			p.reportDuplicate(id.Name, id.Span, prev)
		}
	}

	return ast.NewFunctionDeclaration(span, fn)
}

func (p *Parser) requireFunctionFeatures(async, generator bool, start position.Position) {
	span := p.spanFrom(start)
	if async {
		p.requireFeature(config.FeatureAsyncFunctions, span)
	}
	if async && generator {
		p.requireFeature(config.FeatureAsyncIteration, span)
	}
}

// parseFunctionRest parses everything after the name inside the function's
// own frames. An expression's name is checked here, where await and yield
// follow the function's own kind.
func (p *Parser) parseFunctionRest(async, generator bool, id *ast.Identifier, ctx fnContext) ast.Function {
	p.lexical.EnterFunction(async, generator)
	defer p.lexical.Exit()
	p.symbols.EnterFunction()
	defer p.symbols.Exit()
	p.arrows.EnterBlank()
	defer p.arrows.Exit()

	if ctx == fnExpression && p.isIdentifier() {
		id = p.parseBindingIdentifier()
		p.checkBindingName(id.Name, id.Span, declNone)
	}

	fn := ast.Function{ID: id, Async: async, Generator: generator}
	p.parseSignature(&fn, false)

	switch {
	case ctx == fnDeclare:
		p.semicolon()
	case p.ts && ctx != fnExpression && !p.at(lexer.TokenLBrace):
		// overload signature
		p.semicolon()
	default:
		fn.Body = p.parseFunctionBody()
	}

	return fn
}

// parseSignature parses type parameters, parameters and return type, then
// declares the parameters.
func (p *Parser) parseSignature(fn *ast.Function, unique bool) {
	if p.ts && p.at(lexer.TokenLt) {
		fn.TypeParameters = p.parseTypeParameters()
	}
	fn.Params = p.parseFormalParams()
	if p.ts && p.at(lexer.TokenColon) {
		fn.ReturnType = p.parseReturnType()
	}
	p.declareParams(fn.Params, unique)
}

// parseMethod parses the parameters and body of an object or class
// method. bodyless allows a TypeScript signature without a body.
func (p *Parser) parseMethod(async, generator bool, kind ast.MethodKind, bodyless bool) *ast.FunctionExpression {
	start := p.start()
	p.requireFunctionFeatures(async, generator, start)

	p.stricts.EnterCapture()
	defer p.stricts.Exit()
	p.lexical.EnterMethod(async, generator, kind == ast.MethodConstructor)
	defer p.lexical.Exit()
	p.symbols.EnterFunction()
	defer p.symbols.Exit()
	p.arrows.EnterBlank()
	defer p.arrows.Exit()

	fn := ast.Function{Async: async, Generator: generator}
	p.parseSignature(&fn, true)
	p.checkAccessorParams(kind, fn.Params, start)

	if bodyless && !p.at(lexer.TokenLBrace) {
		p.semicolon()
	} else {
		fn.Body = p.parseFunctionBody()
	}

	return ast.NewFunctionExpression(p.spanFrom(start), fn)
}

func (p *Parser) checkAccessorParams(kind ast.MethodKind, params []ast.Pattern, start position.Position) {
	if len(params) > 0 {
		if id, ok := params[0].(*ast.Identifier); ok && p.ts && id.Name == "this" {
			params = params[1:]
		}
	}

	switch kind {
	case ast.MethodGet:
		if len(params) != 0 {
			p.report(diagnostic.CodeGetterArity, p.spanFrom(start))
		}
	case ast.MethodSet:
		if len(params) != 1 {
			p.report(diagnostic.CodeSetterArity, p.spanFrom(start))
			return
		}
		if rest, ok := params[0].(*ast.RestElement); ok {
			p.report(diagnostic.CodeSetterRest, rest.Span)
		}
	}
}

// ===== Parameters =====

func (p *Parser) parseFormalParams() []ast.Pattern {
	p.expect(lexer.TokenLParen)
	p.lexical.EnterParameter()
	defer p.lexical.ExitParameter()

	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	var params []ast.Pattern
	for !p.at(lexer.TokenRParen) {
		if p.at(lexer.TokenEllipsis) {
			params = append(params, p.parseRestBinding())
			p.checkRestEnd(lexer.TokenRParen)
			break
		}
		params = append(params, p.parseFormalParam())
		if !p.at(lexer.TokenRParen) {
			p.expect(lexer.TokenComma)
		}
	}
	p.expect(lexer.TokenRParen)

	return params
}

// parameterModifiers are the TypeScript words that turn a constructor
// parameter into a class property.
var parameterModifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"readonly":  true,
	"override":  true,
}

func (p *Parser) parseFormalParam() ast.Pattern {
	start := p.start()

	if p.at(lexer.TokenAt) {
		if !p.ts {
			p.fatal(diagnostic.CodeDecoratorPosition, p.tok.Span)
		}
		p.parseDecorators()
	}

	var (
		accessibility string
		readonly      bool
		override      bool
		modifierSpan  position.Span
		hasModifier   bool
	)
	for p.ts && p.tok.Type == lexer.TokenIdentifier && parameterModifiers[p.tok.Value] && !p.tok.Escaped {
		la := p.peek()
		if !la.Type.IsIdentifierName() && la.Type != lexer.TokenLBrace && la.Type != lexer.TokenLBracket {
			break
		}
		word := p.tok.Value
		if !hasModifier {
			modifierSpan = p.tok.Span
		}
		hasModifier = true
		switch word {
		case "readonly":
			if readonly {
				p.report(diagnostic.CodeDuplicateModifier, p.tok.Span, word)
			}
			readonly = true
		case "override":
			if override {
				p.report(diagnostic.CodeDuplicateModifier, p.tok.Span, word)
			}
			override = true
		default:
			if accessibility != "" {
				p.report(diagnostic.CodeDuplicateModifier, p.tok.Span, word)
			}
			accessibility = word
		}
		p.next()
	}
	if hasModifier {
		if top := p.lexical.Top(); top == nil || !top.Ctor {
			p.report(diagnostic.CodeInvalidModifier, modifierSpan, "parameter property")
		}
	}

	var target ast.Pattern
	switch {
	case p.ts && p.at(lexer.TokenThis):
		tok := p.tok
		p.next()
		target = ast.NewIdentifier(tok.Span, "this", nil, false)
	default:
		target = p.parseBindingTarget()
	}

	if p.ts {
		optional := p.eat(lexer.TokenQuestion)
		var ann *ast.TSTypeAnnotation
		if p.at(lexer.TokenColon) {
			ann = p.parseTypeAnnotation()
		}
		p.annotate(target, ann, optional, start)
	}

	if p.at(lexer.TokenAssign) {
		p.next()
		right := p.parseDefaultValue()
		target = ast.NewAssignmentPattern(p.spanFrom(start), target, right)
	}

	if hasModifier {
		if _, ok := target.(*ast.Identifier); !ok {
			if _, ok := target.(*ast.AssignmentPattern); !ok {
				p.report(diagnostic.CodeInvalidModifier, modifierSpan, "parameter property")
			}
		}
		return ast.NewTSParameterProperty(p.spanFrom(start), accessibility, readonly, override, target)
	}

	return target
}

// annotate attaches a TypeScript annotation and optional marker to a
// binding target and widens its span over them.
func (p *Parser) annotate(target ast.Pattern, ann *ast.TSTypeAnnotation, optional bool, start position.Position) {
	if ann == nil && !optional {
		return
	}
	switch t := target.(type) {
	case *ast.Identifier:
		t.TypeAnnotation = ann
		t.Optional = optional
		t.Span = p.spanFrom(t.Span.Start)
	case *ast.ObjectPattern:
		t.TypeAnnotation = ann
		t.Span = p.spanFrom(start)
	case *ast.ArrayPattern:
		t.TypeAnnotation = ann
		t.Span = p.spanFrom(start)
	}
}

// ===== Bodies =====

func (p *Parser) parseFunctionBody() *ast.BlockStatement {
	start := p.start()
	p.expect(lexer.TokenLBrace)

	saved := p.noIn
	p.noIn = false
	body := p.parseBody(lexer.TokenRBrace, false)
	p.noIn = saved

	p.expect(lexer.TokenRBrace)

	return ast.NewBlockStatement(p.spanFrom(start), body)
}

// parseBody parses statements up to end, starting with the directive
// prologue. It does not consume end.
func (p *Parser) parseBody(end lexer.TokenType, topLevel bool) []ast.Statement {
	var body []ast.Statement

	// octal literals seen in directives before "use strict"
	var octals []position.Span
	prologue := true

	for !p.at(end) {
		if prologue {
			if p.at(lexer.TokenString) {
				tok := p.tok
				stmt := p.parseStatementListItem(topLevel)
				if d := directiveOf(stmt, tok); d != "" {
					if tok.LegacyOctal {
						octals = append(octals, tok.Span)
					}
					if d == "use strict" {
						p.applyUseStrict(tok.Span, octals)
					}
					body = append(body, stmt)
					continue
				}
				body = append(body, stmt)
			}
			prologue = false
			continue
		}
		body = append(body, p.parseStatementListItem(topLevel))
	}

	return body
}

// directiveOf returns the raw text of a directive statement: a lone string
// literal expression statement, not parenthesized.
func directiveOf(stmt ast.Statement, tok lexer.Token) string {
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return ""
	}
	lit, ok := es.Expression.(*ast.StringLiteral)
	if !ok || lit.Parens || lit.Span != tok.Span {
		return ""
	}
	raw := tok.Literal[1 : len(tok.Literal)-1]
	es.Directive = raw
	return raw
}

// applyUseStrict switches the current function to strict mode and reports
// what only strict code forbids in what was parsed before the directive.
func (p *Parser) applyUseStrict(span position.Span, octals []position.Span) {
	if !p.lexical.SimpleParams() {
		p.report(diagnostic.CodeUseStrictNonSimple, span)
	}
	if p.lexical.InStrictMode() {
		return
	}
	p.lexical.SetStrict()
	for _, o := range octals {
		p.report(diagnostic.CodeOctalEscapeStrict, o)
	}
	p.promoteStrict()
}

// ===== Arrow functions =====

// parseArrow parses an arrow function whose head is produced by head,
// which runs inside the arrow's frames. The current token is `=>` or,
// for TypeScript, the start of the head.
func (p *Parser) parseArrow(start position.Position, async bool, typeParams *ast.TSTypeParameterDeclaration, head func() ([]ast.Pattern, *ast.TSTypeAnnotation)) ast.Expression {
	if async {
		p.requireFeature(config.FeatureAsyncFunctions, p.spanFrom(start))
	}

	p.lexical.EnterArrow(async)
	defer p.lexical.Exit()
	p.symbols.EnterFunction()
	defer p.symbols.Exit()
	p.stricts.EnterCapture()
	defer p.stricts.Exit()

	params, returnType := head()

	p.arrows.EnterBlank()
	defer p.arrows.Exit()
	p.declareParams(params, true)

	if p.tok.NewlineBefore && p.at(lexer.TokenArrow) {
		p.report(diagnostic.CodeLineBreakBeforeArrow, p.tok.Span)
	}
	p.expect(lexer.TokenArrow)

	if p.at(lexer.TokenLBrace) {
		body := p.parseFunctionBody()
		return ast.NewArrowFunctionExpression(p.spanFrom(start), typeParams, params, returnType, body, async, false)
	}

	body := p.parseAssign()
	return ast.NewArrowFunctionExpression(p.spanFrom(start), typeParams, params, returnType, body, async, true)
}

// tryTypedArrow speculatively parses a TypeScript arrow head with type
// parameters or a return type, `<T>(x: T): T =>`, at the current token.
// On success the arrow is parsed for real.
func (p *Parser) tryTypedArrow(start position.Position, async bool) (ast.Expression, bool) {
	cp := p.save()
	_, ok := p.TryParse(func() ast.Node {
		p.lexical.EnterArrow(async)
		defer p.lexical.Exit()
		p.symbols.EnterFunction()
		defer p.symbols.Exit()
		p.stricts.EnterCapture()
		defer p.stricts.Exit()
		p.arrows.EnterBlank()
		defer p.arrows.Exit()

		p.parseArrowHead()
		if !p.at(lexer.TokenArrow) {
			p.unexpected()
		}
		return nil
	})
	if !ok {
		return nil, false
	}
	p.restore(cp)

	var typeParams *ast.TSTypeParameterDeclaration
	arrow := p.parseArrow(start, async, nil, func() ([]ast.Pattern, *ast.TSTypeAnnotation) {
		var (
			params []ast.Pattern
			ret    *ast.TSTypeAnnotation
		)
		typeParams, params, ret = p.parseArrowHead()
		return params, ret
	})
	arrow.(*ast.ArrowFunctionExpression).TypeParameters = typeParams

	return arrow, true
}

// parseArrowHead parses `<T>(params): R` for a TypeScript arrow.
func (p *Parser) parseArrowHead() (*ast.TSTypeParameterDeclaration, []ast.Pattern, *ast.TSTypeAnnotation) {
	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	params := p.parseFormalParams()
	var ret *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		ret = p.parseReturnType()
	}
	return typeParams, params, ret
}
