package parser

import (
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
	"github.com/orizon-lang/ecmaparse/internal/scope"
)

// Precedence represents operator precedence levels
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	LOGICAL_OR  // || ??
	LOGICAL_AND // &&
	BITWISE_OR  // |
	BITWISE_XOR // ^
	BITWISE_AND // &
	EQUALS      // == != === !==
	RELATIONAL  // < > <= >= instanceof in as satisfies
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
	EXPONENT    // **
)

// precedences maps binary operator tokens to their precedence
var precedences = map[lexer.TokenType]Precedence{
	lexer.TokenNullish:     LOGICAL_OR,
	lexer.TokenLogicalOr:   LOGICAL_OR,
	lexer.TokenLogicalAnd:  LOGICAL_AND,
	lexer.TokenBitOr:       BITWISE_OR,
	lexer.TokenBitXor:      BITWISE_XOR,
	lexer.TokenBitAnd:      BITWISE_AND,
	lexer.TokenEq:          EQUALS,
	lexer.TokenNotEq:       EQUALS,
	lexer.TokenStrictEq:    EQUALS,
	lexer.TokenStrictNotEq: EQUALS,
	lexer.TokenLt:          RELATIONAL,
	lexer.TokenGt:          RELATIONAL,
	lexer.TokenLe:          RELATIONAL,
	lexer.TokenGe:          RELATIONAL,
	lexer.TokenInstanceof:  RELATIONAL,
	lexer.TokenIn:          RELATIONAL,
	lexer.TokenShl:         SHIFT,
	lexer.TokenShr:         SHIFT,
	lexer.TokenUShr:        SHIFT,
	lexer.TokenPlus:        SUM,
	lexer.TokenMinus:       SUM,
	lexer.TokenMul:         PRODUCT,
	lexer.TokenDiv:         PRODUCT,
	lexer.TokenMod:         PRODUCT,
	lexer.TokenExp:         EXPONENT,
}

// currentPrecedence returns the precedence of the current token as a
// binary operator, or LOWEST when it is not one here.
func (p *Parser) currentPrecedence() Precedence {
	if p.at(lexer.TokenIn) && p.noIn {
		return LOWEST
	}
	if p.ts && !p.tok.NewlineBefore && (p.isContextual("as") || p.isContextual("satisfies")) {
		return RELATIONAL
	}
	if prec, ok := precedences[p.tok.Type]; ok {
		return prec
	}
	return LOWEST
}

// isArrow reports whether e is a bare arrow function, which ends the
// enclosing assignment expression.
func isArrow(e ast.Expression) bool {
	a, ok := e.(*ast.ArrowFunctionExpression)
	return ok && !a.Parens
}

// ===== Comma and assignment =====

func (p *Parser) parseExpression() ast.Expression {
	start := p.start()
	first := p.parseAssign()
	if !p.at(lexer.TokenComma) {
		return first
	}

	exprs := []ast.Expression{first}
	for p.eat(lexer.TokenComma) {
		exprs = append(exprs, p.parseAssign())
	}

	return ast.NewSequenceExpression(p.spanFrom(start), exprs)
}

// parseExpressionAllowIn parses an expression with `in` enabled, as
// inside brackets and parentheses.
func (p *Parser) parseExpressionAllowIn() ast.Expression {
	saved := p.noIn
	p.noIn = false
	e := p.parseExpression()
	p.noIn = saved
	return e
}

func (p *Parser) parseAssignAllowIn() ast.Expression {
	saved := p.noIn
	p.noIn = false
	e := p.parseAssign()
	p.noIn = saved
	return e
}

func (p *Parser) parseAssign() ast.Expression {
	if p.at(lexer.TokenYield) && p.lexical.CanYieldAsExpression() {
		return p.parseYield()
	}
	if arrow := p.parseSimpleArrow(); arrow != nil {
		return arrow
	}

	start := p.start()
	p.maybeArrowStart = start.Offset
	left := p.parseConditional()
	if isArrow(left) || !p.tok.Type.IsAssign() {
		return left
	}

	op := p.tok.Type
	var target ast.Pattern
	switch op {
	case lexer.TokenAssign:
		target = p.toPattern(left, false)
	case lexer.TokenLogicalAndAssign, lexer.TokenLogicalOrAssign, lexer.TokenNullishAssign:
		p.requireFeature(config.FeatureLogicalAssignment, p.tok.Span)
		target = p.simpleTarget(left)
	case lexer.TokenExpAssign:
		p.requireFeature(config.FeatureExponent, p.tok.Span)
		target = p.simpleTarget(left)
	default:
		target = p.simpleTarget(left)
	}
	p.next()
	right := p.parseAssign()

	return ast.NewAssignmentExpression(p.spanFrom(start), op, target, right)
}

// parseSimpleArrow parses `x => ...`, `async x => ...` and TypeScript
// generic arrows, or returns nil without consuming anything.
func (p *Parser) parseSimpleArrow() ast.Expression {
	start := p.start()

	if p.isContextual("async") {
		la := p.peek()
		if !la.NewlineBefore && isIdentifierToken(la.Type) && p.lx.LookaheadN(2).Type == lexer.TokenArrow {
			p.next()
			id := p.parseBindingIdentifier()
			return p.parseArrow(start, true, nil, func() ([]ast.Pattern, *ast.TSTypeAnnotation) {
				return []ast.Pattern{id}, nil
			})
		}
	}

	if p.isIdentifier() && p.peek().Type == lexer.TokenArrow {
		id := p.parseBindingIdentifier()
		return p.parseArrow(start, false, nil, func() ([]ast.Pattern, *ast.TSTypeAnnotation) {
			return []ast.Pattern{id}, nil
		})
	}

	if p.ts && p.at(lexer.TokenLt) {
		if arrow, ok := p.tryTypedArrow(start, false); ok {
			return arrow
		}
	}

	return nil
}

func (p *Parser) parseYield() ast.Expression {
	start := p.start()
	span := p.tok.Span
	p.next()

	if p.lexical.InParameter() {
		p.report(diagnostic.CodeYieldInParameter, span)
	}
	p.arrows.Record(scope.YieldExpressionInParameter, "yield", span)

	var (
		arg      ast.Expression
		delegate bool
	)
	if !p.tok.NewlineBefore {
		if p.eat(lexer.TokenMul) {
			delegate = true
			if !p.startsExpression() {
				p.fatal(diagnostic.CodeYieldDelegateArgument, p.tok.Span)
			}
			arg = p.parseAssign()
		} else if p.startsExpression() {
			arg = p.parseAssign()
		}
	}

	return ast.NewYieldExpression(p.spanFrom(start), arg, delegate)
}

// startsExpression reports whether the current token can begin an
// expression.
func (p *Parser) startsExpression() bool {
	switch p.tok.Type {
	case lexer.TokenRParen, lexer.TokenRBracket, lexer.TokenRBrace, lexer.TokenComma,
		lexer.TokenSemicolon, lexer.TokenColon, lexer.TokenEOF, lexer.TokenQuestion,
		lexer.TokenArrow, lexer.TokenTemplateMiddle, lexer.TokenTemplateTail,
		lexer.TokenDot, lexer.TokenQuestionDot:
		return false
	case lexer.TokenPlus, lexer.TokenMinus, lexer.TokenLt, lexer.TokenDiv, lexer.TokenDivAssign:
		return true
	}
	if p.tok.Type.IsAssign() {
		return false
	}
	_, binary := precedences[p.tok.Type]
	return !binary
}

// ===== Conditional and binary =====

func (p *Parser) parseConditional() ast.Expression {
	start := p.start()
	test := p.parseBinary(LOWEST)
	if isArrow(test) || !p.at(lexer.TokenQuestion) {
		return test
	}
	p.next()

	consequent := p.parseAssignAllowIn()
	p.expect(lexer.TokenColon)
	alternate := p.parseAssign()

	return ast.NewConditionalExpression(p.spanFrom(start), test, consequent, alternate)
}

func (p *Parser) parseBinary(minPrec Precedence) ast.Expression {
	start := p.start()
	left := p.parseUnary()

	for !isArrow(left) {
		prec := p.currentPrecedence()
		if prec <= minPrec {
			break
		}

		if p.tok.Type == lexer.TokenIdentifier {
			// as / satisfies
			word := p.tok.Value
			p.next()
			typ := p.parseType()
			if word == "as" {
				left = ast.NewTSAsExpression(p.spanFrom(start), left, typ)
			} else {
				left = ast.NewTSSatisfiesExpression(p.spanFrom(start), left, typ)
			}
			continue
		}

		op := p.tok.Type
		opSpan := p.tok.Span
		p.next()

		next := prec
		if op == lexer.TokenExp {
			p.requireFeature(config.FeatureExponent, opSpan)
			if isUnaryOperand(left) {
				p.report(diagnostic.CodeExponentUnary, left.GetSpan())
			}
			next = prec - 1
		}
		right := p.parseBinary(next)

		switch op {
		case lexer.TokenLogicalOr, lexer.TokenLogicalAnd, lexer.TokenNullish:
			p.checkNullishMixing(op, left, right, opSpan)
			left = ast.NewLogicalExpression(p.spanFrom(start), op, left, right)
		default:
			if priv, ok := left.(*ast.PrivateName); ok && op != lexer.TokenIn {
				p.report(diagnostic.CodePrivateNameMisuse, priv.Span)
			}
			left = ast.NewBinaryExpression(p.spanFrom(start), op, left, right)
		}
	}

	return left
}

func isUnaryOperand(e ast.Expression) bool {
	if e.Parenthesized() {
		return false
	}
	switch e.(type) {
	case *ast.UnaryExpression, *ast.AwaitExpression, *ast.TSTypeAssertion:
		return true
	}
	return false
}

func isLogical(e ast.Expression, ops ...lexer.TokenType) bool {
	l, ok := e.(*ast.LogicalExpression)
	if !ok || l.Parens {
		return false
	}
	for _, op := range ops {
		if l.Operator == op {
			return true
		}
	}
	return false
}

func (p *Parser) checkNullishMixing(op lexer.TokenType, left, right ast.Expression, span position.Span) {
	switch op {
	case lexer.TokenNullish:
		p.requireFeature(config.FeatureNullishCoalescing, span)
		if isLogical(left, lexer.TokenLogicalOr, lexer.TokenLogicalAnd) || isLogical(right, lexer.TokenLogicalOr, lexer.TokenLogicalAnd) {
			p.report(diagnostic.CodeNullishMixing, span)
		}
	default:
		if isLogical(left, lexer.TokenNullish) || isLogical(right, lexer.TokenNullish) {
			p.report(diagnostic.CodeNullishMixing, span)
		}
	}
}

// ===== Unary and postfix =====

func (p *Parser) canAwait() bool {
	if p.lexical.CanAwaitAsExpression() {
		return true
	}
	return p.cfg.AllowAwaitOutsideFunction && p.lexical.InTopLevel() && !p.lexical.InParameter()
}

func (p *Parser) parseUnary() ast.Expression {
	start := p.start()

	switch p.tok.Type {
	case lexer.TokenDelete, lexer.TokenVoid, lexer.TokenTypeof,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenBitNot, lexer.TokenNot:
		if p.tok.Escaped {
			p.fatal(diagnostic.CodeEscapedKeyword, p.tok.Span)
		}
		op := p.tok.Type
		p.next()
		arg := p.parseUnary()
		if op == lexer.TokenDelete {
			p.checkDelete(arg)
		}
		return ast.NewUnaryExpression(p.spanFrom(start), op, arg)

	case lexer.TokenInc, lexer.TokenDec:
		op := p.tok.Type
		p.next()
		arg := p.parseUnary()
		p.simpleTarget(arg)
		return ast.NewUpdateExpression(p.spanFrom(start), op, true, arg)

	case lexer.TokenAwait:
		if p.canAwait() {
			return p.parseAwait()
		}

	case lexer.TokenLt:
		if p.ts && !p.jsx {
			return p.parseTypeAssertion()
		}
	}

	return p.parsePostfix()
}

func (p *Parser) checkDelete(arg ast.Expression) {
	switch a := arg.(type) {
	case *ast.Identifier:
		if p.lexical.InStrictMode() {
			p.report(diagnostic.CodeDeleteIdentifier, a.Span)
		}
	case *ast.MemberExpression:
		if _, ok := a.Property.(*ast.PrivateName); ok {
			p.report(diagnostic.CodePrivateDelete, a.Span)
		}
	}
}

func (p *Parser) parseAwait() ast.Expression {
	start := p.start()
	span := p.tok.Span
	if p.tok.Escaped {
		p.fatal(diagnostic.CodeEscapedKeyword, span)
	}
	p.next()

	if p.lexical.InParameter() {
		p.report(diagnostic.CodeAwaitInParameter, span)
	}
	p.arrows.Record(scope.AwaitExpressionInParameter, "await", span)
	if p.lexical.InTopLevel() {
		p.requireFeature(config.FeatureTopLevelAwait, span)
	}

	arg := p.parseUnary()
	return ast.NewAwaitExpression(p.spanFrom(start), arg)
}

func (p *Parser) parsePostfix() ast.Expression {
	start := p.start()
	expr := p.parseLHS()
	if isArrow(expr) {
		return expr
	}

	if (p.at(lexer.TokenInc) || p.at(lexer.TokenDec)) && !p.tok.NewlineBefore {
		op := p.tok.Type
		p.simpleTarget(expr)
		p.next()
		return ast.NewUpdateExpression(p.spanFrom(start), op, false, expr)
	}

	return expr
}

// ===== Left-hand side =====

func (p *Parser) parseLHS() ast.Expression {
	start := p.start()

	var expr ast.Expression
	switch p.tok.Type {
	case lexer.TokenNew:
		expr = p.parseNew()
	case lexer.TokenSuper:
		expr = p.parseSuper()
	case lexer.TokenImport:
		expr = p.parseImportExpression()
	default:
		expr = p.parsePrimary()
	}
	if isArrow(expr) {
		return expr
	}

	return p.parseSubscripts(start, expr, false)
}

func (p *Parser) parseNew() ast.Expression {
	start := p.start()
	newTok := p.tok
	p.next()

	if p.at(lexer.TokenDot) {
		p.next()
		propTok := p.tok
		p.expectContextual("target")
		if !p.lexical.NewTargetValid() && !p.cfg.AllowNewTargetOutsideFunction {
			p.report(diagnostic.CodeNewTargetOutside, p.spanFrom(start))
		}
		meta := ast.NewIdentifier(newTok.Span, "new", nil, false)
		prop := ast.NewIdentifier(propTok.Span, "target", nil, false)
		return ast.NewMetaProperty(p.spanFrom(start), meta, prop)
	}

	calleeStart := p.start()
	var callee ast.Expression
	switch p.tok.Type {
	case lexer.TokenNew:
		callee = p.parseNew()
	case lexer.TokenSuper:
		callee = p.parseSuper()
	case lexer.TokenImport:
		p.unexpected()
	default:
		callee = p.parsePrimary()
	}
	callee = p.parseSubscripts(calleeStart, callee, true)

	var typeArgs *ast.TSTypeParameterInstantiation
	if inst, ok := callee.(*ast.TSInstantiationExpression); ok && !inst.Parens {
		callee, typeArgs = inst.Expression, inst.TypeArguments
	}

	var args []ast.Expression
	if p.at(lexer.TokenLParen) {
		args, _ = p.parseArguments()
	}

	return ast.NewNewExpression(p.spanFrom(start), callee, args, typeArgs)
}

func (p *Parser) parseSuper() ast.Expression {
	tok := p.tok
	p.next()

	switch p.tok.Type {
	case lexer.TokenLParen:
		if !p.lexical.SuperCallValid() {
			p.report(diagnostic.CodeSuperCallOutsideCtor, tok.Span)
		}
	case lexer.TokenDot, lexer.TokenLBracket:
		if !p.lexical.SuperPropertyValid() {
			p.report(diagnostic.CodeSuperOutsideMethod, tok.Span)
		}
	default:
		p.fatal(diagnostic.CodeSuperOutsideMethod, tok.Span)
	}

	return ast.NewSuper(tok.Span)
}

func (p *Parser) parseImportExpression() ast.Expression {
	start := p.start()
	importTok := p.tok
	p.next()

	if p.at(lexer.TokenDot) {
		p.next()
		propTok := p.tok
		p.expectContextual("meta")
		span := p.spanFrom(start)
		if !p.module {
			p.report(diagnostic.CodeImportMetaOutsideModule, span)
		}
		p.requireFeature(config.FeatureImportMeta, span)
		meta := ast.NewIdentifier(importTok.Span, "import", nil, false)
		prop := ast.NewIdentifier(propTok.Span, "meta", nil, false)
		return ast.NewMetaProperty(span, meta, prop)
	}

	if !p.at(lexer.TokenLParen) {
		p.unexpected()
	}
	p.requireFeature(config.FeatureDynamicImport, importTok.Span)
	p.next()

	saved := p.noIn
	p.noIn = false
	var source, options ast.Expression
	if p.at(lexer.TokenRParen) {
		p.report(diagnostic.CodeImportCallArity, p.spanFrom(start))
	} else {
		source = p.parseAssign()
		if p.eat(lexer.TokenComma) && !p.at(lexer.TokenRParen) {
			p.requireFeature(config.FeatureImportAttributes, p.tok.Span)
			options = p.parseAssign()
			p.eat(lexer.TokenComma)
		}
		if !p.at(lexer.TokenRParen) {
			p.report(diagnostic.CodeImportCallArity, p.tok.Span)
			for !p.at(lexer.TokenRParen) {
				p.parseAssign()
				if !p.eat(lexer.TokenComma) {
					break
				}
			}
		}
	}
	p.noIn = saved
	p.expect(lexer.TokenRParen)

	return ast.NewImportExpression(p.spanFrom(start), source, options)
}

// parseSubscripts parses member accesses, calls and tagged templates
// following base. noCalls stops before an argument list, for the callee
// of `new`.
func (p *Parser) parseSubscripts(start position.Position, base ast.Expression, noCalls bool) ast.Expression {
	inChain := false

	for {
		switch p.tok.Type {
		case lexer.TokenDot:
			p.next()
			prop := p.parseMemberProperty()
			base = ast.NewMemberExpression(p.spanFrom(start), base, prop, false, false)

		case lexer.TokenQuestionDot:
			if noCalls {
				p.fatal(diagnostic.CodeNewOptionalChain, p.tok.Span)
			}
			p.requireFeature(config.FeatureOptionalChaining, p.tok.Span)
			p.next()
			inChain = true
			switch {
			case p.at(lexer.TokenLParen):
				args, _ := p.parseArguments()
				base = ast.NewCallExpression(p.spanFrom(start), base, args, nil, true)
			case p.at(lexer.TokenLBracket):
				p.next()
				prop := p.parseExpressionAllowIn()
				p.expect(lexer.TokenRBracket)
				base = ast.NewMemberExpression(p.spanFrom(start), base, prop, true, true)
			case p.ts && p.at(lexer.TokenLt):
				typeArgs := p.parseTypeArguments()
				args, _ := p.parseArguments()
				base = ast.NewCallExpression(p.spanFrom(start), base, args, typeArgs, true)
			default:
				prop := p.parseMemberProperty()
				base = ast.NewMemberExpression(p.spanFrom(start), base, prop, false, true)
			}

		case lexer.TokenLBracket:
			p.next()
			prop := p.parseExpressionAllowIn()
			p.expect(lexer.TokenRBracket)
			base = ast.NewMemberExpression(p.spanFrom(start), base, prop, true, false)

		case lexer.TokenTemplateNoSubstitution, lexer.TokenTemplateHead:
			if inChain {
				p.report(diagnostic.CodeOptionalChainTemplate, p.tok.Span)
			}
			quasi := p.parseTemplate(true)
			base = ast.NewTaggedTemplateExpression(p.spanFrom(start), base, nil, quasi)

		case lexer.TokenLParen:
			if noCalls {
				return base
			}
			args, _ := p.parseArguments()
			base = ast.NewCallExpression(p.spanFrom(start), base, args, nil, false)

		case lexer.TokenNot:
			if !p.ts || p.tok.NewlineBefore {
				return base
			}
			p.next()
			base = ast.NewTSNonNullExpression(p.spanFrom(start), base)

		case lexer.TokenLt:
			if !p.ts {
				return base
			}
			typeArgs, ok := p.tryTypeArgumentsInExpression()
			if !ok {
				return base
			}
			switch {
			case p.at(lexer.TokenLParen) && !noCalls:
				args, _ := p.parseArguments()
				base = ast.NewCallExpression(p.spanFrom(start), base, args, typeArgs, false)
			case p.at(lexer.TokenTemplateNoSubstitution) || p.at(lexer.TokenTemplateHead):
				quasi := p.parseTemplate(true)
				base = ast.NewTaggedTemplateExpression(p.spanFrom(start), base, typeArgs, quasi)
			default:
				base = ast.NewTSInstantiationExpression(p.spanFrom(start), base, typeArgs)
			}

		default:
			return base
		}
	}
}

func (p *Parser) parseMemberProperty() ast.Expression {
	tok := p.tok
	if tok.Type == lexer.TokenPrivateName {
		p.next()
		if !p.symbols.UsePrivate(tok.Value, tok.Span) {
			p.report(diagnostic.CodeUndefinedPrivateName, tok.Span, tok.Value)
		}
		return ast.NewPrivateName(tok.Span, tok.Value)
	}
	if !tok.Type.IsIdentifierName() {
		p.unexpected()
	}
	p.next()

	return ast.NewIdentifier(tok.Span, tok.Value, nil, false)
}

// parseArguments parses a call argument list. restComma is the span of a
// trailing comma after a final spread argument, which matters if the list
// becomes arrow parameters.
func (p *Parser) parseArguments() (args []ast.Expression, restComma *position.Span) {
	p.expect(lexer.TokenLParen)
	saved := p.noIn
	p.noIn = false

	for !p.at(lexer.TokenRParen) {
		if p.at(lexer.TokenComma) && len(args) == 0 {
			p.report(diagnostic.CodeLeadingComma, p.tok.Span)
			p.next()
			continue
		}

		spread := false
		if p.at(lexer.TokenEllipsis) {
			start := p.start()
			p.next()
			arg := p.parseAssign()
			args = append(args, ast.NewSpreadElement(p.spanFrom(start), arg))
			spread = true
		} else {
			args = append(args, p.parseAssign())
		}

		if !p.at(lexer.TokenRParen) {
			comma := p.tok.Span
			p.expect(lexer.TokenComma)
			if spread && p.at(lexer.TokenRParen) {
				restComma = &comma
			}
		}
	}

	p.noIn = saved
	p.expect(lexer.TokenRParen)

	return args, restComma
}

// ===== Primary =====

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.tok
	start := tok.Span.Start

	if tok.Type.IsKeyword() && tok.Escaped && !isIdentifierToken(tok.Type) {
		p.fatal(diagnostic.CodeEscapedKeyword, tok.Span)
	}

	switch tok.Type {
	case lexer.TokenIdentifier:
		if tok.Value == "async" && !tok.Escaped {
			if e := p.parseAsyncPrimary(); e != nil {
				return e
			}
		}
		return p.parseIdentifierReference()

	case lexer.TokenLet, lexer.TokenYield, lexer.TokenAwait:
		return p.parseIdentifierReference()

	case lexer.TokenThis:
		p.next()
		return ast.NewThisExpression(tok.Span)

	case lexer.TokenNull:
		p.next()
		return ast.NewNullLiteral(tok.Span)

	case lexer.TokenTrue, lexer.TokenFalse:
		p.next()
		return ast.NewBooleanLiteral(tok.Span, tok.Type == lexer.TokenTrue)

	case lexer.TokenString:
		return p.parseStringLiteral()

	case lexer.TokenTemplateNoSubstitution, lexer.TokenTemplateHead:
		return p.parseTemplate(false)

	case lexer.TokenDiv, lexer.TokenDivAssign:
		return p.parseRegex()

	case lexer.TokenLParen:
		return p.parseParenExpression()

	case lexer.TokenLBracket:
		return p.parseArrayLiteral()

	case lexer.TokenLBrace:
		return p.parseObjectLiteral()

	case lexer.TokenFunction:
		return p.parseFunction(start, false, fnExpression).(ast.Expression)

	case lexer.TokenClass:
		return p.parseClassExpression(start, nil)

	case lexer.TokenAt:
		decorators := p.parseDecorators()
		if !p.at(lexer.TokenClass) {
			p.fatal(diagnostic.CodeDecoratorPosition, p.tok.Span)
		}
		return p.parseClassExpression(start, decorators)

	case lexer.TokenLt:
		if p.jsx {
			return p.parseJSXRoot()
		}

	case lexer.TokenPrivateName:
		return p.parsePrivateIn()
	}

	if tok.Type.IsNumeric() {
		return p.parseNumber()
	}

	p.unexpected()
	return nil
}

// parseAsyncPrimary handles the forms starting with `async`: async
// function expressions, async arrow functions with a parenthesized head,
// and plain calls of a function named async. It returns nil when async is
// just an identifier.
func (p *Parser) parseAsyncPrimary() ast.Expression {
	start := p.start()
	asyncTok := p.tok
	la := p.peek()
	if la.NewlineBefore {
		return nil
	}

	switch {
	case la.Type == lexer.TokenFunction:
		p.next()
		return p.parseFunction(start, true, fnExpression).(ast.Expression)

	case la.Type == lexer.TokenLParen:
		canArrow := start.Offset == p.maybeArrowStart
		p.next()
		if !canArrow {
			args, _ := p.parseArguments()
			callee := ast.NewIdentifier(asyncTok.Span, "async", nil, false)
			return ast.NewCallExpression(p.spanFrom(start), callee, args, nil, false)
		}
		return p.parseAsyncCallOrArrow(start, asyncTok)

	case la.Type == lexer.TokenLt && p.ts && start.Offset == p.maybeArrowStart:
		p.next()
		if arrow, ok := p.tryTypedArrow(start, true); ok {
			return arrow
		}
		// `async<T>(x)` is a call with type arguments
		callee := ast.NewIdentifier(asyncTok.Span, "async", nil, false)
		return p.parseSubscripts(start, callee, false)
	}

	return nil
}

// parseAsyncCallOrArrow parses `async(...)` after the async token, which
// is an arrow head when `=>` follows.
func (p *Parser) parseAsyncCallOrArrow(start position.Position, asyncTok lexer.Token) ast.Expression {
	if p.ts {
		if arrow, ok := p.tryTypedArrow(start, true); ok {
			return arrow
		}
	}

	p.arrows.Enter()
	defer p.arrows.Exit()

	args, restComma := p.parseArguments()
	if p.at(lexer.TokenArrow) {
		p.promoteArrowHead(true)
		return p.parseArrow(start, true, nil, func() ([]ast.Pattern, *ast.TSTypeAnnotation) {
			return p.argumentsToParams(args, restComma), nil
		})
	}

	callee := ast.NewIdentifier(asyncTok.Span, "async", nil, false)
	return ast.NewCallExpression(p.spanFrom(start), callee, args, nil, false)
}

// argumentsToParams converts a cover list to arrow parameters.
func (p *Parser) argumentsToParams(items []ast.Expression, restComma *position.Span) []ast.Pattern {
	params := make([]ast.Pattern, 0, len(items))
	for i, it := range items {
		spread, ok := it.(*ast.SpreadElement)
		if !ok {
			params = append(params, p.toPattern(it, true))
			continue
		}
		if i != len(items)-1 {
			p.report(diagnostic.CodeRestNotLast, spread.Span)
		} else if restComma != nil {
			p.report(diagnostic.CodeRestTrailingComma, *restComma)
		}
		arg := p.toPattern(spread.Argument, true)
		if _, isDefault := arg.(*ast.AssignmentPattern); isDefault {
			p.report(diagnostic.CodeRestInitializer, arg.GetSpan())
		}
		params = append(params, ast.NewRestElement(spread.Span, arg, nil))
	}
	return params
}

func (p *Parser) parseIdentifierReference() *ast.Identifier {
	if !p.isIdentifier() {
		p.unexpected()
	}
	tok := p.tok
	p.next()
	p.checkReference(tok.Value, tok.Span)

	return ast.NewIdentifier(tok.Span, tok.Value, nil, false)
}

func (p *Parser) parsePrivateIn() ast.Expression {
	tok := p.tok
	p.next()
	if !p.at(lexer.TokenIn) || p.noIn {
		p.report(diagnostic.CodePrivateNameMisuse, tok.Span)
	}
	p.requireFeature(config.FeaturePrivateIn, tok.Span)
	if !p.symbols.UsePrivate(tok.Value, tok.Span) {
		p.report(diagnostic.CodeUndefinedPrivateName, tok.Span, tok.Value)
	}

	return ast.NewPrivateName(tok.Span, tok.Value)
}

// ===== Literals =====

func (p *Parser) parseNumber() ast.Expression {
	tok := p.tok
	p.next()

	if strings.Contains(tok.Literal, "_") {
		p.requireFeature(config.FeatureNumericSeparators, tok.Span)
	}
	if tok.Type.IsBigInt() {
		p.requireFeature(config.FeatureBigInt, tok.Span)
		value := strings.ReplaceAll(strings.TrimSuffix(tok.Literal, "n"), "_", "")
		return ast.NewBigIntLiteral(tok.Span, value, tok.Literal)
	}
	if (tok.Type == lexer.TokenLegacyOctal || tok.Type == lexer.TokenNonOctalDecimal) && p.lexical.InStrictMode() {
		p.report(diagnostic.CodeLegacyOctalStrict, tok.Span)
	}

	return ast.NewNumericLiteral(tok.Span, lexer.ParseNumber(tok.Type, tok.Literal), tok.Literal, tok.Type)
}

func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	tok := p.tok
	if tok.Type != lexer.TokenString {
		p.unexpected()
	}
	p.next()
	if tok.LegacyOctal && p.lexical.InStrictMode() {
		p.report(diagnostic.CodeOctalEscapeStrict, tok.Span)
	}

	return ast.NewStringLiteral(tok.Span, tok.Value, tok.Literal)
}

func (p *Parser) parseRegex() ast.Expression {
	tok, err := p.lx.ReadRegex()
	if err != nil || tok.Type != lexer.TokenRegex {
		p.setToken(tok)
		p.unexpected()
	}
	p.tok = tok

	pattern, flags := lexer.SplitRegex(tok.Literal)
	if strings.ContainsRune(flags, 'v') {
		p.requireFeature(config.FeatureRegExpUnicodeSets, tok.Span)
	}
	p.next()

	return ast.NewRegExpLiteral(tok.Span, pattern, flags)
}

// parseTemplate parses a template literal. Invalid escapes are only
// errors when the template is not tagged.
func (p *Parser) parseTemplate(tagged bool) *ast.TemplateLiteral {
	start := p.start()

	var (
		quasis []*ast.TemplateElement
		exprs  []ast.Expression
	)
	for {
		tok := p.tok
		tail := tok.Type == lexer.TokenTemplateNoSubstitution || tok.Type == lexer.TokenTemplateTail
		cooked := tok.Value
		if tok.BadEscape {
			cooked = ""
			if !tagged {
				p.report(diagnostic.CodeTemplateInvalidEscape, tok.Span)
			}
		}
		quasis = append(quasis, ast.NewTemplateElement(tok.Span, lexer.TemplateRaw(tok), cooked, tok.BadEscape, tail))
		p.next()
		if tail {
			break
		}

		exprs = append(exprs, p.parseExpressionAllowIn())
		if !p.at(lexer.TokenTemplateMiddle) && !p.at(lexer.TokenTemplateTail) {
			p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, "}", describe(p.tok))
		}
	}

	return ast.NewTemplateLiteral(p.spanFrom(start), quasis, exprs)
}

// ===== Parentheses and arrow heads =====

// parseParenExpression parses a parenthesized expression or, when `=>`
// follows, the parameter list of an arrow function.
func (p *Parser) parseParenExpression() ast.Expression {
	start := p.start()
	canArrow := start.Offset == p.maybeArrowStart

	if p.ts && canArrow {
		if arrow, ok := p.tryTypedArrow(start, false); ok {
			return arrow
		}
	}

	p.expect(lexer.TokenLParen)
	p.arrows.Enter()
	defer p.arrows.Exit()

	saved := p.noIn
	p.noIn = false

	var (
		items     []ast.Expression
		rest      *ast.RestElement
		restComma *position.Span
		trailing  *position.Span
	)
	for !p.at(lexer.TokenRParen) {
		if p.at(lexer.TokenEllipsis) {
			rest = p.parseRestBinding()
			if p.at(lexer.TokenComma) {
				comma := p.tok.Span
				p.next()
				if !p.at(lexer.TokenRParen) {
					p.fatal(diagnostic.CodeRestNotLast, comma)
				}
				restComma = &comma
			}
			break
		}
		items = append(items, p.parseAssign())
		if !p.at(lexer.TokenRParen) {
			comma := p.tok.Span
			p.expect(lexer.TokenComma)
			if p.at(lexer.TokenRParen) {
				trailing = &comma
			}
		}
	}
	p.noIn = saved
	closeSpan := p.tok.Span
	p.expect(lexer.TokenRParen)

	if canArrow && p.at(lexer.TokenArrow) {
		p.promoteArrowHead(false)
		return p.parseArrow(start, false, nil, func() ([]ast.Pattern, *ast.TSTypeAnnotation) {
			params := p.argumentsToParams(items, nil)
			if rest != nil {
				if restComma != nil {
					p.report(diagnostic.CodeRestTrailingComma, *restComma)
				}
				params = append(params, rest)
			}
			return params, nil
		})
	}

	switch {
	case len(items) == 0 && rest == nil:
		p.fatal(diagnostic.CodeEmptyParenthesized, position.NewSpan(start, closeSpan.End))
	case rest != nil:
		p.fatal(diagnostic.CodeSpreadInParenthesized, rest.Span)
	case trailing != nil:
		p.report(diagnostic.CodeParenthesizedTrailing, *trailing)
	}

	var expr ast.Expression
	if len(items) == 1 {
		expr = items[0]
	} else {
		span := position.NewSpan(items[0].GetSpan().Start, items[len(items)-1].GetSpan().End)
		expr = ast.NewSequenceExpression(span, items)
	}
	expr.SetParenthesized(true)

	return expr
}

// ===== Array and object literals =====

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.start()
	p.expect(lexer.TokenLBracket)
	saved := p.noIn
	p.noIn = false

	var (
		elems     []ast.Expression
		restComma *position.Span
	)
	for !p.at(lexer.TokenRBracket) {
		if p.at(lexer.TokenComma) {
			p.next()
			elems = append(elems, nil)
			continue
		}

		var el ast.Expression
		if p.at(lexer.TokenEllipsis) {
			s := p.start()
			p.next()
			arg := p.parseAssign()
			el = ast.NewSpreadElement(p.spanFrom(s), arg)
		} else {
			el = p.parseAssign()
		}
		elems = append(elems, el)

		if !p.at(lexer.TokenRBracket) {
			comma := p.tok.Span
			p.expect(lexer.TokenComma)
			if _, spread := el.(*ast.SpreadElement); spread && p.at(lexer.TokenRBracket) {
				restComma = &comma
			}
		}
	}
	p.noIn = saved
	p.expect(lexer.TokenRBracket)

	arr := ast.NewArrayExpression(p.spanFrom(start), elems)
	if restComma != nil {
		p.restCommas[arr] = *restComma
	}
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	start := p.start()
	p.expect(lexer.TokenLBrace)
	saved := p.noIn
	p.noIn = false

	var (
		props     []ast.Node
		restComma *position.Span
		protoSeen bool
		dupProtos []position.Span
	)
	for !p.at(lexer.TokenRBrace) {
		if p.at(lexer.TokenEllipsis) {
			s := p.start()
			p.requireFeature(config.FeatureObjectSpread, p.tok.Span)
			p.next()
			arg := p.parseAssign()
			props = append(props, ast.NewSpreadElement(p.spanFrom(s), arg))
			if p.at(lexer.TokenComma) {
				comma := p.tok.Span
				p.next()
				if p.at(lexer.TokenRBrace) {
					restComma = &comma
				}
			} else if !p.at(lexer.TokenRBrace) {
				p.expect(lexer.TokenComma)
			}
			continue
		}

		prop := p.parseObjectMember()
		if isProtoInit(prop) {
			if protoSeen {
				dupProtos = append(dupProtos, prop.Key.GetSpan())
			}
			protoSeen = true
		}
		props = append(props, prop)
		if !p.at(lexer.TokenRBrace) {
			p.expect(lexer.TokenComma)
		}
	}
	p.noIn = saved
	p.expect(lexer.TokenRBrace)

	obj := ast.NewObjectExpression(p.spanFrom(start), props)
	if restComma != nil {
		p.restCommas[obj] = *restComma
	}
	for _, span := range dupProtos {
		p.protoDups = append(p.protoDups, protoDup{obj: obj, span: span})
	}
	return obj
}

// isProtoInit reports whether prop is a `__proto__: value` entry, which
// sets the prototype instead of defining a property.
func isProtoInit(prop *ast.Property) bool {
	if prop.Computed || prop.Shorthand || prop.Method || prop.PropKind != ast.PropertyInit {
		return false
	}
	switch k := prop.Key.(type) {
	case *ast.Identifier:
		return k.Name == "__proto__"
	case *ast.StringLiteral:
		return k.Value == "__proto__"
	}
	return false
}

// startsPropertyName reports whether tok can begin a property name after
// a get, set or async prefix.
func startsPropertyName(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.TokenLBracket, lexer.TokenString, lexer.TokenPrivateName, lexer.TokenMul:
		return true
	}
	return tok.Type.IsIdentifierName() || tok.Type.IsNumeric()
}

func (p *Parser) parseObjectMember() *ast.Property {
	start := p.start()

	var (
		async, gen bool
		kind       = ast.PropertyInit
	)
	if p.isContextual("async") {
		if la := p.peek(); !la.NewlineBefore && startsPropertyName(la) {
			p.requireFeature(config.FeatureAsyncFunctions, p.tok.Span)
			async = true
			p.next()
		}
	}
	if p.at(lexer.TokenMul) {
		gen = true
		p.next()
	}
	if !async && !gen && (p.isContextual("get") || p.isContextual("set")) {
		if la := p.peek(); startsPropertyName(la) && la.Type != lexer.TokenMul {
			kind = ast.PropertyGet
			if p.tok.Value == "set" {
				kind = ast.PropertySet
			}
			p.next()
		}
	}

	keyTok := p.tok
	key, computed := p.parsePropertyKey(false)

	if async || gen || kind != ast.PropertyInit || p.at(lexer.TokenLParen) || (p.ts && p.at(lexer.TokenLt)) {
		fn := p.parseMethod(async, gen, methodKindOf(kind), false)
		return ast.NewProperty(p.spanFrom(start), key, fn, kind, kind == ast.PropertyInit, false, computed)
	}

	if p.eat(lexer.TokenColon) {
		value := p.parseAssign()
		return ast.NewProperty(p.spanFrom(start), key, value, ast.PropertyInit, false, false, computed)
	}

	// shorthand
	switch {
	case computed || keyTok.Type == lexer.TokenString || keyTok.Type.IsNumeric():
		p.fatal(diagnostic.CodeShorthandLiteral, keyTok.Span)
	case !isIdentifierToken(keyTok.Type):
		if keyTok.Escaped {
			p.fatal(diagnostic.CodeEscapedKeyword, keyTok.Span)
		}
		p.report(diagnostic.CodeUnexpectedReserved, keyTok.Span, keyTok.Value)
	default:
		p.checkReference(keyTok.Value, keyTok.Span)
	}
	value := ast.NewIdentifier(keyTok.Span, keyTok.Value, nil, false)

	if p.at(lexer.TokenAssign) {
		p.next()
		right := p.parseAssignAllowIn()
		init := ast.NewAssignmentPattern(p.spanFrom(start), value, right)
		prop := ast.NewProperty(p.spanFrom(start), key, init, ast.PropertyInit, false, true, false)
		p.coverInits = append(p.coverInits, coverInit{prop: prop, span: init.Span})
		return prop
	}

	return ast.NewProperty(p.spanFrom(start), key, value, ast.PropertyInit, false, true, false)
}

func methodKindOf(kind ast.PropertyKind) ast.MethodKind {
	switch kind {
	case ast.PropertyGet:
		return ast.MethodGet
	case ast.PropertySet:
		return ast.MethodSet
	}
	return ast.MethodNormal
}

// parsePropertyKey parses a property name. Private names are only
// accepted for class members.
func (p *Parser) parsePropertyKey(class bool) (ast.Expression, bool) {
	tok := p.tok

	switch {
	case tok.Type == lexer.TokenLBracket:
		p.next()
		if class {
			p.lexical.EnterPropertyName()
			defer p.lexical.ExitPropertyName()
		}
		key := p.parseAssignAllowIn()
		p.expect(lexer.TokenRBracket)
		return key, true

	case tok.Type == lexer.TokenString:
		return p.parseStringLiteral(), false

	case tok.Type.IsNumeric():
		return p.parseNumber(), false

	case tok.Type == lexer.TokenPrivateName:
		p.next()
		if !class {
			p.report(diagnostic.CodePrivateInObject, tok.Span)
		}
		return ast.NewPrivateName(tok.Span, tok.Value), false

	case tok.Type.IsIdentifierName():
		p.next()
		return ast.NewIdentifier(tok.Span, tok.Value, nil, false), false
	}

	p.unexpected()
	return nil, false
}
