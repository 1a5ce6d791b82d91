package parser

import (
	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// typeKeywords are the predefined type names.
var typeKeywords = map[string]bool{
	"any":       true,
	"unknown":   true,
	"number":    true,
	"bigint":    true,
	"boolean":   true,
	"string":    true,
	"symbol":    true,
	"never":     true,
	"object":    true,
	"undefined": true,
	"intrinsic": true,
}

// ===== Annotations =====

// parseTypeAnnotation parses `: Type`.
func (p *Parser) parseTypeAnnotation() *ast.TSTypeAnnotation {
	start := p.start()
	p.expect(lexer.TokenColon)
	typ := p.parseType()

	return ast.NewTSTypeAnnotation(p.spanFrom(start), typ)
}

// parseReturnType parses `: Type` where a type predicate may appear.
func (p *Parser) parseReturnType() *ast.TSTypeAnnotation {
	start := p.start()
	p.expect(lexer.TokenColon)
	typ := p.parseTypeOrPredicate()

	return ast.NewTSTypeAnnotation(p.spanFrom(start), typ)
}

func (p *Parser) parseTypeOrPredicate() ast.TSType {
	start := p.start()

	if p.isContextual("asserts") {
		la := p.peek()
		if !la.NewlineBefore && (isIdentifierToken(la.Type) || la.Type == lexer.TokenThis) {
			p.next()
			name := p.parsePredicateName()
			var ann *ast.TSTypeAnnotation
			if p.isContextual("is") && !p.tok.NewlineBefore {
				p.next()
				astart := p.start()
				typ := p.parseType()
				ann = ast.NewTSTypeAnnotation(p.spanFrom(astart), typ)
			}
			return ast.NewTSTypePredicate(p.spanFrom(start), name, ann, true)
		}
	}

	if p.isIdentifier() || p.at(lexer.TokenThis) {
		if la := p.peek(); la.Type == lexer.TokenIdentifier && la.Value == "is" && !la.NewlineBefore {
			name := p.parsePredicateName()
			p.next()
			astart := p.start()
			typ := p.parseType()
			ann := ast.NewTSTypeAnnotation(p.spanFrom(astart), typ)
			return ast.NewTSTypePredicate(p.spanFrom(start), name, ann, false)
		}
	}

	return p.parseType()
}

func (p *Parser) parsePredicateName() ast.Node {
	tok := p.tok
	p.next()
	if tok.Type == lexer.TokenThis {
		return ast.NewTSThisType(tok.Span)
	}
	return ast.NewIdentifier(tok.Span, tok.Value, nil, false)
}

// ===== Types =====

// parseType parses a type, including conditional types.
func (p *Parser) parseType() ast.TSType {
	start := p.start()
	check := p.parseNonConditionalType()
	if !p.at(lexer.TokenExtends) || p.tok.NewlineBefore {
		return check
	}

	p.next()
	extends := p.parseNonConditionalType()
	p.expect(lexer.TokenQuestion)
	trueType := p.parseType()
	p.expect(lexer.TokenColon)
	falseType := p.parseType()

	return ast.NewTSConditionalType(p.spanFrom(start), check, extends, trueType, falseType)
}

// parseNonConditionalType parses a function type, constructor type or
// union.
func (p *Parser) parseNonConditionalType() ast.TSType {
	start := p.start()

	switch {
	case p.at(lexer.TokenLt):
		return p.parseFunctionType(start)
	case p.at(lexer.TokenLParen) && p.isFunctionTypeStart():
		return p.parseFunctionType(start)
	case p.at(lexer.TokenNew):
		return p.parseConstructorType(start, false)
	case p.isContextual("abstract") && p.peek().Type == lexer.TokenNew:
		p.next()
		return p.parseConstructorType(start, true)
	}

	return p.parseUnionType()
}

// isFunctionTypeStart reports whether the `(` at the current token opens
// the parameters of a function type rather than a parenthesized type.
func (p *Parser) isFunctionTypeStart() bool {
	switch la := p.peek(); {
	case la.Type == lexer.TokenRParen, la.Type == lexer.TokenEllipsis:
		return true
	case la.Type == lexer.TokenThis:
		return true
	}

	cp := p.save()
	_, ok := p.TryParse(func() ast.Node {
		p.parseSignatureParams()
		if !p.at(lexer.TokenArrow) {
			p.unexpected()
		}
		return nil
	})
	if ok {
		p.restore(cp)
	}
	return ok
}

func (p *Parser) parseFunctionType(start position.Position) ast.TSType {
	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	params := p.parseSignatureParams()
	ret := p.parseArrowReturnType()

	return ast.NewTSFunctionType(p.spanFrom(start), typeParams, params, ret)
}

func (p *Parser) parseConstructorType(start position.Position, abstract bool) ast.TSType {
	p.expect(lexer.TokenNew)

	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	params := p.parseSignatureParams()
	ret := p.parseArrowReturnType()

	return ast.NewTSConstructorType(p.spanFrom(start), typeParams, params, ret, abstract)
}

// parseArrowReturnType parses `=> Type` of a function or constructor type.
func (p *Parser) parseArrowReturnType() *ast.TSTypeAnnotation {
	start := p.start()
	p.expect(lexer.TokenArrow)
	typ := p.parseTypeOrPredicate()

	return ast.NewTSTypeAnnotation(p.spanFrom(start), typ)
}

func (p *Parser) parseUnionType() ast.TSType {
	start := p.start()
	leading := p.eat(lexer.TokenBitOr)

	types := []ast.TSType{p.parseIntersectionType()}
	for p.eat(lexer.TokenBitOr) {
		types = append(types, p.parseIntersectionType())
	}
	if len(types) == 1 && !leading {
		return types[0]
	}
	return ast.NewTSUnionType(p.spanFrom(start), types)
}

func (p *Parser) parseIntersectionType() ast.TSType {
	start := p.start()
	leading := p.eat(lexer.TokenBitAnd)

	types := []ast.TSType{p.parseTypeOperator()}
	for p.eat(lexer.TokenBitAnd) {
		types = append(types, p.parseTypeOperator())
	}
	if len(types) == 1 && !leading {
		return types[0]
	}
	return ast.NewTSIntersectionType(p.spanFrom(start), types)
}

// endsType reports whether tok cannot start the operand of a type
// operator, making a keyof or readonly word a plain type name.
func endsType(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.TokenComma, lexer.TokenRParen, lexer.TokenRBracket, lexer.TokenRBrace,
		lexer.TokenGt, lexer.TokenAssign, lexer.TokenSemicolon, lexer.TokenBitOr,
		lexer.TokenBitAnd, lexer.TokenQuestion, lexer.TokenColon, lexer.TokenEOF,
		lexer.TokenExtends, lexer.TokenDot:
		return true
	}
	return false
}

func (p *Parser) parseTypeOperator() ast.TSType {
	start := p.start()

	if p.tok.Type == lexer.TokenIdentifier && !p.tok.Escaped {
		switch word := p.tok.Value; word {
		case "keyof", "unique", "readonly":
			if !endsType(p.peek()) {
				p.next()
				operand := p.parseTypeOperator()
				return ast.NewTSTypeOperator(p.spanFrom(start), word, operand)
			}
		case "infer":
			if isIdentifierToken(p.peek().Type) {
				p.next()
				return p.parseInferType(start)
			}
		}
	}

	return p.parsePostfixType()
}

// parseInferType parses `infer U` with an optional constraint. Inside the
// extends clause of a conditional type, `infer U extends X ?` reads the
// extends as the conditional, so a constraint is only kept when no `?`
// follows it.
func (p *Parser) parseInferType(start position.Position) ast.TSType {
	tok := p.tok
	p.next()

	var constraint ast.TSType
	if p.at(lexer.TokenExtends) {
		n, ok := p.TryParse(func() ast.Node {
			p.next()
			c := p.parseNonConditionalType()
			if p.at(lexer.TokenQuestion) {
				p.unexpected()
			}
			return c
		})
		if ok {
			constraint = n.(ast.TSType)
		}
	}

	tp := ast.NewTSTypeParameter(p.spanFrom(tok.Span.Start), tok.Value, constraint, nil, false, false, false)
	return ast.NewTSInferType(p.spanFrom(start), tp)
}

func (p *Parser) parsePostfixType() ast.TSType {
	start := p.start()
	typ := p.parsePrimaryType()

	for p.at(lexer.TokenLBracket) && !p.tok.NewlineBefore {
		p.next()
		if p.eat(lexer.TokenRBracket) {
			typ = ast.NewTSArrayType(p.spanFrom(start), typ)
			continue
		}
		index := p.parseType()
		p.expect(lexer.TokenRBracket)
		typ = ast.NewTSIndexedAccessType(p.spanFrom(start), typ, index)
	}

	return typ
}

func (p *Parser) parsePrimaryType() ast.TSType {
	start := p.start()
	tok := p.tok

	switch tok.Type {
	case lexer.TokenLParen:
		p.next()
		inner := p.parseType()
		p.expect(lexer.TokenRParen)
		return ast.NewTSParenthesizedType(p.spanFrom(start), inner)

	case lexer.TokenLBracket:
		return p.parseTupleType()

	case lexer.TokenLBrace:
		if p.isMappedTypeStart() {
			return p.parseMappedType()
		}
		members := p.parseTypeMembers()
		return ast.NewTSTypeLiteral(p.spanFrom(start), members)

	case lexer.TokenTypeof:
		p.next()
		name := p.parseEntityName()
		var args *ast.TSTypeParameterInstantiation
		if p.at(lexer.TokenLt) && !p.tok.NewlineBefore {
			args = p.parseTypeArguments()
		}
		return ast.NewTSTypeQuery(p.spanFrom(start), name, args)

	case lexer.TokenVoid:
		p.next()
		return ast.NewTSKeywordType(tok.Span, "void")

	case lexer.TokenNull:
		p.next()
		return ast.NewTSKeywordType(tok.Span, "null")

	case lexer.TokenThis:
		p.next()
		return ast.NewTSThisType(tok.Span)

	case lexer.TokenTrue, lexer.TokenFalse:
		p.next()
		lit := ast.NewBooleanLiteral(tok.Span, tok.Type == lexer.TokenTrue)
		return ast.NewTSLiteralType(tok.Span, lit)

	case lexer.TokenString:
		lit := p.parseStringLiteral()
		return ast.NewTSLiteralType(lit.Span, lit)

	case lexer.TokenMinus:
		if p.peek().Type.IsNumeric() {
			p.next()
			num := p.parseNumber()
			neg := ast.NewUnaryExpression(p.spanFrom(start), lexer.TokenMinus, num)
			return ast.NewTSLiteralType(p.spanFrom(start), neg)
		}

	case lexer.TokenTemplateNoSubstitution, lexer.TokenTemplateHead:
		return p.parseTemplateType()

	case lexer.TokenConst:
		// `as const`
		p.next()
		id := ast.NewIdentifier(tok.Span, "const", nil, false)
		return ast.NewTSTypeReference(tok.Span, id, nil)
	}

	if tok.Type.IsNumeric() {
		num := p.parseNumber()
		return ast.NewTSLiteralType(num.GetSpan(), num)
	}

	if isIdentifierToken(tok.Type) {
		if tok.Type == lexer.TokenIdentifier && typeKeywords[tok.Value] && !tok.Escaped && p.peek().Type != lexer.TokenDot {
			p.next()
			return ast.NewTSKeywordType(tok.Span, tok.Value)
		}
		name := p.parseEntityName()
		var args *ast.TSTypeParameterInstantiation
		if p.at(lexer.TokenLt) && !p.tok.NewlineBefore {
			args = p.parseTypeArguments()
		}
		return ast.NewTSTypeReference(p.spanFrom(start), name, args)
	}

	p.unexpected()
	return nil
}

// parseEntityName parses `A.B.C` as nested qualified names.
func (p *Parser) parseEntityName() ast.Node {
	start := p.start()
	tok := p.tok
	if !isIdentifierToken(tok.Type) && tok.Type != lexer.TokenThis {
		p.unexpected()
	}
	p.next()

	var name ast.Node = ast.NewIdentifier(tok.Span, tok.Value, nil, false)
	if tok.Type == lexer.TokenThis {
		name = ast.NewIdentifier(tok.Span, "this", nil, false)
	}
	for p.at(lexer.TokenDot) {
		p.next()
		right := p.tok
		if !right.Type.IsIdentifierName() {
			p.unexpected()
		}
		p.next()
		name = ast.NewTSQualifiedName(p.spanFrom(start), name, ast.NewIdentifier(right.Span, right.Value, nil, false))
	}

	return name
}

func (p *Parser) parseTemplateType() ast.TSType {
	start := p.start()

	var (
		quasis []*ast.TemplateElement
		types  []ast.TSType
	)
	for {
		tok := p.tok
		tail := tok.Type == lexer.TokenTemplateNoSubstitution || tok.Type == lexer.TokenTemplateTail
		if tok.BadEscape {
			p.report(diagnostic.CodeTemplateInvalidEscape, tok.Span)
		}
		quasis = append(quasis, ast.NewTemplateElement(tok.Span, lexer.TemplateRaw(tok), tok.Value, tok.BadEscape, tail))
		p.next()
		if tail {
			break
		}

		types = append(types, p.parseType())
		if !p.at(lexer.TokenTemplateMiddle) && !p.at(lexer.TokenTemplateTail) {
			p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, "}", describe(p.tok))
		}
	}

	return ast.NewTSTemplateLiteralType(p.spanFrom(start), quasis, types)
}

func (p *Parser) parseTupleType() ast.TSType {
	start := p.start()
	p.expect(lexer.TokenLBracket)

	var elems []ast.TSType
	for !p.at(lexer.TokenRBracket) {
		elems = append(elems, p.parseTupleElement())
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBracket)

	return ast.NewTSTupleType(p.spanFrom(start), elems)
}

// parseTupleElement parses `T`, `T?`, `...T` or a labelled `name?: T`.
func (p *Parser) parseTupleElement() ast.TSType {
	start := p.start()
	rest := p.eat(lexer.TokenEllipsis)

	var elem ast.TSType
	if p.tok.Type.IsIdentifierName() && p.isTupleLabel() {
		tok := p.tok
		p.next()
		label := ast.NewIdentifier(tok.Span, tok.Value, nil, false)
		optional := p.eat(lexer.TokenQuestion)
		p.expect(lexer.TokenColon)
		typ := p.parseType()
		elem = ast.NewTSNamedTupleMember(p.spanFrom(start), label, typ, optional)
	} else {
		elem = p.parseType()
		if !rest && p.at(lexer.TokenQuestion) {
			p.next()
			elem = ast.NewTSOptionalType(p.spanFrom(start), elem)
		}
	}

	if rest {
		return ast.NewTSRestType(p.spanFrom(start), elem)
	}
	return elem
}

func (p *Parser) isTupleLabel() bool {
	la := p.peek()
	if la.Type == lexer.TokenColon {
		return true
	}
	return la.Type == lexer.TokenQuestion && p.lx.LookaheadN(2).Type == lexer.TokenColon
}

// isMappedTypeStart reports whether the `{` at the current token opens
// `{ [K in T]: V }`.
func (p *Parser) isMappedTypeStart() bool {
	n := 1
	la := p.lx.LookaheadN(n)
	if la.Type == lexer.TokenPlus || la.Type == lexer.TokenMinus {
		n++
		la = p.lx.LookaheadN(n)
		return la.Type == lexer.TokenIdentifier && la.Value == "readonly"
	}
	if la.Type == lexer.TokenIdentifier && la.Value == "readonly" {
		n++
		la = p.lx.LookaheadN(n)
	}
	if la.Type != lexer.TokenLBracket {
		return false
	}
	return p.lx.LookaheadN(n+1).Type.IsIdentifierName() && p.lx.LookaheadN(n+2).Type == lexer.TokenIn
}

// mappedModifier reads an optional `+`, `-` or bare marker before word.
func (p *Parser) mappedModifier(bare func() bool) string {
	if p.at(lexer.TokenPlus) || p.at(lexer.TokenMinus) {
		sign := p.tok.Literal
		p.next()
		if !bare() {
			p.unexpected()
		}
		return sign
	}
	if bare() {
		return "true"
	}
	return ""
}

func (p *Parser) parseMappedType() ast.TSType {
	start := p.start()
	p.expect(lexer.TokenLBrace)

	readonly := p.mappedModifier(func() bool { return p.eatContextual("readonly") })

	p.expect(lexer.TokenLBracket)
	tpStart := p.start()
	name := p.tok
	p.next()
	p.expect(lexer.TokenIn)
	constraint := p.parseType()
	tp := ast.NewTSTypeParameter(p.spanFrom(tpStart), name.Value, constraint, nil, false, false, false)

	var nameType ast.TSType
	if p.eatContextual("as") {
		nameType = p.parseType()
	}
	p.expect(lexer.TokenRBracket)

	optional := p.mappedModifier(func() bool { return p.eat(lexer.TokenQuestion) })

	var typ ast.TSType
	if p.eat(lexer.TokenColon) {
		typ = p.parseType()
	}
	if !p.eat(lexer.TokenSemicolon) {
		p.eat(lexer.TokenComma)
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewTSMappedType(p.spanFrom(start), tp, nameType, typ, readonly, optional)
}

// ===== Type members =====

// parseTypeMembers parses the `{ ... }` body of an interface or type
// literal.
func (p *Parser) parseTypeMembers() []ast.Node {
	p.expect(lexer.TokenLBrace)

	var members []ast.Node
	for !p.at(lexer.TokenRBrace) {
		if p.at(lexer.TokenEOF) {
			p.unexpected()
		}
		members = append(members, p.parseTypeMember())

		if !p.eat(lexer.TokenSemicolon) && !p.eat(lexer.TokenComma) &&
			!p.at(lexer.TokenRBrace) && !p.tok.NewlineBefore {
			p.unexpected()
		}
	}
	p.expect(lexer.TokenRBrace)

	return members
}

func (p *Parser) parseTypeMember() ast.Node {
	start := p.start()

	if p.at(lexer.TokenLParen) || p.at(lexer.TokenLt) {
		typeParams, params, ret := p.parseTypeMemberSignature()
		return ast.NewTSCallSignatureDeclaration(p.spanFrom(start), typeParams, params, ret)
	}
	if p.at(lexer.TokenNew) {
		if la := p.peek(); la.Type == lexer.TokenLParen || la.Type == lexer.TokenLt {
			p.next()
			typeParams, params, ret := p.parseTypeMemberSignature()
			return ast.NewTSConstructSignatureDeclaration(p.spanFrom(start), typeParams, params, ret)
		}
	}

	readonly := false
	if p.isContextual("readonly") && startsPropertyName(p.peek()) && p.peek().Type != lexer.TokenMul {
		readonly = true
		p.next()
	}

	if p.at(lexer.TokenLBracket) && p.isIndexSignature() {
		return p.parseIndexSignature(start, readonly, false)
	}

	kind := ast.MethodNormal
	if (p.isContextual("get") || p.isContextual("set")) && p.followsMemberName(false) {
		kind = ast.MethodGet
		if p.tok.Value == "set" {
			kind = ast.MethodSet
		}
		p.next()
	}

	key, computed := p.parsePropertyKey(false)
	optional := p.eat(lexer.TokenQuestion)

	if p.at(lexer.TokenLParen) || p.at(lexer.TokenLt) {
		typeParams, params, ret := p.parseTypeMemberSignature()
		return ast.NewTSMethodSignature(p.spanFrom(start), key, kind, typeParams, params, ret, computed, optional)
	}

	var ann *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		ann = p.parseTypeAnnotation()
	}
	return ast.NewTSPropertySignature(p.spanFrom(start), key, ann, computed, optional, readonly)
}

// parseTypeMemberSignature parses `<T>(params): R` of a type member.
func (p *Parser) parseTypeMemberSignature() (*ast.TSTypeParameterDeclaration, []ast.Pattern, *ast.TSTypeAnnotation) {
	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	params := p.parseSignatureParams()
	var ret *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		ret = p.parseReturnType()
	}
	return typeParams, params, ret
}

// parseSignatureParams parses the parameters of a signature that has no
// body. Names are not declared and the enclosing function's parameter
// state is left alone.
func (p *Parser) parseSignatureParams() []ast.Pattern {
	p.expect(lexer.TokenLParen)

	var params []ast.Pattern
	for !p.at(lexer.TokenRParen) {
		start := p.start()

		var target ast.Pattern
		switch {
		case p.at(lexer.TokenEllipsis):
			target = p.parseRestBinding()
		case p.at(lexer.TokenThis):
			tok := p.tok
			p.next()
			target = ast.NewIdentifier(tok.Span, "this", nil, false)
		default:
			target = p.parseBindingTarget()
		}

		if _, rest := target.(*ast.RestElement); !rest {
			optional := p.eat(lexer.TokenQuestion)
			var ann *ast.TSTypeAnnotation
			if p.at(lexer.TokenColon) {
				ann = p.parseTypeAnnotation()
			}
			p.annotate(target, ann, optional, start)
			if p.eat(lexer.TokenAssign) {
				right := p.parseDefaultValue()
				target = ast.NewAssignmentPattern(p.spanFrom(start), target, right)
			}
		}
		params = append(params, target)

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRParen)

	return params
}

// isIndexSignature reports whether the `[` at the current token opens
// `[key: T]` rather than a computed name.
func (p *Parser) isIndexSignature() bool {
	if !p.lx.LookaheadN(1).Type.IsIdentifierName() {
		return false
	}
	switch p.lx.LookaheadN(2).Type {
	case lexer.TokenColon, lexer.TokenComma:
		return true
	}
	return false
}

func (p *Parser) parseIndexSignature(start position.Position, readonly, static bool) *ast.TSIndexSignature {
	p.expect(lexer.TokenLBracket)

	var params []*ast.Identifier
	for {
		tok := p.tok
		if !tok.Type.IsIdentifierName() {
			p.unexpected()
		}
		p.next()
		id := ast.NewIdentifier(tok.Span, tok.Value, nil, false)
		if p.at(lexer.TokenColon) {
			id.TypeAnnotation = p.parseTypeAnnotation()
			id.Span = p.spanFrom(tok.Span.Start)
		}
		params = append(params, id)
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBracket)

	var ann *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		ann = p.parseTypeAnnotation()
	}

	return ast.NewTSIndexSignature(p.spanFrom(start), params, ann, readonly, static)
}

// ===== Type parameters and arguments =====

// relexGreater splits a `>>`, `>=` or similar token so that a `>` closing
// a type list can be matched.
func (p *Parser) relexGreater() {
	switch p.tok.Type {
	case lexer.TokenShr, lexer.TokenUShr, lexer.TokenGe, lexer.TokenShrAssign, lexer.TokenUShrAssign:
		p.setToken(p.lx.ReLexGreater())
	}
}

// parseTypeParameters parses `<const in out T extends C = D, ...>`.
func (p *Parser) parseTypeParameters() *ast.TSTypeParameterDeclaration {
	start := p.start()
	p.expect(lexer.TokenLt)

	var params []*ast.TSTypeParameter
	for {
		p.relexGreater()
		if p.at(lexer.TokenGt) {
			break
		}
		pstart := p.start()

		var in, out, isConst bool
	modifiers:
		for {
			la := p.peek()
			if !isIdentifierToken(la.Type) && la.Type != lexer.TokenIn {
				break
			}
			switch {
			case p.at(lexer.TokenConst) && !isConst:
				isConst = true
			case p.at(lexer.TokenIn) && !in:
				in = true
			case p.isContextual("out") && !out:
				out = true
			default:
				break modifiers
			}
			p.next()
		}
		if !p.isIdentifier() {
			p.unexpected()
		}
		tok := p.tok
		p.next()

		var constraint, def ast.TSType
		if p.eat(lexer.TokenExtends) {
			constraint = p.parseType()
		}
		if p.eat(lexer.TokenAssign) {
			def = p.parseType()
		}
		params = append(params, ast.NewTSTypeParameter(p.spanFrom(pstart), tok.Value, constraint, def, in, out, isConst))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	if len(params) == 0 {
		p.unexpected()
	}
	p.expectGreater()

	return ast.NewTSTypeParameterDeclaration(p.spanFrom(start), params)
}

// parseTypeArguments parses `<T, U>`.
func (p *Parser) parseTypeArguments() *ast.TSTypeParameterInstantiation {
	start := p.start()
	p.expect(lexer.TokenLt)

	var params []ast.TSType
	for {
		p.relexGreater()
		if p.at(lexer.TokenGt) {
			break
		}
		params = append(params, p.parseType())
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	if len(params) == 0 {
		p.unexpected()
	}
	p.expectGreater()

	return ast.NewTSTypeParameterInstantiation(p.spanFrom(start), params)
}

// tryTypeArgumentsInExpression reads `<T>` after an expression when what
// follows makes it a type argument list; `a < b > c` stays a comparison.
func (p *Parser) tryTypeArgumentsInExpression() (*ast.TSTypeParameterInstantiation, bool) {
	n, ok := p.TryParse(func() ast.Node {
		args := p.parseTypeArguments()
		if !p.canFollowTypeArguments() {
			p.unexpected()
		}
		return args
	})
	if !ok {
		return nil, false
	}
	return n.(*ast.TSTypeParameterInstantiation), true
}

func (p *Parser) canFollowTypeArguments() bool {
	if p.tok.NewlineBefore {
		return true
	}
	switch p.tok.Type {
	case lexer.TokenLParen, lexer.TokenTemplateNoSubstitution, lexer.TokenTemplateHead,
		lexer.TokenRParen, lexer.TokenRBracket, lexer.TokenRBrace, lexer.TokenComma,
		lexer.TokenSemicolon, lexer.TokenDot, lexer.TokenQuestionDot, lexer.TokenColon,
		lexer.TokenQuestion, lexer.TokenEq, lexer.TokenStrictEq, lexer.TokenNotEq,
		lexer.TokenStrictNotEq, lexer.TokenLogicalAnd, lexer.TokenLogicalOr,
		lexer.TokenNullish, lexer.TokenBitXor, lexer.TokenBitAnd, lexer.TokenBitOr,
		lexer.TokenEOF:
		return true
	}
	return false
}

// parseTypeAssertion parses the angle-bracket assertion `<T>expr`.
func (p *Parser) parseTypeAssertion() ast.Expression {
	start := p.start()
	p.expect(lexer.TokenLt)
	typ := p.parseType()
	p.expectGreater()
	expr := p.parseUnary()

	return ast.NewTSTypeAssertion(p.spanFrom(start), typ, expr)
}

// parseHeritageList parses the names after `implements` or an interface's
// `extends`.
func (p *Parser) parseHeritageList() []*ast.TSExpressionWithTypeArguments {
	var out []*ast.TSExpressionWithTypeArguments
	for {
		start := p.start()
		name := p.parseEntityName()
		var args *ast.TSTypeParameterInstantiation
		if p.at(lexer.TokenLt) {
			args = p.parseTypeArguments()
		}
		out = append(out, ast.NewTSExpressionWithTypeArguments(p.spanFrom(start), name, args))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	return out
}

// ===== Declarations =====

// parseTSDeclaration parses a declaration introduced by a contextual
// keyword. It returns nil when the current word is an ordinary identifier.
func (p *Parser) parseTSDeclaration(start position.Position) ast.Statement {
	if p.tok.Escaped {
		return nil
	}
	la := p.peek()
	if la.NewlineBefore {
		return nil
	}

	switch p.tok.Value {
	case "type":
		if isIdentifierToken(la.Type) {
			return p.parseTypeAlias(start, false)
		}
	case "interface":
		if isIdentifierToken(la.Type) {
			return p.parseInterface(start, false)
		}
	case "abstract":
		if la.Type == lexer.TokenClass {
			p.next()
			return p.parseClassStatement(start, nil, true, false)
		}
	case "declare":
		if startsDeclaration(la) {
			p.next()
			return p.parseDeclare(start)
		}
	}
	return nil
}

func startsDeclaration(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.TokenVar, lexer.TokenLet, lexer.TokenConst, lexer.TokenFunction,
		lexer.TokenClass, lexer.TokenEnum:
		return true
	case lexer.TokenIdentifier:
		switch tok.Value {
		case "type", "interface", "abstract", "async":
			return true
		}
	}
	return false
}

// parseDeclare parses what follows `declare`. The span of the result is
// widened back to start.
func (p *Parser) parseDeclare(start position.Position) ast.Statement {
	var decl ast.Statement
	switch {
	case p.at(lexer.TokenConst) && p.peek().Type == lexer.TokenEnum:
		decl = p.parseEnum(start, true)
	case p.at(lexer.TokenVar):
		decl = p.parseVarStatement(declVar, true)
	case p.at(lexer.TokenConst):
		decl = p.parseVarStatement(declConst, true)
	case p.at(lexer.TokenLet):
		decl = p.parseVarStatement(declLet, true)
	case p.at(lexer.TokenFunction):
		decl = p.parseFunction(start, false, fnDeclare).(ast.Statement)
	case p.isAsyncFunction():
		p.next()
		decl = p.parseFunction(start, true, fnDeclare).(ast.Statement)
	case p.at(lexer.TokenClass):
		decl = p.parseClassStatement(start, nil, false, true)
	case p.isContextual("abstract") && p.peek().Type == lexer.TokenClass:
		p.next()
		decl = p.parseClassStatement(start, nil, true, true)
	case p.at(lexer.TokenEnum):
		decl = p.parseEnum(start, true)
	case p.isContextual("type"):
		decl = p.parseTypeAlias(start, true)
	case p.isContextual("interface"):
		decl = p.parseInterface(start, true)
	default:
		p.unexpected()
	}

	if s, ok := decl.(interface{ SetSpan(position.Span) }); ok {
		s.SetSpan(p.spanFrom(start))
	}
	return decl
}

// declareTypeName records a type-level name. Names declared in program
// scope may be exported without a value binding.
func (p *Parser) declareTypeName(id *ast.Identifier) {
	if lexer.LookupKeyword(id.Name) != lexer.TokenIdentifier || typeKeywords[id.Name] {
		p.report(diagnostic.CodeUnexpectedReserved, id.Span, id.Name)
	}
	if p.symbols.Depth() == 1 {
		p.typeNames[id.Name] = true
	}
}

func (p *Parser) parseTypeAlias(start position.Position, declare bool) ast.Statement {
	p.next()
	id := p.parseBindingIdentifier()
	p.declareTypeName(id)

	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	p.expect(lexer.TokenAssign)
	typ := p.parseType()
	p.semicolon()

	return ast.NewTSTypeAliasDeclaration(p.spanFrom(start), id, typeParams, typ, declare)
}

func (p *Parser) parseInterface(start position.Position, declare bool) ast.Statement {
	p.next()
	id := p.parseBindingIdentifier()
	p.declareTypeName(id)

	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	var extends []*ast.TSExpressionWithTypeArguments
	if p.eat(lexer.TokenExtends) {
		extends = p.parseHeritageList()
	}

	bodyStart := p.start()
	members := p.parseTypeMembers()
	body := ast.NewTSInterfaceBody(p.spanFrom(bodyStart), members)

	return ast.NewTSInterfaceDeclaration(p.spanFrom(start), id, typeParams, extends, body, declare)
}

// parseEnum parses `enum E { ... }` or `const enum E { ... }`.
func (p *Parser) parseEnum(start position.Position, declare bool) ast.Statement {
	isConst := p.eat(lexer.TokenConst)
	p.expect(lexer.TokenEnum)
	id := p.parseBindingIdentifier()
	p.declareTypeName(id)

	p.expect(lexer.TokenLBrace)
	var members []*ast.TSEnumMember
	for !p.at(lexer.TokenRBrace) {
		mstart := p.start()

		var name ast.Node
		switch tok := p.tok; {
		case tok.Type == lexer.TokenString:
			name = p.parseStringLiteral()
		case tok.Type.IsIdentifierName():
			p.next()
			name = ast.NewIdentifier(tok.Span, tok.Value, nil, false)
		default:
			p.unexpected()
		}

		var init ast.Expression
		if p.eat(lexer.TokenAssign) {
			init = p.parseAssignAllowIn()
		}
		members = append(members, ast.NewTSEnumMember(p.spanFrom(mstart), name, init))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewTSEnumDeclaration(p.spanFrom(start), id, members, isConst, declare)
}
