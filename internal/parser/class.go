package parser

import (
	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
	"github.com/orizon-lang/ecmaparse/internal/scope"
)

// memberModifiers are the words that may precede a class member name.
// Only static and accessor exist outside TypeScript.
var memberModifiers = map[string]bool{
	"static":    true,
	"accessor":  true,
	"public":    true,
	"private":   true,
	"protected": true,
	"readonly":  true,
	"abstract":  true,
	"override":  true,
	"declare":   true,
}

// ===== Classes =====

func (p *Parser) parseClassStatement(start position.Position, decorators []*ast.Decorator, abstract, declare bool) ast.Statement {
	cls := p.parseClass(decorators, fnDeclaration, abstract, declare)
	return ast.NewClassDeclaration(p.spanFrom(start), cls)
}

func (p *Parser) parseClassExpression(start position.Position, decorators []*ast.Decorator) ast.Expression {
	cls := p.parseClass(decorators, fnExpression, false, false)
	return ast.NewClassExpression(p.spanFrom(start), cls)
}

// parseClass parses a class from the `class` keyword. Declarations bind
// their name in the enclosing scope; an expression's name is only
// checked.
func (p *Parser) parseClass(decorators []*ast.Decorator, ctx fnContext, abstract, declare bool) ast.Class {
	if !p.at(lexer.TokenClass) && decorators != nil {
		p.fatal(diagnostic.CodeDecoratorPosition, decorators[0].Span)
	}
	if p.tok.Escaped {
		p.fatal(diagnostic.CodeEscapedKeyword, p.tok.Span)
	}
	p.expect(lexer.TokenClass)

	cls := ast.Class{Decorators: decorators, Abstract: abstract, Declare: declare}

	if p.isIdentifier() && !(p.ts && p.isContextual("implements")) {
		cls.ID = p.parseBindingIdentifier()
		if ctx == fnExpression {
			p.checkBindingName(cls.ID.Name, cls.ID.Span, declClass)
		} else {
			p.declareName(cls.ID.Name, cls.ID.Span, declClass)
		}
	} else if ctx == fnDeclaration {
		p.unexpected()
	}

	p.lexical.EnterClass(false, abstract)
	defer p.lexical.Exit()
	p.symbols.EnterClass()
	closed := false
	defer func() {
		if !closed {
			p.symbols.Exit()
		}
	}()

	if p.ts && p.at(lexer.TokenLt) {
		cls.TypeParameters = p.parseTypeParameters()
	}

	if p.eat(lexer.TokenExtends) {
		p.lexical.Top().Extends = true
		// the heritage is evaluated outside the class body
		p.lexical.EnterPropertyName()
		cls.SuperClass = p.parseLHS()
		p.lexical.ExitPropertyName()
		if p.ts && p.at(lexer.TokenLt) {
			cls.SuperTypeArguments = p.parseTypeArguments()
		}
	}
	if p.ts && p.eatContextual("implements") {
		cls.Implements = p.parseHeritageList()
	}

	cls.Body = p.parseClassBody()

	closed = true
	for _, ref := range p.symbols.Exit() {
		p.report(diagnostic.CodeUndefinedPrivateName, ref.Span, ref.Name)
	}

	return cls
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	start := p.start()
	p.expect(lexer.TokenLBrace)

	var body []ast.ClassElement
	for !p.at(lexer.TokenRBrace) {
		if p.eat(lexer.TokenSemicolon) {
			continue
		}
		if p.at(lexer.TokenEOF) {
			p.unexpected()
		}
		body = append(body, p.parseClassMember())
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewClassBody(p.spanFrom(start), body)
}

// ===== Members =====

// isMemberModifier reports whether the current word modifies the member
// that follows rather than naming it.
func (p *Parser) isMemberModifier() bool {
	if p.tok.Type != lexer.TokenIdentifier || p.tok.Escaped || !memberModifiers[p.tok.Value] {
		return false
	}
	word := p.tok.Value
	if !p.ts && word != "static" && word != "accessor" {
		return false
	}

	la := p.peek()
	if word != "static" && la.NewlineBefore {
		return false
	}
	switch la.Type {
	case lexer.TokenLParen, lexer.TokenAssign, lexer.TokenSemicolon, lexer.TokenRBrace,
		lexer.TokenLt, lexer.TokenColon, lexer.TokenQuestion, lexer.TokenNot, lexer.TokenEOF:
		return false
	}
	return startsPropertyName(la)
}

// followsMemberName reports whether a get, set or async word is followed
// by a member name, making it a modifier.
func (p *Parser) followsMemberName(allowStar bool) bool {
	la := p.peek()
	if la.Type == lexer.TokenMul {
		return allowStar
	}
	return startsPropertyName(la)
}

func (p *Parser) parseClassMember() ast.ClassElement {
	start := p.start()

	var decorators []*ast.Decorator
	if p.at(lexer.TokenAt) {
		decorators = p.parseDecorators()
	}

	if p.isContextual("static") && p.peek().Type == lexer.TokenLBrace {
		if decorators != nil {
			p.report(diagnostic.CodeDecoratorPosition, decorators[0].Span)
		}
		return p.parseStaticBlock()
	}

	var (
		mods     ast.Modifiers
		static   bool
		accessor bool
		seen     = make(map[string]bool)
	)
	for p.isMemberModifier() {
		tok := p.tok
		p.next()
		if seen[tok.Value] {
			p.report(diagnostic.CodeDuplicateModifier, tok.Span, tok.Value)
		}
		seen[tok.Value] = true

		switch tok.Value {
		case "static":
			static = true
		case "accessor":
			if !p.ts && !p.cfg.Plugins.Decorators {
				p.report(diagnostic.CodeInvalidModifier, tok.Span, tok.Value)
			}
			accessor = true
		case "public", "private", "protected":
			if mods.Accessibility != "" {
				p.report(diagnostic.CodeDuplicateModifier, tok.Span, tok.Value)
			}
			mods.Accessibility = tok.Value
		case "readonly":
			mods.Readonly = true
		case "abstract":
			mods.Abstract = true
		case "override":
			mods.Override = true
		case "declare":
			mods.Declare = true
		}
	}

	if p.ts && p.at(lexer.TokenLBracket) && p.isIndexSignature() {
		sig := p.parseIndexSignature(start, mods.Readonly, static)
		p.semicolon()
		sig.Span = p.spanFrom(start)
		return sig
	}

	var (
		async     bool
		generator bool
		kind      = ast.MethodNormal
	)
	if p.isContextual("async") && !p.peek().NewlineBefore && p.followsMemberName(true) {
		async = true
		p.next()
	}
	if p.eat(lexer.TokenMul) {
		generator = true
	}
	if !async && !generator && (p.isContextual("get") || p.isContextual("set")) && p.followsMemberName(false) {
		kind = ast.MethodGet
		if p.tok.Value == "set" {
			kind = ast.MethodSet
		}
		p.next()
	}

	keyTok := p.tok
	key, computed := p.parsePropertyKey(true)
	private, isPrivate := key.(*ast.PrivateName)
	if isPrivate && private.Name == "constructor" {
		p.report(diagnostic.CodePrivateConstructor, keyTok.Span)
	}

	if p.ts && p.at(lexer.TokenQuestion) {
		mods.Optional = true
		p.next()
	}

	if mods.Abstract && !p.lexical.ClassAbstract() {
		p.report(diagnostic.CodeAbstractMember, keyTok.Span)
	}

	isMethod := p.at(lexer.TokenLParen) || (p.ts && p.at(lexer.TokenLt)) ||
		async || generator || kind != ast.MethodNormal
	if isMethod {
		return p.parseClassMethod(start, decorators, key, keyTok, methodFlags{
			async:     async,
			generator: generator,
			kind:      kind,
			computed:  computed,
			static:    static,
			accessor:  accessor,
			mods:      mods,
		})
	}

	return p.parseClassField(start, decorators, key, keyTok, computed, static, accessor, mods)
}

type methodFlags struct {
	async     bool
	generator bool
	kind      ast.MethodKind
	computed  bool
	static    bool
	accessor  bool
	mods      ast.Modifiers
}

// keyNamed reports whether a non-computed key spells name.
func keyNamed(key ast.Expression, computed bool, name string) bool {
	if computed {
		return false
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name == name
	case *ast.StringLiteral:
		return k.Value == name
	}
	return false
}

func (p *Parser) parseClassMethod(start position.Position, decorators []*ast.Decorator, key ast.Expression, keyTok lexer.Token, f methodFlags) ast.ClassElement {
	kind := f.kind

	if !f.static && keyNamed(key, f.computed, "constructor") {
		switch {
		case kind == ast.MethodGet:
			p.report(diagnostic.CodeConstructorSpecial, keyTok.Span, "a getter")
		case kind == ast.MethodSet:
			p.report(diagnostic.CodeConstructorSpecial, keyTok.Span, "a setter")
		case f.async:
			p.report(diagnostic.CodeConstructorSpecial, keyTok.Span, "an async method")
		case f.generator:
			p.report(diagnostic.CodeConstructorSpecial, keyTok.Span, "a generator")
		default:
			kind = ast.MethodConstructor
		}
		if decorators != nil {
			p.report(diagnostic.CodeDecoratorConstructor, decorators[0].Span)
		}
	}
	if f.static && keyNamed(key, f.computed, "prototype") {
		p.report(diagnostic.CodeStaticPrototype, keyTok.Span)
	}
	if f.accessor {
		p.report(diagnostic.CodeInvalidModifier, keyTok.Span, "accessor")
	}
	if kind == ast.MethodConstructor && f.mods.Readonly {
		p.report(diagnostic.CodeInvalidModifier, keyTok.Span, "readonly")
	}

	value := p.parseMethod(f.async, f.generator, kind, p.ts)
	if kind == ast.MethodConstructor && value.Body != nil && p.lexical.TestAndSetCtor() {
		p.report(diagnostic.CodeDuplicateConstructor, keyTok.Span)
	}

	if private, ok := key.(*ast.PrivateName); ok {
		p.requireFeature(config.FeaturePrivateMethods, keyTok.Span)
		p.definePrivate(private, privateKindOf(kind, f.static))
	}

	return ast.NewMethodDefinition(p.spanFrom(start), decorators, key, value, kind, f.computed, f.static, f.mods)
}

func (p *Parser) parseClassField(start position.Position, decorators []*ast.Decorator, key ast.Expression, keyTok lexer.Token, computed, static, accessor bool, mods ast.Modifiers) ast.ClassElement {
	p.requireFeature(config.FeatureClassFields, keyTok.Span)

	if keyNamed(key, computed, "constructor") {
		p.report(diagnostic.CodeFieldConstructor, keyTok.Span)
	}
	if static && keyNamed(key, computed, "prototype") {
		p.report(diagnostic.CodeStaticPrototype, keyTok.Span)
	}

	prop := ast.ClassProperty{
		Decorators: decorators,
		Key:        key,
		Computed:   computed,
		Static:     static,
		Modifiers:  mods,
	}
	if p.ts && p.at(lexer.TokenNot) {
		prop.Definite = true
		p.next()
	}
	if p.ts && p.at(lexer.TokenColon) {
		prop.TypeAnnotation = p.parseTypeAnnotation()
	}
	if p.eat(lexer.TokenAssign) {
		prop.Value = p.parseFieldInitializer()
	}
	p.semicolon()

	if private, ok := key.(*ast.PrivateName); ok {
		p.definePrivate(private, scope.PrivateOther)
	}

	if accessor {
		return ast.NewAccessorProperty(p.spanFrom(start), prop)
	}
	return ast.NewPropertyDefinition(p.spanFrom(start), prop)
}

// parseFieldInitializer parses a field value. It runs with the class frame
// on top, where `arguments` is rejected and super properties are allowed.
func (p *Parser) parseFieldInitializer() ast.Expression {
	p.symbols.EnterFunction()
	defer p.symbols.Exit()
	p.arrows.EnterBlank()
	defer p.arrows.Exit()

	return p.parseAssignAllowIn()
}

func (p *Parser) parseStaticBlock() ast.ClassElement {
	start := p.start()
	p.next()
	p.requireFeature(config.FeatureClassStaticBlock, p.spanFrom(start))

	p.lexical.EnterStaticBlock()
	defer p.lexical.Exit()
	p.symbols.EnterFunction()
	defer p.symbols.Exit()
	p.arrows.EnterBlank()
	defer p.arrows.Exit()

	p.expect(lexer.TokenLBrace)
	var body []ast.Statement
	for !p.at(lexer.TokenRBrace) {
		if p.at(lexer.TokenEOF) {
			p.unexpected()
		}
		body = append(body, p.parseStatementListItem(false))
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewStaticBlock(p.spanFrom(start), body)
}

// ===== Private names =====

func privateKindOf(kind ast.MethodKind, static bool) scope.PrivateKind {
	switch {
	case kind == ast.MethodGet && static:
		return scope.PrivateStaticGet
	case kind == ast.MethodSet && static:
		return scope.PrivateStaticSet
	case kind == ast.MethodGet:
		return scope.PrivateGet
	case kind == ast.MethodSet:
		return scope.PrivateSet
	}
	return scope.PrivateOther
}

func (p *Parser) definePrivate(name *ast.PrivateName, kind scope.PrivateKind) {
	if prev, ok := p.symbols.DefinePrivate(name.Name, kind, name.Span); !ok {
		p.reportRelated(diagnostic.CodeDuplicatePrivateName, name.Span, prev, "first declared here", name.Name)
	}
}

// ===== Decorators =====

// parseDecorators parses one or more `@expr` decorators.
func (p *Parser) parseDecorators() []*ast.Decorator {
	if !p.ts && !p.cfg.Plugins.Decorators {
		p.unexpected()
	}

	var out []*ast.Decorator
	for p.at(lexer.TokenAt) {
		start := p.start()
		p.next()
		expr := p.parseDecoratorExpression()
		out = append(out, ast.NewDecorator(p.spanFrom(start), expr))
	}
	return out
}

// parseDecoratorExpression parses `(expr)` or a dotted name with an
// optional argument list.
func (p *Parser) parseDecoratorExpression() ast.Expression {
	start := p.start()
	if p.eat(lexer.TokenLParen) {
		expr := p.parseExpressionAllowIn()
		p.expect(lexer.TokenRParen)
		return expr
	}

	var expr ast.Expression = p.parseIdentifierReference()
	for p.eat(lexer.TokenDot) {
		prop := p.parseMemberProperty()
		expr = ast.NewMemberExpression(p.spanFrom(start), expr, prop, false, false)
	}
	if p.at(lexer.TokenLParen) {
		args, _ := p.parseArguments()
		expr = ast.NewCallExpression(p.spanFrom(start), expr, args, nil, false)
	}
	return expr
}
