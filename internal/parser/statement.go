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

// stmtContext says where a statement appears, which decides what kinds
// of declarations it may be.
type stmtContext int

const (
	// stmtList is a block, function body or program.
	stmtList stmtContext = iota
	// stmtIf is the consequent or alternate of an if statement.
	stmtIf
	// stmtLoop is the body of a loop or with statement.
	stmtLoop
	// stmtLabel is the body of a labelled statement outside any loop body.
	stmtLabel
)

// ===== Program =====

func (p *Parser) parseProgram() *ast.Program {
	var hashbang string
	if strings.HasPrefix(p.source, "#!") {
		end := strings.IndexAny(p.source, "\n\r\u2028\u2029")
		if end < 0 {
			end = len(p.source)
		}
		hashbang = p.source[2:end]
		file := p.File()
		p.requireFeature(config.FeatureHashbang, position.NewSpan(file.PositionFromOffset(0), file.PositionFromOffset(end)))
	}

	p.lexical.EnterProgram(p.module, p.module)
	p.symbols.EnterProgram(p.module)
	p.stricts.EnterCapture()
	p.arrows.EnterBlank()

	body := p.parseBody(lexer.TokenEOF, true)

	p.reportPendingCovers()
	if p.module && !p.cfg.AllowUndeclaredExports {
		for _, ref := range p.symbols.UndefinedExports() {
			if p.typeNames[ref.Name] {
				continue
			}
			p.report(diagnostic.CodeUndefinedExport, ref.Span, ref.Name)
		}
	}

	sourceType := config.SourceScript
	if p.module {
		sourceType = config.SourceModule
	}
	span := position.NewSpan(p.File().PositionFromOffset(0), p.tok.Span.End)

	return ast.NewProgram(span, sourceType, hashbang, body)
}

// ===== Statement lists =====

// parseStatementListItem parses a statement or a declaration.
func (p *Parser) parseStatementListItem(topLevel bool) ast.Statement {
	start := p.start()

	switch p.tok.Type {
	case lexer.TokenImport:
		if la := p.peek(); la.Type != lexer.TokenLParen && la.Type != lexer.TokenDot {
			p.checkModuleItem(topLevel)
			return p.parseImportDeclaration()
		}

	case lexer.TokenExport:
		p.checkModuleItem(topLevel)
		return p.parseExport()

	case lexer.TokenAt:
		decorators := p.parseDecorators()
		if p.at(lexer.TokenExport) {
			p.checkModuleItem(topLevel)
			return p.parseExportWithDecorators(start, decorators)
		}
		abstract := p.ts && p.isContextual("abstract") && p.peek().Type == lexer.TokenClass
		if abstract {
			p.next()
		}
		return p.parseClassStatement(start, decorators, abstract, false)

	case lexer.TokenClass:
		return p.parseClassStatement(start, nil, false, false)

	case lexer.TokenConst:
		if p.ts && p.peek().Type == lexer.TokenEnum {
			return p.parseEnum(start, false)
		}
		return p.parseVarStatement(declConst, false)

	case lexer.TokenLet:
		if p.isLetDeclaration() {
			return p.parseVarStatement(declLet, false)
		}

	case lexer.TokenFunction:
		return p.parseFunction(start, false, fnDeclaration).(ast.Statement)

	case lexer.TokenEnum:
		if p.ts {
			return p.parseEnum(start, false)
		}

	case lexer.TokenIdentifier:
		if p.isAsyncFunction() {
			p.next()
			return p.parseFunction(start, true, fnDeclaration).(ast.Statement)
		}
		if p.ts {
			if decl := p.parseTSDeclaration(start); decl != nil {
				return decl
			}
		}
	}

	return p.parseStatement(stmtList)
}

func (p *Parser) checkModuleItem(topLevel bool) {
	switch {
	case !p.module:
		p.report(diagnostic.CodeModuleSyntaxInScript, p.tok.Span)
	case !topLevel:
		p.report(diagnostic.CodeModuleSyntaxNotTopLevel, p.tok.Span)
	}
}

// isLetDeclaration reports whether a `let` token starts a lexical
// declaration rather than an identifier expression.
func (p *Parser) isLetDeclaration() bool {
	if !p.at(lexer.TokenLet) || p.tok.Escaped {
		return false
	}
	la := p.peek()
	switch la.Type {
	case lexer.TokenLBracket, lexer.TokenLBrace:
		return true
	}
	return isIdentifierToken(la.Type) || (la.Type.IsKeyword() && la.Type != lexer.TokenIn && la.Type != lexer.TokenInstanceof)
}

// isAsyncFunction reports whether the current token starts an async
// function declaration.
func (p *Parser) isAsyncFunction() bool {
	if !p.isContextual("async") {
		return false
	}
	la := p.peek()
	return la.Type == lexer.TokenFunction && !la.NewlineBefore
}

// ===== Statements =====

func (p *Parser) parseStatement(ctx stmtContext) ast.Statement {
	start := p.start()

	if p.tok.Type.IsKeyword() && p.tok.Escaped && !isIdentifierToken(p.tok.Type) {
		p.fatal(diagnostic.CodeEscapedKeyword, p.tok.Span)
	}

	switch p.tok.Type {
	case lexer.TokenLBrace:
		return p.parseBlock()

	case lexer.TokenSemicolon:
		p.next()
		return ast.NewEmptyStatement(p.spanFrom(start))

	case lexer.TokenDebugger:
		p.next()
		p.semicolon()
		return ast.NewDebuggerStatement(p.spanFrom(start))

	case lexer.TokenVar:
		return p.parseVarStatement(declVar, false)

	case lexer.TokenIf:
		return p.parseIf()

	case lexer.TokenFor:
		return p.parseFor()

	case lexer.TokenWhile:
		return p.parseWhile()

	case lexer.TokenDo:
		return p.parseDoWhile()

	case lexer.TokenContinue:
		return p.parseContinue()

	case lexer.TokenBreak:
		return p.parseBreak()

	case lexer.TokenReturn:
		return p.parseReturn()

	case lexer.TokenWith:
		return p.parseWith()

	case lexer.TokenSwitch:
		return p.parseSwitch()

	case lexer.TokenThrow:
		return p.parseThrow()

	case lexer.TokenTry:
		return p.parseTry()

	case lexer.TokenFunction:
		return p.parseFunctionInStatement(start, ctx, false)

	case lexer.TokenClass:
		p.report(diagnostic.CodeLexicalInStatement, p.tok.Span)
		return p.parseClassStatement(start, nil, false, false)

	case lexer.TokenConst:
		p.report(diagnostic.CodeLexicalInStatement, p.tok.Span)
		return p.parseVarStatement(declConst, false)

	case lexer.TokenLet:
		if la := p.peek(); la.Type == lexer.TokenLBracket || (p.isLetDeclaration() && !la.NewlineBefore) {
			p.report(diagnostic.CodeLexicalInStatement, p.tok.Span)
			return p.parseVarStatement(declLet, false)
		}

	case lexer.TokenImport:
		if la := p.peek(); la.Type != lexer.TokenLParen && la.Type != lexer.TokenDot {
			p.fatal(diagnostic.CodeModuleSyntaxNotTopLevel, p.tok.Span)
		}

	case lexer.TokenExport:
		p.fatal(diagnostic.CodeModuleSyntaxNotTopLevel, p.tok.Span)

	case lexer.TokenIdentifier:
		if p.isAsyncFunction() {
			p.next()
			p.report(diagnostic.CodeAsyncGeneratorInStatement, position.NewSpan(start, p.tok.Span.End))
			return p.parseFunction(start, true, fnDeclaration).(ast.Statement)
		}
	}

	if p.isIdentifier() && p.peek().Type == lexer.TokenColon {
		return p.parseLabelled(ctx)
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.start()
	expr := p.parseExpression()
	p.semicolon()

	return ast.NewExpressionStatement(p.spanFrom(start), expr, "")
}

// parseFunctionInStatement parses a function declaration used as the body
// of an if, loop or label. Only sloppy-mode plain functions under if and
// labels are tolerated.
func (p *Parser) parseFunctionInStatement(start position.Position, ctx stmtContext, labelled bool) ast.Statement {
	la := p.peek()
	switch {
	case la.Type == lexer.TokenMul:
		p.report(diagnostic.CodeAsyncGeneratorInStatement, p.tok.Span)
	case p.lexical.InStrictMode() || ctx == stmtLoop:
		if labelled {
			p.report(diagnostic.CodeLabelledFunction, p.tok.Span)
		} else {
			p.report(diagnostic.CodeFunctionInStatement, p.tok.Span)
		}
	}

	// the function is scoped as if wrapped in a block
	p.symbols.EnterBlock()
	defer p.symbols.Exit()

	return p.parseFunction(start, false, fnDeclaration).(ast.Statement)
}

// ===== Blocks =====

func (p *Parser) parseBlock() *ast.BlockStatement {
	p.lexical.EnterBlock()
	defer p.lexical.Exit()
	p.symbols.EnterBlock()
	defer p.symbols.Exit()

	return p.parseBlockBody()
}

// parseBlockBody parses `{ ... }` in the current scope.
func (p *Parser) parseBlockBody() *ast.BlockStatement {
	start := p.start()
	p.expect(lexer.TokenLBrace)

	var body []ast.Statement
	for !p.at(lexer.TokenRBrace) {
		if p.at(lexer.TokenEOF) {
			p.unexpected()
		}
		body = append(body, p.parseStatementListItem(false))
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewBlockStatement(p.spanFrom(start), body)
}

// ===== Variable declarations =====

func declTokenOf(kind declKind) lexer.TokenType {
	switch kind {
	case declLet:
		return lexer.TokenLet
	case declConst:
		return lexer.TokenConst
	}
	return lexer.TokenVar
}

func (p *Parser) parseVarStatement(kind declKind, declare bool) ast.Statement {
	start := p.start()
	decl := p.parseVariableDeclaration(start, kind, declare, false)
	p.semicolon()
	decl.Span = p.spanFrom(start)

	return decl
}

// parseVariableDeclaration parses the keyword and declarators. In a for
// head (inFor) initializers are checked by the caller, which knows the
// loop kind.
func (p *Parser) parseVariableDeclaration(start position.Position, kind declKind, declare, inFor bool) *ast.VariableDeclaration {
	p.next()

	var decls []*ast.VariableDeclarator
	for {
		dstart := p.start()
		id := p.parseBindingTarget()

		definite := false
		if p.ts {
			if p.at(lexer.TokenNot) && !p.tok.NewlineBefore {
				p.next()
				definite = true
			}
			if p.at(lexer.TokenColon) {
				p.annotate(id, p.parseTypeAnnotation(), false, dstart)
			}
		}
		p.declarePattern(id, kind)

		var init ast.Expression
		if p.eat(lexer.TokenAssign) {
			init = p.parseAssign()
		} else if !inFor && !declare {
			p.checkMissingInitializer(id, kind)
		}
		decls = append(decls, ast.NewVariableDeclarator(p.spanFrom(dstart), id, init, definite))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}

	return ast.NewVariableDeclaration(p.spanFrom(start), declTokenOf(kind), decls, declare)
}

func (p *Parser) checkMissingInitializer(id ast.Pattern, kind declKind) {
	switch {
	case kind == declConst:
		p.report(diagnostic.CodeMissingInitializer, id.GetSpan(), "const declaration")
	default:
		if _, ok := id.(*ast.Identifier); !ok {
			p.report(diagnostic.CodeMissingInitializer, id.GetSpan(), "destructuring declaration")
		}
	}
}

// ===== Control flow =====

func (p *Parser) parseParenTest() ast.Expression {
	p.expect(lexer.TokenLParen)
	test := p.parseExpressionAllowIn()
	p.expect(lexer.TokenRParen)
	return test
}

func (p *Parser) parseIf() ast.Statement {
	start := p.start()
	p.next()
	test := p.parseParenTest()

	consequent := p.parseStatement(stmtIf)
	var alternate ast.Statement
	if p.eat(lexer.TokenElse) {
		alternate = p.parseStatement(stmtIf)
	}

	return ast.NewIfStatement(p.spanFrom(start), test, consequent, alternate)
}

// enterLoop opens the frames of an iteration statement.
func (p *Parser) enterLoop() {
	p.lexical.MarkLabelsAsLoop()
	p.lexical.EnterVirtual(scope.VirtualLoop, "")
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.start()
	p.next()
	test := p.parseParenTest()

	p.enterLoop()
	body := p.parseStatement(stmtLoop)
	p.lexical.Exit()

	return ast.NewWhileStatement(p.spanFrom(start), test, body)
}

func (p *Parser) parseDoWhile() ast.Statement {
	start := p.start()
	p.next()

	p.enterLoop()
	body := p.parseStatement(stmtLoop)
	p.lexical.Exit()

	p.expect(lexer.TokenWhile)
	test := p.parseParenTest()
	// a semicolon is always insertable after do-while
	p.eat(lexer.TokenSemicolon)

	return ast.NewDoWhileStatement(p.spanFrom(start), body, test)
}

func (p *Parser) parseFor() ast.Statement {
	start := p.start()
	p.next()

	await := false
	if p.at(lexer.TokenAwait) {
		if !p.canAwait() {
			p.report(diagnostic.CodeAwaitOutsideAsync, p.tok.Span)
		}
		p.requireFeature(config.FeatureAsyncIteration, p.tok.Span)
		await = true
		p.next()
	}
	p.expect(lexer.TokenLParen)

	p.enterLoop()
	defer p.lexical.Exit()
	p.lexical.EnterBlock()
	defer p.lexical.Exit()
	p.symbols.EnterBlock()
	defer p.symbols.Exit()

	if p.at(lexer.TokenSemicolon) {
		if await {
			p.unexpected()
		}
		return p.parseForRest(start, nil)
	}

	saved := p.noIn
	defer func() { p.noIn = saved }()

	kind := declNone
	switch {
	case p.at(lexer.TokenVar):
		kind = declVar
	case p.at(lexer.TokenConst):
		kind = declConst
	case p.isLetDeclaration():
		kind = declLet
	}

	if kind != declNone {
		declStart := p.start()
		p.noIn = true
		decl := p.parseVariableDeclaration(declStart, kind, false, true)
		p.noIn = false

		if p.at(lexer.TokenIn) || p.isContextual("of") {
			p.checkForInOfDeclaration(decl, kind)
			return p.parseForInOf(start, decl, await)
		}
		for _, d := range decl.Declarations {
			if d.Init == nil {
				p.checkMissingInitializer(d.ID, kind)
			}
		}
		if await {
			p.unexpected()
		}
		return p.parseForRest(start, decl)
	}

	startTok := p.tok
	p.noIn = true
	init := p.parseExpression()
	p.noIn = false

	if p.at(lexer.TokenIn) || p.isContextual("of") {
		if p.isContextual("of") {
			if startTok.Type == lexer.TokenLet && !startTok.Escaped {
				p.report(diagnostic.CodeForOfLet, startTok.Span)
			}
			if id, ok := init.(*ast.Identifier); ok && !await && id.Name == "async" && !id.Parens && !startTok.Escaped {
				p.report(diagnostic.CodeForOfAsync, id.Span)
			}
		}
		target := p.toPattern(init, false)
		return p.parseForInOf(start, target, await)
	}

	if await {
		p.unexpected()
	}
	return p.parseForRest(start, init)
}

// checkForInOfDeclaration validates the declaration of a for-in or for-of
// head.
func (p *Parser) checkForInOfDeclaration(decl *ast.VariableDeclaration, kind declKind) {
	keyword := "in"
	if p.isContextual("of") {
		keyword = "of"
	}

	if len(decl.Declarations) > 1 {
		p.report(diagnostic.CodeForInOfMultipleBindings, decl.Declarations[1].Span, keyword)
	}
	d := decl.Declarations[0]
	if d.Init == nil {
		return
	}
	// for (var x = 1 in o) survives in sloppy code
	_, plain := d.ID.(*ast.Identifier)
	if keyword == "in" && kind == declVar && plain && !p.lexical.InStrictMode() {
		return
	}
	p.report(diagnostic.CodeForInOfInitializer, d.Span, keyword)
}

func (p *Parser) parseForInOf(start position.Position, left ast.Node, await bool) ast.Statement {
	isOf := p.isContextual("of")
	if await && !isOf {
		p.unexpected()
	}
	p.next()

	var right ast.Expression
	if isOf {
		right = p.parseAssignAllowIn()
	} else {
		right = p.parseExpressionAllowIn()
	}
	p.expect(lexer.TokenRParen)
	body := p.parseStatement(stmtLoop)

	if isOf {
		return ast.NewForOfStatement(p.spanFrom(start), left, right, body, await)
	}
	return ast.NewForInStatement(p.spanFrom(start), left, right, body)
}

func (p *Parser) parseForRest(start position.Position, init ast.Node) ast.Statement {
	p.expect(lexer.TokenSemicolon)
	var test, update ast.Expression
	if !p.at(lexer.TokenSemicolon) {
		test = p.parseExpressionAllowIn()
	}
	p.expect(lexer.TokenSemicolon)
	if !p.at(lexer.TokenRParen) {
		update = p.parseExpressionAllowIn()
	}
	p.expect(lexer.TokenRParen)
	body := p.parseStatement(stmtLoop)

	return ast.NewForStatement(p.spanFrom(start), init, test, update, body)
}

// ===== Jumps =====

// parseJumpLabel parses the optional label of break or continue, which
// must be on the same line.
func (p *Parser) parseJumpLabel() *ast.Identifier {
	if p.tok.NewlineBefore || !p.isIdentifier() {
		return nil
	}
	tok := p.tok
	p.next()
	if !p.lexical.LabelReachable(tok.Value) {
		p.report(diagnostic.CodeUndefinedLabel, tok.Span, tok.Value)
	}
	return ast.NewIdentifier(tok.Span, tok.Value, nil, false)
}

func (p *Parser) parseBreak() ast.Statement {
	start := p.start()
	keyword := p.tok.Span
	p.next()

	label := p.parseJumpLabel()
	if label == nil && !p.lexical.BreakValid() {
		p.report(diagnostic.CodeIllegalBreak, keyword)
	}
	p.semicolon()

	return ast.NewBreakStatement(p.spanFrom(start), label)
}

func (p *Parser) parseContinue() ast.Statement {
	start := p.start()
	keyword := p.tok.Span
	p.next()

	label := p.parseJumpLabel()
	switch {
	case label == nil:
		if !p.lexical.ContinueValid() {
			p.report(diagnostic.CodeIllegalContinue, keyword)
		}
	case p.lexical.LabelReachable(label.Name) && !p.lexical.ContinueLabelValid(label.Name):
		p.report(diagnostic.CodeIllegalContinue, label.Span)
	}
	p.semicolon()

	return ast.NewContinueStatement(p.spanFrom(start), label)
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.start()
	if !p.lexical.ReturnValid() && !p.cfg.AllowReturnOutsideFunction {
		p.report(diagnostic.CodeIllegalReturn, p.tok.Span)
	}
	p.next()

	var arg ast.Expression
	if !p.at(lexer.TokenSemicolon) && !p.canInsertSemicolon() {
		arg = p.parseExpression()
	}
	p.semicolon()

	return ast.NewReturnStatement(p.spanFrom(start), arg)
}

func (p *Parser) parseThrow() ast.Statement {
	start := p.start()
	p.next()
	if p.tok.NewlineBefore {
		p.report(diagnostic.CodeThrowNewline, p.tok.Span)
	}
	arg := p.parseExpression()
	p.semicolon()

	return ast.NewThrowStatement(p.spanFrom(start), arg)
}

// ===== With, switch, labels =====

func (p *Parser) parseWith() ast.Statement {
	start := p.start()
	if p.lexical.InStrictMode() {
		p.report(diagnostic.CodeWithInStrict, p.tok.Span)
	}
	p.next()
	object := p.parseParenTest()
	body := p.parseStatement(stmtLoop)

	return ast.NewWithStatement(p.spanFrom(start), object, body)
}

func (p *Parser) parseSwitch() ast.Statement {
	start := p.start()
	p.next()
	disc := p.parseParenTest()
	p.expect(lexer.TokenLBrace)

	p.lexical.EnterVirtual(scope.VirtualSwitch, "")
	defer p.lexical.Exit()
	p.lexical.EnterBlock()
	defer p.lexical.Exit()
	p.symbols.EnterBlock()
	defer p.symbols.Exit()

	var (
		cases       []*ast.SwitchCase
		defaultSeen bool
	)
	for !p.at(lexer.TokenRBrace) {
		cstart := p.start()
		var test ast.Expression
		switch {
		case p.eat(lexer.TokenCase):
			test = p.parseExpressionAllowIn()
		case p.at(lexer.TokenDefault):
			if defaultSeen {
				p.report(diagnostic.CodeDuplicateDefaultCase, p.tok.Span)
			}
			defaultSeen = true
			p.next()
		default:
			p.unexpected()
		}
		p.expect(lexer.TokenColon)

		var body []ast.Statement
		for !p.at(lexer.TokenCase) && !p.at(lexer.TokenDefault) && !p.at(lexer.TokenRBrace) {
			if p.at(lexer.TokenEOF) {
				p.unexpected()
			}
			body = append(body, p.parseStatementListItem(false))
		}
		cases = append(cases, ast.NewSwitchCase(p.spanFrom(cstart), test, body))
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewSwitchStatement(p.spanFrom(start), disc, cases)
}

func (p *Parser) parseLabelled(ctx stmtContext) ast.Statement {
	start := p.start()
	tok := p.tok
	p.next()
	p.checkReference(tok.Value, tok.Span)
	label := ast.NewIdentifier(tok.Span, tok.Value, nil, false)
	p.expect(lexer.TokenColon)

	if !p.lexical.EnterVirtual(scope.VirtualLabel, tok.Value) {
		p.report(diagnostic.CodeDuplicateLabel, tok.Span, tok.Value)
	}
	defer p.lexical.Exit()

	if ctx == stmtList || ctx == stmtIf {
		ctx = stmtLabel
	}

	var body ast.Statement
	if p.at(lexer.TokenFunction) {
		body = p.parseFunctionInStatement(p.start(), ctx, true)
	} else {
		body = p.parseStatement(ctx)
	}

	return ast.NewLabeledStatement(p.spanFrom(start), label, body)
}

// ===== Try =====

func (p *Parser) parseTry() ast.Statement {
	start := p.start()
	p.next()
	block := p.parseBlock()

	var handler *ast.CatchClause
	if p.at(lexer.TokenCatch) {
		handler = p.parseCatch()
	}
	var finalizer *ast.BlockStatement
	if p.eat(lexer.TokenFinally) {
		finalizer = p.parseBlock()
	}
	if handler == nil && finalizer == nil {
		p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, "catch", describe(p.tok))
	}

	return ast.NewTryStatement(p.spanFrom(start), block, handler, finalizer)
}

func (p *Parser) parseCatch() *ast.CatchClause {
	start := p.start()
	p.next()

	p.lexical.EnterCatch()
	defer p.lexical.Exit()
	p.symbols.EnterBlock()
	defer p.symbols.Exit()

	var param ast.Pattern
	if p.at(lexer.TokenLParen) {
		p.next()
		pstart := p.start()
		param = p.parseBindingTarget()
		if p.ts && p.at(lexer.TokenColon) {
			p.annotate(param, p.parseTypeAnnotation(), false, pstart)
		}
		if p.at(lexer.TokenAssign) {
			p.report(diagnostic.CodeCatchParamInitializer, p.tok.Span)
			p.next()
			p.parseDefaultValue()
		}
		p.expect(lexer.TokenRParen)

		p.declarePattern(param, declCatch)
		_, simple := param.(*ast.Identifier)
		for _, d := range p.symbols.CommitCatchParams(simple) {
			p.reportDuplicate(d.Name, d.Span, d.Previous)
		}
	} else {
		p.requireFeature(config.FeatureOptionalCatchBinding, p.tok.Span)
	}

	// the body shares the parameter scope, so `catch (e) { let e }` clashes
	body := p.parseBlockBody()

	return ast.NewCatchClause(p.spanFrom(start), param, body)
}
