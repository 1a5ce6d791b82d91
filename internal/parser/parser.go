// Package parser implements a recursive-descent parser for ECMAScript with
// optional TypeScript and JSX extensions.
//
// Malformed input that admits no AST aborts the parse with a
// *errors.SyntaxError. Every other early error is collected as a
// diagnostic and parsing continues, so a Program may come back together
// with a non-empty diagnostic list.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/errors"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
	"github.com/orizon-lang/ecmaparse/internal/scope"
)

// bailout carries a fatal error up to the nearest recovery point.
type bailout struct {
	err *errors.SyntaxError
}

// Option configures a Parser.
type Option func(*Parser)

// WithFilename sets the file name recorded in positions.
func WithFilename(name string) Option {
	return func(p *Parser) { p.filename = name }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger.With(slog.String("component", "parser"))
		}
	}
}

// coverInit is a shorthand property with an initializer, `{a = 1}`, which
// is only valid once the object literal becomes a pattern.
type coverInit struct {
	prop *ast.Property
	span position.Span
}

// protoDup is a repeated `__proto__: v` entry, which is only valid once
// the object literal becomes a pattern.
type protoDup struct {
	obj  *ast.ObjectExpression
	span position.Span
}

// Parser holds the state of one parse.
type Parser struct {
	lx       *lexer.Lexer
	tok      lexer.Token
	cfg      config.Config
	source   string
	filename string
	logger   *slog.Logger
	diags    *diagnostic.Handler

	lexical *scope.Lexical
	symbols *scope.Symbols
	arrows  *scope.ArrowScopes
	stricts *scope.StrictScopes

	module bool
	ts     bool
	jsx    bool

	// noIn disables the `in` operator inside a for-statement head.
	noIn bool
	// maybeArrowStart is the offset at which an arrow function head may
	// begin: the start of the innermost assignment expression.
	maybeArrowStart int

	coverInits []coverInit
	protoDups  []protoDup
	// restCommas holds array and object literals whose spread element is
	// followed by a trailing comma. A rewind leaves entries for discarded
	// nodes behind; they are never looked up again.
	restCommas map[ast.Node]position.Span

	// typeNames holds the type-only names declared in program scope, which
	// may be exported without a value binding. Speculation never reaches
	// program scope, so it is not part of a checkpoint.
	typeNames map[string]bool
}

// New creates a parser for source.
func New(source string, cfg config.Config, opts ...Option) *Parser {
	p := &Parser{
		source:          source,
		cfg:             cfg,
		filename:        "<input>",
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		diags:           diagnostic.NewHandler(),
		lexical:         scope.NewLexical(),
		symbols:         scope.NewSymbols(),
		arrows:          scope.NewArrowScopes(),
		stricts:         scope.NewStrictScopes(),
		maybeArrowStart: -1,
		restCommas:      make(map[ast.Node]position.Span),
		typeNames:       make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.lx = lexer.New(source, p.filename)
	p.module = cfg.IsModule()
	p.ts = cfg.Plugins.TypeScript
	p.jsx = cfg.Plugins.JSX

	return p
}

// File returns the source file being parsed.
func (p *Parser) File() *position.SourceFile { return p.lx.File() }

// Diagnostics returns the recoverable errors reported so far.
func (p *Parser) Diagnostics() []diagnostic.Diagnostic {
	return p.diags.Diagnostics()
}

// Parse parses a whole program. The returned error is a fatal
// *errors.SyntaxError; recoverable errors are available from Diagnostics.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			p.logger.Debug("parse aborted",
				slog.String("code", b.err.Code),
				slog.String("position", b.err.Span.Start.String()))
			prog, err = nil, b.err
		}
	}()

	p.logger.Debug("parse started",
		slog.String("file", p.filename),
		slog.String("source_type", p.cfg.SourceType),
		slog.String("ecma_version", p.cfg.ECMAVersion))

	p.next()
	prog = p.parseProgram()

	p.logger.Debug("parse finished",
		slog.Int("statements", len(prog.Body)),
		slog.Int("diagnostics", p.diags.Len()))

	return prog, nil
}

// ParseExpression parses source as a single expression.
func (p *Parser) ParseExpression() (expr ast.Expression, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			expr, err = nil, b.err
		}
	}()

	p.lexical.EnterProgram(p.module, p.module)
	p.symbols.EnterProgram(p.module)
	p.next()
	expr = p.parseExpression()
	if !p.at(lexer.TokenEOF) {
		p.unexpected()
	}
	p.reportPendingCovers()

	return expr, nil
}

// Result is the outcome of a successful parse.
type Result struct {
	Program     *ast.Program
	Diagnostics []diagnostic.Diagnostic
	File        *position.SourceFile
}

// Failed reports whether any recoverable error was found.
func (r *Result) Failed() bool {
	return len(r.Diagnostics) > 0
}

// Parse parses source under cfg.
func Parse(source string, cfg config.Config, opts ...Option) (*Result, error) {
	p := New(source, cfg, opts...)
	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return &Result{Program: prog, Diagnostics: p.Diagnostics(), File: p.File()}, nil
}

// ParseExpression parses source as one expression under cfg.
func ParseExpression(source string, cfg config.Config, opts ...Option) (ast.Expression, []diagnostic.Diagnostic, error) {
	p := New(source, cfg, opts...)
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, nil, err
	}

	return expr, p.Diagnostics(), nil
}

// ===== Speculation =====

type checkpoint struct {
	lexer           lexer.State
	tok             lexer.Token
	diags           int
	covers          int
	protos          int
	privates        []int
	noIn            bool
	maybeArrowStart int
}

func (p *Parser) save() checkpoint {
	return checkpoint{
		lexer:           p.lx.Snapshot(),
		tok:             p.tok,
		diags:           p.diags.Checkpoint(),
		covers:          len(p.coverInits),
		protos:          len(p.protoDups),
		privates:        p.symbols.PrivateCheckpoint(),
		noIn:            p.noIn,
		maybeArrowStart: p.maybeArrowStart,
	}
}

func (p *Parser) restore(c checkpoint) {
	p.lx.Restore(c.lexer)
	p.tok = c.tok
	p.diags.Rollback(c.diags)
	p.coverInits = p.coverInits[:c.covers]
	p.protoDups = p.protoDups[:c.protos]
	p.symbols.RollbackPrivate(c.privates)
	p.noIn = c.noIn
	p.maybeArrowStart = c.maybeArrowStart
}

// TryParse runs fn speculatively. When fn fails fatally or reports any
// diagnostic, the parser is rewound to where it was and ok is false.
// Scope recorders are restored by the deferred exits inside fn.
func (p *Parser) TryParse(fn func() ast.Node) (node ast.Node, ok bool) {
	cp := p.save()
	defer func() {
		if r := recover(); r != nil {
			b, isBailout := r.(bailout)
			if !isBailout {
				panic(r)
			}
			p.logger.Debug("speculation failed",
				slog.String("code", b.err.Code),
				slog.Int("offset", cp.tok.Span.Start.Offset))
			p.restore(cp)
			node, ok = nil, false
			return
		}
		if p.diags.Len() > cp.diags {
			p.restore(cp)
			node, ok = nil, false
		}
	}()

	return fn(), true
}

// ===== Tokens =====

// next advances to the next token, aborting on a lexical error.
func (p *Parser) next() {
	p.setToken(p.lx.NextToken())
}

func (p *Parser) setToken(tok lexer.Token) {
	p.tok = tok
	if tok.Type == lexer.TokenIllegal {
		if se, ok := errors.AsSyntaxError(p.lx.Err()); ok {
			panic(bailout{se})
		}
		p.fatal(diagnostic.CodeUnexpectedToken, tok.Span, describe(tok))
	}
}

func (p *Parser) peek() lexer.Token { return p.lx.Lookahead() }

func (p *Parser) at(tt lexer.TokenType) bool { return p.tok.Type == tt }

func (p *Parser) eat(tt lexer.TokenType) bool {
	if p.tok.Type == tt {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(tt lexer.TokenType) {
	if !p.eat(tt) {
		p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, tt.String(), describe(p.tok))
	}
}

// expectGreater consumes a `>` that the lexer may have merged into `>>`,
// `>=` or similar.
func (p *Parser) expectGreater() {
	if p.tok.Type != lexer.TokenGt {
		p.setToken(p.lx.ReLexGreater())
	}
	p.expect(lexer.TokenGt)
}

// isContextual reports whether the current token is the unescaped
// identifier name.
func (p *Parser) isContextual(name string) bool {
	return p.tok.Type == lexer.TokenIdentifier && p.tok.Value == name && !p.tok.Escaped
}

func (p *Parser) eatContextual(name string) bool {
	if p.isContextual(name) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, name, describe(p.tok))
	}
}

// isIdentifier reports whether the current token can be an identifier
// reference or binding: a plain identifier or one of the words whose
// reservation depends on context.
func (p *Parser) isIdentifier() bool {
	return isIdentifierToken(p.tok.Type)
}

func isIdentifierToken(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenIdentifier, lexer.TokenLet, lexer.TokenYield, lexer.TokenAwait:
		return true
	}
	return false
}

func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokenEOF {
		return "end of input"
	}
	lit := tok.Literal
	if len(lit) > 24 {
		lit = lit[:24] + "..."
	}
	return fmt.Sprintf("'%s'", strings.ReplaceAll(lit, "\n", "\\n"))
}

// ===== Errors =====

// fatal aborts the parse.
func (p *Parser) fatal(code diagnostic.Code, span position.Span, args ...interface{}) {
	panic(bailout{errors.Syntax(string(code), code.Format(args...), span)})
}

// unexpected aborts on the current token.
func (p *Parser) unexpected() {
	if p.tok.Type.IsKeyword() && p.tok.Escaped {
		p.fatal(diagnostic.CodeEscapedKeyword, p.tok.Span)
	}
	p.fatal(diagnostic.CodeUnexpectedToken, p.tok.Span, describe(p.tok))
}

// report records a recoverable error. A repeat of the last report is
// dropped, since a name may be checked both as written and again once
// its arrow head is known.
func (p *Parser) report(code diagnostic.Code, span position.Span, args ...interface{}) {
	if last, ok := p.diags.Last(); ok && last.Code == code && last.Span == span {
		return
	}
	p.diags.Report(code, span, args...)
}

// reportRelated reports code at span pointing back at an earlier span.
func (p *Parser) reportRelated(code diagnostic.Code, span, previous position.Span, note string, args ...interface{}) {
	p.diags.Push(diagnostic.NewDiagnostic().
		Error().
		Syntax().
		Code(code, args...).
		Span(span).
		Related(note, previous).
		Build())
}

func (p *Parser) reportDuplicate(name string, span, previous position.Span) {
	p.reportRelated(diagnostic.CodeDuplicateIdentifier, span, previous, "first declared here", name)
}

// requireFeature reports a version error when f is newer than the
// configured ECMAScript version.
func (p *Parser) requireFeature(f config.Feature, span position.Span) {
	if !p.cfg.Supports(f) {
		p.report(diagnostic.CodeFeatureVersion, span, f.String(), f.MinVersion())
	}
}

// ===== Spans =====

func (p *Parser) start() position.Position { return p.tok.Span.Start }

// spanFrom covers start up to the end of the last consumed token.
func (p *Parser) spanFrom(start position.Position) position.Span {
	return position.NewSpan(start, p.lx.LastTokenEnd())
}

// ===== Automatic semicolon insertion =====

// canInsertSemicolon reports whether a statement may end before the
// current token.
func (p *Parser) canInsertSemicolon() bool {
	return p.at(lexer.TokenEOF) || p.at(lexer.TokenRBrace) || p.tok.NewlineBefore
}

// semicolon ends a statement. A missing semicolon that cannot be inserted
// is reported and the current token is left for the next statement.
func (p *Parser) semicolon() {
	if p.eat(lexer.TokenSemicolon) || p.canInsertSemicolon() {
		return
	}
	end := p.lx.LastTokenEnd()
	p.report(diagnostic.CodeMissingSemicolon, position.NewSpan(end, end))
}

// ===== Pending covers =====

func (p *Parser) dropCoverInit(prop *ast.Property) {
	for i, c := range p.coverInits {
		if c.prop == prop {
			p.coverInits = append(p.coverInits[:i], p.coverInits[i+1:]...)
			return
		}
	}
}

func (p *Parser) dropProtoDups(obj *ast.ObjectExpression) {
	out := p.protoDups[:0]
	for _, d := range p.protoDups {
		if d.obj != obj {
			out = append(out, d)
		}
	}
	p.protoDups = out
}

// reportPendingCovers reports the shorthand initializers and duplicate
// __proto__ entries of object literals that never became patterns.
func (p *Parser) reportPendingCovers() {
	for _, c := range p.coverInits {
		p.report(diagnostic.CodeCoverInitializedName, c.span)
	}
	for _, d := range p.protoDups {
		p.report(diagnostic.CodeDuplicateProto, d.span)
	}
	p.coverInits = nil
	p.protoDups = nil
}
