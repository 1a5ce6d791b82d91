package parser

import (
	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// ===== Imports =====

func (p *Parser) parseImportDeclaration() ast.Statement {
	start := p.start()
	p.next()

	typeOnly := false
	if p.ts && p.isContextual("type") {
		la := p.peek()
		// `import type from "m"` imports a default binding named type
		fromDefault := la.Type == lexer.TokenIdentifier && la.Value == "from" && p.lx.LookaheadN(2).Type == lexer.TokenString
		if la.Type == lexer.TokenLBrace || la.Type == lexer.TokenMul || (isIdentifierToken(la.Type) && !fromDefault) {
			typeOnly = true
			p.next()
		}
	}

	var specs []ast.Node
	if !p.at(lexer.TokenString) {
		more := true
		if p.isIdentifier() {
			local := p.parseImportBinding()
			specs = append(specs, ast.NewImportDefaultSpecifier(local.Span, local))
			more = p.eat(lexer.TokenComma)
		}
		if more {
			switch {
			case p.at(lexer.TokenMul):
				nstart := p.start()
				p.next()
				p.expectContextual("as")
				local := p.parseImportBinding()
				specs = append(specs, ast.NewImportNamespaceSpecifier(p.spanFrom(nstart), local))
			case p.at(lexer.TokenLBrace):
				specs = append(specs, p.parseImportSpecifiers()...)
			default:
				p.unexpected()
			}
		}
		p.expectContextual("from")
	}

	source := p.parseModuleSource()
	attrs := p.parseImportAttributes()
	p.semicolon()

	return ast.NewImportDeclaration(p.spanFrom(start), specs, source, attrs, typeOnly)
}

// parseImportBinding parses and declares a local import name.
func (p *Parser) parseImportBinding() *ast.Identifier {
	id := p.parseBindingIdentifier()
	p.declareName(id.Name, id.Span, declImport)
	return id
}

func (p *Parser) parseModuleSource() *ast.StringLiteral {
	if !p.at(lexer.TokenString) {
		p.unexpected()
	}
	return p.parseStringLiteral()
}

// isTypeModifier reports whether a `type` word inside braces marks the
// specifier after it as type-only.
func (p *Parser) isTypeModifier() bool {
	if !p.ts || !p.isContextual("type") {
		return false
	}
	la := p.peek()
	if la.Type != lexer.TokenString && !la.Type.IsIdentifierName() {
		return false
	}
	if la.Type == lexer.TokenIdentifier && la.Value == "as" {
		// `type as x` renames a type; `type as` alone imports the name as
		next := p.lx.LookaheadN(2)
		return next.Type.IsIdentifierName() || next.Type == lexer.TokenString
	}
	return true
}

func (p *Parser) parseImportSpecifiers() []ast.Node {
	p.expect(lexer.TokenLBrace)

	var specs []ast.Node
	for !p.at(lexer.TokenRBrace) {
		start := p.start()
		typeOnly := false
		if p.isTypeModifier() {
			typeOnly = true
			p.next()
		}

		tok := p.tok
		imported := p.parseModuleExportName()

		var local *ast.Identifier
		if p.eatContextual("as") {
			local = p.parseBindingIdentifier()
		} else {
			if tok.Type == lexer.TokenString {
				p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, "as", describe(p.tok))
			}
			local = ast.NewIdentifier(tok.Span, tok.Value, nil, false)
		}
		p.declareName(local.Name, local.Span, declImport)
		specs = append(specs, ast.NewImportSpecifier(p.spanFrom(start), imported, local, typeOnly))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)

	return specs
}

// parseModuleExportName parses an identifier name or a string literal.
func (p *Parser) parseModuleExportName() ast.Node {
	tok := p.tok
	switch {
	case tok.Type == lexer.TokenString:
		return p.parseStringLiteral()
	case tok.Type.IsIdentifierName():
		p.next()
		return ast.NewIdentifier(tok.Span, tok.Value, nil, false)
	}
	p.unexpected()
	return nil
}

// parseImportAttributes parses an optional `with { type: "json" }` clause.
// The older `assert` keyword is accepted the same way.
func (p *Parser) parseImportAttributes() []*ast.ImportAttribute {
	if !p.at(lexer.TokenWith) && !(p.isContextual("assert") && !p.tok.NewlineBefore) {
		return nil
	}
	if !p.cfg.Plugins.ImportAttributes {
		p.requireFeature(config.FeatureImportAttributes, p.tok.Span)
	}
	p.next()
	p.expect(lexer.TokenLBrace)

	var (
		attrs []*ast.ImportAttribute
		seen  = make(map[string]position.Span)
	)
	for !p.at(lexer.TokenRBrace) {
		start := p.start()
		tok := p.tok
		if tok.Type != lexer.TokenString && !tok.Type.IsIdentifierName() {
			p.unexpected()
		}
		key := p.parseModuleExportName()
		if prev, dup := seen[tok.Value]; dup {
			p.reportDuplicate(tok.Value, tok.Span, prev)
		} else {
			seen[tok.Value] = tok.Span
		}

		p.expect(lexer.TokenColon)
		value := p.parseModuleSource()
		attrs = append(attrs, ast.NewImportAttribute(p.spanFrom(start), key, value))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)

	return attrs
}

// ===== Exports =====

func (p *Parser) parseExport() ast.Statement {
	return p.parseExportWithDecorators(p.start(), nil)
}

// parseExportWithDecorators parses an export statement; decorators
// written before `export` apply to the exported class.
func (p *Parser) parseExportWithDecorators(start position.Position, decorators []*ast.Decorator) ast.Statement {
	p.expect(lexer.TokenExport)

	switch {
	case p.at(lexer.TokenMul):
		return p.parseExportAll(start, false)
	case p.at(lexer.TokenDefault):
		return p.parseExportDefault(start, decorators)
	case p.at(lexer.TokenLBrace):
		return p.parseExportNamed(start, false)
	case p.ts && p.isContextual("type"):
		switch p.peek().Type {
		case lexer.TokenLBrace:
			p.next()
			return p.parseExportNamed(start, true)
		case lexer.TokenMul:
			p.next()
			return p.parseExportAll(start, true)
		}
	}

	if p.at(lexer.TokenAt) {
		decorators = append(decorators, p.parseDecorators()...)
	}
	decl := p.parseExportedDeclaration(decorators)
	p.exportDeclaration(decl)

	return ast.NewExportNamedDeclaration(p.spanFrom(start), decl, nil, nil, nil, false)
}

func (p *Parser) parseExportedDeclaration(decorators []*ast.Decorator) ast.Statement {
	start := p.start()

	if decorators != nil {
		abstract := p.ts && p.isContextual("abstract") && p.peek().Type == lexer.TokenClass
		if abstract {
			p.next()
		}
		return p.parseClassStatement(start, decorators, abstract, false)
	}

	switch {
	case p.at(lexer.TokenClass):
		return p.parseClassStatement(start, nil, false, false)
	case p.at(lexer.TokenVar):
		return p.parseVarStatement(declVar, false)
	case p.at(lexer.TokenConst):
		if p.ts && p.peek().Type == lexer.TokenEnum {
			return p.parseEnum(start, false)
		}
		return p.parseVarStatement(declConst, false)
	case p.isLetDeclaration():
		return p.parseVarStatement(declLet, false)
	case p.at(lexer.TokenFunction):
		return p.parseFunction(start, false, fnDeclaration).(ast.Statement)
	case p.isAsyncFunction():
		p.next()
		return p.parseFunction(start, true, fnDeclaration).(ast.Statement)
	case p.ts && p.at(lexer.TokenEnum):
		return p.parseEnum(start, false)
	case p.ts && p.at(lexer.TokenIdentifier):
		if decl := p.parseTSDeclaration(start); decl != nil {
			return decl
		}
	}

	p.unexpected()
	return nil
}

// exportDeclaration records the names bound by an exported declaration.
// Type-only declarations and overload signatures are not values and are
// left out.
func (p *Parser) exportDeclaration(decl ast.Statement) {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		for _, v := range d.Declarations {
			for _, id := range boundNames(v.ID, nil) {
				p.declareExport(id.Name, nameSpan(id))
			}
		}
	case *ast.FunctionDeclaration:
		if d.ID != nil {
			p.declareExport(d.ID.Name, d.ID.Span)
		}
	case *ast.ClassDeclaration:
		if d.ID != nil && !d.Declare {
			p.declareExport(d.ID.Name, d.ID.Span)
		}
	}
}

func (p *Parser) declareExport(name string, span position.Span) {
	if prev, ok := p.symbols.DeclareExport(name, span); !ok {
		p.reportRelated(diagnostic.CodeDuplicateExport, span, prev, "first exported here", name)
	}
}

// exportedName returns the name an export specifier side spells.
func exportedName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.StringLiteral:
		return v.Value
	}
	return ""
}

func (p *Parser) parseExportNamed(start position.Position, typeOnly bool) ast.Statement {
	p.expect(lexer.TokenLBrace)

	var specs []*ast.ExportSpecifier
	for !p.at(lexer.TokenRBrace) {
		sstart := p.start()
		specType := false
		if p.isTypeModifier() {
			specType = true
			p.next()
		}

		local := p.parseModuleExportName()
		exported := local
		if p.eatContextual("as") {
			exported = p.parseModuleExportName()
		}
		specs = append(specs, ast.NewExportSpecifier(p.spanFrom(sstart), local, exported, specType))

		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)

	var (
		source *ast.StringLiteral
		attrs  []*ast.ImportAttribute
	)
	if p.eatContextual("from") {
		source = p.parseModuleSource()
		attrs = p.parseImportAttributes()
	} else {
		for _, spec := range specs {
			p.checkLocalExport(spec, typeOnly || spec.TypeOnly)
		}
	}

	if !typeOnly {
		for _, spec := range specs {
			if !spec.TypeOnly {
				p.declareExport(exportedName(spec.Exported), spec.Exported.GetSpan())
			}
		}
	}
	p.semicolon()

	return ast.NewExportNamedDeclaration(p.spanFrom(start), nil, specs, source, attrs, typeOnly)
}

// checkLocalExport validates the local side of `export { local }`, which
// must name a binding of this module.
func (p *Parser) checkLocalExport(spec *ast.ExportSpecifier, typeOnly bool) {
	switch local := spec.Local.(type) {
	case *ast.StringLiteral:
		p.report(diagnostic.CodeStringExportName, local.Span)
	case *ast.Identifier:
		switch {
		case lexer.LookupKeyword(local.Name) != lexer.TokenIdentifier && !isIdentifierToken(lexer.LookupKeyword(local.Name)):
			p.report(diagnostic.CodeUnexpectedReserved, local.Span, local.Name)
		case lexer.IsReservedInStrict(local.Name) || local.Name == "await":
			p.report(diagnostic.CodeUnexpectedStrictReserved, local.Span, local.Name)
		case !typeOnly:
			p.symbols.RecordExportReference(local.Name, local.Span)
		}
	}
}

func (p *Parser) parseExportAll(start position.Position, typeOnly bool) ast.Statement {
	p.expect(lexer.TokenMul)

	var exported ast.Node
	if p.eatContextual("as") {
		exported = p.parseModuleExportName()
		p.requireFeature(config.FeatureExportNamespace, p.spanFrom(start))
		if !typeOnly {
			p.declareExport(exportedName(exported), exported.GetSpan())
		}
	}
	p.expectContextual("from")
	source := p.parseModuleSource()
	attrs := p.parseImportAttributes()
	p.semicolon()

	return ast.NewExportAllDeclaration(p.spanFrom(start), exported, source, attrs, typeOnly)
}

func (p *Parser) parseExportDefault(start position.Position, decorators []*ast.Decorator) ast.Statement {
	if prev, ok := p.symbols.MarkDefaultExport(p.tok.Span); !ok {
		p.reportRelated(diagnostic.CodeDuplicateExport, p.tok.Span, prev, "first exported here", "default")
	}
	p.next()

	dstart := p.start()
	if p.at(lexer.TokenAt) {
		decorators = append(decorators, p.parseDecorators()...)
	}

	var decl ast.Node
	switch {
	case p.ts && p.isContextual("abstract") && p.peek().Type == lexer.TokenClass:
		p.next()
		decl = ast.NewClassDeclaration(p.spanFrom(dstart), p.parseClass(decorators, fnDefaultExport, true, false))
	case p.at(lexer.TokenClass) || decorators != nil:
		cls := p.parseClass(decorators, fnDefaultExport, false, false)
		decl = ast.NewClassDeclaration(p.spanFrom(dstart), cls)
	case p.at(lexer.TokenFunction):
		decl = p.parseFunction(dstart, false, fnDefaultExport)
	case p.isAsyncFunction():
		p.next()
		decl = p.parseFunction(dstart, true, fnDefaultExport)
	case p.ts && p.isContextual("interface") && !p.peek().NewlineBefore && isIdentifierToken(p.peek().Type):
		decl = p.parseInterface(dstart, false)
	default:
		decl = p.parseAssignAllowIn()
		p.semicolon()
	}

	return ast.NewExportDefaultDeclaration(p.spanFrom(start), decl)
}

// ===== Bound names =====

// boundNames appends the identifiers bound by a pattern to out.
func boundNames(pat ast.Node, out []*ast.Identifier) []*ast.Identifier {
	switch n := pat.(type) {
	case *ast.Identifier:
		out = append(out, n)
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				out = boundNames(pr.Value, out)
			case *ast.RestElement:
				out = boundNames(pr.Argument, out)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				out = boundNames(el, out)
			}
		}
	case *ast.AssignmentPattern:
		out = boundNames(n.Left, out)
	case *ast.RestElement:
		out = boundNames(n.Argument, out)
	}
	return out
}
