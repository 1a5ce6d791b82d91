package parser

import (
	"html"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// The JSX parsers leave the `>` that ends an element as the current
// token. Inside a parent the lexer then reads children right after it;
// at the outermost element normal scanning resumes.

// parseJSXRoot parses an element or fragment in expression position. The
// current token is its `<`.
func (p *Parser) parseJSXRoot() ast.Expression {
	start := p.start()
	p.next()
	el := p.parseJSXElementAt(start)
	p.next()

	if p.at(lexer.TokenLt) {
		if la := p.peek(); la.Type.IsIdentifierName() || la.Type == lexer.TokenGt {
			p.fatal(diagnostic.CodeJSXAdjacent, p.tok.Span)
		}
	}
	return el
}

// spanThrough covers start up to the end of the current token.
func (p *Parser) spanThrough(start position.Position) position.Span {
	return position.NewSpan(start, p.tok.Span.End)
}

// parseJSXElementAt parses the rest of an element whose `<` at start has
// been consumed.
func (p *Parser) parseJSXElementAt(start position.Position) ast.Expression {
	if p.at(lexer.TokenGt) {
		children := p.parseJSXChildren()
		p.next()
		p.relexGreater()
		if !p.at(lexer.TokenGt) {
			p.fatal(diagnostic.CodeJSXTagMismatch, p.tok.Span, "<>")
		}
		return ast.NewJSXFragment(p.spanThrough(start), children)
	}

	name := p.parseJSXElementName()
	var typeArgs *ast.TSTypeParameterInstantiation
	if p.ts && p.at(lexer.TokenLt) {
		typeArgs = p.parseTypeArguments()
	}

	var attrs []ast.Node
	for {
		p.relexGreater()
		if p.at(lexer.TokenGt) || p.at(lexer.TokenDiv) {
			break
		}
		attrs = append(attrs, p.parseJSXAttribute())
	}

	if p.eat(lexer.TokenDiv) {
		p.relexGreater()
		if !p.at(lexer.TokenGt) {
			p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, ">", describe(p.tok))
		}
		opening := ast.NewJSXOpeningElement(p.spanThrough(start), name, attrs, typeArgs, true)
		return ast.NewJSXElement(p.spanThrough(start), opening, nil, nil)
	}
	opening := ast.NewJSXOpeningElement(p.spanThrough(start), name, attrs, typeArgs, false)

	children := p.parseJSXChildren()

	// `<` and `/` of the closing tag are behind us
	closeStart := p.lx.LastTokenEnd()
	closeStart.Offset--
	closeStart.Column--
	p.next()
	if p.at(lexer.TokenGt) {
		p.fatal(diagnostic.CodeJSXTagMismatch, p.tok.Span, jsxName(name))
	}
	closingName := p.parseJSXElementName()
	p.relexGreater()
	if !p.at(lexer.TokenGt) {
		p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, ">", describe(p.tok))
	}
	if jsxName(closingName) != jsxName(name) {
		p.report(diagnostic.CodeJSXTagMismatch, closingName.GetSpan(), jsxName(name))
	}
	closing := ast.NewJSXClosingElement(p.spanThrough(closeStart), closingName)

	return ast.NewJSXElement(p.spanThrough(start), opening, children, closing)
}

// parseJSXChildren parses children up to a closing tag, leaving its `/`
// as the current token.
func (p *Parser) parseJSXChildren() []ast.Node {
	var children []ast.Node
	for {
		tok := p.lx.ReadJSXText()
		p.setToken(tok)

		switch tok.Type {
		case lexer.TokenJSXText:
			children = append(children, ast.NewJSXText(tok.Span, html.UnescapeString(tok.Literal), tok.Literal))

		case lexer.TokenLBrace:
			children = append(children, p.parseJSXContainer(true))

		case lexer.TokenLt:
			p.next()
			if p.at(lexer.TokenDiv) {
				return children
			}
			children = append(children, p.parseJSXElementAt(tok.Span.Start))

		default:
			p.fatal(diagnostic.CodeUnexpectedToken, tok.Span, describe(tok))
		}
	}
}

// parseJSXContainer parses `{expr}` with `{` current and leaves `}`
// current. Children may also hold `{}` or `{...spread}`.
func (p *Parser) parseJSXContainer(child bool) ast.Node {
	start := p.start()
	p.next()

	if p.at(lexer.TokenRBrace) {
		empty := ast.NewJSXEmptyExpression(position.NewSpan(p.lx.LastTokenEnd(), p.tok.Span.Start))
		return ast.NewJSXExpressionContainer(p.spanThrough(start), empty)
	}
	if child && p.at(lexer.TokenEllipsis) {
		p.next()
		expr := p.parseExpressionAllowIn()
		p.expectCurrent(lexer.TokenRBrace)
		return ast.NewJSXSpreadChild(p.spanThrough(start), expr)
	}

	expr := p.parseExpressionAllowIn()
	p.expectCurrent(lexer.TokenRBrace)

	return ast.NewJSXExpressionContainer(p.spanThrough(start), expr)
}

// expectCurrent checks the current token without consuming it.
func (p *Parser) expectCurrent(tt lexer.TokenType) {
	if !p.at(tt) {
		p.fatal(diagnostic.CodeExpectedToken, p.tok.Span, tt.String(), describe(p.tok))
	}
}

// parseJSXIdentifier reads a dashed JSX name part and advances.
func (p *Parser) parseJSXIdentifier() *ast.JSXIdentifier {
	if !p.tok.Type.IsIdentifierName() {
		p.unexpected()
	}
	tok := p.lx.ReadJSXIdentifier()
	p.setToken(tok)
	p.next()

	return ast.NewJSXIdentifier(tok.Span, tok.Literal)
}

// parseJSXElementName parses `a`, `a:b` or `a.b.c`.
func (p *Parser) parseJSXElementName() ast.Node {
	start := p.start()
	id := p.parseJSXIdentifier()

	if p.eat(lexer.TokenColon) {
		local := p.parseJSXIdentifier()
		return ast.NewJSXNamespacedName(p.spanFrom(start), id, local)
	}

	var name ast.Node = id
	for p.eat(lexer.TokenDot) {
		prop := p.parseJSXIdentifier()
		name = ast.NewJSXMemberExpression(p.spanFrom(start), name, prop)
	}
	return name
}

func (p *Parser) parseJSXAttribute() ast.Node {
	start := p.start()

	if p.at(lexer.TokenLBrace) {
		p.next()
		p.expect(lexer.TokenEllipsis)
		arg := p.parseAssignAllowIn()
		p.expectCurrent(lexer.TokenRBrace)
		p.next()
		return ast.NewJSXSpreadAttribute(p.spanFrom(start), arg)
	}

	var name ast.Node = p.parseJSXIdentifier()
	if p.eat(lexer.TokenColon) {
		local := p.parseJSXIdentifier()
		name = ast.NewJSXNamespacedName(p.spanFrom(start), name.(*ast.JSXIdentifier), local)
	}

	if !p.at(lexer.TokenAssign) {
		return ast.NewJSXAttribute(p.spanFrom(start), name, nil)
	}

	tok := p.lx.ReadJSXString()
	p.setToken(tok)

	var value ast.Node
	switch tok.Type {
	case lexer.TokenString:
		value = ast.NewStringLiteral(tok.Span, html.UnescapeString(tok.Value), tok.Literal)
		p.next()
	case lexer.TokenLBrace:
		container := p.parseJSXContainer(false)
		if c, ok := container.(*ast.JSXExpressionContainer); ok {
			if _, empty := c.Expression.(*ast.JSXEmptyExpression); empty {
				p.fatal(diagnostic.CodeUnexpectedToken, c.Span, "'{}'")
			}
		}
		value = container
		p.next()
	case lexer.TokenLt:
		elStart := p.start()
		p.next()
		value = p.parseJSXElementAt(elStart)
		p.next()
	default:
		p.unexpected()
	}

	return ast.NewJSXAttribute(p.spanFrom(start), name, value)
}

// jsxName renders an element name for tag matching.
func jsxName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.JSXIdentifier:
		return v.Name
	case *ast.JSXNamespacedName:
		return v.Namespace.Name + ":" + v.Name.Name
	case *ast.JSXMemberExpression:
		return jsxName(v.Object) + "." + v.Property.Name
	}
	return ""
}
