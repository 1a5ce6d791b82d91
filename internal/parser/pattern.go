package parser

import (
	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
	"github.com/orizon-lang/ecmaparse/internal/scope"
)

// declKind says how the names of a binding pattern are declared.
type declKind int

const (
	declVar declKind = iota
	declLet
	declConst
	declClass
	declParam
	declCatch
	declImport
	// declNone checks names without declaring them.
	declNone
)

func (k declKind) lexical() bool {
	return k == declLet || k == declConst || k == declClass
}

// ===== Name checks =====

// checkBindingName validates a name about to be bound. Errors that depend
// on strictness the parser does not know yet are deferred.
func (p *Parser) checkBindingName(name string, span position.Span, kind declKind) {
	strict := p.lexical.InStrictMode() || kind == declClass

	switch {
	case name == "let" && kind.lexical():
		p.report(diagnostic.CodeLetLexicalName, span)
	case name == "await":
		if p.module || p.lexical.CanAwaitAsExpression() || p.lexical.InStaticBlock() {
			p.report(diagnostic.CodeAwaitIdentifier, span)
		} else {
			p.arrows.Record(scope.AwaitIdentifierInParameter, name, span)
		}
	case name == "yield":
		if strict || p.lexical.CanYieldAsExpression() {
			p.report(diagnostic.CodeYieldIdentifier, span)
		} else {
			p.deferStrict(scope.StrictYieldIdentifier, name, span)
		}
	case name == "eval" || name == "arguments":
		if strict {
			p.report(diagnostic.CodeStrictEvalArguments, span, name)
		} else {
			p.deferStrict(scope.StrictEvalArguments, name, span)
		}
	case name == "let":
		if strict {
			p.report(diagnostic.CodeUnexpectedStrictReserved, span, name)
		} else {
			p.deferStrict(scope.StrictLetBinding, name, span)
		}
	case lexer.IsReservedInStrict(name):
		if strict {
			p.report(diagnostic.CodeUnexpectedStrictReserved, span, name)
		} else {
			p.deferStrict(scope.StrictReservedWord, name, span)
		}
	case lexer.LookupKeyword(name) != lexer.TokenIdentifier:
		p.report(diagnostic.CodeUnexpectedReserved, span, name)
	}
}

// checkReference validates an identifier used as an expression.
func (p *Parser) checkReference(name string, span position.Span) {
	strict := p.lexical.InStrictMode()

	switch name {
	case "await":
		switch {
		case p.lexical.InStaticBlock():
			p.report(diagnostic.CodeStaticBlockAwait, span)
		case p.module:
			p.report(diagnostic.CodeAwaitIdentifier, span)
		default:
			p.arrows.Record(scope.AwaitIdentifierInParameter, name, span)
		}
	case "yield":
		if strict {
			p.report(diagnostic.CodeYieldIdentifier, span)
		}
	case "arguments":
		if !p.lexical.ArgumentsValid() {
			p.report(diagnostic.CodeArgumentsInField, span)
		}
	case "let":
		if strict {
			p.report(diagnostic.CodeUnexpectedStrictReserved, span, name)
		}
	default:
		if strict && lexer.IsReservedInStrict(name) {
			p.report(diagnostic.CodeUnexpectedStrictReserved, span, name)
		}
	}
}

// checkAssignIdentifier validates an identifier used as an assignment
// target.
func (p *Parser) checkAssignIdentifier(id *ast.Identifier) {
	if (id.Name == "eval" || id.Name == "arguments") && p.lexical.InStrictMode() {
		p.report(diagnostic.CodeStrictEvalArguments, id.Span, id.Name)
	}
}

func (p *Parser) deferStrict(kind scope.ExpressionErrorKind, name string, span position.Span) {
	p.stricts.Record(kind, name, span, position.Span{})
}

// promoteStrict reports the errors deferred for the current function now
// that it is known to be strict.
func (p *Parser) promoteStrict() {
	for _, r := range p.stricts.Current() {
		switch r.Kind {
		case scope.StrictEvalArguments:
			p.report(diagnostic.CodeStrictEvalArguments, r.Span, r.Name)
		case scope.StrictReservedWord, scope.StrictLetBinding:
			p.report(diagnostic.CodeUnexpectedStrictReserved, r.Span, r.Name)
		case scope.StrictYieldIdentifier:
			p.report(diagnostic.CodeYieldIdentifier, r.Span)
		case scope.StrictDuplicateParameter:
			p.reportRelated(diagnostic.CodeDuplicateParameter, r.Span, r.Previous, "first declared here")
		case scope.StrictLegacyOctal:
			p.report(diagnostic.CodeLegacyOctalStrict, r.Span)
		case scope.StrictOctalEscape:
			p.report(diagnostic.CodeOctalEscapeStrict, r.Span)
		}
	}
	p.stricts.Clear()
}

// promoteArrowHead reports the errors recorded while parsing what turned
// out to be the parameters of an arrow function.
func (p *Parser) promoteArrowHead(async bool) {
	for _, r := range p.arrows.Current() {
		switch r.Kind {
		case scope.AwaitExpressionInParameter:
			p.report(diagnostic.CodeAwaitInParameter, r.Span)
		case scope.YieldExpressionInParameter:
			p.report(diagnostic.CodeYieldInParameter, r.Span)
		case scope.AwaitIdentifierInParameter:
			if async {
				p.report(diagnostic.CodeAwaitIdentifier, r.Span)
			}
		}
	}
	p.arrows.Clear()
}

// ===== Declaration =====

func (p *Parser) declareName(name string, span position.Span, kind declKind) {
	p.checkBindingName(name, span, kind)

	var (
		prev position.Span
		ok   = true
	)
	switch kind {
	case declVar:
		prev, ok = p.symbols.DeclareVar(name, span)
	case declLet:
		prev, ok = p.symbols.DeclareLet(name, span)
	case declConst:
		prev, ok = p.symbols.DeclareConst(name, span)
	case declClass:
		prev, ok = p.symbols.DeclareClass(name, span)
	case declImport:
		prev, ok = p.symbols.Declare(scope.BindImport, name, span)
	case declParam:
		p.symbols.DeclareParam(name, span)
	case declCatch:
		p.symbols.BufferCatchParam(name, span)
	}
	if !ok {
		p.reportDuplicate(name, span, prev)
	}
}

// declarePattern declares every name bound by pat.
func (p *Parser) declarePattern(pat ast.Node, kind declKind) {
	switch n := pat.(type) {
	case *ast.Identifier:
		if n.Name == "this" && p.ts && kind == declParam {
			return
		}
		p.declareName(n.Name, nameSpan(n), kind)
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				p.declarePattern(pr.Value, kind)
			case *ast.RestElement:
				p.declarePattern(pr.Argument, kind)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				p.declarePattern(el, kind)
			}
		}
	case *ast.AssignmentPattern:
		p.declarePattern(n.Left, kind)
	case *ast.RestElement:
		p.declarePattern(n.Argument, kind)
	case *ast.TSParameterProperty:
		p.declarePattern(n.Parameter, kind)
	}
}

// nameSpan is the span of the name alone, without a type annotation.
func nameSpan(id *ast.Identifier) position.Span {
	if id.TypeAnnotation == nil && !id.Optional {
		return id.Span
	}
	end := id.Span.Start
	end.Offset += len(id.Name)
	end.Column += len(id.Name)
	return position.NewSpan(id.Span.Start, end)
}

// isSimpleParams reports whether every parameter is a plain identifier.
func isSimpleParams(params []ast.Pattern) bool {
	for _, prm := range params {
		if _, ok := prm.(*ast.Identifier); !ok {
			return false
		}
	}
	return true
}

// declareParams declares the parameters of the function on top of the
// scope stacks. unique forces duplicate names to be errors, as in arrow
// functions and methods.
func (p *Parser) declareParams(params []ast.Pattern, unique bool) {
	if !isSimpleParams(params) {
		p.lexical.SetNonSimpleParams()
	}
	for _, prm := range params {
		p.declarePattern(prm, declParam)
	}

	strict := unique || p.lexical.InStrictMode() || !p.lexical.SimpleParams()
	for _, d := range p.symbols.DuplicateParams() {
		if strict {
			p.reportRelated(diagnostic.CodeDuplicateParameter, d.Span, d.Previous, "first declared here")
			continue
		}
		p.stricts.Record(scope.StrictDuplicateParameter, d.Name, d.Span, d.Previous)
	}
}

// ===== Binding patterns =====

func (p *Parser) parseBindingIdentifier() *ast.Identifier {
	if !p.isIdentifier() {
		p.unexpected()
	}
	tok := p.tok
	p.next()

	return ast.NewIdentifier(tok.Span, tok.Value, nil, false)
}

// parseBindingTarget parses an identifier, array pattern or object
// pattern. Names are declared by the caller.
func (p *Parser) parseBindingTarget() ast.Pattern {
	switch p.tok.Type {
	case lexer.TokenLBracket:
		return p.parseArrayPattern()
	case lexer.TokenLBrace:
		return p.parseObjectPattern()
	}
	return p.parseBindingIdentifier()
}

// parseBindingElement parses a binding target with an optional default.
func (p *Parser) parseBindingElement() ast.Pattern {
	start := p.start()
	target := p.parseBindingTarget()
	if p.at(lexer.TokenAssign) {
		p.next()
		right := p.parseDefaultValue()
		return ast.NewAssignmentPattern(p.spanFrom(start), target, right)
	}
	return target
}

// parseDefaultValue parses the initializer of a binding element. Its
// names are references, so nothing in it is deferred for strictness.
func (p *Parser) parseDefaultValue() ast.Expression {
	p.stricts.EnterRHS()
	defer p.stricts.Exit()

	return p.parseAssignAllowIn()
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	start := p.start()
	p.expect(lexer.TokenLBracket)

	var elems []ast.Pattern
	for !p.at(lexer.TokenRBracket) {
		if p.at(lexer.TokenComma) {
			p.next()
			elems = append(elems, nil)
			continue
		}
		if p.at(lexer.TokenEllipsis) {
			rest := p.parseRestBinding()
			elems = append(elems, rest)
			p.checkRestEnd(lexer.TokenRBracket)
			break
		}
		elems = append(elems, p.parseBindingElement())
		if !p.at(lexer.TokenRBracket) {
			p.expect(lexer.TokenComma)
		}
	}
	p.expect(lexer.TokenRBracket)

	return ast.NewArrayPattern(p.spanFrom(start), elems, nil)
}

func (p *Parser) parseRestBinding() *ast.RestElement {
	start := p.start()
	p.expect(lexer.TokenEllipsis)
	arg := p.parseBindingTarget()
	var ann *ast.TSTypeAnnotation
	if p.ts && p.at(lexer.TokenColon) {
		ann = p.parseTypeAnnotation()
	}
	if p.at(lexer.TokenAssign) {
		p.report(diagnostic.CodeRestInitializer, p.tok.Span)
		p.next()
		p.parseDefaultValue()
	}

	return ast.NewRestElement(p.spanFrom(start), arg, ann)
}

// checkRestEnd reports anything but the closing token after a rest
// element and skips a trailing comma.
func (p *Parser) checkRestEnd(closing lexer.TokenType) {
	if !p.at(lexer.TokenComma) {
		return
	}
	comma := p.tok.Span
	p.next()
	if p.at(closing) {
		p.report(diagnostic.CodeRestTrailingComma, comma)
		return
	}
	p.fatal(diagnostic.CodeRestNotLast, comma)
}

func (p *Parser) parseObjectPattern() *ast.ObjectPattern {
	start := p.start()
	p.expect(lexer.TokenLBrace)

	var props []ast.Node
	for !p.at(lexer.TokenRBrace) {
		if p.at(lexer.TokenEllipsis) {
			rs := p.start()
			p.requireFeature(config.FeatureObjectSpread, p.tok.Span)
			p.next()
			arg := p.parseBindingIdentifier()
			props = append(props, ast.NewRestElement(p.spanFrom(rs), arg, nil))
			p.checkRestEnd(lexer.TokenRBrace)
			break
		}
		props = append(props, p.parseBindingProperty())
		if !p.at(lexer.TokenRBrace) {
			p.expect(lexer.TokenComma)
		}
	}
	p.expect(lexer.TokenRBrace)

	return ast.NewObjectPattern(p.spanFrom(start), props, nil)
}

func (p *Parser) parseBindingProperty() *ast.Property {
	start := p.start()
	keyTok := p.tok
	key, computed := p.parsePropertyKey(false)

	if p.eat(lexer.TokenColon) {
		value := p.parseBindingElement()
		return ast.NewProperty(p.spanFrom(start), key, value, ast.PropertyInit, false, false, computed)
	}

	if computed || !isIdentifierToken(keyTok.Type) {
		p.fatal(diagnostic.CodeUnexpectedToken, p.tok.Span, describe(p.tok))
	}
	var value ast.Pattern = ast.NewIdentifier(keyTok.Span, keyTok.Value, nil, false)
	if p.at(lexer.TokenAssign) {
		p.next()
		right := p.parseDefaultValue()
		value = ast.NewAssignmentPattern(p.spanFrom(start), value, right)
	}

	return ast.NewProperty(p.spanFrom(start), key, value, ast.PropertyInit, false, true, false)
}

// ===== Cover grammar =====

// toPattern reinterprets an expression parsed as a cover as a pattern.
// binding selects binding patterns (parameters), which admit only
// identifiers at the leaves; otherwise member expressions are accepted as
// assignment targets.
func (p *Parser) toPattern(n ast.Node, binding bool) ast.Pattern {
	switch e := n.(type) {
	case *ast.Identifier:
		if binding && e.Parens {
			p.report(diagnostic.CodeParenthesizedPattern, e.Span)
		}
		if !binding {
			p.checkAssignIdentifier(e)
		}
		return e

	case *ast.MemberExpression:
		if isOptionalChain(e) {
			p.fatal(diagnostic.CodeInvalidAssignmentTarget, e.Span)
		}
		if binding {
			p.report(diagnostic.CodeInvalidDestructuring, e.Span)
		}
		return e

	case *ast.ObjectExpression:
		if e.Parens {
			p.report(diagnostic.CodeParenthesizedPattern, e.Span)
		}
		p.dropProtoDups(e)
		props := make([]ast.Node, 0, len(e.Properties))
		for i, prop := range e.Properties {
			switch pr := prop.(type) {
			case *ast.SpreadElement:
				p.checkRestPosition(e, i == len(e.Properties)-1, pr.Span)
				arg := p.toPattern(pr.Argument, binding)
				if _, ok := arg.(*ast.Identifier); !ok && binding {
					p.report(diagnostic.CodeInvalidDestructuring, arg.GetSpan())
				}
				props = append(props, ast.NewRestElement(pr.Span, arg, nil))
			case *ast.Property:
				if pr.Method || pr.PropKind != ast.PropertyInit {
					p.report(diagnostic.CodeInvalidDestructuring, pr.Span)
					props = append(props, pr)
					continue
				}
				p.dropCoverInit(pr)
				pr.Value = p.toPattern(pr.Value, binding)
				props = append(props, pr)
			}
		}
		return ast.NewObjectPattern(e.Span, props, nil)

	case *ast.ArrayExpression:
		if e.Parens {
			p.report(diagnostic.CodeParenthesizedPattern, e.Span)
		}
		elems := make([]ast.Pattern, len(e.Elements))
		for i, el := range e.Elements {
			if el == nil {
				continue
			}
			if spread, ok := el.(*ast.SpreadElement); ok {
				p.checkRestPosition(e, i == len(e.Elements)-1, spread.Span)
				elems[i] = ast.NewRestElement(spread.Span, p.toPattern(spread.Argument, binding), nil)
				continue
			}
			elems[i] = p.toPattern(el, binding)
		}
		return ast.NewArrayPattern(e.Span, elems, nil)

	case *ast.AssignmentExpression:
		if e.Operator != lexer.TokenAssign {
			p.fatal(diagnostic.CodeInvalidAssignmentTarget, e.Span)
		}
		if e.Parens {
			p.report(diagnostic.CodeParenthesizedPattern, e.Span)
		}
		return ast.NewAssignmentPattern(e.Span, p.repattern(e.Left, binding), e.Right)

	case *ast.AssignmentPattern:
		// shorthand `{a = 1}` recorded while parsing the object literal
		e.Left = p.repattern(e.Left, binding)
		return e

	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.RestElement:
		return p.repattern(e.(ast.Pattern), binding)

	case *ast.TSAsExpression, *ast.TSSatisfiesExpression, *ast.TSNonNullExpression, *ast.TSTypeAssertion:
		if binding {
			p.fatal(diagnostic.CodeInvalidAssignmentTarget, n.GetSpan())
		}
		return n.(ast.Pattern)
	}

	p.fatal(diagnostic.CodeInvalidAssignmentTarget, n.GetSpan())
	return nil
}

// repattern revisits a node that is already a pattern. Assignment
// targets were checked when they were converted; a binding context adds
// the restriction to plain names.
func (p *Parser) repattern(pat ast.Pattern, binding bool) ast.Pattern {
	if !binding {
		return pat
	}
	switch n := pat.(type) {
	case *ast.MemberExpression:
		p.report(diagnostic.CodeInvalidDestructuring, n.Span)
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				if v, ok := pr.Value.(ast.Pattern); ok {
					pr.Value = p.repattern(v, binding)
				}
			case *ast.RestElement:
				pr.Argument = p.repattern(pr.Argument, binding)
			}
		}
	case *ast.ArrayPattern:
		for i, el := range n.Elements {
			if el != nil {
				n.Elements[i] = p.repattern(el, binding)
			}
		}
	case *ast.AssignmentPattern:
		n.Left = p.repattern(n.Left, binding)
	case *ast.RestElement:
		n.Argument = p.repattern(n.Argument, binding)
	case *ast.TSAsExpression, *ast.TSSatisfiesExpression, *ast.TSNonNullExpression, *ast.TSTypeAssertion:
		p.fatal(diagnostic.CodeInvalidAssignmentTarget, n.GetSpan())
	}
	return pat
}

func (p *Parser) checkRestPosition(container ast.Node, last bool, span position.Span) {
	if !last {
		p.report(diagnostic.CodeRestNotLast, span)
		return
	}
	if comma, ok := p.restCommas[container]; ok {
		p.report(diagnostic.CodeRestTrailingComma, comma)
	}
}

// simpleTarget validates the operand of an update or compound assignment.
func (p *Parser) simpleTarget(e ast.Expression) ast.Pattern {
	switch t := e.(type) {
	case *ast.Identifier:
		p.checkAssignIdentifier(t)
		return t
	case *ast.MemberExpression:
		if !isOptionalChain(t) {
			return t
		}
	case *ast.TSAsExpression:
		p.simpleTarget(t.Expression)
		return t
	case *ast.TSSatisfiesExpression:
		p.simpleTarget(t.Expression)
		return t
	case *ast.TSNonNullExpression:
		p.simpleTarget(t.Expression)
		return t
	case *ast.TSTypeAssertion:
		p.simpleTarget(t.Expression)
		return t
	}

	p.fatal(diagnostic.CodeInvalidAssignmentTarget, e.GetSpan())
	return nil
}

// isOptionalChain reports whether e is part of an unparenthesized `?.`
// chain.
func isOptionalChain(e ast.Expression) bool {
	for {
		switch n := e.(type) {
		case *ast.MemberExpression:
			if n.Optional {
				return true
			}
			if n.Object.Parenthesized() {
				return false
			}
			e = n.Object
		case *ast.CallExpression:
			if n.Optional {
				return true
			}
			if n.Callee.Parenthesized() {
				return false
			}
			e = n.Callee
		case *ast.TSNonNullExpression:
			if n.Expression.Parenthesized() {
				return false
			}
			e = n.Expression
		default:
			return false
		}
	}
}
