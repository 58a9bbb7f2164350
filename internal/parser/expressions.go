package parser

import (
	"github.com/lua-front/compiler/pkg/ast"
	"github.com/lua-front/compiler/pkg/token"
)

// startsExpr reports whether t can lead an expression, used both to
// decide whether a 'return' carries a value list and whether a bare
// statement should attempt a prefixexp parse at all.
func startsExpr(t token.Type) bool {
	switch t {
	case token.NIL, token.TRUE, token.FALSE, token.VARARG, token.NUMBER, token.STRING,
		token.FUNCTION, token.NAME, token.LPAREN, token.LBRACE,
		token.NOT, token.HASH, token.MINUS:
		return true
	default:
		return false
	}
}

func isArgsStart(t token.Type) bool {
	return t == token.LPAREN || t == token.LBRACE || t == token.STRING
}

// parseExprList parses a comma-separated list of expressions; the
// grammar requires at least one.
func (p *Parser) parseExprList(cur TokenCursor) ([]ast.Expr, TokenCursor) {
	var exprs []ast.Expr
	e, cur := p.parseExpr(cur, OrPrec)
	exprs = append(exprs, e)
	for cur.Is(token.COMMA) {
		cur = cur.Advance()
		e, next := p.parseExpr(cur, OrPrec)
		cur = next
		exprs = append(exprs, e)
	}
	return exprs, cur
}

// parseExpr implements the precedence-climbing cascade: it parses a
// unary/primary operand, then repeatedly extends it with binary
// operators whose precedence is at least minPrec. Right-associative
// operators ('..' and '^') recurse into the same level on their
// right-hand side instead of the next one up.
func (p *Parser) parseExpr(cur TokenCursor, minPrec int) (ast.Expr, TokenCursor) {
	left, cur := p.parseUnary(cur)

	for {
		opType := cur.Current().Type
		prec, ok := binaryPrecedence[opType]
		if !ok || prec < minPrec {
			return left, cur
		}

		opPos := cur.Position()
		cur = cur.Advance()

		nextMinPrec := prec + 1
		if rightAssociative[opType] {
			nextMinPrec = prec
		}

		right, next := p.parseExpr(cur, nextMinPrec)
		cur = next
		left = &ast.BinOp{Op: opType, Left: left, Right: right, Pos: opPos}
	}
}

// parseUnary handles the prefix operators 'not', '#', and unary '-'.
// The operand is parsed at precedence Unary, which lets '^' (Power,
// the only level that outranks Unary) still bind into the operand:
// "-a^b" parses as "-(a^b)".
func (p *Parser) parseUnary(cur TokenCursor) (ast.Expr, TokenCursor) {
	if cur.IsAny(token.NOT, token.HASH, token.MINUS) {
		op := cur.Current().Type
		pos := cur.Position()
		cur = cur.Advance()
		operand, cur := p.parseExpr(cur, Unary)
		return &ast.UnOp{Op: op, Operand: operand, Pos: pos}, cur
	}
	return p.parsePrimary(cur)
}

func (p *Parser) parsePrimary(cur TokenCursor) (ast.Expr, TokenCursor) {
	pos := cur.Position()
	switch cur.Current().Type {
	case token.NIL:
		return &ast.Nil{Pos: pos}, cur.Advance()
	case token.TRUE:
		return &ast.True{Pos: pos}, cur.Advance()
	case token.FALSE:
		return &ast.False{Pos: pos}, cur.Advance()
	case token.VARARG:
		return &ast.Vararg{Pos: pos}, cur.Advance()
	case token.NUMBER:
		v := cur.Current().NumberValue
		return &ast.Number{Value: v, Pos: pos}, cur.Advance()
	case token.STRING:
		v := cur.Current().Literal
		return &ast.String{Value: v, Pos: pos}, cur.Advance()
	case token.FUNCTION:
		cur = cur.Advance()
		body, cur := p.parseFuncBody(cur)
		return &ast.Function{Body: body, Pos: pos}, cur
	case token.LBRACE:
		fields, cur := p.parseFieldList(cur)
		return &ast.Table{Fields: fields, Pos: pos}, cur
	case token.NAME, token.LPAREN:
		return p.parsePrefixExpr(cur)
	default:
		p.errorf(pos, "unexpected "+describe(cur.Current())+", expected expression")
		return &ast.Nil{Pos: pos}, cur.Advance()
	}
}

// parsePrefixExpr parses the prefixexp grammar role iteratively: an
// atom (a bare name, or a parenthesized expression), followed by zero
// or more suffixes that each extend the result in place. This replaces
// backtracking over the left-recursive grammar with a single forward
// pass.
func (p *Parser) parsePrefixExpr(cur TokenCursor) (ast.Expr, TokenCursor) {
	pos := cur.Position()

	var base ast.Expr
	switch {
	case cur.Is(token.NAME):
		tok := cur.Current()
		base = &ast.VarName{Name: ast.Name{Text: tok.Literal, Pos: tok.Pos}}
		cur = cur.Advance()
	case cur.Is(token.LPAREN):
		cur = cur.Advance()
		inner, next := p.parseExpr(cur, OrPrec)
		cur = next
		cur = p.expect(cur, token.RPAREN, "')'")
		base = &ast.Paren{Inner: inner, Pos: pos}
	default:
		p.errorf(pos, "unexpected "+describe(cur.Current())+", expected expression")
		return &ast.Nil{Pos: pos}, cur.Advance()
	}

	for {
		switch {
		case cur.Is(token.DOT):
			fieldPos := cur.Position()
			cur = cur.Advance()
			tok := cur.Current()
			cur = p.expect(cur, token.NAME, "name")
			base = &ast.VarField{Base: base, Name: ast.Name{Text: tok.Literal, Pos: tok.Pos}, Pos: fieldPos}
		case cur.Is(token.LBRACKET):
			idxPos := cur.Position()
			cur = cur.Advance()
			idx, next := p.parseExpr(cur, OrPrec)
			cur = next
			cur = p.expect(cur, token.RBRACKET, "']'")
			base = &ast.VarIndex{Base: base, Index: idx, Pos: idxPos}
		case cur.Is(token.COLON):
			methodPos := cur.Position()
			cur = cur.Advance()
			tok := cur.Current()
			cur = p.expect(cur, token.NAME, "method name")
			args, next := p.parseArgs(cur)
			cur = next
			base = &ast.CallMethod{Base: base, Method: ast.Name{Text: tok.Literal, Pos: tok.Pos}, Args: args, Pos: methodPos}
		case isArgsStart(cur.Current().Type):
			callPos := cur.Position()
			args, next := p.parseArgs(cur)
			cur = next
			base = &ast.CallArgs{Base: base, Args: args, Pos: callPos}
		default:
			return base, cur
		}
	}
}

// parseArgs parses the three call-argument forms: a parenthesized
// expression list, a table constructor, or a bare string literal.
func (p *Parser) parseArgs(cur TokenCursor) (ast.Args, TokenCursor) {
	pos := cur.Position()
	switch {
	case cur.Is(token.LPAREN):
		cur = cur.Advance()
		var exprs []ast.Expr
		if !cur.Is(token.RPAREN) {
			exprs, cur = p.parseExprList(cur)
		}
		cur = p.expect(cur, token.RPAREN, "')'")
		return &ast.ParenArgs{Exprs: exprs, Pos: pos}, cur
	case cur.Is(token.LBRACE):
		fields, cur := p.parseFieldList(cur)
		return &ast.TableArgs{Fields: fields, Pos: pos}, cur
	case cur.Is(token.STRING):
		tok := cur.Current()
		return &ast.StringArgs{Value: tok.Literal, Pos: pos}, cur.Advance()
	default:
		p.errorf(pos, "expected function arguments")
		return &ast.ParenArgs{Pos: pos}, cur
	}
}

// parseFieldList parses a table constructor's body: '{' fields '}',
// fields separated by ',' or ';' with an optional trailing separator.
func (p *Parser) parseFieldList(cur TokenCursor) (ast.FieldList, TokenCursor) {
	cur = p.expect(cur, token.LBRACE, "'{'")

	var fields []ast.Field
	trailing := false
	for !cur.Is(token.RBRACE) && !cur.IsEOF() {
		field, next := p.parseField(cur)
		cur = next
		fields = append(fields, field)

		if cur.Is(token.COMMA) || cur.Is(token.SEMI) {
			cur = cur.Advance()
			if cur.Is(token.RBRACE) {
				trailing = true
			}
			continue
		}
		break
	}

	cur = p.expect(cur, token.RBRACE, "'}'")
	return ast.FieldList{Fields: fields, TrailingSep: trailing}, cur
}

// parseField parses one table constructor field: '[' exp ']' '=' exp,
// Name '=' exp, or a bare exp. The Name '=' form is distinguished from a
// bare expression starting with a name by one token of lookahead.
func (p *Parser) parseField(cur TokenCursor) (ast.Field, TokenCursor) {
	if cur.Is(token.LBRACKET) {
		cur = cur.Advance()
		key, next := p.parseExpr(cur, OrPrec)
		cur = next
		cur = p.expect(cur, token.RBRACKET, "']'")
		cur = p.expect(cur, token.ASSIGN, "'='")
		value, next2 := p.parseExpr(cur, OrPrec)
		cur = next2
		return &ast.IndexedField{Key: key, Value: value}, cur
	}

	if cur.Is(token.NAME) && cur.Peek(1).Type == token.ASSIGN {
		tok := cur.Current()
		cur = cur.Advance().Advance()
		value, next := p.parseExpr(cur, OrPrec)
		cur = next
		return &ast.NamedField{Key: ast.Name{Text: tok.Literal, Pos: tok.Pos}, Value: value}, cur
	}

	value, cur := p.parseExpr(cur, OrPrec)
	return &ast.PositionalField{Value: value}, cur
}

// parseFuncBody parses a parameter list plus block, delimited by 'end'.
// The caller has already consumed the leading 'function' keyword (or,
// for a FuncName, the dotted/method name that follows it).
func (p *Parser) parseFuncBody(cur TokenCursor) (ast.FuncBody, TokenCursor) {
	pos := cur.Position()
	cur = p.expect(cur, token.LPAREN, "'('")
	params, cur := p.parseParList(cur)
	cur = p.expect(cur, token.RPAREN, "')'")
	body, cur := p.parseBlock(cur)
	cur = p.expect(cur, token.END, "'end'")
	return ast.FuncBody{Params: params, Body: body, Pos: pos}, cur
}

func (p *Parser) parseParList(cur TokenCursor) (ast.ParList, TokenCursor) {
	var names []ast.Name
	if cur.Is(token.RPAREN) {
		return ast.ParList{}, cur
	}

	for {
		if cur.Is(token.VARARG) {
			cur = cur.Advance()
			return ast.ParList{Names: names, Vararg: true}, cur
		}
		tok := cur.Current()
		cur = p.expect(cur, token.NAME, "name")
		names = append(names, ast.Name{Text: tok.Literal, Pos: tok.Pos})

		if cur.Is(token.COMMA) {
			cur = cur.Advance()
			continue
		}
		break
	}

	return ast.ParList{Names: names}, cur
}
