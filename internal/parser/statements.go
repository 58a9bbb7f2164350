package parser

import (
	"github.com/lua-front/compiler/pkg/ast"
	"github.com/lua-front/compiler/pkg/token"
)

// parseChunk implements the chunk state machine from the grammar:
// ReadStat loops over statement-starting tokens (each may be followed
// by an optional ';'); once the current token cannot start a statement,
// it falls through to ReadLastStat (return/break, also with an optional
// trailing ';') if present, then Done.
func (p *Parser) parseChunk(cur TokenCursor) (ast.Chunk, TokenCursor) {
	var statements []ast.Statement

	for startsStatement(cur.Current().Type) {
		if cur.Is(token.SEMI) {
			cur = cur.Advance()
			continue
		}

		before := cur
		stmt, next := p.parseStatement(cur)
		cur = next
		if stmt != nil {
			statements = append(statements, stmt)
		}
		if cur.Is(token.SEMI) {
			cur = cur.Advance()
		}
		// A production that makes no progress would loop forever; force
		// one token of progress so a malformed statement can't hang the
		// parser.
		if cur.index == before.index {
			cur = cur.Advance()
		}
	}

	var last ast.LastStatement
	if cur.IsAny(token.RETURN, token.BREAK) {
		last, cur = p.parseLastStatement(cur)
		if cur.Is(token.SEMI) {
			cur = cur.Advance()
		}
	}

	return ast.Chunk{Statements: statements, Last: last}, cur
}

func (p *Parser) parseBlock(cur TokenCursor) (ast.Block, TokenCursor) {
	chunk, cur := p.parseChunk(cur)
	return ast.Block{Chunk: chunk}, cur
}

func (p *Parser) parseLastStatement(cur TokenCursor) (ast.LastStatement, TokenCursor) {
	pos := cur.Position()
	if cur.Is(token.BREAK) {
		return &ast.Break{Pos: pos}, cur.Advance()
	}
	// RETURN
	cur = cur.Advance()
	var values []ast.Expr
	if startsExpr(cur.Current().Type) {
		values, cur = p.parseExprList(cur)
	}
	return &ast.Return{Values: values, Pos: pos}, cur
}

func (p *Parser) parseStatement(cur TokenCursor) (ast.Statement, TokenCursor) {
	switch cur.Current().Type {
	case token.DO:
		return p.parseDo(cur)
	case token.WHILE:
		return p.parseWhile(cur)
	case token.REPEAT:
		return p.parseRepeat(cur)
	case token.IF:
		return p.parseIf(cur)
	case token.FOR:
		return p.parseFor(cur)
	case token.FUNCTION:
		return p.parseFunctionDecl(cur)
	case token.LOCAL:
		return p.parseLocal(cur)
	default:
		return p.parseExprStatement(cur)
	}
}

func (p *Parser) parseDo(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'do'
	body, cur := p.parseBlock(cur)
	cur = p.expect(cur, token.END, "'end'")
	return &ast.Do{Body: body, Pos: pos}, cur
}

func (p *Parser) parseWhile(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'while'
	cond, cur := p.parseExpr(cur, OrPrec)
	cur = p.expect(cur, token.DO, "'do'")
	body, cur := p.parseBlock(cur)
	cur = p.expect(cur, token.END, "'end'")
	return &ast.While{Cond: cond, Body: body, Pos: pos}, cur
}

func (p *Parser) parseRepeat(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'repeat'
	body, cur := p.parseBlock(cur)
	cur = p.expect(cur, token.UNTIL, "'until'")
	cond, cur := p.parseExpr(cur, OrPrec)
	return &ast.Repeat{Body: body, Cond: cond, Pos: pos}, cur
}

func (p *Parser) parseIf(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'if'
	cond, cur := p.parseExpr(cur, OrPrec)
	cur = p.expect(cur, token.THEN, "'then'")
	thenBlock, cur := p.parseBlock(cur)

	var elseIfs []ast.ElseIf
	for cur.Is(token.ELSEIF) {
		cur = cur.Advance()
		elseCond, next := p.parseExpr(cur, OrPrec)
		cur = next
		cur = p.expect(cur, token.THEN, "'then'")
		elseBlock, next2 := p.parseBlock(cur)
		cur = next2
		elseIfs = append(elseIfs, ast.ElseIf{Cond: elseCond, Block: elseBlock})
	}

	var elseBlock *ast.Block
	if cur.Is(token.ELSE) {
		cur = cur.Advance()
		b, next := p.parseBlock(cur)
		cur = next
		elseBlock = &b
	}

	cur = p.expect(cur, token.END, "'end'")
	return &ast.If{Cond: cond, Then: thenBlock, ElseIfs: elseIfs, Else: elseBlock, Pos: pos}, cur
}

// parseFor disambiguates the two 'for' forms by lookahead on the token
// following the first name: '=' means a numeric for, anything else
// (expected to be ',' or 'in') means a generic for.
func (p *Parser) parseFor(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'for'

	firstTok := cur.Current()
	cur = p.expect(cur, token.NAME, "name")
	firstName := ast.Name{Text: firstTok.Literal, Pos: firstTok.Pos}

	if cur.Is(token.ASSIGN) {
		return p.parseForNumeric(cur, firstName, pos)
	}
	return p.parseForGeneric(cur, firstName, pos)
}

func (p *Parser) parseForNumeric(cur TokenCursor, name ast.Name, pos token.Position) (ast.Statement, TokenCursor) {
	cur = cur.Advance() // '='
	from, cur := p.parseExpr(cur, OrPrec)
	cur = p.expect(cur, token.COMMA, "','")
	to, cur := p.parseExpr(cur, OrPrec)

	var step ast.Expr
	if cur.Is(token.COMMA) {
		cur = cur.Advance()
		step, cur = p.parseExpr(cur, OrPrec)
	}

	cur = p.expect(cur, token.DO, "'do'")
	body, cur := p.parseBlock(cur)
	cur = p.expect(cur, token.END, "'end'")

	return &ast.ForNumeric{Name: name, From: from, To: to, Step: step, Body: body, Pos: pos}, cur
}

func (p *Parser) parseForGeneric(cur TokenCursor, first ast.Name, pos token.Position) (ast.Statement, TokenCursor) {
	names := []ast.Name{first}
	for cur.Is(token.COMMA) {
		cur = cur.Advance()
		tok := cur.Current()
		cur = p.expect(cur, token.NAME, "name")
		names = append(names, ast.Name{Text: tok.Literal, Pos: tok.Pos})
	}

	cur = p.expect(cur, token.IN, "'in'")
	exprs, cur := p.parseExprList(cur)
	cur = p.expect(cur, token.DO, "'do'")
	body, cur := p.parseBlock(cur)
	cur = p.expect(cur, token.END, "'end'")

	return &ast.ForGeneric{Names: names, Exprs: exprs, Body: body, Pos: pos}, cur
}

func (p *Parser) parseFunctionDecl(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'function'
	name, cur := p.parseFuncName(cur)
	body, cur := p.parseFuncBody(cur)
	return &ast.FunctionDecl{Name: name, Body: body, Pos: pos}, cur
}

func (p *Parser) parseFuncName(cur TokenCursor) (ast.FuncName, TokenCursor) {
	headTok := cur.Current()
	cur = p.expect(cur, token.NAME, "name")
	head := ast.Name{Text: headTok.Literal, Pos: headTok.Pos}

	var dotted []ast.Name
	for cur.Is(token.DOT) {
		cur = cur.Advance()
		tok := cur.Current()
		cur = p.expect(cur, token.NAME, "name")
		dotted = append(dotted, ast.Name{Text: tok.Literal, Pos: tok.Pos})
	}

	var method *ast.Name
	if cur.Is(token.COLON) {
		cur = cur.Advance()
		tok := cur.Current()
		cur = p.expect(cur, token.NAME, "method name")
		m := ast.Name{Text: tok.Literal, Pos: tok.Pos}
		method = &m
	}

	return ast.FuncName{Head: head, Dotted: dotted, Method: method}, cur
}

func (p *Parser) parseLocal(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()
	cur = cur.Advance() // 'local'

	if cur.Is(token.FUNCTION) {
		cur = cur.Advance()
		tok := cur.Current()
		cur = p.expect(cur, token.NAME, "name")
		name := ast.Name{Text: tok.Literal, Pos: tok.Pos}
		body, cur := p.parseFuncBody(cur)
		return &ast.LocalFunction{Name: name, Body: body, Pos: pos}, cur
	}

	tok := cur.Current()
	cur = p.expect(cur, token.NAME, "name")
	names := []ast.Name{{Text: tok.Literal, Pos: tok.Pos}}
	for cur.Is(token.COMMA) {
		cur = cur.Advance()
		t := cur.Current()
		cur = p.expect(cur, token.NAME, "name")
		names = append(names, ast.Name{Text: t.Literal, Pos: t.Pos})
	}

	var values []ast.Expr
	if cur.Is(token.ASSIGN) {
		cur = cur.Advance()
		values, cur = p.parseExprList(cur)
	}

	return &ast.LocalVars{Names: names, Values: values, Pos: pos}, cur
}

// parseExprStatement handles the two statement forms that begin with a
// prefixexp: a bare function call, or the head of a varlist '=' explist
// assignment. A call is only valid as the entire statement; a parenthesized
// expression with no call suffix is valid in neither role.
func (p *Parser) parseExprStatement(cur TokenCursor) (ast.Statement, TokenCursor) {
	pos := cur.Position()

	if !startsExpr(cur.Current().Type) {
		p.errorf(pos, "unexpected "+describe(cur.Current())+", expected statement")
		return nil, cur.Advance()
	}

	first, cur := p.parsePrefixExpr(cur)

	switch first.(type) {
	case *ast.CallArgs, *ast.CallMethod:
		if cur.Is(token.ASSIGN) || cur.Is(token.COMMA) {
			// A call is being used where an assignment target list was
			// expected: "f() = 1" or "f(), x = 1, 2". Report the precise
			// error and resync past the rest of the assignment rather
			// than misreporting it as two unrelated statements.
			p.errorf(pos, "assignment target must be a variable, not a function call")
			for cur.Is(token.COMMA) {
				cur = cur.Advance()
				_, next := p.parsePrefixExpr(cur)
				cur = next
			}
			if cur.Is(token.ASSIGN) {
				cur = cur.Advance()
				_, next := p.parseExprList(cur)
				cur = next
			}
			return nil, cur
		}
		return &ast.FunctionCallStat{Call: first, Pos: pos}, cur
	}

	v, ok := first.(ast.Var)
	if !ok {
		p.errorf(pos, "syntax error: expression cannot be used as a statement")
		return nil, cur
	}

	targets := []ast.Var{v}
	for cur.Is(token.COMMA) {
		cur = cur.Advance()
		next, nextCur := p.parsePrefixExpr(cur)
		cur = nextCur
		if nv, ok := next.(ast.Var); ok {
			targets = append(targets, nv)
		} else {
			p.errorf(pos, "syntax error: assignment target must be a variable")
		}
	}

	cur = p.expect(cur, token.ASSIGN, "'='")
	values, cur := p.parseExprList(cur)

	return &ast.Assign{Targets: targets, Values: values, Pos: pos}, cur
}
