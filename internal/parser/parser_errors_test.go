package parser

import (
	"testing"

	"github.com/lua-front/compiler/internal/diag"
	"github.com/lua-front/compiler/pkg/ast"
)

func TestMissingEndIsSyntacticError(t *testing.T) {
	_, errs := parse(t, "do x = 1")
	if len(errs) == 0 {
		t.Fatalf("expected a diagnostic for a missing 'end'")
	}
	if errs[0].Kind != diag.Syntactic {
		t.Fatalf("expected Syntactic diagnostic, got %v", errs[0].Kind)
	}
}

func TestForHeaderMatchingNeitherForm(t *testing.T) {
	_, errs := parse(t, "for do end")
	if len(errs) == 0 {
		t.Fatalf("expected a diagnostic for a malformed for-header")
	}
}

func TestTrailingSemicolonsBetweenStatements(t *testing.T) {
	chunk, errs := parse(t, "x = 1; y = 2;")
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
	if len(chunk.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(chunk.Statements))
	}
}

func TestTrailingSemicolonAfterReturn(t *testing.T) {
	chunk, errs := parse(t, "x = 1; return x;")
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
	if _, ok := chunk.Last.(*ast.Return); !ok {
		t.Fatalf("expected trailing Return, got %+v", chunk.Last)
	}
}

func TestSemicolonAfterReturnInsideBlock(t *testing.T) {
	_, errs := parse(t, "if a then return 1; end")
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
}

func TestParenthesizedExpressionAsBareStatementIsError(t *testing.T) {
	_, errs := parse(t, "(x)")
	if len(errs) == 0 {
		t.Fatalf("expected a diagnostic: a bare parenthesized expression is not a valid statement")
	}
}

func TestParenWrappedCallIsAValidStatement(t *testing.T) {
	// "(f)()" is a call whose base happens to be parenthesized; this is
	// a legal function-call statement, unlike a bare "(f)".
	chunk, errs := parse(t, "(f)()")
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
	stat, ok := chunk.Statements[0].(*ast.FunctionCallStat)
	if !ok {
		t.Fatalf("expected FunctionCallStat, got %+v", chunk.Statements[0])
	}
	call, ok := stat.Call.(*ast.CallArgs)
	if !ok {
		t.Fatalf("got %+v", stat.Call)
	}
	if _, ok := call.Base.(*ast.Paren); !ok {
		t.Fatalf("expected call base to be a Paren, got %+v", call.Base)
	}
}

func TestParserDoesNotPanicOnGarbageInput(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("parser panicked on malformed input: %v", r)
		}
	}()
	_, _ = parse(t, "end end end = = = until")
}

func TestEmptyFunctionBody(t *testing.T) {
	chunk, errs := parse(t, "function f() end")
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
	decl, ok := chunk.Statements[0].(*ast.FunctionDecl)
	if !ok || decl.Name.Head.Text != "f" {
		t.Fatalf("got %+v", chunk.Statements[0])
	}
}

func TestDottedAndMethodFunctionName(t *testing.T) {
	chunk, errs := parse(t, "function a.b.c:d() end")
	if len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
	decl, ok := chunk.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %+v", chunk.Statements[0])
	}
	if decl.Name.Head.Text != "a" || len(decl.Name.Dotted) != 2 {
		t.Fatalf("got %+v", decl.Name)
	}
	if decl.Name.Method == nil || decl.Name.Method.Text != "d" {
		t.Fatalf("expected method 'd', got %+v", decl.Name.Method)
	}
}
