package cmd

import (
	"fmt"
	"io"

	"github.com/lua-front/compiler/pkg/ast"
)

// emitChunk implements the emit(tree) collaborator contract: a
// depth-indented dump of the parsed syntax tree, for debugging the
// parser and for snapshot-testing its output. The dump is an outline:
// call arguments, table fields, function parameters, local names, and
// the bounds and iterator expressions of for loops are not printed.
func emitChunk(w io.Writer, chunk *ast.Chunk) {
	fmt.Fprintln(w, "Chunk:")
	dumpChunk(w, *chunk, 1)
}

func indentOf(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}

func dumpChunk(w io.Writer, c ast.Chunk, depth int) {
	ind := indentOf(depth)
	for _, stmt := range c.Statements {
		dumpStatement(w, stmt, depth)
	}
	switch last := c.Last.(type) {
	case *ast.Return:
		fmt.Fprintf(w, "%sReturn (%d values)\n", ind, len(last.Values))
		for _, e := range last.Values {
			dumpExpr(w, e, depth+1)
		}
	case *ast.Break:
		fmt.Fprintf(w, "%sBreak\n", ind)
	}
}

func dumpStatement(w io.Writer, stmt ast.Statement, depth int) {
	ind := indentOf(depth)
	switch s := stmt.(type) {
	case *ast.Assign:
		fmt.Fprintf(w, "%sAssign (%d targets)\n", ind, len(s.Targets))
		for _, t := range s.Targets {
			dumpExpr(w, t, depth+1)
		}
		for _, v := range s.Values {
			dumpExpr(w, v, depth+1)
		}
	case *ast.FunctionCallStat:
		fmt.Fprintf(w, "%sFunctionCallStat\n", ind)
		dumpExpr(w, s.Call, depth+1)
	case *ast.Do:
		fmt.Fprintf(w, "%sDo\n", ind)
		dumpChunk(w, s.Body.Chunk, depth+1)
	case *ast.While:
		fmt.Fprintf(w, "%sWhile\n", ind)
		dumpExpr(w, s.Cond, depth+1)
		dumpChunk(w, s.Body.Chunk, depth+1)
	case *ast.Repeat:
		fmt.Fprintf(w, "%sRepeat\n", ind)
		dumpChunk(w, s.Body.Chunk, depth+1)
		dumpExpr(w, s.Cond, depth+1)
	case *ast.If:
		fmt.Fprintf(w, "%sIf\n", ind)
		dumpExpr(w, s.Cond, depth+1)
		dumpChunk(w, s.Then.Chunk, depth+1)
		for _, ei := range s.ElseIfs {
			fmt.Fprintf(w, "%sElseIf\n", ind)
			dumpExpr(w, ei.Cond, depth+1)
			dumpChunk(w, ei.Block.Chunk, depth+1)
		}
		if s.Else != nil {
			fmt.Fprintf(w, "%sElse\n", ind)
			dumpChunk(w, s.Else.Chunk, depth+1)
		}
	case *ast.ForNumeric:
		fmt.Fprintf(w, "%sForNumeric %s\n", ind, s.Name.Text)
		dumpChunk(w, s.Body.Chunk, depth+1)
	case *ast.ForGeneric:
		fmt.Fprintf(w, "%sForGeneric\n", ind)
		dumpChunk(w, s.Body.Chunk, depth+1)
	case *ast.FunctionDecl:
		fmt.Fprintf(w, "%sFunctionDecl %s\n", ind, s.Name.Head.Text)
		dumpChunk(w, s.Body.Body.Chunk, depth+1)
	case *ast.LocalFunction:
		fmt.Fprintf(w, "%sLocalFunction %s\n", ind, s.Name.Text)
		dumpChunk(w, s.Body.Body.Chunk, depth+1)
	case *ast.LocalVars:
		fmt.Fprintf(w, "%sLocalVars (%d names)\n", ind, len(s.Names))
		for _, v := range s.Values {
			dumpExpr(w, v, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%T\n", ind, stmt)
	}
}

func dumpExpr(w io.Writer, e ast.Expr, depth int) {
	ind := indentOf(depth)
	switch v := e.(type) {
	case *ast.Nil:
		fmt.Fprintf(w, "%sNil\n", ind)
	case *ast.True:
		fmt.Fprintf(w, "%sTrue\n", ind)
	case *ast.False:
		fmt.Fprintf(w, "%sFalse\n", ind)
	case *ast.Vararg:
		fmt.Fprintf(w, "%sVararg\n", ind)
	case *ast.Number:
		fmt.Fprintf(w, "%sNumber: %v\n", ind, v.Value)
	case *ast.String:
		fmt.Fprintf(w, "%sString: %q\n", ind, v.Value)
	case *ast.VarName:
		fmt.Fprintf(w, "%sVarName: %s\n", ind, v.Name.Text)
	case *ast.VarField:
		fmt.Fprintf(w, "%sVarField: .%s\n", ind, v.Name.Text)
		dumpExpr(w, v.Base, depth+1)
	case *ast.VarIndex:
		fmt.Fprintf(w, "%sVarIndex\n", ind)
		dumpExpr(w, v.Base, depth+1)
		dumpExpr(w, v.Index, depth+1)
	case *ast.BinOp:
		fmt.Fprintf(w, "%sBinOp (%s)\n", ind, v.Op)
		dumpExpr(w, v.Left, depth+1)
		dumpExpr(w, v.Right, depth+1)
	case *ast.UnOp:
		fmt.Fprintf(w, "%sUnOp (%s)\n", ind, v.Op)
		dumpExpr(w, v.Operand, depth+1)
	case *ast.Paren:
		fmt.Fprintf(w, "%sParen\n", ind)
		dumpExpr(w, v.Inner, depth+1)
	case *ast.Table:
		fmt.Fprintf(w, "%sTable (%d fields)\n", ind, len(v.Fields.Fields))
	case *ast.CallArgs:
		fmt.Fprintf(w, "%sCallArgs\n", ind)
		dumpExpr(w, v.Base, depth+1)
	case *ast.CallMethod:
		fmt.Fprintf(w, "%sCallMethod: %s\n", ind, v.Method.Text)
		dumpExpr(w, v.Base, depth+1)
	case *ast.Function:
		fmt.Fprintf(w, "%sFunction\n", ind)
		dumpChunk(w, v.Body.Body.Chunk, depth+1)
	default:
		fmt.Fprintf(w, "%s%T\n", ind, e)
	}
}
