package astfmt

import (
	"encoding/json"
	"fmt"

	"jsparse/internal/ast"
)

// JSON serializes the program into the reference AST schema: a `type` string
// and `start`/`end` offsets on every node plus kind-specific fields. With
// loose set, the top-level object carries `sourceType: "script"`.
func JSON(prog *ast.Program, loose bool) (string, error) {
	root := nodeMap(prog, "Program")
	root["body"] = jsonStmts(prog.Body)
	if loose {
		root["sourceType"] = "script"
	}
	out, err := json.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("encode ast: %w", err)
	}
	return string(out), nil
}

func nodeMap(n ast.Node, typ string) map[string]any {
	sp := n.Span()
	return map[string]any{
		"type":  typ,
		"start": int(sp.Start),
		"end":   int(sp.End),
	}
}

func jsonStmts(body []ast.Stmt) []any {
	out := make([]any, len(body))
	for i, s := range body {
		out[i] = jsonStmt(s)
	}
	return out
}

func jsonStmt(s ast.Stmt) map[string]any {
	switch v := s.(type) {
	case *ast.EmptyStmt:
		return nodeMap(v, "EmptyStatement")
	case *ast.ExprStmt:
		m := nodeMap(v, "ExpressionStatement")
		m["expression"] = jsonExpr(v.X)
		return m
	case *ast.BlockStmt:
		return jsonBlock(v)
	case *ast.VarDecl:
		m := nodeMap(v, "VariableDeclaration")
		m["kind"] = v.Kind.String()
		decls := make([]any, len(v.Decls))
		for i, d := range v.Decls {
			dm := nodeMap(d, "VariableDeclarator")
			dm["id"] = jsonExpr(d.Name)
			dm["init"] = jsonOptExpr(d.Init)
			decls[i] = dm
		}
		m["declarations"] = decls
		return m
	case *ast.FuncDecl:
		m := nodeMap(v, "FunctionDeclaration")
		m["id"] = jsonExpr(v.Name)
		m["params"] = jsonParams(v.Params)
		m["body"] = jsonBlock(v.Body)
		return m
	case *ast.ReturnStmt:
		m := nodeMap(v, "ReturnStatement")
		m["argument"] = jsonOptExpr(v.Value)
		return m
	case *ast.IfStmt:
		m := nodeMap(v, "IfStatement")
		m["test"] = jsonExpr(v.Test)
		m["consequent"] = jsonStmt(v.Cons)
		m["alternate"] = jsonOptStmt(v.Alt)
		return m
	case *ast.WhileStmt:
		m := nodeMap(v, "WhileStatement")
		m["test"] = jsonExpr(v.Test)
		m["body"] = jsonStmt(v.Body)
		return m
	case *ast.DoWhileStmt:
		m := nodeMap(v, "DoWhileStatement")
		m["body"] = jsonStmt(v.Body)
		m["test"] = jsonExpr(v.Test)
		return m
	case *ast.ForStmt:
		m := nodeMap(v, "ForStatement")
		m["init"] = jsonForHead(v.Init)
		m["test"] = jsonOptExpr(v.Test)
		m["update"] = jsonOptExpr(v.Update)
		m["body"] = jsonStmt(v.Body)
		return m
	case *ast.ForInStmt:
		m := nodeMap(v, "ForInStatement")
		m["left"] = jsonForHead(v.Left)
		m["right"] = jsonExpr(v.Right)
		m["body"] = jsonStmt(v.Body)
		return m
	case *ast.ForOfStmt:
		m := nodeMap(v, "ForOfStatement")
		m["left"] = jsonForHead(v.Left)
		m["right"] = jsonExpr(v.Right)
		m["body"] = jsonStmt(v.Body)
		return m
	case *ast.BreakStmt:
		m := nodeMap(v, "BreakStatement")
		m["label"] = jsonOptIdent(v.Label)
		return m
	case *ast.ContinueStmt:
		m := nodeMap(v, "ContinueStatement")
		m["label"] = jsonOptIdent(v.Label)
		return m
	case *ast.ThrowStmt:
		m := nodeMap(v, "ThrowStatement")
		m["argument"] = jsonExpr(v.Value)
		return m
	case *ast.TryStmt:
		m := nodeMap(v, "TryStatement")
		m["block"] = jsonBlock(v.Block)
		if v.Handler != nil {
			hm := nodeMap(v.Handler, "CatchClause")
			hm["param"] = jsonExpr(v.Handler.Param)
			hm["body"] = jsonBlock(v.Handler.Body)
			m["handler"] = hm
		} else {
			m["handler"] = nil
		}
		if v.Finally != nil {
			m["finalizer"] = jsonBlock(v.Finally)
		} else {
			m["finalizer"] = nil
		}
		return m
	case *ast.LabeledStmt:
		m := nodeMap(v, "LabeledStatement")
		m["label"] = jsonExpr(v.Label)
		m["body"] = jsonStmt(v.Body)
		return m
	}
	return nil
}

func jsonBlock(b *ast.BlockStmt) map[string]any {
	m := nodeMap(b, "BlockStatement")
	m["body"] = jsonStmts(b.Body)
	return m
}

// jsonForHead unwraps an expression clause of a for-head to the bare
// expression node; declarations serialize as themselves.
func jsonForHead(s ast.Stmt) any {
	switch v := s.(type) {
	case nil:
		return nil
	case *ast.ExprStmt:
		return jsonExpr(v.X)
	default:
		return jsonStmt(s)
	}
}

func jsonOptStmt(s ast.Stmt) any {
	if s == nil {
		return nil
	}
	return jsonStmt(s)
}

func jsonOptExpr(x ast.Expr) any {
	if x == nil {
		return nil
	}
	return jsonExpr(x)
}

func jsonOptIdent(id *ast.Ident) any {
	if id == nil {
		return nil
	}
	return jsonExpr(id)
}

func jsonParams(params []*ast.Ident) []any {
	out := make([]any, len(params))
	for i, param := range params {
		out[i] = jsonExpr(param)
	}
	return out
}

func jsonExprs(xs []ast.Expr) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = jsonExpr(x)
	}
	return out
}

func jsonExpr(x ast.Expr) map[string]any {
	switch v := x.(type) {
	case *ast.Ident:
		m := nodeMap(v, "Identifier")
		m["name"] = v.Name
		return m
	case *ast.ThisExpr:
		return nodeMap(v, "ThisExpression")
	case *ast.Literal:
		m := nodeMap(v, "Literal")
		m["value"] = literalValue(v)
		return m
	case *ast.TemplateLit:
		m := nodeMap(v, "TemplateLiteral")
		quasis := make([]any, len(v.Quasis))
		for i, q := range v.Quasis {
			qm := nodeMap(q, "TemplateElement")
			qm["value"] = map[string]any{"raw": q.Raw}
			qm["tail"] = i == len(v.Quasis)-1
			quasis[i] = qm
		}
		m["quasis"] = quasis
		m["expressions"] = jsonExprs(v.Exprs)
		return m
	case *ast.ArrayLit:
		m := nodeMap(v, "ArrayExpression")
		m["elements"] = jsonExprs(v.Elems)
		return m
	case *ast.ObjectLit:
		m := nodeMap(v, "ObjectExpression")
		props := make([]any, len(v.Props))
		for i, prop := range v.Props {
			pm := nodeMap(prop, "Property")
			pm["key"] = jsonExpr(prop.Key)
			pm["value"] = jsonExpr(prop.Value)
			pm["kind"] = "init"
			pm["shorthand"] = prop.Shorthand
			pm["computed"] = false
			props[i] = pm
		}
		m["properties"] = props
		return m
	case *ast.MemberExpr:
		m := nodeMap(v, "MemberExpression")
		m["object"] = jsonExpr(v.Object)
		m["property"] = jsonExpr(v.Property)
		m["computed"] = v.Computed
		return m
	case *ast.CallExpr:
		m := nodeMap(v, "CallExpression")
		m["callee"] = jsonExpr(v.Callee)
		m["arguments"] = jsonExprs(v.Args)
		return m
	case *ast.NewExpr:
		m := nodeMap(v, "NewExpression")
		m["callee"] = jsonExpr(v.Callee)
		m["arguments"] = jsonExprs(v.Args)
		return m
	case *ast.UnaryExpr:
		m := nodeMap(v, "UnaryExpression")
		m["operator"] = v.Op.String()
		m["argument"] = jsonExpr(v.Operand)
		m["prefix"] = true
		return m
	case *ast.UpdateExpr:
		m := nodeMap(v, "UpdateExpression")
		m["operator"] = v.Op.String()
		m["argument"] = jsonExpr(v.Operand)
		m["prefix"] = v.Prefix
		return m
	case *ast.BinaryExpr:
		m := nodeMap(v, "BinaryExpression")
		m["operator"] = v.Op.String()
		m["left"] = jsonExpr(v.Left)
		m["right"] = jsonExpr(v.Right)
		return m
	case *ast.LogicalExpr:
		m := nodeMap(v, "LogicalExpression")
		m["operator"] = v.Op.String()
		m["left"] = jsonExpr(v.Left)
		m["right"] = jsonExpr(v.Right)
		return m
	case *ast.CondExpr:
		m := nodeMap(v, "ConditionalExpression")
		m["test"] = jsonExpr(v.Test)
		m["consequent"] = jsonExpr(v.Cons)
		m["alternate"] = jsonExpr(v.Alt)
		return m
	case *ast.AssignExpr:
		m := nodeMap(v, "AssignmentExpression")
		m["operator"] = v.Op.String()
		m["left"] = jsonExpr(v.Target)
		m["right"] = jsonExpr(v.Value)
		return m
	case *ast.SeqExpr:
		m := nodeMap(v, "SequenceExpression")
		m["expressions"] = jsonExprs(v.Exprs)
		return m
	case *ast.FuncLit:
		m := nodeMap(v, "FunctionExpression")
		m["id"] = jsonOptIdent(v.Name)
		m["params"] = jsonParams(v.Params)
		m["body"] = jsonBlock(v.Body)
		return m
	case *ast.ArrowFunc:
		m := nodeMap(v, "ArrowFunctionExpression")
		m["id"] = nil
		m["params"] = jsonParams(v.Params)
		if v.BodyBlock != nil {
			m["body"] = jsonBlock(v.BodyBlock)
			m["expression"] = false
		} else {
			m["body"] = jsonExpr(v.BodyExpr)
			m["expression"] = true
		}
		return m
	}
	return nil
}

// literalValue: booleans become real JSON booleans, everything else keeps
// its raw source text.
func literalValue(v *ast.Literal) any {
	switch v.Kind {
	case ast.LitTrue:
		return true
	case ast.LitFalse:
		return false
	default:
		return v.Raw
	}
}
