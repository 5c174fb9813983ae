package printer_test

import (
	"testing"

	"jsparse/internal/ast"
	"jsparse/internal/parser"
	"jsparse/internal/printer"
	"jsparse/internal/rewrite"
	"jsparse/internal/source"
)

func parseSource(t *testing.T, input string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	prog, err := parser.Parse(file)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return prog
}

// compact round-trips the input through parse and the minified printer
func compact(t *testing.T, input string) string {
	t.Helper()
	return printer.Print(parseSource(t, input), true)
}

func TestMathPowContract(t *testing.T) {
	prog := rewrite.Pow(parseSource(t, "Math.pow(2, 2)"))
	got := printer.Print(prog, true)
	if got != "Math.pow(2,2);" {
		t.Errorf("got %q, want %q", got, "Math.pow(2,2);")
	}
}

func TestCompactForms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2", "2;"},
		{"this;", "this;"},
		{"a + b", "a+b;"},
		{"f(1, 2)", "f(1,2);"},
		{"a.b.c", "a.b.c;"},
		{"a[0]", "a[0];"},
		{"var a = 1, b;", "var a=1,b;"},
		{"let x;", "let x;"},
		{"if (a) b; else c;", "if(a)b;else c;"},
		{"if (a) { b; }", "if(a){b;}"},
		{"while (a) { b(); }", "while(a){b();}"},
		{"do a; while (b);", "do a;while(b);"},
		{"for (var i = 0; i < 3; i++) f(i);", "for(var i=0;i<3;i++)f(i);"},
		{"for (;;) {}", "for(;;){}"},
		{"for (k in o) {}", "for(k in o){}"},
		{"for (v of xs) {}", "for(v of xs){}"},
		{"function f(a, b) { return a; }", "function f(a,b){return a;}"},
		{"x = function () {}", "x=function(){};"},
		{"throw new Error(\"boom\");", "throw new Error(\"boom\");"},
		{"try { a(); } catch (e) { b(); }", "try{a();}catch(e){b();}"},
		{"loop: break loop;", "loop:break loop;"},
		{"a ? b : c", "a?b:c;"},
		{"a, b, c", "a,b,c;"},
		{"x = {a: 1, b}", "x={a:1,b};"},
		{"xs = [1, 2, 3]", "xs=[1,2,3];"},
		{"typeof x", "typeof x;"},
		{"!x", "!x;"},
		{"a instanceof B", "a instanceof B;"},
		{"x => x + 1", "x=>x+1;"},
		{"(a, b) => { return a; }", "(a,b)=>{return a;};"},
		{"new Foo(1)", "new Foo(1);"},
		{"new Foo", "new Foo;"},
		{"`a${x}b`", "`a${x}b`;"},
		{"/ab/g", "/ab/g;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := compact(t, tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParensRestored(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(a + b) * c", "(a+b)*c;"},
		{"a * (b + c)", "a*(b+c);"},
		{"(a = b), c", "a=b,c;"},
		{"f((a, b))", "f((a,b));"},
		{"(a ? b : c) ? d : e", "(a?b:c)?d:e;"},
		{"(-2) ** 2", "(-2)**2;"},
		{"2 ** (3 ** 2)", "2**3**2;"},
		{"(2 ** 3) ** 2", "(2**3)**2;"},
		{"-(a + b)", "-(a+b);"},
		{"- -a", "- -a;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := compact(t, tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExponentGrouping(t *testing.T) {
	// the natural right grouping needs no parens
	if got := compact(t, "2 ** 3 ** 2"); got != "2**3**2;" {
		t.Errorf("got %q, want %q", got, "2**3**2;")
	}
}

func TestSpacedMode(t *testing.T) {
	prog := parseSource(t, "Math.pow(2, 2)")
	if got := printer.Print(prog, false); got != "Math.pow(2, 2);" {
		t.Errorf("got %q, want %q", got, "Math.pow(2, 2);")
	}

	prog = parseSource(t, "var a=1;if(a)b();")
	want := "var a = 1;\nif (a) b();"
	if got := printer.Print(prog, false); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"var a = 1; function f(x) { return x ** 2; } f(a);",
		"for (var i = 0; i < 10; i++) { acc = acc + i; }",
		"x = a ? (b, c) : d[e].f(g);",
		"try { risky(); } catch (e) { console.log(e); } finally { done(); }",
		"out = `sum: ${a + b}`;",
		"new Foo(a, b).method()[0];",
	}

	for _, input := range inputs {
		prog := rewrite.Pow(parseSource(t, input))
		first := printer.Print(prog, true)

		// the printer's own output parses and prints to the same bytes
		second := printer.Print(rewrite.Pow(parseSource(t, first)), true)
		if first != second {
			t.Errorf("not stable:\n input: %q\n first: %q\nsecond: %q", input, first, second)
		}
	}
}
