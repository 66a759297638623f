package backend_test

import (
	"regexp"
	"strings"
	"testing"

	"wx-yz/bfc/backend"
	"wx-yz/bfc/lexer"
	"wx-yz/bfc/parser"

	"github.com/llir/llvm/asm"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.NewParser(lexer.NewLexer(src).Lex()).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := backend.NewCodeGenerator().Generate(prog)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return out
}

func TestEmptyProgram(t *testing.T) {
	out := generate(t, "")

	for _, want := range []string{
		"define i32 @main()",
		"alloca [60000 x i8]",
		"ret i32 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("module missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ret i32 1") {
		t.Errorf("empty program emitted a bounds-check halt:\n%s", out)
	}
}

func TestDeterminism(t *testing.T) {
	src := "++[>+++.<-],"
	first := generate(t, src)
	second := generate(t, src)
	if first != second {
		t.Errorf("generated text differs between runs:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

// Each pointer move emits exactly one guard, recognizable by its
// early-return with status 1. No other statement kind emits one.
func TestGuardPerPointerMove(t *testing.T) {
	tests := []struct {
		src    string
		guards int
	}{
		{"", 0},
		{"+-.,", 0},
		{">", 1},
		{"<", 1},
		{"><", 2},
		{">>><<<", 2}, // coalesced runs, one guard per statement
		{"[>]", 1},
	}
	for _, tt := range tests {
		out := generate(t, tt.src)
		if got := strings.Count(out, "ret i32 1"); got != tt.guards {
			t.Errorf("%q: %d guards, want %d", tt.src, got, tt.guards)
		}
	}
}

func TestArithmeticLoweringOrder(t *testing.T) {
	out := generate(t, "+++.")

	// One fresh load, one add-by-3, one store, one write call, in order.
	steps := []string{
		"load i8,",
		"add i8",
		"store i8",
		"call i64 @write(i32 1,",
	}
	last := -1
	for _, step := range steps {
		idx := strings.Index(out, step)
		if idx < 0 {
			t.Fatalf("module missing %q:\n%s", step, out)
		}
		if idx <= last {
			t.Errorf("%q appears out of order", step)
		}
		if strings.Count(out, step) != 1 {
			t.Errorf("%q appears %d times, want 1", step, strings.Count(out, step))
		}
		last = idx
	}

	if !strings.Contains(out, "add i8 %v1, 3") {
		t.Errorf("coalesced increment did not lower to an add by 3:\n%s", out)
	}
}

func TestReadCall(t *testing.T) {
	out := generate(t, ",")
	if !strings.Contains(out, "call i64 @read(i32 0,") {
		t.Errorf("read statement did not lower to a read(0, ...) call:\n%s", out)
	}
	if !strings.Contains(out, "i64 1)") {
		t.Errorf("read call does not transfer exactly one byte:\n%s", out)
	}
}

var labelRE = regexp.MustCompile(`(?m)^((?:loop|end|cont|halt)\d+):`)

func TestLabelsUniqueAcrossNestedLoops(t *testing.T) {
	out := generate(t, ">[>[-]<]<")

	seen := make(map[string]int)
	for _, m := range labelRE.FindAllStringSubmatch(out, -1) {
		seen[m[1]]++
	}
	if len(seen) == 0 {
		t.Fatalf("no labels found:\n%s", out)
	}
	for label, n := range seen {
		if n != 1 {
			t.Errorf("label %s defined %d times", label, n)
		}
	}
	for _, want := range []string{"loop2", "end2", "loop5", "end5"} {
		if seen[want] != 1 {
			t.Errorf("expected nested loop label %s, have %v", want, seen)
		}
	}
}

// The emitted text must be a syntactically valid LLVM module: every block
// ends in exactly one terminator and all identifiers resolve.
func TestModuleRoundTrip(t *testing.T) {
	for _, src := range []string{"", "+++.", "[-]", ">[>[-]<]<", "++[>+++.<-],"} {
		out := generate(t, src)
		if _, err := asm.ParseString("", out); err != nil {
			t.Errorf("%q: emitted module does not re-parse: %v\n%s", src, err, out)
		}
	}
}
