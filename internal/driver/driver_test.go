package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"jsparse/internal/driver"
)

func TestParseContract(t *testing.T) {
	got, err := driver.Parse("2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := `[Loc { start: 0, end: 1, item: Expression(Loc { start: 0, end: 1, item: Literal(Number("2")) }) }]`
	if got != want {
		t.Errorf("\n got: %s\nwant: %s", got, want)
	}
}

func TestTransformContract(t *testing.T) {
	got, err := driver.Transform("Math.pow(2, 2)", true)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if got != "Math.pow(2,2);" {
		t.Errorf("got %q, want %q", got, "Math.pow(2,2);")
	}
}

func TestTransformRewritesExponent(t *testing.T) {
	got, err := driver.Transform("a ** b", true)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if got != "Math.pow(a,b);" {
		t.Errorf("got %q, want %q", got, "Math.pow(a,b);")
	}
}

func TestASTContract(t *testing.T) {
	got, err := driver.AST("this;", false)
	if err != nil {
		t.Fatalf("AST failed: %v", err)
	}
	for _, fragment := range []string{`"type":"Program"`, `"type":"ThisExpression"`, `"start":0`, `"end":4`} {
		if !strings.Contains(got, fragment) {
			t.Errorf("output %s missing %s", got, fragment)
		}
	}
	if strings.Contains(got, "sourceType") {
		t.Errorf("strict output should not carry sourceType: %s", got)
	}

	loose, err := driver.AST("this;", true)
	if err != nil {
		t.Fatalf("AST loose failed: %v", err)
	}
	if !strings.Contains(loose, `"sourceType":"script"`) {
		t.Errorf("loose output missing sourceType: %s", loose)
	}
}

func TestEntryPointsSurfaceErrors(t *testing.T) {
	inputs := []string{
		"function function () {}",
		"typeof a ** 2",
		"\"unterminated",
	}
	for _, input := range inputs {
		if _, err := driver.Parse(input); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
		if _, err := driver.Transform(input, true); err == nil {
			t.Errorf("Transform(%q) should fail", input)
		}
		if _, err := driver.AST(input, false); err == nil {
			t.Errorf("AST(%q) should fail", input)
		}
	}
}

func TestEntryPointsAreConcurrencySafe(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				out, err := driver.Transform("2 ** 3", true)
				if err != nil || out != "Math.pow(2,3);" {
					t.Errorf("got %q, %v", out, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestTransformDir(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js":        "1 ** 2",
		"sub/b.js":    "x = 1",
		"skipped.txt": "not js",
		"broken.js":   "function function () {}",
	})

	results, err := driver.TransformDir(context.Background(), dir, true, driver.BatchOptions{Jobs: 2})
	if err != nil {
		t.Fatalf("TransformDir failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	byName := make(map[string]driver.FileResult, len(results))
	for _, res := range results {
		byName[filepath.Base(res.Path)] = res
	}

	if res := byName["a.js"]; res.Err != nil || res.Output != "Math.pow(1,2);" {
		t.Errorf("a.js: %q, %v", res.Output, res.Err)
	}
	if res := byName["b.js"]; res.Err != nil || res.Output != "x=1;" {
		t.Errorf("b.js: %q, %v", res.Output, res.Err)
	}
	res := byName["broken.js"]
	if res.Err == nil {
		t.Error("broken.js should fail")
	} else if !strings.Contains(res.Err.Error(), "Unexpected token") {
		t.Errorf("broken.js error %q should mention Unexpected token", res.Err)
	}
}

func TestTransformDirDeterministicOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"c.js": "3;",
		"a.js": "1;",
		"b.js": "2;",
	})

	results, err := driver.TransformDir(context.Background(), dir, true, driver.BatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, res := range results {
		names = append(names, filepath.Base(res.Path))
	}
	want := []string{"a.js", "b.js", "c.js"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("order %v, want %v", names, want)
		}
	}
}

func TestBatchUsesDiskCache(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.js": "2 ** 4"})

	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.BatchOptions{Cache: cache}

	first, err := driver.TransformDir(context.Background(), dir, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Error("first run should not be cached")
	}

	second, err := driver.TransformDir(context.Background(), dir, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("second run should hit the cache")
	}
	if second[0].Output != first[0].Output {
		t.Errorf("cached output %q differs from fresh %q", second[0].Output, first[0].Output)
	}

	// A different mode flag must miss the cache.
	spaced, err := driver.TransformDir(context.Background(), dir, false, opts)
	if err != nil {
		t.Fatal(err)
	}
	if spaced[0].Cached {
		t.Error("different flag should not reuse the entry")
	}
	if spaced[0].Output != "Math.pow(2, 4);" {
		t.Errorf("spaced output %q", spaced[0].Output)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := driver.CacheKey([]byte("1 + 2"), "transform", true)
	in := &driver.DiskPayload{Path: "a.js", Mode: "transform", Flag: true, Output: "1+2;"}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out driver.DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Output != "1+2;" || out.Mode != "transform" {
		t.Errorf("payload %+v", out)
	}

	var miss driver.DiskPayload
	hit, err = cache.Get(driver.CacheKey([]byte("other"), "transform", true), &miss)
	if err != nil || hit {
		t.Errorf("unexpected hit=%v err=%v", hit, err)
	}
}
