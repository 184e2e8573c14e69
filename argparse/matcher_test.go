//nolint:testpackage // using package name 'argparse' to inspect bound values
package argparse

import (
	"bytes"
	"strings"
	"testing"
)

func mustRegister(t *testing.T, r *Registry, shortName, longName string) *ArgumentSpec {
	t.Helper()
	spec, err := r.Register(shortName, longName)
	if err != nil {
		t.Fatalf("Register(%q, %q) failed: %v", shortName, longName, err)
	}
	return spec
}

func TestPositionalsInOrder(t *testing.T) {
	r := NewRegistry()
	src := mustRegister(t, r, "", "src")
	dest := mustRegister(t, r, "", "dest")

	diags, err := NewMatcher(r).Parse([]string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, diags.Render())
	}

	if v, ok := src.Value().Str(); !ok || v != "a.txt" {
		t.Errorf("Expected src bound to 'a.txt', got %v", src.Value())
	}
	if v, ok := dest.Value().Str(); !ok || v != "b.txt" {
		t.Errorf("Expected dest bound to 'b.txt', got %v", dest.Value())
	}
}

func TestStoreIntValue(t *testing.T) {
	r := NewRegistry()
	force := mustRegister(t, r, "", "--force")
	if err := r.SetType("--force", TypeInt); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}

	if _, err := NewMatcher(r).Parse([]string{"--force", "42"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, ok := force.Value().Int(); !ok || n != 42 {
		t.Errorf("Expected int 42, got %v", force.Value())
	}
}

func TestStoreIntMalformed(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--force")
	_ = r.SetType("--force", TypeInt)

	diags, err := NewMatcher(r).Parse([]string{"--force", "notanumber"})
	if err == nil {
		t.Fatal("Expected parse failure for malformed int")
	}
	if !strings.Contains(diags.Render(), "argument --force: invalid int value: 'notanumber'") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestStoreIntOverflow(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--force")
	_ = r.SetType("--force", TypeInt)

	diags, err := NewMatcher(r).Parse([]string{"--force", "99999999999999999999999"})
	if err == nil {
		t.Fatal("Expected parse failure for out-of-range int")
	}
	if !strings.Contains(diags.Render(), "integer out of range") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestStoreIntHex(t *testing.T) {
	r := NewRegistry()
	mask := mustRegister(t, r, "-m", "--mask")
	_ = r.SetType("--mask", TypeInt)

	if _, err := NewMatcher(r).Parse([]string{"--mask", "0xFF"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, _ := mask.Value().Int(); n != 255 {
		t.Errorf("Expected 255, got %v", mask.Value())
	}
}

func TestStoreFloat(t *testing.T) {
	r := NewRegistry()
	ratio := mustRegister(t, r, "", "--ratio")
	_ = r.SetType("--ratio", TypeFloat)

	if _, err := NewMatcher(r).Parse([]string{"--ratio", "0.75"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f, ok := ratio.Value().Float(); !ok || f != 0.75 {
		t.Errorf("Expected 0.75, got %v", ratio.Value())
	}

	diags, err := NewMatcher(r).Parse([]string{"--ratio", "three"})
	if err == nil {
		t.Fatal("Expected parse failure for malformed float")
	}
	if !strings.Contains(diags.Render(), "invalid float value: 'three'") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestBoolLiterals(t *testing.T) {
	r := NewRegistry()
	flag := mustRegister(t, r, "", "--flag")
	_ = r.SetType("--flag", TypeBool)
	m := NewMatcher(r)

	for _, raw := range []string{"true", "1", "yes", "on", "TRUE"} {
		if _, err := m.Parse([]string{"--flag", raw}); err != nil {
			t.Fatalf("Parse(%q) failed: %v", raw, err)
		}
		if b, ok := flag.Value().Bool(); !ok || !b {
			t.Errorf("Expected true for literal %q, got %v", raw, flag.Value())
		}
	}
	for _, raw := range []string{"false", "0", "no", "off"} {
		if _, err := m.Parse([]string{"--flag", raw}); err != nil {
			t.Fatalf("Parse(%q) failed: %v", raw, err)
		}
		if b, ok := flag.Value().Bool(); !ok || b {
			t.Errorf("Expected false for literal %q, got %v", raw, flag.Value())
		}
	}

	diags, err := m.Parse([]string{"--flag", "maybe"})
	if err == nil {
		t.Fatal("Expected parse failure for bad bool literal")
	}
	if !strings.Contains(diags.Render(), "invalid bool value: 'maybe'") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestMissingRequired(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "-f", "--force")
	if err := r.SetRequired("--force", true); err != nil {
		t.Fatalf("SetRequired failed: %v", err)
	}

	diags, err := NewMatcher(r).Parse(nil)
	if err == nil {
		t.Fatal("Expected parse failure for missing required argument")
	}
	want := "the following argument(s) are required: -f/--force"
	if !strings.Contains(diags.Render(), want) {
		t.Errorf("Expected %q in report:\n%s", want, diags.Render())
	}
}

func TestMissingPositionals(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "src")
	mustRegister(t, r, "", "dest")

	diags, err := NewMatcher(r).Parse([]string{"only.txt"})
	if err == nil {
		t.Fatal("Expected parse failure for unfilled positional")
	}
	if !strings.Contains(diags.Render(), "the following argument(s) are required: dest") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestAmbiguousValueShapes(t *testing.T) {
	setup := func(t *testing.T) *Registry {
		t.Helper()
		r := NewRegistry()
		mustRegister(t, r, "-a", "")
		b := mustRegister(t, r, "-b", "")
		_ = b
		_ = r.SetAction("-b", ActionStoreTrue)
		return r
	}

	t.Run("detached flag value", func(t *testing.T) {
		r := setup(t)
		diags, err := NewMatcher(r).Parse([]string{"-a", "-b"})
		if err == nil {
			t.Fatal("Expected failure when value collides with a flag")
		}
		if !strings.Contains(diags.Render(), "argument -a: expected one argument") {
			t.Errorf("Unexpected report:\n%s", diags.Render())
		}
		// The colliding flag is still matched on its own.
		b, _ := r.Lookup("-b")
		if v, ok := b.Value().Bool(); !ok || !v {
			t.Errorf("Expected -b matched after the guard, got %v", b.Value())
		}
	})

	t.Run("attached flag value", func(t *testing.T) {
		r := setup(t)
		diags, err := NewMatcher(r).Parse([]string{"-a-b"})
		if err == nil {
			t.Fatal("Expected failure for attached flag-shaped value")
		}
		if !strings.Contains(diags.Render(), "argument -a: expected one argument") {
			t.Errorf("Unexpected report:\n%s", diags.Render())
		}
	})

	t.Run("long token value", func(t *testing.T) {
		r := setup(t)
		mustRegister(t, r, "", "--loud")
		diags, err := NewMatcher(r).Parse([]string{"-a", "--loud"})
		if err == nil {
			t.Fatal("Expected failure when value is a long token")
		}
		if !strings.Contains(diags.Render(), "argument -a: expected one argument") {
			t.Errorf("Unexpected report:\n%s", diags.Render())
		}
	})

	t.Run("dash leading number is a value", func(t *testing.T) {
		r := setup(t)
		a, _ := r.Lookup("-a")
		if _, err := NewMatcher(r).Parse([]string{"-a", "-5"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if v, _ := a.Value().Str(); v != "-5" {
			t.Errorf("Expected '-5' consumed as value, got %v", a.Value())
		}
	})

	t.Run("unregistered short shape is a value", func(t *testing.T) {
		r := setup(t)
		a, _ := r.Lookup("-a")
		if _, err := NewMatcher(r).Parse([]string{"-a", "-q"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if v, _ := a.Value().Str(); v != "-q" {
			t.Errorf("Expected '-q' consumed as value, got %v", a.Value())
		}
	})

	t.Run("attached plain value", func(t *testing.T) {
		r := setup(t)
		a, _ := r.Lookup("-a")
		if _, err := NewMatcher(r).Parse([]string{"-avalue"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if v, _ := a.Value().Str(); v != "value" {
			t.Errorf("Expected attached 'value', got %v", a.Value())
		}
	})
}

func TestStoreTrueStoreFalse(t *testing.T) {
	r := NewRegistry()
	on := mustRegister(t, r, "", "--on")
	off := mustRegister(t, r, "", "--off")
	_ = r.SetAction("--on", ActionStoreTrue)
	_ = r.SetAction("--off", ActionStoreFalse)

	if _, err := NewMatcher(r).Parse([]string{"--on", "--off"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, ok := on.Value().Bool(); !ok || !v {
		t.Errorf("Expected --on bound true, got %v", on.Value())
	}
	if v, ok := off.Value().Bool(); !ok || v {
		t.Errorf("Expected --off bound false, got %v", off.Value())
	}
}

func TestStoreConst(t *testing.T) {
	r := NewRegistry()
	level := mustRegister(t, r, "", "--fast")
	_ = r.SetAction("--fast", ActionStoreConst)
	_ = r.SetType("--fast", TypeInt)
	_ = r.SetConst("--fast", "9")

	if _, err := NewMatcher(r).Parse([]string{"--fast"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, ok := level.Value().Int(); !ok || n != 9 {
		t.Errorf("Expected const 9 bound, got %v", level.Value())
	}
}

func TestStoreConstUnconfigured(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--fast")
	_ = r.SetAction("--fast", ActionStoreConst)

	diags, err := NewMatcher(r).Parse([]string{"--fast"})
	if err == nil {
		t.Fatal("Expected failure without a const value")
	}
	if !strings.Contains(diags.Render(), "argument --fast: no const value configured") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestAppendAccumulates(t *testing.T) {
	r := NewRegistry()
	include := mustRegister(t, r, "-I", "--include")
	_ = r.SetAction("--include", ActionAppend)

	if _, err := NewMatcher(r).Parse([]string{"-I", "a", "--include", "b", "-Ic"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	list, ok := include.Value().List()
	if !ok || len(list) != 3 {
		t.Fatalf("Expected 3 list elements, got %v", include.Value())
	}
	for i, want := range []string{"a", "b", "c"} {
		if list[i] != want {
			t.Errorf("Expected %q at index %d, got %q", want, i, list[i])
		}
	}
}

func TestAppendConst(t *testing.T) {
	r := NewRegistry()
	tags := mustRegister(t, r, "", "--tag-x")
	_ = r.SetAction("--tag-x", ActionAppendConst)
	_ = r.SetConst("--tag-x", "x")

	if _, err := NewMatcher(r).Parse([]string{"--tag-x", "--tag-x"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	list, ok := tags.Value().List()
	if !ok || len(list) != 2 || list[0] != "x" || list[1] != "x" {
		t.Errorf("Expected ['x', 'x'], got %v", tags.Value())
	}
}

func TestExtendFlattens(t *testing.T) {
	r := NewRegistry()
	files := mustRegister(t, r, "-f", "--files")
	_ = r.SetAction("--files", ActionExtend)
	_ = r.SetNargs("--files", NargsOneOrMore)

	if _, err := NewMatcher(r).Parse([]string{"--files", "a", "b", "-f", "c"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	list, ok := files.Value().List()
	if !ok || len(list) != 3 {
		t.Fatalf("Expected flattened list of 3, got %v", files.Value())
	}
	for i, want := range []string{"a", "b", "c"} {
		if list[i] != want {
			t.Errorf("Expected %q at index %d, got %q", want, i, list[i])
		}
	}
}

func TestCountAction(t *testing.T) {
	r := NewRegistry()
	verbose := mustRegister(t, r, "-v", "--verbose")
	_ = r.SetAction("--verbose", ActionCount)

	if _, err := NewMatcher(r).Parse([]string{"-v", "-v", "--verbose"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, ok := verbose.Value().Int(); !ok || n != 3 {
		t.Errorf("Expected count 3, got %v", verbose.Value())
	}
}

func TestAttachedValueOnNonConsumingFlag(t *testing.T) {
	r := NewRegistry()
	verbose := mustRegister(t, r, "-v", "--verbose")
	_ = r.SetAction("--verbose", ActionStoreTrue)
	count := mustRegister(t, r, "-c", "--count")
	_ = r.SetAction("--count", ActionCount)

	diags, err := NewMatcher(r).Parse([]string{"-v5", "-cc"})
	if err == nil {
		t.Fatal("Expected attached values on value-less flags to fail the parse")
	}
	out := diags.Render()
	if !strings.Contains(out, "argument -v/--verbose: ignored explicit value '5'") {
		t.Errorf("Expected residue diagnostic for -v5, got:\n%s", out)
	}
	if !strings.Contains(out, "argument -c/--count: ignored explicit value 'c'") {
		t.Errorf("Expected residue diagnostic for -cc, got:\n%s", out)
	}
	if !verbose.Value().IsAbsent() {
		t.Errorf("Expected --verbose unbound after rejected token, got %v", verbose.Value())
	}
	if !count.Value().IsAbsent() {
		t.Errorf("Expected --count unbound after rejected token, got %v", count.Value())
	}
}

func TestVersionAction(t *testing.T) {
	r := NewRegistry().Name("cptool").Version("1.2.3")
	mustRegister(t, r, "-V", "--version")
	_ = r.SetAction("--version", ActionVersion)
	// A required argument that would otherwise fail the parse.
	mustRegister(t, r, "-f", "--force")
	_ = r.SetRequired("--force", true)

	var out bytes.Buffer
	diags, err := NewMatcher(r, WithOutput(&out)).Parse([]string{"--version", "--force"})
	if err != nil {
		t.Fatalf("Expected version action to succeed, got: %v\n%s", err, diags.Render())
	}
	if out.String() != "cptool 1.2.3\n" {
		t.Errorf("Expected version line, got %q", out.String())
	}
	// The scan ends at the version token; nothing after it is touched.
	force, _ := r.Lookup("--force")
	if !force.Value().IsAbsent() {
		t.Errorf("Expected --force untouched after version, got %v", force.Value())
	}
}

func TestChoices(t *testing.T) {
	r := NewRegistry()
	mode := mustRegister(t, r, "", "--mode")
	_ = r.SetChoices("--mode", []string{"fast", "slow"})

	if _, err := NewMatcher(r).Parse([]string{"--mode", "fast"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, _ := mode.Value().Str(); v != "fast" {
		t.Errorf("Expected 'fast', got %v", mode.Value())
	}

	diags, err := NewMatcher(r).Parse([]string{"--mode", "medium"})
	if err == nil {
		t.Fatal("Expected failure for out-of-set choice")
	}
	want := "argument --mode: invalid choice: 'medium' (choose from fast, slow)"
	if !strings.Contains(diags.Render(), want) {
		t.Errorf("Expected %q in report:\n%s", want, diags.Render())
	}
}

func TestDefaultBinding(t *testing.T) {
	r := NewRegistry()
	retries := mustRegister(t, r, "", "--retries")
	_ = r.SetType("--retries", TypeInt)
	_ = r.SetDefault("--retries", "3")

	if _, err := NewMatcher(r).Parse(nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, ok := retries.Value().Int(); !ok || n != 3 {
		t.Errorf("Expected default 3 bound, got %v", retries.Value())
	}

	// An explicit value wins over the default.
	if _, err := NewMatcher(r).Parse([]string{"--retries", "5"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n, _ := retries.Value().Int(); n != 5 {
		t.Errorf("Expected explicit 5, got %v", retries.Value())
	}
}

func TestRequiredWithDefaultStillReported(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--token")
	_ = r.SetRequired("--token", true)
	_ = r.SetDefault("--token", "fallback")

	_, err := NewMatcher(r).Parse(nil)
	if err == nil {
		t.Fatal("Expected required argument reported even with a default")
	}
}

func TestInvalidDefaultReported(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--retries")
	_ = r.SetType("--retries", TypeInt)
	_ = r.SetDefault("--retries", "many")

	diags, err := NewMatcher(r).Parse(nil)
	if err == nil {
		t.Fatal("Expected failure for unconvertible default")
	}
	if !strings.Contains(diags.Render(), "argument --retries: invalid int value: 'many'") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestOptionalOneNargs(t *testing.T) {
	r := NewRegistry()
	color := mustRegister(t, r, "", "--color")
	_ = r.SetNargs("--color", NargsOptionalOne)
	_ = r.SetConst("--color", "always")
	_ = r.SetDefault("--color", "auto")

	// Flag present without a value binds the const.
	if _, err := NewMatcher(r).Parse([]string{"--color"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, _ := color.Value().Str(); v != "always" {
		t.Errorf("Expected const 'always', got %v", color.Value())
	}

	// Flag present with a value binds the value.
	if _, err := NewMatcher(r).Parse([]string{"--color", "never"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, _ := color.Value().Str(); v != "never" {
		t.Errorf("Expected 'never', got %v", color.Value())
	}

	// Flag absent binds the default.
	color.value = Value{}
	if _, err := NewMatcher(r).Parse(nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, _ := color.Value().Str(); v != "auto" {
		t.Errorf("Expected default 'auto', got %v", color.Value())
	}
}

func TestOneOrMoreRequiresValue(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--files")
	_ = r.SetNargs("--files", NargsOneOrMore)

	diags, err := NewMatcher(r).Parse([]string{"--files"})
	if err == nil {
		t.Fatal("Expected failure for one-or-more with no values")
	}
	if !strings.Contains(diags.Render(), "argument --files: expected at least one argument") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestZeroOrMoreStopsAtFlags(t *testing.T) {
	r := NewRegistry()
	files := mustRegister(t, r, "", "--files")
	loud := mustRegister(t, r, "", "--loud")
	_ = r.SetNargs("--files", NargsZeroOrMore)
	_ = r.SetAction("--loud", ActionStoreTrue)

	if _, err := NewMatcher(r).Parse([]string{"--files", "a", "b", "--loud"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	list, ok := files.Value().List()
	if !ok || len(list) != 2 {
		t.Fatalf("Expected 2 gathered values, got %v", files.Value())
	}
	if v, ok := loud.Value().Bool(); !ok || !v {
		t.Errorf("Expected --loud matched after the list, got %v", loud.Value())
	}
}

func TestRemainderConsumesEverything(t *testing.T) {
	r := NewRegistry()
	rest := mustRegister(t, r, "", "--exec")
	mustRegister(t, r, "", "--loud")
	_ = r.SetNargs("--exec", NargsRemainder)

	if _, err := NewMatcher(r).Parse([]string{"--exec", "run", "--loud", "-x"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	list, ok := rest.Value().List()
	if !ok || len(list) != 3 {
		t.Fatalf("Expected 3 remainder values, got %v", rest.Value())
	}
	if list[1] != "--loud" || list[2] != "-x" {
		t.Errorf("Expected flags swallowed by remainder, got %v", list)
	}
}

func TestUnrecognizedTokens(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "src")

	diags, err := NewMatcher(r).Parse([]string{"--bogus", "-z", "a.txt", "extra"})
	if err == nil {
		t.Fatal("Expected failure for unrecognized tokens")
	}
	if !strings.Contains(diags.Render(), "unrecognized argument(s): --bogus, -z, extra") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}

	// The recognized positional is still bound.
	src, _ := r.Lookup("src")
	if v, _ := src.Value().Str(); v != "a.txt" {
		t.Errorf("Expected src bound despite diagnostics, got %v", src.Value())
	}
}

func TestSuggestions(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "-f", "--force")

	diags, err := NewMatcher(r, WithSuggestions(2)).Parse([]string{"--forcx"})
	if err == nil {
		t.Fatal("Expected failure for unrecognized token")
	}
	if !strings.Contains(diags.Render(), "Did you mean '--force'?") {
		t.Errorf("Expected suggestion in report:\n%s", diags.Render())
	}
}

func TestDeprecatedWarning(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, "", "--legacy")
	_ = r.SetDeprecated("--legacy", true)

	diags, err := NewMatcher(r).Parse([]string{"--legacy", "x"})
	if err != nil {
		t.Fatalf("Deprecation must not fail the parse: %v", err)
	}
	warnings := diags.Warnings()
	if len(warnings) != 1 || warnings[0] != "argument --legacy is deprecated" {
		t.Errorf("Expected deprecation warning, got %v", warnings)
	}
}

func TestUnrecognizedExtraPositionalCounts(t *testing.T) {
	r := NewRegistry()
	src := mustRegister(t, r, "", "src")
	dest := mustRegister(t, r, "", "dest")

	// The stray token consumes a positional slot, shifting later matches.
	diags, err := NewMatcher(r).Parse([]string{"a.txt", "b.txt", "c.txt"})
	if err == nil {
		t.Fatal("Expected failure for extra positional")
	}
	if v, _ := src.Value().Str(); v != "a.txt" {
		t.Errorf("Expected src 'a.txt', got %v", src.Value())
	}
	if v, _ := dest.Value().Str(); v != "b.txt" {
		t.Errorf("Expected dest 'b.txt', got %v", dest.Value())
	}
	if !strings.Contains(diags.Render(), "unrecognized argument(s): c.txt") {
		t.Errorf("Unexpected report:\n%s", diags.Render())
	}
}

func TestParseIntEdgeCases(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{"0", 0, nil},
		{"123", 123, nil},
		{"-456", -456, nil},
		{"+789", 789, nil},
		{"0xff", 255, nil},
		{"-0x10", -16, nil},
		{"", 0, errIntSyntax},
		{"-", 0, errIntSyntax},
		{"+", 0, errIntSyntax},
		{"12a", 0, errIntSyntax},
		{"0x", 0, errIntSyntax},
		{"0xZZ", 0, errIntSyntax},
		{"99999999999999999999999", 0, errIntRange},
	}

	for _, test := range tests {
		got, err := parseInt(test.input)
		if test.wantErr != nil {
			if err != test.wantErr {
				t.Errorf("parseInt(%q) error = %v, want %v", test.input, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseInt(%q) failed: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseInt(%q) = %d, want %d", test.input, got, test.want)
		}
	}
}
