package argparse

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/intern"
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// Matcher scans an argv token slice against a Registry, binds values into
// the matched specs, and accumulates diagnostics. The registry is read-only
// during a scan except for the value bindings themselves.
type Matcher struct {
	registry    *Registry
	out         io.Writer
	suggest     bool
	maxDistance int
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithOutput redirects version-action output, stdout by default.
func WithOutput(w io.Writer) MatcherOption {
	return func(m *Matcher) {
		m.out = w
	}
}

// WithSuggestions enables did-you-mean lines for unrecognized tokens, using
// the given maximum edit distance.
func WithSuggestions(maxDistance int) MatcherOption {
	return func(m *Matcher) {
		m.suggest = true
		m.maxDistance = maxDistance
	}
}

// NewMatcher creates a matcher over the given registry.
func NewMatcher(registry *Registry, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		registry:    registry,
		out:         os.Stdout,
		maxDistance: 2,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// parseState is the ephemeral cursor state of one Parse call.
type parseState struct {
	tokens          []string
	cursor          int
	positionalCount int
	diags           *Diagnostics
	done            bool
}

var statePool = pool.NewWithReset(
	func() *parseState { return &parseState{} },
	func(st *parseState) {
		st.tokens = nil
		st.cursor = 0
		st.positionalCount = 0
		st.diags = nil
		st.done = false
	},
)

// Parse scans the already-materialized token slice. Diagnostics never stop
// the scan; the returned error is non-nil exactly when the diagnostic set
// holds at least one failure. A matched version action ends the scan
// immediately with success, skipping post-scan validation.
func (m *Matcher) Parse(tokens []string) (*Diagnostics, error) {
	st := statePool.Get()
	defer statePool.Put(st)

	st.tokens = tokens
	st.diags = NewDiagnostics()

	for st.cursor < len(st.tokens) && !st.done {
		token := st.tokens[st.cursor]
		switch {
		case m.isLongToken(token):
			m.scanLong(st, token)
		case m.isShortToken(token):
			m.scanShort(st, token)
		default:
			m.scanPositional(st, token)
		}
	}

	diags := st.diags
	if !st.done {
		m.validate(diags, st.positionalCount)
		m.bindDefaults(diags)
	}
	if m.suggest {
		m.addSuggestions(diags)
	}
	return diags, diags.asError()
}

func (m *Matcher) prefix() byte {
	if m.registry.prefixChars != "" {
		return m.registry.prefixChars[0]
	}
	return '-'
}

func (m *Matcher) isLongToken(token string) bool {
	p := m.prefix()
	return len(token) > 2 && token[0] == p && token[1] == p
}

func (m *Matcher) isShortToken(token string) bool {
	p := m.prefix()
	return len(token) >= 2 && token[0] == p && intern.IsAlpha(token[1])
}

// looksLikeFlag reports whether a value candidate must not be consumed:
// any long-shaped token, or a bare short token registered as a flag.
// Dash-leading tokens that are neither ("-5", "-not-a-flag") are values.
func (m *Matcher) looksLikeFlag(s string) bool {
	p := m.prefix()
	if len(s) > 2 && s[0] == p && s[1] == p {
		return true
	}
	if len(s) == 2 && s[0] == p && intern.IsAlpha(s[1]) {
		_, err := m.registry.table.Search(s)
		return err == nil
	}
	return false
}

func (m *Matcher) scanLong(st *parseState, token string) {
	spec, err := m.registry.Lookup(token)
	if err != nil {
		st.diags.recordUnrecognized(token)
		st.cursor++
		return
	}
	st.cursor++
	m.apply(st, spec, "", false)
}

func (m *Matcher) scanShort(st *parseState, token string) {
	key := intern.ShortFlag(token[1])
	spec, err := m.registry.Lookup(key)
	if err != nil {
		st.diags.recordUnrecognized(key)
		st.cursor++
		return
	}
	attached := token[2:]
	st.cursor++
	m.apply(st, spec, attached, attached != "")
}

func (m *Matcher) scanPositional(st *parseState, token string) {
	index := st.positionalCount
	st.positionalCount++
	st.cursor++

	spec, err := m.registry.PositionalAt(index)
	if err != nil {
		st.diags.recordUnrecognized(token)
		return
	}
	if spec.Deprecated {
		st.diags.recordWarning("argument " + spec.Label() + " is deprecated")
	}

	switch spec.Nargs {
	case NargsZeroOrMore, NargsOneOrMore, NargsRemainder:
		values := pool.GetStringSlice()
		defer pool.PutStringSlice(values)

		*values = append(*values, token)
		for st.cursor < len(st.tokens) {
			next := st.tokens[st.cursor]
			if spec.Nargs != NargsRemainder && m.looksLikeFlag(next) {
				break
			}
			*values = append(*values, next)
			st.cursor++
		}
		m.bindList(st, spec, *values, false)
	default:
		m.bindOne(st, spec, token, false)
	}
}

// apply dispatches value consumption for a matched optional. Attached text
// on a flag whose action reads no value ("-v5" with a store-true "-v") is a
// diagnostic, never silently dropped.
func (m *Matcher) apply(st *parseState, spec *ArgumentSpec, attached string, hasAttached bool) {
	if hasAttached && !spec.consumesValue() {
		st.diags.recordError(spec.Label(), "ignored explicit value '"+attached+"'")
		return
	}
	if spec.Deprecated {
		st.diags.recordWarning("argument " + spec.Label() + " is deprecated")
	}

	switch spec.Action {
	case ActionStore:
		m.consume(st, spec, attached, hasAttached, false)
	case ActionAppend, ActionExtend:
		m.consume(st, spec, attached, hasAttached, true)
	case ActionStoreTrue:
		spec.value = BoolValue(true)
	case ActionStoreFalse:
		spec.value = BoolValue(false)
	case ActionStoreConst:
		if !spec.hasConst {
			st.diags.recordError(spec.Label(), "no const value configured")
			return
		}
		m.bindOne(st, spec, spec.constValue, false)
	case ActionAppendConst:
		if !spec.hasConst {
			st.diags.recordError(spec.Label(), "no const value configured")
			return
		}
		m.bindOne(st, spec, spec.constValue, true)
	case ActionCount:
		if n, ok := spec.value.Int(); ok {
			spec.value = IntValue(n + 1)
		} else {
			spec.value = IntValue(1)
		}
	case ActionVersion:
		fmt.Fprintf(m.out, "%s %s\n", m.registry.name, m.registry.version)
		st.diags.reset()
		st.done = true
	}
}

// consume reads value tokens per the spec's nargs policy and binds them.
func (m *Matcher) consume(st *parseState, spec *ArgumentSpec, attached string, hasAttached, appendMode bool) {
	switch spec.Nargs {
	case NargsOptionalOne:
		raw, ok := m.takeValue(st, attached, hasAttached)
		if !ok {
			// Arity "?" falls back to const, then default, else stays absent.
			switch {
			case spec.hasConst:
				m.bindOne(st, spec, spec.constValue, appendMode)
			case spec.hasDefault:
				m.bindOne(st, spec, spec.defaultValue, appendMode)
			}
			return
		}
		m.bindOne(st, spec, raw, appendMode)

	case NargsZeroOrMore, NargsOneOrMore:
		values := pool.GetStringSlice()
		defer pool.PutStringSlice(values)

		if hasAttached {
			if m.looksLikeFlag(attached) {
				st.diags.recordError(spec.Label(), "expected one argument")
				return
			}
			*values = append(*values, attached)
		}
		for st.cursor < len(st.tokens) && !m.looksLikeFlag(st.tokens[st.cursor]) {
			*values = append(*values, st.tokens[st.cursor])
			st.cursor++
		}
		if spec.Nargs == NargsOneOrMore && len(*values) == 0 {
			st.diags.recordError(spec.Label(), "expected at least one argument")
			return
		}
		m.bindList(st, spec, *values, appendMode)

	case NargsRemainder:
		values := pool.GetStringSlice()
		defer pool.PutStringSlice(values)

		if hasAttached {
			*values = append(*values, attached)
		}
		for st.cursor < len(st.tokens) {
			*values = append(*values, st.tokens[st.cursor])
			st.cursor++
		}
		m.bindList(st, spec, *values, appendMode)

	default: // exactly one
		raw, ok := m.takeValue(st, attached, hasAttached)
		if !ok {
			st.diags.recordError(spec.Label(), "expected one argument")
			return
		}
		m.bindOne(st, spec, raw, appendMode)
	}
}

// takeValue yields the single value candidate: the attached run when
// present, else the next token. A flag-shaped candidate is never consumed.
func (m *Matcher) takeValue(st *parseState, attached string, hasAttached bool) (string, bool) {
	if hasAttached {
		if m.looksLikeFlag(attached) {
			return "", false
		}
		return attached, true
	}
	if st.cursor >= len(st.tokens) {
		return "", false
	}
	next := st.tokens[st.cursor]
	if m.looksLikeFlag(next) {
		return "", false
	}
	st.cursor++
	return next, true
}

// bindOne converts raw per the spec's type and binds it, replacing the
// previous value or appending to the list binding.
func (m *Matcher) bindOne(st *parseState, spec *ArgumentSpec, raw string, appendMode bool) {
	value, problem := convertValue(spec.Type, raw)
	if problem != "" {
		st.diags.recordError(spec.Label(), problem)
		return
	}
	if len(spec.choices) > 0 && !containsChoice(spec.choices, raw) {
		st.diags.recordError(spec.Label(),
			fmt.Sprintf("invalid choice: '%s' (choose from %s)", raw, strings.Join(spec.choices, ", ")))
		return
	}
	if appendMode {
		spec.value.appendItem(raw)
		return
	}
	spec.value = value
}

// bindList validates every element and binds the survivors. In append mode
// the elements extend the existing list binding; otherwise they replace it.
func (m *Matcher) bindList(st *parseState, spec *ArgumentSpec, raws []string, appendMode bool) {
	valid := make([]string, 0, len(raws))
	for _, raw := range raws {
		if _, problem := convertValue(spec.Type, raw); problem != "" {
			st.diags.recordError(spec.Label(), problem)
			continue
		}
		if len(spec.choices) > 0 && !containsChoice(spec.choices, raw) {
			st.diags.recordError(spec.Label(),
				fmt.Sprintf("invalid choice: '%s' (choose from %s)", raw, strings.Join(spec.choices, ", ")))
			continue
		}
		valid = append(valid, raw)
	}

	if appendMode {
		for _, raw := range valid {
			spec.value.appendItem(raw)
		}
		return
	}
	spec.value = ListValue(valid)
}

// validate records unfilled positionals in registration order, then every
// ledger entry whose spec is still absent, formatted as its alias pair.
func (m *Matcher) validate(diags *Diagnostics, positionalCount int) {
	for i := positionalCount; i < m.registry.PositionalCount(); i++ {
		spec, err := m.registry.PositionalAt(i)
		if err != nil {
			continue
		}
		diags.recordMissing(spec.LongName)
	}

	it := m.registry.requiredKeys()
	for {
		key, ok := it.Next()
		if !ok {
			break
		}
		spec, err := m.registry.Lookup(key)
		if err != nil {
			continue
		}
		// The ledger keeps entries from past transitions; honor the flag.
		if spec.Required && spec.value.IsAbsent() {
			diags.recordMissing(spec.Label())
		}
	}
}

// bindDefaults fills still-absent specs from their registered defaults,
// after validation so a required argument is reported even when it carries
// a default. Defaults go through the same conversion as consumed tokens.
func (m *Matcher) bindDefaults(diags *Diagnostics) {
	for _, spec := range m.registry.specs() {
		if !spec.value.IsAbsent() || !spec.hasDefault {
			continue
		}
		value, problem := convertValue(spec.Type, spec.defaultValue)
		if problem != "" {
			diags.recordError(spec.Label(), problem)
			continue
		}
		switch spec.Action {
		case ActionAppend, ActionAppendConst, ActionExtend:
			spec.value = ListValue([]string{spec.defaultValue})
		default:
			spec.value = value
		}
	}
}

func (m *Matcher) addSuggestions(diags *Diagnostics) {
	tokens := diags.Unrecognized()
	if len(tokens) == 0 {
		return
	}
	keys := m.registry.Keys()
	for _, token := range tokens {
		if best := fuzzy.FindBestKey(token, keys, m.maxDistance); best != "" {
			diags.recordSuggestion(fmt.Sprintf("Did you mean '%s'?", best))
		}
	}
}

func containsChoice(choices []string, raw string) bool {
	for _, c := range choices {
		if c == raw {
			return true
		}
	}
	return false
}

// convertValue coerces a raw token per the declared type. The second return
// is the diagnostic message, empty on success.
func convertValue(typ ValueType, raw string) (Value, string) {
	switch typ {
	case TypeInt:
		n, err := parseInt(raw)
		if err != nil {
			if errors.Is(err, errIntRange) {
				return Value{}, "integer out of range: '" + raw + "'"
			}
			return Value{}, "invalid int value: '" + raw + "'"
		}
		return IntValue(n), ""
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return Value{}, "float out of range: '" + raw + "'"
			}
			return Value{}, "invalid float value: '" + raw + "'"
		}
		return FloatValue(f), ""
	case TypeBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes", "on":
			return BoolValue(true), ""
		case "false", "0", "no", "off":
			return BoolValue(false), ""
		}
		return Value{}, "invalid bool value: '" + raw + "'"
	default: // string passthrough
		return StringValue(raw), ""
	}
}

var (
	errIntSyntax = errors.New("invalid integer")
	errIntRange  = errors.New("integer out of range")
)

// parseInt parses decimal and hex integers using ASCII math.
// Supports: 123, -456, +789, 0xFF, 0x1a2b.
func parseInt(s string) (int, error) {
	if len(s) == 0 {
		return 0, errIntSyntax
	}

	negative := false
	start := 0
	switch s[0] {
	case '-':
		negative = true
		start = 1
	case '+':
		start = 1
	}
	if start == len(s) {
		return 0, errIntSyntax
	}

	rest := s[start:]
	var (
		result int
		err    error
	)
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		result, err = parseHexDigits(rest[2:])
	} else {
		result, err = parseDecimalDigits(rest)
	}
	if err != nil {
		return 0, err
	}
	if negative {
		result = -result
	}
	return result, nil
}

func parseDecimalDigits(s string) (int, error) {
	result := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errIntSyntax
		}
		digit := int(c - '0')

		// Overflow check before the multiply.
		if result > (math.MaxInt-digit)/10 {
			return 0, errIntRange
		}
		result = result*10 + digit
	}
	return result, nil
}

func parseHexDigits(s string) (int, error) {
	result := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var digit int
		switch {
		case c >= '0' && c <= '9':
			digit = int(c - '0')
		case c >= 'a' && c <= 'f':
			digit = int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			digit = int(c - 'A' + 10)
		default:
			return 0, errIntSyntax
		}

		if result > (math.MaxInt-digit)/16 {
			return 0, errIntRange
		}
		result = result*16 + digit
	}
	return result, nil
}
