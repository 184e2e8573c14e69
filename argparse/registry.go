package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/growarray"
	"github.com/dzonerzy/go-argparse/internal/intern"
	"github.com/dzonerzy/go-argparse/internal/keytable"
)

// Registry classifies, stores, and mutates argument specifications. Every
// spec is reachable through exactly the key(s) it was registered under, and
// short/long aliases resolve to one shared spec. Positionals additionally
// appear in a registration-order list.
type Registry struct {
	table       *keytable.Table[*ArgumentSpec]
	positionals *growarray.Array[*ArgumentSpec]
	required    *growarray.Array[string] // canonical keys, ledger for diagnostics
	keys        *intern.Keys

	name        string
	usage       string
	description string
	epilogue    string
	prefixChars string
	version     string
	addHelp     bool
	allowAbbrev bool
}

// NewRegistry creates an empty registry with "-" as the prefix character.
func NewRegistry() *Registry {
	return &Registry{
		table:       keytable.New[*ArgumentSpec](),
		positionals: growarray.New[*ArgumentSpec](),
		required: growarray.New(growarray.WithMatch(func(a, b string) bool {
			return a == b
		})),
		keys:        intern.NewKeys(0),
		prefixChars: "-",
		addHelp:     true,
	}
}

// Parser metadata, fluent.

// Name sets the program name used in version output and diagnostics.
func (r *Registry) Name(name string) *Registry {
	r.name = name
	return r
}

// Usage sets the usage line override.
func (r *Registry) Usage(usage string) *Registry {
	r.usage = usage
	return r
}

// Description sets the program description.
func (r *Registry) Description(description string) *Registry {
	r.description = description
	return r
}

// Epilogue sets the text displayed after the argument listing.
func (r *Registry) Epilogue(epilogue string) *Registry {
	r.epilogue = epilogue
	return r
}

// PrefixChars sets the accepted prefix characters. Empty input is ignored.
func (r *Registry) PrefixChars(chars string) *Registry {
	if chars != "" {
		r.prefixChars = chars
	}
	return r
}

// AddHelp controls whether a help argument is implied.
func (r *Registry) AddHelp(enabled bool) *Registry {
	r.addHelp = enabled
	return r
}

// AllowAbbrev controls whether unambiguous long-name prefixes are accepted.
// Stored as metadata only; the matcher requires exact names.
func (r *Registry) AllowAbbrev(enabled bool) *Registry {
	r.allowAbbrev = enabled
	return r
}

// Version sets the version text emitted by the version action.
func (r *Registry) Version(version string) *Registry {
	r.version = version
	return r
}

// ProgramName returns the configured program name.
func (r *Registry) ProgramName() string { return r.name }

// VersionText returns the configured version text.
func (r *Registry) VersionText() string { return r.version }

// Register classifies the short/long name pair and stores a new spec.
// An empty string means the name is absent. The shape grammar:
//
//	neither name            -> error
//	long only, no prefix    -> positional
//	long only, "--" prefix  -> optional by long name
//	long only, "-" prefix   -> error (one dash is not a positional name)
//	short only              -> optional by short flag ("-" plus one letter)
//	short plus "--" long    -> optional by long name, short kept as alias
//	short plus bare long    -> error (positional and optional shapes mixed)
//
// Duplicate keys leave the registry unchanged and return an already-exists
// error. New specs default to action store, type string, nargs exactly-one.
func (r *Registry) Register(shortName, longName string) (*ArgumentSpec, error) {
	if shortName == "" && longName == "" {
		return nil, NewArgError(ErrorTypeMissingName, "either a name or a flag is required")
	}

	if shortName == "" {
		switch {
		case strings.HasPrefix(longName, "--"):
			return r.registerOptional("", longName)
		case strings.HasPrefix(longName, "-"):
			return nil, NewArgError(ErrorTypeBadLongName,
				"a positional name cannot start with a single dash").WithKey(longName)
		default:
			return r.registerPositional(longName)
		}
	}

	if len(shortName) != 2 || shortName[0] != '-' || !intern.IsAlpha(shortName[1]) {
		return nil, NewArgError(ErrorTypeBadShortName,
			"a flag must be a dash followed by one letter").WithKey(shortName)
	}

	if longName == "" {
		return r.registerOptional(shortName, "")
	}
	if strings.HasPrefix(longName, "--") {
		return r.registerOptional(shortName, longName)
	}
	return nil, NewArgError(ErrorTypeMixedNames,
		"cannot mix a flag with a positional name").WithKey(longName)
}

func (r *Registry) registerPositional(name string) (*ArgumentSpec, error) {
	name = r.keys.Canonical(name)
	if _, err := r.table.Search(name); err == nil {
		return nil, NewArgError(ErrorTypeAlreadyExists,
			"argument "+name+" is already registered").WithKey(name)
	}

	spec := &ArgumentSpec{
		Kind:     KindPositional,
		LongName: name,
		Position: r.positionals.Len(),
		Action:   ActionStore,
		Type:     TypeString,
		Nargs:    NargsExactlyOne,
	}
	if err := r.table.Insert(name, spec); err != nil {
		return nil, err
	}
	r.positionals.Push(spec)
	return spec, nil
}

func (r *Registry) registerOptional(shortName, longName string) (*ArgumentSpec, error) {
	if shortName != "" {
		shortName = r.keys.Canonical(shortName)
	}
	if longName != "" {
		longName = r.keys.Canonical(longName)
	}

	// Both keys are checked before either insert so a duplicate is a no-op.
	if shortName != "" {
		if _, err := r.table.Search(shortName); err == nil {
			return nil, NewArgError(ErrorTypeAlreadyExists,
				"argument "+shortName+" is already registered").WithKey(shortName)
		}
	}
	if longName != "" {
		if _, err := r.table.Search(longName); err == nil {
			return nil, NewArgError(ErrorTypeAlreadyExists,
				"argument "+longName+" is already registered").WithKey(longName)
		}
	}

	kind := KindOptionalByShort
	if longName != "" {
		kind = KindOptionalByLong
	}
	spec := &ArgumentSpec{
		Kind:      kind,
		ShortName: shortName,
		LongName:  longName,
		Action:    ActionStore,
		Type:      TypeString,
		Nargs:     NargsExactlyOne,
	}

	// One shared spec under every alias key.
	if shortName != "" {
		if err := r.table.Insert(shortName, spec); err != nil {
			return nil, err
		}
	}
	if longName != "" {
		if err := r.table.Insert(longName, spec); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

// resolve looks a spec up by any of its registered keys.
func (r *Registry) resolve(key string) (*ArgumentSpec, error) {
	if key == "" {
		return nil, NewArgError(ErrorTypeEmptyKey, "lookup key is empty")
	}
	if r.table.Len() == 0 {
		return nil, NewArgError(ErrorTypeRegistryEmpty, "no arguments registered")
	}
	spec, err := r.table.Search(key)
	if err != nil {
		return nil, NewArgError(ErrorTypeNotFound,
			"argument "+key+" is not registered").WithKey(key)
	}
	return spec, nil
}

// Lookup returns the spec registered under key.
func (r *Registry) Lookup(key string) (*ArgumentSpec, error) {
	return r.resolve(key)
}

// SetAction sets the capture action of the argument registered under key.
func (r *Registry) SetAction(key string, action Action) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Action = action
	return nil
}

// SetType sets the value conversion type.
func (r *Registry) SetType(key string, typ ValueType) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Type = typ
	return nil
}

// SetHelp sets the help text.
func (r *Registry) SetHelp(key, help string) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Help = help
	return nil
}

// SetRequired marks an optional argument as required. Positionals are
// implicitly required and reject the call. The first transition to true
// appends the spec's canonical key to the missing-argument ledger; the key
// is entered at most once however often the flag toggles.
func (r *Registry) SetRequired(key string, required bool) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	if spec.Kind == KindPositional && required {
		return NewArgError(ErrorTypeInvalidArgument,
			"argument "+key+" is positional and always required").WithKey(key)
	}
	if required && !spec.Required && r.required.Index(spec.canonicalKey()) < 0 {
		r.required.Push(spec.canonicalKey())
	}
	spec.Required = required
	return nil
}

// SetDeprecated marks the argument as deprecated; matches record a warning.
func (r *Registry) SetDeprecated(key string, deprecated bool) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Deprecated = deprecated
	return nil
}

// SetDest overrides the destination name.
func (r *Registry) SetDest(key, dest string) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Dest = dest
	return nil
}

// SetNargs sets the value arity policy.
func (r *Registry) SetNargs(key string, nargs Nargs) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Nargs = nargs
	return nil
}

// SetMetavar sets the value placeholder used in help text.
func (r *Registry) SetMetavar(key, metavar string) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.Metavar = metavar
	return nil
}

// SetDefault sets the default value, bound after a scan that left the
// argument absent. The default goes through the same conversion as a
// consumed token.
func (r *Registry) SetDefault(key, value string) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.defaultValue = value
	spec.hasDefault = true
	return nil
}

// SetConst sets the const value used by the store-const and append-const
// actions and by optional-one arity when the value token is omitted.
func (r *Registry) SetConst(key, value string) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	spec.constValue = value
	spec.hasConst = true
	return nil
}

// SetChoices restricts accepted values to the given set. The slice is
// copied; the registry never aliases caller memory.
func (r *Registry) SetChoices(key string, choices []string) error {
	spec, err := r.resolve(key)
	if err != nil {
		return err
	}
	owned := make([]string, len(choices))
	copy(owned, choices)
	spec.choices = owned
	return nil
}

// PositionalCount returns the number of registered positionals.
func (r *Registry) PositionalCount() int {
	return r.positionals.Len()
}

// PositionalAt returns the positional registered at index, in registration
// order.
func (r *Registry) PositionalAt(index int) (*ArgumentSpec, error) {
	return r.positionals.Get(index)
}

// Len returns the number of registered keys. An aliased optional counts
// once per key.
func (r *Registry) Len() int {
	return r.table.Len()
}

// Keys returns a snapshot of every registered key, used for typo
// suggestions.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, r.table.Len())
	it := r.table.Iter()
	for {
		key, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	return keys
}

// requiredKeys returns an iterator over the missing-argument ledger.
func (r *Registry) requiredKeys() *growarray.Iterator[string] {
	return r.required.Iter()
}

// specs returns every distinct spec exactly once. An aliased optional sits
// in the table under both keys; emitting only the canonical key deduplicates
// without auxiliary storage.
func (r *Registry) specs() []*ArgumentSpec {
	out := make([]*ArgumentSpec, 0, r.table.Len())
	it := r.table.Iter()
	for {
		key, spec, ok := it.Next()
		if !ok {
			break
		}
		if key != spec.canonicalKey() {
			continue
		}
		out = append(out, spec)
	}
	return out
}

// ResetValues clears every bound value while keeping the registered specs,
// so the same registry can serve repeated parses without list actions
// accumulating across calls.
func (r *Registry) ResetValues() {
	for _, spec := range r.specs() {
		spec.value = Value{}
	}
}

// Destroy releases every spec, its bound value, and all bookkeeping. The
// registry is reusable afterwards.
func (r *Registry) Destroy() {
	for _, spec := range r.specs() {
		spec.value = Value{}
	}
	r.table.Clear()
	r.positionals.Clear()
	r.required.Clear()
	r.keys.Clear()
}
