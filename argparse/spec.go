package argparse

// Action governs how a matched argument's value is captured.
type Action string

const (
	// ActionStore consumes one value and binds it, replacing any previous binding.
	ActionStore Action = "store"
	// ActionStoreConst binds the preconfigured const without consuming a token.
	ActionStoreConst Action = "store_const"
	// ActionStoreTrue binds true without consuming a token.
	ActionStoreTrue Action = "store_true"
	// ActionStoreFalse binds false without consuming a token.
	ActionStoreFalse Action = "store_false"
	// ActionAppend consumes one value and appends it to the list binding.
	ActionAppend Action = "append"
	// ActionAppendConst appends the preconfigured const to the list binding.
	ActionAppendConst Action = "append_const"
	// ActionExtend consumes values per the nargs policy and flattens repeated
	// occurrences into one list binding.
	ActionExtend Action = "extend"
	// ActionCount increments an integer binding without consuming a token.
	ActionCount Action = "count"
	// ActionVersion emits the program version and ends the parse successfully.
	ActionVersion Action = "version"
)

// ValueType declares how a consumed token is converted before binding.
type ValueType string

const (
	TypeString ValueType = "string"
	TypeInt    ValueType = "int"
	TypeFloat  ValueType = "float64"
	TypeBool   ValueType = "bool"
)

// Nargs declares the arity of values an argument consumes.
type Nargs string

const (
	NargsExactlyOne  Nargs = "1"
	NargsOptionalOne Nargs = "?"
	NargsZeroOrMore  Nargs = "*"
	NargsOneOrMore   Nargs = "+"
	NargsRemainder   Nargs = "..."
)

// Kind classifies how an argument is identified on the command line.
type Kind string

const (
	// KindPositional is matched by position, never by a prefix.
	KindPositional Kind = "positional"
	// KindOptionalByShort is matched by its "-x" flag only.
	KindOptionalByShort Kind = "optional_short"
	// KindOptionalByLong is matched by its "--name", optionally aliased by a
	// short flag.
	KindOptionalByLong Kind = "optional_long"
)

// ArgumentSpec is a registered argument's full configuration together with
// its current bound value. Specs are owned by the Registry that created
// them; every alias key resolves to the same instance.
type ArgumentSpec struct {
	Kind      Kind
	ShortName string // "-x", empty when absent
	LongName  string // "--name" for optionals, bare name for positionals
	Position  int    // registration order, positionals only

	Action     Action
	Type       ValueType
	Nargs      Nargs
	Required   bool
	Deprecated bool

	Help    string
	Metavar string
	Dest    string

	defaultValue string
	hasDefault   bool
	constValue   string
	hasConst     bool
	choices      []string

	value Value
}

// Label returns the display name used in diagnostics: "-c/--copy" for an
// aliased optional, otherwise the single registered name.
func (s *ArgumentSpec) Label() string {
	if s.ShortName != "" && s.LongName != "" {
		return s.ShortName + "/" + s.LongName
	}
	if s.LongName != "" {
		return s.LongName
	}
	return s.ShortName
}

// DestName returns the destination name: the explicit dest override when
// set, else the long name stripped of leading dashes, else the short letter.
func (s *ArgumentSpec) DestName() string {
	if s.Dest != "" {
		return s.Dest
	}
	if s.LongName != "" {
		name := s.LongName
		for len(name) > 0 && name[0] == '-' {
			name = name[1:]
		}
		return name
	}
	if len(s.ShortName) == 2 {
		return s.ShortName[1:]
	}
	return s.ShortName
}

// Value returns the current bound value.
func (s *ArgumentSpec) Value() Value {
	return s.value
}

// Choices returns the allowed value set, empty when unrestricted.
func (s *ArgumentSpec) Choices() []string {
	return s.choices
}

// Default returns the registered default value and whether one is set.
func (s *ArgumentSpec) Default() (string, bool) {
	return s.defaultValue, s.hasDefault
}

// Const returns the registered const value and whether one is set.
func (s *ArgumentSpec) Const() (string, bool) {
	return s.constValue, s.hasConst
}

// consumesValue reports whether the action reads value tokens from argv.
func (s *ArgumentSpec) consumesValue() bool {
	switch s.Action {
	case ActionStore, ActionAppend, ActionExtend:
		return true
	case ActionStoreConst, ActionStoreTrue, ActionStoreFalse,
		ActionAppendConst, ActionCount, ActionVersion:
		return false
	}
	return false
}

// canonicalKey returns the key the spec is primarily registered under.
func (s *ArgumentSpec) canonicalKey() string {
	if s.LongName != "" {
		return s.LongName
	}
	return s.ShortName
}
