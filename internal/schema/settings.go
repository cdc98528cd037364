package schema

// Settings control how a schema tokenizes and lays out its result.
// A command receives a copy of its parent's settings when it is declared.
type Settings struct {
	Strict  bool // reject unknown options, arguments and reserved keys
	Inherit bool // commands declared afterwards copy this schema's options
	Split   bool // command options go under CommandOptionsKey instead of the shared result

	NegativePrefix    string
	CommandKey        string
	CommandOptionsKey string
	RestKey           string
}

// DefaultSettings returns the settings a new schema starts with.
func DefaultSettings() Settings {
	return Settings{
		NegativePrefix:    "no-",
		CommandKey:        "command",
		CommandOptionsKey: "commandOptions",
		RestKey:           "_",
	}
}

// Reserved reports whether key is one of the result keys owned by the parser.
func (st Settings) Reserved(key string) bool {
	return key == st.CommandKey || key == st.CommandOptionsKey || key == st.RestKey
}

// Setting configures a root schema in New.
type Setting func(*Settings)

func WithStrict() Setting  { return func(st *Settings) { st.Strict = true } }
func WithInherit() Setting { return func(st *Settings) { st.Inherit = true } }
func WithSplit() Setting   { return func(st *Settings) { st.Split = true } }

func WithNegativePrefix(prefix string) Setting {
	return func(st *Settings) { st.NegativePrefix = prefix }
}

func WithCommandKey(key string) Setting {
	return func(st *Settings) { st.CommandKey = key }
}

func WithCommandOptionsKey(key string) Setting {
	return func(st *Settings) { st.CommandOptionsKey = key }
}

func WithRestKey(key string) Setting {
	return func(st *Settings) { st.RestKey = key }
}
