package model

// Style is a named bundle of formatting. Character styles use only Char,
// section styles only Section. Style is a comparable value, equal styles
// registered under different aliases share one style sheet entry.
type Style struct {
	Name        string        `yaml:"name"`
	Kind        StyleKind     `yaml:"kind"`
	Char        CharFormat    `yaml:"char"`
	Para        ParaFormat    `yaml:"para"`
	Section     SectionFormat `yaml:"section"`
	Base        Opt[string]   `yaml:"base"`
	Next        Opt[string]   `yaml:"next"`
	Hidden      bool          `yaml:"hidden"`
	QuickFormat bool          `yaml:"quick_format"`
}
