package config

import "gopkg.in/yaml.v3"

// Stylefile represents the structure of the cssinjs.yaml configuration file.
type Stylefile struct {
	Version    string         `yaml:"version" validate:"omitempty,oneof=1"`
	Options    OptionsDTO     `yaml:"options"`
	Tokens     []yaml.Node    `yaml:"tokens"`
	Override   yaml.Node      `yaml:"override"`
	Derive     yaml.Node      `yaml:"derive"`
	Keyframes  yaml.Node      `yaml:"keyframes"`
	Components []ComponentDTO `yaml:"components" validate:"dive"`
}

// OptionsDTO represents the runtime options of a stylefile.
type OptionsDTO struct {
	Hashed       *bool     `yaml:"hashed"`
	Salt         string    `yaml:"salt"`
	HashPriority string    `yaml:"hashPriority" validate:"omitempty,oneof=low high"`
	AutoClear    *bool     `yaml:"autoClear"`
	SSRInline    bool      `yaml:"ssrInline"`
	Mock         string    `yaml:"mock" validate:"omitempty,oneof=server client"`
	Dev          bool      `yaml:"dev"`
	Transformers []string  `yaml:"transformers" validate:"dive,oneof=legacy-logical-properties px2rem"`
	Linters      []string  `yaml:"linters" validate:"dive,oneof=content-quotes hashed-animation logical-properties legacy-not-selector parent-selector syntax"` //nolint:lll // validator tags cannot be split
	Px2Rem       Px2RemDTO `yaml:"px2rem"`
}

// Px2RemDTO represents the px to rem transformer options.
type Px2RemDTO struct {
	RootValue  *float64 `yaml:"rootValue" validate:"omitempty,gt=0"`
	Precision  *int     `yaml:"precision" validate:"omitempty,min=0,max=10"`
	MediaQuery bool     `yaml:"mediaQuery"`
}

// ComponentDTO represents a component style definition.
type ComponentDTO struct {
	Name   string    `yaml:"name" validate:"required,csskey"`
	Path   []string  `yaml:"path" validate:"dive,required"`
	Order  int       `yaml:"order"`
	Global bool      `yaml:"global"`
	Style  yaml.Node `yaml:"style"`
	CSS    string    `yaml:"css"`
}
