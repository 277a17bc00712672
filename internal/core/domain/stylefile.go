package domain

import (
	"time"

	"go.trai.ch/cssinjs/internal/core/css"
)

// Mock modes force the runtime to behave as a server or a client.
const (
	MockServer = "server"
	MockClient = "client"
)

// Stylefile is a loaded and validated style configuration.
type Stylefile struct {
	// Path is the absolute path of the stylefile.
	Path string
	// SourceHash fingerprints the raw stylefile content.
	SourceHash string
	Options    StyleOptions
	// Tokens are the design token layers, merged left to right.
	Tokens []*Token
	// Override is merged over the derived token.
	Override *Token
	// Derive holds alias rules applied by the theme derivation.
	Derive *Token
	// Keyframes maps keyframes names to their definitions.
	Keyframes map[string]*css.Keyframes
	// Components are registered in order.
	Components []Component
}

// StyleOptions configures the runtime built from a stylefile.
type StyleOptions struct {
	Hashed       bool
	Salt         string
	HashPriority css.HashPriority
	AutoClear    bool
	SSRInline    bool
	Mock         string
	Dev          bool
	Transformers []string
	Linters      []string
	Px2Rem       Px2RemOptions
}

// Px2RemOptions configures the px to rem transformer.
type Px2RemOptions struct {
	RootValue  float64
	Precision  int
	MediaQuery bool
}

// DefaultPx2RemOptions returns a 16px root value and five decimals.
func DefaultPx2RemOptions() Px2RemOptions {
	return Px2RemOptions{RootValue: 16, Precision: 5}
}

// Component is a named style registered under its cache path.
type Component struct {
	Name  string
	Path  []string
	Order int
	// Global components are registered without a hash scope.
	Global bool
	// Style may reference derived tokens; it is interpolated before serialization.
	Style css.Node
}

// Snapshot is a persisted extraction result keyed by the stylefile source hash.
type Snapshot struct {
	SourceHash string      `json:"sourceHash"`
	Styles     []Extracted `json:"styles"`
	CreatedAt  time.Time   `json:"createdAt"`
}
