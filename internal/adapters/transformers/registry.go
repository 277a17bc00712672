package transformers

import (
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
)

// Names lists the transformers ByName accepts.
var Names = []string{"legacy-logical-properties", "px2rem"}

// ByName returns the named transformers in order. The px2rem options apply to "px2rem".
func ByName(names []string, px2rem domain.Px2RemOptions) ([]css.Transformer, error) {
	out := make([]css.Transformer, 0, len(names))
	for _, name := range names {
		switch name {
		case "legacy-logical-properties":
			out = append(out, LegacyLogicalProperties)
		case "px2rem":
			out = append(out, Px2Rem(px2rem))
		default:
			return nil, zerr.With(domain.ErrUnknownTransformer, "transformer", name)
		}
	}
	return out, nil
}
