package css

import "go.trai.ch/zerr"

var (
	// ErrMalformedStyle is returned when a style tree contains a value the serializer cannot represent.
	ErrMalformedStyle = zerr.New("malformed style tree")

	// ErrUnknownToken is returned when an interpolation references a token the lookup does not define.
	ErrUnknownToken = zerr.New("unknown token reference")
)

func malformed(reason, selector string) error {
	return zerr.With(zerr.Wrap(zerr.New(reason), ErrMalformedStyle.Error()), "selector", selector)
}
