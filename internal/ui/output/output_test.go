package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"go.trai.ch/cssinjs/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, func() termenv.Profile { return termenv.Ascii })

	_, _ = out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())
	assert.Equal(t, "plain", buf.String(), "ascii output carries no escape codes")

	assert.NotNil(t, output.New(nil))
}
