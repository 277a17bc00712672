package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/cssinjs/internal/adapters/hash"
)

func TestMurmur_Hash(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "0"},
		{input: "a", want: "acqbnw"},
		{input: "abc", want: "1pgwlfu"},
		{input: "hello world", want: "6opb3n"},
		{input: "_nestnothing1", want: "1023wet"},
		{input: "_nestnothing1primaryColorDisabledundefined", want: "rqtnqb"},
		{input: "rqtnqb", want: "9globo"},
		{input: "é", want: "dcz6rs"},
		{input: "日本", want: "etmin5"},
	}

	h := hash.Murmur{}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Hash(tt.input))
		})
	}
}

func TestXXHash_Hash(t *testing.T) {
	h := hash.XXHash{}

	assert.Equal(t, h.Hash("theme-1"), h.Hash("theme-1"))
	assert.NotEqual(t, h.Hash("theme-1"), h.Hash("theme-2"))
	assert.Regexp(t, `^[0-9a-z]+$`, h.Hash("anything"))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, hash.Fingerprint("a", "b"), hash.Fingerprint("a", "b"))
	assert.NotEqual(t, hash.Fingerprint("ab", "c"), hash.Fingerprint("a", "bc"))
	assert.NotEqual(t, hash.Fingerprint("a"), hash.Fingerprint("a", ""))
}
