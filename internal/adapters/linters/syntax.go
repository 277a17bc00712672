package linters

import (
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"

	"go.trai.ch/cssinjs/internal/core/css"
)

// Syntax reports declarations a CSS parser rejects, such as unterminated strings or urls.
func Syntax(property, value string, _ css.LintInfo) []css.Diagnostic {
	const rule = "syntax"

	p := tdcss.NewParser(parse.NewInputString(property+":"+value), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case tdcss.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return warn(rule, fmt.Sprintf("Declaration '%s: %s' cannot be parsed: %v.", property, value, err))
			}
			return nil
		case tdcss.BadDeclarationGrammar:
			return warn(rule, fmt.Sprintf("Declaration '%s: %s' is invalid.", property, value))
		case tdcss.DeclarationGrammar, tdcss.CustomPropertyGrammar:
			values := p.Values()
			if gt == tdcss.DeclarationGrammar && len(values) == 0 {
				return warn(rule, fmt.Sprintf("Declaration '%s' has an empty value.", data))
			}
			for _, t := range values {
				if t.TokenType == tdcss.BadStringToken || t.TokenType == tdcss.BadURLToken {
					return warn(rule, fmt.Sprintf("Declaration '%s: %s' contains a malformed %s.", property, value, t.TokenType))
				}
			}
		}
	}
}
