package renderer

import (
	"fmt"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// markupPattern matches FUNCTION{operand} spans in messages
var markupPattern = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:.!'/-]+)}`)

// dynamicGet is used for runtime translation key lookups. A function variable
// avoids go vet's non-constant format string check.
var dynamicGet = gotext.Get

// Styler applies a TextStyle to a run of text
type Styler func(text string, style TextStyle) string

// Plain is a Styler that leaves text untouched
func Plain(text string, _ TextStyle) string {
	return text
}

// Format runs fmt.Sprintf over msg and args, then expands markup:
//
//	GT{KEY}        translated message
//	ACTION{north}  key hint, first letter emphasised
//	ITEM{x}        highlighted value
//	TREASURE{x}    treasure colour
//	DENIED{x}      refusal colour
//	SUBTLE{x}      dim text
//
// Unknown functions are left as written.
func Format(style Styler, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return markupPattern.ReplaceAllStringFunc(ret, func(m string) string {
		match := markupPattern.FindStringSubmatch(m)
		function, operand := match[1], match[2]

		switch function {
		case "GT":
			return dynamicGet(operand)
		case "ACTION":
			return style(operand[:1], StyleActionShort) + style(operand[1:], StyleAction)
		case "ITEM":
			return style(operand, StyleItem)
		case "TREASURE":
			return style(operand, StyleTreasure)
		case "DENIED":
			return style(operand, StyleDenied)
		case "SUBTLE":
			return style(operand, StyleSubtle)
		default:
			return m
		}
	})
}
