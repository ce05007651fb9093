// Package renderer defines the contract shared by the interactive rendering
// backends and the markup they format messages with.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"darkmaze/pkg/game/messages"
)

// Markup functions look like NAME{operand}
var regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// sprintf is a function variable so that go vet does not take ExpandMarkup,
// whose messages come from the catalog and the walker's log, for a printf
// wrapper.
var sprintf = fmt.Sprintf

// markupStyles maps markup functions to the style of their operand
var markupStyles = map[string]TextStyle{
	"WALL":   StyleWall,
	"FLOOR":  StyleFloor,
	"MARKER": StyleMarker,
	"DENIED": StyleDenied,
	"SUBTLE": StyleSubtle,
}

// ExpandMarkup formats msg with args and replaces its markup:
//
//	GT{KEY}       the catalog message for KEY
//	ACTION{key}   a key binding, first character highlighted
//	WALL{text}    text in the wall style, likewise FLOOR, MARKER, DENIED, SUBTLE
//
// Unknown functions are reported inline.
func ExpandMarkup(style func(text string, s TextStyle) string, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = sprintf(msg, args...)
	}

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = messages.Get(operand)
		case "ACTION":
			val = style(operand[0:1], StyleMarker) + style(operand[1:], StyleAction)
		default:
			s, ok := markupStyles[function]
			if !ok {
				val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
				break
			}
			val = style(operand, s)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// Plain is a style function that leaves text unstyled
func Plain(text string, _ TextStyle) string {
	return text
}
