// Package format renders prices for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price renders n with ru-RU digit grouping: 1500 becomes "1 500" with a
// no-break space (U+00A0) between groups.
func Price(n int) string {
	return message.NewPrinter(language.Russian).Sprintf("%d", n)
}
