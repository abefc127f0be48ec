package shopping

import (
	"fmt"
	"strings"
)

// ExportText renders the grouped, filtered list for download: an upper-cased
// header per group, a checked-state glyph per item and a blank line between
// groups.
func (l List) ExportText(groupBy GroupBy, filter Filter) string {
	blocks := make([]string, 0)
	for _, g := range l.Organize(groupBy, filter) {
		lines := []string{strings.ToUpper(g.Label)}
		for _, item := range g.Items {
			glyph := "○"
			if item.Checked {
				glyph = "✓"
			}
			lines = append(lines, fmt.Sprintf("%s %s %s %s", glyph, trimZeros(item.Amount), item.Unit, item.Ingredient))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// ShareText renders the list for sharing: plain group headers, bulleted
// items and no checked-state glyphs.
func (l List) ShareText(groupBy GroupBy, filter Filter) string {
	blocks := make([]string, 0)
	for _, g := range l.Organize(groupBy, filter) {
		lines := []string{g.Label}
		for _, item := range g.Items {
			lines = append(lines, fmt.Sprintf("• %s %s %s", trimZeros(item.Amount), item.Unit, item.Ingredient))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// trimZeros formats an amount the way the list renders it: up to two
// decimals with trailing zeros dropped, so 2.50 prints as 2.5 and 2.00 as 2.
func trimZeros(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	return strings.TrimRight(s, ".")
}
