package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// formatNodes renders node ids the way they are listed in diagnostics: [1 2 3].
func formatNodes(nodes []m.NodeID) string {
	parts := make([]string, len(nodes))
	for i, node := range nodes {
		parts[i] = fmt.Sprintf("%d", node)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// formatRatio renders a ratio with two decimals.
func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}

// formatCount renders "n/total".
func formatCount(n, total int) string {
	return fmt.Sprintf("%d/%d", n, total)
}
