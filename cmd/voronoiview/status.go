// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// formatStatus styles the "[Key] text" status lines into one framed block.
func formatStatus(lines []string) string {
	styled := make([]string, len(lines))
	for i, line := range lines {
		key, rest, ok := strings.Cut(line, "] ")
		if !ok || !strings.HasPrefix(key, "[") {
			styled[i] = valueStyle.Render(line)
			continue
		}
		styled[i] = keyStyle.Render(key+"]") + " " + valueStyle.Render(rest)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, styled...))
}
