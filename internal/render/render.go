// File: render.go
// Title: Selection Rendering Implementation
// Description: Implements highlight rendering of a source array with the
//              positions selected by a slice descriptor marked, plus the
//              plain rendering of selected elements and positions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation with highlight rendering

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/slyce"
)

// Color palette
var (
	colorSelected = lipgloss.Color("#10B981") // Emerald
	colorMuted    = lipgloss.Color("#6B7280") // Gray
)

// Renderer produces the textual representation of a slice selection. The
// zero value is not usable; construct with New.
type Renderer struct {
	color      bool
	selected   lipgloss.Style
	unselected lipgloss.Style
}

// New returns a Renderer. With color disabled, selected elements are marked
// with «guillemets» instead of styles, which keeps output stable for pipes
// and tests.
func New(color bool) *Renderer {
	return &Renderer{
		color:      color,
		selected:   lipgloss.NewStyle().Foreground(colorSelected).Bold(true),
		unselected: lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// Highlight renders the whole source array with the elements selected by s
// marked, in source order.
func Highlight[T any](r *Renderer, s slyce.Slice, src []T) string {
	sel := make(map[int]bool, s.Count(len(src)))
	for i := range s.Indices(len(src)) {
		sel[i] = true
	}

	parts := make([]string, len(src))
	for i, v := range src {
		parts[i] = r.element(fmt.Sprint(v), sel[i])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// element marks a single rendered value as selected or not
func (r *Renderer) element(text string, selected bool) string {
	if !r.color {
		if selected {
			return "«" + text + "»"
		}
		return text
	}
	if selected {
		return r.selected.Render(text)
	}
	return r.unselected.Render(text)
}
