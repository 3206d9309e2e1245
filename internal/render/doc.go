// Package render implements styled terminal output for the slyce CLI.
//
// Package: render
// Title: Selection Rendering
// Description: This package renders a source array with the elements selected
//              by a slice descriptor visually marked, either with lipgloss
//              color styling or with plain-text markers when color is
//              disabled. Output is pure string production with no terminal
//              interaction, so it is fully testable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation with highlight rendering
package render
