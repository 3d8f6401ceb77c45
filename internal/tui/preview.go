// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Preview size in terminal cells. Each cell shows two vertical pixels.
const (
	previewCols = 48
	previewRows = 14
)

const halfBlock = "▀"

// renderPreview scales img to cols x rows cells and draws it with upper
// half blocks, the top pixel as foreground and the bottom one as background.
func renderPreview(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for row := range rows {
		for col := range cols {
			top := dst.RGBAAt(col, row*2)
			bottom := dst.RGBAAt(col, row*2+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top.R, top.G, top.B))).
				Background(lipgloss.Color(hexColor(bottom.R, bottom.G, bottom.B)))
			b.WriteString(cell.Render(halfBlock))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// blankPreview is shown while no frame is available.
func blankPreview(cols, rows int, text string) string {
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	if text != "" && rows > 0 {
		pad := max(0, (cols-len(text))/2)
		lines[rows/2] = fitText(strings.Repeat(" ", pad)+text, cols)
	}
	return strings.Join(lines, "\n")
}
