package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBorder        = tcell.NewRGBColor(120, 120, 140) // Muted gray-blue
	RgbCellAlive     = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbCellDead      = tcell.NewRGBColor(60, 60, 70)    // Dark gray
	RgbStatusText    = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbStatusAutorun = tcell.NewRGBColor(255, 165, 0)   // Orange while running
)

var (
	styleBorder        = tcell.StyleDefault.Foreground(RgbBorder)
	styleAlive         = tcell.StyleDefault.Foreground(RgbCellAlive)
	styleDead          = tcell.StyleDefault.Foreground(RgbCellDead)
	styleStatus        = tcell.StyleDefault.Foreground(RgbStatusText)
	styleStatusAutorun = tcell.StyleDefault.Foreground(RgbStatusAutorun).Bold(true)
)
