package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorFloor           = color.RGBA{34, 34, 54, 255}    // Open cell
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorTreasure        = color.RGBA{255, 215, 0, 255}   // Gold
	colorHint            = color.RGBA{100, 150, 255, 255} // Bright blue
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout
const (
	defaultTileSize     = 24
	minTileSize         = 8
	wallThickness       = 2
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	panelHeight         = 180 // status bar + messages below the map
	panelPadding        = 12
	lineHeight          = 20
	uiFontSize          = 14
	inputBufferSize     = 16
	maxPanelMessages    = 5
)
