package gridview

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background color for contrasting elements.
	HeaderBackgroundColor    tcell.Color // Background of the frozen header row and column.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	DividerColor             tcell.Color // Lines between grid cells.
	GraphicsColor            tcell.Color // Graphics.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. labels).
	HeaderTextColor          tcell.Color // Text in header cells.
}

// Styles defines the theme for applications. The default is for a black
// background, light gray cell dividers and a blue header band.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	ContrastBackgroundColor:  tcell.ColorBlue,
	HeaderBackgroundColor:    tcell.ColorNavy,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	DividerColor:             tcell.ColorLightGray,
	GraphicsColor:            tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,
	HeaderTextColor:          tcell.ColorYellow,
}
