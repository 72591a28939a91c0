package gridview

// BorderSet holds the glyphs of a box frame. Grid dividers use Bottom, Right
// and Cross.
type BorderSet struct {
	Top, Bottom, Left, Right string

	TopLeft, TopRight, BottomLeft, BottomRight string

	// Cross is drawn where a horizontal and a vertical divider meet.
	Cross string
}

func newBorderSet(horizontal, vertical, topLeft, topRight, bottomLeft, bottomRight, cross string) BorderSet {
	return BorderSet{
		Top:         horizontal,
		Bottom:      horizontal,
		Left:        vertical,
		Right:       vertical,
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
		Cross:       cross,
	}
}

func BorderSetPlain() BorderSet {
	return newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightDownAndRight, BoxDrawingsLightDownAndLeft,
		BoxDrawingsLightUpAndRight, BoxDrawingsLightUpAndLeft,
		BoxDrawingsLightVerticalAndHorizontal,
	)
}

// BorderSetRound is BorderSetPlain with rounded corners.
func BorderSetRound() BorderSet {
	return newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightArcDownAndRight, BoxDrawingsLightArcDownAndLeft,
		BoxDrawingsLightArcUpAndRight, BoxDrawingsLightArcUpAndLeft,
		BoxDrawingsLightVerticalAndHorizontal,
	)
}

func BorderSetThick() BorderSet {
	return newBorderSet(
		BoxDrawingsHeavyHorizontal, BoxDrawingsHeavyVertical,
		BoxDrawingsHeavyDownAndRight, BoxDrawingsHeavyDownAndLeft,
		BoxDrawingsHeavyUpAndRight, BoxDrawingsHeavyUpAndLeft,
		BoxDrawingsHeavyVerticalAndHorizontal,
	)
}

func BorderSetDouble() BorderSet {
	return newBorderSet(
		BoxDrawingsDoubleHorizontal, BoxDrawingsDoubleVertical,
		BoxDrawingsDoubleDownAndRight, BoxDrawingsDoubleDownAndLeft,
		BoxDrawingsDoubleUpAndRight, BoxDrawingsDoubleUpAndLeft,
		BoxDrawingsDoubleVerticalAndHorizontal,
	)
}

// Borders selects the sides of a box that get a frame.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any of the sides in flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
