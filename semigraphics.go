package gridview

// Glyphs for grid dividers, box frames and truncated text. The \u escapes
// keep the source ASCII.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal             = "\u2500" // ─
	BoxDrawingsHeavyHorizontal             = "\u2501" // ━
	BoxDrawingsLightVertical               = "\u2502" // │
	BoxDrawingsHeavyVertical               = "\u2503" // ┃
	BoxDrawingsLightDownAndRight           = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight           = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft            = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft            = "\u2513" // ┓
	BoxDrawingsLightUpAndRight             = "\u2514" // └
	BoxDrawingsHeavyUpAndRight             = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft              = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft              = "\u251b" // ┛
	BoxDrawingsLightVerticalAndHorizontal  = "\u253c" // ┼
	BoxDrawingsHeavyVerticalAndHorizontal  = "\u254b" // ╋
	BoxDrawingsDoubleHorizontal            = "\u2550" // ═
	BoxDrawingsDoubleVertical              = "\u2551" // ║
	BoxDrawingsDoubleDownAndRight          = "\u2554" // ╔
	BoxDrawingsDoubleDownAndLeft           = "\u2557" // ╗
	BoxDrawingsDoubleUpAndRight            = "\u255a" // ╚
	BoxDrawingsDoubleUpAndLeft             = "\u255d" // ╝
	BoxDrawingsDoubleVerticalAndHorizontal = "\u256c" // ╬
	BoxDrawingsLightArcDownAndRight        = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft         = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft           = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight          = "\u2570" // ╰
)
