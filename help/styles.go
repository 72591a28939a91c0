package help

import (
	"github.com/ayn2op/gridview"
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles highlights keys in the theme's secondary text color.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(gridview.Styles.SecondaryTextColor)
	desc := tcell.StyleDefault.Foreground(gridview.Styles.PrimaryTextColor)
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
