package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	CaretBg     tcell.Color
	CaretFg     tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	MatchBg     tcell.Color
	MatchFg     tcell.Color
	TagBg       tcell.Color
	TagFg       tcell.Color
	TagTypedFg  tcell.Color
	DimFg       tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		CaretBg:     tcell.ColorWhite,
		CaretFg:     tcell.ColorBlack,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		MatchBg:     tcell.Color238,
		MatchFg:     tcell.ColorDefault,
		TagBg:       tcell.Color226,
		TagFg:       tcell.ColorBlack,
		TagTypedFg:  tcell.Color244,
		DimFg:       tcell.ColorLightSlateGray,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
	}
}
