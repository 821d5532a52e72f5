package tui

import (
	"fmt"
	"prtrack/internal/configutils"
	"prtrack/internal/domain/pullrequest"
	"prtrack/internal/tracker"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"
)

var (
	SelectedColor = tcell.ColorYellow
	NormalColor   = tcell.ColorWhite
	MutedColor    = tcell.ColorGray
	ErrorColor    = tcell.ColorRed

	OpenColor    = tcell.ColorGreen
	ClosedColor  = tcell.ColorRed
	MergedColor  = tcell.ColorMediumPurple
	UnknownColor = tcell.ColorGray

	FreshColor = tcell.ColorGreen
	AgingColor = tcell.ColorYellow
	StaleColor = tcell.ColorRed
)

// Width in cells of the menu trigger column, padding included.
const triggerWidth = 3

func initIconsMap(config *viper.Viper) map[string]string {
	iconsMap := map[string]string{
		"Repository": "REPOSITORY",
		"Created":    "ADDED",
		"Menu":       "⋮",
		"ID":         "#",
		"Title":      "TITLE",
		"User":       "AUTHOR",
		"Labels":     "LABELS",
		"Status":     "STATUS",
		"Age":        "AGE",
		"Draft":      "[draft]",
	}

	if config.GetBool("general.useNerdFontIcons") {
		nerdIconsMaps := map[string]string{
			"Repository": "\uf401",
			"Created":    "\uf073",
			"Menu":       "\uf142",
			"ID":         "\uf407",
			"User":       "\uf007",
			"Labels":     "\uf02c",
			"Status":     "\uf05a",
			"Age":        "\uf017",
			"Draft":      "\uf040",
		}

		for k := range nerdIconsMaps {
			iconsMap[k] = nerdIconsMaps[k]
		}
	}

	for k := range iconsMap {
		p := fmt.Sprintf("icons.%s", k)
		if icon := config.GetString(p); icon != "" {
			iconsMap[k] = icon
		}
	}

	return iconsMap
}

// menuGeometry scales the placement heuristic down to terminal cells.
func menuGeometry(config *viper.Viper) tracker.MenuGeometry {
	width := config.GetInt("menu.width")
	if width <= 0 {
		width = configutils.DefaultMenuWidth
	}
	height := config.GetInt("menu.height")
	if height <= 0 {
		height = configutils.DefaultMenuHeight
	}

	return tracker.MenuGeometry{
		Width:          width,
		HeightEstimate: height,
		AnchorOffset:   triggerWidth,
		EdgeMargin:     1,
		Gap:            0,
	}
}

func statusColor(c pullrequest.StatusCategory) tcell.Color {
	switch c {
	case pullrequest.StatusOpen:
		return OpenColor
	case pullrequest.StatusClosed:
		return ClosedColor
	case pullrequest.StatusMerged:
		return MergedColor
	default:
		return UnknownColor
	}
}

func ageColor(c pullrequest.AgeCategory) tcell.Color {
	switch c {
	case pullrequest.AgeStale:
		return StaleColor
	case pullrequest.AgeAging:
		return AgingColor
	default:
		return FreshColor
	}
}
