package main

import (
	"strconv"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// sectionTitle creates a styled section header for lesson pages.
func sectionTitle(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Text{
		Content: text,
		Style: graphics.TextStyle{
			Color:      colors.Primary,
			FontSize:   20,
			FontWeight: graphics.FontWeightBold,
		},
	}
}

// labelStyle returns a text style for descriptive labels.
func labelStyle(colors theme.ColorScheme) graphics.TextStyle {
	return graphics.TextStyle{
		Color:    colors.OnSurfaceVariant,
		FontSize: 14,
	}
}

// itoa is shorthand for strconv.Itoa.
func itoa(value int) string {
	return strconv.Itoa(value)
}

// formatScore renders a grade with two decimals, the way report cards
// print it.
func formatScore(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// smallButton creates a compact tappable button for secondary actions.
func smallButton(label string, onTap func(), colors theme.ColorScheme) core.Widget {
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.Container{
			Color:        colors.SurfaceContainerHigh,
			BorderRadius: 6,
			Padding:      layout.EdgeInsetsSymmetric(12, 6),
			Child: widgets.Text{
				Content: label,
				Style: graphics.TextStyle{
					Color:    colors.OnSurface,
					FontSize: 13,
				},
			},
		},
	}
}

// statusCard creates a styled status message card used across lesson
// pages for empty states and announcements.
func statusCard(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Container{
		Color:        colors.SurfaceVariant,
		BorderRadius: 8,
		Child: widgets.PaddingAll(12,
			widgets.Text{Content: text, Style: graphics.TextStyle{
				Color:    colors.OnSurfaceVariant,
				FontSize: 14,
			}},
		),
	}
}

// themeToggleButton creates the theme toggle pill button.
func themeToggleButton(ctx core.BuildContext, isDark bool, onToggle func()) core.Widget {
	colors := theme.ColorsOf(ctx)

	label := "Светла"
	icon := "☀" // Sun
	if isDark {
		label = "Тъмна"
		icon = "☾" // Moon
	}

	return widgets.GestureDetector{
		OnTap: onToggle,
		Child: widgets.Container{
			Color:        colors.SurfaceContainer,
			BorderRadius: 20,
			BorderWidth:  1,
			BorderColor:  colors.OutlineVariant,
			Padding:      layout.EdgeInsetsSymmetric(14, 8),
			Child: widgets.Row{
				MainAxisSize:       widgets.MainAxisSizeMin,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				Children: []core.Widget{
					widgets.Text{
						Content: icon,
						Style: graphics.TextStyle{
							Color:    colors.OnSurfaceVariant,
							FontSize: 12,
						},
					},
					widgets.HSpace(6),
					widgets.Text{
						Content: label,
						Style: graphics.TextStyle{
							Color:    colors.OnSurfaceVariant,
							FontSize: 12,
						},
					},
				},
			},
		},
	}
}

// difficultyColor maps a lesson difficulty to its badge color.
func difficultyColor(d catalog.Difficulty) graphics.Color {
	switch d {
	case catalog.Easy:
		return 0xFF4CAF50 // green
	case catalog.Medium:
		return 0xFFFFB300 // amber
	case catalog.Hard:
		return 0xFFFF7043 // orange
	case catalog.VeryHard:
		return 0xFFF44336 // red
	}
	return 0xFF9E9E9E
}

// difficultyBadge renders a lesson's difficulty as a small colored pill.
func difficultyBadge(d catalog.Difficulty) core.Widget {
	return widgets.DecoratedBox{
		Color:        difficultyColor(d),
		BorderRadius: 10,
		Child: widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(10, 4),
			Child: widgets.Text{Content: d.Label(), Style: graphics.TextStyle{
				Color:      0xFFFFFFFF,
				FontSize:   12,
				FontWeight: graphics.FontWeightSemibold,
			}},
		},
	}
}

// lengthHint shows a "current/max" counter once a bounded input has hit
// its cap. Below the cap it renders nothing.
func lengthHint(current, max int, colors theme.ColorScheme) core.Widget {
	if current < max {
		return widgets.SizedBox{}
	}
	return widgets.Text{
		Content: itoa(current) + "/" + itoa(max),
		Style: graphics.TextStyle{
			Color:      0xFFFF7043,
			FontSize:   12,
			FontWeight: graphics.FontWeightSemibold,
		},
	}
}
