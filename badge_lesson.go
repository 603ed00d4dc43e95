package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// presenceStatus drives the status badge's color and default text.
type presenceStatus int

const (
	statusOnline presenceStatus = iota
	statusAway
	statusOffline
)

func (p presenceStatus) text() string {
	switch p {
	case statusOnline:
		return "На линия"
	case statusAway:
		return "Отсъства"
	}
	return "Офлайн"
}

func (p presenceStatus) dotColor() graphics.Color {
	switch p {
	case statusOnline:
		return 0xFF4CAF50 // green
	case statusAway:
		return 0xFFFFB300 // yellow
	}
	return 0xFF9E9E9E // grey
}

// buildStatusBadgeLesson shows the badge with and without a user label.
func buildStatusBadgeLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	demo := demoCard(colors, widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStart,
		widgets.MainAxisSizeMin,

		widgets.TextOf("Без етикет", labelStyle(colors)),
		widgets.VSpace(10),
		widgets.Wrap{
			Spacing:    8,
			RunSpacing: 8,
			Children: []core.Widget{
				statusBadge(statusOnline, "", colors),
				statusBadge(statusAway, "", colors),
				statusBadge(statusOffline, "", colors),
			},
		},
		widgets.VSpace(24),
		widgets.TextOf("С етикет (бонус)", labelStyle(colors)),
		widgets.VSpace(10),
		widgets.Wrap{
			Spacing:    8,
			RunSpacing: 8,
			Children: []core.Widget{
				statusBadge(statusOnline, "Иван", colors),
				statusBadge(statusAway, "Мария", colors),
				statusBadge(statusOffline, "Георги", colors),
			},
		},
	))

	return lessonPage(ctx, lesson, demo)
}

// statusBadge renders a colored dot plus the status text, optionally
// prefixed with a user label.
func statusBadge(status presenceStatus, label string, colors theme.ColorScheme) core.Widget {
	text := status.text()
	if label != "" {
		text = label + " - " + text
	}

	return widgets.DecoratedBox{
		Color:        colors.SurfaceContainer,
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 14,
		Child: widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(12, 6),
			Child: widgets.Row{
				MainAxisSize:       widgets.MainAxisSizeMin,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				Children: []core.Widget{
					widgets.Container{
						Width:        10,
						Height:       10,
						BorderRadius: 5,
						Color:        status.dotColor(),
					},
					widgets.HSpace(8),
					widgets.Text{Content: text, Style: graphics.TextStyle{
						Color:    colors.OnSurface,
						FontSize: 13,
					}},
				},
			},
		},
	}
}
