package main

import (
	"strings"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// buildStudentCardLesson shows a few student cards with fixed data.
func buildStudentCardLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	demo := demoCard(colors, widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStretch,
		widgets.MainAxisSizeMin,

		studentCard("Иван Петров", "11Б", 5.67, colors),
		widgets.VSpace(10),
		studentCard("Мария Иванова", "11А", 5.92, colors),
		widgets.VSpace(10),
		studentCard("Георги Димитров", "10В", 5.45, colors),
		widgets.VSpace(10),
		studentCard("Елена Стоянова", "12А", 6.0, colors),
	))

	return lessonPage(ctx, lesson, demo)
}

// studentCard renders a student's name, class and average with the
// name's initials in a circle.
func studentCard(name, grade string, averageScore float64, colors theme.ColorScheme) core.Widget {
	return widgets.DecoratedBox{
		Color:        colors.Surface,
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 10,
		Child: widgets.PaddingAll(12, widgets.Row{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMax,
			Children: []core.Widget{
				widgets.Container{
					Width:        44,
					Height:       44,
					BorderRadius: 22,
					Color:        colors.SurfaceContainerHigh,
					Alignment:    layout.AlignmentCenter,
					Child: widgets.Text{
						Content: initials(name),
						Style: graphics.TextStyle{
							Color:      colors.Primary,
							FontSize:   15,
							FontWeight: graphics.FontWeightBold,
						},
					},
				},
				widgets.HSpace(12),
				widgets.Column{
					MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
					CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
					MainAxisSize:       widgets.MainAxisSizeMin,
					Children: []core.Widget{
						widgets.Text{
							Content: name,
							Style: graphics.TextStyle{
								Color:      colors.OnSurface,
								FontSize:   15,
								FontWeight: graphics.FontWeightSemibold,
							},
						},
						widgets.VSpace(4),
						widgets.TextOf(
							"Клас: "+grade+" | Успех: "+formatScore(averageScore),
							labelStyle(colors),
						),
					},
				},
			},
		}),
	}
}

// initials takes the first rune of every word in the name.
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
