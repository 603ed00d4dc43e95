package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// buildHomePage renders the lesson index: a numbered card per catalog
// entry plus the theme toggle.
func buildHomePage(ctx core.BuildContext, isDark bool, onToggleTheme func()) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	items := []core.Widget{
		widgets.RowOf(
			widgets.MainAxisAlignmentSpaceBetween,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMax,
			widgets.Text{Content: "Уроци", Style: textTheme.HeadlineMedium},
			themeToggleButton(ctx, isDark, onToggleTheme),
		),
		widgets.VSpace(6),
		widgets.Text{
			Content: "Интерактивни упражнения с компоненти, от прости карти до цели мини приложения.",
			Wrap:    true,
			Style:   labelStyle(colors),
		},
		widgets.VSpace(24),
	}
	for _, lesson := range catalog.Lessons() {
		items = append(items, lessonCard(ctx, lesson, colors), widgets.VSpace(12))
	}

	return widgets.Container{
		Color: colors.Background,
		Child: widgets.ScrollView{
			ScrollDirection: widgets.AxisVertical,
			Physics:         widgets.BouncingScrollPhysics{},
			Padding:         widgets.SafeAreaPadding(ctx).Add(20),
			Child: widgets.Column{
				MainAxisAlignment:  widgets.MainAxisAlignmentStart,
				CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
				MainAxisSize:       widgets.MainAxisSizeMin,
				Children:           items,
			},
		},
	}
}

// lessonCard is one tappable row on the index: lesson number in a circle,
// title, difficulty badge and a chevron.
func lessonCard(ctx core.BuildContext, lesson catalog.Lesson, colors theme.ColorScheme) core.Widget {
	number := itoa(lesson.ID)
	if lesson.ID < 10 {
		number = "0" + number
	}

	return widgets.Tappable(
		lesson.Title,
		func() {
			nav := navigation.NavigatorOf(ctx)
			if nav != nil {
				nav.PushNamed(lesson.Path, nil)
			}
		},
		widgets.DecoratedBox{
			Color:        colors.Surface,
			BorderColor:  colors.OutlineVariant,
			BorderWidth:  1,
			BorderRadius: 12,
			Child: widgets.Padding{
				Padding: layout.EdgeInsetsOnly(16, 14, 16, 14),
				Child: widgets.Row{
					MainAxisAlignment:  widgets.MainAxisAlignmentStart,
					CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
					MainAxisSize:       widgets.MainAxisSizeMax,
					Children: []core.Widget{
						widgets.Container{
							Width:        40,
							Height:       40,
							BorderRadius: 20,
							Color:        colors.SurfaceContainerHigh,
							Alignment:    layout.AlignmentCenter,
							Child: widgets.Text{
								Content: number,
								Style: graphics.TextStyle{
									Color:      colors.Primary,
									FontSize:   14,
									FontWeight: graphics.FontWeightBold,
								},
							},
						},
						widgets.HSpace(14),
						widgets.Expanded{
							Child: widgets.Column{
								MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
								CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
								MainAxisSize:       widgets.MainAxisSizeMin,
								Children: []core.Widget{
									widgets.Text{
										Content: lesson.Title,
										Style: graphics.TextStyle{
											Color:      colors.OnSurface,
											FontSize:   15,
											FontWeight: graphics.FontWeightSemibold,
										},
									},
									widgets.VSpace(6),
									difficultyBadge(lesson.Difficulty),
								},
							},
						},
						widgets.Text{
							Content: "›", // Chevron
							Style: graphics.TextStyle{
								Color:    colors.OnSurfaceVariant,
								FontSize: 18,
							},
						},
					},
				},
			},
		},
	)
}
