package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// lessonPage wraps a lesson's live demo in the shared chrome: back
// navigation, title, difficulty badge, description, optional hint callout
// and optional code sample.
func lessonPage(ctx core.BuildContext, lesson catalog.Lesson, demo core.Widget) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	items := []core.Widget{
		widgets.Text{
			Content: lesson.Description,
			Wrap:    true,
			Style: graphics.TextStyle{
				Color:    colors.OnSurfaceVariant,
				FontSize: 15,
			},
		},
		widgets.VSpace(20),
	}
	if lesson.Hint != "" {
		items = append(items, hintCallout(lesson.Hint, colors), widgets.VSpace(20))
	}
	if lesson.CodeExample != "" {
		items = append(items, codePanel(lesson.CodeExample, colors), widgets.VSpace(20))
	}
	items = append(items,
		sectionTitle("Демонстрация", colors),
		widgets.VSpace(12),
		demo,
	)

	content := widgets.ScrollView{
		ScrollDirection: widgets.AxisVertical,
		Physics:         widgets.BouncingScrollPhysics{},
		Padding:         layout.EdgeInsetsAll(20),
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children:           items,
		},
	}
	return pageScaffold(ctx, lesson.Title, difficultyBadge(lesson.Difficulty), content)
}

// hintCallout renders the lesson hint with a left accent bar.
func hintCallout(hint string, colors theme.ColorScheme) core.Widget {
	return widgets.DecoratedBox{
		Color:        colors.SurfaceContainer,
		BorderRadius: 8,
		Child: widgets.Row{
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			Children: []core.Widget{
				widgets.Container{Width: 4, Color: colors.Primary},
				widgets.Expanded{
					Child: widgets.PaddingAll(14, widgets.Column{
						CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
						MainAxisSize:       widgets.MainAxisSizeMin,
						Children: []core.Widget{
							widgets.Text{
								Content: "\U0001F4A1 Подсказка",
								Style: graphics.TextStyle{
									Color:      colors.Primary,
									FontSize:   13,
									FontWeight: graphics.FontWeightSemibold,
								},
							},
							widgets.VSpace(6),
							widgets.Text{
								Content: hint,
								Wrap:    true,
								Style: graphics.TextStyle{
									Color:    colors.OnSurfaceVariant,
									FontSize: 13,
								},
							},
						},
					}),
				},
			},
		},
	}
}

// codePanel renders a lesson's code sample in a monospace block.
func codePanel(code string, colors theme.ColorScheme) core.Widget {
	return widgets.DecoratedBox{
		Color:        colors.SurfaceContainerHigh,
		BorderRadius: 8,
		BorderWidth:  1,
		BorderColor:  colors.OutlineVariant,
		Child: widgets.PaddingAll(14, widgets.Text{
			Content: code,
			Wrap:    true,
			Style: graphics.TextStyle{
				Color:              colors.OnSurface,
				FontFamily:         "monospace",
				FontSize:           12,
				PreserveWhitespace: true,
			},
		}),
	}
}

// demoCard frames a live demo area on a lesson page.
func demoCard(colors theme.ColorScheme, child core.Widget) core.Widget {
	return widgets.DecoratedBox{
		Color:        colors.Surface,
		BorderRadius: 12,
		BorderWidth:  1,
		BorderColor:  colors.OutlineVariant,
		Child:        widgets.PaddingAll(16, child),
	}
}
