package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

type accordionEntry struct {
	title string
	body  string
}

var accordionEntries = []accordionEntry{
	{
		title: "Какво е компонент?",
		body: "Компонентът е преизползваем блок от интерфейса: получава данни отвън " +
			"и описва какво да се нарисува. Сложните екрани се сглобяват от малки компоненти.",
	},
	{
		title: "Какво е състояние?",
		body: "Състоянието са данните, които се променят с времето: въведен текст, избран " +
			"елемент, отворена секция. При всяка промяна изгледът се изгражда наново от данните.",
	},
	{
		title: "Какво е lifting state up?",
		body: "Когато две части от интерфейса зависят от едни и същи данни, състоянието се " +
			"мести в общия им родител. Децата получават стойности и callbacks, не свои копия.",
	},
	{
		title: "Какво е callback?",
		body: "Функция, подадена от родителя на детето, с която детето съобщава за действие " +
			"на потребителя. Детето никога не променя чужди данни директно.",
	},
}

// buildAccordionLesson shows a single-open accordion. The open index
// lives in the parent; each section gets isOpen plus an onToggle
// callback.
func buildAccordionLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	return accordionLessonPage{lesson: lesson}
}

type accordionLessonPage struct {
	lesson catalog.Lesson
}

func (p accordionLessonPage) CreateElement() core.Element {
	return core.NewStatefulElement(p, nil)
}

func (p accordionLessonPage) Key() any {
	return nil
}

func (p accordionLessonPage) CreateState() core.State {
	return &accordionLessonState{lesson: p.lesson}
}

type accordionLessonState struct {
	core.StateBase
	lesson    catalog.Lesson
	openIndex *core.ManagedState[int]
}

func (s *accordionLessonState) InitState() {
	// -1 means everything is collapsed
	s.openIndex = core.NewManagedState(&s.StateBase, -1)
}

func (s *accordionLessonState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	items := make([]core.Widget, 0, len(accordionEntries)*2)
	for i, entry := range accordionEntries {
		index := i
		isOpen := s.openIndex.Get() == index
		items = append(items, accordionSection(entry, isOpen, func() {
			if isOpen {
				s.openIndex.Set(-1)
			} else {
				s.openIndex.Set(index)
			}
		}, colors))
		if i < len(accordionEntries)-1 {
			items = append(items, widgets.VSpace(8))
		}
	}

	demo := demoCard(colors, widgets.Column{
		MainAxisAlignment:  widgets.MainAxisAlignmentStart,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		MainAxisSize:       widgets.MainAxisSizeMin,
		Children:           items,
	})

	return lessonPage(ctx, s.lesson, demo)
}

// accordionSection renders one collapsible section.
func accordionSection(entry accordionEntry, isOpen bool, onToggle func(), colors theme.ColorScheme) core.Widget {
	chevron := "›"
	if isOpen {
		chevron = "⌄"
	}

	children := []core.Widget{
		widgets.Tappable(
			entry.title,
			onToggle,
			widgets.PaddingAll(12, widgets.Row{
				MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				MainAxisSize:       widgets.MainAxisSizeMax,
				Children: []core.Widget{
					widgets.Text{
						Content: entry.title,
						Style: graphics.TextStyle{
							Color:      colors.OnSurface,
							FontSize:   14,
							FontWeight: graphics.FontWeightSemibold,
						},
					},
					widgets.Text{Content: chevron, Style: graphics.TextStyle{
						Color:    colors.OnSurfaceVariant,
						FontSize: 16,
					}},
				},
			}),
		),
	}
	if isOpen {
		children = append(children, widgets.Padding{
			Padding: layout.EdgeInsetsOnly(12, 0, 12, 12),
			Child: widgets.Text{
				Content: entry.body,
				Wrap:    true,
				Style: graphics.TextStyle{
					Color:    colors.OnSurfaceVariant,
					FontSize: 13,
				},
			},
		})
	}

	return widgets.DecoratedBox{
		Color:        colors.Surface,
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 10,
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children:           children,
		},
	}
}
