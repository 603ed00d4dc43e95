package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// buildTabsLesson shows a three-tab panel; only the active tab's content
// is built.
func buildTabsLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	return tabsLessonPage{lesson: lesson}
}

type tabsLessonPage struct {
	lesson catalog.Lesson
}

func (p tabsLessonPage) CreateElement() core.Element {
	return core.NewStatefulElement(p, nil)
}

func (p tabsLessonPage) Key() any {
	return nil
}

func (p tabsLessonPage) CreateState() core.State {
	return &tabsLessonState{lesson: p.lesson}
}

type tabsLessonState struct {
	core.StateBase
	lesson      catalog.Lesson
	activeIndex *core.ManagedState[int]
}

func (s *tabsLessonState) InitState() {
	s.activeIndex = core.NewManagedState(&s.StateBase, 0)
}

func (s *tabsLessonState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	demo := demoCard(colors, widgets.ColumnOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentStretch,
		widgets.MainAxisSizeMin,

		widgets.TabBar{
			Items: []widgets.TabItem{
				{Label: "Профил"},
				{Label: "Оценки"},
				{Label: "Настройки"},
			},
			CurrentIndex: s.activeIndex.Get(),
			OnTap: func(index int) {
				s.activeIndex.Set(index)
			},
		},
		widgets.VSpace(16),
		s.tabContent(colors),
	))

	return lessonPage(ctx, s.lesson, demo)
}

func (s *tabsLessonState) tabContent(colors theme.ColorScheme) core.Widget {
	switch s.activeIndex.Get() {
	case 0:
		return studentCard("Иван Петров", "11Б", 5.67, colors)
	case 1:
		return widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMin,

			widgets.TextOf("Математика: 5.50", labelStyle(colors)),
			widgets.VSpace(6),
			widgets.TextOf("Физика: 6.00", labelStyle(colors)),
			widgets.VSpace(6),
			widgets.TextOf("Биология: 5.50", labelStyle(colors)),
			widgets.VSpace(6),
			widgets.TextOf("История: 5.75", labelStyle(colors)),
		)
	default:
		return widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,

			widgets.NewButton("Промени парола", func() {}).
				WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant),
		)
	}
}
