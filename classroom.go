package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
	"widget-lessons/internal/listkit"
	"widget-lessons/internal/roster"
)

// buildClassroomLesson creates the gradebook mini-app lesson.
func buildClassroomLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	return classroomPage{lesson: lesson}
}

type classroomPage struct {
	lesson catalog.Lesson
}

func (p classroomPage) CreateElement() core.Element {
	return core.NewStatefulElement(p, nil)
}

func (p classroomPage) Key() any {
	return nil
}

func (p classroomPage) CreateState() core.State {
	return &classroomState{lesson: p.lesson}
}

// classroomState owns the roster store. Child rows receive read-only
// student data plus callbacks; they never hold authoritative copies.
type classroomState struct {
	core.StateBase
	lesson           catalog.Lesson
	store            *roster.Store
	nameController   *platform.TextEditingController
	classController  *platform.TextEditingController
	searchController *platform.TextEditingController
}

func (s *classroomState) InitState() {
	s.store = roster.NewStore()
	s.nameController = platform.NewTextEditingController("")
	s.classController = platform.NewTextEditingController("")
	s.searchController = platform.NewTextEditingController("")
}

func (s *classroomState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	items := []core.Widget{
		sectionTitle("Добави ученик", colors),
		widgets.VSpace(12),
		widgets.TextField{
			Label:        "Име",
			Controller:   s.nameController,
			Placeholder:  "Иван Петров",
			KeyboardType: platform.KeyboardTypeText,
			InputAction:  platform.TextInputActionNext,
			Autocorrect:  false,
			BorderRadius: 8,
		},
		widgets.VSpace(12),
		widgets.TextField{
			Label:        "Клас",
			Controller:   s.classController,
			Placeholder:  "11А",
			KeyboardType: platform.KeyboardTypeText,
			InputAction:  platform.TextInputActionDone,
			Autocorrect:  false,
			BorderRadius: 8,
			OnSubmitted: func(text string) {
				s.handleAdd()
			},
		},
		widgets.VSpace(12),
		widgets.NewButton("Добави", func() {
			s.handleAdd()
		}).WithColor(colors.Primary, colors.OnPrimary),
		widgets.VSpace(24),

		sectionTitle("Ученици", colors),
		widgets.VSpace(12),
		widgets.TextField{
			Label:        "Търсене по име",
			Controller:   s.searchController,
			Placeholder:  "Започни да пишеш...",
			KeyboardType: platform.KeyboardTypeText,
			InputAction:  platform.TextInputActionDone,
			Autocorrect:  false,
			BorderRadius: 8,
			OnChanged: func(text string) {
				s.SetState(func() {
					s.store.SetSearchQuery(text)
				})
			},
		},
		widgets.VSpace(12),
		widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,

			widgets.Checkbox{
				Value: s.store.SortByAverage(),
				OnChanged: func(value bool) {
					s.SetState(func() {
						s.store.SetSortByAverage(value)
					})
				},
			},
			widgets.HSpace(10),
			widgets.TextOf("Сортирай по среден успех", labelStyle(colors)),
		),
		widgets.VSpace(16),
	}

	items = append(items, s.studentList(ctx, colors)...)
	items = append(items,
		widgets.VSpace(24),
		sectionTitle("Статистики", colors),
		widgets.VSpace(12),
		classStatsCard(s.store.ClassStatistics(), colors),
	)

	demo := demoCard(colors, widgets.Column{
		MainAxisAlignment:  widgets.MainAxisAlignmentStart,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		MainAxisSize:       widgets.MainAxisSizeMin,
		Children:           items,
	})

	return lessonPage(ctx, s.lesson, demo)
}

// studentList renders the derived view: filtered, optionally sorted,
// with the two distinct empty states.
func (s *classroomState) studentList(ctx core.BuildContext, colors theme.ColorScheme) []core.Widget {
	view := s.store.DerivedView()
	if len(view) == 0 {
		msg := listkit.EmptyMessage(s.store.Len() > 0,
			"Няма добавени ученици", "Няма намерени ученици")
		return []core.Widget{statusCard(msg, colors)}
	}

	out := make([]core.Widget, 0, len(view)*2+1)
	out = append(out, widgets.TextOf(listkit.CountAnnouncement(len(view)), labelStyle(colors)), widgets.VSpace(8))
	for _, student := range view {
		out = append(out, s.studentRow(ctx, student, colors), widgets.VSpace(8))
	}
	return out
}

// studentRow shows one student with score chips and the grade/delete
// actions.
func (s *classroomState) studentRow(ctx core.BuildContext, student roster.Student, colors theme.ColorScheme) core.Widget {
	id := student.ID

	average := "–"
	if len(student.Scores) > 0 {
		average = formatScore(student.Average())
	}

	chips := make([]core.Widget, 0, len(student.Scores))
	for _, score := range student.Scores {
		chips = append(chips, scoreChip(score, colors))
	}

	body := []core.Widget{
		widgets.RowOf(
			widgets.MainAxisAlignmentSpaceBetween,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMax,

			widgets.Text{
				Content: student.Name,
				Style: graphics.TextStyle{
					Color:      colors.OnSurface,
					FontSize:   15,
					FontWeight: graphics.FontWeightSemibold,
				},
			},
			widgets.TextOf("Клас: "+student.Grade+" | Успех: "+average, labelStyle(colors)),
		),
	}
	if len(chips) > 0 {
		body = append(body,
			widgets.VSpace(8),
			widgets.Wrap{Children: chips, Spacing: 6, RunSpacing: 6},
		)
	}
	body = append(body,
		widgets.VSpace(10),
		widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,

			smallButton("Постави оценка", func() {
				showGradeDialog(ctx, student.Name, func(score float64) bool {
					accepted := false
					s.SetState(func() {
						accepted = s.store.RecordGrade(id, score)
					})
					return accepted
				})
			}, colors),
			widgets.HSpace(8),
			smallButton("Изтрий", func() {
				s.SetState(func() {
					s.store.DeleteStudent(id)
				})
			}, colors),
		),
	)

	return widgets.DecoratedBox{
		Color:        colors.Surface,
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 10,
		Child: widgets.PaddingAll(12, widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children:           body,
		}),
	}
}

func (s *classroomState) handleAdd() {
	var added bool
	s.SetState(func() {
		_, added = s.store.AddStudent(s.nameController.Text(), s.classController.Text())
	})
	if !added {
		platform.Haptics.Impact(platform.HapticError)
		return
	}
	platform.Haptics.Impact(platform.HapticSuccess)
	s.nameController.Clear()
	s.classController.Clear()
}

// scoreChip renders a single recorded grade.
func scoreChip(score float64, colors theme.ColorScheme) core.Widget {
	return widgets.DecoratedBox{
		Color:        colors.SurfaceContainerHigh,
		BorderRadius: 6,
		Child: widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(8, 3),
			Child: widgets.Text{Content: formatScore(score), Style: graphics.TextStyle{
				Color:    colors.OnSurface,
				FontSize: 12,
			}},
		},
	}
}

// classStatsCard shows the class-wide aggregates. The numeric cells fall
// back to "–" until at least one grade exists anywhere.
func classStatsCard(stats roster.Stats, colors theme.ColorScheme) core.Widget {
	average, max, min := "–", "–", "–"
	if stats.Defined {
		average = formatScore(stats.Average)
		max = formatScore(stats.Max)
		min = formatScore(stats.Min)
	}

	cell := func(label, value string) core.Widget {
		return widgets.Expanded{
			Child: widgets.Column{
				MainAxisAlignment:  widgets.MainAxisAlignmentStart,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				MainAxisSize:       widgets.MainAxisSizeMin,
				Children: []core.Widget{
					widgets.Text{Content: value, Style: graphics.TextStyle{
						Color:      colors.Primary,
						FontSize:   18,
						FontWeight: graphics.FontWeightBold,
					}},
					widgets.VSpace(4),
					widgets.Text{Content: label, Style: graphics.TextStyle{
						Color:    colors.OnSurfaceVariant,
						FontSize: 12,
					}},
				},
			},
		}
	}

	return widgets.DecoratedBox{
		Color:        colors.SurfaceContainer,
		BorderRadius: 10,
		Child: widgets.PaddingAll(14, widgets.Row{
			MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
			MainAxisSize:       widgets.MainAxisSizeMax,
			Children: []core.Widget{
				cell("Ученици", itoa(stats.Count)),
				cell("Среден успех", average),
				cell("Най-висок", max),
				cell("Най-нисък", min),
			},
		}),
	}
}
