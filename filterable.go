package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
	"widget-lessons/internal/listkit"
)

// listedStudent is the fixed data behind the filterable list lesson.
type listedStudent struct {
	name         string
	grade        string
	averageScore float64
}

var listedStudents = []listedStudent{
	{"Иван Петров", "11А", 5.62},
	{"Мария Иванова", "11Б", 5.91},
	{"Георги Димитров", "10В", 5.40},
	{"Елена Стоянова", "12А", 5.98},
	{"Петър Николов", "10А", 4.92},
	{"Ана Великова", "11А", 5.76},
	{"Димитър Маринов", "12Б", 5.31},
	{"Виктория Тодорова", "9В", 5.84},
}

// buildFilterableListLesson shows the generic filter utility over a fixed
// roster: the search field lifts its text up, the list renders only the
// matching students.
func buildFilterableListLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	return filterableListPage{lesson: lesson}
}

type filterableListPage struct {
	lesson catalog.Lesson
}

func (p filterableListPage) CreateElement() core.Element {
	return core.NewStatefulElement(p, nil)
}

func (p filterableListPage) Key() any {
	return nil
}

func (p filterableListPage) CreateState() core.State {
	return &filterableListState{lesson: p.lesson}
}

type filterableListState struct {
	core.StateBase
	lesson           catalog.Lesson
	searchController *platform.TextEditingController
	query            *core.ManagedState[string]
}

func (s *filterableListState) InitState() {
	s.searchController = platform.NewTextEditingController("")
	s.query = core.NewManagedState(&s.StateBase, "")
}

func (s *filterableListState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	filtered := listkit.Filter(listedStudents, s.query.Get(),
		func(student listedStudent, query string) bool {
			return listkit.MatchFold(student.name, query)
		})

	items := []core.Widget{
		widgets.TextField{
			Label:        "Търси",
			Controller:   s.searchController,
			Placeholder:  "Търси...",
			KeyboardType: platform.KeyboardTypeText,
			InputAction:  platform.TextInputActionDone,
			Autocorrect:  false,
			BorderRadius: 8,
			OnChanged: func(text string) {
				s.query.Set(text)
			},
		},
		widgets.VSpace(12),
	}

	if len(filtered) == 0 {
		msg := listkit.EmptyMessage(len(listedStudents) > 0,
			"Няма добавени ученици", "Няма намерени ученици")
		items = append(items, statusCard(msg, colors))
	} else {
		items = append(items,
			widgets.TextOf(listkit.CountAnnouncement(len(filtered)), labelStyle(colors)),
			widgets.VSpace(8),
		)
		for i, student := range filtered {
			items = append(items, studentCard(student.name, student.grade, student.averageScore, colors))
			if i < len(filtered)-1 {
				items = append(items, widgets.VSpace(8))
			}
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
