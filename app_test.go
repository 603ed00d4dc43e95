package main

import (
	"testing"

	"github.com/go-drift/drift/pkg/core"
	driftest "github.com/go-drift/drift/pkg/testing"

	"widget-lessons/internal/catalog"
)

func TestEveryLessonHasBuilder(t *testing.T) {
	for _, lesson := range catalog.Lessons() {
		if lessonBuilders[lesson.ID] == nil {
			t.Errorf("lesson %d (%s) has no page builder", lesson.ID, lesson.Title)
		}
	}
	if len(lessonBuilders) != len(catalog.Lessons()) {
		t.Errorf("builder table has %d entries, catalog has %d", len(lessonBuilders), len(catalog.Lessons()))
	}
}

func TestHomePageListsAllLessons(t *testing.T) {
	tester := driftest.NewWidgetTesterWithT(t)

	home := core.Stateful(
		func() struct{} { return struct{}{} },
		func(_ struct{}, ctx core.BuildContext, _ func(func(struct{}) struct{})) core.Widget {
			return buildHomePage(ctx, true, func() {})
		},
	)
	if err := tester.PumpWidget(home); err != nil {
		t.Fatal(err)
	}

	for _, lesson := range catalog.Lessons() {
		if !tester.Find(driftest.ByText(lesson.Title)).Exists() {
			t.Errorf("lesson %q not on the home page", lesson.Title)
		}
	}
	if !tester.Find(driftest.ByText("Уроци")).Exists() {
		t.Errorf("home page header missing")
	}
}

func TestDifficultyBadgeLabels(t *testing.T) {
	tester := driftest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(difficultyBadge(catalog.VeryHard)); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(driftest.ByText("Много сложна")).Exists() {
		t.Errorf("badge does not render the difficulty label")
	}
}
