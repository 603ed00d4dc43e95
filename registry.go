package main

import (
	"github.com/go-drift/drift/pkg/core"

	"widget-lessons/internal/catalog"
)

// lessonBuilder builds the page hosting one lesson's live demo. The
// catalog record carries everything the chrome renders (title, badge,
// description, hint, code sample).
type lessonBuilder func(ctx core.BuildContext, lesson catalog.Lesson) core.Widget

// lessonBuilders maps catalog ids to their demo pages. lessonlint keeps
// the catalog side honest; TestEveryLessonHasBuilder keeps this side
// honest.
var lessonBuilders = map[int]lessonBuilder{
	1: buildStudentCardLesson,
	2: buildStatusBadgeLesson,
	3: buildAccordionLesson,
	4: buildFilterableListLesson,
	5: buildTabsLesson,
	6: buildClassroomLesson,
	7: buildQuizBuilderLesson,
}
