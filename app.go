// Package main is the widget-lessons gallery: a set of small interactive
// UI lessons, each one a page with a description, difficulty tag and a
// live demo. Lesson metadata comes from internal/catalog; the two big
// demos keep their state in internal/roster and internal/quiz.
package main

import (
	"log"
	"net/url"
	"strings"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

// App returns the root widget of the lesson gallery.
func App() core.Widget {
	return LessonApp{}
}

// LessonApp manages theme state and sets up navigation over the lesson
// catalog.
type LessonApp struct{}

func (a LessonApp) CreateElement() core.Element {
	return core.NewStatefulElement(a, nil)
}

func (a LessonApp) Key() any {
	return nil
}

func (a LessonApp) CreateState() core.State {
	return &lessonAppState{}
}

type lessonAppState struct {
	core.StateBase
	isDark             bool
	deepLinkController *navigation.DeepLinkController
	// Memoized theme data to avoid churn in UpdateShouldNotify
	cachedThemeData *theme.AppThemeData
}

func (s *lessonAppState) InitState() {
	s.isDark = true
	s.updateBackgroundColor()
	s.applySystemUI()
	s.deepLinkController = navigation.NewDeepLinkController(s.deepLinkRoute, func(err error) {
		log.Printf("deep link error: %v", err)
	})
}

func (s *lessonAppState) Build(ctx core.BuildContext) core.Widget {
	appThemeData := s.getAppThemeData()

	navigator := navigation.Navigator{
		InitialRoute: "/",
		OnGenerateRoute: func(settings navigation.RouteSettings) navigation.Route {
			if settings.Name == "/" {
				return navigation.NewMaterialPageRoute(
					func(ctx core.BuildContext) core.Widget {
						return buildHomePage(ctx, s.isDark, s.toggleTheme)
					},
					settings,
				)
			}

			lesson, err := catalog.ByPath(settings.Name)
			if err != nil {
				return nil
			}
			builder, ok := lessonBuilders[lesson.ID]
			if !ok {
				return nil
			}
			return navigation.NewMaterialPageRoute(
				func(ctx core.BuildContext) core.Widget {
					return builder(ctx, lesson)
				},
				settings,
			)
		},
	}

	return theme.AppTheme{
		Data:        appThemeData,
		ChildWidget: navigator,
	}
}

// getAppThemeData returns memoized theme data, recreating only when the
// brightness changes.
func (s *lessonAppState) getAppThemeData() *theme.AppThemeData {
	brightness := theme.BrightnessLight
	if s.isDark {
		brightness = theme.BrightnessDark
	}
	if s.cachedThemeData == nil || s.cachedThemeData.Brightness() != brightness {
		s.cachedThemeData = theme.NewAppThemeData(theme.TargetPlatformMaterial, brightness)
	}
	return s.cachedThemeData
}

func (s *lessonAppState) updateBackgroundColor() {
	appThemeData := s.getAppThemeData()
	engine.SetBackgroundColor(graphics.Color(appThemeData.Material.ColorScheme.Background))
}

func (s *lessonAppState) applySystemUI() {
	appThemeData := s.getAppThemeData()
	statusStyle := platform.StatusBarStyleDark
	if appThemeData.Brightness() == theme.BrightnessDark {
		statusStyle = platform.StatusBarStyleLight
	}
	backgroundColor := appThemeData.Material.ColorScheme.Surface
	_ = platform.SetSystemUI(platform.SystemUIStyle{
		StatusBarHidden: false,
		StatusBarStyle:  statusStyle,
		TitleBarHidden:  false,
		BackgroundColor: &backgroundColor,
		Transparent:     true,
	})
}

func (s *lessonAppState) deepLinkRoute(link platform.DeepLink) (navigation.DeepLinkRoute, bool) {
	parsed, err := url.Parse(link.URL)
	if err != nil {
		return navigation.DeepLinkRoute{}, false
	}
	candidate := strings.Trim(parsed.Path, "/")
	if candidate == "" {
		candidate = parsed.Host
	}
	if candidate == "" {
		return navigation.DeepLinkRoute{}, false
	}

	if candidate == "home" {
		log.Printf("deep link received: %s (source=%s)", link.URL, link.Source)
		return navigation.DeepLinkRoute{Name: "/"}, true
	}

	for _, lesson := range catalog.Lessons() {
		if candidate == strings.TrimPrefix(lesson.Path, "/") {
			log.Printf("deep link received: %s (source=%s)", link.URL, link.Source)
			return navigation.DeepLinkRoute{Name: lesson.Path}, true
		}
	}

	log.Printf("deep link ignored: %s (source=%s)", link.URL, link.Source)
	return navigation.DeepLinkRoute{}, false
}

func (s *lessonAppState) toggleTheme() {
	s.SetState(func() {
		s.isDark = !s.isDark
	})
	s.updateBackgroundColor()
	s.applySystemUI()
}

// pageScaffold creates a consistent page layout with a back button and a
// title header.
func pageScaffold(ctx core.BuildContext, title string, header, content core.Widget) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	// Header needs top safe area padding so it sits below the status bar
	headerPadding := widgets.SafeAreaPadding(ctx).OnlyTop().Add(16)

	headerChildren := []core.Widget{
		widgets.Button{
			Label: "← Обратно към всички уроци",
			OnTap: func() {
				nav := navigation.NavigatorOf(ctx)
				if nav != nil {
					nav.Pop(nil)
				}
			},
			Color:     colors.SurfaceVariant,
			TextColor: colors.OnSurfaceVariant,
			Padding:   layout.EdgeInsetsSymmetric(16, 10),
			FontSize:  14,
			Haptic:    true,
		},
		widgets.HSpace(16),
		widgets.Text{Content: title, Style: textTheme.HeadlineMedium},
	}
	if header != nil {
		headerChildren = append(headerChildren, widgets.HSpace(12), header)
	}

	return widgets.Expanded{
		ChildWidget: widgets.Container{
			Color: colors.Background,
			ChildWidget: widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStart,
				widgets.MainAxisSizeMax,
				widgets.Container{
					Color: colors.Surface,
					ChildWidget: widgets.Padding{
						Padding: headerPadding,
						ChildWidget: widgets.RowOf(
							widgets.MainAxisAlignmentStart,
							widgets.CrossAxisAlignmentCenter,
							widgets.MainAxisSizeMax,
							headerChildren...,
						),
					},
				},
				widgets.Expanded{ChildWidget: content},
			),
		},
	}
}
