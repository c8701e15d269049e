package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"gamerflow_service/internal/playback/domain"

	"github.com/cucumber/godog"
)

func TestChapterFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeChapterScenario,
		Options: &godog.Options{
			Paths:    []string{"./features"},
			Format:   "pretty",
			Output:   os.Stdout,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fail()
	}
}

type chapterWorld struct {
	summary  string
	total    int
	progress float64
	chapters []domain.Chapter
}

// InitializeChapterScenario 註冊 Gherkin step
func InitializeChapterScenario(s *godog.ScenarioContext) {
	w := &chapterWorld{}

	s.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*w = chapterWorld{}
		return ctx, nil
	})

	s.Step(`^a summary "([^"]*)"$`, func(text string) error {
		w.summary = text
		return nil
	})
	s.Step(`^a total duration of "([^"]*)"$`, func(d string) error {
		w.total = DurationToSeconds(d)
		return nil
	})
	s.Step(`^the chapters are extracted$`, func() error {
		w.chapters = ExtractChapters(w.summary)
		return nil
	})
	s.Step(`^there are (\d+) chapters$`, func(n int) error {
		if len(w.chapters) != n {
			return fmt.Errorf("expected %d chapters, got %d", n, len(w.chapters))
		}
		return nil
	})
	s.Step(`^chapter (\d+) is "([^"]*)" "([^"]*)" at (\d+) seconds$`, func(i int, ts, label string, offset int) error {
		if i < 1 || i > len(w.chapters) {
			return fmt.Errorf("no chapter %d", i)
		}
		want := domain.Chapter{Timestamp: ts, Label: label, Offset: offset}
		if got := w.chapters[i-1]; got != want {
			return fmt.Errorf("expected %+v, got %+v", want, got)
		}
		return nil
	})
	s.Step(`^the progress is set to (\d+) percent$`, func(p int) error {
		w.progress = float64(p)
		w.chapters = ExtractChapters(w.summary)
		return nil
	})
	s.Step(`^the progress is (\d+) percent$`, func(p int) error {
		if w.progress != float64(p) {
			return fmt.Errorf("expected progress %d, got %v", p, w.progress)
		}
		return nil
	})
	s.Step(`^the active chapter is "([^"]*)"$`, func(label string) error {
		c, ok := ActiveChapter(w.chapters, w.progress, w.total)
		if !ok {
			return fmt.Errorf("expected active chapter %q, got none", label)
		}
		if c.Label != label {
			return fmt.Errorf("expected active chapter %q, got %q", label, c.Label)
		}
		return nil
	})
	s.Step(`^there is no active chapter$`, func() error {
		if c, ok := ActiveChapter(w.chapters, w.progress, w.total); ok {
			return fmt.Errorf("expected none, got %+v", c)
		}
		return nil
	})
	s.Step(`^the note "([^"]*)" is appended at (\d+) percent$`, func(note string, p int) error {
		w.summary = AppendTimestampedNote(w.summary, float64(p), w.total, note)
		return nil
	})
	s.Step(`^the last line of the summary is "([^"]*)"$`, func(line string) error {
		lines := strings.Split(w.summary, "\n")
		if got := lines[len(lines)-1]; got != line {
			return fmt.Errorf("expected %q, got %q", line, got)
		}
		return nil
	})
	s.Step(`^I jump to "([^"]*)"$`, func(ts string) error {
		w.progress = JumpTo(ts, w.total)
		return nil
	})
}
