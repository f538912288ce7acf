// Package tui renders an interactive quiz session in the terminal.
package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/performance"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/quiz"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseSummary
)

var optionLabels = []string{"A", "B", "C", "D"}

// QuizModel drives one quiz session through answering, per-question
// feedback, and the final per-topic summary.
type QuizModel struct {
	session *quiz.Session

	phase    phase
	selected int
	feedback quiz.GradedAnswer
	aborted  bool

	width  int
	height int
}

// NewQuizModel wraps a session for interactive play.
func NewQuizModel(session *quiz.Session) QuizModel {
	return QuizModel{session: session}
}

// Session exposes the underlying session after the program exits.
func (m QuizModel) Session() *quiz.Session {
	return m.session
}

// Aborted reports whether the user quit before finishing.
func (m QuizModel) Aborted() bool {
	return m.aborted
}

func (m QuizModel) Init() tea.Cmd {
	return nil
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.phase != phaseSummary {
				m.aborted = true
			}
			return m, tea.Quit
		}

		switch m.phase {
		case phaseAnswering:
			return m.updateAnswering(msg)
		case phaseFeedback:
			return m.updateFeedback(msg)
		case phaseSummary:
			if msg.String() == "enter" {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m QuizModel) updateAnswering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(optionLabels)-1 {
			m.selected++
		}
	case "a", "b", "c", "d":
		m.selected = int(msg.String()[0] - 'a')
		return m.submit()
	case "enter":
		return m.submit()
	}
	return m, nil
}

func (m QuizModel) submit() (tea.Model, tea.Cmd) {
	graded, err := m.session.Answer(m.selected)
	if err != nil {
		return m, tea.Quit
	}
	m.feedback = graded
	m.phase = phaseFeedback
	return m, nil
}

func (m QuizModel) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" && msg.String() != "space" {
		return m, nil
	}

	if m.session.Done() {
		m.phase = phaseSummary
	} else {
		m.phase = phaseAnswering
		m.selected = 0
	}
	return m, nil
}

func (m QuizModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var content string
	switch m.phase {
	case phaseAnswering:
		content = m.viewQuestion(false)
	case phaseFeedback:
		content = m.viewQuestion(true) + "\n" + m.viewFeedback()
	case phaseSummary:
		content = m.viewSummary()
	}

	if m.width > 0 {
		content = lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	v.SetContent(content)
	return v
}

func (m QuizModel) viewQuestion(revealed bool) string {
	var q = m.currentOrLast()

	cur, total := m.session.Progress()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", cur, total)))
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(fmt.Sprintf("[%s | %s]", q.Topic, q.Difficulty)))
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		prefix := "  "
		if i == m.selected && !revealed {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s) %s", prefix, optionLabels[i], opt)

		switch {
		case revealed && i == q.CorrectAnswer:
			b.WriteString(correctStyle.Render(line))
		case revealed && i == m.selected:
			b.WriteString(wrongStyle.Render(line))
		case revealed:
			b.WriteString(dimStyle.Render(line))
		case i == m.selected:
			b.WriteString(selectedStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}

	if !revealed {
		b.WriteString("\n" + hintStyle.Render("up/down to move, enter or a-d to answer, q to quit"))
	}

	return b.String()
}

// currentOrLast returns the question being shown. During feedback the
// session cursor has already advanced, so look one back.
func (m QuizModel) currentOrLast() questionForView {
	if m.phase == phaseAnswering {
		q, _ := m.session.Current()
		return questionForView{q.Text, q.Options, q.CorrectAnswer, q.Topic, string(q.Difficulty)}
	}
	last := m.session.Answers[len(m.session.Answers)-1].Question
	return questionForView{last.Text, last.Options, last.CorrectAnswer, last.Topic, string(last.Difficulty)}
}

type questionForView struct {
	Text          string
	Options       []string
	CorrectAnswer int
	Topic         string
	Difficulty    string
}

func (m QuizModel) viewFeedback() string {
	var b strings.Builder

	if m.feedback.Correct {
		b.WriteString(correctStyle.Render("Correct!"))
	} else {
		b.WriteString(wrongStyle.Render("Incorrect."))
		fmt.Fprintf(&b, " The answer was %s) %s.",
			optionLabels[m.feedback.CorrectAnswer], m.feedback.CorrectOption)
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.feedback.Explanation))
	b.WriteString("\n\n" + hintStyle.Render("enter to continue"))

	return cardStyle.Render(b.String())
}

func (m QuizModel) viewSummary() string {
	correct, total, pct := m.session.Score()
	stats := performance.Aggregate(m.session.Answers)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Session Complete"))
	fmt.Fprintf(&b, "\n\nScore: %d/%d (%.0f%%)\n\n", correct, total, pct)

	for _, s := range stats {
		fmt.Fprintf(&b, "  %-28s %5s  %s\n",
			s.Topic, s.Score(), statusStyle(string(s.Status)).Render(string(s.Status)))
	}

	weak := performance.WeakTopics(stats, performance.WeakThreshold)
	if len(weak) > 0 {
		b.WriteString("\n" + wrongStyle.Render("Review these topics:") + "\n")
		for _, s := range weak {
			fmt.Fprintf(&b, "  - %s (%.0f%%)\n", s.Topic, s.Percentage)
		}
	}

	b.WriteString("\n" + hintStyle.Render("enter to finish"))
	return cardStyle.Render(b.String())
}

// Run plays the session interactively and returns the final model.
func Run(session *quiz.Session) (QuizModel, error) {
	p := tea.NewProgram(NewQuizModel(session))
	final, err := p.Run()
	if err != nil {
		return QuizModel{}, fmt.Errorf("run quiz ui: %w", err)
	}
	model, ok := final.(QuizModel)
	if !ok {
		return QuizModel{}, fmt.Errorf("unexpected final model type")
	}
	return model, nil
}
