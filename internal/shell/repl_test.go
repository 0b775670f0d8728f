package shell

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	return NewModel(NewRunner("Shell", nil, nil), NewStyles(false))
}

// enter types line into the prompt and presses enter.
func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelParsesLine(t *testing.T) {
	m, cmd := enter(t, newTestModel(), "fin country_id = 1")
	if cmd != nil {
		t.Errorf("unexpected command after a unit of work")
	}
	out := strings.Join(m.Transcript(), "\n")

	for _, want := range []string{
		"> fin country_id = 1",
		"VariableDeclaration Shell:1:1 (fin)",
		"Parsing completed. Nodes: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
}

func TestModelLexerMode(t *testing.T) {
	m, _ := enter(t, newTestModel(), ":lexer")
	if m.Mode() != ModeLexer {
		t.Fatalf("mode = %s, want lexer", m.Mode())
	}
	if !strings.Contains(m.input.Prompt, "blaze:lexer>") {
		t.Errorf("prompt = %q", m.input.Prompt)
	}

	m, _ = enter(t, m, "if mut while else")
	out := strings.Join(m.Transcript(), "\n")
	for _, want := range []string{"POSITION", "Shell:1:4", "Lexical analysis completed. Tokens: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}

	m, _ = enter(t, m, ":parser")
	if m.Mode() != ModeParser {
		t.Errorf("mode = %s, want parser", m.Mode())
	}
}

func TestModelShowsDiagnostics(t *testing.T) {
	m, _ := enter(t, newTestModel(), "9 * 12 import")
	out := strings.Join(m.Transcript(), "\n")

	want := "Syntax Error: expected '}' or ';', found 'import' <-= at Shell:1:8"
	if !strings.Contains(out, want) {
		t.Errorf("transcript missing %q:\n%s", want, out)
	}
	if strings.Contains(out, "Parsing completed") {
		t.Errorf("failed unit reported success:\n%s", out)
	}
}

func TestModelQuit(t *testing.T) {
	for _, line := range []string{":q", ":quit", ":exit"} {
		m, cmd := enter(t, newTestModel(), line)
		if cmd == nil {
			t.Errorf("%s: no quit command", line)
		}
		if m.View() != "" {
			t.Errorf("%s: view after quit = %q", line, m.View())
		}
	}

	next, cmd := newTestModel().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(Model).View() != "" {
		t.Error("esc did not quit")
	}
}

func TestModelIgnoresBlankLines(t *testing.T) {
	m, _ := enter(t, newTestModel(), "   ")
	if len(m.Transcript()) != 0 {
		t.Errorf("transcript = %v, want empty", m.Transcript())
	}
}

func TestModelHelpAndView(t *testing.T) {
	m, _ := enter(t, newTestModel(), ":help")
	view := m.View()
	for _, want := range []string{":lexer", ":quit", "blaze:parser>"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelTranscriptBounded(t *testing.T) {
	m := newTestModel()
	for i := 0; i < maxTranscript; i++ {
		m.appendText("a\nb")
	}
	if len(m.Transcript()) != maxTranscript {
		t.Errorf("transcript has %d lines, want %d", len(m.Transcript()), maxTranscript)
	}
}
