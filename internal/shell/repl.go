package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// maxTranscript bounds the number of output lines kept on screen.
const maxTranscript = 200

const replHelp = `:lexer   switch to token output
:parser  switch to syntax tree output
:help    show this help
:quit    leave the prompt`

// Model is the interactive prompt. Every submitted line is one unit of
// work run through a fresh lexer and parser.
type Model struct {
	runner *Runner
	styles Styles
	input  textinput.Model
	mode   Mode
	lines  []string
	quit   bool
}

// NewModel returns a prompt in parser mode.
func NewModel(runner *Runner, styles Styles) Model {
	in := textinput.New()
	in.Placeholder = "Blaze code or :help"
	in.CharLimit = 4096
	in.Width = 72
	in.Focus()

	m := Model{runner: runner, styles: styles, input: in, mode: ModeParser}
	m.setPrompt()
	return m
}

// Mode returns the current output mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Transcript returns the output shown above the prompt.
func (m Model) Transcript() []string {
	return m.lines
}

func (m *Model) setPrompt() {
	m.input.Prompt = m.styles.render(m.styles.Prompt, "blaze:"+m.mode.String()+"> ")
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			m.submit(line)
			if m.quit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one line of input.
func (m *Model) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	switch line {
	case ":q", ":quit", ":exit":
		m.quit = true
		return
	case ":lexer":
		m.mode = ModeLexer
		m.setPrompt()
		return
	case ":parser":
		m.mode = ModeParser
		m.setPrompt()
		return
	case ":help":
		m.appendText(m.styles.Hint(replHelp))
		return
	}

	m.appendText("> " + line)
	res := m.runner.Run(m.mode, line)
	for _, d := range res.Diagnostics {
		m.appendText(m.styles.Diagnostic(d))
	}
	if res.Err != nil {
		return
	}

	var b strings.Builder
	if m.mode == ModeLexer {
		WriteTokenTable(&b, m.runner.Source(), res.Tokens)
	} else {
		syntax.Fprint(&b, res.Tree)
	}
	m.appendText(strings.TrimRight(b.String(), "\n"))
	if s := res.Summary(); s != "" {
		m.appendText(m.styles.Success(s))
	}
}

func (m *Model) appendText(text string) {
	m.lines = append(m.lines, strings.Split(text, "\n")...)
	if n := len(m.lines) - maxTranscript; n > 0 {
		m.lines = m.lines[n:]
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(m.styles.Hint("enter: run  esc: quit  :help"))
	return b.String()
}

// RunREPL starts the interactive prompt and blocks until it exits.
func RunREPL(runner *Runner, styles Styles, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(runner, styles), opts...).Run()
	return err
}
