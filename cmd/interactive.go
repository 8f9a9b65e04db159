package cmd

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // TUI styles
var (
	pasteTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	pasteHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// pasteModel collects a job posting pasted into a textarea.
type pasteModel struct {
	textarea  textarea.Model
	submitted bool
	aborted   bool
}

func newPasteModel() (m pasteModel) {
	ta := textarea.New()
	ta.Placeholder = "Paste the job description here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(80)
	ta.SetHeight(15)
	ta.Focus()

	m = pasteModel{textarea: ta}
	return m
}

func (m pasteModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m pasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "ctrl+d":
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m pasteModel) View() string {
	s := pasteTitleStyle.Render("Job description")
	s += "\n"
	s += m.textarea.View()
	s += pasteHintStyle.Render("ctrl+d submit  esc cancel")
	return s
}

// text returns the trimmed posting, or an error when the user cancelled or pasted nothing.
func (m pasteModel) text() (text string, err error) {
	if m.aborted || !m.submitted {
		err = errors.New("job description entry cancelled")
		return text, err
	}

	text = strings.TrimSpace(m.textarea.Value())
	if text == "" {
		err = errors.New("no job description provided")
		return text, err
	}

	return text, err
}

// pasteJobDescription runs the textarea until the posting is submitted.
func pasteJobDescription() (text string, err error) {
	p := tea.NewProgram(newPasteModel())

	var result tea.Model
	result, err = p.Run()
	if err != nil {
		err = errors.Wrap(err, "failed to read job description")
		return text, err
	}

	final, ok := result.(pasteModel)
	if !ok {
		err = errors.Errorf("unexpected model type %T", result)
		return text, err
	}

	text, err = final.text()
	return text, err
}

// promptForCompany asks for the target company, offering current as the default.
func promptForCompany(current string) (company string, err error) {
	prompt := promptui.Prompt{
		Label:   "Company",
		Default: current,
	}

	company, err = prompt.Run()
	if err != nil {
		err = errors.Wrap(err, "company prompt aborted")
		return company, err
	}

	company = strings.TrimSpace(company)
	if company == "" {
		company = current
	}

	return company, err
}
