// Package tui provides the interactive Bubble Tea dashboard for pennyquest.
package tui

import (
	"fmt"
	"strings"

	"pennyquest/internal/auth"
	"pennyquest/internal/cli"
	"pennyquest/internal/ledger"
	"pennyquest/internal/model"
	"pennyquest/internal/quest"
	"pennyquest/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// QuestDoneMsg is sent when an in-flight quest completion resolves.
type QuestDoneMsg struct {
	Stats model.UserStats
	Err   error
}

var tabNames = []string{"Overview", "Expenses", "Progress", "Badges"}

// App is the root Bubble Tea model.
type App struct {
	svc  *quest.Service
	user auth.User

	width     int
	height    int
	activeTab int

	// Data snapshot, refreshed after every mutation
	status   quest.TodayStatus
	expenses []model.Expense
	week     ledger.WeeklySummary

	// Quest form state (nil when no form is open)
	form          *huh.Form
	formType      model.CheckInType
	morningInputs []string
	evCategory    string
	evAmount      string
	evNotes       string

	// busy disables quest controls while a completion is in flight, so a
	// double-tap cannot run the progression twice.
	busy    bool
	spinner spinner.Model
	notice  string
}

// New builds the dashboard over a quest service.
func New(svc *quest.Service, user auth.User) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{svc: svc, user: user, spinner: sp}
	a.refresh()
	return a
}

// Run starts the TUI event loop.
func Run(svc *quest.Service, user auth.User) error {
	_, err := tea.NewProgram(New(svc, user), tea.WithAltScreen()).Run()
	return err
}

func (a App) Init() tea.Cmd {
	return a.spinner.Tick
}

func (a *App) refresh() {
	a.status = a.svc.Today()
	a.expenses = a.svc.Ledger().All()
	if week, err := a.svc.Week(); err == nil {
		a.week = week
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case QuestDoneMsg:
		a.busy = false
		if msg.Err != nil {
			a.notice = "save failed, try again: " + msg.Err.Error()
		} else {
			a.notice = fmt.Sprintf("quest complete — %s", cli.FormatStreak(msg.Stats.CurrentStreak))
		}
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.handleKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "tab", "l", "right":
		a.activeTab = (a.activeTab + 1) % len(tabNames)
	case "shift+tab", "h", "left":
		a.activeTab = (a.activeTab + len(tabNames) - 1) % len(tabNames)
	case "1", "2", "3", "4":
		a.activeTab = int(msg.String()[0] - '1')
	case "r":
		a.refresh()
		a.notice = ""
	case "m":
		if !a.busy {
			return a, a.openMorningForm()
		}
	case "e":
		if !a.busy {
			return a, a.openEveningForm()
		}
	}
	return a, nil
}

func (a *App) openMorningForm() tea.Cmd {
	a.formType = model.Morning
	a.morningInputs = make([]string, len(quest.MorningUtilities))
	fields := make([]huh.Field, 0, len(quest.MorningUtilities))
	for i, utility := range quest.MorningUtilities {
		fields = append(fields, huh.NewInput().
			Title(utility).
			Placeholder("0.00").
			Value(&a.morningInputs[i]))
	}
	a.form = huh.NewForm(huh.NewGroup(fields...).Title("Morning Quest"))
	return a.form.Init()
}

func (a *App) openEveningForm() tea.Cmd {
	a.formType = model.Evening
	a.evCategory = quest.EveningCategories[0]
	a.evAmount = ""
	a.evNotes = ""

	options := make([]huh.Option[string], len(quest.EveningCategories))
	for i, c := range quest.EveningCategories {
		options[i] = huh.NewOption(c, c)
	}

	a.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Category").Options(options...).Value(&a.evCategory),
		huh.NewInput().Title("Amount").Placeholder("0.00").Value(&a.evAmount),
		huh.NewInput().Title("Notes").Value(&a.evNotes),
	).Title("Evening Quest"))
	return a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.form = nil
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		submit := a.submitCmd()
		a.form = nil
		if submit == nil {
			a.notice = "enter a positive amount like 12.50"
			return a, cmd
		}
		a.busy = true
		a.notice = ""
		return a, tea.Batch(cmd, submit)
	}
	return a, cmd
}

// submitCmd turns the finished form into an asynchronous completion command.
// Returns nil when the input fails validation.
func (a *App) submitCmd() tea.Cmd {
	svc := a.svc
	if a.formType == model.Morning {
		utilities := make(map[string]float64)
		for i, utility := range quest.MorningUtilities {
			raw := strings.TrimSpace(a.morningInputs[i])
			if raw == "" {
				continue
			}
			amount, err := model.ParseAmount(raw)
			if err != nil {
				return nil
			}
			utilities[utility] = amount
		}
		return func() tea.Msg {
			stats, err := svc.CompleteMorning(utilities)
			return QuestDoneMsg{Stats: stats, Err: err}
		}
	}

	var entries []quest.Entry
	if raw := strings.TrimSpace(a.evAmount); raw != "" {
		amount, err := model.ParseAmount(raw)
		if err != nil {
			return nil
		}
		entries = append(entries, quest.Entry{Category: a.evCategory, Amount: amount, Notes: a.evNotes})
	}
	return func() tea.Msg {
		stats, err := svc.CompleteEvening(entries)
		return QuestDoneMsg{Stats: stats, Err: err}
	}
}

func (a App) View() string {
	t := theme.Active
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")

	if a.form != nil {
		b.WriteString(a.form.View())
		return b.String()
	}

	switch a.activeTab {
	case 0:
		b.WriteString(a.renderOverview())
	case 1:
		b.WriteString(a.renderExpenses())
	case 2:
		b.WriteString(a.renderProgress())
	case 3:
		b.WriteString(a.renderBadges())
	}

	b.WriteString("\n")
	if a.busy {
		b.WriteString("  " + a.spinner.View() + " saving...\n")
	} else if a.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(t.Yellow)
		b.WriteString("  " + noticeStyle.Render(a.notice) + "\n")
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render("  tab/1-4 switch · m morning quest · e evening quest · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderHeader() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, 0, len(tabNames)+1)
	parts = append(parts, titleStyle.Render("  PENNYQUEST"))
	for i, name := range tabNames {
		if i == a.activeTab {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	return strings.Join(parts, "   ")
}
