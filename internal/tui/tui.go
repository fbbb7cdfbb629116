// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package tui renders the submission lifecycle in the terminal using Bubble
// Tea. The event loop is the single owner of the submission machine: every
// timer (simulated phase advance, message rotation) and the one backend call
// are Bubble Tea commands whose messages carry the submission generation, so
// stale events fall through as no-ops inside the machine.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/submit"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/upstream"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f472b6"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#67e8f9"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")).
			Strikethrough(true)

	stepNumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f472b6"))

	barActive  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f472b6"))
	barDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("#67e8f9"))
	barPending = lipgloss.NewStyle().Foreground(lipgloss.Color("#3f3f46"))
)

// Messages.
type phaseMsg struct {
	gen   int
	phase submit.Phase
}

type rotateMsg struct {
	gen int
}

type resultMsg struct {
	gen int
	res *upstream.RecipeResponse
	err error
}

func New(backend *upstream.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.tiktok.com/@chef/video/..."
	ti.Prompt = "link> "
	ti.PromptStyle = accentStyle
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return Model{
		machine: submit.NewMachine(),
		backend: backend,
		input:   ti,
		spin:    sp,
	}
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	machine *submit.Machine
	backend *upstream.Client
	input   textinput.Model
	spin    spinner.Model
	cursor  int
	width   int
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case phaseMsg:
		m.machine.AdvancePhase(msg.gen, msg.phase)
		return m, nil

	case rotateMsg:
		m.machine.RotateMessage(msg.gen)
		// Reschedule only while this submission is still running; entering a
		// terminal state or resetting drops the timer chain.
		if msg.gen == m.machine.Generation() && m.machine.Phase().InFlight() {
			return m, rotateCmd(msg.gen)
		}
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.machine.Fail(msg.gen, msg.err)
		} else {
			m.machine.Complete(msg.gen, msg.res)
		}
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if m.machine.Phase().InFlight() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.machine.Phase() == submit.PhaseIdle {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.machine.Phase() {
	case submit.PhaseIdle:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case submit.PhaseDone:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.machine.Ingredients())-1 {
				m.cursor++
			}
		case " ":
			m.machine.ToggleIngredient(m.cursor)
		case "+", "=":
			m.machine.SetServings(m.machine.CurrentServings() + 1)
		case "-", "_":
			m.machine.SetServings(m.machine.CurrentServings() - 1)
		case "a":
			m.machine.CheckAll()
		case "n":
			m.machine.UncheckAll()
		case "r":
			return m.reset()
		case "q":
			return m, tea.Quit
		}

	case submit.PhaseError:
		switch msg.String() {
		case "r":
			return m.reset()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	url := m.input.Value()
	if err := m.machine.Submit(url); err != nil {
		// Validation failures are already recorded as the machine's error
		// message; stay on the input.
		return m, nil
	}
	gen := m.machine.Generation()
	m.input.Blur()
	return m, tea.Batch(
		m.analyzeCmd(gen, url),
		advanceCmd(gen, submit.PhaseUploading, submit.UploadingAfter),
		advanceCmd(gen, submit.PhaseAnalyzing, submit.AnalyzingAfter),
		rotateCmd(gen),
		m.spin.Tick,
	)
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.machine.Reset()
	m.cursor = 0
	m.input.Reset()
	m.input.Focus()
	return m, textinput.Blink
}

// analyzeCmd performs the one long backend call. The result message carries
// the generation so a response arriving after a reset is discarded.
func (m Model) analyzeCmd(gen int, url string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		res, err := backend.AnalyzeVideo(context.Background(), url)
		return resultMsg{gen: gen, res: res, err: err}
	}
}

func advanceCmd(gen int, phase submit.Phase, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return phaseMsg{gen: gen, phase: phase}
	})
}

func rotateCmd(gen int) tea.Cmd {
	return tea.Tick(submit.RotateInterval, func(time.Time) tea.Msg {
		return rotateMsg{gen: gen}
	})
}

// ── View ─────────────────────────────────────────────────────────

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🍳 TikTok to Recipe"))
	b.WriteString(dimStyle.Render("  —  paste a cooking video link, get the recipe"))
	b.WriteString("\n\n")

	switch m.machine.Phase() {
	case submit.PhaseIdle:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if errMsg := m.machine.ErrMessage(); errMsg != "" {
			b.WriteString("\n" + errorStyle.Render("✗ "+errMsg) + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("enter: analyze · ctrl+c: quit") + "\n")

	case submit.PhaseDownloading, submit.PhaseUploading, submit.PhaseAnalyzing:
		b.WriteString(m.viewProgress())

	case submit.PhaseDone:
		b.WriteString(m.viewRecipe())

	case submit.PhaseError:
		b.WriteString(errorStyle.Render("✗ " + m.machine.ErrMessage()))
		b.WriteString("\n\n" + dimStyle.Render("r: analyze another video · q: quit") + "\n")
	}

	return b.String()
}

func (m Model) viewProgress() string {
	var b strings.Builder

	phases := []submit.Phase{submit.PhaseDownloading, submit.PhaseUploading, submit.PhaseAnalyzing}
	active := m.machine.Phase()
	segments := make([]string, len(phases))
	passed := true
	for i, p := range phases {
		segment := "━━━━━━━━"
		switch {
		case p == active:
			segments[i] = barActive.Render(segment)
			passed = false
		case passed:
			segments[i] = barDone.Render(segment)
		default:
			segments[i] = barPending.Render(segment)
		}
	}
	b.WriteString(strings.Join(segments, " "))
	b.WriteString("\n\n")

	b.WriteString(m.spin.View())
	b.WriteString(primaryStyle.Render(m.machine.Message()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("⏱ The analysis can take 30-90 seconds..."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewRecipe() string {
	res := m.machine.Result()
	var b strings.Builder

	b.WriteString(titleStyle.Render(res.RecipeName) + "\n")
	if res.Description != "" {
		b.WriteString(dimStyle.Render(res.Description) + "\n")
	}
	b.WriteString("\n")

	servings := fmt.Sprintf("Servings: − %d +", m.machine.CurrentServings())
	b.WriteString(accentStyle.Render(servings))
	if m.machine.CurrentServings() != m.machine.BaseServings() {
		b.WriteString(dimStyle.Render("  (quantities adjusted)"))
	}
	b.WriteString("\n\n")

	ingredients := m.machine.Ingredients()
	header := fmt.Sprintf("🛒 Shopping list (%d/%d)", m.machine.CheckedCount(), len(ingredients))
	b.WriteString(primaryStyle.Render(header) + "\n")
	for i, ing := range ingredients {
		cursor := "  "
		if i == m.cursor {
			cursor = accentStyle.Render("› ")
		}
		check := "[ ]"
		name := primaryStyle.Render(ing.Name)
		if ing.Checked {
			check = "[x]"
			name = checkedStyle.Render(ing.Name)
		}
		quantity := accentStyle.Render(m.machine.DisplayQuantity(i))
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, check, name, quantity))
	}
	b.WriteString("\n")

	b.WriteString(primaryStyle.Render("👨‍🍳 Preparation") + "\n")
	for _, step := range res.Steps {
		b.WriteString(stepNumStyle.Render(fmt.Sprintf("%d. ", step.Number)))
		b.WriteString(primaryStyle.Render(step.Title))
		b.WriteString("\n   " + dimStyle.Render(step.Description) + "\n")
	}

	if len(res.Tips) > 0 {
		b.WriteString("\n" + accentStyle.Render("💡 Chef tips") + "\n")
		for _, tip := range res.Tips {
			b.WriteString(dimStyle.Render("• "+tip) + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("space: check · +/-: servings · a/n: all/none · r: new video · q: quit") + "\n")
	return b.String()
}
