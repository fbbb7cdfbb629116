// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package submit drives the submission lifecycle of one video analysis:
// phase transitions, rotating status messages, and the serving-adjusted view
// of the resulting recipe.
//
// The machine is plain state with named operations and no timers of its own.
// The caller (the terminal UI event loop) schedules the simulated phase
// advances and message rotations, passing the generation it captured at
// submit time; operations carrying a stale generation are no-ops, so a late
// timer or a late result can never reanimate a reset or finished submission.
package submit

import (
	"context"
	"errors"
	"strings"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/analysis"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/recipe"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/upstream"
)

// ErrBusy is returned by Submit while a submission is already outstanding.
var ErrBusy = errors.New("submit: a submission is already in progress")

const defaultServings = 2

func NewMachine() *Machine {
	return &Machine{
		phase:           PhaseIdle,
		baseServings:    defaultServings,
		currentServings: defaultServings,
	}
}

// Machine holds the view state of one submission. It is not safe for
// concurrent use; all access must come from a single event loop.
type Machine struct {
	phase      Phase
	message    string
	errMessage string
	generation int

	result          *upstream.RecipeResponse
	ingredients     []recipe.Ingredient
	baseServings    int
	currentServings int
}

// Phase returns the active lifecycle phase.
func (m *Machine) Phase() Phase { return m.phase }

// Message returns the current rotating status message, empty outside of
// in-flight phases.
func (m *Machine) Message() string { return m.message }

// ErrMessage returns the user-facing error message, empty when there is
// none. At most one error is surfaced at a time.
func (m *Machine) ErrMessage() string { return m.errMessage }

// Generation identifies the current submission attempt. Timer-driven
// operations must pass the generation captured when they were scheduled.
func (m *Machine) Generation() int { return m.generation }

// Result returns the structured recipe once the submission is done.
func (m *Machine) Result() *upstream.RecipeResponse { return m.result }

// Ingredients returns the shopping list with its checklist state.
func (m *Machine) Ingredients() []recipe.Ingredient { return m.ingredients }

// BaseServings returns the serving count the stored quantities are for.
func (m *Machine) BaseServings() int { return m.baseServings }

// CurrentServings returns the user-selected serving count.
func (m *Machine) CurrentServings() int { return m.currentServings }

// Submit starts a new submission for the given link. The input must look
// like a link to the supported platform; validation failures leave the
// machine in Idle and are reported without any network activity.
func (m *Machine) Submit(input string) error {
	if m.phase != PhaseIdle {
		return ErrBusy
	}
	if err := validateInput(input); err != nil {
		m.errMessage = err.Message
		return err
	}

	m.generation++
	m.errMessage = ""
	m.result = nil
	m.ingredients = nil
	m.phase = PhaseDownloading
	m.message = pickMessage(m.phase)
	return nil
}

func validateInput(input string) *analysis.Error {
	if strings.TrimSpace(input) == "" {
		return analysis.Validation("Please paste a TikTok link.")
	}
	if !IsVideoURL(input) {
		return analysis.Validation("This link does not look like a valid TikTok link.")
	}
	return nil
}

// AdvancePhase moves to a simulated intermediate phase. It is a no-op when
// the generation is stale, the machine is terminal, or the move is not
// forward.
func (m *Machine) AdvancePhase(generation int, phase Phase) {
	if generation != m.generation || !m.phase.InFlight() {
		return
	}
	if phase != PhaseUploading && phase != PhaseAnalyzing {
		return
	}
	if rank(phase) <= rank(m.phase) {
		return
	}
	m.phase = phase
	m.message = pickMessage(phase)
}

func rank(p Phase) int {
	switch p {
	case PhaseDownloading:
		return 1
	case PhaseUploading:
		return 2
	case PhaseAnalyzing:
		return 3
	default:
		return 0
	}
}

// RotateMessage re-picks the status message for the active phase.
func (m *Machine) RotateMessage(generation int) {
	if generation != m.generation || !m.phase.InFlight() {
		return
	}
	m.message = pickMessage(m.phase)
}

// Complete records the successful result and enters Done. The response's
// serving count becomes the immutable base for quantity scaling; a
// non-positive count is treated as an unexpected failure rather than
// dividing by zero later.
func (m *Machine) Complete(generation int, res *upstream.RecipeResponse) {
	if generation != m.generation || !m.phase.InFlight() {
		return
	}
	if res == nil || res.Servings < 1 {
		m.fail(analysis.Unexpected(errors.New("submit: backend returned no usable serving count")))
		return
	}

	ingredients := make([]recipe.Ingredient, len(res.Ingredients))
	for i, ing := range res.Ingredients {
		ing.Checked = false
		ingredients[i] = ing
	}

	m.result = res
	m.ingredients = ingredients
	m.baseServings = res.Servings
	m.currentServings = res.Servings
	m.phase = PhaseDone
	m.message = ""
}

// Fail classifies the failure and enters Error. A stale generation is
// ignored.
func (m *Machine) Fail(generation int, err error) {
	if generation != m.generation || !m.phase.InFlight() {
		return
	}
	var classified *analysis.Error
	if !errors.As(err, &classified) {
		classified = analysis.Classify(context.Background(), err)
	}
	m.fail(classified)
}

func (m *Machine) fail(err *analysis.Error) {
	m.phase = PhaseError
	m.message = ""
	m.errMessage = err.Message
}

// Reset returns every piece of view state to its initial value and
// invalidates all outstanding timers and result handlers.
func (m *Machine) Reset() {
	m.generation++
	m.phase = PhaseIdle
	m.message = ""
	m.errMessage = ""
	m.result = nil
	m.ingredients = nil
	m.baseServings = defaultServings
	m.currentServings = defaultServings
}

// SetServings updates the user-selected serving count, clamped to the
// allowed minimum. Stored quantities are never mutated.
func (m *Machine) SetServings(n int) {
	m.currentServings = recipe.ClampServings(n)
}

// ToggleIngredient flips the checklist state of one ingredient.
func (m *Machine) ToggleIngredient(i int) {
	if i < 0 || i >= len(m.ingredients) {
		return
	}
	m.ingredients[i].Checked = !m.ingredients[i].Checked
}

// CheckAll marks every ingredient as collected.
func (m *Machine) CheckAll() {
	for i := range m.ingredients {
		m.ingredients[i].Checked = true
	}
}

// UncheckAll clears the checklist.
func (m *Machine) UncheckAll() {
	for i := range m.ingredients {
		m.ingredients[i].Checked = false
	}
}

// CheckedCount returns how many ingredients are checked.
func (m *Machine) CheckedCount() int {
	var n int
	for _, ing := range m.ingredients {
		if ing.Checked {
			n++
		}
	}
	return n
}

// DisplayQuantity renders an ingredient's quantity adjusted to the current
// serving count, with its unit.
func (m *Machine) DisplayQuantity(i int) string {
	if i < 0 || i >= len(m.ingredients) {
		return ""
	}
	ing := m.ingredients[i]
	return recipe.DisplayQuantity(ing.Quantity, m.baseServings, m.currentServings) + " " + ing.Unit
}
