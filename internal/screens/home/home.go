// Package home is the landing screen sub-program: a small counter that
// exists mostly to prove the delegation plumbing round-trips.
package home

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storefront/internal/theme"
	"github.com/jask/storefront/internal/tui"
)

type Model struct {
	Count int
}

type Msg interface{ isMsg() }

type Increment struct{}
type Decrement struct{}
type Reset struct{}

func (Increment) isMsg() {}
func (Decrement) isMsg() {}
func (Reset) isMsg()     {}

func Init() (Model, tui.Cmd[Msg]) {
	return Model{Count: 0}, nil
}

func Update(msg Msg, model Model) (Model, tui.Cmd[Msg]) {
	switch msg.(type) {
	case Increment:
		model.Count++
		return model, nil
	case Decrement:
		model.Count--
		return model, nil
	case Reset:
		model.Count = 0
		return model, nil
	}
	return model, nil
}

func View(model Model, width int) string {
	title := theme.Title.Render("Home")
	body := theme.Body.Render("Welcome to the storefront scaffold.")
	counter := theme.Box.Render(fmt.Sprintf("count: %d", model.Count))
	hint := theme.Label.Render("+/- adjust · 0 reset")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", counter, hint)
}
