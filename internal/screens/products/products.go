// Package products is the catalog list sub-program. Loading starts at init;
// cursor movement is part of the model so selection survives re-renders.
package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storefront/internal/products"
	"github.com/jask/storefront/internal/theme"
	"github.com/jask/storefront/internal/tui"
)

type Model struct {
	Products []products.Product
	Loading  bool
	Err      error
	Cursor   int
}

type Msg interface{ isMsg() }

type Load struct{}
type Loaded struct{ Response products.ListResponse }
type Failed struct{ Err error }
type CursorUp struct{}
type CursorDown struct{}

func (Load) isMsg()       {}
func (Loaded) isMsg()     {}
func (Failed) isMsg()     {}
func (CursorUp) isMsg()   {}
func (CursorDown) isMsg() {}

// Program carries the screen's dependencies.
type Program struct {
	API *products.API
}

func (p Program) Init() (Model, tui.Cmd[Msg]) {
	return Model{Loading: true}, p.fetch()
}

func (p Program) fetch() tui.Cmd[Msg] {
	return tui.Attempt(
		func() (products.ListResponse, error) { return p.API.List(context.Background()) },
		func(resp products.ListResponse) Msg { return Loaded{Response: resp} },
		func(err error) Msg { return Failed{Err: err} },
	)
}

func (p Program) Update(msg Msg, model Model) (Model, tui.Cmd[Msg]) {
	switch msg := msg.(type) {
	case Load:
		model.Loading = true
		model.Err = nil
		return model, p.fetch()
	case Loaded:
		model.Products = msg.Response.Products
		model.Loading = false
		model.Err = nil
		if model.Cursor >= len(model.Products) {
			model.Cursor = 0
		}
		return model, nil
	case Failed:
		model.Loading = false
		model.Err = msg.Err
		return model, nil
	case CursorUp:
		if model.Cursor > 0 {
			model.Cursor--
		}
		return model, nil
	case CursorDown:
		if model.Cursor < len(model.Products)-1 {
			model.Cursor++
		}
		return model, nil
	}
	return model, nil
}

// SelectedID returns the product under the cursor, if any.
func SelectedID(model Model) (int, bool) {
	if model.Loading || model.Cursor < 0 || model.Cursor >= len(model.Products) {
		return 0, false
	}
	return model.Products[model.Cursor].ID, true
}

func View(model Model, width int) string {
	title := theme.Title.Render("Products")
	if model.Loading {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", theme.Label.Render("Loading products..."))
	}
	if model.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", theme.ErrorBar.Render("Failed to load products."), theme.Label.Render("r retry"))
	}

	titleWidth := width - 44
	if titleWidth < 16 {
		titleWidth = 16
	}
	rows := make([]string, 0, len(model.Products)+1)
	rows = append(rows, theme.Label.Render(fmt.Sprintf("  %-*s  %-14s  %8s  %5s  %5s", titleWidth, "Title", "Category", "Price", "Rate", "Stock")))
	for i, product := range model.Products {
		prefix := "  "
		line := fmt.Sprintf("%s%-*s  %-14s  %8.2f  %5.1f  %5d",
			prefix, titleWidth, truncate(product.Title, titleWidth), truncate(product.Category, 14),
			product.Price, product.Rating, product.Stock)
		if i == model.Cursor {
			line = "> " + line[2:]
			line = lipgloss.NewStyle().Foreground(theme.ColorAccent).Render(line)
		}
		rows = append(rows, line)
	}
	hint := theme.Label.Render("enter view details · r reload")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(rows, "\n"), "", hint)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
