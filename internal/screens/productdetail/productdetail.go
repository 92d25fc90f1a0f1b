// Package productdetail is the single-product sub-program. Init takes the
// product id because the screen cannot exist without one.
package productdetail

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storefront/internal/products"
	"github.com/jask/storefront/internal/theme"
	"github.com/jask/storefront/internal/tui"
)

type Model struct {
	Product *products.Product
	Loading bool
	Err     error
}

type Msg interface{ isMsg() }

type Loaded struct{ Product products.Product }
type Failed struct{ Err error }

func (Loaded) isMsg() {}
func (Failed) isMsg() {}

// Program carries the screen's dependencies.
type Program struct {
	API *products.API
}

func (p Program) Init(productID int) (Model, tui.Cmd[Msg]) {
	return Model{Loading: true}, tui.Attempt(
		func() (products.Product, error) { return p.API.Get(context.Background(), productID) },
		func(product products.Product) Msg { return Loaded{Product: product} },
		func(err error) Msg { return Failed{Err: err} },
	)
}

func (Program) Update(msg Msg, model Model) (Model, tui.Cmd[Msg]) {
	switch msg := msg.(type) {
	case Loaded:
		product := msg.Product
		model.Product = &product
		model.Loading = false
		model.Err = nil
		return model, nil
	case Failed:
		model.Loading = false
		model.Err = msg.Err
		return model, nil
	}
	return model, nil
}

func View(model Model, width int) string {
	if model.Loading {
		return theme.Label.Render("Loading product...")
	}
	if model.Err != nil {
		return theme.ErrorBar.Render("Failed to load product.")
	}
	if model.Product == nil {
		return ""
	}

	product := model.Product
	lines := []string{theme.Title.Render(product.Title)}
	if product.Brand != "" {
		lines = append(lines, theme.Label.Render(product.Brand))
	}
	lines = append(lines,
		theme.Label.Render(product.Category),
		"",
		theme.Body.Width(min(72, max(width-6, 30))).Render(product.Description),
		"",
		fmt.Sprintf("%s  %s", theme.Label.Render("Price"), theme.Success.Render(fmt.Sprintf("$%.2f", product.Price))),
		fmt.Sprintf("%s %s", theme.Label.Render("Rating"), theme.Body.Render(fmt.Sprintf("★ %.1f", product.Rating))),
		fmt.Sprintf("%s  %s", theme.Label.Render("Stock"), theme.Body.Render(fmt.Sprintf("%d", product.Stock))),
		"",
		theme.Label.Render("esc back"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
