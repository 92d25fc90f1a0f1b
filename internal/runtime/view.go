package runtime

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/router"
	"github.com/jask/storefront/internal/screens/home"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/productdetail"
	"github.com/jask/storefront/internal/screens/products"
	"github.com/jask/storefront/internal/theme"
)

var (
	brandStyle      = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorAccent).Padding(0, 1)
	menuItemStyle   = lipgloss.NewStyle().Foreground(theme.ColorInactive).Padding(0, 1)
	menuActiveStyle = lipgloss.NewStyle().Foreground(theme.ColorText).Background(theme.ColorSurface).Bold(true).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Foreground(theme.ColorMuted).Padding(0, 1)
	footerStyle     = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	bodyStyle       = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	switch state := m.state.(type) {
	case router.Initializing:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Label.Render("Loading session..."))

	case router.Anonymous:
		form := login.View(state.Login, m.username.View(), m.password.View(), m.width)
		footer := footerStyle.Render(renderHelp(m.keys.anonymousHelp()))
		return lipgloss.JoinVertical(lipgloss.Left, form, footer)

	case router.Authenticated:
		header := m.renderHeader(state)
		body := bodyStyle.Render(m.screenView(state))
		footer := footerStyle.Render(renderHelp(m.keys.authenticatedHelp()))
		return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	}
	return ""
}

func (m Model) renderHeader(state router.Authenticated) string {
	parts := []string{brandStyle.Render("storefront")}
	entries := visibleEntries(state)
	active := activeMenuIndex(state, entries)
	for i, entry := range entries {
		style := menuItemStyle
		if i == active {
			style = menuActiveStyle
		}
		parts = append(parts, style.Render(entry.Label))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	right := userStyle.Render(state.Session.Username)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) screenView(state router.Authenticated) string {
	width := m.width - 4
	switch screen := state.Screen.(type) {
	case router.HomeScreen:
		return home.View(screen.Model, width)
	case router.ProductsScreen:
		return products.View(screen.Model, width)
	case router.ProductDetailScreen:
		return productdetail.View(screen.Model, width)
	case router.NotFoundScreen:
		lines := []string{
			theme.Title.Render("Not found"),
			"",
			theme.Body.Render(fmt.Sprintf("No screen registered for %q.", screen.Path)),
		}
		if screen.Suggestion != "" {
			lines = append(lines, theme.Label.Render("Did you mean "+screen.Suggestion+"?"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case router.UnauthorizedScreen:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("Unauthorized"),
			"",
			theme.Body.Render(fmt.Sprintf("You do not have permission to view %q.", screen.Path)),
		)
	}
	return ""
}

func authConfig(state router.Authenticated) auth.AuthorizationConfig {
	return auth.ToAuthorizationConfig(state.Session)
}

// activeMenuIndex maps the running screen back to its menu entry. The detail
// screen highlights Products, since that is where it came from.
func activeMenuIndex(state router.Authenticated, entries []nav.NavigationEntry) int {
	var name string
	switch state.Screen.(type) {
	case router.HomeScreen:
		name = "Home"
	case router.ProductsScreen:
		name = "Products"
	case router.ProductDetailScreen:
		name = "Products"
	default:
		return -1
	}
	for i, entry := range entries {
		if entry.Screen == name {
			return i
		}
	}
	return -1
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return " " + strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}
