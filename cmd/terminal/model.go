package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/internal/workflow"
)

type field int

const (
	fieldReview field = iota
	fieldProduct
)

const (
	minContentWidth = 40
	historyHeight   = 10
)

type model struct {
	styles        styles
	theme         prefs.Theme
	themeOverride bool
	app           *app.App
	cleanup       func()
	flow          *workflow.Workflow
	initErr       error

	// UI Components
	product  textinput.Model
	review   textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	focus    field
	width    int

	// Key points renderer, rebuilt when the theme or width changes.
	markdown      *glamour.TermRenderer
	markdownTheme prefs.Theme
	markdownWidth int
}

// initialModel builds the form. A non-empty themeOverride replaces the
// persisted theme for this session.
func initialModel(themeOverride prefs.Theme) *model {
	theme := themeOverride
	if theme == "" {
		theme = prefs.DefaultTheme
	}

	ti := textinput.New()
	ti.CharLimit = 200

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetHeight(4)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &model{
		theme:         theme,
		themeOverride: themeOverride != "",
		product:       ti,
		review:        ta,
		spinner:       sp,
		viewport:      viewport.New(minContentWidth, historyHeight),
		width:         minContentWidth,
	}
	m.applyTheme(theme)
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick, textarea.Blink)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case appInitializedMsg:
		if msg.err != nil {
			m.initErr = msg.err
			return m, nil
		}
		m.app = msg.app
		m.cleanup = msg.cleanup
		m.flow = m.app.NewWorkflow(context.Background())
		if !m.themeOverride {
			m.applyTheme(m.app.Prefs.Current().Theme)
		}
		m.localize()
		m.refreshHistoryView()
		return m, m.flow.Init()

	case workflow.SubmitDoneMsg, workflow.HistoryDoneMsg:
		if m.flow == nil {
			return m, nil
		}
		cmd := m.flow.Update(msg)
		if m.review.Value() != m.flow.Draft() {
			m.review.SetValue(m.flow.Draft())
		}
		m.refreshHistoryView()
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, minContentWidth)
		m.product.Width = m.width - 4
		m.review.SetWidth(m.width - 4)
		m.viewport.Width = m.width
		m.viewport.Height = max(msg.Height-24, historyHeight/2)
		m.refreshHistoryView()
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.shutdown()
		return tea.Quit
	}
	if m.app == nil {
		return nil
	}

	switch msg.String() {
	case "ctrl+t":
		m.theme = m.theme.Other()
		m.app.Prefs.SetTheme(m.theme)
		m.applyTheme(m.theme)
		m.refreshHistoryView()
		return nil
	case "ctrl+l":
		m.app.Prefs.ToggleLanguage()
		m.localize()
		m.refreshHistoryView()
		return nil
	case "ctrl+r":
		cmd := m.flow.RefreshHistory()
		m.refreshHistoryView()
		return tea.Batch(cmd, m.spinner.Tick)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	// The form is read-only while a submission is in flight.
	if m.flow.Submitting() {
		return nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		m.switchFocus()
		return nil
	case "ctrl+s":
		m.flow.SetProductName(m.product.Value())
		m.flow.SetDraft(m.review.Value())
		cmd := m.flow.Submit(m.language())
		if cmd == nil {
			return nil
		}
		return tea.Batch(cmd, m.spinner.Tick)
	}

	cmd := m.updateFocused(msg)
	m.flow.SetProductName(m.product.Value())
	m.flow.SetDraft(m.review.Value())
	return cmd
}

func (m *model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == fieldProduct {
		m.product, cmd = m.product.Update(msg)
	} else {
		m.review, cmd = m.review.Update(msg)
	}
	return cmd
}

func (m *model) switchFocus() {
	if m.focus == fieldReview {
		m.focus = fieldProduct
		m.review.Blur()
		m.product.Focus()
		return
	}
	m.focus = fieldReview
	m.product.Blur()
	m.review.Focus()
}

func (m *model) shutdown() {
	if m.flow != nil {
		m.flow.Close()
	}
	if m.cleanup != nil {
		m.cleanup()
		m.cleanup = nil
	}
}

func (m *model) applyTheme(theme prefs.Theme) {
	m.theme = theme
	m.styles = GetTheme(theme)
	m.spinner.Style = m.styles.prompt
	m.product.PromptStyle = m.styles.prompt
	m.product.Prompt = "› "
}

func (m *model) localize() {
	loc := m.localizer()
	m.product.Placeholder = loc.t(i18n.KeyProductPlaceholder)
	m.review.Placeholder = loc.t(i18n.KeyReviewPlaceholder)
}

func (m *model) localizer() localizer {
	if m.app == nil {
		return localizer{catalog: i18n.NewCatalog()}
	}
	return localizer{catalog: m.app.Catalog, lang: m.language()}
}

func (m *model) language() core.Language {
	return m.app.Prefs.Current().Language
}

func (m *model) refreshHistoryView() {
	if m.flow == nil {
		return
	}
	m.viewport.SetContent(renderHistory(m.styles, m.localizer(), m.flow.History()))
}

// renderMarkdown renders key points with Glamour, falling back to the raw
// text if the renderer cannot be built.
func (m *model) renderMarkdown(md string) string {
	if m.markdown == nil || m.markdownTheme != m.theme || m.markdownWidth != m.width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(string(m.theme)),
			glamour.WithWordWrap(m.width-6),
		)
		if err != nil {
			m.app.Logger.Warn("failed to build markdown renderer", "error", err)
			return md
		}
		m.markdown, m.markdownTheme, m.markdownWidth = r, m.theme, m.width
	}
	out, err := m.markdown.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m *model) View() string {
	if m.initErr != nil {
		return "\n  " + m.styles.error.Render(m.initErr.Error()) + "\n\n  esc\n"
	}
	if m.app == nil {
		return fmt.Sprintf("\n  %s\n\n", m.spinner.View())
	}

	loc := m.localizer()
	st := m.flow.State()

	sections := []string{
		m.styles.header.Render(loc.t(i18n.KeyTitle)),
		m.styles.subtitle.Render(loc.t(i18n.KeySubtitle)),
		m.formView(loc),
	}

	if st.Failure != nil {
		sections = append(sections,
			m.styles.error.Render(loc.t(i18n.KeyErrorPrefix)+": "+st.Failure.Localized(m.app.Catalog, loc.lang)))
	}
	if st.Result != nil {
		sections = append(sections, renderResult(m.styles, loc, st.Result, m.renderMarkdown))
	}

	history := m.flow.History()
	title := historyTitle(m.styles, loc, history)
	if history.Refreshing() && history.Status() == workflow.HistoryReady {
		title += " " + m.spinner.View()
	}
	sections = append(sections, title, m.viewport.View(), m.statusLine(loc))

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *model) formView(loc localizer) string {
	productBox, reviewBox := m.styles.panel, m.styles.panel
	if m.focus == fieldProduct {
		productBox = m.styles.focused
	} else {
		reviewBox = m.styles.focused
	}

	button := m.styles.button.Render("[ " + loc.t(i18n.KeyAnalyzeButton) + " ]  ctrl+s")
	if m.flow.Submitting() {
		button = m.spinner.View() + " " + m.styles.inactive.Render(loc.t(i18n.KeyAnalyzing))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.heading.Render(loc.t(i18n.KeySubmitHeading)),
		m.styles.label.Render(loc.t(i18n.KeyProductLabel)),
		productBox.Render(m.product.View()),
		m.styles.label.Render(loc.t(i18n.KeyReviewLabel)),
		reviewBox.Render(m.review.View()),
		button,
	)
}

func (m *model) statusLine(loc localizer) string {
	themeKey := i18n.KeyThemeLight
	if m.theme == prefs.ThemeDark {
		themeKey = i18n.KeyThemeDark
	}
	status := strings.Join([]string{
		"◐ " + loc.t(themeKey),
		"🌐 " + loc.t(i18n.KeyLanguageName),
	}, " │ ")
	return m.styles.inactive.Render(status + "\n" + loc.t(i18n.KeyHelp))
}
