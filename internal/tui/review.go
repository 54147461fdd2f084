// Package tui is the interactive review screen for a mapping file.
//
// Keys: c confirm, x reject, e edit target, v validate, w write, q quit.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/diagnostic"
	"contract-mapper/internal/mapping"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
)

// ruleItem implements list.Item for a mapping rule.
type ruleItem struct {
	rule mapping.Rule
}

func (i ruleItem) Title() string {
	return fmt.Sprintf("%s → %s", i.rule.SourceField, i.rule.TargetField)
}

func (i ruleItem) Description() string {
	return fmt.Sprintf("%s · %d%% · %s", i.rule.Status, i.rule.ConfidencePercent(), i.rule.Transformation)
}

func (i ruleItem) FilterValue() string { return i.rule.SourceField }

// Writer persists the reviewed set.
type Writer func(set *mapping.Set, path string) error

// Model is the review screen state.
type Model struct {
	set    *mapping.Set
	source *contract.Contract
	target *contract.Contract
	path   string
	write  Writer

	rules    list.Model
	input    textinput.Model
	editing  bool
	findings diagnostic.Findings
	status   string
	dirty    bool
	width    int
}

// New builds a review model over set. Decisions are applied to set in place
// and written to path on w.
func New(set *mapping.Set, source, target *contract.Contract, path string) Model {
	items := make([]list.Item, len(set.Rules))
	for i, r := range set.Rules {
		items[i] = ruleItem{rule: r}
	}

	rules := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight-8)
	rules.Title = fmt.Sprintf("%s → %s", source.DisplayName(), target.DisplayName())
	rules.SetShowStatusBar(false)
	rules.SetFilteringEnabled(false)
	rules.SetShowHelp(false)
	rules.Styles.Title = titleStyle

	input := textinput.New()
	input.Placeholder = "model.field"
	input.Prompt = "target: "

	return Model{
		set:    set,
		source: source,
		target: target,
		path:   path,
		write:  mapping.WriteFile,
		rules:  rules,
		input:  input,
		width:  defaultWidth,
	}
}

// Set returns the set under review.
func (m Model) Set() *mapping.Set { return m.set }

// Status returns the last status line.
func (m Model) Status() string { return m.status }

// Findings returns the findings of the last validation.
func (m Model) Findings() diagnostic.Findings { return m.findings }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.rules.SetSize(msg.Width, max(4, msg.Height-8))
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.editing {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	m.rules, cmd = m.rules.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		return m.decide(mapping.ActionConfirm, ""), nil
	case "x":
		return m.decide(mapping.ActionReject, ""), nil
	case "e":
		rule, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editing = true
		m.input.SetValue("")
		m.input.Placeholder = rule.TargetField
		m.status = "editing target of " + rule.SourceField
		return m, m.input.Focus()
	case "v":
		rule, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.findings = mapping.Validate(rule, m.source, m.target)
		switch {
		case len(m.findings) == 0:
			m.status = "rule is valid"
		case m.findings.HasErrors():
			m.status = fmt.Sprintf("%s is invalid: %d findings", rule.SourceField, len(m.findings))
		default:
			m.status = fmt.Sprintf("%d findings for %s", len(m.findings), rule.SourceField)
		}
		return m, nil
	case "w":
		if err := m.write(m.set, m.path); err != nil {
			m.status = "write failed: " + err.Error()
			return m, nil
		}
		m.dirty = false
		m.status = fmt.Sprintf("wrote %d rules to %s", len(m.set.Rules), m.path)
		return m, nil
	}

	var cmd tea.Cmd
	m.rules, cmd = m.rules.Update(msg)
	m.findings = nil
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.status = "edit cancelled"
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		return m.decide(mapping.ActionModify, value), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// decide applies an action to the selected rule and refreshes its row.
func (m Model) decide(action mapping.Action, target string) Model {
	idx := m.rules.Index()
	if idx < 0 || idx >= len(m.set.Rules) {
		return m
	}

	rule := &m.set.Rules[idx]
	if err := rule.Apply(action, target, ""); err != nil {
		m.status = err.Error()
		return m
	}

	m.rules.SetItem(idx, ruleItem{rule: *rule})
	m.dirty = true
	m.findings = nil
	m.status = fmt.Sprintf("%s: %s", rule.SourceField, rule.Status)

	return m
}

func (m Model) selected() (mapping.Rule, bool) {
	idx := m.rules.Index()
	if idx < 0 || idx >= len(m.set.Rules) {
		return mapping.Rule{}, false
	}

	return m.set.Rules[idx], true
}

func (m Model) View() string {
	sections := []string{m.rules.View()}

	if m.editing {
		sections = append(sections, panelStyle.Width(max(20, m.width-4)).Render(m.input.View()))
	}

	if len(m.findings) > 0 {
		lines := make([]string, 0, len(m.findings))
		for _, f := range m.findings {
			style := warningStyle
			if f.Severity == diagnostic.SeverityError {
				style = errorStyle
			}
			lines = append(lines, style.Render(f.String()))
		}
		sections = append(sections, panelStyle.Width(max(20, m.width-4)).Render(strings.Join(lines, "\n")))
	}

	counts := m.set.CountByStatus()
	summary := fmt.Sprintf("%d suggested · %d confirmed · %d modified · %d rejected",
		counts[mapping.StatusSuggested], counts[mapping.StatusConfirmed],
		counts[mapping.StatusModified], counts[mapping.StatusRejected])
	if m.dirty {
		summary += " · unsaved"
	}

	sections = append(sections,
		statusStyle.Render(summary),
		statusStyle.Render(m.status),
		hintStyle.Render("c confirm · x reject · e edit · v validate · w write · q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the review screen and returns the reviewed set.
func Run(set *mapping.Set, source, target *contract.Contract, path string) (*mapping.Set, error) {
	final, err := tea.NewProgram(New(set, source, target, path), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	return final.(Model).Set(), nil
}
