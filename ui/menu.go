package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"proxyctl/core"
	"proxyctl/logger"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenMain screen = iota
	screenBypass
	screenPrompt
	screenConfirmClear
)

// prompt is a single line of input requested from the user. submit runs with
// the entered text once it passes the blank check.
type prompt struct {
	label      string
	allowBlank bool
	blankMsg   string
	submit     func(m *Menu, value string)
}

// Menu is the bubbletea model behind interactive mode.
type Menu struct {
	cfg      *core.Configurator
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	dim      lipgloss.Style

	screen screen
	back   screen
	prompt prompt
	input  textinput.Model

	pendingServer string
	output        bytes.Buffer
	quitting      bool
}

func NewMenu(cfg *core.Configurator, renderer *lipgloss.Renderer) *Menu {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 2048

	return &Menu{
		cfg:      cfg,
		renderer: renderer,
		title:    renderer.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		dim:      renderer.NewStyle().Foreground(lipgloss.Color("8")),
		input:    ti,
	}
}

// RunMenu runs the interactive menu until the user exits.
func RunMenu(cfg *core.Configurator, in io.Reader, out io.Writer) error {
	menu := NewMenu(cfg, lipgloss.NewRenderer(out))
	program := tea.NewProgram(menu, tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

func (m *Menu) Init() tea.Cmd {
	return nil
}

// Output is the text produced by the last action.
func (m *Menu) Output() string {
	return m.output.String()
}

func (m *Menu) printer() *Printer {
	return NewPrinterWithRenderer(&m.output, m.renderer)
}

func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenMain:
		return m.updateMain(key)
	case screenBypass:
		return m.updateBypass(key)
	case screenPrompt:
		return m.updatePrompt(key)
	case screenConfirmClear:
		return m.updateConfirm(key)
	}
	return m, nil
}

func (m *Menu) updateMain(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "1":
		m.run(func(p *Printer) error {
			state, err := m.cfg.CheckStatus()
			if err == nil {
				p.Status(state)
			}
			return err
		})
	case "2":
		m.run(func(p *Printer) error {
			state, err := m.cfg.GetSettings()
			if err == nil {
				p.Settings(state)
			}
			return err
		})
	case "3":
		m.ask(screenMain, prompt{
			label:    "Enter proxy server (e.g. proxy.example.com:8080)",
			blankMsg: "Proxy server cannot be empty",
			submit: func(m *Menu, value string) {
				m.pendingServer = strings.TrimSpace(value)
				m.ask(screenMain, prompt{
					label:      "Enter bypass list (leave empty for " + core.DefaultBypass + ")",
					allowBlank: true,
					submit: func(m *Menu, value string) {
						m.run(func(p *Printer) error {
							result, err := m.cfg.SetProxy(m.pendingServer, strings.TrimSpace(value))
							if err == nil {
								p.ProxySet(result)
							}
							return err
						})
					},
				})
			},
		})
	case "4":
		m.run(func(p *Printer) error {
			result, err := m.cfg.DisableProxy()
			if err == nil {
				p.ProxyDisabled(result)
			}
			return err
		})
	case "5":
		m.output.Reset()
		m.screen = screenBypass
	case "6", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Menu) updateBypass(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "1":
		m.showBypass()
	case "2":
		m.ask(screenBypass, prompt{
			label:    "Enter new bypass list (semicolon separated)",
			blankMsg: "Bypass list cannot be empty",
			submit: func(m *Menu, value string) {
				m.run(func(p *Printer) error {
					result, err := m.cfg.SetBypass(value)
					if err == nil {
						p.BypassSet(result)
					}
					return err
				})
			},
		})
	case "3":
		m.ask(screenBypass, prompt{
			label:    "Enter item to add (e.g. *.example.com)",
			blankMsg: "Item cannot be empty",
			submit: func(m *Menu, value string) {
				m.run(func(p *Printer) error {
					result, err := m.cfg.AddBypass(value)
					if err == nil {
						p.BypassAdded(result)
					}
					return err
				})
			},
		})
	case "4":
		m.showBypass()
		m.ask(screenBypass, prompt{
			label:    "Enter item to remove",
			blankMsg: "Item cannot be empty",
			submit: func(m *Menu, value string) {
				m.run(func(p *Printer) error {
					result, err := m.cfg.RemoveBypass(value)
					if err == nil {
						p.BypassRemoved(result)
					}
					return err
				})
			},
		})
	case "5":
		m.output.Reset()
		m.screen = screenConfirmClear
	case "6", "q", "esc":
		m.output.Reset()
		m.screen = screenMain
	}
	return m, nil
}

func (m *Menu) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.output.Reset()
		m.printer().Warning("Operation cancelled")
		m.screen = m.back
		return m, nil
	case "enter":
		value := m.input.Value()
		current := m.prompt
		m.input.Reset()
		m.input.Blur()
		m.screen = m.back
		if strings.TrimSpace(value) == "" && !current.allowBlank {
			m.output.Reset()
			m.printer().Error("%s", current.blankMsg)
			return m, nil
		}
		current.submit(m, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Menu) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.screen = screenBypass
	if strings.EqualFold(key.String(), "y") {
		m.run(func(p *Printer) error {
			n, err := m.cfg.ClearBypass()
			if err == nil {
				p.BypassCleared(n)
			}
			return err
		})
		return m, nil
	}
	m.output.Reset()
	m.printer().Warning("Operation cancelled")
	return m, nil
}

func (m *Menu) showBypass() {
	m.run(func(p *Printer) error {
		items, err := m.cfg.ShowBypass()
		if err == nil {
			p.BypassItems(items)
		}
		return err
	})
}

// ask switches to the prompt screen. Output of the previous action stays
// visible above the prompt.
func (m *Menu) ask(back screen, next prompt) {
	m.back = back
	m.prompt = next
	m.input.Reset()
	m.input.Focus()
	m.screen = screenPrompt
}

// run replaces the output pane with whatever action prints.
func (m *Menu) run(action func(p *Printer) error) {
	m.output.Reset()
	p := m.printer()
	if err := action(p); err != nil {
		logger.Debug("Interactive action failed: %v", err)
		p.Failure(err)
	}
}

func (m *Menu) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.title.Render("Windows Proxy Configuration Tool"))
	b.WriteString("\n")
	if m.output.Len() > 0 {
		b.WriteString(m.output.String())
		b.WriteString("\n")
	}

	switch m.screen {
	case screenMain:
		b.WriteString(menuText("Main Menu",
			"Check Proxy Status",
			"Get Proxy Settings",
			"Set Proxy",
			"Disable Proxy",
			"Manage Bypass List",
			"Exit"))
	case screenBypass:
		b.WriteString(menuText("Bypass List Management",
			"Show Bypass List",
			"Set Bypass List (replace all)",
			"Add Item to Bypass List",
			"Remove Item from Bypass List",
			"Clear Bypass List",
			"Back to Main Menu"))
	case screenPrompt:
		b.WriteString(m.prompt.label)
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.dim.Render("enter to confirm, esc to cancel"))
	case screenConfirmClear:
		b.WriteString("Are you sure you want to clear the bypass list? (y/n)")
	}
	b.WriteString("\n")
	return b.String()
}

func menuText(title string, options ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)
	for i, option := range options {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, option)
	}
	fmt.Fprintf(&b, "Select option (1-%d): ", len(options))
	return b.String()
}
