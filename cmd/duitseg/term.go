package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mjl-/duitseg"
	"github.com/mjl-/duitseg/term"
)

type termOptions struct {
	variant string
	spacing int
	full    bool
}

func newTermCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &termOptions{}

	cmd := &cobra.Command{
		Use:   "term [label ...]",
		Short: "Show a view switcher in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "horizontal", "Direction of entries: horizontal or vertical")
	cmd.Flags().IntVar(&opts.spacing, "spacing", 1, "Cells between entries")
	cmd.Flags().BoolVar(&opts.full, "full", false, "Use the full terminal width or height")

	return cmd
}

// termApp is the program around the view switcher. It owns the state.
type termApp struct {
	state *duitseg.State[string]
	bar   term.Model
	log   zerolog.Logger
}

func newTermApp(labels []string, v duitseg.Variant, theme *duitseg.Theme, log zerolog.Logger) *termApp {
	if len(labels) == 0 {
		labels = []string{"Home", "Files", "Settings"}
	}
	state := &duitseg.State[string]{}
	for _, l := range labels {
		state.Insert(l, "This is "+strings.ToLower(l)+".")
	}
	state.Activate(state.KeyAt(0))

	bar := term.New(state, v, duitseg.StyleViewSwitcher)
	bar.Theme = theme
	return &termApp{state: state, bar: bar, log: log}
}

func (a *termApp) Init() tea.Cmd {
	return a.bar.Init()
}

func (a *termApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		}
	case term.ActivateMsg:
		a.state.Activate(msg.Key)
		label, _ := a.state.Label(msg.Key)
		a.log.Debug().Uint64("key", uint64(msg.Key)).Str("label", label).Msg("activate")
		return a, nil
	}
	m, cmd := a.bar.Update(msg)
	a.bar = m.(term.Model)
	return a, cmd
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func (a *termApp) View() string {
	text, _ := a.state.ActiveData()
	help := helpStyle.Render("arrows/tab: switch · click: switch · q: quit")
	content := lipgloss.NewStyle().Padding(1, 2).Render(text)
	if _, ok := a.bar.Variant.(duitseg.Vertical); ok {
		return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, a.bar.View(), content), help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.bar.View(), content, help)
}

func runTerm(cmd *cobra.Command, rootFlags *rootFlags, opts *termOptions, args []string) error {
	// Logs would garble the screen, they only go to the log file, if any.
	log, closeLog, err := rootFlags.logger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	v, err := parseVariant(opts.variant)
	if err != nil {
		return err
	}
	theme, err := rootFlags.theme()
	if err != nil {
		return err
	}

	app := newTermApp(args, v, theme, log)
	app.bar.Spacing = opts.spacing
	app.bar.Full = opts.full

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
