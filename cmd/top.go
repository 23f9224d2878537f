package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
)

func init() {
	runner := &topRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "top",
		Short: "Shows a live view of the server and its players",
		Args:  cobra.NoArgs,
	}, runner)

	cmd.Flags().DurationVar(&runner.interval, "interval", 5*time.Second, "refresh interval")

	rootCmd.AddCommand(cmd.Command)
}

type topRunner struct {
	interval time.Duration
}

func (t *topRunner) RunE(cmd *cobra.Command, args []string) error {
	if t.interval < time.Second {
		return fmt.Errorf("the interval has to be at least 1s")
	}
	if !isInteractive() {
		return &commands.CliError{
			Text:        "webcraft top needs an interactive terminal",
			Suggestions: []string{"Use `webcraft players -o json` in scripts"},
		}
	}

	client, err := root.Client()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newTopModel(contextOf(cmd), client, t.interval), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	return final.(topModel).err
}

var (
	topTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	topSubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	topErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f86262"))
	topBoxStyle    = lipgloss.NewStyle().Margin(1, 2)
	topPlayerMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("●")
)

type topSnapshot struct {
	Server  *webcraft.ServerDto
	Count   *webcraft.PlayerCountDto
	Players []string
}

type snapshotMsg struct {
	snapshot *topSnapshot
	err      error
}

type refreshMsg time.Time

type topModel struct {
	ctx      context.Context
	client   *webcraft.Client
	interval time.Duration

	spinner  spinner.Model
	progress progress.Model
	width    int

	snapshot *topSnapshot
	lastErr  error
	updated  time.Time
	loading  bool
	// err ends the program
	err error
}

func newTopModel(ctx context.Context, client *webcraft.Client, interval time.Duration) topModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return topModel{
		ctx:      ctx,
		client:   client,
		interval: interval,
		spinner:  s,
		progress: p,
		loading:  true,
	}
}

func fetchSnapshot(ctx context.Context, client *webcraft.Client) (*topSnapshot, error) {
	server, err := client.Server.GetServerInfo(ctx)
	if err != nil {
		return nil, err
	}
	count, err := client.Players.GetCount(ctx)
	if err != nil {
		return nil, err
	}
	online, err := client.Players.GetOnlinePlayers(ctx)
	if err != nil {
		return nil, err
	}
	return &topSnapshot{Server: server, Count: count, Players: online.Players}, nil
}

func (m topModel) fetch() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := fetchSnapshot(m.ctx, m.client)
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func (m topModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m topModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = clamp(msg.Width-30, 10, 40)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "r":
			if !m.loading {
				m.loading = true
				return m, m.fetch()
			}
		}
	case snapshotMsg:
		m.loading = false
		m.updated = time.Now()
		if msg.err != nil {
			m.lastErr = msg.err
			// without a first snapshot there is nothing to show
			if m.snapshot == nil {
				m.err = msg.err
				return m, tea.Quit
			}
		} else {
			m.snapshot = msg.snapshot
			m.lastErr = nil
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg {
			return refreshMsg(t)
		})
	case refreshMsg:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.fetch()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m topModel) View() string {
	if m.snapshot == nil {
		return topBoxStyle.Render(m.spinner.View() + " Connecting to " + m.client.BaseURL())
	}

	b := strings.Builder{}
	server := m.snapshot.Server
	b.WriteString(topTitleStyle.Render(server.Name) + " " + topSubtleStyle.Render(server.Version) + "\n")
	if server.Motd != "" {
		b.WriteString(topSubtleStyle.Render(server.Motd) + "\n")
	}
	b.WriteString("\n")

	online := m.snapshot.Count.Online
	percent := 0.0
	if server.MaxPlayers > 0 {
		percent = float64(online) / float64(server.MaxPlayers)
	}
	b.WriteString(fmt.Sprintf("%s %d/%d players\n\n", m.progress.ViewAs(percent), online, server.MaxPlayers))

	for _, name := range m.snapshot.Players {
		b.WriteString(topPlayerMark.String() + " " + name + "\n")
	}
	if len(m.snapshot.Players) == 0 {
		b.WriteString(topSubtleStyle.Render("nobody is online") + "\n")
	}

	b.WriteString("\n")
	if m.lastErr != nil {
		b.WriteString(topErrStyle.Render("refresh failed: "+m.lastErr.Error()) + "\n")
	}
	status := "updated " + m.updated.Format("15:04:05")
	if m.loading {
		status = m.spinner.View() + " refreshing"
	}
	b.WriteString(topSubtleStyle.Render(status + " • r refresh • q quit"))

	return topBoxStyle.Render(b.String())
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
