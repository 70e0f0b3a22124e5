package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringrun/internal/storage"
)

var (
	flagSessionsDB    string
	flagSessionsLimit int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the SSH session journal",
	Long: `List the most recent sessions played on 'ringrun serve'.

Examples:
  ringrun sessions
  ringrun sessions --limit 50 --db ./sessions.db`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagSessionsDB, "db", "~/.ringrun/sessions.db", "Path to session journal")
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 20, "Number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagSessionsDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	fmt.Println(titleStyle.Render("Ring Runner sessions"))
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println(sessionTable(sessions).View())
}

// sessionTable lays the journal out as a static table.
func sessionTable(sessions []storage.Session) table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 16},
		{Title: "User", Width: 14},
		{Title: "Remote", Width: 16},
		{Title: "Duration", Width: 10},
		{Title: "Frames", Width: 8},
		{Title: "Rounds", Width: 6},
	}

	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		duration := "live"
		if !s.Active() {
			duration = s.Duration().Round(time.Second).String()
		}
		rows = append(rows, table.Row{
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.User,
			s.Remote,
			duration,
			strconv.FormatUint(s.Frames, 10),
			strconv.Itoa(s.Rounds),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed table.
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles),
	)
}
