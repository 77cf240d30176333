// Package cli provides the command-line interface for aide.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/samba-rgb/AIDE/internal/db"
	"github.com/samba-rgb/AIDE/internal/search"
	"github.com/samba-rgb/AIDE/internal/session"
	"github.com/samba-rgb/AIDE/internal/tui"
)

var (
	database *db.DB
	sess     *session.Session

	dbPath    string
	assumeYes bool
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "aide",
	Short: "Personal task and note manager with fuzzy name resolution",
	Long: `aide - tasks, notes, and configuration, addressed by name

Names are resolved fuzzily: typos and abbreviations are matched against
existing entries and confirmed before anything is created or changed.

Quick Start:
  aide task "fix login bug"          # Create or open a task
  aide create notes                  # Create a text aide
  aide add notes "rotate the certs"  # Attach data to an aide
  aide set editor vim                # Set a configuration value
  aide tui                           # Browse tasks and aides`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		database, err = db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		var confirm search.Confirmer = search.NewConsoleConfirmer(os.Stdin, os.Stdout)
		if assumeYes {
			confirm = search.AssumeYes{}
		}

		sess, err = session.New(database, confirm)
		if err != nil {
			return fmt.Errorf("failed to build session: %w", err)
		}
		return nil
	},
	// Bare "aide" drops straight into the browser.
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(sess)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if database != nil {
			database.Close()
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default ~/.aide/aide.db)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Accept fuzzy-match suggestions without prompting")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(clearCmd)
}

// reportOutcome prints declined confirmations and misses as normal
// messages, not failures. Returns true when err was one of those expected
// outcomes.
func reportOutcome(err error) bool {
	var nf *session.NotFoundError
	switch {
	case err == nil:
		return false
	case errors.Is(err, session.ErrCancelled):
		fmt.Println("Operation cancelled.")
		return true
	case errors.As(err, &nf):
		fmt.Printf("%s.\n", capitalize(nf.Error()))
		return true
	}
	return false
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("aide version 1.0.0 (Go)")
	},
}

var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"reset"},
	Short:   "Clear all tasks and aides (WARNING: destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.Clear(); err != nil {
			return err
		}
		fmt.Println("All data cleared successfully!")
		return nil
	},
}
