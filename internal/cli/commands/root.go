package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gymmanagement/gym/internal/cli/api"
	"github.com/gymmanagement/gym/internal/cli/config"
	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagServerURL string

	cfg       *config.Config
	apiClient *api.Client

	stdin = bufio.NewReader(os.Stdin)
)

var rootCmd = &cobra.Command{
	Use:   "gymctl",
	Short: "gymctl manages members, workouts and events from the terminal",
	Long: `gymctl talks to the gym management API.

Get started:
  gymctl login --email admin@gym.com     Sign in and store the session
  gymctl workouts mine                   List your assigned workouts
  gymctl workouts toggle <id>            Mark a workout done or not done
  gymctl progress all                    Completion overview (admins)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagServerURL != "" {
			cfg.ServerURL = flagServerURL
		}
		apiClient = api.NewClient(cfg.ServerURL, cfg.Token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from config or http://localhost:8080)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func requireAuth() error {
	if cfg == nil || !cfg.HasToken() {
		return fmt.Errorf("not authenticated, run \"gymctl login\" first")
	}
	return nil
}

func requireAdmin() error {
	if err := requireAuth(); err != nil {
		return err
	}
	if !cfg.IsAdmin() {
		return fmt.Errorf("this command needs an admin session")
	}
	return nil
}

// selfOr returns args[0] when given, otherwise the logged-in user's id.
func selfOr(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.UserID
}

func prompt(label string) string {
	fmt.Fprint(output.Out, label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func confirm(question string) bool {
	answer := strings.ToLower(prompt(question + " [y/N] "))
	return answer == "y" || answer == "yes"
}

func printf(format string, args ...interface{}) {
	fmt.Fprintf(output.Out, format, args...)
}
