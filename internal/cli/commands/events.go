package commands

import (
	"fmt"

	"github.com/gymmanagement/gym/internal/cli/api"
	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	flagEventTitle    string
	flagEventDate     string
	flagEventTime     string
	flagEventLocation string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and schedule gym events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events in date order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		events, err := apiClient.ListEvents()
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}
		if flagJSON {
			output.JSON(events)
			return nil
		}
		output.EventTable(events)
		return nil
	},
}

var eventsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		event, err := apiClient.GetEvent(args[0])
		if err != nil {
			return fmt.Errorf("fetching event: %w", err)
		}
		return renderEvent(event)
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule an event (admins)",
	Long: `Schedule an event. Dates are YYYY-MM-DD and times are 24-hour HH:MM.

  gymctl events create --title "Morning Yoga" --date 2026-05-01 --time 07:30 --location "Studio 2"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		event, err := apiClient.CreateEvent(api.EventRequest{
			Title:    flagEventTitle,
			Date:     flagEventDate,
			Time:     flagEventTime,
			Location: flagEventLocation,
		})
		if err != nil {
			return fmt.Errorf("creating event: %w", err)
		}
		return renderEvent(event)
	},
}

var eventsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an event (admins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		var upd api.EventUpdate
		flags := cmd.Flags()
		if flags.Changed("title") {
			upd.Title = &flagEventTitle
		}
		if flags.Changed("date") {
			upd.Date = &flagEventDate
		}
		if flags.Changed("time") {
			upd.Time = &flagEventTime
		}
		if flags.Changed("location") {
			upd.Location = &flagEventLocation
		}

		event, err := apiClient.UpdateEvent(args[0], upd)
		if err != nil {
			return fmt.Errorf("updating event: %w", err)
		}
		return renderEvent(event)
	},
}

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Cancel an event (admins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		if err := apiClient.DeleteEvent(args[0]); err != nil {
			return fmt.Errorf("deleting event: %w", err)
		}
		printf("Deleted event %s\n", args[0])
		return nil
	},
}

var eventsImageCmd = &cobra.Command{
	Use:   "image <id> <file>",
	Short: "Attach an image to an event (admins)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		event, err := apiClient.UploadEventImage(args[0], args[1])
		if err != nil {
			return fmt.Errorf("uploading image: %w", err)
		}
		return renderEvent(event)
	},
}

func renderEvent(event *api.Event) error {
	if flagJSON {
		output.JSON(event)
		return nil
	}
	output.EventDetail(*event)
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{eventsCreateCmd, eventsUpdateCmd} {
		cmd.Flags().StringVar(&flagEventTitle, "title", "", "Event title")
		cmd.Flags().StringVar(&flagEventDate, "date", "", "Date as YYYY-MM-DD")
		cmd.Flags().StringVar(&flagEventTime, "time", "", "Start time as HH:MM")
		cmd.Flags().StringVar(&flagEventLocation, "location", "", "Where it takes place")
	}

	eventsCmd.AddCommand(eventsListCmd, eventsGetCmd, eventsCreateCmd, eventsUpdateCmd, eventsDeleteCmd, eventsImageCmd)
	rootCmd.AddCommand(eventsCmd)
}
