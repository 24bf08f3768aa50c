package commands

import (
	"fmt"

	"github.com/gymmanagement/gym/internal/cli/api"
	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	flagWorkoutUser    string
	flagWorkoutTitle   string
	flagWorkoutSets    int
	flagWorkoutReps    int
	flagWorkoutRest    int
	flagWorkoutDone    bool
	flagWorkoutVersion int
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List, assign and complete workouts",
}

var workoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every workout, or one member's with --user (admins)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		var (
			workouts []api.Workout
			err      error
		)
		if flagWorkoutUser != "" {
			workouts, err = apiClient.UserWorkouts(flagWorkoutUser)
		} else {
			if err := requireAdmin(); err != nil {
				return err
			}
			workouts, err = apiClient.ListWorkouts()
		}
		if err != nil {
			return fmt.Errorf("listing workouts: %w", err)
		}
		return renderWorkouts(workouts)
	},
}

var workoutsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List the workouts assigned to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		workouts, err := apiClient.MyWorkouts()
		if err != nil {
			return fmt.Errorf("listing workouts: %w", err)
		}
		return renderWorkouts(workouts)
	},
}

var workoutsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		workout, err := apiClient.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("fetching workout: %w", err)
		}
		return renderWorkout(workout)
	},
}

var workoutsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assign a new workout to a member (admins)",
	Long: `Assign a new workout to a member.

  gymctl workouts create --user <member id> --title Squat --sets 3 --reps 10 --rest 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		if flagWorkoutUser == "" || flagWorkoutTitle == "" {
			return fmt.Errorf("--user and --title are required")
		}
		workout, err := apiClient.CreateWorkout(api.WorkoutRequest{
			EventTitle: flagWorkoutTitle,
			Sets:       flagWorkoutSets,
			RepsOrSecs: flagWorkoutReps,
			RestTime:   flagWorkoutRest,
			UserID:     flagWorkoutUser,
		})
		if err != nil {
			return fmt.Errorf("creating workout: %w", err)
		}
		return renderWorkout(workout)
	},
}

var workoutsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a workout (admins)",
	Long: `Change a workout. Only the flags you pass are sent. With --version the
update is rejected when someone else changed the workout first.

  gymctl workouts update <id> --sets 4 --version 2
  gymctl workouts update <id> --user <other member id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		var upd api.WorkoutUpdate
		flags := cmd.Flags()
		if flags.Changed("title") {
			upd.EventTitle = &flagWorkoutTitle
		}
		if flags.Changed("sets") {
			upd.Sets = &flagWorkoutSets
		}
		if flags.Changed("reps") {
			upd.RepsOrSecs = &flagWorkoutReps
		}
		if flags.Changed("rest") {
			upd.RestTime = &flagWorkoutRest
		}
		if flags.Changed("completed") {
			upd.IsCompleted = &flagWorkoutDone
		}
		if flags.Changed("user") {
			upd.UserID = &flagWorkoutUser
		}
		if flags.Changed("version") {
			upd.Version = &flagWorkoutVersion
		}

		workout, err := apiClient.UpdateWorkout(args[0], upd)
		if err != nil {
			return fmt.Errorf("updating workout: %w", err)
		}
		return renderWorkout(workout)
	},
}

var workoutsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a workout between done and not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		workout, err := apiClient.ToggleWorkout(args[0], flagWorkoutVersion)
		if err != nil {
			return fmt.Errorf("toggling workout: %w", err)
		}
		if flagJSON {
			output.JSON(workout)
			return nil
		}
		state := "not done"
		if workout.IsCompleted {
			state = "done"
		}
		printf("%s is now %s (version %d)\n", workout.EventTitle, state, workout.Version)
		return nil
	},
}

var workoutsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout (admins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		if err := apiClient.DeleteWorkout(args[0]); err != nil {
			return fmt.Errorf("deleting workout: %w", err)
		}
		printf("Deleted workout %s\n", args[0])
		return nil
	},
}

var workoutsImageCmd = &cobra.Command{
	Use:   "image <id> <file>",
	Short: "Attach an image to a workout (admins)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		workout, err := apiClient.UploadWorkoutImage(args[0], args[1])
		if err != nil {
			return fmt.Errorf("uploading image: %w", err)
		}
		return renderWorkout(workout)
	},
}

var workoutsStatsCmd = &cobra.Command{
	Use:   "stats [user id]",
	Short: "Completion statistics for a member, yourself by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		stats, err := apiClient.WorkoutStats(selfOr(args))
		if err != nil {
			return fmt.Errorf("fetching stats: %w", err)
		}
		if flagJSON {
			output.JSON(stats)
			return nil
		}
		output.Stats(*stats)
		return nil
	},
}

func renderWorkouts(workouts []api.Workout) error {
	if flagJSON {
		output.JSON(workouts)
		return nil
	}
	output.WorkoutTable(workouts)
	return nil
}

func renderWorkout(workout *api.Workout) error {
	if flagJSON {
		output.JSON(workout)
		return nil
	}
	output.WorkoutDetail(*workout)
	return nil
}

func init() {
	workoutsListCmd.Flags().StringVar(&flagWorkoutUser, "user", "", "Only this member's workouts")

	for _, cmd := range []*cobra.Command{workoutsCreateCmd, workoutsUpdateCmd} {
		cmd.Flags().StringVar(&flagWorkoutUser, "user", "", "Member the workout is assigned to")
		cmd.Flags().StringVar(&flagWorkoutTitle, "title", "", "Exercise name")
		cmd.Flags().IntVar(&flagWorkoutSets, "sets", 0, "Number of sets")
		cmd.Flags().IntVar(&flagWorkoutReps, "reps", 0, "Repetitions, or seconds for timed exercises")
		cmd.Flags().IntVar(&flagWorkoutRest, "rest", 0, "Rest between sets in seconds")
	}
	workoutsUpdateCmd.Flags().BoolVar(&flagWorkoutDone, "completed", false, "Completion state")
	workoutsUpdateCmd.Flags().IntVar(&flagWorkoutVersion, "version", 0, "Expected current version")
	workoutsToggleCmd.Flags().IntVar(&flagWorkoutVersion, "version", 0, "Expected current version")

	workoutsCmd.AddCommand(
		workoutsListCmd, workoutsMineCmd, workoutsGetCmd, workoutsCreateCmd, workoutsUpdateCmd,
		workoutsToggleCmd, workoutsDeleteCmd, workoutsImageCmd, workoutsStatsCmd,
	)
	rootCmd.AddCommand(workoutsCmd)
}
