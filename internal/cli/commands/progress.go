package commands

import (
	"fmt"

	"github.com/gymmanagement/gym/internal/cli/api"
	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Member completion progress and stored snapshots",
}

var progressAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Completion overview for every member (admins)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		progress, err := apiClient.AllProgress()
		if err != nil {
			return fmt.Errorf("fetching progress: %w", err)
		}
		if flagJSON {
			output.JSON(progress)
			return nil
		}
		output.ProgressTable(progress)
		return nil
	},
}

var progressMemberCmd = &cobra.Command{
	Use:   "member [user id]",
	Short: "Live progress for one member, yourself by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		p, err := apiClient.MemberProgress(selfOr(args))
		if err != nil {
			return fmt.Errorf("fetching progress: %w", err)
		}
		if flagJSON {
			output.JSON(p)
			return nil
		}
		printf("%s (%s)\n%s  %d of %d workouts done\n", p.Name, p.Email, output.ProgressBar(p.ProgressPercentage), p.CompletedWorkouts, p.TotalWorkouts)
		return nil
	},
}

var progressSnapshotCmd = &cobra.Command{
	Use:   "snapshot <user id>",
	Short: "Store a progress snapshot for a member now (admins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		snapshot, err := apiClient.RecordSnapshot(args[0])
		if err != nil {
			return fmt.Errorf("recording snapshot: %w", err)
		}
		if flagJSON {
			output.JSON(snapshot)
			return nil
		}
		printf("Recorded %d%% (%d of %d) for %s\n", snapshot.ProgressPercentage, snapshot.CompletedWorkouts, snapshot.TotalWorkouts, snapshot.TraineeID)
		return nil
	},
}

var progressLatestCmd = &cobra.Command{
	Use:   "latest [user id]",
	Short: "Most recent stored snapshot, yours by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		snapshot, err := apiClient.LatestSnapshot(selfOr(args))
		if err != nil {
			return fmt.Errorf("fetching snapshot: %w", err)
		}
		if flagJSON {
			output.JSON(snapshot)
			return nil
		}
		output.SnapshotTable([]api.Snapshot{*snapshot})
		return nil
	},
}

var progressShowCmd = &cobra.Command{
	Use:   "show <snapshot id>",
	Short: "One stored snapshot by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		snapshot, err := apiClient.GetSnapshot(args[0])
		if err != nil {
			return fmt.Errorf("fetching snapshot: %w", err)
		}
		if flagJSON {
			output.JSON(snapshot)
			return nil
		}
		output.SnapshotTable([]api.Snapshot{*snapshot})
		return nil
	},
}

var progressHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Every stored snapshot, newest first (admins)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		snapshots, err := apiClient.ListSnapshots()
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}
		if flagJSON {
			output.JSON(snapshots)
			return nil
		}
		output.SnapshotTable(snapshots)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressAllCmd, progressMemberCmd, progressSnapshotCmd, progressLatestCmd, progressShowCmd, progressHistoryCmd)
	rootCmd.AddCommand(progressCmd)
}
