package commands

import (
	"fmt"
	"strings"

	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	flagMemberRole   string
	flagMemberSearch string
	flagPage         int
	flagLimit        int
	flagForce        bool
)

var membersCmd = &cobra.Command{
	Use:     "members",
	Aliases: []string{"users"},
	Short:   "Manage gym accounts (admins)",
}

var membersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long: `List accounts, members only by default.

  gymctl members list
  gymctl members list --role all --search jane
  gymctl members list --page 2 --limit 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		role := flagMemberRole
		if role == "all" {
			role = ""
		}

		users, pagination, err := apiClient.ListUsers(role, flagMemberSearch, flagPage, flagLimit)
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		if flagJSON {
			output.JSON(users)
			return nil
		}
		output.UserTable(users)
		if pagination != nil && pagination.TotalPages > 1 {
			printf("\nPage %d of %d (%d total)\n", pagination.Page, pagination.TotalPages, pagination.Total)
		}
		return nil
	},
}

var membersGetCmd = &cobra.Command{
	Use:   "get <id|email>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		fetch := apiClient.GetUser
		if strings.Contains(args[0], "@") {
			fetch = apiClient.GetUserByEmail
		}
		user, err := fetch(args[0])
		if err != nil {
			return fmt.Errorf("fetching user: %w", err)
		}
		if flagJSON {
			output.JSON(user)
			return nil
		}
		output.UserInfo(*user)
		return nil
	},
}

var membersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change another account, including its role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		upd := userUpdateFromFlags(cmd)
		user, err := apiClient.UpdateUser(args[0], upd)
		if err != nil {
			return fmt.Errorf("updating user: %w", err)
		}
		if flagJSON {
			output.JSON(user)
			return nil
		}
		output.UserInfo(*user)
		return nil
	},
}

var membersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account together with its workouts and progress history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		user, err := apiClient.GetUser(args[0])
		if err != nil {
			return fmt.Errorf("fetching user: %w", err)
		}
		if !flagForce && !confirm(fmt.Sprintf("Delete %s (%s) and all their workouts? This cannot be undone.", user.Name, user.Email)) {
			printf("Cancelled.\n")
			return nil
		}
		if err := apiClient.DeleteUser(args[0]); err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		printf("Deleted: %s\n", user.Email)
		return nil
	},
}

func init() {
	membersListCmd.Flags().StringVar(&flagMemberRole, "role", "member", "Filter by role: member, admin or all")
	membersListCmd.Flags().StringVar(&flagMemberSearch, "search", "", "Match name or email")
	membersListCmd.Flags().IntVar(&flagPage, "page", 1, "Page number")
	membersListCmd.Flags().IntVar(&flagLimit, "limit", 20, "Page size (max 100)")

	addUserUpdateFlags(membersUpdateCmd)
	membersUpdateCmd.Flags().StringVar(&updRole, "role", "", "New role: member or admin")

	membersDeleteCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Skip confirmation prompt")

	membersCmd.AddCommand(membersListCmd, membersGetCmd, membersUpdateCmd, membersDeleteCmd)
	rootCmd.AddCommand(membersCmd)
}
