package commands

import (
	"fmt"

	"github.com/gymmanagement/gym/internal/cli/api"
	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change your own profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		user, err := apiClient.GetUser(cfg.UserID)
		if err != nil {
			return fmt.Errorf("fetching profile: %w", err)
		}
		if flagJSON {
			output.JSON(user)
			return nil
		}
		output.UserInfo(*user)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change name, email, password or body measurements",
	Long: `Only the flags you pass are sent. Changing height or weight recomputes BMI.

  gymctl profile update --weight 72.5
  gymctl profile update --name "Jane Smith" --email jane.smith@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		upd := userUpdateFromFlags(cmd)
		if upd == (api.UserUpdate{}) {
			return fmt.Errorf("nothing to update, pass at least one flag")
		}

		user, err := apiClient.UpdateUser(cfg.UserID, upd)
		if err != nil {
			return fmt.Errorf("updating profile: %w", err)
		}
		if flagJSON {
			output.JSON(user)
			return nil
		}
		output.UserInfo(*user)
		return nil
	},
}

var (
	updName     string
	updEmail    string
	updPassword string
	updRole     string
	updAge      int
	updHeight   float64
	updWeight   float64
)

func addUserUpdateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&updName, "name", "", "New name")
	cmd.Flags().StringVar(&updEmail, "email", "", "New email")
	cmd.Flags().StringVar(&updPassword, "password", "", "New password")
	cmd.Flags().IntVar(&updAge, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&updHeight, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&updWeight, "weight", 0, "Weight in kg")
}

func userUpdateFromFlags(cmd *cobra.Command) api.UserUpdate {
	var upd api.UserUpdate
	flags := cmd.Flags()
	if flags.Changed("name") {
		upd.Name = &updName
	}
	if flags.Changed("email") {
		upd.Email = &updEmail
	}
	if flags.Changed("password") {
		upd.Password = &updPassword
	}
	if flags.Changed("role") {
		upd.Role = &updRole
	}
	if flags.Changed("age") {
		upd.Age = &updAge
	}
	if flags.Changed("height") {
		upd.Height = &updHeight
	}
	if flags.Changed("weight") {
		upd.Weight = &updWeight
	}
	return upd
}

func init() {
	addUserUpdateFlags(profileUpdateCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
