package commands

import (
	"fmt"

	"github.com/gymmanagement/gym/internal/cli/api"
	"github.com/gymmanagement/gym/internal/cli/config"
	"github.com/gymmanagement/gym/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	flagEmail    string
	flagPassword string
	flagName     string
	flagAge      int
	flagHeight   float64
	flagWeight   float64
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	Long: `Sign in with email and password. The password is prompted for when
--password is omitted.

  gymctl login --email jane@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := flagEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := flagPassword
		if password == "" {
			password = prompt("Password: ")
		}

		result, err := apiClient.Login(email, password)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
		return storeSession(result)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a member account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagName == "" || flagEmail == "" {
			return fmt.Errorf("--name and --email are required")
		}
		password, confirmation := flagPassword, flagPassword
		if password == "" {
			password = prompt("Password: ")
			confirmation = prompt("Confirm password: ")
		}

		req := api.RegisterRequest{
			Name:            flagName,
			Email:           flagEmail,
			Password:        password,
			ConfirmPassword: confirmation,
		}
		if cmd.Flags().Changed("age") {
			req.Age = &flagAge
		}
		if cmd.Flags().Changed("height") {
			req.Height = &flagHeight
		}
		if cmd.Flags().Changed("weight") {
			req.Weight = &flagWeight
		}

		result, err := apiClient.Register(req)
		if err != nil {
			return fmt.Errorf("registering: %w", err)
		}
		return storeSession(result)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.SignOut()
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		printf("Logged out.\n")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		user, err := apiClient.Me()
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

func storeSession(result *api.AuthResult) error {
	cfg.SignIn(result.AccessToken, result.User.ID, result.User.Email, result.User.Role)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	printf("Logged in as %s (%s, %s)\n", result.User.Name, result.User.Email, result.User.Role)
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted when omitted)")

	registerCmd.Flags().StringVar(&flagName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&flagPassword, "password", "", "Password, at least 6 characters with a letter and a digit")
	registerCmd.Flags().IntVar(&flagAge, "age", 0, "Age in years")
	registerCmd.Flags().Float64Var(&flagHeight, "height", 0, "Height in cm")
	registerCmd.Flags().Float64Var(&flagWeight, "weight", 0, "Weight in kg")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
