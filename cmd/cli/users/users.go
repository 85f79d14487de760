package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucial707/blog-api/cmd/cli/api"
	"github.com/crucial707/blog-api/cmd/cli/config"
)

type authResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// ==========================
// CLI Command Init
// ==========================
func InitUsers(rootCmd *cobra.Command) {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Sign up, log in and log out",
		Long: `Create an account or log in to the blog API.
Stores the bearer token locally for the post commands.`,
	}

	userCmd.AddCommand(signupCmd(), loginCmd(), logoutCmd())
	rootCmd.AddCommand(userCmd)
}

// ==========================
// Signup
// ==========================
func signupCmd() *cobra.Command {
	var firstName, lastName, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res authResponse
			err := api.Call("POST", "/api/v1/user/signup", "", map[string]string{
				"firstName": firstName,
				"lastName":  lastName,
				"email":     email,
				"password":  password,
			}, &res)
			if err != nil {
				return fmt.Errorf("signup failed: %w", err)
			}
			if err := config.SaveToken(res.Token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed up as %s (id %s). Token saved.\n", email, res.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name (at least 2 characters)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name (at least 2 characters)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (8 to 15 characters)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

// ==========================
// Login
// ==========================
func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the token locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res authResponse
			err := api.Call("POST", "/api/v1/user/login", "", map[string]string{
				"email":    email,
				"password": password,
			}, &res)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if res.Token == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}
			if err := config.SaveToken(res.Token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

// ==========================
// Logout
// ==========================
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the locally saved token",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := config.ClearToken()
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "No user logged in.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully.")
			return nil
		},
	}
}
