package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

func loginCmd(apiURL *string) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = prompt(cmd, "Email: ")
			}
			if password == "" {
				password = prompt(cmd, "Password: ")
			}

			c := newClient(apiURL)
			resp, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return renderClientError(err)
			}
			if !resp.Success {
				return fmt.Errorf("login failed: %s", resp.Message)
			}

			store, err := newSessionStore()
			if err != nil {
				return err
			}
			if err := store.Save(resp.User); err != nil {
				return err
			}

			cmd.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	return cmd
}

func signupCmd(apiURL *string) *cobra.Command {
	var (
		email      string
		password   string
		enrollment string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = prompt(cmd, "Email: ")
			}
			if password == "" {
				password = prompt(cmd, "Password: ")
			}
			if enrollment == "" {
				enrollment = prompt(cmd, "Enrollment number: ")
			}

			c := newClient(apiURL)
			resp, err := c.Signup(cmd.Context(), dto.SignupRequest{
				Email:            email,
				Password:         password,
				EnrollmentNumber: enrollment,
				Name:             name,
			})
			if err != nil {
				return renderClientError(err)
			}
			if !resp.Success {
				return fmt.Errorf("signup failed: %s", resp.Message)
			}

			// Signup answers with a success flag only; the account logs
			// in as a separate step.
			cmd.Println("Account created. Log in to continue.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&enrollment, "enrollment", "", "Enrollment number")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the email's local part)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newSessionStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			cmd.Println("Logged out.")
			return nil
		},
	}
}

func prompt(cmd *cobra.Command, label string) string {
	cmd.Print(label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
