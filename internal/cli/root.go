// Package cli implements the campusctl command tree. Each command is a
// thin view over the client data layer.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anirudh/campusconnect/internal/client"
	"github.com/anirudh/campusconnect/internal/config"
	"github.com/anirudh/campusconnect/internal/session"
)

const defaultAPIURL = "http://localhost:8080"

// Execute runs the root command.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// RootCmd builds the campusctl command tree.
func RootCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "campusctl",
		Short: "Browse campus events and clubs, and register for events",
		Long: `Campusctl is the command-line front end of CampusConnect.

It lists campus events and clubs, searches across both, and manages
your account and event registrations. Sign up or log in once; the
session persists until you log out.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&apiURL, "api", config.GetEnv("CAMPUSCONNECT_API", defaultAPIURL), "Base URL of the CampusConnect API")

	cmd.AddCommand(
		loginCmd(&apiURL),
		signupCmd(&apiURL),
		logoutCmd(),
		eventsCmd(&apiURL),
		clubsCmd(&apiURL),
		searchCmd(&apiURL),
		profileCmd(&apiURL),
		registerCmd(&apiURL),
	)

	return cmd
}

func newClient(apiURL *string) *client.Client {
	return client.New(*apiURL, nil)
}

func newSessionStore() (*session.Store, error) {
	store, err := session.NewStore()
	if err != nil {
		return nil, fmt.Errorf("session storage unavailable: %w", err)
	}
	return store, nil
}

// renderClientError turns a data-layer failure into the one-line message
// views print. Network failures get a retry hint instead of a raw error.
func renderClientError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case client.NetworkError:
			return fmt.Errorf("could not reach the server, please try again (%s)", apiErr.Message)
		case client.ServerError:
			return fmt.Errorf("server error: %s", apiErr.Message)
		}
	}
	return err
}
