package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/client"
)

var errNotLoggedIn = errors.New("you are not logged in, run 'campusctl login' first")

func profileCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your account and registered events",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireSession()
			if err != nil {
				return err
			}

			c := newClient(apiURL)
			events, err := c.FetchUserEvents(cmd.Context(), user.ID)
			if err != nil {
				return renderClientError(err)
			}

			cmd.Printf("Name:       %s\n", user.Name)
			cmd.Printf("Email:      %s\n", user.Email)
			cmd.Printf("Enrollment: %s\n", user.EnrollmentNumber)
			cmd.Printf("\nRegistered events (%d):\n", len(events))
			printEvents(cmd, events)
			return nil
		},
	}
}

func registerCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "register <event-id>",
		Short: "Register for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireSession()
			if err != nil {
				return err
			}

			eventID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("event id must be a number")
			}

			c := newClient(apiURL)

			// Resolve the target event from the listing first; the
			// workflow refuses to start without a known event.
			events, err := c.FetchEvents(cmd.Context())
			if err != nil {
				return renderClientError(err)
			}
			target := findEvent(events, eventID)

			flow := client.NewRegistrationFlow(c, user.ID, target)
			state := flow.Start(cmd.Context())

			if state == client.StateSucceeded {
				cmd.Println(flow.Message())
				return nil
			}
			return errors.New(flow.Message())
		},
	}
}

func findEvent(events []dto.EventResponse, id int64) *dto.EventResponse {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

// requireSession loads the persisted user or fails with the log-in-first
// message.
func requireSession() (*dto.UserResponse, error) {
	store, err := newSessionStore()
	if err != nil {
		return nil, err
	}
	user, err := store.Load()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errNotLoggedIn
	}
	return user, nil
}
