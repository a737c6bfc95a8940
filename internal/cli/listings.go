package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/client"
)

func eventsCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List upcoming campus events",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(apiURL)
			events, err := c.FetchEvents(cmd.Context())
			if err != nil {
				return renderClientError(err)
			}
			printEvents(cmd, events)
			return nil
		},
	}
}

func clubsCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clubs",
		Short: "List campus clubs",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(apiURL)
			clubs, err := c.FetchClubs(cmd.Context())
			if err != nil {
				return renderClientError(err)
			}
			printClubs(cmd, clubs)
			return nil
		},
	}
}

func searchCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search events and clubs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			c := newClient(apiURL)

			result, err := client.DefaultSearcher(c).Search(cmd.Context(), query)
			if err != nil {
				return renderClientError(err)
			}

			cmd.Printf("Events (%d):\n", len(result.Events))
			printEvents(cmd, result.Events)
			cmd.Printf("\nClubs (%d):\n", len(result.Clubs))
			printClubs(cmd, result.Clubs)
			return nil
		},
	}
}

func printEvents(cmd *cobra.Command, events []dto.EventResponse) {
	if len(events) == 0 {
		cmd.Println("No events found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	writeRow(w, "ID", "DATE", "TIME", "TITLE", "VENUE", "CLUB")
	for _, event := range events {
		writeRow(w, itoa(event.ID), event.Date, event.Time, event.Title, event.Venue, event.Club)
	}
}

func printClubs(cmd *cobra.Command, clubs []dto.ClubResponse) {
	if len(clubs) == 0 {
		cmd.Println("No clubs found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	writeRow(w, "ID", "NAME", "DESCRIPTION")
	for _, club := range clubs {
		writeRow(w, itoa(club.ID), club.Name, club.Description)
	}
}

func writeRow(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
