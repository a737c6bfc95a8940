package seed

import (
	"context"
	"errors"
	"time"

	appModels "github.com/anirudh/campusconnect/internal/app/models"
	appRepos "github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData seeds a handful of clubs and events so a fresh install
// has something to browse. Tables that already hold rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	clubRepo := appRepos.NewClubRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Clubs/Events)...")
	var finalErr error

	clubCount, err := clubRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting clubs")
		return err
	}

	clubIDs := make(map[string]int64)
	if clubCount == 0 {
		clubs := []*appModels.Club{
			{Name: "Coding Club", LogoURL: "/logos/coding.png", Description: "Weekly programming contests, hack nights and workshops"},
			{Name: "Robotics Society", LogoURL: "/logos/robotics.png", Description: "Build and race robots, from line followers to drones"},
			{Name: "Drama Club", LogoURL: "/logos/drama.png", Description: "Stage productions, improv evenings and scriptwriting circles"},
			{Name: "Photography Club", LogoURL: "/logos/photo.png", Description: "Photo walks, darkroom sessions and the annual exhibition"},
		}
		for _, club := range clubs {
			if err := clubRepo.Create(ctx, club); err != nil {
				lgr.Error().Err(err).Str("club", club.Name).Msg("Error creating default club")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			clubIDs[club.Name] = club.ID
		}
	}

	eventCount, err := eventRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting events")
		return errors.Join(finalErr, err)
	}

	if eventCount == 0 && len(clubIDs) > 0 {
		clubID := func(name string) *int64 {
			if id, ok := clubIDs[name]; ok {
				return &id
			}
			return nil
		}

		base := time.Now().AddDate(0, 0, 7)
		events := []*appModels.Event{
			{
				Title:       "Intro to Go Workshop",
				Description: "Hands-on session covering the basics of the Go programming language",
				Date:        base,
				Time:        "17:00",
				Venue:       "Lab 204",
				URL:         "/images/events/go-workshop.jpg",
				ClubID:      clubID("Coding Club"),
			},
			{
				Title:       "Line Follower Challenge",
				Description: "Annual robot race across the mechatronics lab track",
				Date:        base.AddDate(0, 0, 3),
				Time:        "10:00",
				Venue:       "Mechatronics Lab",
				URL:         "/images/events/line-follower.jpg",
				ClubID:      clubID("Robotics Society"),
			},
			{
				Title:       "Open Mic Night",
				Description: "Improv, stand-up and short scenes, everyone welcome",
				Date:        base.AddDate(0, 0, 5),
				Time:        "19:30",
				Venue:       "Main Auditorium",
				URL:         "/images/events/open-mic.jpg",
				ClubID:      clubID("Drama Club"),
			},
		}
		for _, event := range events {
			if err := eventRepo.Create(ctx, event); err != nil {
				lgr.Error().Err(err).Str("event", event.Title).Msg("Error creating default event")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
