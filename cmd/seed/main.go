// Команда seed заполняет базу тестовыми данными для локальной разработки.
package main

import (
	"fmt"
	"time"

	"contest_backend/internal/app"
	"contest_backend/internal/config"
	"contest_backend/internal/logger"
	"contest_backend/internal/models"
	"contest_backend/internal/storage"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	userCount     = 25
	contestCount  = 15
	voteCount     = 50
	maxMediaItems = 5
)

var awardSeeds = []struct{ name, icon string }{
	{"Best Photography", "📸"},
	{"Most Creative", "🎨"},
	{"People's Choice", "👥"},
	{"Technical Excellence", "⚙️"},
	{"Innovation Award", "💡"},
}

type summary struct {
	users, profiles, contests, awards, participations, votes, media int
}

func main() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := app.OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Database initialization failed", "error", err)
	}

	logger.Info("Running seed...")
	start := time.Now()

	var s summary
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		s, err = seed(tx, gofakeit.New(0))
		return err
	})
	if err != nil {
		logger.Fatal("Seed failed", "error", err)
	}

	fmt.Printf("Seed completed in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println("Created:")
	fmt.Printf("   - %d users\n", s.users)
	fmt.Printf("   - %d profiles\n", s.profiles)
	fmt.Printf("   - %d contests\n", s.contests)
	fmt.Printf("   - %d awards\n", s.awards)
	fmt.Printf("   - %d participations\n", s.participations)
	fmt.Printf("   - %d votes\n", s.votes)
	fmt.Printf("   - %d media\n", s.media)
}

func seed(tx *gorm.DB, f *gofakeit.Faker) (summary, error) {
	var s summary

	// Пользователи: первый ADMIN, второй MODERATOR
	profiles := make([]models.Profile, 0, userCount)
	for i := 0; i < userCount; i++ {
		role := models.UserRoleUser
		switch i {
		case 0:
			role = models.UserRoleAdmin
		case 1:
			role = models.UserRoleModerator
		}

		user := models.User{
			Email:           f.Email(),
			EmailVerified:   true,
			Username:        ptr(fmt.Sprintf("%s%d", f.Username(), i)),
			DisplayUsername: ptr(f.Name()),
			Name:            f.Name(),
			Image:           ptr(f.URL()),
			Role:            role,
		}
		if err := tx.Create(&user).Error; err != nil {
			return s, fmt.Errorf("create user: %w", err)
		}
		s.users++

		profile := models.Profile{
			UserID:             user.ID,
			Bio:                ptr(f.Paragraph(1, 3, 12, " ")),
			AvatarURL:          ptr(f.URL()),
			Phone:              ptr(f.Phone()),
			Address:            ptr(f.Street()),
			City:               ptr(f.City()),
			Country:            ptr(f.Country()),
			PostalCode:         ptr(f.Zip()),
			DateOfBirth:        ptr(f.DateRange(time.Now().AddDate(-65, 0, 0), time.Now().AddDate(-18, 0, 0))),
			Gender:             ptr(models.Gender(f.RandomString([]string{"Male", "Female", "Non-binary"}))),
			HobbiesAndPassions: ptr(f.Sentence(8)),
			PaidVoterMessage:   ptr(f.Sentence(8)),
			FreeVoterMessage:   ptr(f.Sentence(8)),
		}
		if err := tx.Create(&profile).Error; err != nil {
			return s, fmt.Errorf("create profile: %w", err)
		}
		profiles = append(profiles, profile)
		s.profiles++
	}

	contests := make([]models.Contest, 0, contestCount)
	now := time.Now().UTC()
	for i := 0; i < contestCount; i++ {
		startDate := f.DateRange(now.AddDate(0, -1, 0), now.AddDate(0, 3, 0)).UTC()
		contest := models.Contest{
			Name:        f.Company() + " " + f.RandomString([]string{"Awards", "Challenge", "Contest", "Open"}),
			Description: ptr(f.Paragraph(1, 3, 12, " ")),
			PrizePool:   decimal.NewFromFloat(f.Price(1000, 10000)).Round(2),
			StartDate:   startDate,
			EndDate:     startDate.AddDate(0, 0, f.IntRange(7, 365)),
		}
		if err := tx.Create(&contest).Error; err != nil {
			return s, fmt.Errorf("create contest: %w", err)
		}
		contests = append(contests, contest)
		s.contests++
	}

	for i, a := range awardSeeds {
		award := models.Award{
			Name:      a.name,
			Icon:      a.icon,
			ContestID: contests[i%len(contests)].ID,
		}
		if err := tx.Create(&award).Error; err != nil {
			return s, fmt.Errorf("create award: %w", err)
		}
		s.awards++
	}

	for _, contest := range contests {
		for _, profile := range profiles {
			if !f.Bool() {
				continue
			}
			p := models.ContestParticipation{
				ProfileID:       profile.ID,
				ContestID:       contest.ID,
				CoverImage:      ptr(f.URL()),
				IsApproved:      f.Bool(),
				IsParticipating: f.Bool(),
			}
			if err := tx.Create(&p).Error; err != nil {
				return s, fmt.Errorf("create participation: %w", err)
			}
			s.participations++
		}
	}

	for i := 0; i < voteCount; i++ {
		voterIdx := f.IntN(len(profiles))
		// сдвиг на 1..n-1 гарантирует voter != votee
		voteeIdx := (voterIdx + 1 + f.IntN(len(profiles)-1)) % len(profiles)

		vote := models.Vote{
			VoterID:   profiles[voterIdx].ID,
			VoteeID:   profiles[voteeIdx].ID,
			ContestID: contests[f.IntN(len(contests))].ID,
			Type:      models.VoteType(f.RandomString([]string{"FREE", "PAID"})),
		}
		if err := tx.Create(&vote).Error; err != nil {
			return s, fmt.Errorf("create vote: %w", err)
		}
		s.votes++
	}

	for _, profile := range profiles {
		n := f.IntRange(1, maxMediaItems)
		for i := 0; i < n; i++ {
			fileName := f.Word() + "." + f.RandomString([]string{"jpg", "png", "webp"})
			media := models.Media{
				Key:              storage.NewObjectKey(profile.ID, fileName),
				Name:             fileName,
				URL:              f.URL(),
				Size:             int64(f.IntRange(1000, 10_000_000)),
				Type:             f.RandomString([]string{"image/jpeg", "image/png", "image/webp"}),
				OriginalFileName: fileName,
				Status:           models.MediaStatus(f.RandomString([]string{"PROCESSING", "COMPLETED", "FAILED"})),
				ProfileID:        profile.ID,
			}
			if err := tx.Create(&media).Error; err != nil {
				return s, fmt.Errorf("create media: %w", err)
			}
			s.media++
		}
	}

	return s, nil
}

func ptr[T any](v T) *T {
	return &v
}
