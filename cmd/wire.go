package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/viper"

	statusadapter "github.com/compagnon-app/compagnon-cli/internal/adapters/render/status"
	tomlrepo "github.com/compagnon-app/compagnon-cli/internal/adapters/repo/toml"
	"github.com/compagnon-app/compagnon-cli/internal/adapters/responder/canned"
	"github.com/compagnon-app/compagnon-cli/internal/application"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

type app struct {
	session        *application.SessionService
	ideas          *application.IdeasService
	journal        *application.JournalService
	moods          *application.MoodService
	chat           *application.ChatService
	settings       ports.SettingsRepository
	statusRenderer func(application.Overview, statusadapter.RenderOptions) (string, error)
	systemDark     func() bool
	now            func() time.Time
}

func wireApp() (*app, error) {
	profiles, err := tomlrepo.NewProfileRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	settings, err := tomlrepo.NewSettingsRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	clock := ports.SystemClock{}
	now := time.Now

	loginDelay := envDurationOrDefault("CPN_LOGIN_DELAY", time.Second)
	typingDelay := envDurationOrDefault("CPN_TYPING_DELAY", 1500*time.Millisecond)

	ideas := application.NewIdeasService(clock, nil)
	journal := application.NewJournalService(clock)
	moods := application.NewMoodService(clock)
	application.SeedSampleData(ideas, journal, moods, now())

	return &app{
		session:        application.NewSessionService(profiles, clock, loginDelay),
		ideas:          ideas,
		journal:        journal,
		moods:          moods,
		chat:           application.NewChatService(canned.New(), clock, typingDelay, canned.Greeting),
		settings:       settings,
		statusRenderer: statusadapter.Render,
		systemDark:     termenv.HasDarkBackground,
		now:            now,
	}, nil
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return parsed
}
