package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodScoreLabelsAndEmoji(t *testing.T) {
	tests := []struct {
		name  string
		score MoodScore
		label string
		emoji string
	}{
		{name: "great", score: MoodGreat, label: "Super", emoji: "😄"},
		{name: "good", score: MoodGood, label: "Bien", emoji: "🙂"},
		{name: "okay", score: MoodOkay, label: "Neutre", emoji: "😐"},
		{name: "low", score: MoodLow, label: "Bof", emoji: "😔"},
		{name: "bad", score: MoodBad, label: "Difficile", emoji: "😢"},
		{name: "out of range", score: MoodScore(9), label: "?", emoji: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.score.Label())
			assert.Equal(t, tt.emoji, tt.score.Emoji())
		})
	}
}

func TestMoodScoreValidBounds(t *testing.T) {
	assert.False(t, MoodScore(0).Valid())
	assert.True(t, MoodBad.Valid())
	assert.True(t, MoodGreat.Valid())
	assert.False(t, MoodScore(6).Valid())
}

func TestThemeResolve(t *testing.T) {
	tests := []struct {
		name       string
		theme      Theme
		systemDark bool
		want       Theme
	}{
		{name: "light stays light", theme: ThemeLight, systemDark: true, want: ThemeLight},
		{name: "dark stays dark", theme: ThemeDark, systemDark: false, want: ThemeDark},
		{name: "system follows dark signal", theme: ThemeSystem, systemDark: true, want: ThemeDark},
		{name: "system follows light signal", theme: ThemeSystem, systemDark: false, want: ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.theme.Resolve(tt.systemDark))
		})
	}
}

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeSystem.Valid())
	assert.False(t, Theme("sepia").Valid())
	assert.False(t, Theme("").Valid())
}

func TestNameFromEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "plain address", email: "alice@example.com", want: "alice"},
		{name: "dotted local part", email: "jean.dupont@example.fr", want: "jean.dupont"},
		{name: "no at sign falls back to input", email: "alice", want: "alice"},
		{name: "empty local part falls back to input", email: "@example.com", want: "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameFromEmail(tt.email))
		})
	}
}

func TestIdentityValidate(t *testing.T) {
	identity := Identity{ID: "user-1", Email: "alice@example.com", Name: "Alice"}
	require.NoError(t, identity.Validate())

	for _, broken := range []Identity{
		{Email: "alice@example.com", Name: "Alice"},
		{ID: "user-1", Name: "Alice"},
		{ID: "user-1", Email: "alice@example.com"},
		{ID: " ", Email: "alice@example.com", Name: "Alice"},
	} {
		assert.ErrorIs(t, broken.Validate(), ErrMalformedProfile)
	}
}

func TestIdentityIsZero(t *testing.T) {
	assert.True(t, Identity{}.IsZero())
	assert.False(t, Identity{Email: "alice@example.com"}.IsZero())
}
