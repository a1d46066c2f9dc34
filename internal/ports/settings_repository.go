package ports

import (
	"context"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

// SettingsRepository stores user preferences separately from the profile,
// so clearing the profile at logout leaves preferences intact.
type SettingsRepository interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
