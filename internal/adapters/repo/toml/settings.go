package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// SettingsRepository stores preferences in their own file, separate from
// the profile: logout clears the profile but keeps the theme.
type SettingsRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(cfg *viper.Viper) (*SettingsRepository, error) {
	path, err := resolvePath(cfg, settingsPathKey, settingsFile)
	if err != nil {
		return nil, err
	}

	return &SettingsRepository{path: path, mu: lockForPath(path)}, nil
}

// Theme returns the stored preference, defaulting to ThemeSystem when
// nothing is stored yet.
func (r *SettingsRepository) Theme(ctx context.Context) (domain.Theme, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", err
	}

	if file.Theme == "" {
		return domain.ThemeSystem, nil
	}

	theme := domain.Theme(file.Theme)
	if !theme.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTheme, file.Theme)
	}

	return theme, nil
}

func (r *SettingsRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTheme, theme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.Theme = string(theme)
	file.applyDefaults()

	return writeAtomic(r.path, file)
}

func (r *SettingsRepository) readSchema() (settingsFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settingsFileSchema{}, nil
		}
		return settingsFileSchema{}, fmt.Errorf("read settings file: %w", err)
	}

	var file settingsFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return settingsFileSchema{}, fmt.Errorf("decode settings file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return settingsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
