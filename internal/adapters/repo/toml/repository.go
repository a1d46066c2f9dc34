package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	profilePathKey  = "profile.path"
	settingsPathKey = "settings.path"
	fileMode        = 0o600
	dirMode         = 0o700
	configDir       = ".compagnon"
	profileFile     = "profile.toml"
	settingsFile    = "settings.toml"
	tempFilePattern = ".compagnon-*.toml.tmp"
)

// ProfileRepository stores the current identity in a single TOML file.
// Its absence means logged out.
type ProfileRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(cfg *viper.Viper) (*ProfileRepository, error) {
	path, err := resolvePath(cfg, profilePathKey, profileFile)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *ProfileRepository) Load(ctx context.Context) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Identity{}, domain.ErrProfileNotFound
		}
		return domain.Identity{}, fmt.Errorf("read profile file: %w", err)
	}

	var file profileFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Identity{}, fmt.Errorf("decode profile file: %w", domain.ErrMalformedProfile)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrMalformedProfile, err)
	}
	if file.Profile == nil {
		return domain.Identity{}, domain.ErrProfileNotFound
	}

	identity := identityFromSchema(*file.Profile)
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, err
	}

	return identity, nil
}

func (r *ProfileRepository) Save(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := profileFileSchema{Profile: identityToSchemaPtr(identity)}
	file.applyDefaults()

	return writeAtomic(r.path, file)
}

// Clear removes the stored profile. A missing file is not an error, so
// logout always succeeds.
func (r *ProfileRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove profile file: %w", err)
	}

	return nil
}

func resolvePath(cfg *viper.Viper, key, filename string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(key, filepath.Join(homeDir, configDir, filename))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return "", fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(key)
	if path == "" {
		return "", fmt.Errorf("%s is empty", key)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeAtomic(path string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}

	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp storage file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, fileMode); err != nil {
		return fmt.Errorf("chmod storage file: %w", err)
	}

	return nil
}
