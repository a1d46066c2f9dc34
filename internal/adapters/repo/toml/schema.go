package toml

import (
	"fmt"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

const currentSchemaVersion = 1

type profileFileSchema struct {
	Version int             `toml:"version"`
	Profile *identitySchema `toml:"profile,omitempty"`
}

func (s *profileFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s profileFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type identitySchema struct {
	ID     string `toml:"id"`
	Email  string `toml:"email"`
	Name   string `toml:"name"`
	Avatar string `toml:"avatar,omitempty"`
}

func identityToSchemaPtr(identity domain.Identity) *identitySchema {
	return &identitySchema{
		ID:     string(identity.ID),
		Email:  identity.Email,
		Name:   identity.Name,
		Avatar: identity.Avatar,
	}
}

func identityFromSchema(schema identitySchema) domain.Identity {
	return domain.Identity{
		ID:     domain.UserID(schema.ID),
		Email:  schema.Email,
		Name:   schema.Name,
		Avatar: schema.Avatar,
	}
}

type settingsFileSchema struct {
	Version int    `toml:"version"`
	Theme   string `toml:"theme,omitempty"`
}

func (s *settingsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s settingsFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
