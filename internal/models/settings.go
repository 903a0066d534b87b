package models

import "time"

// Theme values accepted by Settings.Theme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// DefaultFolder is the vault-relative folder new diagrams land in when the
// user has not configured one.
const DefaultFolder = "Diagrams"

type Settings struct {
	ID             uint   `gorm:"primaryKey"` // single-row table (ID=1)
	Version        int    `gorm:"not null;default:1"`
	Theme          string `gorm:"not null;default:system"` // "light" | "dark" | "system"
	DefaultFolder  string `gorm:"not null"`
	SnapshotOnSave bool   `gorm:"not null;default:false"`
	UpdatedAt      time.Time
}

// DefaultSettings returns the values used before anything has been persisted.
func DefaultSettings() *Settings {
	return &Settings{
		ID:            1,
		Version:       1,
		Theme:         ThemeSystem,
		DefaultFolder: DefaultFolder,
	}
}
