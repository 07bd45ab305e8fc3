package model

import (
	"strings"
	"time"
)

// Item - серверная модель задачи списка дел.
type Item struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Name   string `gorm:"not null"`
	IsDone bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ItemPatch частичное изменение записи. nil-поля не трогаются.
type ItemPatch struct {
	Name   *string
	IsDone *bool
}

// NormalizeName обрезает пробелы и проверяет, что имя не пустое.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", &ValidationError{Field: "name", Message: "Name is required"}
	}
	return name, nil
}
