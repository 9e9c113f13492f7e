package entity

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	Id        uuid.UUID
	Name      string
	Tagline   string
	LogoURL   string
	BannerURL string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
