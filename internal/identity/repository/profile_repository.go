package repository

import (
	"time"

	"jobtrail-backend/internal/identity/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository persists the per-user identity cache.
type ProfileRepository interface {
	Upsert(profile *domain.UserProfile) error
	FindByID(userID string) (*domain.UserProfile, error)
}

// gormProfileRepository implements ProfileRepository using GORM
type gormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) Upsert(profile *domain.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

func (r *gormProfileRepository) FindByID(userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
