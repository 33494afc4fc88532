package repository

import (
	"errors"

	"jobtrail-backend/internal/application/domain"

	"gorm.io/gorm"
)

// gormApplicationRepository implements ApplicationRepository using GORM
type gormApplicationRepository struct {
	db *gorm.DB
}

func NewGormApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) FindByOwner(userID string) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.Where("user_id = ?", userID).Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) FindByID(userID, applicationID string) (*domain.Application, error) {
	var app domain.Application
	err := r.db.Where("user_id = ? AND application_id = ?", userID, applicationID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *gormApplicationRepository) FindAll() ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) Create(app *domain.Application) error {
	return r.db.Create(app).Error
}

func (r *gormApplicationRepository) UpdateFields(userID, applicationID string, fields map[string]interface{}) error {
	return r.db.Model(&domain.Application{}).
		Where("user_id = ? AND application_id = ?", userID, applicationID).
		Updates(fields).Error
}

func (r *gormApplicationRepository) Delete(userID, applicationID string) error {
	return r.db.Where("user_id = ? AND application_id = ?", userID, applicationID).
		Delete(&domain.Application{}).Error
}
