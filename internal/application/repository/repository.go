package repository

import "jobtrail-backend/internal/application/domain"

// ApplicationRepository defines the interface for application record access.
type ApplicationRepository interface {
	// FindByOwner returns all records for one owner, store-native order.
	FindByOwner(userID string) ([]*domain.Application, error)

	// FindByID finds one record; returns (nil, nil) when absent.
	FindByID(userID, applicationID string) (*domain.Application, error)

	// FindAll returns every record in the store, all owners. Used only by
	// the priority scoring batch.
	FindAll() ([]*domain.Application, error)

	// Create persists a new record.
	Create(app *domain.Application) error

	// UpdateFields applies the given column/value pairs to one record.
	UpdateFields(userID, applicationID string, fields map[string]interface{}) error

	// Delete removes one record. Deleting an absent record is not an error.
	Delete(userID, applicationID string) error
}
