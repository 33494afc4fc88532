package usecase

import (
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"jobtrail-backend/internal/application/domain"
	"jobtrail-backend/internal/application/dto"
	"jobtrail-backend/internal/application/repository"
)

var (
	// ErrNotFound is returned when no record exists under the caller's
	// (user_id, application_id). Updates reject absent records rather than
	// upserting.
	ErrNotFound = errors.New("application not found")

	// ErrNoUpdatableFields is returned when an update payload carries none
	// of the whitelisted fields.
	ErrNoUpdatableFields = errors.New("no valid fields to update")
)

// ApplicationUsecase is the record lifecycle: create, list, whitelist-checked
// update, idempotent delete. All operations are scoped to one owner identity.
type ApplicationUsecase interface {
	List(userID string) ([]*domain.Application, error)
	Create(userID string, req *dto.CreateApplicationRequest) (*domain.Application, error)
	Update(userID, applicationID string, req *dto.UpdateApplicationRequest) error
	Delete(userID, applicationID string) error
}

type applicationUsecase struct {
	repo repository.ApplicationRepository
}

func NewApplicationUsecase(repo repository.ApplicationRepository) ApplicationUsecase {
	return &applicationUsecase{repo: repo}
}

// lastID guards against two creations landing on the same millisecond.
var lastID atomic.Int64

// newApplicationID derives a record id from the creation time, strictly
// increasing within the process.
func newApplicationID() string {
	now := time.Now().UnixMilli()
	for {
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}

func (u *applicationUsecase) List(userID string) ([]*domain.Application, error) {
	return u.repo.FindByOwner(userID)
}

func (u *applicationUsecase) Create(userID string, req *dto.CreateApplicationRequest) (*domain.Application, error) {
	now := time.Now()
	app := &domain.Application{
		UserID:          userID,
		ApplicationID:   newApplicationID(),
		Position:        req.Position,
		Company:         req.Company,
		Location:        req.Location,
		Salary:          req.Salary,
		Status:          req.Status,
		InterviewRound:  req.InterviewRound,
		Notes:           req.Notes,
		ApplicationDate: req.ApplicationDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if app.Status == "" {
		app.Status = domain.StatusApplied
	}

	if err := u.repo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) Update(userID, applicationID string, req *dto.UpdateApplicationRequest) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return ErrNoUpdatableFields
	}

	existing, err := u.repo.FindByID(userID, applicationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	fields["updated_at"] = time.Now()
	return u.repo.UpdateFields(userID, applicationID, fields)
}

func (u *applicationUsecase) Delete(userID, applicationID string) error {
	return u.repo.Delete(userID, applicationID)
}
