package usecase

import (
	"time"

	applicationdomain "jobtrail-backend/internal/application/domain"
	"jobtrail-backend/internal/application/repository"
)

// recentWindow bounds the "recent" count.
const recentWindow = 30 * 24 * time.Hour

// Summary is the analytics contract. The raw application list rides along
// for clients that render both views from one call.
type Summary struct {
	Total        int                              `json:"total"`
	Recent       int                              `json:"recent"`
	Pending      int                              `json:"pending"`
	ByStatus     map[string]int                   `json:"byStatus"`
	Applications []*applicationdomain.Application `json:"applications"`
}

// AnalyticsUsecase derives counts over one owner's record set. Computed fresh
// on every call, O(n) in the owner's record count.
type AnalyticsUsecase interface {
	Compute(userID string) (*Summary, error)
}

type analyticsUsecase struct {
	repo repository.ApplicationRepository
}

func NewAnalyticsUsecase(repo repository.ApplicationRepository) AnalyticsUsecase {
	return &analyticsUsecase{repo: repo}
}

func (u *analyticsUsecase) Compute(userID string) (*Summary, error) {
	apps, err := u.repo.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Total:        len(apps),
		ByStatus:     map[string]int{},
		Applications: apps,
	}
	if summary.Applications == nil {
		summary.Applications = []*applicationdomain.Application{}
	}

	cutoff := time.Now().Add(-recentWindow)
	for _, app := range apps {
		status := app.Status
		if status == "" {
			status = "Unknown"
		}
		summary.ByStatus[status]++

		if app.CreatedAt.After(cutoff) {
			summary.Recent++
		}

		// Offer and Rejected are terminal; everything else still needs the
		// caller's attention.
		if app.Status != applicationdomain.StatusOffer && app.Status != applicationdomain.StatusRejected {
			summary.Pending++
		}
	}

	return summary, nil
}
