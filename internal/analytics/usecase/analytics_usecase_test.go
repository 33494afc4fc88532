package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"jobtrail-backend/internal/application/domain"
	"jobtrail-backend/internal/application/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAnalytics(t *testing.T) (AnalyticsUsecase, repository.ApplicationRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Application{}))

	repo := repository.NewGormApplicationRepository(db)
	return NewAnalyticsUsecase(repo), repo
}

func seed(t *testing.T, repo repository.ApplicationRepository, id, status string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&domain.Application{
		UserID:        "user-1",
		ApplicationID: id,
		Company:       "Acme",
		Status:        status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}))
}

func TestComputeCounts(t *testing.T) {
	uc, repo := newTestAnalytics(t)

	now := time.Now()
	old := now.Add(-60 * 24 * time.Hour)

	seed(t, repo, "1", domain.StatusApplied, now.Add(-time.Hour))
	seed(t, repo, "2", domain.StatusApplied, old)
	seed(t, repo, "3", domain.StatusInterview, now.Add(-24*time.Hour))
	seed(t, repo, "4", domain.StatusOffer, old)
	seed(t, repo, "5", domain.StatusRejected, now.Add(-48*time.Hour))

	summary, err := uc.Compute("user-1")
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Recent)
	assert.Equal(t, 3, summary.Pending)
	assert.Equal(t, map[string]int{
		domain.StatusApplied:   2,
		domain.StatusInterview: 1,
		domain.StatusOffer:     1,
		domain.StatusRejected:  1,
	}, summary.ByStatus)
	assert.Len(t, summary.Applications, 5)
}

func TestComputeEmptyStatusCountsAsUnknown(t *testing.T) {
	uc, repo := newTestAnalytics(t)

	seed(t, repo, "1", "", time.Now())

	summary, err := uc.Compute("user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Unknown": 1}, summary.ByStatus)
	// An unknown status is not terminal, so it still counts as pending.
	assert.Equal(t, 1, summary.Pending)
}

func TestComputeNoRecords(t *testing.T) {
	uc, _ := newTestAnalytics(t)

	summary, err := uc.Compute("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Recent)
	assert.Equal(t, 0, summary.Pending)
	assert.Empty(t, summary.ByStatus)
	assert.NotNil(t, summary.Applications)
	assert.Empty(t, summary.Applications)
}

func TestComputeScopedToOwner(t *testing.T) {
	uc, repo := newTestAnalytics(t)

	seed(t, repo, "1", domain.StatusApplied, time.Now())
	require.NoError(t, repo.Create(&domain.Application{
		UserID:        "user-2",
		ApplicationID: "2",
		Status:        domain.StatusOffer,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}))

	summary, err := uc.Compute("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
}
