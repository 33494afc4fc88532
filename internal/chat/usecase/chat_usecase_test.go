package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jobtrail-backend/internal/application/domain"
	"jobtrail-backend/internal/application/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	response   string
	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, nil
}

func newChatFixture(t *testing.T, gen *fakeGenerator) (ChatUsecase, repository.ApplicationRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Application{}))

	repo := repository.NewGormApplicationRepository(db)
	return NewChatUsecase(repo, gen, nil, zaptest.NewLogger(t)), repo
}

func TestNeedsWebSearch(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"how to prepare for a systems design interview", true},
		{"What is a reasonable salary band?", true},
		{"any tips for negotiating?", true},
		{"latest hiring trends", true},
		{"update my Acme application status", false},
		{"did I apply to Initech?", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NeedsWebSearch(tt.message), tt.message)
	}
}

func TestChatWithNoApplications(t *testing.T) {
	gen := &fakeGenerator{response: "Let's get your first application going."}
	uc, _ := newChatFixture(t, gen)

	reply, err := uc.Chat(context.Background(), "user-1", "where do I start?")
	require.NoError(t, err)
	assert.Equal(t, "Let's get your first application going.", reply.Response)
	assert.Empty(t, reply.Sources)
	assert.Contains(t, gen.lastPrompt, "User has no applications yet.")
	assert.Contains(t, gen.lastPrompt, "where do I start?")
}

func TestChatSummarizesApplications(t *testing.T) {
	gen := &fakeGenerator{response: "You should follow up with Acme."}
	uc, repo := newChatFixture(t, gen)

	now := time.Now()
	require.NoError(t, repo.Create(&domain.Application{
		UserID: "user-1", ApplicationID: "100",
		Company: "Acme", Position: "Backend Engineer",
		Status: domain.StatusInterview, Priority: "High",
		CreatedAt: now, UpdatedAt: now,
	}))

	reply, err := uc.Chat(context.Background(), "user-1", "what should I do next on my applications?")
	require.NoError(t, err)
	assert.Equal(t, "You should follow up with Acme.", reply.Response)
	assert.Contains(t, gen.lastPrompt, "User has 1 applications:")
	assert.Contains(t, gen.lastPrompt, "- Acme (Backend Engineer) - Status: Interview, Priority: High")
}

func TestChatCapsPromptContext(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	uc, repo := newChatFixture(t, gen)

	now := time.Now()
	for i := 0; i < 8; i++ {
		require.NoError(t, repo.Create(&domain.Application{
			UserID:        "user-1",
			ApplicationID: string(rune('a' + i)),
			Company:       "Co" + string(rune('A'+i)),
			Position:      "Role",
			Status:        domain.StatusApplied,
			CreatedAt:     now,
			UpdatedAt:     now,
		}))
	}

	_, err := uc.Chat(context.Background(), "user-1", "status check")
	require.NoError(t, err)
	// The total rides in the header but only the first five are listed.
	assert.Contains(t, gen.lastPrompt, "User has 8 applications:")
	assert.Equal(t, 5, strings.Count(gen.lastPrompt, "- Co"))
}
