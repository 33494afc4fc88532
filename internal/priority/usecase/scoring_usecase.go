package usecase

import (
	"context"
	"fmt"
	"time"

	applicationdomain "jobtrail-backend/internal/application/domain"
	"jobtrail-backend/internal/application/repository"
	"jobtrail-backend/pkg/ai"
	"jobtrail-backend/pkg/llmjson"

	"go.uber.org/zap"
)

// Score is the structured verdict expected from the model.
type Score struct {
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
	Action   string `json:"action"`
}

// fallbackScore substitutes for any model output that yields no parseable
// JSON. Availability over correctness: a record always ends a run with a
// priority.
var fallbackScore = Score{
	Priority: "Medium",
	Reason:   "Default",
	Action:   "Review application",
}

const scoreTimeout = 60 * time.Second

// ScoringUsecase re-scores every record in the store, all owners. One model
// attempt per record per run; failures are isolated per record.
type ScoringUsecase interface {
	Run(ctx context.Context) (int, error)
}

type scoringUsecase struct {
	repo      repository.ApplicationRepository
	generator ai.Generator
	log       *zap.Logger
}

func NewScoringUsecase(repo repository.ApplicationRepository, generator ai.Generator, log *zap.Logger) ScoringUsecase {
	return &scoringUsecase{repo: repo, generator: generator, log: log}
}

// Run processes the global batch sequentially and returns the number of
// records whose priority fields were written. A failure on one record never
// aborts the rest.
func (u *scoringUsecase) Run(ctx context.Context) (int, error) {
	apps, err := u.repo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load applications: %w", err)
	}

	updated := 0
	for _, app := range apps {
		if err := u.scoreOne(ctx, app); err != nil {
			u.log.Error("error scoring application",
				zap.String("user_id", app.UserID),
				zap.String("application_id", app.ApplicationID),
				zap.Error(err))
			continue
		}
		updated++
	}

	u.log.Info("updated priorities", zap.Int("updated", updated), zap.Int("total", len(apps)))
	return updated, nil
}

func (u *scoringUsecase) scoreOne(ctx context.Context, app *applicationdomain.Application) error {
	callCtx, cancel := context.WithTimeout(ctx, scoreTimeout)
	defer cancel()

	// Parse failures fall back; a failed model call is a real error for this
	// record and is reported to the batch loop.
	text, err := u.generator.Generate(callCtx, buildScoringPrompt(app))
	if err != nil {
		return fmt.Errorf("model call failed: %w", err)
	}

	score := fallbackScore
	var parsed Score
	if llmjson.Unmarshal(text, &parsed) {
		score = parsed
	}

	return u.repo.UpdateFields(app.UserID, app.ApplicationID, map[string]interface{}{
		"priority":         score.Priority,
		"priority_reason":  score.Reason,
		"suggested_action": score.Action,
		"updated_at":       time.Now(),
	})
}

func buildScoringPrompt(app *applicationdomain.Application) string {
	notes := app.Notes
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`You are Isla, an AI job search assistant. Analyze this job application and assign a priority level (Critical, High, Medium, Low) with reasoning.

Application:
- Position: %s
- Company: %s
- Status: %s
- Applied: %s
- Notes: %s

Consider:
1. Time since application (>14 days = follow-up needed)
2. Interview scheduled = Critical
3. No response = check status
4. Deadline proximity

Return JSON: {"priority": "Critical|High|Medium|Low", "reason": "brief explanation", "action": "suggested action"}`,
		app.Position, app.Company, app.Status, app.CreatedAt.Format(time.RFC3339), notes)
}
