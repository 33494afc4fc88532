package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobtrail-backend/pkg/ai"
	"jobtrail-backend/pkg/llmjson"
)

// maxContentLength bounds how much of the fetched page goes into the
// extraction prompt.
const maxContentLength = 8000

// fetchTimeout caps the page fetch. The upstream page is untrusted input and
// must not hold a request handler open indefinitely.
const fetchTimeout = 10 * time.Second

// JobPosting is the structured result of extracting a posting page. Nothing
// here is persisted; the caller submits the fields through the application
// lifecycle when ready.
type JobPosting struct {
	Position     string `json:"position"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// ExtractUsecase fetches a posting page and asks the model for its fields.
type ExtractUsecase interface {
	Extract(ctx context.Context, url string) (*JobPosting, error)
}

type extractUsecase struct {
	generator ai.Generator
	client    *http.Client
}

func NewExtractUsecase(generator ai.Generator) ExtractUsecase {
	return &extractUsecase{
		generator: generator,
		client:    &http.Client{Timeout: fetchTimeout},
	}
}

func (u *extractUsecase) Extract(ctx context.Context, url string) (*JobPosting, error) {
	html, err := u.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	text, err := u.generator.Generate(ctx, buildExtractionPrompt(html))
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	// Unparseable model output is not an error: return the empty posting and
	// let the caller fill the form in by hand.
	posting := &JobPosting{}
	var parsed JobPosting
	if llmjson.Unmarshal(text, &parsed) {
		posting = &parsed
	}
	return posting, nil
}

func (u *extractUsecase) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentLength))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func buildExtractionPrompt(html string) string {
	if len(html) > maxContentLength {
		html = html[:maxContentLength]
	}

	return fmt.Sprintf(`You are Isla, an AI job search assistant. Extract job application details from this HTML content. Return ONLY valid JSON with these fields:
{
  "position": "job title",
  "company": "company name",
  "location": "location or Remote",
  "salary": "salary range or empty string",
  "description": "brief description",
  "requirements": "key requirements"
}

HTML content:
%s`, html)
}
