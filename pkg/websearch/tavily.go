// Package websearch wraps the Tavily search API used to ground assistant
// answers in current web content.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.tavily.com"

// Result carries the condensed search outcome: an answer-style content blob
// and up to two source titles for attribution.
type Result struct {
	Content string
	Sources []string
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewClient(apiKey string, log *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string, log *zap.Logger) *Client {
	c := NewClient(apiKey, log)
	c.baseURL = baseURL
	return c
}

// Search queries Tavily. Search is best-effort: any failure, including a
// missing API key, yields an empty Result rather than an error so the chat
// flow can proceed without web context.
func (c *Client) Search(ctx context.Context, query string) Result {
	if c.apiKey == "" {
		c.log.Debug("no tavily API key, skipping web search")
		return Result{}
	}

	payload := map[string]interface{}{
		"api_key":        c.apiKey,
		"query":          query,
		"max_results":    3,
		"search_depth":   "basic",
		"include_answer": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewBuffer(body))
	if err != nil {
		return Result{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("tavily request failed", zap.Error(err))
		return Result{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("tavily returned non-OK status", zap.Int("status", resp.StatusCode))
		return Result{}
	}

	var parsed struct {
		Answer  string `json:"answer"`
		Results []struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Warn("tavily response parse failed", zap.Error(err))
		return Result{}
	}

	content := parsed.Answer
	if content == "" {
		for i, r := range parsed.Results {
			if i > 0 {
				content += "\n"
			}
			content += r.Content
		}
	}

	var sources []string
	for _, r := range parsed.Results {
		sources = append(sources, r.Title)
		if len(sources) == 2 {
			break
		}
	}

	return Result{Content: content, Sources: sources}
}
