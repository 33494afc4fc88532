package ai

import (
	"context"
	"fmt"
	"net"
	"strings"

	"go.uber.org/zap"
)

// FallbackService routes generation between a hosted provider and a local one:
// Gemini first (quality), Ollama when Gemini is unreachable or out of quota.
type FallbackService struct {
	gemini Generator
	ollama Generator
	log    *zap.Logger
}

func NewFallbackService(gemini, ollama Generator, log *zap.Logger) *FallbackService {
	return &FallbackService{gemini: gemini, ollama: ollama, log: log}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}
	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}
	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

func (f *FallbackService) Generate(ctx context.Context, prompt string) (string, error) {
	if f.gemini != nil {
		result, err := f.gemini.Generate(ctx, prompt)
		if err == nil {
			return result, nil
		}

		if isQuotaError(err) {
			f.log.Warn("gemini quota exhausted, falling back to ollama", zap.Error(err))
		} else {
			f.log.Warn("gemini error, falling back to ollama", zap.Error(err))
		}
	}

	if f.ollama != nil {
		result, err := f.ollama.Generate(ctx, prompt)
		if err == nil {
			return result, nil
		}

		// Local provider unreachable; give the hosted one a second chance.
		if isConnectionError(err) && f.gemini != nil {
			f.log.Warn("ollama unreachable, retrying gemini", zap.Error(err))
			return f.gemini.Generate(ctx, prompt)
		}

		return "", fmt.Errorf("ollama generation failed: %w", err)
	}

	return "", fmt.Errorf("no model provider available")
}
