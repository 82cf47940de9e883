package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"legalbrief-backend/models"

	"github.com/google/generative-ai-go/genai"
)

const (
	DefaultAnalysisModel = "gemini-1.5-pro"

	maxRetries          = 3
	initialBackoff      = time.Second
	maxPromptChars      = 30000
	analysisTemperature = 0.2
)

var ErrAnalysisFailed = errors.New("failed to analyze case narrative")

// GeminiAnalyzer asks a Gemini model for a short factual narrative of a case
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates an analyzer backed by the given client
func NewGeminiAnalyzer(client *genai.Client, model string) *GeminiAnalyzer {
	if model == "" {
		model = DefaultAnalysisModel
	}
	return &GeminiAnalyzer{
		client: client,
		model:  model,
	}
}

// AnalyzeCase returns a narrative summary of the case and its timeline
func (a *GeminiAnalyzer) AnalyzeCase(ctx context.Context, data *models.CaseData) (string, error) {
	if a.client == nil {
		return "", errors.New("gemini client not set")
	}

	prompt := buildAnalysisPrompt(data)
	if len(prompt) > maxPromptChars {
		log.Printf("Warning: Prompt too long (%d chars), truncating to %d chars", len(prompt), maxPromptChars)
		prompt = prompt[:maxPromptChars]
	}

	model := a.client.GenerativeModel(a.model)
	model.SetTemperature(analysisTemperature)

	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err == nil {
			return extractResponseText(resp)
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}
		log.Printf("Warning: Analysis attempt %d/%d failed: %v. Retrying in %s", attempt, maxRetries, err, backoff)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return "", fmt.Errorf("%w after %d attempts: %v", ErrAnalysisFailed, maxRetries, lastErr)
}

// buildAnalysisPrompt describes the case for the model
func buildAnalysisPrompt(data *models.CaseData) string {
	var b strings.Builder
	record := data.Case

	b.WriteString("You are assisting an attorney drafting a court filing. ")
	b.WriteString("Write a neutral, factual narrative of the case in two or three short paragraphs. ")
	b.WriteString("Do not invent facts, names, or dates, and do not include headings or legal conclusions.\n\n")

	b.WriteString(fmt.Sprintf("Case title: %s\n", record.Title))
	if record.CaseNumber != "" {
		b.WriteString(fmt.Sprintf("Case number: %s\n", record.CaseNumber))
	}
	b.WriteString(fmt.Sprintf("Case type: %s\n", record.CaseType))
	if record.OpposingParty != "" {
		b.WriteString(fmt.Sprintf("Opposing party: %s\n", record.OpposingParty))
	}
	if record.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", record.Description))
	}

	if len(data.Timeline) > 0 {
		b.WriteString("\nTimeline:\n")
		for _, event := range data.Timeline {
			b.WriteString(fmt.Sprintf("- %s: %s", event.Date, event.Title))
			if event.Summary != nil && *event.Summary != "" {
				b.WriteString(" - ")
				b.WriteString(*event.Summary)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// extractResponseText joins the text parts of all candidates
func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", ErrAnalysisFailed)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked: %s", ErrAnalysisFailed, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrAnalysisFailed)
	}

	var text strings.Builder
	for i, candidate := range resp.Candidates {
		if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
			log.Printf("Warning: Candidate %d finished with reason: %s", i, candidate.FinishReason)
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	result := strings.TrimSpace(text.String())
	if result == "" {
		return "", fmt.Errorf("%w: empty content", ErrAnalysisFailed)
	}
	return result, nil
}
