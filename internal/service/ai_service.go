package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ap_study_backend/internal/config"
	"ap_study_backend/internal/engine"
)

// AIService is the remote generation strategy: an OpenAI-compatible chat
// completion endpoint prompted to return engine-shaped JSON. Every failure
// is returned to the caller; PlanService and ContentService own the
// decision to fall back to the local engine.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []aiChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeneratePlan asks the remote model for a complete study plan.
func (s *AIService) GeneratePlan(ctx context.Context, profile engine.LearnerProfile, goals []string, rawText string) (*engine.StudyPlan, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Create an AP exam study plan for this learner profile:\n%s\nGoals: %s\n",
		profileJSON, strings.Join(goals, "; "),
	)
	if strings.TrimSpace(rawText) != "" {
		prompt += fmt.Sprintf("Uploaded study material:\n%s\n", rawText)
	}
	prompt += "Respond with only a JSON object with fields: title, description, " +
		"durationDays, dailyTimeCommitment, difficulty, subjects (name, priority, " +
		"timeAllocation, topics, reasoning), milestones, adaptiveFeatures, " +
		"personalizedRecommendations, estimatedOutcome, confidence."

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan engine.StudyPlan
	if err := json.Unmarshal(extractJSON(raw), &plan); err != nil {
		return nil, fmt.Errorf("remote plan parse: %w", err)
	}
	return &plan, nil
}

// GenerateContent asks the remote model for a single exercise.
func (s *AIService) GenerateContent(ctx context.Context, subject, topic, difficulty, style string) (*engine.StudyContent, error) {
	prompt := fmt.Sprintf(
		"Write one %s-level AP practice question for %s on the topic %q, "+
			"personalized for a %s learner. Respond with only a JSON object with "+
			"fields: type, question, options, correctAnswer, explanation, hint, "+
			"points, concepts, apSkills, commonMistakes.",
		difficulty, subject, topic, style,
	)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var content engine.StudyContent
	if err := json.Unmarshal(extractJSON(raw), &content); err != nil {
		return nil, fmt.Errorf("remote content parse: %w", err)
	}
	return &content, nil
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: s.config.Model,
		Messages: []aiChatMessage{
			{Role: "system", Content: "You are an AP exam tutor. Reply with strict JSON only, no prose."},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// extractJSON strips markdown fences and surrounding prose the model may
// wrap around its JSON payload.
func extractJSON(raw string) []byte {
	raw = strings.TrimSpace(raw)
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return []byte(raw)
}
