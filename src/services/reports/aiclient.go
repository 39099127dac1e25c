package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"Backend-AuditHub/src/services/survey"
)

type narrativeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type narrativePayload struct {
	Model       string             `json:"model"`
	Messages    []narrativeMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type narrativeResp struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// GenerateNarrative sends the interview transcript to the AI service and
// returns the narrative text. systemPrompt selects the audience
// (client-facing vs internal); an empty model falls back to AI_MODEL.
func GenerateNarrative(ctx context.Context, systemPrompt, model string, pairs []survey.QAPair) (string, error) {
	base := os.Getenv("AI_SERVICE_URL")
	if base == "" {
		base = "http://localhost:8001"
	}

	if model == "" {
		model = os.Getenv("AI_MODEL")
	}
	if model == "" {
		model = "gpt-4o"
	}

	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString("Q: " + p.Question + "\n")
		sb.WriteString("A: " + p.Answer + "\n\n")
	}

	body := narrativePayload{
		Model: model,
		Messages: []narrativeMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: sb.String()},
		},
		Temperature: 0.3,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", base+"/v1/narrative", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 120 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai service /v1/narrative %s — %s", res.Status, string(raw))
	}

	var out narrativeResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode error: %w — body=%s", err, string(raw))
	}
	if out.Error != "" {
		return "", fmt.Errorf("ai service error: %s", out.Error)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("ai service returned empty narrative")
	}
	return out.Text, nil
}
