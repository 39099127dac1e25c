package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type renderPayload struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	Format   string `json:"format"` // "docx" | "pdf"
}

// RenderDocument converts markdown to a binary document via the renderer
// service and returns the raw file bytes.
func RenderDocument(ctx context.Context, title, markdown, format string) ([]byte, error) {
	base := os.Getenv("DOC_SERVICE_URL")
	if base == "" {
		base = "http://localhost:8002"
	}

	body := renderPayload{Title: title, Markdown: markdown, Format: format}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", base+"/render", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Close = true

	client := &http.Client{Timeout: 60 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("doc service /render %s — %s", res.Status, string(data))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("doc service returned empty %s document", format)
	}
	return data, nil
}
