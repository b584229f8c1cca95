package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nourishnet/internal/utils"
)

// FallbackDescription is returned whenever generation fails; callers never
// see an error from this package.
const FallbackDescription = "We couldn't generate a description at this time. Please write one manually."

type (
	DescriptionGenerator interface {
		GenerateFoodDescription(ctx context.Context, title string) string
	}

	geminiGenerator struct {
		httpClient *http.Client
	}
)

func NewDescriptionGenerator() DescriptionGenerator {
	return &geminiGenerator{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiGenerator) GenerateFoodDescription(ctx context.Context, title string) string {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return FallbackDescription
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	prompt := fmt.Sprintf(
		"Create a short, appealing, and friendly description for a food donation listing. The title of the item is %q. The description should be under 200 characters. Mention it's a great opportunity for a delicious meal and highlight the spirit of community sharing. Do not use hashtags or emojis.",
		title,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return FallbackDescription
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return FallbackDescription
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return FallbackDescription
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackDescription
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return FallbackDescription
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return FallbackDescription
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text
}
