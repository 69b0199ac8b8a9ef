package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"collegeplan-be/pkg/llm"
)

const (
	baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	ModelDefault   = "gemini-2.0-flash"
	ModelWebSearch = "gemini-2.0-flash"
	ModelReasoning = "gemini-2.5-pro-preview-05-06"

	RoleUser  = "user"
	RoleModel = "model"
)

// ErrMissingAPIKey indicates an operator-side configuration problem, not a
// transient failure. Callers should surface it as actionable.
var ErrMissingAPIKey = errors.New("gemini api key is not configured")

type GeminiProvider struct {
	apiKey string
	client *http.Client
}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// SelectModel picks the model tier from the request flags. Extended
// reasoning takes precedence over web search when both are set.
func SelectModel(webSearch, extendedReasoning bool) string {
	if extendedReasoning {
		return ModelReasoning
	}
	if webSearch {
		return ModelWebSearch
	}
	return ModelDefault
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type geminiThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiGenerationConfig struct {
	ThinkingConfig *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGroundingChunk struct {
	Web *struct {
		URI   string `json:"uri"`
		Title string `json:"title"`
	} `json:"web,omitempty"`
}

type geminiGroundingMetadata struct {
	GroundingChunks  []geminiGroundingChunk `json:"groundingChunks"`
	WebSearchQueries []string               `json:"webSearchQueries"`
}

type geminiCandidate struct {
	Content *struct {
		Parts []geminiPart `json:"parts"`
	} `json:"content"`
	GroundingMetadata *geminiGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *GeminiProvider) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResult, error) {
	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	contents := make([]geminiContent, 0, len(req.History)+1)
	for _, msg := range req.History {
		role := RoleUser
		if msg.Role == "assistant" {
			role = RoleModel
		}
		contents = append(contents, geminiContent{
			Parts: []geminiPart{{Text: msg.Content}},
			Role:  role,
		})
	}

	lastParts := []geminiPart{{Text: req.Prompt}}
	for _, att := range req.Attachments {
		lastParts = append(lastParts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: att.ContentType,
				Data:     base64.StdEncoding.EncodeToString(att.Data),
			},
		})
	}
	contents = append(contents, geminiContent{Parts: lastParts, Role: RoleUser})

	payload := geminiRequest{Contents: contents}
	if req.SystemPrompt != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}
	if req.WebSearch {
		payload.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}
	if req.ExtendedReasoning {
		payload.GenerationConfig = &geminiGenerationConfig{
			ThinkingConfig: &geminiThinkingConfig{ThinkingBudget: 8192},
		}
	}

	model := SelectModel(req.WebSearch, req.ExtendedReasoning)
	resBody, err := p.post(ctx, model, payload)
	if err != nil {
		return nil, err
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if geminiRes.Error != nil {
		return nil, fmt.Errorf("gemini api returned error: %s", geminiRes.Error.Message)
	}
	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty candidates from gemini api")
	}

	candidate := geminiRes.Candidates[0]
	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	result := &llm.GenerateResult{Text: text}
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			result.Citations = append(result.Citations, llm.Citation{
				Title: chunk.Web.Title,
				URL:   chunk.Web.URI,
			})
		}
		result.SearchQueries = candidate.GroundingMetadata.WebSearchQueries
	}
	return result, nil
}

func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := p.Generate(ctx, llm.GenerateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

func (p *GeminiProvider) post(ctx context.Context, model string, payload geminiRequest) ([]byte, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("gemini api rejected credentials (status %d): %w", res.StatusCode, ErrMissingAPIKey)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}
	return resBody, nil
}
