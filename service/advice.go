package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamtahealth/mamta-backend/config"
)

const adviceTimeout = 60 * time.Second

// Gemini generateContent wire structures. The response is relayed to the
// client as-is.

type geminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
	Index        int           `json:"index,omitempty"`
}

type GeminiResponse struct {
	Candidates    []GeminiCandidate `json:"candidates"`
	ModelVersion  string            `json:"modelVersion,omitempty"`
	UsageMetadata map[string]any    `json:"usageMetadata,omitempty"`
}

type geminiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// AdviceClient issues one synchronous generateContent call per question.
// No retries and no caching: every question is independent.
type AdviceClient struct {
	http           *resty.Client
	apiKey         string
	model          string
	promptTemplate string
}

func NewAdviceClient(cfg config.GeminiConfig) *AdviceClient {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(adviceTimeout)

	return &AdviceClient{
		http:           client,
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
		promptTemplate: cfg.PromptTemplate,
	}
}

// Generate wraps the question in the prompt template and returns the
// provider's response. The provider is never contacted for empty input or
// when no credential is configured.
func (c *AdviceClient) Generate(ctx context.Context, userInput string) (*GeminiResponse, error) {
	if strings.TrimSpace(userInput) == "" {
		return nil, validationf("userInput is required")
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body := geminiRequest{
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: fmt.Sprintf(c.promptTemplate, userInput)}},
			},
		},
	}

	var result GeminiResponse
	var errBody geminiErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		SetError(&errBody).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return nil, &UpstreamError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	if !resp.IsSuccess() {
		msg := errBody.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Message: msg}
	}

	if len(result.Candidates) == 0 {
		return nil, &UpstreamError{StatusCode: http.StatusInternalServerError, Message: "provider returned no candidates"}
	}

	return &result, nil
}
