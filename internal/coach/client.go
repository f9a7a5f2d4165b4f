// Package coach is the gateway to the generative-AI service. Every
// method degrades to a safe local response on failure; none of them
// surfaces a hard error to the caller.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/claude/liftflow/internal/ids"
	"github.com/claude/liftflow/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	baseURL    string
	model      string
	keyFn      func() string
	httpClient *http.Client
	gen        *ids.Generator
	log        *slog.Logger
}

// NewClient creates a coach gateway. keyFn resolves the credential on
// every call so a key saved in settings takes effect immediately.
func NewClient(baseURL, model string, keyFn func() string, gen *ids.Generator, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		keyFn:      keyFn,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		gen:        gen,
		log:        log,
	}
}

// --- wire types for the generateContent API ---

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// errInvalidKey distinguishes a rejected credential from transport failures.
type errInvalidKey struct{ msg string }

func (e errInvalidKey) Error() string { return e.msg }

// generate performs one generateContent call and returns the text of
// the first candidate.
func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	key := c.keyFn()
	if key == "" {
		return "", fmt.Errorf("no API key configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, key)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling gateway: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		if strings.Contains(parsed.Error.Message, "API key not valid") ||
			parsed.Error.Status == "INVALID_ARGUMENT" && resp.StatusCode == http.StatusBadRequest {
			return "", errInvalidKey{msg: parsed.Error.Message}
		}
		return "", fmt.Errorf("gateway error (status %d): %s", resp.StatusCode, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway status %d: %s", resp.StatusCode, data)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// Chat sends one conversation turn with a short history window. It
// always returns displayable text; failures map to labeled fallbacks.
func (c *Client) Chat(ctx context.Context, message, contextLabel string, history []models.Message) string {
	if c.keyFn() == "" {
		return msgNoKey
	}

	if len(history) > 8 {
		history = history[len(history)-8:]
	}
	var convo strings.Builder
	for _, m := range history {
		role := "阿豪教練"
		if m.Role == "user" {
			role = "學員"
		}
		fmt.Fprintf(&convo, "%s: %s\n", role, m.Text)
	}
	if contextLabel == "" {
		contextLabel = "一般諮詢"
	}

	prompt := fmt.Sprintf(`[當前情境/上下文]: %s

[歷史對話]:
%s
[學員新問題]:
%s

(請以「阿豪教練」的身分，給出專業、科學且具體的繁體中文建議。若為訓練評價，請嚴格審視。)`,
		contextLabel, convo.String(), message)

	text, err := c.generate(ctx, generateRequest{
		Contents:          []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: systemInstruction}}},
	})
	if err != nil {
		c.log.Warn("coach chat failed", "error", err)
		if _, ok := err.(errInvalidKey); ok {
			return msgInvalidKey
		}
		return msgConnError
	}
	if text == "" {
		return msgEmptyReply
	}
	return text
}

// AnalyzeImage scores a form or physique photo. kind is "form" or
// "physique". Never returns an error: failures yield a zero score with
// an explanatory point.
func (c *Client) AnalyzeImage(ctx context.Context, imageBase64, kind string) models.Feedback {
	if c.keyFn() == "" {
		return models.Feedback{
			Score: 85,
			Points: []string{
				"模擬分析：光線充足，肌肉線條清晰。",
				"體脂率預估約 15-18%。",
				"建議加強三角肌後束，改善圓肩問題。",
				"(此為離線模擬回應，請至「我的」設定真實 API Key)",
			},
		}
	}

	prompt := "分析這個訓練動作。給出 0-100 安全評分。列出 3 點繁體中文建議：1.關節排列 2.發力肌群 3.潛在風險與修正。"
	if kind == "physique" {
		prompt = "分析這張體態照片。給出 0-100 評分。列出 3 點繁體中文建議：1.優勢部位 2.弱點部位 3.具體改善菜單 (動作/組數)。"
	}

	// data URLs carry a "data:image/...;base64," prefix
	if i := strings.IndexByte(imageBase64, ','); i >= 0 {
		imageBase64 = imageBase64[i+1:]
	}

	text, err := c.generate(ctx, generateRequest{
		Contents: []generateContent{{Parts: []generatePart{
			{InlineData: &inlineData{MIMEType: "image/jpeg", Data: imageBase64}},
			{Text: prompt},
		}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil || text == "" {
		c.log.Warn("coach image analysis failed", "error", err)
		return models.Feedback{Score: 0, Points: []string{"無法分析圖片，請確認 API Key 是否正確或重試。"}}
	}

	var fb models.Feedback
	if err := json.Unmarshal([]byte(text), &fb); err != nil {
		c.log.Warn("coach image analysis returned malformed JSON", "error", err)
		return models.Feedback{Score: 0, Points: []string{"無法分析圖片，請確認 API Key 是否正確或重試。"}}
	}
	return fb
}

// GenerateRoutine builds a day plan from a free-text request. Without a
// key it falls back to offline keyword matching against the catalog; on
// any online failure it returns an empty list.
func (c *Client) GenerateRoutine(ctx context.Context, request, contextLabel string) []models.Exercise {
	if c.keyFn() == "" {
		return OfflineRoutine(request, c.gen)
	}

	prompt := fmt.Sprintf(`請根據需求「%s」與背景「%s」設計當日課表。
參考動作庫: %s

回傳 JSON 陣列 (Array of Objects):
[
  {
    "id": "db_id",
    "name": "動作名稱",
    "part": "部位",
    "type": "類型",
    "tips": "簡短技巧提示",
    "iconColor": "bg-blue-500",
    "sets": [{"kg": 預估重量(數字), "reps": 建議次數(數字), "rpe": 建議RPE(數字)}]
  }
]`, request, contextLabel, catalogDigest())

	text, err := c.generate(ctx, generateRequest{
		Contents:         []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil || text == "" {
		c.log.Warn("coach routine generation failed", "error", err)
		return []models.Exercise{}
	}

	var raw []models.Exercise
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		c.log.Warn("coach routine response malformed", "error", err)
		return []models.Exercise{}
	}

	for i := range raw {
		raw[i].LocalID = c.gen.Next()
		for j := range raw[i].Sets {
			raw[i].Sets[j].ID = c.gen.Next()
			raw[i].Sets[j].Completed = false
			raw[i].Sets[j].IsWarmup = false
		}
	}
	return raw
}
