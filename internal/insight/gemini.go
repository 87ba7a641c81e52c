package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient implements Generator against the Gemini REST API.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiClient builds a client. An empty apiKey is allowed; Generate
// then always returns the no-key fallback.
func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (g *GeminiClient) WithBaseURL(base string) *GeminiClient {
	g.baseURL = strings.TrimRight(base, "/")
	return g
}

// request/response shapes for generateContent

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// insightPayload is the strict shape the model is asked to answer with.
type insightPayload struct {
	Summary string   `json:"summary"`
	Themes  []string `json:"themes"`
}

// Generate asks Gemini for a summary and themes. Any failure, from a
// missing key to malformed JSON in the reply, degrades to a fixed fallback.
func (g *GeminiClient) Generate(ctx context.Context, reflection, emotion string) Result {
	if g.apiKey == "" {
		return FallbackNoKey()
	}

	text, err := g.complete(ctx, buildPrompt(reflection, emotion))
	if err != nil {
		log.Printf("insight: generate failed: %v", err)
		return FallbackError()
	}

	payload, err := decodePayload(text)
	if err != nil {
		log.Printf("insight: bad model response: %v", err)
		return FallbackError()
	}

	res := Result{Summary: payload.Summary, Themes: payload.Themes}
	if res.Summary == "" {
		res.Summary = "Your reflection has been saved."
	}
	if len(res.Themes) == 0 {
		res.Themes = append([]string(nil), fallbackThemes...)
	}
	if len(res.Themes) > 5 {
		res.Themes = res.Themes[:5]
	}
	return res
}

// complete performs one generateContent round trip and returns the raw text
// of the first candidate.
func (g *GeminiClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(b))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// decodePayload extracts the {summary, themes} JSON from model text,
// tolerating markdown code fences around it.
func decodePayload(text string) (*insightPayload, error) {
	cleaned := stripCodeFence(strings.TrimSpace(text))

	var payload insightPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return &payload, nil
}

// stripCodeFence removes a surrounding ```json ... ``` (or bare ```) block.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// buildPrompt renders the analysis prompt for one reflection.
func buildPrompt(reflection, emotion string) string {
	emotionContext := ""
	if emotion != "" {
		emotionContext = fmt.Sprintf("The user selected the emotion: %s.", emotion)
	}

	return fmt.Sprintf(`You are a compassionate AI assistant that helps people understand their emotions and thoughts through journal entries. Provide empathetic, insightful, and supportive analysis.

Analyze the following journal entry and provide:
1. A personalized summary (2-3 sentences) that captures the emotional tone and key thoughts
2. 3-5 key themes (single words or short phrases) that represent the main topics or patterns

%s

Journal Entry:
"%s"

Respond in JSON format with this exact structure:
{
  "summary": "2-3 sentence personalized summary here",
  "themes": ["theme1", "theme2", "theme3", "theme4", "theme5"]
}

Make the summary empathetic, insightful, and supportive. Keep themes concise (1-2 words each).`, emotionContext, reflection)
}
