package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"google.golang.org/genai"
)

const transcribePrompt = `Transcribe the attached audio verbatim.
- The spoken language is "%s".
- Return only the transcript text, without timestamps, speaker labels or commentary.
- If nothing intelligible is said, return an empty response.`

type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content) (string, error)

type gemini struct {
	apiKeys    []string
	mu         sync.Mutex
	currentKey int
	model      string
	generate   generateFunc
	logger     logger.Logger
}

// NewGemini creates a Transcriber that rotates through the supplied Gemini API keys
func NewGemini(cfg config.GeminiConfig, log logger.Logger) (Transcriber, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("gemini: no API keys configured")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	log.Info(context.Background(), "Gemini transcriber ready: model %s, %d API key(s)", model, len(cfg.APIKeys))

	return &gemini{
		apiKeys:  cfg.APIKeys,
		model:    model,
		generate: callGemini,
		logger:   log,
	}, nil
}

func (g *gemini) Name() string { return "gemini:" + g.model }

func (g *gemini) Transcribe(ctx context.Context, wavPath, language string) (string, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAudioMissing, wavPath)
		}
		return "", fmt.Errorf("read audio: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(transcribePrompt, language)),
			genai.NewPartFromBytes(data, "audio/wav"),
		}, genai.RoleUser),
	}

	g.logger.Info(ctx, "Starting transcription with %s (language %s): %s", g.model, language, wavPath)

	// Rotate API keys on 429 / quota errors
	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.key()

		text, err := g.generate(ctx, key, g.model, contents)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("gemini transcribe: %w", err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return "", ErrEmptyTranscript
		}
		g.logger.Info(ctx, "Transcription completed (%d chars)", len(text))
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *gemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey moves past idx unless another request already did
func (g *gemini) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func callGemini(ctx context.Context, apiKey, model string, contents []*genai.Content) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
