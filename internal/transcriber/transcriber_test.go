package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"google.golang.org/genai"
)

// fakeWhisper mimics whisper-cli: it writes <output-file>.txt
type fakeWhisper struct {
	text     string
	err      error
	lookErr  error
	lastArgs []string
}

func (f *fakeWhisper) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.lastArgs = args
	if f.err != nil {
		return "", f.err
	}
	i := slices.Index(args, "--output-file")
	if err := os.WriteFile(args[i+1]+".txt", []byte(f.text), 0644); err != nil {
		return "", err
	}
	return "", nil
}

func (f *fakeWhisper) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := f.Execute(ctx, name, args...)
	return []byte(out), err
}

func (f *fakeWhisper) LookPath(name string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/opt/whisper/" + name, nil
}

func setupWhisper(t *testing.T, exec *fakeWhisper) (Transcriber, string) {
	t.Helper()
	dir := t.TempDir()
	model := filepath.Join(dir, "ggml-base.bin")
	if err := os.WriteFile(model, []byte("weights"), 0644); err != nil {
		t.Fatal(err)
	}
	wav := filepath.Join(dir, "clip_slice_1.wav")
	if err := os.WriteFile(wav, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := NewWhisperCPP(config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  model,
		Prompt:     "acta de audiencia",
		Threads:    2,
	}, exec, logger.Nop())
	if err != nil {
		t.Fatalf("NewWhisperCPP() error = %v", err)
	}
	return tr, wav
}

func TestWhisperTranscribe(t *testing.T) {
	exec := &fakeWhisper{text: "  Hola, buenos días.\n"}
	tr, wav := setupWhisper(t, exec)

	got, err := tr.Transcribe(context.Background(), wav, "es")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "Hola, buenos días." {
		t.Errorf("Transcribe() = %q, want %q", got, "Hola, buenos días.")
	}

	for _, want := range []string{"-otxt", "es", wav, "acta de audiencia"} {
		if !slices.Contains(exec.lastArgs, want) {
			t.Errorf("args %v missing %q", exec.lastArgs, want)
		}
	}
	if _, err := os.Stat(wav[:len(wav)-4] + ".txt"); !os.IsNotExist(err) {
		t.Errorf("whisper text output not cleaned up")
	}
}

func TestWhisperTranscribeErrors(t *testing.T) {
	tests := []struct {
		name    string
		exec    *fakeWhisper
		missing bool
		want    error
	}{
		{"missing waveform", &fakeWhisper{text: "x"}, true, ErrAudioMissing},
		{"empty transcript", &fakeWhisper{text: " \n "}, false, ErrEmptyTranscript},
		{"model failure", &fakeWhisper{err: errors.New("exit status 3")}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, wav := setupWhisper(t, tt.exec)
			if tt.missing {
				os.Remove(wav)
			}

			got, err := tr.Transcribe(context.Background(), wav, "es")
			if err == nil {
				t.Fatalf("Transcribe() = %q, want error", got)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Transcribe() error = %v, want %v", err, tt.want)
			}
			if tt.missing && tt.exec.lastArgs != nil {
				t.Errorf("model invoked for a missing waveform")
			}
		})
	}
}

func TestNewWhisperCPPFailures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		exec  *fakeWhisper
		model string
	}{
		{"binary not on PATH", &fakeWhisper{lookErr: errors.New("not found")}, filepath.Join(dir, "m.bin")},
		{"model missing", &fakeWhisper{}, filepath.Join(dir, "missing.bin")},
		{"model is a directory", &fakeWhisper{}, dir},
	}
	if err := os.WriteFile(filepath.Join(dir, "m.bin"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWhisperCPP(config.WhisperConfig{BinaryPath: "whisper-cli", ModelPath: tt.model}, tt.exec, logger.Nop())
			if err == nil {
				t.Error("NewWhisperCPP() should fail")
			}
		})
	}
}

func TestNewSelectsBackend(t *testing.T) {
	cfg := &config.Config{
		Transcriber: config.TranscriberConfig{Backend: config.BackendGemini},
		Gemini:      config.GeminiConfig{APIKeys: []string{"k"}},
	}
	tr, err := New(cfg, &fakeWhisper{}, logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if tr.Name() != "gemini:gemini-2.5-flash" {
		t.Errorf("Name() = %v, want gemini:gemini-2.5-flash", tr.Name())
	}

	cfg.Gemini.APIKeys = nil
	if _, err := New(cfg, &fakeWhisper{}, logger.Nop()); err == nil {
		t.Error("New() should fail without API keys")
	}
}

func newTestGemini(t *testing.T, keys []string, gen generateFunc) (*gemini, string) {
	t.Helper()
	tr, err := NewGemini(config.GeminiConfig{APIKeys: keys}, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	g := tr.(*gemini)
	g.generate = gen

	wav := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(wav, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	return g, wav
}

func TestGeminiRotatesOnQuota(t *testing.T) {
	var mu sync.Mutex
	var used []string
	gen := func(ctx context.Context, key, model string, contents []*genai.Content) (string, error) {
		mu.Lock()
		used = append(used, key)
		mu.Unlock()
		if key == "a" {
			return "", errors.New("Error 429, RESOURCE_EXHAUSTED")
		}
		return " texto ", nil
	}

	g, wav := newTestGemini(t, []string{"a", "b"}, gen)
	got, err := g.Transcribe(context.Background(), wav, "es")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "texto" {
		t.Errorf("Transcribe() = %q, want texto", got)
	}
	if !slices.Equal(used, []string{"a", "b"}) {
		t.Errorf("keys used = %v, want [a b]", used)
	}
}

func TestGeminiErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  generateFunc
		want error
	}{
		{
			name: "all keys exhausted",
			gen: func(ctx context.Context, key, model string, contents []*genai.Content) (string, error) {
				return "", errors.New("quota exceeded")
			},
		},
		{
			name: "hard failure",
			gen: func(ctx context.Context, key, model string, contents []*genai.Content) (string, error) {
				return "", errors.New("permission denied")
			},
		},
		{
			name: "empty transcript",
			gen: func(ctx context.Context, key, model string, contents []*genai.Content) (string, error) {
				return "\n", nil
			},
			want: ErrEmptyTranscript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, wav := newTestGemini(t, []string{"a", "b"}, tt.gen)
			_, err := g.Transcribe(context.Background(), wav, "es")
			if err == nil {
				t.Fatal("Transcribe() should fail")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Transcribe() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGeminiMissingAudio(t *testing.T) {
	called := false
	g, _ := newTestGemini(t, []string{"a"}, func(ctx context.Context, key, model string, contents []*genai.Content) (string, error) {
		called = true
		return "x", nil
	})

	_, err := g.Transcribe(context.Background(), filepath.Join(t.TempDir(), "gone.wav"), "es")
	if !errors.Is(err, ErrAudioMissing) {
		t.Errorf("Transcribe() error = %v, want %v", err, ErrAudioMissing)
	}
	if called {
		t.Error("model invoked for a missing waveform")
	}
}
