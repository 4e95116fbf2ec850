package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/audio-transcriber/internal/audio"
	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/document"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"github.com/nguyentantai21042004/audio-transcriber/internal/processor"
	"github.com/nguyentantai21042004/audio-transcriber/internal/transcriber"
	"github.com/nguyentantai21042004/audio-transcriber/internal/watcher"
	"github.com/nguyentantai21042004/audio-transcriber/internal/web"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Transcriber")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Transcriber backend: %s", cfg.Transcriber.Backend)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	if _, err := exec.LookPath(cfg.FFmpeg.BinaryPath); err != nil {
		log.Warn(ctx, "%s not found in PATH: audio decoding will fail until it is installed", cfg.FFmpeg.BinaryPath)
	}

	decoder := audio.NewFFmpegDecoder(exec, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.SampleRate, log)
	slicer := audio.NewSlicer(decoder, cfg.TempWavPath(), log)

	// The server still starts without a model; uploads then report the service as unavailable
	var trName string
	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "CRITICAL: transcriber could not be initialized: %v", err)
	} else {
		trName = tr.Name()
		log.Info(ctx, "Transcriber ready: %s", trName)
	}

	proc := processor.New(cfg, slicer, tr, document.NewDocx(), log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)

	// Optional inbox folder
	if cfg.Paths.Inbox != "" && proc.Available() {
		w, err := watcher.New(cfg.Paths.Inbox, proc.ProcessFile, log, watcher.Options{
			MaxConcurrent: cfg.Performance.MaxConcurrent,
			Filter:        processor.IsAllowed,
		})
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- err
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      web.NewRouter(cfg, proc, trName, log).Setup(),
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Listening on http://%s", cfg.Addr())
	log.Info(ctx, "Uploads: %s", cfg.Paths.Uploads)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	if cfg.Paths.Inbox != "" {
		log.Info(ctx, "Inbox: %s (max concurrent: %d)", cfg.Paths.Inbox, cfg.Performance.MaxConcurrent)
	}
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Server shutdown: %v", err)
	}

	log.Info(shutdownCtx, "Audio Transcriber stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Uploads,
		cfg.TempWavPath(),
		cfg.Paths.Output,
	}
	if cfg.Paths.Inbox != "" {
		dirs = append(dirs, cfg.Paths.Inbox)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
