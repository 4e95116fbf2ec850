package web

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"github.com/nguyentantai21042004/audio-transcriber/internal/processor"
)

// Unavailable is reported by /healthz when no transcriber is loaded
const Unavailable = "unavailable"

type Router struct {
	mux             *chi.Mux
	cfg             *config.Config
	processor       processor.Processor
	transcriberName string
	templates       *template.Template
	logger          logger.Logger
}

// NewRouter wires the form, download and health routes around proc.
// transcriberName is only used for /healthz.
func NewRouter(cfg *config.Config, proc processor.Processor, transcriberName string, log logger.Logger) *Router {
	if !proc.Available() {
		transcriberName = Unavailable
	}
	return &Router{
		mux:             chi.NewRouter(),
		cfg:             cfg,
		processor:       proc,
		transcriberName: transcriberName,
		templates:       templates,
		logger:          log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logging(rt.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", rt.healthz)
	r.Get("/", rt.index)
	r.Post("/", rt.upload)
	r.Get("/download_docx/{filename}", rt.download)

	return r
}
