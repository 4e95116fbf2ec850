package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
	"github.com/nguyentantai21042004/audio-transcriber/internal/processor"
)

const (
	fieldAudio = "audio_file"
	fieldStart = "start_time"
	fieldEnd   = "end_time"

	// memory kept per multipart form, the rest spills to disk
	multipartMemory = 32 << 20
)

var msgDocumentNotFound = failure.Message{Category: failure.Danger, Text: "Archivo DOCX no encontrado."}

type indexPage struct {
	Messages []failure.Message
}

type resultPage struct {
	Messages         []failure.Message
	OriginalFilename string
	Transcription    string
	DocxFilename     string
}

func (rt *Router) index(w http.ResponseWriter, r *http.Request) {
	rt.render(w, r, "index.html", indexPage{Messages: popFlash(w, r)})
}

func (rt *Router) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.Server.MaxUploadMB<<20)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rt.logger.Warn(ctx, "Upload over %d MB rejected", rt.cfg.Server.MaxUploadMB)
		} else {
			rt.logger.Warn(ctx, "Invalid multipart form: %v", err)
		}
		rt.redirectWithFlash(w, r, failure.Messages(failure.ProcessingError))
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := processor.Request{
		StartTime: r.FormValue(fieldStart),
		EndTime:   r.FormValue(fieldEnd),
	}
	file, header, err := r.FormFile(fieldAudio)
	switch {
	case err == nil:
		defer file.Close()
		req.Filename = header.Filename
		req.Upload = file
	case !errors.Is(err, http.ErrMissingFile):
		rt.logger.Warn(ctx, "Reading form file: %v", err)
	}

	res := rt.processor.Process(ctx, req)
	if !res.OK() {
		rt.logger.Info(ctx, "Upload %q rejected: %v", req.Filename, res.Err())
		rt.redirectWithFlash(w, r, res.Flash())
		return
	}

	rt.render(w, r, "result.html", resultPage{
		Messages:         res.Flash(),
		OriginalFilename: res.OriginalFilename,
		Transcription:    res.Transcript,
		DocxFilename:     res.DocumentName,
	})
}

func (rt *Router) download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		rt.logger.Warn(r.Context(), "Rejected document name %q", name)
		rt.redirectWithFlash(w, r, []failure.Message{msgDocumentNotFound})
		return
	}

	path := filepath.Join(rt.cfg.Paths.Output, name)
	f, err := os.Open(path)
	if err != nil {
		rt.redirectWithFlash(w, r, []failure.Message{msgDocumentNotFound})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		rt.redirectWithFlash(w, r, []failure.Message{msgDocumentNotFound})
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (rt *Router) healthz(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if !rt.processor.Available() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{
		"status":      statusStr(status),
		"transcriber": rt.transcriberName,
	})
}

func (rt *Router) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rt.templates.ExecuteTemplate(w, name, data); err != nil {
		rt.logger.Error(r.Context(), "Render %s: %v", name, err)
	}
}

func (rt *Router) redirectWithFlash(w http.ResponseWriter, r *http.Request, msgs []failure.Message) {
	if err := setFlash(w, msgs); err != nil {
		rt.logger.Warn(r.Context(), "Failed to set flash cookie: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return Unavailable
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
