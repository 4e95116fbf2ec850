package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
)

const flashCookie = "flash"

// setFlash stores messages for the next page load
func setFlash(w http.ResponseWriter, msgs []failure.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// popFlash reads pending messages and expires the cookie. A tampered cookie yields none.
func popFlash(w http.ResponseWriter, r *http.Request) []failure.Message {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})

	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var msgs []failure.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil
	}
	return msgs
}
