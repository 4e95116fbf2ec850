package processor

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
)

// Result is what the web layer renders
type Result struct {
	OriginalFilename string
	Transcript       string
	// DocumentName is empty when the export failed
	DocumentName string
	// Notices are progress and success messages in the order they happened
	Notices  []failure.Message
	Failures []failure.Kind
}

func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Flash returns notices followed by one message per failure
func (r Result) Flash() []failure.Message {
	out := make([]failure.Message, 0, len(r.Notices)+len(r.Failures))
	out = append(out, r.Notices...)
	return append(out, failure.Messages(r.Failures...)...)
}

// Err summarizes the failures for logs, nil on success
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	names := make([]string, len(r.Failures))
	for i, k := range r.Failures {
		names[i] = k.String()
	}
	return fmt.Errorf("processing failed: %s", strings.Join(names, ", "))
}

func (r *Result) notice(category failure.Category, text string) {
	r.Notices = append(r.Notices, failure.Message{Category: category, Text: text})
}

func (r Result) fail(kinds ...failure.Kind) Result {
	r.Failures = append(r.Failures, kinds...)
	return r
}
