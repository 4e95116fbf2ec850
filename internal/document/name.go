package document

import (
	"path/filepath"
	"strings"
)

const outputSuffix = "_transcripcion"

// OutputName derives the document filename from the uploaded file's name,
// e.g. "audiencia.mp3" -> "audiencia_transcripcion.docx"
func OutputName(originalFilename, ext string) string {
	base := filepath.Base(originalFilename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + outputSuffix + ext
}
