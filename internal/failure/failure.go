// Package failure enumerates every way an upload can be rejected, with the
// message and flash category shown to the user.
package failure

// Kind is a closed set of failure reasons. None means success.
type Kind int

const (
	None Kind = iota
	UnselectedFile
	DisallowedExtension
	MalformedStartTime
	MalformedEndTime
	StartAfterEnd
	InvalidStartTime
	StartTimeOutOfBounds
	InvalidEndTime
	EndTimeBeforeStartTime
	InvalidInterval
	ZeroLengthSlice
	DecodeError
	FileNotFound
	ProcessingError
	TranscriptionUnavailable
	ServiceUnavailable
)

// Category is the flash style a message is rendered with
type Category string

const (
	Info    Category = "info"
	Success Category = "success"
	Warning Category = "warning"
	Danger  Category = "danger"
)

// Message is one line shown above the upload form
type Message struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

// All lists every failure kind, None excluded
func All() []Kind {
	kinds := make([]Kind, 0, int(ServiceUnavailable))
	for k := UnselectedFile; k <= ServiceUnavailable; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case UnselectedFile:
		return "unselected_file"
	case DisallowedExtension:
		return "disallowed_extension"
	case MalformedStartTime:
		return "malformed_start_time"
	case MalformedEndTime:
		return "malformed_end_time"
	case StartAfterEnd:
		return "start_after_end"
	case InvalidStartTime:
		return "invalid_start_time"
	case StartTimeOutOfBounds:
		return "start_time_out_of_bounds"
	case InvalidEndTime:
		return "invalid_end_time"
	case EndTimeBeforeStartTime:
		return "end_time_before_start_time"
	case InvalidInterval:
		return "invalid_interval"
	case ZeroLengthSlice:
		return "zero_length_slice"
	case DecodeError:
		return "decode_error"
	case FileNotFound:
		return "file_not_found"
	case ProcessingError:
		return "processing_error"
	case TranscriptionUnavailable:
		return "transcription_unavailable"
	case ServiceUnavailable:
		return "service_unavailable"
	}
	return "unknown"
}

// Text returns the user-facing message for k
func (k Kind) Text() string {
	switch k {
	case None:
		return ""
	case UnselectedFile:
		return "No se seleccionó ningún archivo."
	case DisallowedExtension:
		return "Tipo de archivo no permitido."
	case MalformedStartTime:
		return "Formato de tiempo de inicio inválido. Use HH:MM:SS."
	case MalformedEndTime:
		return "Formato de tiempo de fin inválido. Use HH:MM:SS."
	case StartAfterEnd:
		return "El tiempo de inicio debe ser anterior al tiempo de fin."
	case InvalidStartTime:
		return "Tiempo de inicio proporcionado es inválido."
	case StartTimeOutOfBounds:
		return "El tiempo de inicio está fuera de los límites del audio."
	case InvalidEndTime:
		return "Tiempo de fin proporcionado es inválido."
	case EndTimeBeforeStartTime:
		return "El tiempo de fin es anterior o igual al tiempo de inicio."
	case InvalidInterval:
		return "El intervalo de tiempo para el recorte es inválido."
	case ZeroLengthSlice:
		return "El recorte resultó en un audio de duración cero. Verifica los tiempos."
	case DecodeError:
		return "No se pudo decodificar el archivo de audio. ¿Formato corrupto o no soportado?"
	case FileNotFound:
		return "Archivo de audio no encontrado durante el procesamiento (inesperado)."
	case ProcessingError:
		return "Error inesperado durante el procesamiento del audio."
	case TranscriptionUnavailable:
		return "No se pudo transcribir el audio. El modelo Whisper pudo haber fallado."
	case ServiceUnavailable:
		return "Error: El servicio de transcripción no está disponible. Revisa la consola del servidor."
	}
	return "Error desconocido al procesar el audio."
}

// Category returns how k is surfaced. Only a missing file is a warning.
func (k Kind) Category() Category {
	switch k {
	case None:
		return Info
	case UnselectedFile:
		return Warning
	}
	return Danger
}

// Message renders k for the flash area
func (k Kind) Message() Message {
	return Message{Category: k.Category(), Text: k.Text()}
}

// Messages renders a list of kinds in order
func Messages(kinds ...Kind) []Message {
	out := make([]Message, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.Message())
	}
	return out
}
