package document

// Writer renders a transcript into a downloadable document
type Writer interface {
	Write(title, text, outputPath string) error
	// Ext is the file extension including the dot
	Ext() string
}
