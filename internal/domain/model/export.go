package model

import (
	"errors"
	"io"
	"path"
	"strings"
)

// ExportFile is a generated spreadsheet available for download.
type ExportFile struct {
	Filename    string    `json:"filename"`
	Filepath    string    `json:"filepath,omitempty"`
	Size        int64     `json:"size"`
	CreatedTime Timestamp `json:"created_time"`
}

// Kind infers the data set from the filename prefix
// (raw_data_YYYYmmdd_HHMMSS.xlsx, sample_data_...).
func (f *ExportFile) Kind() RecordKind {
	switch {
	case strings.HasPrefix(f.Filename, "raw_data_"):
		return RecordKindRaw
	case strings.HasPrefix(f.Filename, "sample_data_"):
		return RecordKindSample
	default:
		return ""
	}
}

// CountExports returns how many files of the kind are present.
func CountExports(files []ExportFile, kind RecordKind) int {
	n := 0
	for i := range files {
		if files[i].Kind() == kind {
			n++
		}
	}
	return n
}

// ValidateFilename rejects names that could escape the export directory.
func ValidateFilename(name string) error {
	if name == "" {
		return errors.New("filename is required")
	}
	if name != path.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.New("invalid filename")
	}
	return nil
}

// ActionMessage is the generic {"message": ...} body returned by action endpoints.
type ActionMessage struct {
	Message string `json:"message"`
}

// ExportDownload is an open stream of an export file. Callers must close Body.
type ExportDownload struct {
	Filename      string
	ContentType   string
	ContentLength int64 // -1 when unknown
	Body          io.ReadCloser
}
