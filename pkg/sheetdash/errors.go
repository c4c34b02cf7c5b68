package sheetdash

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable xlsx container.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("no sheets found in workbook")

// ErrNoWorkbook indicates an operation that needs a loaded workbook ran before one was loaded.
var ErrNoWorkbook = errors.New("no workbook loaded")

// ErrUnknownSheet indicates a sheet name not present in the loaded workbook.
var ErrUnknownSheet = errors.New("unknown sheet")

// ErrHeaderRowOutOfRange indicates a negative header row index.
var ErrHeaderRowOutOfRange = errors.New("header row out of range")

// IngestionError reports a failure while loading a workbook. The session
// state is unchanged when one is returned.
type IngestionError struct {
	Source string
	Stage  string // "read", "open", "sheets"
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion error in %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// NewIngestionError creates a new IngestionError.
func NewIngestionError(source, stage string, err error) *IngestionError {
	return &IngestionError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
