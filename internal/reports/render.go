package reports

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Supported render formats. An empty format renders JSON.
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// parseFormat normalizes format, rejecting anything Render cannot produce.
func parseFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Render encodes r in the requested format.
func Render(r *Report, format string) (*Document, error) {
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	base := "unmask_report_" + r.SessionID.String()

	switch format {
	case FormatJSON:
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
		return &Document{Data: data, ContentType: "application/json", Filename: base + ".json"}, nil
	case FormatPDF:
		data, err := renderPDF(r)
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		return &Document{Data: data, ContentType: "application/pdf", Filename: base + ".pdf"}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
