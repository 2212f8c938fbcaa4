// package formatter renders title listings to output formats (plain text, CSV, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"mixtape/internal/models"
	"mixtape/internal/shared"
)

// Supported titles output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// TitlesToText renders one "<name> - <artist>" line per track.
func TitlesToText(titles []models.TrackTitle) []byte {
	var buf bytes.Buffer
	for _, title := range titles {
		buf.WriteString(fmt.Sprintf("%s - %s\n", title.Name, title.Artist))
	}
	return buf.Bytes()
}

// TitlesToCSV renders titles as CSV with Title and Artist columns.
func TitlesToCSV(titles []models.TrackTitle) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Title", "Artist"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, title := range titles {
		if err := writer.Write([]string{title.Name, title.Artist}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TitlesToJSON renders titles as indented JSON.
func TitlesToJSON(titles []models.TrackTitle) ([]byte, error) {
	if titles == nil {
		titles = []models.TrackTitle{}
	}
	return shared.MarshalJSON(titles, true)
}

// WriteTitles renders titles in the given format and writes them to w.
func WriteTitles(w io.Writer, titles []models.TrackTitle, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatText, "":
		data = TitlesToText(titles)
	case FormatCSV:
		data, err = TitlesToCSV(titles)
	case FormatJSON:
		data, err = TitlesToJSON(titles)
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
