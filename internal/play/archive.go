package play

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/goccy/go-json"
)

// HistoryFile is one decoded history entry from an archive.
type HistoryFile struct {
	Name    string
	Records []RawRecord
}

var historyFilePattern = regexp.MustCompile(`(?i)Streaming_History.*\.json$`)

// ExtractArchive enumerates streaming-history JSON entries inside a ZIP
// blob and decodes each. Malformed entries are logged and skipped so one
// corrupted file never sinks the rest of the archive; entries yielding
// zero records are dropped.
func ExtractArchive(data []byte) ([]HistoryFile, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	var files []HistoryFile
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || !historyFilePattern.MatchString(entry.Name) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", entry.Name, err)
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", entry.Name, err)
			continue
		}

		records, err := DecodeRecords(content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", entry.Name, err)
			continue
		}
		if len(records) == 0 {
			continue
		}

		files = append(files, HistoryFile{Name: entry.Name, Records: records})
	}

	return files, nil
}

// DecodeRecords parses a history file's JSON content, accepting either a
// top-level array of records or an object with an items array.
func DecodeRecords(data []byte) ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Items []RawRecord `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return wrapper.Items, nil
}
