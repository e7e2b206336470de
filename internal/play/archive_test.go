package play

import (
	"archive/zip"
	"bytes"
	"testing"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating archive entry %q: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing archive entry %q: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

const recordJSON = `[{"endTime": "2023-01-01 10:00", "artistName": "A", "trackName": "One", "msPlayed": 60000}]`

func TestExtractArchive(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"MyData/StreamingHistory0.json":                     recordJSON,
		"MyData/Streaming_History_Audio_2022_1.json":        recordJSON,
		"MyData/Playlist1.json":                             `[]`,
		"MyData/Read_Me_First.pdf":                          "not json",
		"Spotify Extended Streaming History/Streaming_History_Video.json": recordJSON,
	})

	files, err := ExtractArchive(data)
	if err != nil {
		t.Fatalf("ExtractArchive failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d history files, want 2", len(files))
	}
	for _, f := range files {
		if len(f.Records) != 1 {
			t.Errorf("%s: got %d records, want 1", f.Name, len(f.Records))
		}
	}
}

func TestExtractArchiveSkipsMalformedEntries(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Streaming_History_Audio_2022.json": recordJSON,
		"Streaming_History_Audio_2023.json": `{"this is": not json`,
	})

	files, err := ExtractArchive(data)
	if err != nil {
		t.Fatalf("ExtractArchive failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d history files, want 1", len(files))
	}
	if files[0].Name != "Streaming_History_Audio_2022.json" {
		t.Errorf("kept %q, want the well-formed entry", files[0].Name)
	}
}

func TestExtractArchiveNotAZip(t *testing.T) {
	if _, err := ExtractArchive([]byte("definitely not a zip")); err == nil {
		t.Error("ExtractArchive accepted garbage input")
	}
}

func TestDecodeRecordsArray(t *testing.T) {
	records, err := DecodeRecords([]byte(recordJSON))
	if err != nil {
		t.Fatalf("DecodeRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestDecodeRecordsItemsObject(t *testing.T) {
	data := []byte(`{"items": [{"endTime": "2023-01-01 10:00", "artistName": "A", "trackName": "One", "msPlayed": 60000}]}`)
	records, err := DecodeRecords(data)
	if err != nil {
		t.Fatalf("DecodeRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].stringField("artistName") != "A" {
		t.Errorf("artistName = %q, want A", records[0].stringField("artistName"))
	}
}

func TestDecodeRecordsInvalid(t *testing.T) {
	if _, err := DecodeRecords([]byte(`"just a string"`)); err == nil {
		t.Error("DecodeRecords accepted a bare string")
	}
}
