package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/play"
	"github.com/pvannes/spotify-history-tools/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file...>",
	Short: "Imports streaming history files into the database",
	Long: `Accepts the .json files of a Spotify privacy export, or the whole
.zip archive. Each imported file becomes a source that can be enabled or
disabled independently. Records that cannot be parsed are dropped.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := importFiles(os.Stdout, viper.GetString("database"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func importFiles(out io.Writer, dbPath string, paths []string) error {
	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	totalPlays := 0
	totalSources := 0
	for _, path := range paths {
		added, err := importOne(out, db, path)
		if err != nil {
			// File-scoped failures are reported and the batch moves on.
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		if added > 0 {
			totalPlays += added
			totalSources++
		}
	}

	if totalPlays == 0 {
		fmt.Fprintln(out, "No new plays found.")
		return nil
	}

	sourceLabel := "sources"
	if totalSources == 1 {
		sourceLabel = "source"
	}
	fmt.Fprintf(out, "Imported %s plays from %d %s.\n",
		humanize.Comma(int64(totalPlays)), totalSources, sourceLabel)
	return nil
}

// importOne reads one uploaded file, normalizes its records, and stores
// them under a fresh source. Returns the number of plays added.
func importOne(out io.Writer, db *store.Store, path string) (int, error) {
	var records []play.RawRecord

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		files, err := play.ExtractArchive(data)
		if err != nil {
			return 0, fmt.Errorf("unsupported file: %s: %w", path, err)
		}
		for _, f := range files {
			records = append(records, f.Records...)
		}
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		records, err = play.DecodeRecords(data)
		if err != nil {
			return 0, fmt.Errorf("unsupported file: %s: %w", path, err)
		}
	default:
		return 0, fmt.Errorf("unsupported file: %s", path)
	}

	if len(records) == 0 {
		return 0, nil
	}

	sourceID := uuid.NewString()
	plays := play.ParseRecords(records, sourceID)
	if len(plays) == 0 {
		return 0, nil
	}

	username := play.DetectUsername(records)
	name := username
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := db.AddSource(play.Source{
		ID:               sourceID,
		Name:             name,
		DetectedUsername: username,
		Enabled:          true,
	}); err != nil {
		return 0, err
	}
	if err := db.AddPlays(plays); err != nil {
		return 0, err
	}

	fmt.Fprintf(out, "%s: %s plays\n", path, humanize.Comma(int64(len(plays))))
	return len(plays), nil
}
