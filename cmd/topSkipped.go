package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var topSkippedNumber int
var topSkippedCmd = &cobra.Command{
	Use:   "top-skipped",
	Short: "Gets the most-skipped songs",
	Long:  `Only counts plays the export itself flagged as skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopSkipped(os.Stdout, viper.GetString("database"), topSkippedNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topSkippedCmd)

	topSkippedCmd.Flags().IntVarP(&topSkippedNumber, "number", "n", 10, "number of results to return")
}

func printTopSkipped(out io.Writer, dbPath string, numToReturn int) error {
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	songs := analysis.TopSkippedSongs(plays, numToReturn)
	a := Analysis{results: [][]string{{"#", "Track", "Artist", "Skips", "Plays", "Skip Rate"}}}
	for i, song := range songs {
		a.results = append(a.results, []string{
			formatCount(i + 1),
			song.TrackName,
			song.ArtistName,
			formatCount(song.SkipCount),
			formatCount(song.TotalPlays),
			formatPercent(song.SkipRate),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
