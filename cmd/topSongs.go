package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var topSongsNumber int
var topSongsCmd = &cobra.Command{
	Use:   "top-songs",
	Short: "Gets the most-listened songs",
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopSongs(os.Stdout, viper.GetString("database"), topSongsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topSongsCmd)

	topSongsCmd.Flags().IntVarP(&topSongsNumber, "number", "n", 10, "number of results to return")
}

func printTopSongs(out io.Writer, dbPath string, numToReturn int) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	songs := analysis.TopSongs(plays, numToReturn, metric)
	a := Analysis{results: [][]string{{"#", "Track", "Artist", "Minutes", "Plays", "Share"}}}
	for i, song := range songs {
		a.results = append(a.results, []string{
			formatCount(i + 1),
			song.TrackName,
			song.ArtistName,
			formatCount(song.Minutes),
			formatCount(song.PlayCount),
			formatPercent(song.Percentage),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
