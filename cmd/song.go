package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
	"github.com/pvannes/spotify-history-tools/internal/play"
)

var songCmd = &cobra.Command{
	Use:   "song <artist> <track>",
	Short: "Shows one song's listening history",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSong(os.Stdout, viper.GetString("database"), args[0], args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(songCmd)
}

func printSong(out io.Writer, dbPath string, artist, track string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	var songPlays []play.Play
	skips := 0
	for _, p := range plays {
		if strings.EqualFold(p.ArtistName, artist) && strings.EqualFold(p.TrackName, track) {
			songPlays = append(songPlays, p)
			if p.Skipped {
				skips++
			}
		}
	}
	if len(songPlays) == 0 {
		fmt.Fprintf(out, "No plays found for %q by %q.\n", track, artist)
		return nil
	}

	first := songPlays[0]
	fmt.Fprintf(out, "%s - %s\n", first.ArtistName, first.TrackName)
	if first.AlbumName != "" {
		fmt.Fprintf(out, "Album: %s\n", first.AlbumName)
	}
	fmt.Fprintf(out, "Total plays: %s\n", humanize.Comma(int64(len(songPlays))))

	var totalMs int64
	for _, p := range songPlays {
		totalMs += p.MsPlayed
	}
	fmt.Fprintf(out, "Total listening time: %s minutes\n",
		humanize.Comma(int64(float64(totalMs)/60000+0.5)))
	fmt.Fprintf(out, "Times skipped: %s\n", humanize.Comma(int64(skips)))
	fmt.Fprintf(out, "First played: %s\n", first.Timestamp.Format("2006-01-02"))
	fmt.Fprintf(out, "Last played: %s\n\n",
		songPlays[len(songPlays)-1].Timestamp.Format("2006-01-02"))

	a := Analysis{results: [][]string{{"Month", "Value"}}}
	for _, entry := range analysis.MonthlyData(songPlays, metric) {
		a.results = append(a.results, []string{
			fmt.Sprintf("%04d-%02d", entry.Year, entry.Month),
			formatCount(entry.Minutes),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
