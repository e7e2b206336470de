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
	"github.com/pvannes/spotify-history-tools/internal/genre"
	"github.com/pvannes/spotify-history-tools/internal/play"
)

var artistCmd = &cobra.Command{
	Use:   "artist <name>",
	Short: "Shows one artist's listening history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printArtist(os.Stdout, viper.GetString("database"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistCmd)
}

func printArtist(out io.Writer, dbPath string, name string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	var artistPlays []play.Play
	artistID := ""
	for _, p := range plays {
		if strings.EqualFold(p.ArtistName, name) {
			artistPlays = append(artistPlays, p)
			if artistID == "" {
				artistID = p.ArtistID
			}
		}
	}
	if len(artistPlays) == 0 {
		fmt.Fprintf(out, "No plays found for %q.\n", name)
		return nil
	}

	fmt.Fprintf(out, "%s\n", artistPlays[0].ArtistName)
	fmt.Fprintf(out, "Genre: %s\n", genre.Resolve(artistID, artistPlays[0].ArtistName))
	fmt.Fprintf(out, "Total listening time: %s hours\n",
		humanize.Comma(int64(analysis.TotalListeningHours(artistPlays))))
	fmt.Fprintf(out, "Total plays: %s\n\n",
		humanize.Comma(int64(analysis.TotalPlays(artistPlays))))

	a := Analysis{results: [][]string{{"Month", "Value"}}}
	for _, entry := range analysis.MonthlyData(artistPlays, metric) {
		a.results = append(a.results, []string{
			fmt.Sprintf("%04d-%02d", entry.Year, entry.Month),
			formatCount(entry.Minutes),
		})
	}
	fmt.Fprint(out, a)

	albums := analysis.TopAlbums(artistPlays, 10, metric)
	if len(albums) > 0 {
		fmt.Fprintln(out)
		b := Analysis{results: [][]string{{"#", "Album", "Minutes", "Plays"}}}
		for i, album := range albums {
			b.results = append(b.results, []string{
				formatCount(i + 1),
				album.AlbumName,
				formatCount(album.Minutes),
				formatCount(album.PlayCount),
			})
		}
		fmt.Fprint(out, b)
	}
	return nil
}
