package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var contentSplitCmd = &cobra.Command{
	Use:   "content-split",
	Short: "Shows the music/podcast split per year",
	Run: func(cmd *cobra.Command, args []string) {
		err := printContentSplit(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(contentSplitCmd)
}

func printContentSplit(out io.Writer, dbPath string) error {
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	a := Analysis{results: [][]string{{"Year", "Music (min)", "Podcast (min)", "Music", "Podcast"}}}
	for _, split := range analysis.GetContentSplit(plays) {
		a.results = append(a.results, []string{
			formatCount(split.Year),
			formatCount(split.MusicMinutes),
			formatCount(split.PodcastMinutes),
			formatPercent(split.MusicPercentage),
			formatPercent(split.PodcastPercentage),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
