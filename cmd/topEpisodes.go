package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var topEpisodesNumber int
var topEpisodesCmd = &cobra.Command{
	Use:   "top-episodes",
	Short: "Gets the most-listened podcast episodes",
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopEpisodes(os.Stdout, viper.GetString("database"), topEpisodesNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topEpisodesCmd)

	topEpisodesCmd.Flags().IntVarP(&topEpisodesNumber, "number", "n", 10, "number of results to return")
}

func printTopEpisodes(out io.Writer, dbPath string, numToReturn int) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	episodes := analysis.TopEpisodes(plays, numToReturn, metric)
	a := Analysis{results: [][]string{{"#", "Episode", "Show", "Minutes", "Plays", "Share"}}}
	for i, episode := range episodes {
		a.results = append(a.results, []string{
			formatCount(i + 1),
			episode.EpisodeName,
			episode.ShowName,
			formatCount(episode.Minutes),
			formatCount(episode.PlayCount),
			formatPercent(episode.Percentage),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
