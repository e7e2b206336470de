package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Ranks canonical genres by listening",
	Run: func(cmd *cobra.Command, args []string) {
		err := printGenres(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var genreEvolutionCmd = &cobra.Command{
	Use:   "genre-evolution",
	Short: "Shows each genre's share of music listening per year",
	Run: func(cmd *cobra.Command, args []string) {
		err := printGenreEvolution(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(genreEvolutionCmd)
}

func printGenres(out io.Writer, dbPath string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	genres := analysis.TopGenres(plays, metric)
	a := Analysis{results: [][]string{{"#", "Genre", "Minutes", "Plays", "Share"}}}
	for i, g := range genres {
		a.results = append(a.results, []string{
			formatCount(i + 1),
			g.Genre,
			formatCount(g.Minutes),
			formatCount(g.PlayCount),
			formatPercent(g.Percentage),
		})
	}
	fmt.Fprint(out, a)
	return nil
}

func printGenreEvolution(out io.Writer, dbPath string) error {
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	for _, entry := range analysis.GenreEvolution(plays) {
		fmt.Fprintf(out, "%d:", entry.Year)
		for i, share := range entry.Genres {
			if i > 0 {
				fmt.Fprint(out, ",")
			}
			fmt.Fprintf(out, " %s %s", share.Genre, formatPercent(share.Percentage))
		}
		fmt.Fprintln(out)
	}
	return nil
}
