/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var topArtistsNumber int
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Gets the most-listened artists",
	Long:  `Podcast shows count as artists here; use top-episodes for podcasts alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout, viper.GetString("database"), topArtistsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 10, "number of results to return")
}

func printTopArtists(out io.Writer, dbPath string, numToReturn int) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	artists := analysis.TopArtists(plays, numToReturn, metric)
	a := Analysis{results: [][]string{{"#", "Artist", "Minutes", "Plays", "Share", "Peak Month"}}}
	for i, artist := range artists {
		peak := ""
		if artist.PeakMonth != nil {
			peak = fmt.Sprintf("%04d-%02d", artist.PeakMonth.Year, artist.PeakMonth.Month)
		}
		a.results = append(a.results, []string{
			formatCount(i + 1),
			artist.ArtistName,
			formatCount(artist.Minutes),
			formatCount(artist.PlayCount),
			formatPercent(artist.Percentage),
			peak,
		})
	}
	fmt.Fprint(out, a)
	return nil
}
