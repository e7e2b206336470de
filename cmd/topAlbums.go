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

var topAlbumsNumber int
var topAlbumsCmd = &cobra.Command{
	Use:   "top-albums",
	Short: "Gets the most-listened albums",
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopAlbums(os.Stdout, viper.GetString("database"), topAlbumsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topAlbumsCmd)

	topAlbumsCmd.Flags().IntVarP(&topAlbumsNumber, "number", "n", 10, "number of results to return")
}

func printTopAlbums(out io.Writer, dbPath string, numToReturn int) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	albums := analysis.TopAlbums(plays, numToReturn, metric)
	a := Analysis{results: [][]string{{"#", "Album", "Artist", "Minutes", "Plays", "Share"}}}
	for i, album := range albums {
		a.results = append(a.results, []string{
			formatCount(i + 1),
			album.AlbumName,
			album.ArtistName,
			formatCount(album.Minutes),
			formatCount(album.PlayCount),
			formatPercent(album.Percentage),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
