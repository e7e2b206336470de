package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Summarizes the listening history",
	Run: func(cmd *cobra.Command, args []string) {
		err := printOverview(os.Stdout, viper.GetString("database"), time.Now())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func printOverview(out io.Writer, dbPath string, now time.Time) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}
	if len(plays) == 0 {
		fmt.Fprintln(out, "No plays imported yet.")
		return nil
	}

	fmt.Fprintf(out, "Total listening time: %s hours\n",
		humanize.Comma(int64(analysis.TotalListeningHours(plays))))
	fmt.Fprintf(out, "Total plays: %s\n",
		humanize.Comma(int64(analysis.TotalPlays(plays))))

	if year, ok := analysis.GoldenYear(plays); ok {
		fmt.Fprintf(out, "Golden year: %d\n", year)
	}
	if day, ok := analysis.PeakDay(plays); ok {
		fmt.Fprintf(out, "Peak day: %s\n", day.Format("2006-01-02"))
	}
	if hour, ok := analysis.PeakHour(plays, metric); ok {
		fmt.Fprintf(out, "Peak hour: %02d:00\n", hour)
	}

	streaks := analysis.CalculateStreaks(plays, now)
	fmt.Fprintf(out, "Longest streak: %d days\n", streaks.LongestStreak)
	fmt.Fprintf(out, "Current streak: %d days\n", streaks.CurrentStreak)
	if !streaks.LastListeningDate.IsZero() {
		fmt.Fprintf(out, "Last listening day: %s\n", streaks.LastListeningDate.Format("2006-01-02"))
	}

	fmt.Fprintln(out, analysis.TimeOfDaySummary(plays, metric))
	return nil
}
