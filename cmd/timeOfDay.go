package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var timeOfDayCmd = &cobra.Command{
	Use:   "time-of-day",
	Short: "Shows listening per hour of day",
	Run: func(cmd *cobra.Command, args []string) {
		err := printTimeOfDay(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Shows listening per month",
	Run: func(cmd *cobra.Command, args []string) {
		err := printMonthly(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var yearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Shows listening per year",
	Run: func(cmd *cobra.Command, args []string) {
		err := printYearly(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily [yyyy-mm]",
	Short: "Shows listening per day, optionally within one month",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printDaily(os.Stdout, viper.GetString("database"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(timeOfDayCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(yearlyCmd)
	rootCmd.AddCommand(dailyCmd)
}

func printTimeOfDay(out io.Writer, dbPath string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	a := Analysis{
		results: [][]string{{"Hour", "Value"}},
		summary: analysis.TimeOfDaySummary(plays, metric),
	}
	for _, entry := range analysis.TimeOfDayData(plays, metric) {
		a.results = append(a.results, []string{
			fmt.Sprintf("%02d:00", entry.Hour),
			formatCount(entry.Minutes),
		})
	}
	fmt.Fprint(out, a)
	return nil
}

func printMonthly(out io.Writer, dbPath string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	a := Analysis{results: [][]string{{"Month", "Value"}}}
	for _, entry := range analysis.MonthlyData(plays, metric) {
		a.results = append(a.results, []string{
			fmt.Sprintf("%04d-%02d", entry.Year, entry.Month),
			formatCount(entry.Minutes),
		})
	}
	fmt.Fprint(out, a)
	return nil
}

func printYearly(out io.Writer, dbPath string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	a := Analysis{results: [][]string{{"Year", "Value"}}}
	for _, entry := range analysis.YearlyData(plays, metric) {
		a.results = append(a.results, []string{
			formatCount(entry.Year),
			formatCount(entry.Minutes),
		})
	}
	fmt.Fprint(out, a)
	return nil
}

func printDaily(out io.Writer, dbPath string, args []string) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}

	var year, month int
	if len(args) == 1 {
		year, month, err = parseYearMonth(args[0])
		if err != nil {
			return err
		}
	}

	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	a := Analysis{results: [][]string{{"Date", "Value"}}}
	for _, entry := range analysis.DailyData(plays, year, month, metric) {
		a.results = append(a.results, []string{
			entry.Date.Format("2006-01-02"),
			formatCount(entry.Minutes),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
