package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var phaseThreshold float64
var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Finds multi-month phases where one artist dominated",
	Run: func(cmd *cobra.Command, args []string) {
		err := printPhases(os.Stdout, viper.GetString("database"), phaseThreshold)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(phasesCmd)

	phasesCmd.Flags().Float64Var(&phaseThreshold, "threshold", analysis.DefaultPhaseThreshold,
		"minimum share (percent) of a month's listening for it to count toward a phase")
}

func printPhases(out io.Writer, dbPath string, threshold float64) error {
	metric, err := selectedMetric()
	if err != nil {
		return err
	}
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	phases := analysis.DetectPhases(plays, threshold, metric)
	if len(phases) == 0 {
		fmt.Fprintln(out, "No phases detected.")
		return nil
	}

	a := Analysis{results: [][]string{{"Artist", "From", "To", "Intensity"}}}
	for _, phase := range phases {
		a.results = append(a.results, []string{
			phase.ArtistName,
			fmt.Sprintf("%04d-%02d", phase.StartMonth.Year, phase.StartMonth.Month),
			fmt.Sprintf("%04d-%02d", phase.EndMonth.Year, phase.EndMonth.Month),
			formatPercent(phase.Intensity),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
