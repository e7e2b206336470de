package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/analysis"
)

var minGapMonths int
var rediscoveriesCmd = &cobra.Command{
	Use:   "rediscoveries",
	Short: "Finds artists picked back up after a long break",
	Run: func(cmd *cobra.Command, args []string) {
		err := printRediscoveries(os.Stdout, viper.GetString("database"), minGapMonths)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rediscoveriesCmd)

	rediscoveriesCmd.Flags().IntVar(&minGapMonths, "min-gap", analysis.DefaultMinGapMonths,
		"minimum gap in months for a return to count as a rediscovery")
}

func printRediscoveries(out io.Writer, dbPath string, minGap int) error {
	plays, err := loadPlays(dbPath)
	if err != nil {
		return err
	}

	rediscoveries := analysis.DetectRediscoveries(plays, minGap)
	if len(rediscoveries) == 0 {
		fmt.Fprintln(out, "No rediscoveries detected.")
		return nil
	}

	a := Analysis{results: [][]string{{"Artist", "Gap (months)", "Last Heard", "Rediscovered"}}}
	for _, r := range rediscoveries {
		a.results = append(a.results, []string{
			r.ArtistName,
			formatCount(r.GapMonths),
			r.PreviousPeriodEnd.Format("2006-01-02"),
			r.RediscoveryDate.Format("2006-01-02"),
		})
	}
	fmt.Fprint(out, a)
	return nil
}
