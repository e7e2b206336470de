package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/store"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Deletes all imported plays and sources",
	Run: func(cmd *cobra.Command, args []string) {
		err := clearDatabase(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func clearDatabase(out io.Writer, dbPath string) error {
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Cleared all plays and sources.")
	return nil
}
