package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvannes/spotify-history-tools/internal/store"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Lists imported sources",
	Run: func(cmd *cobra.Command, args []string) {
		err := printSources(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var sourcesRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Renames a source",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := withStore(func(db *store.Store) error {
			return db.RenameSource(args[0], args[1])
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var sourcesEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Includes a source's plays in analytics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withStore(func(db *store.Store) error {
			return db.SetSourceEnabled(args[0], true)
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var sourcesDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Excludes a source's plays from analytics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withStore(func(db *store.Store) error {
			return db.SetSourceEnabled(args[0], false)
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var sourcesEnableAllCmd = &cobra.Command{
	Use:   "enable-all",
	Short: "Enables every source",
	Run: func(cmd *cobra.Command, args []string) {
		err := withStore(func(db *store.Store) error {
			return db.SetAllSourcesEnabled(true)
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var sourcesDisableAllCmd = &cobra.Command{
	Use:   "disable-all",
	Short: "Disables every source",
	Run: func(cmd *cobra.Command, args []string) {
		err := withStore(func(db *store.Store) error {
			return db.SetAllSourcesEnabled(false)
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Removes a source and all of its plays",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withStore(func(db *store.Store) error {
			return db.RemoveSource(args[0])
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesRenameCmd)
	sourcesCmd.AddCommand(sourcesEnableCmd)
	sourcesCmd.AddCommand(sourcesDisableCmd)
	sourcesCmd.AddCommand(sourcesEnableAllCmd)
	sourcesCmd.AddCommand(sourcesDisableAllCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}

func withStore(fn func(db *store.Store) error) error {
	db, err := store.New(viper.GetString("database"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	return fn(db)
}

func printSources(out io.Writer, dbPath string) error {
	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	sources, err := db.GetSources()
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintln(out, "No sources imported yet.")
		return nil
	}

	a := Analysis{results: [][]string{{"ID", "Name", "Username", "Enabled"}}}
	for _, src := range sources {
		enabled := "yes"
		if !src.Enabled {
			enabled = "no"
		}
		a.results = append(a.results, []string{src.ID, src.Name, src.DetectedUsername, enabled})
	}
	fmt.Fprint(out, a)
	return nil
}
