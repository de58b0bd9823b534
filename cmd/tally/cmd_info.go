package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ntari/tally/internal/loader"

	_ "github.com/ntari/tally/internal/loader/httpsrc"
	_ "github.com/ntari/tally/internal/loader/sqlite"
	_ "github.com/ntari/tally/internal/loader/tsv"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "List the recognized quality filtering standards",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("NAME           THRESHOLD  PURPOSE")
		fmt.Println("none           999h       no filtering (baseline comparison)")
		fmt.Println("conservative   8h         filter obvious data quality issues [recommended]")
		fmt.Println("moderate       4h         encourage extended-session documentation")
		fmt.Println("professional   2h         developing professional standards")
		fmt.Println("strict         1h         full professional time tracking")
	},
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the registered row sources",
	Run: func(cmd *cobra.Command, args []string) {
		names := loader.Sources()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
	},
}
