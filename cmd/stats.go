/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/journey/internal/app"
	"github.com/eslsoft/journey/internal/repository"
)

const (
	statsFilterKey   = "stats.filter"
	statsOrderByKey  = "stats.order_by"
	statsPageKey     = "stats.page"
	statsPageSizeKey = "stats.page_size"
)

// statsCmd lists per-term learning stats. Filters use CEL-style expressions,
// e.g. `exposed == true && correct_total >= 8`.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List per-term learning stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		query := &repository.ListTermStatsQuery{
			Pagination: repository.Pagination{
				PageNo:   viper.GetInt32(statsPageKey),
				PageSize: viper.GetInt32(statsPageSizeKey),
			},
			FilterOrder: repository.FilterOrder{
				Filter:  viper.GetString(statsFilterKey),
				OrderBy: viper.GetString(statsOrderByKey),
			},
		}

		rows, total, err := container.StatsRepo.List(ctx, query)
		if err != nil {
			return fmt.Errorf("list term stats: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TERM\tEXPOSED\tCORRECT\tINCORRECT\tLAST SEEN")
		for _, row := range rows {
			lastSeen := "-"
			if row.LastSeen != nil {
				lastSeen = row.LastSeen.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%v\t%d\t%d\t%s\n",
				row.TermKey, row.Exposed, row.TotalCorrect(), row.TotalIncorrect(), lastSeen)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		cmd.Printf("%d of %d records\n", len(rows), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("filter", "", "CEL filter, e.g. 'exposed == true && correct_total >= 8'")
	statsCmd.Flags().String("order-by", "", "ordering, e.g. 'last_seen desc'")
	statsCmd.Flags().Int32("page", 1, "page number")
	statsCmd.Flags().Int32("page-size", 50, "page size")

	bindFlagToViper(statsFilterKey, statsCmd.Flags().Lookup("filter"))
	bindFlagToViper(statsOrderByKey, statsCmd.Flags().Lookup("order-by"))
	bindFlagToViper(statsPageKey, statsCmd.Flags().Lookup("page"))
	bindFlagToViper(statsPageSizeKey, statsCmd.Flags().Lookup("page-size"))
}
