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
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/journey/internal/app"
)

const dbInitWordlistsKey = "db.init.wordlists"

// dbInitCmd migrates the database schema and optionally seeds the term
// catalog from wordlist JSON files.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Create the database schema and optionally seed wordlists",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		if err := container.DB.Schema.Create(ctx); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
		container.Logger.Info("database schema up to date")

		for _, path := range viper.GetStringSlice(dbInitWordlistsKey) {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open wordlist %s: %w", path, err)
			}
			summary, err := container.Catalog.ImportWordlist(ctx, file)
			file.Close()
			if err != nil {
				return fmt.Errorf("import wordlist %s: %w", path, err)
			}
			cmd.Printf("%s: imported %d terms, skipped %d existing\n", path, summary.Imported, summary.Skipped)
			if len(summary.Duplicates) > 0 {
				sort.Strings(summary.Duplicates)
				cmd.Printf("%s: duplicate english entries: %s\n", path, strings.Join(summary.Duplicates, ", "))
			}
		}

		corpora, err := container.Catalog.Corpora(ctx)
		if err != nil {
			return fmt.Errorf("list corpora: %w", err)
		}
		cmd.Printf("catalog ready with %d corpora\n", len(corpora))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)

	dbInitCmd.Flags().StringSlice("wordlists", nil, "wordlist JSON files to import after migration")
	bindFlagToViper(dbInitWordlistsKey, dbInitCmd.Flags().Lookup("wordlists"))
}
