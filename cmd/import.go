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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/journey/internal/app"
)

// importCmd loads wordlist JSON files (corpus -> group -> word pairs) into
// the term catalog.
var importCmd = &cobra.Command{
	Use:   "import <wordlist.json> [more.json...]",
	Short: "Import wordlist files into the term catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		for _, path := range args {
			var reader io.Reader = cmd.InOrStdin()
			if path != "-" {
				file, openErr := os.Open(path)
				if openErr != nil {
					return fmt.Errorf("open wordlist %s: %w", path, openErr)
				}
				defer file.Close()
				reader = file
			}

			summary, err := container.Catalog.ImportWordlist(ctx, reader)
			if err != nil {
				return fmt.Errorf("import wordlist %s: %w", path, err)
			}
			cmd.Printf("%s: imported %d terms, skipped %d existing\n", path, summary.Imported, summary.Skipped)
			if len(summary.Duplicates) > 0 {
				cmd.Printf("%s: duplicate english entries: %s\n", path, strings.Join(summary.Duplicates, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
