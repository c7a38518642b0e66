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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/journey/internal/app"
)

const (
	restoreInputKey  = "backup.restore.input"
	restoreTablesKey = "backup.restore.tables"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore an NDJSON backup into the database",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		inputPath := viper.GetString(restoreInputKey)
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}
		tableList := tablesFromConfig(restoreTablesKey)

		var (
			reader   io.Reader = cmd.InOrStdin()
			closeFns []func() error
		)

		if inputPath != "-" {
			file, openErr := os.Open(inputPath)
			if openErr != nil {
				return fmt.Errorf("open backup file: %w", openErr)
			}
			reader = file
			closeFns = append(closeFns, file.Close)
		}

		if strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
			gz, gzErr := gzip.NewReader(reader)
			if gzErr != nil {
				return fmt.Errorf("open gzip stream: %w", gzErr)
			}
			reader = gz
			closeFns = append([]func() error{gz.Close}, closeFns...)
		}

		defer func() {
			for _, closer := range closeFns {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		counts, err := container.Backup.Import(ctx, reader, tableList)
		if err != nil {
			return fmt.Errorf("import backup: %w", err)
		}

		for table, count := range counts {
			cmd.Printf("%s: %d rows applied\n", table, count)
		}
		cmd.Println("restore complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringP("input", "i", "", "backup file path, - for stdin")
	restoreCmd.Flags().StringSlice("tables", nil, "only restore the given tables")

	bindFlagToViper(restoreInputKey, restoreCmd.Flags().Lookup("input"))
	bindFlagToViper(restoreTablesKey, restoreCmd.Flags().Lookup("tables"))
}
