package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// tablesFromConfig reads a table-selection flag and normalizes the names so
// the backup service sees lowercase identifiers regardless of how the user
// spelled them.
func tablesFromConfig(key string) []string {
	names := lo.FilterMap(viper.GetStringSlice(key), func(value string, _ int) (string, bool) {
		name := strings.ToLower(strings.TrimSpace(value))
		return name, name != ""
	})
	if len(names) == 0 {
		return nil
	}
	return names
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
