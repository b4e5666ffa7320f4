package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var taskEditFlagAliases = map[string]string{
	"due": "deadline",
}

var taskListFlagAliases = map[string]string{
	"query":  "search",
	"filter": "status",
}

func addFlagAliases(aliases map[string]string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), aliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}
