package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pymatrix/pkg/config"
	"github.com/matzehuels/pymatrix/pkg/matrix"
	"github.com/matzehuels/pymatrix/pkg/tags"
)

// The completion command itself is cobra's default; this file only teaches
// it the values our flags accept.

// registerMatrixCompletions adds value completion for the matrix flags.
func registerMatrixCompletions(cmd *cobra.Command) {
	fixed := map[string][]string{
		"source": {tags.KindClone, tags.KindRemote},
		"filter": {config.FilterLexical, config.FilterSemver},
		"os":     matrix.DefaultOS(),
	}
	for flag, values := range fixed {
		// Only fails for unknown flags.
		_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
	_ = cmd.MarkFlagFilename("tags-file")
}
