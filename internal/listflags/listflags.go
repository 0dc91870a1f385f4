// Package listflags defines flags shared by commands that print the list.
package listflags

import "github.com/spf13/cobra"

// AddSectionFlags adds mutually exclusive --pending and --completed flags.
func AddSectionFlags(cmd *cobra.Command, pending, completed *bool) {
	cmd.Flags().BoolVar(pending, "pending", false, "Only pending todos")
	cmd.Flags().BoolVar(completed, "completed", false, "Only completed todos")
	cmd.MarkFlagsMutuallyExclusive("pending", "completed")
}
