package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func generateCmd(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print randomly generated passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			svc, release, err := opts.newService()
			if err != nil {
				return err
			}
			defer release()

			passwords := make([]string, 0, count)
			for range count {
				pw, err := svc.Generate(cmd.Context())
				if err != nil {
					return err
				}
				passwords = append(passwords, pw)
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, passwords)
			}
			for _, pw := range passwords {
				writeLine(out, pw)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords")
	return cmd
}
