package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/policy"
)

func strengthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password|->",
		Short: "Score a password and print feedback",
		Long: "Score a password and print feedback.\n\n" +
			"Pass - to read the password from stdin instead of the command line, " +
			"where it would be visible to other users and kept in shell history.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := opts.newService()
			if err != nil {
				return err
			}
			defer release()

			password := args[0]
			if password == stdinArg {
				secret, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer common.WipeByteArray(secret)
				password = string(secret)
			}

			res, err := svc.Evaluate(cmd.Context(), password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				if err := printJSON(out, res); err != nil {
					return err
				}
			} else {
				writeLine(out, fmt.Sprintf("Score: %d/%d", res.Score, policy.MaxScore))
				for _, f := range res.Feedback {
					writeLine(out, f)
				}
				writeLine(out, res.Summary())
			}

			if !res.Acceptable() {
				return errRejected
			}
			return nil
		},
	}
}
