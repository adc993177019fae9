package commands

import (
	"github.com/spf13/cobra"
)

type usernameResult struct {
	Username string `json:"username"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message"`
}

func usernameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "username <name>",
		Short: "Check a username against the naming rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := opts.newService()
			if err != nil {
				return err
			}
			defer release()

			valid, msg, err := svc.ValidateUsername(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				err = printJSON(out, usernameResult{Username: args[0], Valid: valid, Message: msg})
				if err != nil {
					return err
				}
			} else {
				writeLine(out, msg)
			}

			if !valid {
				return errRejected
			}
			return nil
		},
	}
}
