// Package commands implements passtool, a one-shot command line front end to
// the password strength evaluator, the password generator and the username
// validator.
package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/buildinfo"
	"github.com/dmitrijs2005/securelogin/internal/client/client"
	"github.com/dmitrijs2005/securelogin/internal/store"
)

// errRejected makes the process exit with status 1 after a Weak verdict or
// an invalid username. The verdict itself has already been printed.
var errRejected = errors.New("rejected")

type options struct {
	server  string
	timeout time.Duration
	json    bool
}

// newService returns the local policy service, or a gRPC client when a
// server address is given. The returned func releases it.
func (o *options) newService() (accounts.Service, func(), error) {
	if o.server == "" {
		return accounts.NewLocalService(store.NewMemoryStore(nil), nil, nil), func() {}, nil
	}
	c, err := client.NewGRPCClient(o.server, o.timeout)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}

func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "passtool",
		Short:         "Check password strength, generate passwords and validate usernames",
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVarP(&opts.server, "server", "a", "", "ask an account server at host:port instead of evaluating locally")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for server calls")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	root.AddCommand(strengthCmd(opts), generateCmd(opts), usernameCmd(opts))
	return root
}

// Execute runs passtool with the process arguments. Errors other than a
// rejection are printed to stderr.
func Execute() error {
	return execute(context.Background(), NewRootCmd(os.Stdout), os.Args[1:], os.Stderr)
}

func execute(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) error {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errRejected) {
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
	}
	return err
}
