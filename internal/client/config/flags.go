package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/securelogin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a, -s, -f, -i and -l are considered.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-f", "-i", "-l"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.StoreKind, "s", cfg.StoreKind, "local store kind")
	fs.StringVar(&cfg.FilePath, "f", cfg.FilePath, "local users file")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	return nil
}
