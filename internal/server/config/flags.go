package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/securelogin/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   store kind: file, postgres, s3, redis, memory
//	-f string   users file for the file store
//	-d string   PostgreSQL DSN
//	-r float    requests per second allowed across all clients (0 = unlimited)
//	-l string   log level
//
// Only these flags are considered; everything else in args is ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-f", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.StoreKind, "s", config.StoreKind, "credential store kind")
	fs.StringVar(&config.FilePath, "f", config.FilePath, "users file path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.Float64Var(&config.RateLimit, "r", config.RateLimit, "rate limit, requests per second")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}
