// Package config loads runtime configuration for the SecureLogin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the account server; empty runs against a local store
//	-s string   local store kind: file or memory
//	-f string   local users file
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "store": "file",
//	  "file_path": "users.json",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
