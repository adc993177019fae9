// Package client contains the gRPC implementation of accounts.Service used
// by the CLI when it talks to a remote account server.
//
// GRPCClient manages the connection, tags every call with a request id,
// bounds calls with a timeout and maps gRPC statuses back to the account
// sentinel errors, so callers match them with errors.Is exactly as they
// would against a local service. Transport conditions surface as
// common.ErrUnavailable and common.ErrRateLimited.
package client
