// Package common contains constants and small helpers shared by the
// SecureLogin server and client.
package common

// RequestIDHeaderName is the gRPC metadata key carrying the request id.
const RequestIDHeaderName = "x-request-id"

// DefaultUsersFile is the flat-file credential store used when nothing else
// is configured.
const DefaultUsersFile = "users.json"
