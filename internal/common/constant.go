package common

// AuthorizationHeaderName carries the bearer token on HTTP requests and,
// lower-cased, in gRPC metadata.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only accepted authorization scheme.
const BearerScheme = "Bearer"

// RequestIDHeaderName echoes the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
