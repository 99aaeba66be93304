package common

// AccessTokenHeaderName is the gRPC metadata key carrying the JWT access
// token on every authenticated call.
const AccessTokenHeaderName = "access_token"
