// File: utils/constants.go
package utils

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthUserPrefix is the prefix for cached user profile blobs.
const AuthUserPrefix = "authUser:"

// AuthSessionPrefix is the prefix for session metadata blobs.
const AuthSessionPrefix = "authSession:"

// AuthTokenCookie is the cookie carrying the bearer token for browser clients.
const AuthTokenCookie = "authToken"
