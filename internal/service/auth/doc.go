// Package auth issues and validates the HMAC-signed bearer tokens that API
// clients present when authentication is enabled.
package auth
