// Package google provides OAuth2 authentication and token management for the
// Gmail API.
//
// Tokens are cached on disk per account name under the user cache directory.
// The auth command performs the one-time authorization-code exchange; all
// other commands read the cached token and refresh it transparently through
// the oauth2 token source.
package google
