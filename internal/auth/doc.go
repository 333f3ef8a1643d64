// Package auth guards write requests of the word list API.
//
// When API_TOKEN_HASH holds a bcrypt hash, every request that can change data
// (anything but GET, HEAD and OPTIONS) must send the matching token:
//
//	Authorization: Bearer <token>
//
// Generate a token and its hash with:
//
//	wordlist hash-token -token <token>
//
// With no hash configured the guard lets everything through. Security headers
// are applied to all responses regardless.
package auth
