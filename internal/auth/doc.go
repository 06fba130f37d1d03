// Package auth provides the local credential check used to protect the
// administration interface.
//
// Authentication is intentionally small: a single administrator account is
// configured with a username and an Argon2id password hash, and the Service
// verifies submitted credentials against it. Session handling and route
// protection live in the web layer.
package auth
