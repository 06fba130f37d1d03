package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.engine is not sqlite, mysql or postgres.
	ErrUnknownDBEngine = errors.New("toml config db.engine is not supported")

	// ErrAuthCredentialsMissing error if auth is enabled without a username and password hash.
	ErrAuthCredentialsMissing = errors.New("toml config auth requires username and passwordHash when enabled")
)
