// Package main provides the entry point for the optionpanel application.
// It runs a Fiber web server that serves administration settings pages
// built from declarative field definitions. Page definitions live in code,
// the stored option records live in the database as JSON blobs, and the
// field and settings packages at the module root are usable as a library
// without the server.
package main
