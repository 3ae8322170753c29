// Package client implements the fbclient command-line runtime.
//
// It restores the cached session, dispatches one command to the auth and
// database services and renders the outcome with lipgloss styles.
package client
