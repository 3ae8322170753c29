// Package server runs the local emulator over HTTPS.
//
// It owns the listener, the TLS certificate (loaded from files or generated
// self-signed at startup), signal handling and graceful shutdown.
package server
