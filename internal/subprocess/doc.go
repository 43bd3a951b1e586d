// Package subprocess provides the process-backed transport for pinentry.
//
// This package implements the Transport interface by spawning the pinentry
// executable as a child process and exchanging protocol lines over its
// stdin and stdout. It handles the readiness handshake, response framing
// and process teardown.
package subprocess
