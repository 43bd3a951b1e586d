// Package client implements the pinentry protocol client.
//
// The client turns typed calls into protocol exchanges over a
// config.Transport: it escapes SET* arguments, records the last command for
// diagnostics, and maps "ERR" replies onto the error taxonomy in
// internal/errors.
//
// Sessions move through three states: Unstarted, Ready and Closed. Protocol
// calls are only accepted in Ready.
package client
