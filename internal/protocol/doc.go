// Package protocol implements the pinentry wire grammar.
//
// Commands are single newline-terminated lines. Every response is zero or
// more informational lines, at most one "D <data>" line, and exactly one
// terminating status line: "OK [text]" or "ERR <code> <message>".
//
// Free-text arguments of SET* commands are percent-escaped byte by byte:
//
//	SETDESC Hi!   ->   SETDESC %48%69%21
//
// Data lines returned by GETPIN only escape the percent sign itself, as %25.
package protocol
