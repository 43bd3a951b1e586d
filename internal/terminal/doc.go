// Package terminal inspects the caller's environment for the values a
// pinentry needs to draw on the right screen: the controlling terminal
// device and the LC_CTYPE locale.
package terminal
