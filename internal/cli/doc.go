// Package cli locates the pinentry executable and builds its argument list.
package cli
