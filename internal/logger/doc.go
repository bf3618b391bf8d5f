// Package logger provides a thin zerolog wrapper with console output for
// interactive use. Verbosity is a single switch: debug on or off.
package logger
