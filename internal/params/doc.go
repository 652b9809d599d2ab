// Package params holds the static catalogue of configuration parameters
// recognized by the example programs. Each entry maps a logical parameter
// key to its command-line flag name, help text, and required flag. The
// catalogue is read-only for the lifetime of the process.
package params
