// Package config resolves named configuration parameters for the example
// programs from four layered sources with fixed precedence: command line
// flags > examples.properties in the working directory > environment
// variables > examples.properties under ~/.bitmovin. All sources are parsed
// once at construction; the first source holding a non-empty value for a key
// wins. Keys outside the static registry may be resolved too, via
// Resolver.Get with an arbitrary key.
package config
