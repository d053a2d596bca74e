// Package cli turns command-line arguments into an app.Config, prompting
// for the maze file when none is given.
package cli
