// Package console implements the game's terminal: line input with an
// optional interactive prompt, pterm prefixed messages, and the
// probability table.
package console
