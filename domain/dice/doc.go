// Package dice holds the Die value type and the parser that turns command
// line die descriptions into a validated set of dice.
//
// A Die is an immutable ordered list of integer faces. Faces may repeat and
// may be negative; the only structural requirement is at least one face.
//
// # Input Format
//
// Each die is described by one argument of comma-separated integers, for
// example "2,2,4,4,9,9". A game needs at least MinDice dice.
package dice
