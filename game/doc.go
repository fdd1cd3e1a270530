// Package game runs the interactive dice game between a human and the
// computer.
//
// # Round Flow
//
// A round moves through MainMenu → CoinToss → FirstPick → SecondPick →
// Rolling → Resolution and back to MainMenu. Every random decision in the
// round is a fairness exchange: the computer commits to a secret value, the
// human contributes a number, and the computer reveals its key and value so
// the commitment can be checked.
//
//   - CoinToss decides who picks first over the range {0, 1}.
//   - The computer picks its die with an exchange over the dice still
//     available; the human picks from a menu, may cancel, or ask for the
//     probability table.
//   - Each die is rolled with an exchange over its face count. The human
//     contributes to both rolls.
//
// # Verification
//
// What happens when a revealed value does not match its digest is decided
// in one place, by the VerificationPolicy given to the Game.
package game
