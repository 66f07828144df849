// meta/meta.go
package meta

// BOARD_SIZE defines the default board size.
const BOARD_SIZE = 9

// SEARCH_DEPTH defines the default negamax search depth.
const SEARCH_DEPTH = 2

// MAX_TURNS defines the turn cap for a local game.
const MAX_TURNS = 200
