package game

// Rules is printed once when a session starts.
const Rules = `
Cows and Bulls
==============

The aim of the game is to guess the secret!
The secret is a 4-digit random number with no
repeated digits.
The digits are selected from 1 to 8 inclusive.
If you guess a digit correctly, whether it's in
the right place or not, you have found a cow.
If it's in the right place too, then it's a bull.
Once you've found all four bulls you will have
guessed the secret! Good luck!

`

const (
	Prompt      = `Enter a four digit guess, or "exit": `
	ExitCommand = "exit"

	msgInvalid   = "Invalid input, try again"
	msgRepeated  = "Repeated digits! Try again"
	msgScore     = "%d bulls and %d cows"
	msgWin       = "You did it! Generating a new secret..."
	msgSeparator = "-----------------------------------------"
	msgReveal    = "The secret was %s\nExiting..."
)

type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateExited        State = "exited"
)
