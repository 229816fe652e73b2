package game

import "strings"

// BullsCows scores guess against secret. Both must have the same length
// and neither may repeat a symbol, so a plain membership test is enough
// for cows.
func BullsCows(secret, guess string) (bulls, cows int) {
	for i := 0; i < len(guess); i++ {
		if guess[i] == secret[i] {
			bulls++
			continue
		}
		if strings.IndexByte(secret, guess[i]) >= 0 {
			cows++
		}
	}
	return bulls, cows
}
