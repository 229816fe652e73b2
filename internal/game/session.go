package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"example.com/bc-cli/internal/console"
	"github.com/google/uuid"
)

// Session is one interactive game: it owns the current secret and drives
// the read/validate/score loop until the player leaves.
type Session struct {
	id  string
	in  console.LineReader
	out io.Writer
	gen *SecretGenerator
	log *slog.Logger

	state   State
	secret  string
	guesses int // valid guesses against the current secret
	wins    int
}

func NewSession(in console.LineReader, out io.Writer, gen *SecretGenerator, log *slog.Logger) *Session {
	if gen == nil {
		gen = NewSecretGenerator(nil)
	}
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		in:     in,
		out:    out,
		gen:    gen,
		log:    log.With("session", id),
		state:  StateAwaitingGuess,
		secret: gen.Generate(),
	}
}

func (s *Session) ID() string     { return s.id }
func (s *Session) State() State   { return s.state }
func (s *Session) Secret() string { return s.secret }
func (s *Session) Wins() int      { return s.wins }

// Run prints the rules and plays until exit, end of input, an interrupt
// or ctx cancellation; all of them reveal the secret. Only a failing input
// channel is reported as an error.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started")
	s.println(Rules)

	for s.state != StateExited {
		if err := ctx.Err(); err != nil {
			s.exit("canceled")
			return nil
		}

		line, err := s.in.ReadLine(ctx, Prompt)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.exit("canceled")
			return nil
		case errors.Is(err, io.EOF):
			s.exit("eof")
			return nil
		case errors.Is(err, console.ErrInterrupted):
			s.exit("interrupt")
			return nil
		case err != nil:
			s.log.Error("read input", "err", err)
			return fmt.Errorf("read guess: %w", err)
		}

		s.Handle(line)
	}
	return nil
}

// Handle processes one line of player input.
func (s *Session) Handle(line string) {
	if s.state == StateExited {
		return
	}

	if line == ExitCommand {
		s.exit("command")
		return
	}

	if err := ValidateGuess(line); err != nil {
		s.log.Debug("guess rejected", "reason", err)
		switch {
		case errors.Is(err, ErrDuplicateDigits):
			s.println(msgRepeated)
		default:
			s.println(msgInvalid)
		}
		return
	}

	s.guesses++
	bulls, cows := BullsCows(s.secret, line)
	s.println(fmt.Sprintf(msgScore, bulls, cows))

	if bulls == CodeLength {
		s.wins++
		s.log.Info("round won", "guesses", s.guesses, "wins", s.wins)
		s.println(msgWin)
		s.println(msgSeparator)
		s.secret = s.gen.Generate()
		s.guesses = 0
	}
}

func (s *Session) exit(reason string) {
	s.println(fmt.Sprintf(msgReveal, s.secret))
	s.state = StateExited
	s.log.Info("session exited", "reason", reason, "wins", s.wins)
}

func (s *Session) println(msg string) {
	_, _ = io.WriteString(s.out, msg+"\n")
}
