package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	apperrors "github.com/louisbranch/guessing-game/internal/platform/errors"
	"github.com/louisbranch/guessing-game/internal/platform/text/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

const tracerName = "github.com/louisbranch/guessing-game/internal/game"

// Catalog keys for console output.
const (
	msgTitle           = "game.title"
	msgRules           = "game.rules"
	msgReveal          = "game.reveal"
	msgAttempt         = "game.attempt"
	msgPrompt          = "game.prompt"
	msgInvalid         = "game.invalid"
	msgWin             = "game.win"
	msgTooSmall        = "game.too_small"
	msgTooBig          = "game.too_big"
	msgRemaining       = "game.remaining"
	msgCongratulations = "game.congratulations"
	msgGameOver        = "game.over"
)

// Turn records one loop iteration of a session.
type Turn struct {
	Attempt  int
	Input    string
	Guess    int
	Feedback Feedback
}

// Result summarizes a finished session.
type Result struct {
	SessionID string
	Secret    int
	Won       bool
	// Attempts counts loop iterations executed, including ones whose input
	// did not parse.
	Attempts int
	Turns    []Turn
}

// Session runs one game against a fixed secret.
type Session struct {
	id      string
	secret  int
	logger  *log.Logger
	printer *message.Printer
	echo    bool
	reveal  bool
}

// Option configures a Session.
type Option func(*Session)

// WithSessionID tags logs and spans with id.
func WithSessionID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithLogger sets the diagnostics logger. Nil discards diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEcho writes each consumed input line back to the output, so transcripts
// of piped input read like an interactive session.
func WithEcho(echo bool) Option {
	return func(s *Session) {
		s.echo = echo
	}
}

// WithRevealSecret prints the secret right after the rules.
func WithRevealSecret(reveal bool) Option {
	return func(s *Session) {
		s.reveal = reveal
	}
}

// NewSession creates a session for secret.
func NewSession(secret int, opts ...Option) *Session {
	s := &Session{
		secret:  secret,
		logger:  log.New(io.Discard, "", 0),
		printer: catalog.Default().Printer(catalog.BaseLocale),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play runs the session to completion, reading one line from in per attempt
// and writing all prompts and feedback to out.
//
// The loop runs exactly MaxAttempts iterations unless a guess is correct. A
// line that does not parse prints a notice and moves on to the next
// iteration; it does not grant an extra try.
//
// A failure to read a line, including end of input before any byte of the
// line, aborts the session with a CodeInputUnavailable error. Context
// cancellation is checked between attempts.
func (s *Session) Play(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	if in == nil {
		return Result{}, errors.New("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "game.session",
		trace.WithAttributes(attribute.String("game.session_id", s.id)),
	)
	defer span.End()

	result := Result{
		SessionID: s.id,
		Secret:    s.secret,
		Turns:     make([]Turn, 0, MaxAttempts),
	}

	s.say(out, msgTitle)
	s.say(out, msgRules, MaxAttempts, MinValue, MaxValue)
	if s.reveal {
		s.say(out, msgReveal, s.secret)
	}

	reader := bufio.NewReader(in)

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "session cancelled")
			return result, err
		}
		result.Attempts = attempt

		s.say(out, msgAttempt, attempt, MaxAttempts)
		s.say(out, msgPrompt, MinValue, MaxValue)

		line, err := readLine(reader)
		if err != nil {
			s.logger.Printf("session %s attempt %d: %v", s.id, attempt, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "input unavailable")
			return result, err
		}
		if s.echo {
			fmt.Fprintln(out, strings.TrimRight(line, "\r\n"))
		}

		turn := Turn{Attempt: attempt, Input: line}
		guess, err := ParseGuess(line)
		if err != nil {
			s.logger.Printf("session %s attempt %d: %v", s.id, attempt, err)
			s.say(out, msgInvalid)
			turn.Feedback = FeedbackInvalid
			s.record(span, &result, turn)
			continue
		}

		turn.Guess = guess
		turn.Feedback = Compare(guess, s.secret)
		s.record(span, &result, turn)

		switch turn.Feedback {
		case FeedbackCorrect:
			s.say(out, msgWin)
			result.Won = true
		case FeedbackTooSmall:
			s.say(out, msgTooSmall)
		case FeedbackTooBig:
			s.say(out, msgTooBig)
		}
		if result.Won {
			break
		}

		if attempt < MaxAttempts {
			s.say(out, msgRemaining, RemainingAttempts(attempt))
		}
	}

	if result.Won {
		s.say(out, msgCongratulations)
	} else {
		s.say(out, msgGameOver, s.secret)
	}

	span.SetAttributes(
		attribute.Bool("game.won", result.Won),
		attribute.Int("game.attempts", result.Attempts),
	)
	s.logger.Printf("session %s finished: won=%t attempts=%d", s.id, result.Won, result.Attempts)
	return result, nil
}

func (s *Session) say(out io.Writer, key string, args ...any) {
	fmt.Fprintln(out, s.printer.Sprintf(key, args...))
}

func (s *Session) record(span trace.Span, result *Result, turn Turn) {
	result.Turns = append(result.Turns, turn)
	span.AddEvent("game.turn", trace.WithAttributes(
		attribute.Int("game.attempt", turn.Attempt),
		attribute.String("game.feedback", turn.Feedback.String()),
	))
}

// readLine returns the next line including its terminator. A final line
// without terminator is returned as-is; end of input with nothing read is an
// error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return "", apperrors.Wrap(apperrors.CodeInputUnavailable, "failed to read line", err)
}
