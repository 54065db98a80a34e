// Package session walks a passenger through a single booking on the console:
// it collects the trip details, quotes every tier, takes the passenger's choice
// and asks for a confirmation.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cubny/cabfare"
	"github.com/cubny/cabfare/internal/pipeline"
)

var (
	// ErrInterrupted is returned when the passenger interrupts the session
	ErrInterrupted = errors.New("session interrupted")
	// ErrInputClosed is returned when the input ends before the booking is resolved
	ErrInputClosed = errors.New("input closed")

	ErrInvalidChoice = errors.New("invalid choice")
	ErrInvalidAnswer = errors.New("please enter 'y' for yes or 'n' for no")
)

// Outcome is the resolution of a booking session
type Outcome struct {
	Request   cabfare.BookingRequest
	Option    cabfare.Option
	Confirmed bool
	// Reference identifies a confirmed booking, it is uuid.Nil otherwise
	Reference uuid.UUID
}

// Session holds one console conversation. A Session is used once.
type Session struct {
	in    io.Reader
	out   io.Writer
	calc  *cabfare.Calculator
	log   *slog.Logger
	newID func() uuid.UUID

	lines <-chan string
	errc  <-chan error
}

// New creates a Session reading answers from in and writing prompts to out
func New(in io.Reader, out io.Writer, calc *cabfare.Calculator, log *slog.Logger) *Session {
	return &Session{
		in:    in,
		out:   out,
		calc:  calc,
		log:   log,
		newID: uuid.New,
	}
}

// Run carries out the whole session and tells the passenger how it ended.
// Interruptions end the session with a farewell and a nil error, any other
// failure is reported in generic terms and returned.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, banner)

	outcome, err := s.Book(ctx)
	switch {
	case errors.Is(err, ErrInterrupted), errors.Is(err, ErrInputClosed):
		s.log.Debug("session ended early", "reason", err)
		renderFarewell(s.out)
		return nil
	case err != nil:
		s.log.Error("booking session failed", "err", err)
		renderUnexpected(s.out)
		return err
	case outcome.Confirmed:
		s.log.Debug("booking confirmed", "reference", outcome.Reference, "tier", outcome.Option.Tier)
		renderConfirmed(s.out, outcome.Reference)
	default:
		s.log.Debug("booking cancelled", "tier", outcome.Option.Tier)
		renderCancelled(s.out)
	}

	return nil
}

// Book runs the collect, quote, select and confirm stages
func (s *Session) Book(ctx context.Context) (Outcome, error) {
	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	s.lines, s.errc = pipeline.Generate(readCtx, scanLines(s.in))

	s.log.Debug("stage", "name", "collect")
	req, err := s.collect(ctx)
	if err != nil {
		return Outcome{}, err
	}

	s.log.Debug("stage", "name", "quote", "distance", req.Distance(), "hour", req.Hour())
	options := s.calc.Options(req.Distance(), req.Hour())
	messages := s.calc.SurchargeMessages(req.Distance(), req.Hour())
	renderSummary(s.out, req)
	renderSurcharges(s.out, messages)

	s.log.Debug("stage", "name", "select")
	renderOptions(s.out, options)
	choice, err := ask(ctx, s, fmt.Sprintf("\n🚕 Choose your cab (1-%d): ", len(options)), parseChoice(len(options)))
	if err != nil {
		return Outcome{}, err
	}
	option := options[choice-1]

	s.log.Debug("stage", "name", "confirm", "tier", option.Tier)
	renderTrip(s.out, req, option, messages)
	confirmed, err := ask(ctx, s, "\n✅ Confirm booking? (y/n): ", parseAnswer)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Request:   req,
		Option:    option,
		Confirmed: confirmed,
	}
	if confirmed {
		outcome.Reference = s.newID()
	}
	return outcome, nil
}

// collect asks for every trip detail until each of them is valid
func (s *Session) collect(ctx context.Context) (cabfare.BookingRequest, error) {
	fmt.Fprintln(s.out, "Please provide your booking details:")
	fmt.Fprintln(s.out, strings.Repeat("-", 40))

	passenger, err := ask(ctx, s, "👤 Enter your username: ", func(raw string) (string, error) {
		return cabfare.ValidateNonEmpty("username", raw)
	})
	if err != nil {
		return cabfare.BookingRequest{}, err
	}

	destination, err := ask(ctx, s, "📍 Enter destination: ", func(raw string) (string, error) {
		return cabfare.ValidateNonEmpty("destination", raw)
	})
	if err != nil {
		return cabfare.BookingRequest{}, err
	}

	distance, err := ask(ctx, s, "📏 Enter distance in kilometers: ", cabfare.ParseDistance)
	if err != nil {
		return cabfare.BookingRequest{}, err
	}

	at, err := ask(ctx, s, "🕐 Enter booking time (HH:MM format, 24-hour): ", cabfare.ParseTime)
	if err != nil {
		return cabfare.BookingRequest{}, err
	}

	return cabfare.NewBookingRequest(passenger, destination, distance, at)
}

// ask prompts until parse accepts the answer. Parse errors are shown and the prompt repeats.
func ask[T any](ctx context.Context, s *Session, prompt string, parse func(raw string) (T, error)) (T, error) {
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		s.log.Debug("invalid input", "prompt", strings.TrimSpace(prompt), "err", err)
		renderInvalid(s.out, err)
	}
}

func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	line, err := pipeline.Next(ctx, s.lines, s.errc)
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, pipeline.ErrCanceled):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
}

// parseChoice parses a 1-based index into n options
func parseChoice(n int) func(raw string) (int, error) {
	return func(raw string) (int, error) {
		choice, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w: please enter a number (1-%d)", ErrInvalidChoice, n)
		}
		if choice < 1 || choice > n {
			return 0, fmt.Errorf("%w: please select a number from 1 to %d", ErrInvalidChoice, n)
		}
		return choice, nil
	}
}

func parseAnswer(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidAnswer
	}
}

// scanLines is a pipeline.GenerateFunc reading one line at a time from r
func scanLines(r io.Reader) pipeline.GenerateFunc[string] {
	scanner := bufio.NewScanner(r)
	return func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}
