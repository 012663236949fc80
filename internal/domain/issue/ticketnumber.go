package issue

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"helpdesk/internal/shared/id"
)

// Ticket numbers look like TICK-26-3F09AB: a two-digit year and a six-digit
// uppercase hex suffix.
const (
	ticketNumberPrefix  = "TICK"
	ticketSuffixLength  = 6
	maxGenerateAttempts = 5
)

var ticketNumberPattern = regexp.MustCompile(`^TICK-\d{2}-[0-9A-F]{6}$`)

// TicketNumberGenerator produces globally unique ticket numbers.
type TicketNumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// TicketNumberChecker is the slice of the issue repository the generator needs
// for its uniqueness retry loop.
type TicketNumberChecker interface {
	ExistsByTicketNumber(ctx context.Context, number string) (bool, error)
}

// UniqueTicketNumberGenerator draws random suffixes and retries against the
// store until it finds an unused number.
type UniqueTicketNumberGenerator struct {
	checker TicketNumberChecker
	now     func() time.Time
}

func NewTicketNumberGenerator(checker TicketNumberChecker) *UniqueTicketNumberGenerator {
	return &UniqueTicketNumberGenerator{
		checker: checker,
		now:     time.Now,
	}
}

func (g *UniqueTicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	year := g.now().Format("06")

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		suffix, err := id.HexUpper(ticketSuffixLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket suffix: %w", err)
		}

		number := fmt.Sprintf("%s-%s-%s", ticketNumberPrefix, year, suffix)

		exists, err := g.checker.ExistsByTicketNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check ticket number uniqueness: %w", err)
		}
		if !exists {
			return number, nil
		}
	}

	return "", fmt.Errorf("could not generate unique ticket number after %d attempts", maxGenerateAttempts)
}

// IsValidTicketNumber reports whether the string matches the ticket format.
func IsValidTicketNumber(number string) bool {
	return ticketNumberPattern.MatchString(number)
}
