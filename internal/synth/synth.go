// Package synth wraps the fake-value source behind the capability surface
// the generators consume. A Provider is seeded once and never re-seeded, so
// every draw is reproducible for a given seed.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

const hexDigits = "0123456789abcdef"

type Provider struct {
	faker    *gofakeit.Faker
	rand     *rand.Rand
	usedInts map[int]struct{}
}

func New(seed int64) *Provider {
	return &Provider{
		faker:    gofakeit.New(seed),
		rand:     rand.New(rand.NewSource(seed)),
		usedInts: make(map[int]struct{}),
	}
}

// UniqueInt draws an integer in [min, max] that has never been issued by
// this provider. It exhausts the range rather than looping forever.
func (p *Provider) UniqueInt(min, max int) (int, error) {
	span := max - min + 1
	if span <= 0 {
		return 0, fmt.Errorf("invalid unique int range [%d, %d]", min, max)
	}
	if len(p.usedInts) >= span {
		return 0, fmt.Errorf("unique int range [%d, %d] exhausted after %d draws", min, max, span)
	}

	for {
		n := min + p.rand.Intn(span)
		if _, taken := p.usedInts[n]; !taken {
			p.usedInts[n] = struct{}{}
			return n, nil
		}
	}
}

func (p *Provider) Name() string     { return p.faker.Name() }
func (p *Provider) Email() string    { return p.faker.Email() }
func (p *Provider) Username() string { return p.faker.Username() }
func (p *Provider) Company() string  { return p.faker.Company() }
func (p *Provider) Word() string     { return p.faker.Word() }

func (p *Provider) PhoneNumber() string { return p.faker.PhoneFormatted() }

func (p *Provider) City() string          { return p.faker.City() }
func (p *Provider) StreetAddress() string { return p.faker.Street() }
func (p *Provider) PostalCode() string    { return p.faker.Zip() }
func (p *Provider) Province() string      { return p.faker.State() }

func (p *Provider) ImageURL() string {
	return p.faker.ImageURL(640, 480)
}

func (p *Provider) Sentence() string {
	return p.faker.Sentence(6 + p.rand.Intn(6))
}

func (p *Provider) Paragraph() string {
	return p.faker.Paragraph(1, 3+p.rand.Intn(3), 8+p.rand.Intn(8), " ")
}

// Text returns free-form text of roughly maxChars length.
func (p *Provider) Text(maxChars int) string {
	text := p.faker.Paragraph(2, 5, 12, " ")
	for len(text) < maxChars/2 {
		text += " " + p.faker.Paragraph(1, 4, 12, " ")
	}
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	return strings.TrimSpace(text)
}

func (p *Provider) ProductName() string { return p.faker.ProductName() }

// PasswordHash returns a 64-character hex digest, the shape of a stored
// SHA-256 credential.
func (p *Provider) PasswordHash() string {
	var b strings.Builder
	b.Grow(64)
	for i := 0; i < 64; i++ {
		b.WriteByte(hexDigits[p.rand.Intn(16)])
	}
	return b.String()
}

// Bothify fills a template where '#' becomes a digit and '?' an uppercase
// letter, e.g. "???-#####" -> "KQD-38271".
func (p *Provider) Bothify(template string) string {
	var b strings.Builder
	b.Grow(len(template))
	for _, c := range template {
		switch c {
		case '#':
			b.WriteByte(byte('0' + p.rand.Intn(10)))
		case '?':
			b.WriteByte(byte('A' + p.rand.Intn(26)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// DateTimeBetween draws a timestamp in [start, end]. A degenerate range
// collapses to start.
func (p *Provider) DateTimeBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Unix() - start.Unix()
	return time.Unix(start.Unix()+p.rand.Int63n(span+1), 0).UTC()
}

// DateBetween draws a date (midnight UTC) in [start, end].
func (p *Provider) DateBetween(start, end time.Time) time.Time {
	t := p.DateTimeBetween(start, end)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
