package campaignservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/finseed/internal/domain"
)

type Layout string

const (
	// LayoutSpread scatters windows over the last two years.
	LayoutSpread Layout = "spread"
	// LayoutWindowed keeps a handful of campaigns running today and splits the rest
	// between already finished and not yet started.
	LayoutWindowed Layout = "windowed"
)

const activeNow = 5

var ErrUnknownLayout = errors.New("unknown campaign layout")

func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutSpread, LayoutWindowed:
		return Layout(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// DefaultCount is the number of campaigns a layout plans when none is configured.
func (l Layout) DefaultCount() int {
	if l == LayoutWindowed {
		return 200
	}
	return 50
}

type Planner struct {
	faker  *gofakeit.Faker
	layout Layout
	count  int
}

// NewPlanner returns a planner for count campaigns; count <= 0 selects the layout default.
func NewPlanner(faker *gofakeit.Faker, layout Layout, count int) *Planner {
	if count <= 0 {
		count = layout.DefaultCount()
	}
	return &Planner{
		faker:  faker,
		layout: layout,
		count:  count,
	}
}

// Plan draws the campaign windows relative to today. Dates carry no clock part.
func (p *Planner) Plan(today time.Time) []domain.Campaign {
	today = domain.DateOf(today)
	campaigns := make([]domain.Campaign, 0, p.count)
	for i := 0; i < p.count; i++ {
		start, end := p.window(i, today)
		campaigns = append(campaigns, domain.Campaign{
			Name:               fmt.Sprintf("Campaign %d", i+1),
			Goal:               p.decimal(1000, 50000),
			CashbackPercentage: p.decimal(1, 20),
			StartDate:          start,
			EndDate:            end,
		})
	}
	return campaigns
}

func (p *Planner) window(i int, today time.Time) (time.Time, time.Time) {
	if p.layout == LayoutWindowed {
		switch {
		case i < activeNow:
			return p.days(today, -10, 0), p.days(today, 1, 10)
		case (i-activeNow)%2 == 0:
			start := p.days(today, -100, -20)
			lastDay := int(today.Sub(start).Hours()/24) - 1
			return start, p.days(start, 1, lastDay)
		default:
			start := p.days(today, 1, 100)
			return start, p.days(start, 1, 30)
		}
	}

	start := p.days(today, -730, 0)
	return start, p.days(start, 14, 90)
}

func (p *Planner) days(from time.Time, lo, hi int) time.Time {
	return from.AddDate(0, 0, p.faker.IntRange(lo, hi))
}

func (p *Planner) decimal(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(p.faker.Float64Range(lo, hi)).Round(2)
}
