package campaignservice

import (
	"strconv"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/finseed/internal/domain"
)

var today = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		input     string
		expected  Layout
		expectErr bool
	}{
		{input: "spread", expected: LayoutSpread},
		{input: "windowed", expected: LayoutWindowed},
		{input: "weekly", expectErr: true},
		{input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			layout, err := ParseLayout(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnknownLayout)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, layout)
		})
	}
}

func TestNewPlanner_DefaultCount(t *testing.T) {
	assert.Len(t, NewPlanner(gofakeit.New(1), LayoutSpread, 0).Plan(today), 50)
	assert.Len(t, NewPlanner(gofakeit.New(1), LayoutWindowed, 0).Plan(today), 200)
	assert.Len(t, NewPlanner(gofakeit.New(1), LayoutWindowed, 12).Plan(today), 12)
}

func TestPlanner_Spread(t *testing.T) {
	campaigns := NewPlanner(gofakeit.New(2), LayoutSpread, 0).Plan(today.Add(15 * time.Hour))

	require.Len(t, campaigns, 50)
	for i, c := range campaigns {
		assert.Equal(t, "Campaign "+strconv.Itoa(i+1), c.Name)
		assert.Equal(t, domain.DateOf(c.StartDate), c.StartDate)
		assert.False(t, c.StartDate.Before(day(-730)))
		assert.False(t, c.StartDate.After(today))
		duration := int(c.EndDate.Sub(c.StartDate).Hours() / 24)
		assert.GreaterOrEqual(t, duration, 14)
		assert.LessOrEqual(t, duration, 90)
		assertMoney(t, c)
	}
}

func TestPlanner_Windowed(t *testing.T) {
	campaigns := NewPlanner(gofakeit.New(3), LayoutWindowed, 0).Plan(today)

	require.Len(t, campaigns, 200)
	var active, expired, upcoming int
	for _, c := range campaigns {
		require.True(t, c.StartDate.Before(c.EndDate), c.Name)
		assertMoney(t, c)

		switch {
		case c.ActiveOn(today):
			active++
			assert.False(t, c.StartDate.Before(day(-10)))
			assert.False(t, c.EndDate.After(day(10)))
		case c.EndDate.Before(today):
			expired++
			assert.False(t, c.StartDate.Before(day(-100)))
			assert.False(t, c.StartDate.After(day(-20)))
		default:
			upcoming++
			assert.False(t, c.StartDate.Before(day(1)))
			assert.False(t, c.StartDate.After(day(100)))
			assert.LessOrEqual(t, c.EndDate.Sub(c.StartDate), 30*24*time.Hour)
		}
	}
	assert.Equal(t, 5, active)
	assert.Equal(t, 98, expired)
	assert.Equal(t, 97, upcoming)
}

func TestPlanner_SameSeedSamePlan(t *testing.T) {
	a := NewPlanner(gofakeit.New(5), LayoutWindowed, 0).Plan(today)
	b := NewPlanner(gofakeit.New(5), LayoutWindowed, 0).Plan(today)

	assert.Equal(t, a, b)
}

func assertMoney(t *testing.T, c domain.Campaign) {
	t.Helper()
	assert.True(t, c.Goal.GreaterThanOrEqual(decimal.NewFromInt(1000)))
	assert.True(t, c.Goal.LessThanOrEqual(decimal.NewFromInt(50000)))
	assert.True(t, c.CashbackPercentage.GreaterThanOrEqual(decimal.NewFromInt(1)))
	assert.True(t, c.CashbackPercentage.LessThanOrEqual(decimal.NewFromInt(20)))
	assert.True(t, c.Goal.Equal(c.Goal.Round(2)))
}
