package identityservice

import (
	"regexp"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/pkg/validate"
)

var (
	now         = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	phoneRe     = regexp.MustCompile(`^\+56 9 \d{4} \d{4}$`)
	maskedRe    = regexp.MustCompile(`^\*{4} \*{4} \*{4} \d{4}$`)
	emailLocaRe = regexp.MustCompile(`^[a-z]+\.[a-z]+[1-9][0-9]@[a-z.]+$`)
)

func newGenerator(seed uint64) *Generator {
	return NewGenerator(gofakeit.New(seed), catalog.Default())
}

func TestGenerator_Email(t *testing.T) {
	g := newGenerator(7)
	domains := catalog.Default().EmailDomains

	tests := []struct {
		name     string
		fullName string
		prefix   string
	}{
		{name: "Accents are stripped", fullName: "Sebastián Pérez", prefix: "sebastian.perez"},
		{name: "Tilde on n", fullName: "Antonella Núñez", prefix: "antonella.nunez"},
		{name: "Plain ascii", fullName: "Juan Torres", prefix: "juan.torres"},
		{name: "Extra whitespace collapses", fullName: "  María   Díaz ", prefix: "maria.diaz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := g.Email(tt.fullName)

			re := regexp.MustCompile(`^` + regexp.QuoteMeta(tt.prefix) + `([1-9][0-9])@(.+)$`)
			m := re.FindStringSubmatch(email)
			require.NotNil(t, m, email)
			assert.Contains(t, domains, m[2])
		})
	}
}

func TestGenerator_Profile(t *testing.T) {
	g := newGenerator(11)
	c := catalog.Default()

	for i := 0; i < 300; i++ {
		p := g.Profile(now)

		assert.Regexp(t, phoneRe, p.User.Phone)
		assert.Regexp(t, emailLocaRe, p.User.Email)
		assert.GreaterOrEqual(t, p.Demographics.Age, 18)
		assert.LessOrEqual(t, p.Demographics.Age, 80)
		assert.Contains(t, c.Genders, p.Demographics.Gender)
		assert.Contains(t, c.IncomeLevels, p.Demographics.IncomeLevel)
		assert.Equal(t, "Chile", p.Demographics.Country)
		assert.Contains(t, c.Locations, catalog.Location{Region: p.Demographics.State, City: p.Demographics.City})

		assert.GreaterOrEqual(t, p.Onboarding.Step, 1)
		assert.LessOrEqual(t, p.Onboarding.Step, 5)
		if p.Onboarding.Status == domain.OnboardingCompleted {
			require.NotNil(t, p.Onboarding.CompletedAt)
			assert.Equal(t, now, *p.Onboarding.CompletedAt)
		} else {
			assert.Equal(t, domain.OnboardingInProgress, p.Onboarding.Status)
			assert.Nil(t, p.Onboarding.CompletedAt)
		}

		assert.Equal(t, domain.StatusActive, p.Status.Status)
		assert.False(t, p.Status.LastActiveAt.After(now))
		assert.True(t, now.Sub(p.Status.LastActiveAt) <= 30*24*time.Hour+23*time.Hour+59*time.Minute)
	}
}

func TestGenerator_FirstNameFollowsGender(t *testing.T) {
	g := newGenerator(3)
	c := catalog.Default()

	for i := 0; i < 200; i++ {
		p := g.Profile(now)
		first := regexp.MustCompile(`^\S+`).FindString(p.User.Name)
		assert.Contains(t, c.FirstNames(p.Demographics.Gender), first)
	}
}

func TestGenerator_SameSeedSameProfiles(t *testing.T) {
	a, b := newGenerator(99), newGenerator(99)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Profile(now), b.Profile(now))
	}
}

func TestGenerator_IssueAccounts(t *testing.T) {
	c := catalog.Default()

	t.Run("Quotas are met exactly", func(t *testing.T) {
		g := newGenerator(5)
		userIDs := []int{10, 11, 12, 13}

		accounts := g.IssueAccounts(userIDs, now)

		require.Len(t, accounts, c.QuotaTotal())
		perType := map[domain.AccountType]int{}
		for _, a := range accounts {
			perType[a.Type]++
			assert.Contains(t, userIDs, a.UserID)
			assert.Equal(t, "CLP", a.Currency)
			assert.True(t, a.Balance.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, a.Balance.LessThanOrEqual(decimal.NewFromInt(100000)))
			assert.True(t, a.Balance.Equal(a.Balance.Round(2)))
			assert.False(t, a.ActivatedAt.After(now))
			assert.False(t, a.ActivatedAt.Before(now.AddDate(0, 0, -100)))
		}
		for _, q := range c.Quotas {
			assert.Equal(t, q.Count, perType[q.Type], q.Type)
		}
	})

	t.Run("No users means no accounts", func(t *testing.T) {
		g := newGenerator(5)
		assert.Empty(t, g.IssueAccounts(nil, now))
	})
}

func TestGenerator_IssueCards(t *testing.T) {
	g := newGenerator(8)
	accounts := []domain.Account{
		{ID: 1, Type: domain.AccountCreditCard},
		{ID: 2, Type: domain.AccountSavings},
		{ID: 3, Type: domain.AccountPrepago},
		{ID: 4, Type: domain.AccountPaypal},
	}

	cards, err := g.IssueCards(accounts, now)

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, 1, cards[0].AccountID)
	assert.Equal(t, 3, cards[1].AccountID)
	for _, c := range cards {
		assert.Regexp(t, maskedRe, c.CardNumber)
		assert.Equal(t, domain.StatusActive, c.Status)
		assert.True(t, c.ExpirationDate.After(now))
		assert.False(t, c.ExpirationDate.After(now.AddDate(0, 0, 5*365)))
	}
}

func TestGenerator_PAN(t *testing.T) {
	g := newGenerator(21)

	for i := 0; i < 100; i++ {
		pan, err := g.pan()
		require.NoError(t, err)
		assert.Len(t, pan, 16)
		assert.True(t, validate.IsPAN(pan), pan)
	}
}

func TestMaskPAN(t *testing.T) {
	assert.Equal(t, "**** **** **** 0366", MaskPAN("4539578763620366"))
	assert.Equal(t, "**** **** **** 12", MaskPAN("12"))
}
