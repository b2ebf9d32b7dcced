package identityservice

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/pkg/validate"
)

const (
	panPrefix    = "4"
	panLength    = 16
	maskedPrefix = "**** **** **** "
)

var ErrInvalidPAN = errors.New("generated card number failed the luhn check")

// Generator draws identity rows from a catalog. It holds no connection and is
// deterministic for a given faker seed and clock.
type Generator struct {
	faker   *gofakeit.Faker
	catalog catalog.Catalog
}

func NewGenerator(faker *gofakeit.Faker, c catalog.Catalog) *Generator {
	return &Generator{
		faker:   faker,
		catalog: c,
	}
}

func (g *Generator) Profile(now time.Time) domain.Profile {
	gender := g.faker.RandomString(g.catalog.Genders)
	name := g.faker.RandomString(g.catalog.FirstNames(gender)) + " " + g.faker.RandomString(g.catalog.LastNames)
	location := g.catalog.Locations[g.faker.IntRange(0, len(g.catalog.Locations)-1)]

	onboarding := domain.Onboarding{
		Step:   g.faker.IntRange(1, 5),
		Status: domain.OnboardingInProgress,
	}
	if g.faker.Bool() {
		completedAt := now
		onboarding.Status = domain.OnboardingCompleted
		onboarding.CompletedAt = &completedAt
	}

	return domain.Profile{
		User: domain.User{
			Name:  name,
			Email: g.Email(name),
			Phone: g.faker.Numerify(g.catalog.PhoneTemplate),
		},
		Demographics: domain.Demographics{
			Age:         g.faker.IntRange(18, 80),
			Gender:      gender,
			IncomeLevel: g.faker.RandomString(g.catalog.IncomeLevels),
			Country:     g.catalog.Country,
			State:       location.Region,
			City:        location.City,
		},
		Onboarding: onboarding,
		Status: domain.UserStatus{
			Status:       domain.StatusActive,
			LastActiveAt: g.pastInstant(now, 30),
		},
	}
}

// Email folds the name to ASCII, joins its tokens with dots and appends a two digit suffix.
func (g *Generator) Email(fullName string) string {
	local := strings.ToLower(strings.Join(strings.Fields(foldASCII(fullName)), "."))
	return fmt.Sprintf("%s%d@%s", local, g.faker.IntRange(10, 99), g.faker.RandomString(g.catalog.EmailDomains))
}

// IssueAccounts fills every quota by drawing owners uniformly from userIDs.
// Users may end up with several accounts or none.
func (g *Generator) IssueAccounts(userIDs []int, now time.Time) []domain.Account {
	if len(userIDs) == 0 {
		return nil
	}

	accounts := make([]domain.Account, 0, g.catalog.QuotaTotal())
	for _, q := range g.catalog.Quotas {
		for i := 0; i < q.Count; i++ {
			accounts = append(accounts, domain.Account{
				UserID:      userIDs[g.faker.IntRange(0, len(userIDs)-1)],
				Type:        q.Type,
				Balance:     g.amount(q.Balance),
				Currency:    g.catalog.Currency,
				ActivatedAt: now.AddDate(0, 0, -g.faker.IntRange(0, 100)),
			})
		}
	}
	return accounts
}

// IssueCards creates one card for every persisted account whose type carries a card.
func (g *Generator) IssueCards(accounts []domain.Account, now time.Time) ([]domain.CardInfo, error) {
	var cards []domain.CardInfo
	for _, a := range accounts {
		if !a.Type.HasCard() {
			continue
		}
		pan, err := g.pan()
		if err != nil {
			return nil, err
		}
		cards = append(cards, domain.CardInfo{
			AccountID:      a.ID,
			CardNumber:     MaskPAN(pan),
			ExpirationDate: domain.DateOf(now.AddDate(0, 0, 365*g.faker.IntRange(1, 5))),
			Status:         domain.StatusActive,
		})
	}
	return cards, nil
}

// MaskPAN hides everything but the last four digits.
func MaskPAN(pan string) string {
	if len(pan) < 4 {
		return maskedPrefix + pan
	}
	return maskedPrefix + pan[len(pan)-4:]
}

func (g *Generator) pan() (string, error) {
	body := panPrefix + g.faker.Numerify(strings.Repeat("#", panLength-len(panPrefix)-1))
	_, pan, err := goluhn.Calculate(body)
	if err != nil {
		return "", fmt.Errorf("calculate check digit: %w", err)
	}
	if !validate.IsPAN(pan) {
		return "", ErrInvalidPAN
	}
	return pan, nil
}

func (g *Generator) amount(r catalog.Range) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(r.Min, r.Max)).Round(2)
}

func (g *Generator) pastInstant(now time.Time, maxDays int) time.Time {
	back := time.Duration(g.faker.IntRange(0, maxDays))*24*time.Hour +
		time.Duration(g.faker.IntRange(0, 23))*time.Hour +
		time.Duration(g.faker.IntRange(0, 59))*time.Minute
	return now.Add(-back)
}

func foldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
