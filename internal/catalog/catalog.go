// Package catalog holds the immutable distribution tables the generators draw from.
// Nothing here is mutated after construction; generators receive a Catalog by value.
package catalog

import (
	"github.com/GlebRadaev/finseed/internal/domain"
)

type Range struct {
	Min float64
	Max float64
}

type Location struct {
	Region string
	City   string
}

// Quota is how many accounts of one type are issued per run.
type Quota struct {
	Type    domain.AccountType
	Count   int
	Balance Range
}

// Channel maps account types onto the purchase table they transact through.
type Channel struct {
	Operation    domain.OperationType
	AccountTypes []domain.AccountType
	Amount       Range
}

type Catalog struct {
	MaleFirstNames   []string
	FemaleFirstNames []string
	LastNames        []string
	Genders          []string
	IncomeLevels     []string
	EmailDomains     []string
	Country          string
	Locations        []Location
	PhoneTemplate    string
	Currency         string
	Merchants        []string

	Quotas   []Quota
	Channels []Channel

	TransferAmount      Range
	TransferAccountType domain.AccountType
}

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Default returns the Chilean dataset the seeder ships with.
func Default() Catalog {
	return Catalog{
		MaleFirstNames: []string{
			"Juan", "Carlos", "Pedro", "Miguel", "Andrés",
			"Jorge", "Ricardo", "Francisco", "Sebastián", "Diego",
		},
		FemaleFirstNames: []string{
			"María", "Camila", "Sofía", "Isabella", "Valentina",
			"Fernanda", "Catalina", "Gabriela", "Antonella", "Julieta",
		},
		LastNames: []string{
			"González", "Rodríguez", "Pérez", "Martínez", "Sánchez",
			"Ramírez", "Torres", "Flores", "Díaz", "Reyes",
		},
		Genders:      []string{GenderMale, GenderFemale, GenderOther},
		IncomeLevels: []string{"Low", "Medium", "High"},
		EmailDomains: []string{"gmail.com", "hotmail.cl", "yahoo.com", "outlook.com"},
		Country:      "Chile",
		Locations: []Location{
			{Region: "Región Metropolitana", City: "Santiago"},
			{Region: "Región de Valparaíso", City: "Valparaíso"},
			{Region: "Región del Biobío", City: "Concepción"},
			{Region: "Región de Coquimbo", City: "La Serena"},
			{Region: "Región de Antofagasta", City: "Antofagasta"},
			{Region: "Región de La Araucanía", City: "Temuco"},
			{Region: "Región de O'Higgins", City: "Rancagua"},
			{Region: "Región de Los Lagos", City: "Puerto Montt"},
			{Region: "Región de Magallanes", City: "Punta Arenas"},
			{Region: "Región de Tarapacá", City: "Iquique"},
		},
		PhoneTemplate: "+56 9 #### ####",
		Currency:      "CLP",
		Merchants:     []string{"Amazon", "Walmart", "BestBuy", "Target", "Starbucks"},
		Quotas: []Quota{
			{Type: domain.AccountCreditCard, Count: 50, Balance: Range{Min: 0, Max: 100000}},
			{Type: domain.AccountPrepago, Count: 100, Balance: Range{Min: 0, Max: 100000}},
			{Type: domain.AccountSavings, Count: 100, Balance: Range{Min: 0, Max: 100000}},
			{Type: domain.AccountPaypal, Count: 10, Balance: Range{Min: 0, Max: 100000}},
		},
		Channels: []Channel{
			{
				Operation:    domain.OperationMastercard,
				AccountTypes: []domain.AccountType{domain.AccountCreditCard, domain.AccountPrepago},
				Amount:       Range{Min: 10, Max: 1000},
			},
			{
				Operation:    domain.OperationPaypal,
				AccountTypes: []domain.AccountType{domain.AccountPaypal},
				Amount:       Range{Min: 5, Max: 500},
			},
		},
		TransferAmount:      Range{Min: 1, Max: 300},
		TransferAccountType: domain.AccountSavings,
	}
}

// FirstNames returns the first-name pool for a gender; any gender outside Male/Female draws from both lists.
func (c Catalog) FirstNames(gender string) []string {
	switch gender {
	case GenderMale:
		return c.MaleFirstNames
	case GenderFemale:
		return c.FemaleFirstNames
	default:
		names := make([]string, 0, len(c.MaleFirstNames)+len(c.FemaleFirstNames))
		names = append(names, c.MaleFirstNames...)
		return append(names, c.FemaleFirstNames...)
	}
}

// QuotaTotal is the number of accounts one issuance pass produces.
func (c Catalog) QuotaTotal() int {
	total := 0
	for _, q := range c.Quotas {
		total += q.Count
	}
	return total
}

// ChannelFor returns the purchase channel an account type transacts through.
func (c Catalog) ChannelFor(t domain.AccountType) (Channel, bool) {
	for _, ch := range c.Channels {
		for _, at := range ch.AccountTypes {
			if at == t {
				return ch, true
			}
		}
	}
	return Channel{}, false
}
