package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountCreditCard AccountType = "credit_card"
	AccountPrepago    AccountType = "prepago"
	AccountSavings    AccountType = "savings"
	AccountPaypal     AccountType = "paypal"
)

// HasCard reports whether accounts of this type are issued a CardInfo row.
func (t AccountType) HasCard() bool {
	return t == AccountCreditCard || t == AccountPrepago
}

const (
	TxStatusApproved  = "approved"
	TxStatusDeclined  = "declined"
	TxStatusCompleted = "completed"
	TxStatusPending   = "pending"

	OnboardingCompleted  = "completed"
	OnboardingInProgress = "in_progress"

	StatusActive = "active"
)

type OperationType string

const (
	OperationMastercard      OperationType = "mastercard"
	OperationPaypal          OperationType = "paypal"
	OperationInternalSend    OperationType = "internal_send"
	OperationInternalReceive OperationType = "internal_receive"
)

type User struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}

type Demographics struct {
	UserID      int    `db:"user_id"`
	Age         int    `db:"age"`
	Gender      string `db:"gender"`
	IncomeLevel string `db:"income_level"`
	Country     string `db:"country"`
	State       string `db:"state"`
	City        string `db:"city"`
}

type Onboarding struct {
	UserID      int        `db:"user_id"`
	Step        int        `db:"step"`
	Status      string     `db:"status"`
	CompletedAt *time.Time `db:"completed_at"`
}

type UserStatus struct {
	UserID       int       `db:"user_id"`
	Status       string    `db:"status"`
	LastActiveAt time.Time `db:"last_active_at"`
}

// Profile is everything generated for one user before it has an id.
type Profile struct {
	User         User
	Demographics Demographics
	Onboarding   Onboarding
	Status       UserStatus
}

type Account struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Type        AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	Currency    string          `db:"currency"`
	ActivatedAt time.Time       `db:"activated_at"`
}

type CardInfo struct {
	ID             int       `db:"id"`
	AccountID      int       `db:"account_id"`
	CardNumber     string    `db:"card_number"`
	ExpirationDate time.Time `db:"expiration_date"`
	Status         string    `db:"status"`
}

// Purchase is the common shape of transactions_mastercard and transactions_paypal rows.
type Purchase struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Merchant    string          `db:"merchant"`
	AccountType AccountType     `db:"account_type"`
	Timestamp   time.Time       `db:"timestamp"`
	Status      string          `db:"status"`
}

type InternalTransfer struct {
	ID          int             `db:"id"`
	SenderID    int             `db:"sender_id"`
	ReceiverID  int             `db:"receiver_id"`
	Amount      decimal.Decimal `db:"amount"`
	AccountType AccountType     `db:"account_type"`
	Timestamp   time.Time       `db:"timestamp"`
	Status      string          `db:"status"`
}

type Operation struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType OperationType   `db:"transaction_type"`
	LineID          int             `db:"line_id"`
	Timestamp       time.Time       `db:"timestamp"`
}

type Campaign struct {
	ID                 int             `db:"id"`
	Name               string          `db:"name"`
	Goal               decimal.Decimal `db:"goal"`
	CashbackPercentage decimal.Decimal `db:"cashback_percentage"`
	StartDate          time.Time       `db:"start_date"`
	EndDate            time.Time       `db:"end_date"`
}

// ActiveOn reports whether day falls inside the campaign window, both ends inclusive.
func (c Campaign) ActiveOn(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(c.StartDate) && !d.After(c.EndDate)
}

type UserCampaign struct {
	UserID       int       `db:"user_id"`
	CampaignID   int       `db:"campaign_id"`
	MerchantList []string  `db:"merchant_list"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
}

// Activation is a credit card holder together with the calendar date the card was activated.
type Activation struct {
	UserID        int       `db:"user_id"`
	ActivatedDate time.Time `db:"activated_at"`
}

// DateOf drops the clock part of t, keeping its calendar day, and returns it as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
