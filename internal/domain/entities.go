package domain

import "errors"

// Entity names a table or view a pipeline stage reads or writes.
type Entity string

const (
	EntityUsers         Entity = "users"
	EntityDemographics  Entity = "demographics"
	EntityOnboarding    Entity = "onboarding"
	EntityUserStatus    Entity = "user_status"
	EntityAccounts      Entity = "accounts"
	EntityCardInfo      Entity = "card_info"
	EntityMastercard    Entity = "transactions_mastercard"
	EntityPaypal        Entity = "transactions_paypal"
	EntityInternal      Entity = "transactions_internal"
	EntityOperations    Entity = "operations"
	EntityCampaigns     Entity = "campaigns"
	EntityUserCampaigns Entity = "user_campaigns"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnknown      = errors.New("unknown error")
)
