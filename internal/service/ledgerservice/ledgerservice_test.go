package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockAccountReader, *MockRepo) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountReader(ctrl)
	repo := NewMockRepo(ctrl)
	service := New(accounts, repo, newSynthesizer(1), catalog.Default(), 50)
	service.now = func() time.Time { return now }
	return service, accounts, repo
}

func storePurchases(_ context.Context, _ domain.OperationType, rows []domain.Purchase) ([]domain.Purchase, error) {
	out := make([]domain.Purchase, len(rows))
	for i, p := range rows {
		p.ID = i + 1
		out[i] = p
	}
	return out, nil
}

func storeTransfers(_ context.Context, rows []domain.InternalTransfer) ([]domain.InternalTransfer, error) {
	out := make([]domain.InternalTransfer, len(rows))
	for i, tr := range rows {
		tr.ID = i + 1
		out[i] = tr
	}
	return out, nil
}

func expectSnapshot(accounts *MockAccountReader) *gomock.Call {
	return accounts.EXPECT().ListAccounts(gomock.Any(),
		domain.AccountCreditCard, domain.AccountPrepago, domain.AccountPaypal, domain.AccountSavings)
}

func TestService_Contract(t *testing.T) {
	service, _, _ := NewMock(t)

	assert.Equal(t, "ledger", service.Name())
	assert.Equal(t, []domain.Entity{domain.EntityAccounts}, service.Reads())
	assert.Contains(t, service.Writes(), domain.EntityOperations)
}

func TestService_Run(t *testing.T) {
	// 3 mastercard + 1 paypal purchases and 50 transfers.
	const expectedOperations = 3 + 1 + 2*50

	tests := []struct {
		name            string
		prepareMock     func(accounts *MockAccountReader, repo *MockRepo)
		expectedSummary domain.Summary
		expectedError   error
	}{
		{
			name: "Writes ledger and verifies view",
			prepareMock: func(accounts *MockAccountReader, repo *MockRepo) {
				gomock.InOrder(
					expectSnapshot(accounts).Return(snapshot(), nil),
					repo.EXPECT().Reset(gomock.Any()).Return(nil),
					repo.EXPECT().CreatePurchases(gomock.Any(), domain.OperationMastercard, gomock.Len(3)).DoAndReturn(storePurchases),
					repo.EXPECT().CreatePurchases(gomock.Any(), domain.OperationPaypal, gomock.Len(1)).DoAndReturn(storePurchases),
					repo.EXPECT().CreateTransfers(gomock.Any(), gomock.Len(50)).DoAndReturn(storeTransfers),
					repo.EXPECT().RebuildOperationsView(gomock.Any()).Return(nil),
					repo.EXPECT().CountOperations(gomock.Any()).Return(int64(expectedOperations), nil),
				)
			},
			expectedSummary: domain.Summary{
				domain.EntityMastercard: 3,
				domain.EntityPaypal:     1,
				domain.EntityInternal:   50,
				domain.EntityOperations: expectedOperations,
			},
		},
		{
			name: "View count differs from projection",
			prepareMock: func(accounts *MockAccountReader, repo *MockRepo) {
				expectSnapshot(accounts).Return(snapshot(), nil)
				repo.EXPECT().Reset(gomock.Any()).Return(nil)
				repo.EXPECT().CreatePurchases(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(storePurchases)
				repo.EXPECT().CreateTransfers(gomock.Any(), gomock.Any()).DoAndReturn(storeTransfers)
				repo.EXPECT().RebuildOperationsView(gomock.Any()).Return(nil)
				repo.EXPECT().CountOperations(gomock.Any()).Return(int64(expectedOperations-1), nil)
			},
			expectedError: ErrViewMismatch,
		},
		{
			name: "Snapshot read fails",
			prepareMock: func(accounts *MockAccountReader, _ *MockRepo) {
				expectSnapshot(accounts).Return(nil, errors.New("connection refused"))
			},
			expectedError: errors.New("read accounts snapshot: connection refused"),
		},
		{
			name: "Reset fails",
			prepareMock: func(accounts *MockAccountReader, repo *MockRepo) {
				expectSnapshot(accounts).Return(snapshot(), nil)
				repo.EXPECT().Reset(gomock.Any()).Return(errors.New("permission denied"))
			},
			expectedError: errors.New("reset ledger store: permission denied"),
		},
		{
			name: "Purchase insert fails",
			prepareMock: func(accounts *MockAccountReader, repo *MockRepo) {
				expectSnapshot(accounts).Return(snapshot(), nil)
				repo.EXPECT().Reset(gomock.Any()).Return(nil)
				repo.EXPECT().CreatePurchases(gomock.Any(), domain.OperationMastercard, gomock.Any()).Return(nil, errors.New("check violation"))
			},
			expectedError: errors.New("write mastercard purchases: check violation"),
		},
		{
			name: "View rebuild fails",
			prepareMock: func(accounts *MockAccountReader, repo *MockRepo) {
				expectSnapshot(accounts).Return(snapshot(), nil)
				repo.EXPECT().Reset(gomock.Any()).Return(nil)
				repo.EXPECT().CreatePurchases(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(storePurchases)
				repo.EXPECT().CreateTransfers(gomock.Any(), gomock.Any()).DoAndReturn(storeTransfers)
				repo.EXPECT().RebuildOperationsView(gomock.Any()).Return(errors.New("relation does not exist"))
			},
			expectedError: errors.New("rebuild operations view: relation does not exist"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accounts, repo := NewMock(t)
			tt.prepareMock(accounts, repo)

			summary, err := service.Run(context.Background())

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, ErrViewMismatch) {
					assert.ErrorIs(t, err, ErrViewMismatch)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, summary)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSummary, summary)
			}
		})
	}
}
