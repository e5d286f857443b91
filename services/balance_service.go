// services/balance_service.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// ExpenseSumStore provides the split aggregations behind balance queries
type ExpenseSumStore interface {
	SumOwedToUser(userID, groupID string) (decimal.Decimal, error)
	SumOwedByUser(userID, groupID string) (decimal.Decimal, error)
}

// SettlementSumStore provides the accepted-settlement aggregations behind
// balance queries.
type SettlementSumStore interface {
	SumSent(userID, groupID string) (decimal.Decimal, error)
	SumReceived(userID, groupID string) (decimal.Decimal, error)
	GetGroupMemberTotals(groupID string) ([]models.MemberBalance, error)
}

// BalanceService derives net positions from expense splits and accepted
// settlements. It is a pure read side: every call recomputes from the
// store, nothing is cached or mutated.
type BalanceService struct {
	expenses    ExpenseSumStore
	settlements SettlementSumStore
}

// NewBalanceService creates a new balance service
func NewBalanceService(expenses ExpenseSumStore, settlements SettlementSumStore) *BalanceService {
	return &BalanceService{
		expenses:    expenses,
		settlements: settlements,
	}
}

// GetUserBalance returns the user's net position across all groups, or
// scoped to one group when groupID is non-empty. Gross amounts from
// splits are netted against accepted settlements; both results are
// clamped at zero.
func (s *BalanceService) GetUserBalance(userID, groupID string) (*models.Balance, error) {
	grossOwed, err := s.expenses.SumOwedToUser(userID, groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	grossOwes, err := s.expenses.SumOwedByUser(userID, groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	sent, err := s.settlements.SumSent(userID, groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	received, err := s.settlements.SumReceived(userID, groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}

	return &models.Balance{
		Owed: utils.MaxZero(grossOwed.Sub(received)),
		Owes: utils.MaxZero(grossOwes.Sub(sent)),
	}, nil
}

// GetGroupBalances returns per-member aggregate totals for the group
// screen.
func (s *BalanceService) GetGroupBalances(groupID string) ([]models.MemberBalance, error) {
	balances, err := s.settlements.GetGroupMemberTotals(groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return balances, nil
}
