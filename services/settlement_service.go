// services/settlement_service.go
package services

import (
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// SettlementStore provides settlement persistence
type SettlementStore interface {
	CreateSettlement(settlement *models.Settlement) error
	GetSettlementByID(settlementID string) (*models.Settlement, error)
	UpdateStatusIfPending(settlementID, status string) (bool, error)
	ListGroupSettlements(groupID string) ([]models.Settlement, error)
}

// SettlementService mediates the settlement request workflow: creation
// lands in pending, and only the group creator moves a request to its
// terminal accepted or rejected state.
type SettlementService struct {
	settlements SettlementStore
	guard       *AuthorizationService
}

// NewSettlementService creates a new settlement service
func NewSettlementService(settlements SettlementStore, guard *AuthorizationService) *SettlementService {
	return &SettlementService{
		settlements: settlements,
		guard:       guard,
	}
}

// CreateSettlement records a pending settlement claim from the sender to
// the receiver. The amount is deliberately not validated against the
// outstanding balance: overpaying mirrors manual reconciliation.
func (s *SettlementService) CreateSettlement(senderID string, req *models.CreateSettlementRequest) (*models.Settlement, error) {
	if err := utils.ValidatePositiveAmount(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if senderID == req.ReceiverID {
		return nil, utils.NewValidationError("you cannot settle up with yourself")
	}

	if _, err := s.guard.RequireMember(req.GroupID, senderID); err != nil {
		return nil, err
	}
	receiverMember, err := s.guard.groups.IsMember(req.GroupID, req.ReceiverID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if !receiverMember {
		return nil, utils.NewValidationError("receiver is not a member of this group")
	}

	settlement := &models.Settlement{
		ID:         utils.GenerateID(),
		GroupID:    req.GroupID,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Amount:     req.Amount,
		Status:     utils.StatusPending,
	}
	if err := s.settlements.CreateSettlement(settlement); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return settlement, nil
}

// UpdateStatus transitions a pending settlement to accepted or rejected.
// Only the group creator may decide; terminal settlements cannot be
// transitioned again. The store-level conditional update keeps concurrent
// decisions from double-processing.
func (s *SettlementService) UpdateStatus(callerID, settlementID, status string) (*models.Settlement, error) {
	if status != utils.StatusAccepted && status != utils.StatusRejected {
		return nil, utils.NewValidationError("status must be accepted or rejected")
	}

	settlement, err := s.settlements.GetSettlementByID(settlementID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if settlement == nil {
		return nil, utils.NewNotFoundError(utils.ErrSettlementNotFound)
	}

	if _, err := s.guard.RequireGroupCreator(settlement.GroupID, callerID); err != nil {
		return nil, err
	}

	if settlement.Status != utils.StatusPending {
		return nil, utils.NewInvalidTransitionError(settlement.Status)
	}

	updated, err := s.settlements.UpdateStatusIfPending(settlementID, status)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if !updated {
		// Lost the race to a concurrent decision.
		current, err := s.settlements.GetSettlementByID(settlementID)
		if err != nil {
			return nil, utils.NewStoreUnavailableError(err)
		}
		if current == nil {
			return nil, utils.NewNotFoundError(utils.ErrSettlementNotFound)
		}
		return nil, utils.NewInvalidTransitionError(current.Status)
	}

	settlement.Status = status
	return settlement, nil
}

// ListGroupSettlements returns a group's settlements for its members
func (s *SettlementService) ListGroupSettlements(callerID, groupID string) ([]models.Settlement, error) {
	if _, err := s.guard.RequireMember(groupID, callerID); err != nil {
		return nil, err
	}
	settlements, err := s.settlements.ListGroupSettlements(groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return settlements, nil
}
