// repository/settlement_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// SettlementRepository handles database operations for settlements
type SettlementRepository struct {
	DB *sql.DB
}

// NewSettlementRepository creates a new SettlementRepository
func NewSettlementRepository() *SettlementRepository {
	return &SettlementRepository{
		DB: GetDB(),
	}
}

// CreateSettlement inserts a new settlement request
func (r *SettlementRepository) CreateSettlement(settlement *models.Settlement) error {
	_, err := r.DB.Exec(
		`INSERT INTO settlements (id, group_id, sender_id, receiver_id, amount, status)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		settlement.ID, settlement.GroupID, settlement.SenderID,
		settlement.ReceiverID, settlement.Amount, settlement.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %v", err)
	}
	return nil
}

// GetSettlementByID retrieves a settlement by its ID
func (r *SettlementRepository) GetSettlementByID(settlementID string) (*models.Settlement, error) {
	var settlement models.Settlement
	err := r.DB.QueryRow(
		`SELECT id, group_id, sender_id, receiver_id, amount, status, created_at
         FROM settlements WHERE id = $1`,
		settlementID,
	).Scan(&settlement.ID, &settlement.GroupID, &settlement.SenderID,
		&settlement.ReceiverID, &settlement.Amount, &settlement.Status, &settlement.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %v", err)
	}
	return &settlement, nil
}

// UpdateStatusIfPending transitions a settlement out of pending. The
// conditional predicate keeps concurrent approvals from double-processing;
// a false return means the settlement was missing or already terminal.
func (r *SettlementRepository) UpdateStatusIfPending(settlementID, status string) (bool, error) {
	result, err := r.DB.Exec(
		"UPDATE settlements SET status = $2 WHERE id = $1 AND status = $3",
		settlementID, status, utils.StatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update settlement status: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %v", err)
	}
	return affected > 0, nil
}

// ListGroupSettlements retrieves a group's settlements with party names,
// newest first.
func (r *SettlementRepository) ListGroupSettlements(groupID string) ([]models.Settlement, error) {
	rows, err := r.DB.Query(
		`SELECT s.id, s.group_id, s.sender_id, s.receiver_id, s.amount, s.status, s.created_at,
                COALESCE(p1.full_name, ''), COALESCE(p2.full_name, '')
         FROM settlements s
         JOIN profiles p1 ON p1.id = s.sender_id
         JOIN profiles p2 ON p2.id = s.receiver_id
         WHERE s.group_id = $1
         ORDER BY s.created_at DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlements: %v", err)
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		var settlement models.Settlement
		if err := rows.Scan(&settlement.ID, &settlement.GroupID, &settlement.SenderID,
			&settlement.ReceiverID, &settlement.Amount, &settlement.Status,
			&settlement.CreatedAt, &settlement.SenderName, &settlement.ReceiverName); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %v", err)
		}
		settlements = append(settlements, settlement)
	}
	return settlements, rows.Err()
}

// SumSent sums accepted settlement amounts where the user is the sender,
// optionally scoped to one group.
func (r *SettlementRepository) SumSent(userID, groupID string) (decimal.Decimal, error) {
	return r.sumAccepted("sender_id", userID, groupID)
}

// SumReceived sums accepted settlement amounts where the user is the
// receiver, optionally scoped to one group.
func (r *SettlementRepository) SumReceived(userID, groupID string) (decimal.Decimal, error) {
	return r.sumAccepted("receiver_id", userID, groupID)
}

func (r *SettlementRepository) sumAccepted(roleColumn, userID, groupID string) (decimal.Decimal, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(SUM(amount), 0) FROM settlements
         WHERE %s = $1 AND status = $2`, roleColumn)
	args := []interface{}{userID, utils.StatusAccepted}
	if groupID != "" {
		query += " AND group_id = $3"
		args = append(args, groupID)
	}

	var total decimal.Decimal
	if err := r.DB.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum settlements: %v", err)
	}
	return total, nil
}

// GetGroupMemberTotals aggregates per-member expense and settlement totals
// for the group balances view.
func (r *SettlementRepository) GetGroupMemberTotals(groupID string) ([]models.MemberBalance, error) {
	rows, err := r.DB.Query(
		`SELECT p.id, COALESCE(p.full_name, ''),
                (SELECT COALESCE(SUM(e.amount), 0) FROM expenses e
                 WHERE e.payer_id = p.id AND e.group_id = $1),
                (SELECT COALESCE(SUM(es.amount_owed), 0) FROM expense_splits es
                 JOIN expenses e ON e.id = es.expense_id
                 WHERE es.user_id = p.id AND e.group_id = $1),
                (SELECT COALESCE(SUM(s.amount), 0) FROM settlements s
                 WHERE s.sender_id = p.id AND s.group_id = $1 AND s.status = 'accepted'),
                (SELECT COALESCE(SUM(s.amount), 0) FROM settlements s
                 WHERE s.receiver_id = p.id AND s.group_id = $1 AND s.status = 'accepted')
         FROM profiles p
         JOIN group_members gm ON gm.user_id = p.id
         WHERE gm.group_id = $1`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get member totals: %v", err)
	}
	defer rows.Close()

	var balances []models.MemberBalance
	for rows.Next() {
		var balance models.MemberBalance
		if err := rows.Scan(&balance.UserID, &balance.FullName, &balance.TotalPaid,
			&balance.TotalOwes, &balance.Sent, &balance.Received); err != nil {
			return nil, fmt.Errorf("failed to scan member totals: %v", err)
		}
		balances = append(balances, balance)
	}
	return balances, rows.Err()
}
