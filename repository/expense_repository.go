// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
)

// ExpenseRepository handles database operations for expenses and splits
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

// StoreExpense saves an expense and its splits as a single atomic batch.
// Partial application (expense without splits, or vice versa) is never
// observable.
func (r *ExpenseRepository) StoreExpense(expense *models.Expense, splits []models.ExpenseSplit) error {
	statements := []Statement{
		{
			SQL: `INSERT INTO expenses (id, group_id, description, amount, payer_id, split_type, created_by)
                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			Args: []interface{}{expense.ID, expense.GroupID, expense.Description,
				expense.Amount, expense.PayerID, expense.SplitType, expense.CreatedBy},
		},
	}
	for _, split := range splits {
		statements = append(statements, Statement{
			SQL:  "INSERT INTO expense_splits (expense_id, user_id, amount_owed) VALUES ($1, $2, $3)",
			Args: []interface{}{expense.ID, split.UserID, split.AmountOwed},
		})
	}
	return ExecBatch(statements)
}

// UpdateExpense rewrites an expense and replaces its split set wholesale
// in one atomic batch.
func (r *ExpenseRepository) UpdateExpense(expense *models.Expense, splits []models.ExpenseSplit) error {
	statements := []Statement{
		{
			SQL: `UPDATE expenses
                  SET description = $2, amount = $3, payer_id = $4, split_type = $5
                  WHERE id = $1`,
			Args: []interface{}{expense.ID, expense.Description, expense.Amount,
				expense.PayerID, expense.SplitType},
		},
		{
			SQL:  "DELETE FROM expense_splits WHERE expense_id = $1",
			Args: []interface{}{expense.ID},
		},
	}
	for _, split := range splits {
		statements = append(statements, Statement{
			SQL:  "INSERT INTO expense_splits (expense_id, user_id, amount_owed) VALUES ($1, $2, $3)",
			Args: []interface{}{expense.ID, split.UserID, split.AmountOwed},
		})
	}
	return ExecBatch(statements)
}

// GetExpenseByID retrieves an expense with its splits
func (r *ExpenseRepository) GetExpenseByID(expenseID string) (*models.Expense, error) {
	var expense models.Expense
	err := r.DB.QueryRow(
		`SELECT id, group_id, description, amount, payer_id, split_type, created_by, created_at
         FROM expenses WHERE id = $1`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount,
		&expense.PayerID, &expense.SplitType, &expense.CreatedBy, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %v", err)
	}

	splits, err := r.getSplits(expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits
	return &expense, nil
}

// ListGroupExpenses retrieves a group's expenses with payer names and
// splits, newest first.
func (r *ExpenseRepository) ListGroupExpenses(groupID string) ([]models.Expense, error) {
	rows, err := r.DB.Query(
		`SELECT e.id, e.group_id, e.description, e.amount, e.payer_id, e.split_type,
                e.created_by, e.created_at, COALESCE(p.full_name, '')
         FROM expenses e
         JOIN profiles p ON p.id = e.payer_id
         WHERE e.group_id = $1
         ORDER BY e.created_at DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description,
			&expense.Amount, &expense.PayerID, &expense.SplitType,
			&expense.CreatedBy, &expense.CreatedAt, &expense.PayerName); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range expenses {
		splits, err := r.getSplits(expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].Splits = splits
	}
	return expenses, nil
}

// DeleteExpense removes an expense; its splits cascade
func (r *ExpenseRepository) DeleteExpense(expenseID string) error {
	_, err := r.DB.Exec("DELETE FROM expenses WHERE id = $1", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %v", err)
	}
	return nil
}

func (r *ExpenseRepository) getSplits(expenseID string) ([]models.ExpenseSplit, error) {
	rows, err := r.DB.Query(
		"SELECT expense_id, user_id, amount_owed FROM expense_splits WHERE expense_id = $1",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %v", err)
	}
	defer rows.Close()

	var splits []models.ExpenseSplit
	for rows.Next() {
		var split models.ExpenseSplit
		if err := rows.Scan(&split.ExpenseID, &split.UserID, &split.AmountOwed); err != nil {
			return nil, fmt.Errorf("failed to scan split: %v", err)
		}
		splits = append(splits, split)
	}
	return splits, rows.Err()
}

// SumOwedToUser sums splits owed to the user by others across expenses
// the user paid for, optionally scoped to one group.
func (r *ExpenseRepository) SumOwedToUser(userID, groupID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(s.amount_owed), 0)
              FROM expense_splits s
              JOIN expenses e ON e.id = s.expense_id
              WHERE e.payer_id = $1 AND s.user_id != $1`
	args := []interface{}{userID}
	if groupID != "" {
		query += " AND e.group_id = $2"
		args = append(args, groupID)
	}
	return r.sum(query, args)
}

// SumOwedByUser sums the user's splits on expenses paid by others,
// optionally scoped to one group.
func (r *ExpenseRepository) SumOwedByUser(userID, groupID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(s.amount_owed), 0)
              FROM expense_splits s
              JOIN expenses e ON e.id = s.expense_id
              WHERE s.user_id = $1 AND e.payer_id != $1`
	args := []interface{}{userID}
	if groupID != "" {
		query += " AND e.group_id = $2"
		args = append(args, groupID)
	}
	return r.sum(query, args)
}

func (r *ExpenseRepository) sum(query string, args []interface{}) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.DB.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum splits: %v", err)
	}
	return total, nil
}
