// services/expense_service.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// ExpenseStore provides expense and split persistence. Writes that touch
// an expense and its splits are atomic.
type ExpenseStore interface {
	StoreExpense(expense *models.Expense, splits []models.ExpenseSplit) error
	UpdateExpense(expense *models.Expense, splits []models.ExpenseSplit) error
	GetExpenseByID(expenseID string) (*models.Expense, error)
	ListGroupExpenses(groupID string) ([]models.Expense, error)
	DeleteExpense(expenseID string) error
}

// ExpenseNotifier records expense-activity notifications, best effort
type ExpenseNotifier interface {
	CreateNotification(userID, notificationType, referenceID, message string) error
}

// ExpenseService handles recording, editing and listing shared expenses
type ExpenseService struct {
	expenses ExpenseStore
	splitter *SplitService
	guard    *AuthorizationService
	notifier ExpenseNotifier
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses ExpenseStore, splitter *SplitService, guard *AuthorizationService, notifier ExpenseNotifier) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		splitter: splitter,
		guard:    guard,
		notifier: notifier,
	}
}

// CreateExpense validates and records an expense with its splits in one
// atomic write. Participant notifications are best effort: a failure is
// logged and never fails the expense write.
func (s *ExpenseService) CreateExpense(userID string, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if err := utils.ValidateRequired(req.Description, "description"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositiveAmount(req.Amount, "amount"); err != nil {
		return nil, err
	}

	if _, err := s.guard.RequireMember(req.GroupID, userID); err != nil {
		return nil, err
	}

	splitType := req.SplitType
	if splitType == "" {
		splitType = utils.SplitTypeEqual
	}

	splits, err := s.computeSplits(req.Amount, splitType, req.Participants, req.Splits)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ID:          utils.GenerateID(),
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      req.Amount,
		PayerID:     req.PayerID,
		SplitType:   splitType,
		CreatedBy:   userID,
	}
	for i := range splits {
		splits[i].ExpenseID = expense.ID
	}

	if err := s.expenses.StoreExpense(expense, splits); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	expense.Splits = splits

	s.notifyParticipants(expense, splits)
	return expense, nil
}

// UpdateExpense rewrites an expense and replaces its split set wholesale.
// Only the expense recorder or the group creator may edit.
func (s *ExpenseService) UpdateExpense(userID, expenseID string, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	if err := utils.ValidateRequired(req.Description, "description"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositiveAmount(req.Amount, "amount"); err != nil {
		return nil, err
	}

	expense, err := s.expenses.GetExpenseByID(expenseID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if expense == nil {
		return nil, utils.NewNotFoundError(utils.ErrExpenseNotFound)
	}

	if err := s.guard.RequireExpenseEditor(expense, userID); err != nil {
		return nil, err
	}

	splitType := req.SplitType
	if splitType == "" {
		splitType = utils.SplitTypeEqual
	}

	splits, err := s.computeSplits(req.Amount, splitType, req.Participants, req.Splits)
	if err != nil {
		return nil, err
	}

	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.PayerID = req.PayerID
	expense.SplitType = splitType
	for i := range splits {
		splits[i].ExpenseID = expense.ID
	}

	if err := s.expenses.UpdateExpense(expense, splits); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	expense.Splits = splits
	return expense, nil
}

// DeleteExpense removes an expense and its splits. Only the expense
// recorder or the group creator may delete.
func (s *ExpenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.expenses.GetExpenseByID(expenseID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if expense == nil {
		return utils.NewNotFoundError(utils.ErrExpenseNotFound)
	}
	if err := s.guard.RequireExpenseEditor(expense, userID); err != nil {
		return err
	}
	if err := s.expenses.DeleteExpense(expenseID); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// ListGroupExpenses returns a group's expenses for its members
func (s *ExpenseService) ListGroupExpenses(userID, groupID string) ([]models.Expense, error) {
	if _, err := s.guard.RequireMember(groupID, userID); err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListGroupExpenses(groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return expenses, nil
}

func (s *ExpenseService) computeSplits(total decimal.Decimal, splitType string, participants []string, inputs []models.SplitInput) ([]models.ExpenseSplit, error) {
	if splitType == utils.SplitTypeManual {
		manualAmounts := make(map[string]decimal.Decimal, len(inputs))
		users := make([]string, 0, len(inputs))
		for _, input := range inputs {
			manualAmounts[input.UserID] = input.AmountOwed
			users = append(users, input.UserID)
		}
		if len(participants) > 0 {
			users = participants
		}
		splits, err := s.splitter.ComputeSplits(total, splitType, users, manualAmounts)
		if err != nil {
			return nil, err
		}
		if err := s.splitter.ValidateSplits(total, splits); err != nil {
			return nil, err
		}
		return splits, nil
	}

	splits, err := s.splitter.ComputeSplits(total, splitType, participants, nil)
	if err != nil {
		return nil, err
	}
	if err := s.splitter.ValidateSplits(total, splits); err != nil {
		return nil, err
	}
	return splits, nil
}

func (s *ExpenseService) notifyParticipants(expense *models.Expense, splits []models.ExpenseSplit) {
	message := fmt.Sprintf("New expense \"%s\" (%s) was added to your group",
		expense.Description, expense.Amount.StringFixed(2))
	for _, split := range splits {
		if split.UserID == expense.CreatedBy {
			continue
		}
		if err := s.notifier.CreateNotification(split.UserID, utils.NotificationTypeExpense, expense.ID, message); err != nil {
			utils.Logger.WithError(err).WithField("user_id", split.UserID).
				Warn("failed to create expense notification")
		}
	}
}
