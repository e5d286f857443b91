// services/export_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// ExportService generates Excel reports for a group's ledger
type ExportService struct {
	expenses    ExpenseStore
	settlements SettlementStore
	balances    *BalanceService
	guard       *AuthorizationService
}

// NewExportService creates a new export service
func NewExportService(expenses ExpenseStore, settlements SettlementStore, balances *BalanceService, guard *AuthorizationService) *ExportService {
	return &ExportService{
		expenses:    expenses,
		settlements: settlements,
		balances:    balances,
		guard:       guard,
	}
}

// ExportGroupReport generates an Excel workbook with the group's member
// balances, expenses and settlements. Members only.
func (s *ExportService) ExportGroupReport(userID, groupID string) (*excelize.File, string, error) {
	group, err := s.guard.RequireMember(groupID, userID)
	if err != nil {
		return nil, "", err
	}

	expenses, err := s.expenses.ListGroupExpenses(groupID)
	if err != nil {
		return nil, "", utils.NewStoreUnavailableError(err)
	}
	settlements, err := s.settlements.ListGroupSettlements(groupID)
	if err != nil {
		return nil, "", utils.NewStoreUnavailableError(err)
	}
	memberBalances, err := s.balances.GetGroupBalances(groupID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, memberBalances); err != nil {
		return nil, "", utils.NewInternalError("failed to create summary sheet")
	}
	if err := s.createExpensesSheet(f, expenses); err != nil {
		return nil, "", utils.NewInternalError("failed to create expenses sheet")
	}
	if err := s.createSettlementsSheet(f, settlements); err != nil {
		return nil, "", utils.NewInternalError("failed to create settlements sheet")
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(group.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet writes per-member totals
func (s *ExportService) createSummarySheet(f *excelize.File, balances []models.MemberBalance) error {
	sheetName := "Summary"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Member", "Total Paid", "Total Owes", "Sent", "Received"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, balance := range balances {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.FullName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance.TotalPaid.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), balance.TotalOwes.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), balance.Sent.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), balance.Received.InexactFloat64())
	}

	f.SetColWidth(sheetName, "A", "E", 15)
	return nil
}

// createExpensesSheet writes the expense list
func (s *ExportService) createExpensesSheet(f *excelize.File, expenses []models.Expense) error {
	sheetName := "Expenses"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	headers := []string{"Date", "Description", "Amount", "Paid By", "Split Type"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.CreatedAt.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Amount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.PayerName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.SplitType)
	}

	f.SetColWidth(sheetName, "A", "E", 18)
	return nil
}

// createSettlementsSheet writes the settlement list
func (s *ExportService) createSettlementsSheet(f *excelize.File, settlements []models.Settlement) error {
	sheetName := "Settlements"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	headers := []string{"Date", "From", "To", "Amount", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	for i, settlement := range settlements {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), settlement.CreatedAt.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), settlement.SenderName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), settlement.ReceiverName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), settlement.Amount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), settlement.Status)
	}

	f.SetColWidth(sheetName, "A", "E", 15)
	return nil
}
