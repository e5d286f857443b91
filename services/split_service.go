// services/split_service.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// SplitService computes per-member owed amounts for an expense
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputeSplits produces the ordered split set for an expense total under
// the given policy. Equal splits divide the total evenly; manual splits
// take caller-supplied amounts, defaulting missing participants to zero.
func (s *SplitService) ComputeSplits(total decimal.Decimal, splitType string, participants []string, manualAmounts map[string]decimal.Decimal) ([]models.ExpenseSplit, error) {
	if len(participants) == 0 {
		return nil, utils.NewNoParticipantsError()
	}

	splits := make([]models.ExpenseSplit, 0, len(participants))
	switch splitType {
	case utils.SplitTypeManual:
		for _, userID := range participants {
			splits = append(splits, models.ExpenseSplit{
				UserID:     userID,
				AmountOwed: manualAmounts[userID],
			})
		}
	default:
		share := total.Div(decimal.NewFromInt(int64(len(participants))))
		for _, userID := range participants {
			splits = append(splits, models.ExpenseSplit{
				UserID:     userID,
				AmountOwed: share,
			})
		}
	}
	return splits, nil
}

// ValidateSplits enforces split-sum integrity before persistence. It runs
// identically at creation and at edit time.
func (s *SplitService) ValidateSplits(total decimal.Decimal, splits []models.ExpenseSplit) error {
	if len(splits) == 0 {
		return utils.NewNoParticipantsError()
	}

	splitTotal := decimal.Zero
	for _, split := range splits {
		if split.AmountOwed.IsNegative() {
			return utils.NewValidationError("split amounts cannot be negative")
		}
		splitTotal = splitTotal.Add(split.AmountOwed)
	}

	if !utils.WithinEpsilon(splitTotal, total) {
		return utils.NewSplitMismatchError(splitTotal, total)
	}
	return nil
}
