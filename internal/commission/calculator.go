// Package commission computes commission breakdowns for sold properties,
// active listings, and pipeline opportunities. All functions are pure: the
// same input always yields the same output, which idempotent re-import and
// the display layer both rely on.
package commission

import (
	"fmt"
	"math"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// GSTMultiplier converts between GST-exclusive and GST-inclusive commission
// figures (10% GST). Domain constant, not configurable.
const GSTMultiplier = 1.1

// Fee is one named entry of a fee schedule: a percentage of GST-exclusive
// gross commission, or a fixed currency amount.
type Fee struct {
	Type  model.FeeType
	Value float64
}

// Input carries the parameters needed to compute a commission breakdown.
// CommissionPercentage is interpreted as GST-inclusive unless GSTInclusive
// is false, in which case GST is added on top of the derived figure.
type Input struct {
	SalePrice            float64
	CommissionPercentage float64
	GSTInclusive         bool
	MarketingLevy        Fee
	FranchiseFee         Fee
	TransactionFee       Fee
	OtherFees            float64
	AgentCount           int
}

// Breakdown is the computed, immutable result of ComputeBreakdown.
type Breakdown struct {
	GrossCommissionIncGST   float64
	GrossCommissionExGST    float64
	MarketingLevy           float64
	FranchiseFee            float64
	TransactionFee          float64
	OtherFees               float64
	NetCommission           float64
	GrossCommissionPerAgent float64
	SalePricePerAgent       float64
}

// ComputeBreakdown derives the full commission breakdown from raw inputs.
//
// It is lenient: negative or non-finite numbers are coerced to zero and an
// agent count below one becomes one, so it always returns a number. This
// matches its role as a live-preview calculator behind interactive forms,
// where partially-typed input must never raise. Batch callers that want
// garbage input to be visible use ComputeBreakdownStrict instead.
func ComputeBreakdown(in Input) Breakdown {
	salePrice := coerce(in.SalePrice)
	pct := coerce(in.CommissionPercentage)
	agents := in.AgentCount
	if agents < 1 {
		agents = 1
	}

	product := salePrice * pct / 100

	var incGST, exGST float64
	if in.GSTInclusive {
		incGST = product
		exGST = incGST / GSTMultiplier
	} else {
		exGST = product
		incGST = exGST * GSTMultiplier
	}

	marketingLevy := feeAmount(in.MarketingLevy, exGST)
	franchiseFee := feeAmount(in.FranchiseFee, exGST)
	transactionFee := feeAmount(in.TransactionFee, exGST)
	otherFees := coerce(in.OtherFees)

	// Net always starts from the GST-inclusive gross. Domain rule, not an
	// accounting identity.
	net := incGST - (marketingLevy + franchiseFee + transactionFee + otherFees)

	return Breakdown{
		GrossCommissionIncGST:   incGST,
		GrossCommissionExGST:    exGST,
		MarketingLevy:           marketingLevy,
		FranchiseFee:            franchiseFee,
		TransactionFee:          transactionFee,
		OtherFees:               otherFees,
		NetCommission:           net,
		GrossCommissionPerAgent: exGST / float64(agents),
		SalePricePerAgent:       salePrice / float64(agents),
	}
}

// ComputeBreakdownStrict is the batch-import variant of ComputeBreakdown.
// It rejects negative sale prices, percentages, and fee values instead of
// silently zeroing them, so a corrupted import row is counted rather than
// admitted with wrong figures.
func ComputeBreakdownStrict(in Input) (Breakdown, error) {
	if in.SalePrice < 0 {
		return Breakdown{}, fmt.Errorf("%w: sale price %.2f", apperrors.ErrNegativeAmount, in.SalePrice)
	}
	if in.CommissionPercentage < 0 {
		return Breakdown{}, fmt.Errorf("%w: commission percentage %.2f", apperrors.ErrNegativeAmount, in.CommissionPercentage)
	}
	for _, f := range []struct {
		name string
		fee  Fee
	}{
		{"marketing levy", in.MarketingLevy},
		{"franchise fee", in.FranchiseFee},
		{"transaction fee", in.TransactionFee},
	} {
		if f.fee.Value < 0 {
			return Breakdown{}, fmt.Errorf("%w: %s %.2f", apperrors.ErrNegativeAmount, f.name, f.fee.Value)
		}
	}
	if in.OtherFees < 0 {
		return Breakdown{}, fmt.Errorf("%w: other fees %.2f", apperrors.ErrNegativeAmount, in.OtherFees)
	}
	return ComputeBreakdown(in), nil
}

// EstimatedCommission returns the GST-inclusive estimated commission for a
// listing or pipeline opportunity: sale price times percentage.
func EstimatedCommission(salePrice, commissionPercentage float64) float64 {
	return coerce(salePrice) * coerce(commissionPercentage) / 100
}

// WeightedValue multiplies a commission figure by the opportunity's closing
// probability (0-100), giving its expected value.
func WeightedValue(commission float64, probability int) float64 {
	if probability < 0 {
		probability = 0
	}
	if probability > 100 {
		probability = 100
	}
	return commission * float64(probability) / 100
}

// WeightedValueExGST is the GST-exclusive weighted value used for display.
func WeightedValueExGST(commissionIncGST float64, probability int) float64 {
	return WeightedValue(commissionIncGST/GSTMultiplier, probability)
}

// feeAmount computes a single fee entry's currency amount from the
// GST-exclusive gross commission base. Fees are computed independently from
// the same base, never compounded.
func feeAmount(f Fee, grossExGST float64) float64 {
	value := coerce(f.Value)
	if f.Type == model.FeePercentage {
		return grossExGST * value / 100
	}
	return value
}

// coerce absorbs bad numeric input: negatives, NaN, and infinities become 0.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
