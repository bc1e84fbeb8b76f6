package agentbox

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/commishhq/commission-tracker-backend/internal/commission"
	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// Leading property-ID token like "62P26584, " on listing addresses.
var propertyIDPattern = regexp.MustCompile(`^[0-9]+[A-Z]*[0-9]*,\s*`)

var nonNumericPattern = regexp.MustCompile(`[^0-9.\-]`)

// Commission percentage assumed when the export column is zero or blank.
const fallbackCommissionPercentage = 2.5

var statusVocabulary = map[string]string{
	"settled":       model.StatusSettled,
	"sold":          model.StatusSettled,
	"unconditional": model.StatusSettled,
	"conditional":   model.StatusConditional,
	"pending":       model.StatusPending,
}

var propertyTypeVocabulary = map[string]string{
	"house":      model.TypeHouse,
	"apartment":  model.TypeApartment,
	"unit":       model.TypeApartment,
	"townhouse":  model.TypeTownhouse,
	"villa":      model.TypeTownhouse,
	"land":       model.TypeLand,
	"commercial": model.TypeCommercial,
}

// StripPropertyID removes a leading AgentBox property-ID token from a
// listing address: "62P26584, 12 Smith Street" becomes "12 Smith Street".
func StripPropertyID(address string) string {
	return strings.TrimSpace(propertyIDPattern.ReplaceAllString(address, ""))
}

// ParseCurrency extracts a number from a currency-formatted string by
// stripping every character that is not a digit, dot, or minus sign.
// Unparseable input yields 0.
func ParseCurrency(s string) float64 {
	cleaned := nonNumericPattern.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// NormalizeRow maps one valid export row onto the internal sold-property
// schema, applying the export's normalization rules in order: property-ID
// stripping, currency parsing, the ex-GST fallback derivation, vocabulary
// mapping with settled/house defaults, the apartment override for addresses
// containing "/", region-aware date parsing, and financial-year derivation.
//
// The export's financial year is derived with fyRegion's convention rather
// than the settings region; callers pass the configured import convention
// (historically always Australian).
func NormalizeRow(row Row, settings model.UserSettings, fyRegion dateutil.Region, now time.Time) model.ImportRecord {
	address := StripPropertyID(row[ColListing])

	salePrice := ParseCurrency(row[ColSoldPrice])
	commissionPct := ParseCurrency(row[ColSoldCommission])
	if commissionPct == 0 {
		commissionPct = fallbackCommissionPercentage
	}

	// The export's explicit ex-GST gross is authoritative; when absent,
	// derive it from the sale price and percentage.
	grossExGST := ParseCurrency(row[ColGrossCommExGST])
	if grossExGST == 0 && salePrice > 0 && commissionPct > 0 {
		grossExGST = (salePrice * commissionPct / 100) / commission.GSTMultiplier
	}
	grossIncGST := grossExGST * commission.GSTMultiplier

	netToAgent := ParseCurrency(row[ColNetToAgent])

	grossPerAgent := ParseCurrency(row[ColGrossCommPerAgent])
	salePerAgent := ParseCurrency(row[ColSalePerAgent])
	if salePerAgent == 0 {
		salePerAgent = salePrice
	}

	status := statusVocabulary[strings.ToLower(strings.TrimSpace(row[ColCurrentStatus]))]
	if status == "" {
		status = model.StatusSettled
	}

	propertyType := propertyTypeVocabulary[strings.ToLower(strings.TrimSpace(row[ColPropertyType]))]
	if propertyType == "" {
		propertyType = model.TypeHouse
	}
	if strings.Contains(address, "/") {
		propertyType = model.TypeApartment
	}

	marketingLevyValue := settings.MarketingLevyValue
	if marketingLevyValue == 0 {
		marketingLevyValue = 1
	}
	franchiseFeeValue := settings.FranchiseFeeValue
	if franchiseFeeValue == 0 {
		franchiseFeeValue = 6
	}

	// The export does not carry fee amounts; both levies are derived as
	// percentages of the ex-GST gross, matching the export's conventions
	// rather than the operator's fee types.
	marketingLevy := grossExGST * marketingLevyValue / 100
	franchiseFee := grossExGST * franchiseFeeValue / 100

	region := dateutil.Region(settings.Region)
	if settings.Region == "" {
		region = dateutil.Australia
	}
	settlement := dateutil.ParseRegionalDate(row[ColUnconditionalDate], region, now)

	return model.ImportRecord{
		Property: model.Property{
			Address:              address,
			SalePrice:            salePrice,
			CommissionPercentage: commissionPct,
			GSTInclusive:         true,

			GrossCommissionIncGST: grossIncGST,
			GrossCommissionExGST:  grossExGST,

			MarketingLevy:      marketingLevy,
			MarketingLevyType:  orFeeType(settings.MarketingLevyType, model.FeePercentage),
			MarketingLevyValue: marketingLevyValue,

			FranchiseFee:      franchiseFee,
			FranchiseFeeType:  orFeeType(settings.FranchiseFeeType, model.FeePercentage),
			FranchiseFeeValue: franchiseFeeValue,

			TransactionFee:      0,
			TransactionFeeType:  orFeeType(settings.TransactionFeeType, model.FeeFixed),
			TransactionFeeValue: settings.TransactionFeeValue,

			OtherFees:     0,
			NetCommission: netToAgent,

			GrossCommissionPerAgent: grossPerAgent,
			SalePricePerAgent:       salePerAgent,
			AgentCount:              1,

			SettlementDate: settlement.Date,
			FinancialYear:  dateutil.FinancialYearForDate(settlement.Date, fyRegion),
			Status:         status,
			ClientName:     strings.TrimSpace(row[ColAgent]),
			PropertyType:   propertyType,
		},
		RawSettlementDate:       settlement.Original,
		SettlementDateDefaulted: settlement.Defaulted,
	}
}

func orFeeType(t, fallback model.FeeType) model.FeeType {
	if t == "" {
		return fallback
	}
	return t
}
