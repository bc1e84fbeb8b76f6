package agentbox

import (
	"math"
	"testing"
	"time"

	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

var testNow = time.Date(2024, time.August, 15, 9, 0, 0, 0, time.UTC)

func testSettings() model.UserSettings {
	s := model.DefaultUserSettings()
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStripPropertyID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips leading id token", "62P26584, 12 Smith Street, Suburb", "12 Smith Street, Suburb"},
		{"plain address untouched", "12 Smith Street, Suburb", "12 Smith Street, Suburb"},
		{"digits only id", "12345, 8 High St", "8 High St"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripPropertyID(tt.input); got != tt.want {
				t.Errorf("StripPropertyID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"$1,250,000.50", 1250000.50},
		{"500000", 500000},
		{"-$300.25", -300.25},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		if got := ParseCurrency(tt.input); !almostEqual(got, tt.want) {
			t.Errorf("ParseCurrency(%q) = %f, want %f", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRow(t *testing.T) {
	baseRow := func() Row {
		return Row{
			ColListing:           "62P26584, 12 Smith Street, Suburb",
			ColSoldPrice:         "$500,000",
			ColSoldCommission:    "2.2",
			ColGrossCommExGST:    "$10,000",
			ColGrossCommPerAgent: "$5,000",
			ColSalePerAgent:      "$250,000",
			ColUnconditionalDate: "05/03/2024",
			ColCurrentStatus:     "Unconditional",
			ColNetToAgent:        "$8,500",
			ColAgent:             "Jane Citizen",
			ColPropertyType:      "House",
		}
	}

	t.Run("maps a complete row onto the property schema", func(t *testing.T) {
		rec := NormalizeRow(baseRow(), testSettings(), dateutil.Australia, testNow)
		p := rec.Property

		if p.Address != "12 Smith Street, Suburb" {
			t.Errorf("Expected stripped address, got %q", p.Address)
		}
		if !almostEqual(p.SalePrice, 500000) {
			t.Errorf("Expected sale price 500000, got %f", p.SalePrice)
		}
		if !almostEqual(p.GrossCommissionExGST, 10000) {
			t.Errorf("Expected ex GST 10000, got %f", p.GrossCommissionExGST)
		}
		if !almostEqual(p.GrossCommissionIncGST, 11000) {
			t.Errorf("Expected inc GST 11000, got %f", p.GrossCommissionIncGST)
		}
		if p.Status != model.StatusSettled {
			t.Errorf("Expected unconditional to map to settled, got %q", p.Status)
		}
		if !almostEqual(p.NetCommission, 8500) {
			t.Errorf("Expected net commission from export column, got %f", p.NetCommission)
		}
		if p.ClientName != "Jane Citizen" {
			t.Errorf("Expected agent mapped to client name, got %q", p.ClientName)
		}
		if p.AgentCount != 1 {
			t.Errorf("Expected default agent count 1, got %d", p.AgentCount)
		}
		if !p.GSTInclusive {
			t.Error("Expected import records to be GST inclusive")
		}

		wantDate := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		if !p.SettlementDate.Equal(wantDate) {
			t.Errorf("Expected settlement %v, got %v", wantDate, p.SettlementDate)
		}
		if rec.SettlementDateDefaulted {
			t.Error("Expected genuinely parsed date, not defaulted")
		}
		if p.FinancialYear != "2023-24" {
			t.Errorf("Expected financial year 2023-24, got %q", p.FinancialYear)
		}
	})

	t.Run("derives ex gst gross when export column is zero", func(t *testing.T) {
		row := baseRow()
		row[ColGrossCommExGST] = "0"
		row[ColSoldPrice] = "$500,000"
		row[ColSoldCommission] = "2.2"

		rec := NormalizeRow(row, testSettings(), dateutil.Australia, testNow)

		wantEx := (500000 * 2.2 / 100) / 1.1
		if !almostEqual(rec.Property.GrossCommissionExGST, wantEx) {
			t.Errorf("Expected derived ex GST %f, got %f", wantEx, rec.Property.GrossCommissionExGST)
		}
		if !almostEqual(rec.Property.GrossCommissionIncGST, wantEx*1.1) {
			t.Errorf("Expected derived inc GST %f, got %f", wantEx*1.1, rec.Property.GrossCommissionIncGST)
		}
	})

	t.Run("falls back to 2.5 percent commission when column blank", func(t *testing.T) {
		row := baseRow()
		row[ColSoldCommission] = ""

		rec := NormalizeRow(row, testSettings(), dateutil.Australia, testNow)

		if !almostEqual(rec.Property.CommissionPercentage, 2.5) {
			t.Errorf("Expected fallback 2.5, got %f", rec.Property.CommissionPercentage)
		}
	})

	t.Run("unknown vocabulary defaults to settled and house", func(t *testing.T) {
		row := baseRow()
		row[ColCurrentStatus] = "weird"
		row[ColPropertyType] = "castle"

		rec := NormalizeRow(row, testSettings(), dateutil.Australia, testNow)

		if rec.Property.Status != model.StatusSettled {
			t.Errorf("Expected settled default, got %q", rec.Property.Status)
		}
		if rec.Property.PropertyType != model.TypeHouse {
			t.Errorf("Expected house default, got %q", rec.Property.PropertyType)
		}
	})

	t.Run("slash in address overrides type to apartment", func(t *testing.T) {
		row := baseRow()
		row[ColListing] = "3/15 Beach Road, Seaside"
		row[ColPropertyType] = "House"

		rec := NormalizeRow(row, testSettings(), dateutil.Australia, testNow)

		if rec.Property.PropertyType != model.TypeApartment {
			t.Errorf("Expected apartment override, got %q", rec.Property.PropertyType)
		}
	})

	t.Run("usa region parses the same string month first", func(t *testing.T) {
		settings := testSettings()
		settings.Region = "usa"

		rec := NormalizeRow(baseRow(), settings, dateutil.Australia, testNow)

		wantDate := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
		if !rec.Property.SettlementDate.Equal(wantDate) {
			t.Errorf("Expected %v under usa region, got %v", wantDate, rec.Property.SettlementDate)
		}
	})

	t.Run("unparseable date defaults to today and is tagged", func(t *testing.T) {
		row := baseRow()
		row[ColUnconditionalDate] = "soonish"

		rec := NormalizeRow(row, testSettings(), dateutil.Australia, testNow)

		if !rec.SettlementDateDefaulted {
			t.Error("Expected defaulted settlement date to be tagged")
		}
		want := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)
		if !rec.Property.SettlementDate.Equal(want) {
			t.Errorf("Expected today fallback %v, got %v", want, rec.Property.SettlementDate)
		}
		if rec.RawSettlementDate != "soonish" {
			t.Errorf("Expected original text preserved, got %q", rec.RawSettlementDate)
		}
	})

	t.Run("levies derived from settings percentages of ex gst gross", func(t *testing.T) {
		rec := NormalizeRow(baseRow(), testSettings(), dateutil.Australia, testNow)

		if !almostEqual(rec.Property.MarketingLevy, 10000*0.01) {
			t.Errorf("Expected marketing levy 100, got %f", rec.Property.MarketingLevy)
		}
		if !almostEqual(rec.Property.FranchiseFee, 10000*0.06) {
			t.Errorf("Expected franchise fee 600, got %f", rec.Property.FranchiseFee)
		}
	})

	t.Run("financial year follows the configured import convention", func(t *testing.T) {
		row := baseRow()
		row[ColUnconditionalDate] = "05/03/2024"

		auRec := NormalizeRow(row, testSettings(), dateutil.Australia, testNow)
		usRec := NormalizeRow(row, testSettings(), dateutil.USA, testNow)

		if auRec.Property.FinancialYear != "2023-24" {
			t.Errorf("Expected AU convention 2023-24, got %q", auRec.Property.FinancialYear)
		}
		if usRec.Property.FinancialYear != "2023-24" {
			t.Errorf("Expected US convention 2023-24 for March, got %q", usRec.Property.FinancialYear)
		}
	})
}
