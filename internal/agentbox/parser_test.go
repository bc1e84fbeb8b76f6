package agentbox

import (
	"testing"
)

func TestParseCSV(t *testing.T) {
	t.Run("maps values to header column names", func(t *testing.T) {
		csvText := "Listing,Sold Price ($)\n12 Smith St,500000\n"

		rows := ParseCSV(csvText)

		if len(rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(rows))
		}
		if rows[0][ColListing] != "12 Smith St" {
			t.Errorf("Expected listing '12 Smith St', got %q", rows[0][ColListing])
		}
		if rows[0][ColSoldPrice] != "500000" {
			t.Errorf("Expected price '500000', got %q", rows[0][ColSoldPrice])
		}
	})

	t.Run("strips byte order mark from header", func(t *testing.T) {
		csvText := "\ufeffListing,Sold Price ($)\n12 Smith St,500000\n"

		rows := ParseCSV(csvText)

		if len(rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(rows))
		}
		if rows[0][ColListing] != "12 Smith St" {
			t.Errorf("Expected BOM-stripped header to map listing, got row %v", rows[0])
		}
	})

	t.Run("handles quoted values containing commas", func(t *testing.T) {
		csvText := "Listing,Sold Price ($)\n\"12 Smith Street, Suburb\",\"1,250,000\"\n"

		rows := ParseCSV(csvText)

		if len(rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(rows))
		}
		if rows[0][ColListing] != "12 Smith Street, Suburb" {
			t.Errorf("Expected quoted listing preserved, got %q", rows[0][ColListing])
		}
		if rows[0][ColSoldPrice] != "1,250,000" {
			t.Errorf("Expected quoted price preserved, got %q", rows[0][ColSoldPrice])
		}
	})

	t.Run("drops rows with mismatched column count without aborting", func(t *testing.T) {
		csvText := "Listing,Sold Price ($),Agent\n12 Smith St,500000\n14 Jones Rd,600000,Jane\n"

		rows := ParseCSV(csvText)

		if len(rows) != 1 {
			t.Fatalf("Expected 1 surviving row, got %d", len(rows))
		}
		if rows[0][ColListing] != "14 Jones Rd" {
			t.Errorf("Expected the valid row to survive, got %v", rows[0])
		}
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		if rows := ParseCSV(""); rows != nil {
			t.Errorf("Expected nil rows, got %v", rows)
		}
	})

	t.Run("header only yields zero rows", func(t *testing.T) {
		if rows := ParseCSV("Listing,Sold Price ($)\n"); len(rows) != 0 {
			t.Errorf("Expected 0 rows, got %d", len(rows))
		}
	})
}

func TestFilterRows(t *testing.T) {
	t.Run("drops summary blank and zero price rows", func(t *testing.T) {
		rows := []Row{
			{ColListing: "12 Smith St", ColSoldPrice: "500000"},
			{ColListing: "Total", ColSoldPrice: "5000000"},
			{ColListing: "Average Sale", ColSoldPrice: "700000"},
			{ColListing: "", ColSoldPrice: "400000"},
			{ColListing: "14 Jones Rd", ColSoldPrice: "0"},
			{ColListing: "16 Brown Ave", ColSoldPrice: ""},
		}

		valid, dropped := FilterRows(rows)

		if len(valid) != 1 {
			t.Fatalf("Expected 1 valid row, got %d", len(valid))
		}
		if dropped != 5 {
			t.Errorf("Expected 5 dropped rows, got %d", dropped)
		}
		if valid[0][ColListing] != "12 Smith St" {
			t.Errorf("Expected '12 Smith St' to survive, got %q", valid[0][ColListing])
		}
	})

	t.Run("summary detection is case insensitive", func(t *testing.T) {
		rows := []Row{
			{ColListing: "TOTAL", ColSoldPrice: "100"},
			{ColListing: "average", ColSoldPrice: "100"},
		}

		valid, _ := FilterRows(rows)

		if len(valid) != 0 {
			t.Errorf("Expected all summary rows dropped, got %d", len(valid))
		}
	})
}
