package agentbox

// Column names of the AgentBox commission export. The mapping from external
// column to internal field lives entirely in this table and NormalizeRow;
// nothing else reads raw column names.
const (
	ColListing             = "Listing"
	ColSoldPrice           = "Sold Price ($)"
	ColSoldCommission      = "Sold Comm (%)"
	ColGrossCommExGST      = "Gross Comm ($) (exGST)"
	ColGrossCommPerAgent   = "Gross Comm / Agent ($) (exGST)"
	ColSalePerAgent        = "Sale / Agent"
	ColUnconditionalDate   = "Unconditional Date"
	ColCurrentStatus       = "Current Status"
	ColNetToAgent          = "Net to Agent ($)"
	ColAgent               = "Agent"
	ColPropertyType        = "Property Type"
)

// Columns lists every export column the importer understands, paired with
// the internal field it feeds. Informational: consumed by documentation
// endpoints and kept exhaustive so new columns are added here first.
var Columns = []struct {
	External string
	Internal string
}{
	{ColListing, "address"},
	{ColSoldPrice, "sale_price"},
	{ColSoldCommission, "commission_percentage"},
	{ColGrossCommExGST, "gross_commission_ex_gst"},
	{ColGrossCommPerAgent, "gross_commission_per_agent"},
	{ColSalePerAgent, "sale_price_per_agent"},
	{ColUnconditionalDate, "settlement_date"},
	{ColCurrentStatus, "status"},
	{ColNetToAgent, "net_commission"},
	{ColAgent, "client_name"},
	{ColPropertyType, "property_type"},
}
