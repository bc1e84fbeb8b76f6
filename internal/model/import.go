package model

// ImportRunState enumerates the states of one CSV import run. The UI renders
// progress from the state plus a human-readable message; the core never
// depends on any UI type.
type ImportRunState string

// Import run states, in order of progression.
const (
	ImportIdle             ImportRunState = "idle"
	ImportParsing          ImportRunState = "parsing"
	ImportValidating       ImportRunState = "validating"
	ImportChecking         ImportRunState = "checking_duplicates"
	ImportAwaitingDecision ImportRunState = "awaiting_user_decision"
	ImportSaving           ImportRunState = "saving"
	ImportSuccess          ImportRunState = "success"
	ImportError            ImportRunState = "error"
)

// Import commit modes. Exactly one is chosen per run.
const (
	CommitSkipDuplicates = "skip_duplicates"
	CommitReplaceAll     = "replace_all"
	CommitCancel         = "cancel"
)

// ImportRecord is a normalized CSV row ready to become a Property. Instances
// live only for the duration of one import run: they are persisted, used to
// replace an existing record, or discarded.
//
// SettlementDateDefaulted distinguishes a genuinely parsed settlement date
// from the today-fallback substituted when the source text was unparseable,
// so callers can tell best-effort data from real data.
type ImportRecord struct {
	Property                Property `json:"property"`
	RawSettlementDate       string   `json:"raw_settlement_date,omitempty"`
	SettlementDateDefaulted bool     `json:"settlement_date_defaulted,omitempty"`
}

// DuplicateMatch pairs an incoming import record with the existing persisted
// record it duplicates. Records match when the address (case/whitespace
// insensitive), settlement date, and sale price (within $1) all agree.
type DuplicateMatch struct {
	Existing Property     `json:"existing"`
	Incoming ImportRecord `json:"incoming"`
}

// ImportPreview is the outcome of the parse/normalize/duplicate-check phase
// of an import run. When duplicates were found the run is parked in
// awaiting_user_decision until the operator picks a commit mode; the preview
// payload is handed back verbatim on commit, so the reconciler holds no
// state between the two calls.
type ImportPreview struct {
	State       ImportRunState   `json:"state"`
	Message     string           `json:"message"`
	Duplicates  []DuplicateMatch `json:"duplicates"`
	NewRecords  []ImportRecord   `json:"new_records"`
	AllRecords  []ImportRecord   `json:"all_records"`
	SkippedRows int              `json:"skipped_rows"`
}

// ImportResult summarizes a committed import run.
type ImportResult struct {
	State   ImportRunState `json:"state"`
	Message string         `json:"message"`
	Created int            `json:"created"`
	Deleted int            `json:"deleted"`
	Skipped int            `json:"skipped"`
}
