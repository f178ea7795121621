package simulation

// Report layout
const (
	FmtDayHeader  = "-------- day %d --------\n"
	ColumnsHeader = "name, sellIn, quality"
)

// Summary layout
const (
	SummaryHeaderCategory = "Category"
	SummaryHeaderItems    = "Items"
	SummaryHeaderExpired  = "Expired"
	SummaryHeaderQuality  = "Avg Quality"
	SummaryTotalLabel     = "Total"
)

// Error messages
const (
	ErrMsgWriteReportFailed = "failed to write report: %w"
	ErrFmtDayCheckFailed    = "day %d: %w"
	ErrMsgNegativeDays      = "days must not be negative"
)

// Log messages
const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationFinished = "Simulation finished"
	LogMsgDayCompleted       = "Simulated day"
)
