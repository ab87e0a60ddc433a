package constants

const (
	// TimestampLayout is the record timestamp layout: MM/DD/YY HH:MM, 24h clock.
	TimestampLayout = "01/02/06 15:04"

	// DayLayout renders a calendar day in reports.
	DayLayout = "2006-01-02"

	// Reference run parameters
	DefaultRecordCount = 1_000_000
	DefaultSeed        = int64(42)

	// InferenceSampleSize bounds how many values the inferring strategy
	// inspects before settling on a layout.
	InferenceSampleSize = 64

	DefaultPreviewRows = 5
	DefaultTrials      = 10
)

// Strategy names
const (
	StrategyGeneric  = "generic"
	StrategyExplicit = "explicit"
	StrategyInferred = "inferred"
)
