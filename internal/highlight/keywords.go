package highlight

// Severity classifies a highlighted legal keyword by risk level.
type Severity string

const (
	// SeverityCritical marks clauses that commonly carry direct financial or
	// legal exposure: penalties, indemnification, termination and the like.
	SeverityCritical Severity = "critical"

	// SeverityModerate marks clauses worth a careful read but without
	// immediate exposure: governing law, notice periods, confidentiality.
	SeverityModerate Severity = "moderate"
)

// String returns the severity name as used in CSS class suffixes.
func (s Severity) String() string { return string(s) }

// CriticalPhrases and ModeratePhrases are the fixed, disjoint keyword sets
// applied to every rendered summary. Matching is case-insensitive and
// whole-word; multi-word phrases match as literal sequences.
var (
	CriticalPhrases = []string{
		"breach of contract",
		"liquidated damages",
		"indemnification",
		"indemnify",
		"penalty",
		"penalties",
		"termination",
		"terminate",
		"liability",
		"forfeiture",
		"red flag",
		"red flags",
	}

	ModeratePhrases = []string{
		"governing law",
		"notice period",
		"intellectual property",
		"force majeure",
		"non-compete",
		"arbitration",
		"jurisdiction",
		"confidentiality",
		"severability",
		"compliance",
	}
)
