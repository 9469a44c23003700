package verification

// Verdict is the closed-set classification of a batch scan. No other values
// are permitted.
type Verdict string

const (
	VerdictValid       Verdict = "VALID"
	VerdictExpired     Verdict = "EXPIRED"
	VerdictRecalled    Verdict = "RECALLED"
	VerdictSubstandard Verdict = "SUBSTANDARD"
	VerdictFake        Verdict = "FAKE"
)

// DetailFake is the detail text for codes matching no registry record.
const DetailFake = "Batch not found in manufacturer database."

// DetailValid is the detail text for a batch passing every rule.
const DetailValid = "Batch is authentic and safe."
