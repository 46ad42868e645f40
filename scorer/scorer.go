// Package scorer classifies extracted certificate text into a legitimacy
// status with supporting evidence. It is pure domain logic: no I/O, no
// side effects, no hidden state. Every signal is a human-readable string so
// a reviewer can see exactly why a score was assigned.
package scorer

const (
	StatusLegitimate  = "legitimate"
	StatusNeedsReview = "needs_review"
	StatusSuspicious  = "suspicious"
	StatusFraudulent  = "fraudulent"
	StatusIncomplete  = "incomplete"
)

const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

const (
	SeverityWarning = "warning"
	SeverityFraud   = "fraud"
)

// Issue is one problem found in the document text. Fraud severity is strong
// evidence of tampering; warning severity only marks a missing expected element.
type Issue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Assessment is the scorer's verdict on one document.
type Assessment struct {
	Status          string   `json:"status"`
	Confidence      string   `json:"confidence"`
	PositiveSignals []string `json:"positive_signals"`
	Issues          []Issue  `json:"issues"`
	TextLength      int      `json:"text_length"`
}

// FraudCount returns the number of fraud-severity issues.
func (a Assessment) FraudCount() int {
	return a.countSeverity(SeverityFraud)
}

// WarningCount returns the number of warning-severity issues.
func (a Assessment) WarningCount() int {
	return a.countSeverity(SeverityWarning)
}

func (a Assessment) countSeverity(severity string) int {
	count := 0
	for _, issue := range a.Issues {
		if issue.Severity == severity {
			count++
		}
	}
	return count
}

// classificationRule maps evidence counters to a verdict. Rules are evaluated
// in order and the first match wins, so fraud severity always dominates
// incompleteness.
type classificationRule struct {
	name       string
	applies    func(fraud, warnings, positives int) bool
	status     string
	confidence string
}

var classificationRules = []classificationRule{
	{
		name:       "repeated fraud indicators",
		applies:    func(fraud, warnings, positives int) bool { return fraud >= 2 },
		status:     StatusFraudulent,
		confidence: ConfidenceHigh,
	},
	{
		name:       "fraud indicator or heavy warning volume",
		applies:    func(fraud, warnings, positives int) bool { return fraud >= 1 || warnings >= 4 },
		status:     StatusSuspicious,
		confidence: ConfidenceMedium,
	},
	{
		name:       "multiple missing elements",
		applies:    func(fraud, warnings, positives int) bool { return warnings >= 2 },
		status:     StatusNeedsReview,
		confidence: ConfidenceMedium,
	},
	{
		name:       "too little supporting evidence",
		applies:    func(fraud, warnings, positives int) bool { return positives < 3 },
		status:     StatusIncomplete,
		confidence: ConfidenceLow,
	},
	{
		name:       "clean document",
		applies:    func(fraud, warnings, positives int) bool { return true },
		status:     StatusLegitimate,
		confidence: ConfidenceHigh,
	},
}

// Score analyzes raw extracted certificate text and returns a classification
// with its evidence. The analysis is case-insensitive and deterministic.
// fileName is accepted for parity with the upload entry point but does not
// influence the verdict; the text is what gets judged.
func Score(rawText, fileName string) Assessment {
	_ = fileName

	assessment := Assessment{
		PositiveSignals: []string{},
		Issues:          []Issue{},
		TextLength:      len(rawText),
	}

	collectSignals(rawText, &assessment)

	fraud := assessment.FraudCount()
	warnings := assessment.WarningCount()
	positives := len(assessment.PositiveSignals)

	for _, rule := range classificationRules {
		if rule.applies(fraud, warnings, positives) {
			assessment.Status = rule.status
			assessment.Confidence = rule.confidence
			break
		}
	}

	return assessment
}
