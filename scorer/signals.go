package scorer

import (
	"fmt"
	"regexp"
	"strings"
)

// minTextLength below which an extraction is considered likely truncated.
const minTextLength = 200

// maxDistinctDates above which the document's dates are considered inconsistent.
const maxDistinctDates = 3

// elementCheck is one required-element coverage check. Keyword sets are
// bilingual (French/English) because certificates come in both. Matching a
// keyword only proves the category is mentioned, not that it is true.
type elementCheck struct {
	category string
	keywords []string
}

var requiredElements = []elementCheck{
	{"institution", []string{
		"université", "universite", "university", "école", "ecole", "institut",
		"faculté", "faculte", "hôpital", "hopital", "hospital", "clinique",
		"clinic", "cabinet médical", "cabinet medical", "centre de santé",
	}},
	{"certificate type", []string{
		"attestation", "certificat", "certificate", "justificatif",
	}},
	{"student identity", []string{
		"étudiant", "etudiant", "student", "élève", "eleve", "stagiaire",
	}},
	{"date", []string{
		"date", "fait le", "délivré le", "delivre le", "issued on",
	}},
	{"signature", []string{
		"signature", "signé", "signe", "signed", "soussigné", "soussigne",
	}},
}

// fraudPattern is a red-flag regular expression. A match is strong evidence
// of tampering or duplication, not just a missing element. Patterns run
// against lowercased text.
type fraudPattern struct {
	description string
	re          *regexp.Regexp
}

var fraudPatterns = []fraudPattern{
	{"duplicated date field", regexp.MustCompile(`(?s)date\s*:.*date\s*:`)},
	{"duplicated signature mention", regexp.MustCompile(`(?s)signature.*signature`)},
	{"document marked as a copy or scan", regexp.MustCompile(`(copie|photocopie|duplicata|scanned copy|\bcopy\b|\bscan\b)`)},
	{"document mentions being modified", regexp.MustCompile(`(modifié|modifie\b|falsifié|falsifie|retouché|retouche\b|\bedited\b|\baltered\b|\bmodified\b)`)},
}

var sealKeywords = []string{"cachet", "tampon", "sceau", "seal", "stamp"}

var datePattern = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`)

// identifierPattern: a 6-10 digit run or a short letter prefix followed by
// digits, the shape of student numbers and dossier references.
var identifierPattern = regexp.MustCompile(`\b(\d{6,10}|[a-z]{1,3}\d{4,8})\b`)

// collectSignals runs all five signal families over the text and appends
// positives and issues onto the assessment.
func collectSignals(rawText string, assessment *Assessment) {
	text := strings.ToLower(rawText)

	// 1. Required-element coverage
	for _, element := range requiredElements {
		if containsAny(text, element.keywords) {
			assessment.addPositive(fmt.Sprintf("%s mention found", element.category))
		} else {
			assessment.addWarning(fmt.Sprintf("no %s mention found", element.category))
		}
	}

	// 2. Fraud-indicator patterns
	for _, pattern := range fraudPatterns {
		if pattern.re.MatchString(text) {
			assessment.addFraud(pattern.description)
		}
	}

	// 3. Date consistency
	distinctDates := countDistinct(datePattern.FindAllString(text, -1))
	switch {
	case distinctDates == 0:
		assessment.addWarning("no date value found in document")
	case distinctDates <= maxDistinctDates:
		assessment.addPositive(fmt.Sprintf("%d consistent date value(s) found", distinctDates))
	default:
		assessment.addWarning(fmt.Sprintf("%d distinct dates found, likely inconsistent", distinctDates))
	}

	// 4. Seal/stamp mention. Absence is only a warning: plenty of legitimate
	// scans never spell out their seal.
	if containsAny(text, sealKeywords) {
		assessment.addPositive("seal or stamp mention found")
	} else {
		assessment.addWarning("no seal or stamp mention found")
	}

	// 5. Length and identifier sanity
	if len(rawText) < minTextLength {
		assessment.addWarning(fmt.Sprintf("text is only %d characters, extraction may be truncated", len(rawText)))
	}
	if identifierPattern.MatchString(text) {
		assessment.addPositive("identifier-shaped token found")
	}
}

func (a *Assessment) addPositive(message string) {
	a.PositiveSignals = append(a.PositiveSignals, message)
}

func (a *Assessment) addWarning(message string) {
	a.Issues = append(a.Issues, Issue{Severity: SeverityWarning, Message: message})
}

func (a *Assessment) addFraud(message string) {
	a.Issues = append(a.Issues, Issue{Severity: SeverityFraud, Message: message})
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		seen[value] = struct{}{}
	}
	return len(seen)
}
