package scorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanCertificate = `Université de Paris - Attestation de présence médicale.
Je soussigné, Docteur Martin, certifie que l'étudiant Ahmed Benali,
numéro de dossier 20231548, a été examiné dans notre établissement.
Date: 01/02/2024. Le présent document est délivré pour servir et
valoir ce que de droit. Signature du directeur, cachet de l'administration.`

func TestScoreCleanCertificate(t *testing.T) {
	assessment := Score(cleanCertificate, "attestation.pdf")

	assert.Equal(t, StatusLegitimate, assessment.Status)
	assert.Equal(t, ConfidenceHigh, assessment.Confidence)
	assert.GreaterOrEqual(t, len(assessment.PositiveSignals), 5)
	assert.Zero(t, assessment.FraudCount())
	assert.Zero(t, assessment.WarningCount())
	assert.Equal(t, len(cleanCertificate), assessment.TextLength)
}

func TestScoreIsDeterministic(t *testing.T) {
	first := Score(cleanCertificate, "attestation.pdf")
	second := Score(cleanCertificate, "attestation.pdf")

	assert.Equal(t, first, second)
}

func TestFraudDominatesPositives(t *testing.T) {
	// Every required element present, but the text is marked as a modified
	// copy: two fraud indicators must win over any number of positives.
	text := cleanCertificate + " Ce document est une copie modifiée de l'original."

	assessment := Score(text, "attestation.pdf")

	require.GreaterOrEqual(t, assessment.FraudCount(), 2)
	assert.GreaterOrEqual(t, len(assessment.PositiveSignals), 5)
	assert.Equal(t, StatusFraudulent, assessment.Status)
	assert.Equal(t, ConfidenceHigh, assessment.Confidence)
}

func TestDuplicatedSignatureAndCopyMention(t *testing.T) {
	text := `Attestation pour l'étudiant. Signature du médecin.
Copie du document original. Signature du directeur. Date: 05/03/2024.`

	assessment := Score(text, "scan.pdf")

	require.GreaterOrEqual(t, assessment.FraudCount(), 1)
	assert.Contains(t, []string{StatusSuspicious, StatusFraudulent}, assessment.Status)
	assert.NotEqual(t, StatusLegitimate, assessment.Status)
}

func TestEmptyishTextIsSuspicious(t *testing.T) {
	assessment := Score("bonjour", "note.txt")

	// No elements, no date, no seal, truncated length: the warning volume
	// alone pushes this to suspicious.
	assert.GreaterOrEqual(t, assessment.WarningCount(), 4)
	assert.Zero(t, assessment.FraudCount())
	assert.Equal(t, StatusSuspicious, assessment.Status)
	assert.Equal(t, ConfidenceMedium, assessment.Confidence)
}

func TestMissingElementsNeedReview(t *testing.T) {
	// Full-length text with no institution and no seal mention: exactly two
	// warnings, everything else positive.
	text := `Attestation de présence concernant l'étudiant Ahmed Benali,
numéro de dossier 20231548. Le patient a été vu en consultation le matin
et n'a pas pu assister à ses enseignements de la journée.
Date: 01/02/2024. Fait pour servir et valoir ce que de droit.
Signature du praticien.`

	assessment := Score(text, "attestation.pdf")

	assert.Equal(t, 2, assessment.WarningCount())
	assert.Zero(t, assessment.FraudCount())
	assert.Equal(t, StatusNeedsReview, assessment.Status)
	assert.Equal(t, ConfidenceMedium, assessment.Confidence)
}

func TestTooManyDatesIsFlagged(t *testing.T) {
	text := cleanCertificate + " 02/02/2024 03/02/2024 04/02/2024 05/02/2024"

	assessment := Score(text, "attestation.pdf")

	flagged := false
	for _, issue := range assessment.Issues {
		if issue.Severity == SeverityWarning && strings.Contains(issue.Message, "inconsistent") {
			flagged = true
		}
	}
	assert.True(t, flagged, "expected an inconsistent-dates warning, got %v", assessment.Issues)
}

func TestShortTextIsWarned(t *testing.T) {
	assessment := Score("attestation étudiant université signature cachet date: 01/02/2024", "a.pdf")

	warned := false
	for _, issue := range assessment.Issues {
		if strings.Contains(issue.Message, "truncated") {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestClassificationRuleOrder(t *testing.T) {
	cases := []struct {
		name       string
		fraud      int
		warnings   int
		positives  int
		wantStatus string
		wantConf   string
	}{
		{"two fraud hits", 2, 0, 8, StatusFraudulent, ConfidenceHigh},
		{"one fraud hit", 1, 0, 8, StatusSuspicious, ConfidenceMedium},
		{"warning volume", 0, 4, 8, StatusSuspicious, ConfidenceMedium},
		{"some warnings", 0, 2, 8, StatusNeedsReview, ConfidenceMedium},
		{"thin evidence", 0, 1, 2, StatusIncomplete, ConfidenceLow},
		{"clean", 0, 0, 6, StatusLegitimate, ConfidenceHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, rule := range classificationRules {
				if rule.applies(tc.fraud, tc.warnings, tc.positives) {
					assert.Equal(t, tc.wantStatus, rule.status)
					assert.Equal(t, tc.wantConf, rule.confidence)
					return
				}
			}
			t.Fatal("no rule matched")
		})
	}
}
