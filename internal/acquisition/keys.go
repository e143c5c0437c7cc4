package acquisition

import (
	"strings"

	"legalwatch/internal/domain"
)

// Cache keys are prefixed with the operation so payload shapes sharing a
// domain table never collide.

func SearchKey(kind domain.MonitoringKind, value string) string {
	return string(domain.OpProcessSearch) + ":" + domain.LookupKey(kind, value)
}

func DetailKey(caseNumber string, includeAttachments bool) string {
	key := string(domain.OpProcessDetail) + ":" + domain.LookupKey(domain.KindCaseNumber, caseNumber)
	if includeAttachments {
		key += ":attachments"
	}
	return key
}

func MovementsKey(caseNumber string) string {
	return string(domain.OpProcessMovements) + ":" + domain.LookupKey(domain.KindCaseNumber, caseNumber)
}

func RegistrationKey(taxID string) string {
	return string(domain.OpRegistration) + ":" + domain.Digits(taxID)
}

func CriminalRecordKey(taxID string) string {
	return string(domain.OpCriminalRecord) + ":" + domain.Digits(taxID)
}

func GazetteKey(query string) string {
	return string(domain.OpGazetteSearch) + ":" + strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// ProcessResource identifies a case for access grants, independent of the
// detail variant fetched.
func ProcessResource(caseNumber string) string {
	return "process:" + domain.Digits(caseNumber)
}

func CriminalRecordResource(taxID string) string {
	return "criminal_record:" + domain.Digits(taxID)
}
