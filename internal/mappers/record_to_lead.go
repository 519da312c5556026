package mappers

import (
	"math"
	"strings"

	"lead-sync/internal/domain"
)

// RawRecord is one upstream row: an identifier plus loosely typed cells.
type RawRecord interface {
	RecordID() string
	Text(field string) string
	Number(field string) float64
}

// ToLeads maps every record independently, preserving order.
func ToLeads[R RawRecord](records []R) []domain.Lead {
	out := make([]domain.Lead, 0, len(records))
	for _, r := range records {
		out = append(out, ToLead(r))
	}
	return out
}

// ToLead never fails: missing or malformed cells fall back to defaults.
func ToLead(r RawRecord) domain.Lead {
	kind := Classify(r)

	srcField, dateField := fieldFormSource, fieldInquiryDate
	if kind == domain.KindCall {
		srcField, dateField = fieldCallSource, fieldCallTime
	}

	source := domain.NewSource(kind, strings.Contains(r.Text(srcField), secondPropertyMarker))
	status := domain.ParseStatus(firstNonEmpty(r.Text(fieldStatus), defaultStatus))

	return domain.Lead{
		ID:      r.RecordID(),
		Kind:    kind,
		Name:    firstNonEmpty(pick(r, nameFields), unknownName),
		Source:  source,
		Phone:   pick(r, phoneFields),
		Email:   pick(r, []string{fieldEmail}),
		Subject: pick(r, subjectFields),
		Date:    pick(r, []string{dateField}),
		Address: pick(r, addressFields),
		JobType: pick(r, []string{fieldPropertyType}),

		Windows: count(r.Number(fieldWindowCount)),
		Stories: count(r.Number(fieldStories)),
		Value:   amount(r.Number(fieldQuote)),
		Invoice: amount(r.Number(fieldInvoice)),

		Duration:   pick(r, []string{fieldCallDuration}),
		Transcript: pick(r, []string{fieldCallTranscript}),
		FollowUp:   pick(r, []string{fieldFollowUp}),
		JobDate:    pick(r, []string{fieldJobDate}),
		Details:    pick(r, []string{fieldDetails}),

		Status:   status,
		Progress: status.Progress(),
		Starred:  false,
		Notes:    "",
		HasCall:  kind == domain.KindCall,
		LP:       source.LandingPage(),
	}
}

// Classify decides the record shape before any other field is read.
func Classify(r RawRecord) domain.Kind {
	for _, f := range callIndicators {
		if present(r.Text(f)) {
			return domain.KindCall
		}
	}
	return domain.KindForm
}

func pick(r RawRecord, fields []string) string {
	for _, f := range fields {
		if v := r.Text(f); present(v) {
			return v
		}
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if present(v) {
			return v
		}
	}
	return ""
}

// present treats whitespace as a value; only the empty string is absent.
func present(v string) bool {
	return v != ""
}

// count truncates toward zero and clamps to [0, MaxInt32].
func count(n float64) int {
	if !(n > 0) {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func amount(n float64) float64 {
	if !(n > 0) || math.IsInf(n, 1) {
		return 0
	}
	return n
}
