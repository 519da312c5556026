package mappers

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-sync/internal/domain"
)

// fakeRecord mimics an upstream row with string/number cells.
type fakeRecord struct {
	id     string
	fields map[string]any
}

func (f fakeRecord) RecordID() string { return f.id }

func (f fakeRecord) Text(field string) string {
	switch v := f.fields[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (f fakeRecord) Number(field string) float64 {
	switch v := f.fields[field].(type) {
	case float64:
		return v
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func rec(id string, fields map[string]any) fakeRecord {
	return fakeRecord{id: id, fields: fields}
}

func TestToLeadCallRecord(t *testing.T) {
	lead := ToLead(rec("rec1", map[string]any{
		"Caller ID":   "555-1234",
		"Call Time":   "2024-01-01",
		"Lead Status": "Quoted",
	}))

	assert.Equal(t, "rec1", lead.ID)
	assert.Equal(t, domain.KindCall, lead.Kind)
	assert.Equal(t, "555-1234", lead.Name)
	assert.Equal(t, "555-1234", lead.Phone)
	assert.Equal(t, "2024-01-01", lead.Date)
	assert.Equal(t, domain.StatusQuoted, lead.Status)
	assert.Equal(t, 55, lead.Progress)
	assert.Equal(t, domain.SourceCall1, lead.Source)
	assert.Equal(t, domain.LandingPage1, lead.LP)
	assert.True(t, lead.HasCall)
	assert.False(t, lead.Starred)
	assert.Empty(t, lead.Notes)
}

func TestToLeadFormRecordSecondProperty(t *testing.T) {
	lead := ToLead(rec("rec2", map[string]any{
		"Lead Source": "https://www.pearlviewwindows.com/quote",
		"Lead Status": "Bogus",
	}))

	assert.Equal(t, domain.KindForm, lead.Kind)
	assert.Equal(t, domain.SourceForm2, lead.Source)
	assert.Equal(t, domain.LandingPage2, lead.LP)
	assert.Equal(t, domain.StatusNew, lead.Status)
	assert.Equal(t, 10, lead.Progress)
	assert.False(t, lead.HasCall)
	assert.Equal(t, "Unknown", lead.Name)
}

func TestToLeadEmptyRecord(t *testing.T) {
	lead := ToLead(rec("rec3", nil))

	assert.Equal(t, domain.Lead{
		ID:       "rec3",
		Kind:     domain.KindForm,
		Name:     "Unknown",
		Source:   domain.SourceForm1,
		Status:   domain.StatusNew,
		Progress: 10,
		LP:       domain.LandingPage1,
	}, lead)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		fields   map[string]any
		expected domain.Kind
	}{
		{"caller id", map[string]any{"Caller ID": "555"}, domain.KindCall},
		{"transcript", map[string]any{"Call Recording Transcript": "hello"}, domain.KindCall},
		{"call time", map[string]any{"Call Time": "2024-01-01"}, domain.KindCall},
		{"call time wins over form fields", map[string]any{
			"Call Time":    "2024-01-01",
			"Client Name":  "Jane",
			"Lead Source":  "form",
			"Inquiry Date": "2024-02-02",
		}, domain.KindCall},
		{"empty call fields", map[string]any{"Caller ID": "", "Call Time": ""}, domain.KindForm},
		{"whitespace call time counts", map[string]any{"Caller ID": "", "Call Time": "  "}, domain.KindCall},
		{"form only", map[string]any{"Client Name": "Jane"}, domain.KindForm},
		{"nothing", nil, domain.KindForm},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(rec("r", tc.fields)))
		})
	}
}

func TestSourceTags(t *testing.T) {
	testCases := []struct {
		name   string
		fields map[string]any
		source domain.Source
		lp     domain.LandingPage
	}{
		{"call second property", map[string]any{"Caller ID": "1", "Call - Lead Source": "pearlview LP"}, domain.SourceCall2, domain.LandingPage2},
		{"call first property", map[string]any{"Caller ID": "1", "Call - Lead Source": "crystal LP"}, domain.SourceCall1, domain.LandingPage1},
		// calls ignore the form source column
		{"call reads call source only", map[string]any{"Caller ID": "1", "Lead Source": "pearlview"}, domain.SourceCall1, domain.LandingPage1},
		{"form reads form source only", map[string]any{"Call - Lead Source": "pearlview"}, domain.SourceForm1, domain.LandingPage1},
		{"form empty source", map[string]any{"Lead Source": ""}, domain.SourceForm1, domain.LandingPage1},
		{"match is case sensitive", map[string]any{"Lead Source": "PearlView"}, domain.SourceForm1, domain.LandingPage1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lead := ToLead(rec("r", tc.fields))
			assert.Equal(t, tc.source, lead.Source)
			assert.Equal(t, tc.lp, lead.LP)
		})
	}
}

func TestCoalescing(t *testing.T) {
	lead := ToLead(rec("r", map[string]any{
		"Client Name":               "Jane Doe",
		"Caller ID":                 "555-0000",
		"Phone Number":              "555-9999",
		"Inquiry Subject/Reason":    "Quote please",
		"Call Recording Transcript": "transcript text",
		"Adress":                    "",
		"Service Address":           "1 Main St",
		"Call Time":                 "2024-03-03T10:00:00.000Z",
		"Inquiry Date":              "2024-01-01",
	}))

	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "555-9999", lead.Phone)
	assert.Equal(t, "Quote please", lead.Subject)
	assert.Equal(t, "transcript text", lead.Transcript)
	assert.Equal(t, "1 Main St", lead.Address)
	assert.Equal(t, "2024-03-03T10:00:00.000Z", lead.Date)
}

func TestCoalescingFallbacks(t *testing.T) {
	lead := ToLead(rec("r", map[string]any{
		"Call Recording Transcript": "caller asked for a quote",
		"Adress":                    "2 Side Rd",
		"Service Address":           "1 Main St",
		"Inquiry Date":              "2024-01-01",
	}))

	assert.Equal(t, domain.KindCall, lead.Kind)
	assert.Equal(t, "Unknown", lead.Name)
	assert.Equal(t, "", lead.Phone)
	assert.Equal(t, "caller asked for a quote", lead.Subject)
	assert.Equal(t, "2 Side Rd", lead.Address)
	// calls never fall back to the inquiry date
	assert.Equal(t, "", lead.Date)
}

func TestWhitespaceCellsArePresent(t *testing.T) {
	lead := ToLead(rec("r", map[string]any{
		"Caller ID":   " ",
		"Client Name": " ",
		"Adress":      " ",
	}))

	assert.Equal(t, domain.KindCall, lead.Kind)
	assert.True(t, lead.HasCall)
	assert.Equal(t, domain.SourceCall1, lead.Source)
	assert.Equal(t, " ", lead.Name)
	assert.Equal(t, " ", lead.Phone)
	assert.Equal(t, " ", lead.Address)
}

func TestFormDate(t *testing.T) {
	lead := ToLead(rec("r", map[string]any{"Inquiry Date": "2024-05-06"}))
	assert.Equal(t, "2024-05-06", lead.Date)
}

func TestSingleFieldAttributes(t *testing.T) {
	lead := ToLead(rec("r", map[string]any{
		"Email":                   "jane@example.com",
		"Property Type":           "Residential",
		"Estimated Window Count":  float64(24),
		"Stories":                 "2",
		"Quote Amount":            float64(349.5),
		"Final Invoice Amount":    "400",
		"Call Duration":           "3:12",
		"Next Follow-up Date":     "2024-06-01",
		"Scheduled Cleaning Date": "2024-06-15",
		"Property Details":        "skylights",
	}))

	assert.Equal(t, "jane@example.com", lead.Email)
	assert.Equal(t, "Residential", lead.JobType)
	assert.Equal(t, 24, lead.Windows)
	assert.Equal(t, 2, lead.Stories)
	assert.Equal(t, 349.5, lead.Value)
	assert.Equal(t, 400.0, lead.Invoice)
	assert.Equal(t, "3:12", lead.Duration)
	assert.Equal(t, "2024-06-01", lead.FollowUp)
	assert.Equal(t, "2024-06-15", lead.JobDate)
	assert.Equal(t, "skylights", lead.Details)
}

func TestNumericDefaults(t *testing.T) {
	lead := ToLead(rec("r", map[string]any{
		"Estimated Window Count": float64(-3),
		"Stories":                "two",
		"Quote Amount":           float64(-10),
		"Final Invoice Amount":   "n/a",
	}))

	assert.Zero(t, lead.Windows)
	assert.Zero(t, lead.Stories)
	assert.Zero(t, lead.Value)
	assert.Zero(t, lead.Invoice)

	assert.Equal(t, 7, count(7.9))
}

func TestStatusAndProgress(t *testing.T) {
	testCases := []struct {
		raw      any
		status   domain.Status
		progress int
	}{
		{nil, domain.StatusNew, 10},
		{"New", domain.StatusNew, 10},
		{"Contacted", domain.StatusContacted, 30},
		{"Quoted", domain.StatusQuoted, 55},
		{"Scheduled", domain.StatusScheduled, 75},
		{"Completed", domain.StatusCompleted, 100},
		{"Lost", domain.StatusLost, 100},
		{"completed", domain.StatusNew, 10},
		{float64(3), domain.StatusNew, 10},
	}

	for _, tc := range testCases {
		fields := map[string]any{}
		if tc.raw != nil {
			fields["Lead Status"] = tc.raw
		}
		lead := ToLead(rec("r", fields))
		assert.Equal(t, tc.status, lead.Status, "raw status %v", tc.raw)
		assert.Equal(t, tc.progress, lead.Progress, "raw status %v", tc.raw)
		assert.Equal(t, lead.Status.Progress(), lead.Progress)
	}
}

func TestToLeadsPreservesOrder(t *testing.T) {
	records := []fakeRecord{
		rec("a", map[string]any{"Caller ID": "1"}),
		rec("b", nil),
		rec("c", map[string]any{"Lead Status": "Lost"}),
	}

	leads := ToLeads(records)
	require.Len(t, leads, 3)
	assert.Equal(t, "a", leads[0].ID)
	assert.Equal(t, "b", leads[1].ID)
	assert.Equal(t, "c", leads[2].ID)
	assert.Equal(t, domain.StatusLost, leads[2].Status)

	assert.Empty(t, ToLeads([]fakeRecord{}))
}
