package mappers

// Upstream field names. Calls and web forms share one table but fill
// different columns.
const (
	fieldCallerID       = "Caller ID"
	fieldCallTranscript = "Call Recording Transcript"
	fieldCallTime       = "Call Time"
	fieldCallSource     = "Call - Lead Source"
	fieldCallDuration   = "Call Duration"

	fieldFormSource  = "Lead Source"
	fieldInquiryDate = "Inquiry Date"

	fieldClientName   = "Client Name"
	fieldPhone        = "Phone Number"
	fieldEmail        = "Email"
	fieldSubject      = "Inquiry Subject/Reason"
	fieldAddressTypo  = "Adress"
	fieldAddress      = "Service Address"
	fieldPropertyType = "Property Type"
	fieldWindowCount  = "Estimated Window Count"
	fieldStories      = "Stories"
	fieldQuote        = "Quote Amount"
	fieldInvoice      = "Final Invoice Amount"
	fieldFollowUp     = "Next Follow-up Date"
	fieldJobDate      = "Scheduled Cleaning Date"
	fieldDetails      = "Property Details"
	fieldStatus       = "Lead Status"
)

// Ordered fallbacks: the first non-empty field wins.
var (
	callIndicators = []string{fieldCallerID, fieldCallTranscript, fieldCallTime}

	nameFields    = []string{fieldClientName, fieldCallerID}
	phoneFields   = []string{fieldPhone, fieldCallerID}
	subjectFields = []string{fieldSubject, fieldCallTranscript}
	// the base has both spellings in use
	addressFields = []string{fieldAddressTypo, fieldAddress}
)

const (
	unknownName   = "Unknown"
	defaultStatus = "New"

	// secondPropertyMarker appears in the lead source of leads from the
	// second landing page site.
	secondPropertyMarker = "pearlview"
)
