package domain

import "fmt"

// Kind is the record shape a lead originated from.
type Kind uint8

const (
	KindForm Kind = iota
	KindCall
)

func (k Kind) String() string {
	if k == KindCall {
		return "call"
	}
	return "form"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "call":
		*k = KindCall
	case "form":
		*k = KindForm
	default:
		return fmt.Errorf("domain: unknown kind %q", b)
	}
	return nil
}

// Source identifies the channel and landing page property of a lead.
type Source uint8

const (
	SourceForm1 Source = iota
	SourceForm2
	SourceCall1
	SourceCall2
)

var sourceNames = [...]string{
	SourceForm1: "form1",
	SourceForm2: "form2",
	SourceCall1: "call1",
	SourceCall2: "call2",
}

// NewSource picks the tag for a kind and whether the lead came from the
// second landing page property.
func NewSource(k Kind, secondProperty bool) Source {
	switch {
	case k == KindCall && secondProperty:
		return SourceCall2
	case k == KindCall:
		return SourceCall1
	case secondProperty:
		return SourceForm2
	default:
		return SourceForm1
	}
}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return sourceNames[SourceForm1]
}

// LandingPage is LP2 when the tag ends in "2".
func (s Source) LandingPage() LandingPage {
	name := s.String()
	if name[len(name)-1] == '2' {
		return LandingPage2
	}
	return LandingPage1
}

func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Source) UnmarshalText(b []byte) error {
	for i, name := range sourceNames {
		if name == string(b) {
			*s = Source(i)
			return nil
		}
	}
	return fmt.Errorf("domain: unknown source %q", b)
}

type LandingPage uint8

const (
	LandingPage1 LandingPage = iota
	LandingPage2
)

func (lp LandingPage) String() string {
	if lp == LandingPage2 {
		return "LP2"
	}
	return "LP1"
}

func (lp LandingPage) MarshalText() ([]byte, error) { return []byte(lp.String()), nil }

func (lp *LandingPage) UnmarshalText(b []byte) error {
	switch string(b) {
	case "LP1":
		*lp = LandingPage1
	case "LP2":
		*lp = LandingPage2
	default:
		return fmt.Errorf("domain: unknown landing page %q", b)
	}
	return nil
}

// Status is the pipeline stage of a lead. The zero value is StatusNew.
type Status uint8

const (
	StatusNew Status = iota
	StatusContacted
	StatusQuoted
	StatusScheduled
	StatusCompleted
	StatusLost
)

// Statuses lists every status in pipeline order.
var Statuses = []Status{
	StatusNew,
	StatusContacted,
	StatusQuoted,
	StatusScheduled,
	StatusCompleted,
	StatusLost,
}

// ParseStatus maps the upstream single-select label. Anything else,
// including case variants, resolves to StatusNew.
func ParseStatus(label string) Status {
	switch label {
	case "Contacted":
		return StatusContacted
	case "Quoted":
		return StatusQuoted
	case "Scheduled":
		return StatusScheduled
	case "Completed":
		return StatusCompleted
	case "Lost":
		return StatusLost
	default:
		return StatusNew
	}
}

func (s Status) String() string {
	switch s {
	case StatusContacted:
		return "contacted"
	case StatusQuoted:
		return "quoted"
	case StatusScheduled:
		return "scheduled"
	case StatusCompleted:
		return "completed"
	case StatusLost:
		return "lost"
	default:
		return "new"
	}
}

// Progress is the percentage shown for a status.
func (s Status) Progress() int {
	switch s {
	case StatusContacted:
		return 30
	case StatusQuoted:
		return 55
	case StatusScheduled:
		return 75
	case StatusCompleted, StatusLost:
		return 100
	default:
		return 10
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	for _, st := range Statuses {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("domain: unknown status %q", b)
}
