package feedback

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPrompted  Status = "prompted"
	StatusSubmitted Status = "submitted"
	StatusDismissed Status = "dismissed"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusPrompted, StatusSubmitted, StatusDismissed, StatusExpired:
		return true
	default:
		return false
	}
}

// IsActive reports whether a request in this status still owns a timer.
func (s Status) IsActive() bool {
	switch s {
	case StatusScheduled, StatusPrompted:
		return true
	case StatusSubmitted, StatusDismissed, StatusExpired:
		return false
	default:
		return false
	}
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Transition is the outcome of a scheduler-driven state change.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionPrompted
	TransitionRescheduled
	TransitionExpired
	TransitionSubmitted
)

func (t Transition) String() string {
	switch t {
	case TransitionPrompted:
		return "prompted"
	case TransitionRescheduled:
		return "rescheduled"
	case TransitionExpired:
		return "expired"
	case TransitionSubmitted:
		return "submitted"
	case TransitionNone:
		return "none"
	default:
		return "unknown"
	}
}

type Category string

const (
	CategoryOverall    Category = "overall"
	CategoryMusic      Category = "music"
	CategoryLocation   Category = "location"
	CategoryAtmosphere Category = "atmosphere"
	CategoryCompany    Category = "company"
)

var Categories = []Category{
	CategoryOverall,
	CategoryMusic,
	CategoryLocation,
	CategoryAtmosphere,
	CategoryCompany,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryOverall, CategoryMusic, CategoryLocation, CategoryAtmosphere, CategoryCompany:
		return true
	default:
		return false
	}
}
