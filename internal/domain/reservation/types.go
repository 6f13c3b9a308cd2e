package reservation

type Status string

const (
	StatusOpen Status = "open"
	StatusPaid Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusPaid:
		return true
	default:
		return false
	}
}
