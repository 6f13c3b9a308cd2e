package seat

import "errors"

var ErrUnknownStatus = errors.New("unknown seat status")

type ID string

func (id ID) String() string {
	return string(id)
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusSelected  Status = "selected"
)

// Literals the reservation authority uses on the wire.
const (
	wireAvailable = "disponibile"
	wireSelected  = "selezionato"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusSelected:
		return true
	default:
		return false
	}
}

func (s Status) Toggled() Status {
	if s == StatusSelected {
		return StatusAvailable
	}
	return StatusSelected
}

func (s Status) WireValue() string {
	if s == StatusSelected {
		return wireSelected
	}
	return wireAvailable
}

func ParseWireStatus(v string) (Status, error) {
	switch v {
	case wireAvailable:
		return StatusAvailable, nil
	case wireSelected:
		return StatusSelected, nil
	default:
		return "", ErrUnknownStatus
	}
}
