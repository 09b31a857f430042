package booking

type Status string

const (
	StatusPending             Status = "pending"
	StatusConfirmed           Status = "confirmed"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRescheduleRequested, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

var transitions = map[Status][]Status{
	StatusPending:             {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCompleted, StatusCancelled, StatusRescheduleRequested},
	StatusRescheduleRequested: {StatusConfirmed},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	default:
		return false
	}
}
