package order

import "ordertaking/internal/core/domain/model/kernel"

// HTMLString is a rendered, sanitised HTML document.
type HTMLString string

// OrderAcknowledgement is the letter to send to the customer.
type OrderAcknowledgement struct {
	EmailAddress kernel.EmailAddress
	Letter       HTMLString
}

// SendResult is the outcome of sending an acknowledgment.
type SendResult int

const (
	NotSent SendResult = iota
	Sent
)

func (r SendResult) String() string {
	if r == Sent {
		return "sent"
	}
	return "notSent"
}
