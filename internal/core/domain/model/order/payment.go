package order

import "strings"

// DefaultPayment is used when an order is added without a payment method.
const DefaultPayment Payment = "PIX"

// Payment is the free-form payment method label of an order ("PIX",
// "Dinheiro", "Cartão", ...).
type Payment string

// NewPayment trims label and falls back to DefaultPayment when it is blank.
func NewPayment(label string) Payment {
	label = strings.TrimSpace(label)
	if label == "" {
		return DefaultPayment
	}
	return Payment(label)
}

// String returns the label.
func (p Payment) String() string {
	return string(p)
}
