package models

// PaymentMethod is one of the checkout options.
type PaymentMethod string

const (
	MethodUPI  PaymentMethod = "UPI"
	MethodCard PaymentMethod = "Card"
	MethodCOD  PaymentMethod = "COD"
)

// Valid reports whether m is a supported method.
func (m PaymentMethod) Valid() bool {
	return m == MethodUPI || m == MethodCard || m == MethodCOD
}

// PaymentState is the payment draft as rendered by the checkout modal.
type PaymentState struct {
	Method     PaymentMethod `json:"method,omitempty"`
	Processing bool          `json:"processing"`
	Success    bool          `json:"success"`
}

// CheckoutState groups the cart drawer, the payment modal and the payment draft.
type CheckoutState struct {
	CartOpen    bool         `json:"cartOpen"`
	PaymentOpen bool         `json:"paymentOpen"`
	Payment     PaymentState `json:"payment"`
	Invoice     *Invoice     `json:"invoice,omitempty"`
}
