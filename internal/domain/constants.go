package domain

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// Payment method types mirror what Stripe reports on an attached method.
const (
	MethodTypeCard      = "card"
	MethodTypeApplePay  = "apple_pay"
	MethodTypeGooglePay = "google_pay"
	MethodTypeLink      = "link"
	MethodTypeUSBank    = "us_bank_account"
)

var MethodTypes = map[string]bool{
	MethodTypeCard:      true,
	MethodTypeApplePay:  true,
	MethodTypeGooglePay: true,
	MethodTypeLink:      true,
	MethodTypeUSBank:    true,
}

// Payment lifecycle. The processor callback path is the only writer;
// transitions only move forward.
const (
	PaymentStatusWaiting   = "waiting"
	PaymentStatusInput     = "input"
	PaymentStatusPreauth   = "preauth"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusRejected  = "rejected"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusError     = "error"
)

var paymentTransitions = map[string]map[string]bool{
	PaymentStatusWaiting: {
		PaymentStatusInput:     true,
		PaymentStatusPreauth:   true,
		PaymentStatusConfirmed: true,
		PaymentStatusRejected:  true,
		PaymentStatusError:     true,
	},
	PaymentStatusInput: {
		PaymentStatusPreauth:   true,
		PaymentStatusConfirmed: true,
		PaymentStatusRejected:  true,
		PaymentStatusError:     true,
	},
	PaymentStatusPreauth: {
		PaymentStatusConfirmed: true,
		PaymentStatusRejected:  true,
		PaymentStatusError:     true,
	},
	PaymentStatusConfirmed: {
		PaymentStatusRefunded: true,
	},
}

// CanTransitionPayment reports whether a payment may move from one status
// to another. Terminal statuses (rejected, refunded, error) have no exits.
func CanTransitionPayment(from, to string) bool {
	if from == to {
		return false
	}
	return paymentTransitions[from][to]
}

// Order lifecycle. Set explicitly by callers; never derived from the
// linked Payment's status.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
	OrderStatusRefunded   = "refunded"
	OrderStatusCancelled  = "cancelled"
)

var OrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
	OrderStatusFailed:     true,
	OrderStatusRefunded:   true,
	OrderStatusCancelled:  true,
}

// FraudStatusUnknown is the initial fraud status before the processor
// reports a screening result.
const FraudStatusUnknown = "unknown"
