package entities

import "github.com/shopspring/decimal"

// CustomerStatus mirrors the account-standing flag from the customer master.

type CustomerStatus string

const (
	CustomerStatusNormal  CustomerStatus = "normal"
	CustomerStatusWarning CustomerStatus = "warning"
)

// Customer is a read-only snapshot of a customer-master record.
//
// Domain notes:
//   - The customer master is owned by an external system; this service
//     never writes back to it. Each evaluation works on the snapshot it
//     was handed.
//   - OutstandingBalance is the pre-order balance; the order under
//     evaluation is added on top of it when exposure is computed.

type Customer struct {
	ID                    string          `json:"id"`
	CreditLimit           decimal.Decimal `json:"credit_limit"`
	OutstandingBalance    decimal.Decimal `json:"outstanding_balance"`
	CreditScore           int             `json:"credit_score"`
	Status                CustomerStatus  `json:"status"`
	HasLatePaymentHistory bool            `json:"has_late_payment_history"`
	IsNew                 bool            `json:"is_new"`
}

// AvailableCredit is credit_limit minus outstanding_balance, before the
// order under evaluation is considered.
func (c Customer) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.OutstandingBalance)
}
