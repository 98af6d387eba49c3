package models

// CounterpartyBalance is the net amount the querying user owes one counterparty
type CounterpartyBalance struct {
	// UserID is the counterparty
	UserID string

	// Name is the counterparty display name, empty when unresolved
	Name string

	// Email is the counterparty email, empty when unresolved
	Email string

	// Amount is the positive net owed to the counterparty
	Amount float64
}

// PenaltySummary aggregates every penalty touching a user
type PenaltySummary struct {
	// UserID is the user the summary was computed for
	UserID string

	// Penalties is the flat list of records on either side
	Penalties []*PenaltyRecord

	// TotalOwed is the sum of records where the user is the debtor
	TotalOwed float64

	// TotalReceived is the sum of records where the user is the creditor
	TotalReceived float64

	// Owed lists counterparties the user owes money to on net
	Owed []*CounterpartyBalance
}
