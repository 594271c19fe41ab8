package domain

// Outstanding derives the balance still owed on an invoice: the invoice
// amount minus the sum of its successful payments, floored at zero. An
// overpayment clamps to zero; the excess is not tracked as credit.
func Outstanding(amount float64, payments []Payment) float64 {
	paid := 0.0
	for _, p := range payments {
		if p.Status == PaymentStatusSuccessful {
			paid += p.Amount
		}
	}
	if paid >= amount {
		return 0
	}
	return amount - paid
}
