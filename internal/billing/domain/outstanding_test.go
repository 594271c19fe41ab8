package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pay(amount float64, status string) Payment {
	return Payment{Amount: amount, Status: status}
}

func TestOutstandingWithNoPayments(t *testing.T) {
	assert.Equal(t, 150.0, Outstanding(150.0, nil))
}

func TestOutstandingOnlyCountsSuccessfulPayments(t *testing.T) {
	payments := []Payment{
		pay(50.0, PaymentStatusSuccessful),
		pay(30.0, "partial"),
		pay(20.0, "failed"),
		pay(10.0, "pending"),
	}
	assert.Equal(t, 100.0, Outstanding(150.0, payments))
}

func TestOutstandingClampsOverpaymentToZero(t *testing.T) {
	payments := []Payment{
		pay(100.0, PaymentStatusSuccessful),
		pay(100.0, PaymentStatusSuccessful),
	}
	assert.Equal(t, 0.0, Outstanding(150.0, payments))
}

func TestOutstandingIsMonotonicallyNonIncreasing(t *testing.T) {
	var payments []Payment
	prev := Outstanding(200.0, payments)
	for i := 0; i < 10; i++ {
		payments = append(payments, pay(30.0, PaymentStatusSuccessful))
		next := Outstanding(200.0, payments)
		assert.LessOrEqual(t, next, prev)
		assert.GreaterOrEqual(t, next, 0.0)
		prev = next
	}
	assert.Equal(t, 0.0, prev)
}

func TestOutstandingZeroAmountInvoice(t *testing.T) {
	assert.Equal(t, 0.0, Outstanding(0.0, []Payment{pay(10.0, PaymentStatusSuccessful)}))
	assert.Equal(t, 0.0, Outstanding(0.0, nil))
}
