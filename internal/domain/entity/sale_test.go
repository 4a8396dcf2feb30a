package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaleStatusTransitions(t *testing.T) {
	cases := []struct {
		from    SaleStatus
		to      SaleStatus
		allowed bool
	}{
		{SaleStatusPendente, SaleStatusPago, true},
		{SaleStatusPendente, SaleStatusCancelado, true},
		{SaleStatusPendente, SaleStatusEntregue, false},
		{SaleStatusPago, SaleStatusEntregue, true},
		{SaleStatusPago, SaleStatusCancelado, true},
		{SaleStatusPago, SaleStatusPendente, false},
		{SaleStatusEntregue, SaleStatusCancelado, false},
		{SaleStatusEntregue, SaleStatusPago, false},
		{SaleStatusCancelado, SaleStatusPendente, false},
		{SaleStatusCancelado, SaleStatusPago, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransition(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestSaleStatusValid(t *testing.T) {
	assert.True(t, SaleStatusPendente.Valid())
	assert.True(t, SaleStatusCancelado.Valid())
	assert.False(t, SaleStatus("devolvido").Valid())
	assert.False(t, SaleStatus("").Valid())
}
