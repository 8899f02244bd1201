package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default(42)

	assert.Equal(t, 42, s.ClientID)

	require.Len(t, s.DeliveryMethods, 2)
	assert.Equal(t, "Print Now", s.DeliveryMethods[0].Name)
	assert.Equal(t, DeliveryMethodPrintNow, s.DeliveryMethods[0].Method)
	assert.Equal(t, 1, s.DeliveryMethods[0].Order)
	assert.True(t, s.DeliveryMethods[0].IsDefault)
	assert.True(t, s.DeliveryMethods[0].Selected)

	assert.Equal(t, "Print@Home", s.DeliveryMethods[1].Name)
	assert.Equal(t, DeliveryMethodPrintAtHome, s.DeliveryMethods[1].Method)
	assert.Equal(t, 2, s.DeliveryMethods[1].Order)
	assert.False(t, s.DeliveryMethods[1].IsDefault)
	assert.True(t, s.DeliveryMethods[1].Selected)

	assert.False(t, s.FulfillmentFormat.RFID)
	assert.False(t, s.FulfillmentFormat.Print)
	assert.Nil(t, s.Printer.ID)
	assert.True(t, s.PrintingFormat.FormatA)
	assert.False(t, s.PrintingFormat.FormatB)
	assert.True(t, s.Scanning.ScanManually)
	assert.False(t, s.Scanning.ScanWhenComplete)
	assert.True(t, s.PaymentMethods.Cash)
	assert.False(t, s.PaymentMethods.CreditCard)
	assert.False(t, s.PaymentMethods.Comp)
	assert.True(t, s.TicketDisplay.LeftInAllotment)
	assert.True(t, s.TicketDisplay.SoldOut)
	assert.False(t, s.CustomerInfo.Active)
	assert.False(t, s.CustomerInfo.BasicInfo)
	assert.False(t, s.CustomerInfo.AddressInfo)
}

func TestDefaultIsDeterministic(t *testing.T) {
	assert.Equal(t, Default(7), Default(7))
}

func TestDefaultVariesOnlyByClientID(t *testing.T) {
	a := Default(1)
	b := Default(2)

	a.ClientID = 0
	b.ClientID = 0

	assert.Equal(t, a, b)
}
