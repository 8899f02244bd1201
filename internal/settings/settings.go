// Package settings defines the per-client box-office settings document, its
// deterministic defaults and the strict validation of inbound payloads.
package settings

// DeliveryMethodEnum is the fulfillment channel of a delivery method.
type DeliveryMethodEnum string

const (
	// DeliveryMethodPrintNow prints tickets at the box office immediately.
	DeliveryMethodPrintNow DeliveryMethodEnum = "PRINT_NOW"
	// DeliveryMethodPrintAtHome lets the customer print tickets themselves.
	DeliveryMethodPrintAtHome DeliveryMethodEnum = "PRINT_AT_HOME"
)

// DeliveryMethod is one entry of the ordered delivery method list.
type DeliveryMethod struct {
	Name      string             `json:"name" bson:"name"`
	Method    DeliveryMethodEnum `json:"method" bson:"method"`
	Order     int                `json:"order" bson:"order"`
	IsDefault bool               `json:"isDefault" bson:"isDefault"`
	Selected  bool               `json:"selected" bson:"selected"`
}

// FulfillmentFormat toggles the supported ticket media.
type FulfillmentFormat struct {
	RFID  bool `json:"rfid" bson:"rfid"`
	Print bool `json:"print" bson:"print"`
}

// Printer identifies the box-office printer. ID is nil when no printer has
// been assigned yet.
type Printer struct {
	ID *string `json:"id" bson:"id"`
}

// PrintingFormat toggles the supported print layouts.
type PrintingFormat struct {
	FormatA bool `json:"formatA" bson:"formatA"`
	FormatB bool `json:"formatB" bson:"formatB"`
}

// Scanning configures how tickets are scanned at the door.
type Scanning struct {
	ScanManually     bool `json:"scanManually" bson:"scanManually"`
	ScanWhenComplete bool `json:"scanWhenComplete" bson:"scanWhenComplete"`
}

// PaymentMethods toggles the accepted payment options.
type PaymentMethods struct {
	Cash       bool `json:"cash" bson:"cash"`
	CreditCard bool `json:"creditCard" bson:"creditCard"`
	Comp       bool `json:"comp" bson:"comp"`
}

// TicketDisplay configures which availability hints are shown.
type TicketDisplay struct {
	LeftInAllotment bool `json:"leftInAllotment" bson:"leftInAllotment"`
	SoldOut         bool `json:"soldOut" bson:"soldOut"`
}

// CustomerInfo configures which customer data is collected at sale.
type CustomerInfo struct {
	Active      bool `json:"active" bson:"active"`
	BasicInfo   bool `json:"basicInfo" bson:"basicInfo"`
	AddressInfo bool `json:"addressInfo" bson:"addressInfo"`
}

// ClientSettings is the full per-client settings document. One document exists
// per client, keyed uniquely by ClientID, and writes always replace the whole
// document.
type ClientSettings struct {
	ClientID          int               `json:"clientId" bson:"clientId"`
	DeliveryMethods   []DeliveryMethod  `json:"deliveryMethods" bson:"deliveryMethods"`
	FulfillmentFormat FulfillmentFormat `json:"fulfillmentFormat" bson:"fulfillmentFormat"`
	Printer           Printer           `json:"printer" bson:"printer"`
	PrintingFormat    PrintingFormat    `json:"printingFormat" bson:"printingFormat"`
	Scanning          Scanning          `json:"scanning" bson:"scanning"`
	PaymentMethods    PaymentMethods    `json:"paymentMethods" bson:"paymentMethods"`
	TicketDisplay     TicketDisplay     `json:"ticketDisplay" bson:"ticketDisplay"`
	CustomerInfo      CustomerInfo      `json:"customerInfo" bson:"customerInfo"`
}

// Default returns the baseline settings document for a client that has none
// yet. The result depends on nothing but the client id.
func Default(clientID int) ClientSettings {
	return ClientSettings{
		ClientID: clientID,
		DeliveryMethods: []DeliveryMethod{
			{
				Name:      "Print Now",
				Method:    DeliveryMethodPrintNow,
				Order:     1,
				IsDefault: true,
				Selected:  true,
			},
			{
				Name:      "Print@Home",
				Method:    DeliveryMethodPrintAtHome,
				Order:     2,
				IsDefault: false,
				Selected:  true,
			},
		},
		FulfillmentFormat: FulfillmentFormat{
			RFID:  false,
			Print: false,
		},
		Printer: Printer{
			ID: nil,
		},
		PrintingFormat: PrintingFormat{
			FormatA: true,
			FormatB: false,
		},
		Scanning: Scanning{
			ScanManually:     true,
			ScanWhenComplete: false,
		},
		PaymentMethods: PaymentMethods{
			Cash:       true,
			CreditCard: false,
			Comp:       false,
		},
		TicketDisplay: TicketDisplay{
			LeftInAllotment: true,
			SoldOut:         true,
		},
		CustomerInfo: CustomerInfo{
			Active:      false,
			BasicInfo:   false,
			AddressInfo: false,
		},
	}
}
