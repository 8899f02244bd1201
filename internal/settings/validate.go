package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ticket-office/ticket-office/internal/validation"
)

// validate is shared across calls; RegisterTagNameFunc makes error messages
// name fields by their json tags instead of Go identifiers.
var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// clientSettingsBody mirrors ClientSettings minus clientId, with pointer
// fields so a missing key is distinguishable from a zero value. Every leaf is
// type checked by the JSON decoder; presence is enforced by validator tags.
type clientSettingsBody struct {
	DeliveryMethods   []deliveryMethodBody   `json:"deliveryMethods" validate:"required,dive"`
	FulfillmentFormat *fulfillmentFormatBody `json:"fulfillmentFormat" validate:"required"`
	Printer           *printerBody           `json:"printer" validate:"required"`
	PrintingFormat    *printingFormatBody    `json:"printingFormat" validate:"required"`
	Scanning          *scanningBody          `json:"scanning" validate:"required"`
	PaymentMethods    *paymentMethodsBody    `json:"paymentMethods" validate:"required"`
	TicketDisplay     *ticketDisplayBody     `json:"ticketDisplay" validate:"required"`
	CustomerInfo      *customerInfoBody      `json:"customerInfo" validate:"required"`
}

type deliveryMethodBody struct {
	Name      *string             `json:"name" validate:"required"`
	Method    *DeliveryMethodEnum `json:"method" validate:"required,oneof=PRINT_NOW PRINT_AT_HOME"`
	Order     *int                `json:"order" validate:"required"`
	IsDefault *bool               `json:"isDefault" validate:"required"`
	Selected  *bool               `json:"selected" validate:"required"`
}

type fulfillmentFormatBody struct {
	RFID  *bool `json:"rfid" validate:"required"`
	Print *bool `json:"print" validate:"required"`
}

type printerBody struct {
	// ID must be present: a string assigns a printer, an explicit null marks
	// none assigned. Raw bytes keep an absent key apart from a null value.
	ID json.RawMessage `json:"id" validate:"required"`
}

// printerID resolves the raw id into a string or nil, rejecting other types.
func (b *printerBody) printerID() (*string, error) {
	var id *string
	if err := json.Unmarshal(b.ID, &id); err != nil {
		return nil, validation.NewError("Invalid value for field 'printer.id'. Expected string.")
	}

	return id, nil
}

type printingFormatBody struct {
	FormatA *bool `json:"formatA" validate:"required"`
	FormatB *bool `json:"formatB" validate:"required"`
}

type scanningBody struct {
	ScanManually     *bool `json:"scanManually" validate:"required"`
	ScanWhenComplete *bool `json:"scanWhenComplete" validate:"required"`
}

type paymentMethodsBody struct {
	Cash       *bool `json:"cash" validate:"required"`
	CreditCard *bool `json:"creditCard" validate:"required"`
	Comp       *bool `json:"comp" validate:"required"`
}

type ticketDisplayBody struct {
	LeftInAllotment *bool `json:"leftInAllotment" validate:"required"`
	SoldOut         *bool `json:"soldOut" validate:"required"`
}

type customerInfoBody struct {
	Active      *bool `json:"active" validate:"required"`
	BasicInfo   *bool `json:"basicInfo" validate:"required"`
	AddressInfo *bool `json:"addressInfo" validate:"required"`
}

// ValidateClientID parses a client id path parameter.
func ValidateClientID(raw string) (int, error) {
	clientID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewError("Invalid clientId. Must be a number.")
	}

	return clientID, nil
}

// Validate checks a raw settings payload against the schema and assembles the
// full document. The returned document's clientId is always the one supplied
// by the caller; a clientId inside the payload is ignored. Validation stops at
// the first violated rule and reports it as a validation.Error.
func Validate(raw []byte, clientID int) (*ClientSettings, error) {
	var body clientSettingsBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, decodeError(err)
	}

	if err := validate.Struct(&body); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return nil, ruleError(validationErrors[0])
		}

		return nil, err
	}

	printerID, err := body.Printer.printerID()
	if err != nil {
		return nil, err
	}

	return body.toSettings(clientID, printerID), nil
}

// decodeError translates JSON decoding failures into client-safe messages.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return validation.NewError("Malformed payload. Expected an object.")
		}

		return validation.NewError(
			fmt.Sprintf("Invalid value for field '%s'. Expected %s.", typeErr.Field, expectedType(typeErr)),
		)
	}

	return validation.NewError("Malformed payload. Expected an object.")
}

// expectedType names the wanted type without leaking Go type paths.
func expectedType(typeErr *json.UnmarshalTypeError) string {
	t := typeErr.Type
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "array"
	default:
		return "object"
	}
}

// ruleError renders the first violated validator rule as a client-safe message.
func ruleError(fieldErr validator.FieldError) error {
	// Namespace starts with the body struct name; drop it.
	field := fieldErr.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fieldErr.Tag() {
	case "required":
		return validation.NewError(fmt.Sprintf("Field '%s' is required.", field))
	case "oneof":
		return validation.NewError(
			fmt.Sprintf("Field '%s' must be one of: %s.", field, strings.ReplaceAll(fieldErr.Param(), " ", ", ")),
		)
	default:
		return validation.NewError(fmt.Sprintf("Field '%s' is invalid.", field))
	}
}

// toSettings converts a fully validated body into the canonical document.
func (b *clientSettingsBody) toSettings(clientID int, printerID *string) *ClientSettings {
	methods := make([]DeliveryMethod, len(b.DeliveryMethods))
	for i, m := range b.DeliveryMethods {
		methods[i] = DeliveryMethod{
			Name:      *m.Name,
			Method:    *m.Method,
			Order:     *m.Order,
			IsDefault: *m.IsDefault,
			Selected:  *m.Selected,
		}
	}

	return &ClientSettings{
		ClientID:        clientID,
		DeliveryMethods: methods,
		FulfillmentFormat: FulfillmentFormat{
			RFID:  *b.FulfillmentFormat.RFID,
			Print: *b.FulfillmentFormat.Print,
		},
		Printer: Printer{
			ID: printerID,
		},
		PrintingFormat: PrintingFormat{
			FormatA: *b.PrintingFormat.FormatA,
			FormatB: *b.PrintingFormat.FormatB,
		},
		Scanning: Scanning{
			ScanManually:     *b.Scanning.ScanManually,
			ScanWhenComplete: *b.Scanning.ScanWhenComplete,
		},
		PaymentMethods: PaymentMethods{
			Cash:       *b.PaymentMethods.Cash,
			CreditCard: *b.PaymentMethods.CreditCard,
			Comp:       *b.PaymentMethods.Comp,
		},
		TicketDisplay: TicketDisplay{
			LeftInAllotment: *b.TicketDisplay.LeftInAllotment,
			SoldOut:         *b.TicketDisplay.SoldOut,
		},
		CustomerInfo: CustomerInfo{
			Active:      *b.CustomerInfo.Active,
			BasicInfo:   *b.CustomerInfo.BasicInfo,
			AddressInfo: *b.CustomerInfo.AddressInfo,
		},
	}
}
