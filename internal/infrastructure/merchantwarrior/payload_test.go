package merchantwarrior

import (
	"testing"
	"time"

	"github.com/Zhima-Mochi/minishop-checkout/internal/config"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testMerchant = config.Merchant{APIKey: "key", Passphrase: "pass", MerchantUUID: "uuid"}

func testLinkRequest() payment.LinkRequest {
	return payment.LinkRequest{
		Reference: "order_01HZY",
		Total: order.Total{
			Description: "Mechanical Gaming Keyboard, Gaming Headset",
			Amount:      decimal.RequireFromString("279.98"),
			Currency:    "AUD",
		},
		Customer: order.CustomerInfo{
			Name:     "Jo Citizen",
			Email:    "jo@example.com",
			Phone:    "+61 412 345 678",
			Country:  "AU",
			State:    "NSW",
			City:     "Sydney",
			Address:  "1 George St",
			PostCode: "2000",
		},
	}
}

func TestBuildFormFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("AEST", 10*3600))

	form := buildForm(testMerchant, "https://shop.example", testLinkRequest(), now)

	expected := map[string]string{
		"merchantUUID":        "uuid",
		"apiKey":              "key",
		"transactionAmount":   "279.98",
		"transactionCurrency": "AUD",
		"transactionProduct":  "Mechanical Gaming Keyboard, Gaming Headset",
		"returnURL":           "https://shop.example/checkout/success",
		"notifyURL":           "https://shop.example/api/orders/notify",
		"customerName":        "Jo Citizen",
		"customerEmail":       "jo@example.com",
		"customerPhone":       "+61 412 345 678",
		"customerCountry":     "AU",
		"customerState":       "NSW",
		"customerCity":        "Sydney",
		"customerAddress":     "1 George St",
		"customerPostCode":    "2000",
		"linkReferenceID":     "order_01HZY",
		"referenceText":       "Order #",
		"expiry":              "2024-05-08 00:30:00",
		"sendEmail":           "1",
		"reminderFrequency":   "7",
		"method":              "cc",
		"urlHash":             URLHash("pass", "uuid", "https://shop.example/checkout/success", "https://shop.example/api/orders/notify"),
		"hash":                TransactionHash("pass", "uuid", "279.98", "AUD"),
	}
	assert.Len(t, form, len(expected))
	for k, v := range expected {
		assert.Equal(t, v, form.Get(k), k)
	}
}

func TestBuildFormDefaultsProductAndPadsAmount(t *testing.T) {
	req := testLinkRequest()
	req.Total.Description = ""
	req.Total.Amount = decimal.NewFromInt(50)

	form := buildForm(testMerchant, "https://shop.example", req, time.Now())

	assert.Equal(t, "Order Payment", form.Get("transactionProduct"))
	assert.Equal(t, "50.00", form.Get("transactionAmount"))
}
