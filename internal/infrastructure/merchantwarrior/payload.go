package merchantwarrior

import (
	"net/url"
	"time"

	"github.com/Zhima-Mochi/minishop-checkout/internal/config"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
)

const (
	ReturnPath = "/checkout/success"
	NotifyPath = "/api/orders/notify"

	defaultProduct    = "Order Payment"
	referenceText     = "Order #"
	linkLifetime      = 7 * 24 * time.Hour
	expiryLayout      = "2006-01-02 15:04:05"
	sendEmail         = "1"
	reminderFrequency = "7"
	methodCreditCard  = "cc"
)

// buildForm assembles the PayLink request body, signatures included.
func buildForm(m config.Merchant, baseURL string, req payment.LinkRequest, now time.Time) url.Values {
	returnURL := baseURL + ReturnPath
	notifyURL := baseURL + NotifyPath
	amount := req.Total.FormattedAmount()
	currency := req.Total.Currency
	product := req.Total.Description
	if product == "" {
		product = defaultProduct
	}

	form := url.Values{}
	form.Set("merchantUUID", m.MerchantUUID)
	form.Set("apiKey", m.APIKey)
	form.Set("transactionAmount", amount)
	form.Set("transactionCurrency", currency)
	form.Set("transactionProduct", product)
	form.Set("returnURL", returnURL)
	form.Set("notifyURL", notifyURL)
	form.Set("customerName", req.Customer.Name)
	form.Set("customerEmail", req.Customer.Email)
	form.Set("customerPhone", req.Customer.Phone)
	form.Set("customerCountry", req.Customer.Country)
	form.Set("customerState", req.Customer.State)
	form.Set("customerCity", req.Customer.City)
	form.Set("customerAddress", req.Customer.Address)
	form.Set("customerPostCode", req.Customer.PostCode)
	form.Set("linkReferenceID", req.Reference)
	form.Set("referenceText", referenceText)
	form.Set("expiry", now.Add(linkLifetime).UTC().Format(expiryLayout))
	form.Set("sendEmail", sendEmail)
	form.Set("reminderFrequency", reminderFrequency)
	form.Set("method", methodCreditCard)
	form.Set("urlHash", URLHash(m.Passphrase, m.MerchantUUID, returnURL, notifyURL))
	form.Set("hash", TransactionHash(m.Passphrase, m.MerchantUUID, amount, currency))
	return form
}
