package cart

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Locale selects the checkout message language.
type Locale string

const (
	LocaleID Locale = "id"
	LocaleEN Locale = "en"
)

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty")

type checkoutText struct {
	greeting   string
	totalLabel string
	thanks     string
}

var checkoutTexts = map[Locale]checkoutText{
	LocaleID: {
		greeting:   "Hallo kak, saya ingin memesan menu berikut yaa",
		totalLabel: "TOTAL HARGA",
		thanks:     "Terimakasih kak, mohon segera diproses yaa.",
	},
	LocaleEN: {
		greeting:   "Hello, I would like to order the following menu",
		totalLabel: "TOTAL PRICE",
		thanks:     "Thank you, please process my order immediately.",
	},
}

// CheckoutMessage renders the numbered, human-readable order summary for the
// given locale. Unknown locales fall back to Indonesian.
func (c *Cart) CheckoutMessage(locale Locale) (string, error) {
	if c.Len() == 0 {
		return "", ErrEmptyCart
	}

	text, ok := checkoutTexts[locale]
	if !ok {
		text = checkoutTexts[LocaleID]
	}

	var entries []string
	for i, line := range c.Lines() {
		entries = append(entries, fmt.Sprintf("%d. %s (%d porsi) - %s",
			i+1, line.Item.Name, line.Quantity, Rupiah(line.Item.Price)))
	}

	msg := fmt.Sprintf("%s :\n\n*DAFTAR PESANAN:*\n%s\n\n*%s: %s*\n\n%s",
		text.greeting,
		strings.Join(entries, "\n"),
		text.totalLabel,
		Rupiah(c.Total()),
		text.thanks,
	)
	return msg, nil
}

// Checkout builds the WhatsApp deep link carrying the order summary,
// addressed to the normalized destination number, and clears the cart on
// success. Delivery happens out-of-process; nothing waits for confirmation.
func (c *Cart) Checkout(locale Locale, whatsappNumber string) (string, error) {
	msg, err := c.CheckoutMessage(locale)
	if err != nil {
		return "", err
	}

	number := NormalizePhone(whatsappNumber)
	if number == "" {
		return "", errors.New("no whatsapp number configured")
	}

	link := fmt.Sprintf("https://wa.me/%s?text=%s", number, encodeText(msg))
	c.Clear()
	return link, nil
}

// encodeText percent-encodes the message body. QueryEscape's "+" for spaces
// is rewritten to %20, which every WhatsApp client decodes correctly.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
