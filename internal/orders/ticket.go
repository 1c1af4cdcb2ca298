package orders

import (
	"fmt"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.English)

// FormatUSD renders an amount as locale-aware US dollars, two decimals.
func FormatUSD(amount float64) string {
	return usdPrinter.Sprintf("%v", currency.Symbol(currency.USD.Amount(amount)))
}

// Ticket renders the purchase confirmation a shopper receives by mail.
// Free text, no wire contract.
func Ticket(rec domain.OrderRecord) string {
	var b strings.Builder

	b.WriteString("TECH URI - Purchase Ticket\n")
	b.WriteString("==========================\n\n")
	fmt.Fprintf(&b, "Thank you for your purchase, %s!\n\n", rec.CustomerName)
	fmt.Fprintf(&b, "Order number: %s\n", rec.OrderID)
	fmt.Fprintf(&b, "Date: %s\n\n", rec.CreatedAt.Format("2006-01-02"))

	b.WriteString("PRODUCTS:\n")
	for _, line := range rec.Lines {
		fmt.Fprintf(&b, "%s x %d - %s\n", line.Title, line.Quantity, FormatUSD(line.Subtotal))
	}

	fmt.Fprintf(&b, "\nTOTAL: %s\n\n", FormatUSD(rec.TotalAmount))
	fmt.Fprintf(&b, "Shipping address:\n%s\n\n", rec.ShippingAddress)
	b.WriteString("Your order is being processed and will be shipped as soon as possible.\n\n")
	b.WriteString("If you have any questions, reply to this email.\n\n")
	b.WriteString("Regards,\nThe TECH URI team\n")

	return b.String()
}
