package mailer

import (
	"fmt"
	"html"
	"strings"
)

// OrderSummary is the template input for the operator notification.
type OrderSummary struct {
	ItemType       string
	ItemID         string
	ItemTitle      string
	FullName       string
	Email          string
	Phone          string
	City           string
	ImageConsent   string
	InvoiceNeeded  bool
	CompanyName    string
	NIP            string
	CompanyAddress string
	AmountFmt      string
	SessionID      string
	OrderID        int64
}

// WorkshopDetails is the template input for the buyer confirmation.
type WorkshopDetails struct {
	Title      string
	DateFmt    string
	TimeWindow string
	Location   string
	City       string
	FullName   string
}

const notProvided = "Not provided"

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return html.EscapeString(s)
}

// OperatorNotification renders the internal new-order summary email.
func OperatorNotification(o OrderSummary) (subject, body string) {
	subject = fmt.Sprintf("Nowe zamówienie: %s (%s)", o.ItemTitle, o.ItemType)

	var b strings.Builder
	b.WriteString("<h2>Nowe opłacone zamówienie</h2>")
	fmt.Fprintf(&b, "<p><b>Produkt:</b> %s [%s / %s]</p>", orDefault(o.ItemTitle), html.EscapeString(o.ItemType), html.EscapeString(o.ItemID))
	fmt.Fprintf(&b, "<p><b>Kwota:</b> %s</p>", html.EscapeString(o.AmountFmt))
	b.WriteString("<h3>Dane kupującego</h3><ul>")
	fmt.Fprintf(&b, "<li>Imię i nazwisko: %s</li>", orDefault(o.FullName))
	fmt.Fprintf(&b, "<li>E-mail: %s</li>", orDefault(o.Email))
	fmt.Fprintf(&b, "<li>Telefon: %s</li>", orDefault(o.Phone))
	fmt.Fprintf(&b, "<li>Miasto: %s</li>", orDefault(o.City))
	fmt.Fprintf(&b, "<li>Zgoda na wizerunek: %s</li>", orDefault(o.ImageConsent))
	b.WriteString("</ul>")
	if o.InvoiceNeeded {
		b.WriteString("<h3>Faktura</h3><ul>")
		fmt.Fprintf(&b, "<li>Firma: %s</li>", orDefault(o.CompanyName))
		fmt.Fprintf(&b, "<li>NIP: %s</li>", orDefault(o.NIP))
		fmt.Fprintf(&b, "<li>Adres: %s</li>", orDefault(o.CompanyAddress))
		b.WriteString("</ul>")
	}
	fmt.Fprintf(&b, "<p><small>sessionId: %s, orderId: %d</small></p>", html.EscapeString(o.SessionID), o.OrderID)

	return subject, b.String()
}

// BuyerConfirmation renders the workshop confirmation sent to the customer.
func BuyerConfirmation(w WorkshopDetails) (subject, body string) {
	subject = "Potwierdzenie rezerwacji - " + w.Title

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Dziękujemy za rezerwację, %s!</h2>", orDefault(w.FullName))
	fmt.Fprintf(&b, "<p>Twoje miejsce na warsztatach <b>%s</b> jest potwierdzone.</p>", html.EscapeString(w.Title))
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Termin: %s</li>", html.EscapeString(w.DateFmt))
	if w.TimeWindow != "" {
		fmt.Fprintf(&b, "<li>Godziny: %s</li>", html.EscapeString(w.TimeWindow))
	}
	fmt.Fprintf(&b, "<li>Miejsce: %s, %s</li>", orDefault(w.Location), orDefault(w.City))
	b.WriteString("</ul>")
	b.WriteString("<p>Do zobaczenia w kuchni!</p>")

	return subject, b.String()
}
