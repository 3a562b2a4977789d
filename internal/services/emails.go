package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/eventhub/internal/models"
)

// RegistrationEmail builds the verification-code message sent on signup.
func RegistrationEmail(code string) (subject, body string) {
	return "EventHub verification code", codeEmail(
		"Confirm your registration",
		"Your verification code:",
		"If you did not sign up for EventHub, ignore this email.",
		code,
	)
}

// PasswordResetEmail builds the verification-code message for password recovery.
func PasswordResetEmail(code string) (subject, body string) {
	return "EventHub password recovery", codeEmail(
		"Password recovery",
		"Your password reset code:",
		"If you did not request a password reset, ignore this email.",
		code,
	)
}

func codeEmail(heading, lead, footer, code string) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<div style="background: #9b87f5; padding: 20px; text-align: center;"><h1 style="color: white; margin: 0;">EventHub</h1></div>`)
	b.WriteString(`<div style="padding: 30px; background: #f9f9f9;">`)
	fmt.Fprintf(&b, `<h2 style="color: #333;">%s</h2>`, heading)
	fmt.Fprintf(&b, `<p style="color: #666; font-size: 16px;">%s</p>`, lead)
	fmt.Fprintf(&b, `<div style="background: white; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;"><h1 style="color: #9b87f5; font-size: 48px; margin: 0; letter-spacing: 8px;">%s</h1></div>`, code)
	b.WriteString(`<p style="color: #666;">The code is valid for 10 minutes.</p>`)
	fmt.Fprintf(&b, `<p style="color: #999; font-size: 14px;">%s</p>`, footer)
	b.WriteString(`</div></body></html>`)
	return b.String()
}

// OrderConfirmationEmail builds the ticket confirmation message listing
// every cart line, its quantity and line total plus the grand total.
func OrderConfirmationEmail(order models.Order) (subject, body string) {
	subject = fmt.Sprintf("Your EventHub tickets - Order %s", order.OrderNumber)

	var rows strings.Builder
	for _, item := range order.Items {
		lineTotal := item.Price * float64(item.Quantity)
		fmt.Fprintf(&rows, `<tr>
<td style="padding: 15px; border-bottom: 1px solid #eee;"><strong style="color: #333; display: block; margin-bottom: 5px;">%s</strong><span style="color: #666; font-size: 14px;">%s</span></td>
<td style="padding: 15px; border-bottom: 1px solid #eee; text-align: center; color: #666;">%d</td>
<td style="padding: 15px; border-bottom: 1px solid #eee; text-align: right; color: #333; font-weight: bold;">%s</td>
</tr>`, item.EventTitle, item.TicketType, item.Quantity, FormatAmount(lineTotal))
	}

	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #f5f5f5;">`)
	b.WriteString(`<div style="background: #9b87f5; padding: 30px; text-align: center;"><h1 style="color: white; margin: 0; font-size: 32px;">EventHub</h1></div>`)
	b.WriteString(`<div style="padding: 30px; background: white;">`)
	b.WriteString(`<h2 style="color: #333; margin-top: 0;">Thank you for your order!</h2>`)
	fmt.Fprintf(&b, `<p style="color: #666; font-size: 16px; line-height: 1.6;">Hello, %s!<br><br>Your order has been placed. The details are below.</p>`, order.FullName)
	b.WriteString(`<div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 25px 0;">`)
	fmt.Fprintf(&b, `<p style="margin: 5px 0; color: #666;"><strong>Order number:</strong> %s</p>`, order.OrderNumber)
	fmt.Fprintf(&b, `<p style="margin: 5px 0; color: #666;"><strong>Date:</strong> %s</p>`, time.Now().Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, `<p style="margin: 5px 0; color: #666;"><strong>Email:</strong> %s</p>`, order.Email)
	fmt.Fprintf(&b, `<p style="margin: 5px 0; color: #666;"><strong>Phone:</strong> %s</p>`, order.Phone)
	b.WriteString(`</div>`)
	b.WriteString(`<h3 style="color: #333; margin-top: 30px;">Your tickets:</h3>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">`)
	b.WriteString(`<thead><tr style="background: #f9f9f9;"><th style="padding: 15px; text-align: left; color: #666; font-weight: 600;">Event</th><th style="padding: 15px; text-align: center; color: #666; font-weight: 600;">Qty</th><th style="padding: 15px; text-align: right; color: #666; font-weight: 600;">Amount</th></tr></thead>`)
	b.WriteString(`<tbody>`)
	b.WriteString(rows.String())
	b.WriteString(`</tbody>`)
	fmt.Fprintf(&b, `<tfoot><tr><td colspan="2" style="padding: 20px 15px; text-align: right; font-weight: bold; color: #333; font-size: 18px;">Total:</td><td style="padding: 20px 15px; text-align: right; font-weight: bold; color: #9b87f5; font-size: 20px;">%s</td></tr></tfoot>`, FormatAmount(order.TotalAmount))
	b.WriteString(`</table>`)
	b.WriteString(`<div style="background: #e8f5e9; padding: 20px; border-radius: 8px; border-left: 4px solid #4caf50; margin: 25px 0;">`)
	b.WriteString(`<p style="margin: 0; color: #2e7d32; font-weight: 600;">Tickets reserved</p>`)
	b.WriteString(`<p style="margin: 10px 0 0 0; color: #666; font-size: 14px;">Keep this email. Show it at the entrance together with your order number.</p>`)
	b.WriteString(`</div>`)
	b.WriteString(`</div></body></html>`)

	return subject, b.String()
}

// FormatAmount renders a monetary amount without trailing zeros.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
