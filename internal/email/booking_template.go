package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// BookingDetails holds the already formatted fields of a booking request.
type BookingDetails struct {
	BusinessName string
	Name         string
	Phone        string
	Email        string
	Date         string
	Time         string
	Service      string
	Notes        string
}

// BookingSubject is the subject line of the owner notification.
func BookingSubject(customerName string) string {
	return fmt.Sprintf("New Booking Request from %s", customerName)
}

// RenderBookingNotification renders the HTML and plain-text bodies of the
// owner notification. User input is HTML-escaped in the HTML part.
func RenderBookingNotification(d BookingDetails) (htmlBody, textBody string, err error) {
	var h bytes.Buffer
	if err := bookingHTML.Execute(&h, d); err != nil {
		return "", "", fmt.Errorf("rendering booking html: %w", err)
	}

	var t bytes.Buffer
	if err := bookingText.Execute(&t, d); err != nil {
		return "", "", fmt.Errorf("rendering booking text: %w", err)
	}

	return h.String(), strings.TrimSpace(t.String()), nil
}

var bookingHTML = htmltemplate.Must(htmltemplate.New("booking.html").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>New Booking Request</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table role="presentation" style="width: 100%; border-collapse: collapse;">
		<tr>
			<td align="center" style="padding: 40px 0;">
				<table role="presentation" style="width: 600px; border-collapse: collapse; background-color: #ffffff;">
					<tr>
						<td style="padding: 40px 30px; background-color: #000000; text-align: center;">
							<h1 style="margin: 0; color: #ffffff; font-size: 28px;">New Booking Request</h1>
						</td>
					</tr>
					<tr>
						<td style="padding: 40px 30px;">
							<p style="margin: 0 0 20px; color: #333333; font-size: 16px;">You have received a new booking request from your website:</p>
							<table role="presentation" style="width: 100%; border-collapse: collapse; margin: 20px 0;">
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Name:</strong></td>
									<td style="padding: 12px;">{{.Name}}</td>
								</tr>
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Phone:</strong></td>
									<td style="padding: 12px;"><a href="tel:{{.Phone}}" style="color: #0066cc; text-decoration: none;">{{.Phone}}</a></td>
								</tr>
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Email:</strong></td>
									<td style="padding: 12px;"><a href="mailto:{{.Email}}" style="color: #0066cc; text-decoration: none;">{{.Email}}</a></td>
								</tr>
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Preferred Date:</strong></td>
									<td style="padding: 12px;">{{.Date}}</td>
								</tr>
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Preferred Time:</strong></td>
									<td style="padding: 12px;">{{.Time}}</td>
								</tr>
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Service:</strong></td>
									<td style="padding: 12px;">{{.Service}}</td>
								</tr>
								{{- if .Notes}}
								<tr>
									<td style="padding: 12px; background-color: #f8f8f8;"><strong>Additional Notes:</strong></td>
									<td style="padding: 12px;">{{.Notes}}</td>
								</tr>
								{{- end}}
							</table>
							<p style="margin: 30px 0 0; color: #666666; font-size: 14px;">Please contact the customer to confirm their appointment.</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 30px; background-color: #f8f8f8; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0; color: #999999; font-size: 12px;">This email was sent from your {{.BusinessName}} website booking form.</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
`))

var bookingText = texttemplate.Must(texttemplate.New("booking.txt").Parse(`
New Booking Request

You have received a new booking request from your website:

Name: {{.Name}}
Phone: {{.Phone}}
Email: {{.Email}}
Preferred Date: {{.Date}}
Preferred Time: {{.Time}}
Service: {{.Service}}
{{if .Notes}}Additional Notes: {{.Notes}}
{{end}}
Please contact the customer to confirm their appointment.

---
This email was sent from your {{.BusinessName}} website booking form.
`))
