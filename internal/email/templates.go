package email

import "html/template"

var pendingTemplate = template.Must(template.New("pending").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2c5f2d;">We received your booking</h2>
  <p>Hi {{.Booking.CustomerName}},</p>
  <p>Your booking for <strong>{{.Event.Title}}</strong> is registered and awaiting confirmation.</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 6px 0;">Reference</td><td><strong>{{.Booking.BookingReference}}</strong></td></tr>
    <tr><td style="padding: 6px 0;">Participants</td><td>{{.Booking.NumberOfParticipants}}</td></tr>
    <tr><td style="padding: 6px 0;">Date</td><td>{{.Booking.EventDate.Format "2 January 2006"}}</td></tr>
    <tr><td style="padding: 6px 0;">Total</td><td>{{printf "%.2f" .Booking.TotalPrice}}</td></tr>
  </table>
  <p>We will send a confirmation as soon as your payment is processed. Keep the reference above for any enquiry.</p>
</div>
`))

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2c5f2d;">Your booking is confirmed</h2>
  <p>Hi {{.Booking.CustomerName}},</p>
  <p>Your spot on <strong>{{.Event.Title}}</strong> is confirmed. See you there!</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 6px 0;">Reference</td><td><strong>{{.Booking.BookingReference}}</strong></td></tr>
    <tr><td style="padding: 6px 0;">Location</td><td>{{.Event.Location}}</td></tr>
    <tr><td style="padding: 6px 0;">Participants</td><td>{{.Booking.NumberOfParticipants}}</td></tr>
    <tr><td style="padding: 6px 0;">Date</td><td>{{.Booking.EventDate.Format "2 January 2006"}}</td></tr>
    <tr><td style="padding: 6px 0;">Total paid</td><td>{{printf "%.2f" .Booking.TotalPrice}}</td></tr>
  </table>
  <p>Show this QR code at check-in:</p>
  <img src="cid:ticket-qr.png" alt="{{.Booking.BookingReference}}" width="256" height="256"/>
</div>
`))
