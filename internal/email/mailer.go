package email

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	qrcode "github.com/skip2/go-qrcode"
	gomail "gopkg.in/gomail.v2"

	"journey-api/internal/config"
	"journey-api/internal/logger"
	"journey-api/internal/models"
)

// Mailer delivers booking notifications over SMTP. Without SMTP
// credentials delivery is disabled, which keeps local development quiet.
type Mailer struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
	logger *logger.Logger
}

func NewMailer(cfg config.EmailConfig, log *logger.Logger) *Mailer {
	m := &Mailer{cfg: cfg, logger: log}
	if cfg.SMTPUsername != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return m
}

type bookingMail struct {
	Booking *models.BookingTicket
	Event   *models.BookingEvent
}

func (m *Mailer) SendBookingPending(booking *models.BookingTicket, event *models.BookingEvent) error {
	subject := fmt.Sprintf("Booking received - %s", booking.BookingReference)
	body, err := render(pendingTemplate, bookingMail{Booking: booking, Event: event})
	if err != nil {
		return err
	}
	return m.send(booking.CustomerEmail, subject, body, "")
}

// SendBookingConfirmation embeds a QR code of the booking reference so
// the ticket can be checked in from the mail itself.
func (m *Mailer) SendBookingConfirmation(booking *models.BookingTicket, event *models.BookingEvent) error {
	subject := fmt.Sprintf("Booking confirmed - %s", booking.BookingReference)
	body, err := render(confirmationTemplate, bookingMail{Booking: booking, Event: event})
	if err != nil {
		return err
	}
	return m.send(booking.CustomerEmail, subject, body, booking.BookingReference)
}

func (m *Mailer) send(to, subject, body, qrReference string) error {
	if m.dialer == nil {
		m.logger.LogEmail(to, subject, "SMTP not configured, mail skipped")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if qrReference != "" {
		png, err := qrcode.Encode(qrReference, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("encode qr: %w", err)
		}
		msg.Embed("ticket-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	m.logger.LogEmail(to, subject, "Delivered")
	return nil
}

func render(t *template.Template, data bookingMail) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail template: %w", err)
	}
	return buf.String(), nil
}
