// Package mailer ежедневная рассылка сводок бронирований по email
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dkomnin/APEC-BookingService/internal/config"
)

// ErrAllSendsFailed возвращается, когда ни одно письмо не ушло
var ErrAllSendsFailed = errors.New("mailer: all digest sends failed")

// Mailer отправляет ежедневные сводки бронирований
type Mailer struct {
	client      *mail.Client
	from        string
	bookingRepo BookingSource
	logger      Logger
}

// New создает мейлер поверх SMTP настроек
func New(cfg config.SMTPConfig, bookingRepo BookingSource, logger Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	// Анонимный SMTP без аутентификации допустим для локальных релеев
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: create smtp client: %w", err)
	}

	return &Mailer{
		client:      client,
		from:        cfg.MailFrom,
		bookingRepo: bookingRepo,
		logger:      logger,
	}, nil
}

// SendDailyDigest отправляет сводки всем получателям с бронированиями на дату
// Возвращает число отправленных писем. Ошибка отдельного получателя не
// прерывает рассылку остальным.
func (m *Mailer) SendDailyDigest(ctx context.Context, date string) (int, error) {
	bookings, err := m.bookingRepo.ListForDigest(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("mailer: list bookings for %s: %w", date, err)
	}

	digests := BuildDigests(date, bookings)
	if len(digests) == 0 {
		m.logger.Info("SendDailyDigest: no bookings on %s, nothing to send", date)
		return 0, nil
	}

	sent := 0
	for _, digest := range digests {
		if err := m.send(ctx, digest); err != nil {
			m.logger.Error("SendDailyDigest: failed to send to %s: %v", digest.Email, err)
			continue
		}
		sent++
	}

	m.logger.Info("SendDailyDigest: sent %d of %d digests for %s", sent, len(digests), date)

	if sent == 0 {
		return 0, ErrAllSendsFailed
	}

	return sent, nil
}

// send собирает и отправляет одно письмо
func (m *Mailer) send(ctx context.Context, digest Digest) error {
	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from %q: %w", m.from, err)
	}
	if err := msg.To(digest.Email); err != nil {
		return fmt.Errorf("set to %q: %w", digest.Email, err)
	}

	msg.Subject(digest.Subject)
	msg.SetBodyString(mail.TypeTextPlain, digest.Body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("dial and send: %w", err)
	}

	return nil
}
