package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/pkg/idx"
	"github.com/intlakaa/backoffice/pkg/mailx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

// ValidationError reports exactly which required intake fields were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// RequestInput is the consultation form payload. MonthlySales stays free
// text on purpose.
type RequestInput struct {
	Name         string
	Phone        string
	StoreURL     string
	MonthlySales string
}

type RequestService struct {
	Store       store.Store
	Mailer      mailx.Mailer
	NotifyEmail string
	Logger      *slog.Logger
}

// CreateRequest validates and persists an inbound consultation request, then
// kicks off a best-effort operator notification. Notification failures never
// reach the caller.
func (s *RequestService) CreateRequest(ctx context.Context, in RequestInput) (domain.ConsultationRequest, error) {
	log := slogx.FromContext(ctx)

	// 1. Field-level validation before any domain logic.
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(in.StoreURL) == "" {
		missing = append(missing, "storeUrl")
	}
	if strings.TrimSpace(in.MonthlySales) == "" {
		missing = append(missing, "monthlySales")
	}
	if len(missing) > 0 {
		log.Warn("consultation request missing required fields",
			slog.Any("fields", missing),
		)
		return domain.ConsultationRequest{}, &ValidationError{Fields: missing}
	}

	// 2. Persist.
	req := domain.ConsultationRequest{
		ID:           idx.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		StoreURL:     strings.TrimSpace(in.StoreURL),
		MonthlySales: strings.TrimSpace(in.MonthlySales),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Requests().CreateRequest(ctx, req); err != nil {
		log.Error("failed to create consultation request", slog.Any("error", err))
		return domain.ConsultationRequest{}, err
	}

	// 3. Fire-and-forget notification. Runs off the request context so a
	// finished HTTP request cannot cancel the send.
	if s.Mailer.Configured() && s.NotifyEmail != "" {
		go s.notify(req)
	}

	log.Info("consultation request recorded", slog.String("request_id", req.ID))
	return req, nil
}

func (s *RequestService) notify(req domain.ConsultationRequest) {
	log := s.logger().With(slog.String("request_id", req.ID))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body, err := mailx.RenderRequestNotification(mailx.RequestNotification{
		Name:         req.Name,
		Phone:        req.Phone,
		StoreURL:     req.StoreURL,
		MonthlySales: req.MonthlySales,
		ReceivedAt:   req.CreatedAt.Format(time.RFC1123),
		Year:         req.CreatedAt.Year(),
	})
	if err != nil {
		log.Error("failed to render notification email", slog.Any("error", err))
		return
	}

	if err := s.Mailer.Send(ctx, s.NotifyEmail, mailx.RequestSubject, body); err != nil {
		log.Error("failed to send notification email", slog.Any("error", err))
		return
	}
	log.Debug("operator notified")
}

func (s *RequestService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// GetRequest returns one consultation request by id.
func (s *RequestService) GetRequest(ctx context.Context, id string) (domain.ConsultationRequest, error) {
	req, err := s.Store.Requests().GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ConsultationRequest{}, ErrNotFound
		}
		return domain.ConsultationRequest{}, err
	}
	return req, nil
}

// ListRequests returns all consultation requests, newest first.
func (s *RequestService) ListRequests(ctx context.Context) ([]domain.ConsultationRequest, error) {
	return s.Store.Requests().ListRequests(ctx)
}

// DeleteRequest removes a consultation request by id.
func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Requests().DeleteRequest(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to delete consultation request",
			slog.String("request_id", id),
			slog.Any("error", err),
		)
		return err
	}
	log.Info("consultation request deleted", slog.String("request_id", id))
	return nil
}
