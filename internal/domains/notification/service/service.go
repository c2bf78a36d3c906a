package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/mail"
	"inn/infras/otel"
	bookingDto "inn/internal/domains/booking/model/dto"
	"inn/internal/domains/notification/model"
	"inn/internal/domains/notification/model/dto"
	"inn/internal/domains/notification/repository"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

type Notification interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	HandleBookingEvent(ctx context.Context, event bookingDto.BookingEvent) error
}

type serviceImpl struct {
	repo   repository.Notification
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, err
	}

	notifications, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, err
	}

	res.FromModels(notifications, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return total, err
	}

	return total, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check notification existence")

		return err
	}

	if !exist {
		log.Error().Msg("notification not found")

		return failure.NotFound("notification not found")
	}

	updatedFields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check notification existence")

		return err
	}

	if !exist {
		log.Error().Msg("notification not found")

		return failure.NotFound("notification not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete notification")

		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// HandleBookingEvent stores a notification row for a booking lifecycle
// event and emails the guest when an address is present.
func (s *serviceImpl) HandleBookingEvent(ctx context.Context, event bookingDto.BookingEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	kind, title, body := composeBookingMessage(event)

	notification := model.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Body:      body,
		BookingID: event.BookingID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemUser,
			ModifiedBy: constant.SystemUser,
		},
	}

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to store notification")

		return err
	}

	if event.GuestEmail == constant.Empty {
		return nil
	}

	if err := s.mailer.Send(ctx, event.GuestEmail, title, body); err != nil {
		log.Error().Err(err).Str("to", event.GuestEmail).Msg("failed to email guest")
	}

	return nil
}

func composeBookingMessage(event bookingDto.BookingEvent) (kind, title, body string) {
	switch event.Event {
	case "check-in":
		kind = model.KindBookingCheckedIn
		title = "Booking checked in"
		body = fmt.Sprintf("<p>Hello %s,</p><p>Welcome! You are now checked in. Your outstanding balance is %.2f.</p>", event.GuestName, event.Balance)
	case "check-out":
		kind = model.KindBookingCheckedOut
		title = "Booking checked out"
		body = fmt.Sprintf("<p>Hello %s,</p><p>Thank you for staying with us. Your booking is settled at a total of %.2f.</p>", event.GuestName, event.Total)
	case "cancel":
		kind = model.KindBookingCancelled
		title = "Booking cancelled"
		body = fmt.Sprintf("<p>Hello %s,</p><p>Your booking has been cancelled.</p>", event.GuestName)
	default:
		kind = model.KindBookingCreated
		title = "Booking confirmed"
		body = fmt.Sprintf("<p>Hello %s,</p><p>Your booking is confirmed. Estimated total: %.2f.</p>", event.GuestName, event.Total)
	}

	return kind, title, body
}
