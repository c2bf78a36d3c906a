package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/internal/domains/booking/lifecycle"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	hotelModel "inn/internal/domains/hotel/model"
	hotelRepo "inn/internal/domains/hotel/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	producer  kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	hotelRepo hotelRepo.Hotel,
	cfg *config.Config,
	cache cache.RedisCache,
	producer kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		producer:  producer,
		otel:      otel,
	}
}

// activeBookingFilter matches the single non-terminal booking a room may
// carry. The legacy "reserved" status counts as booked.
func activeBookingFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{string(lifecycle.StatusBooked), "reserved", string(lifecycle.StatusCheckedIn)},
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = lifecycle.ValidateBooking(booking.GuestName, booking.CheckIn, booking.CheckOut); err != nil {
		log.Error().Err(err).Msg("booking failed validation")

		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	occupied, err := s.repo.Exist(ctx, activeBookingFilter(req.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for an active booking")

		return res, fmt.Errorf("failed to check for an active booking: %w", err)
	}

	if occupied {
		return res, failure.Conflict("room already has an active booking") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	s.publishEvent(ctx, booking, "created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	status, _ := lifecycle.ParseStatus(booking.Status)
	if status.IsTerminal() {
		return failure.Conflict(fmt.Sprintf("booking is read-only in status %q", status)) // nolint:wrapcheck
	}

	merged, err := applyUpdate(booking, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking update")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = lifecycle.ValidateBooking(merged.GuestName, merged.CheckIn, merged.CheckOut); err != nil {
		log.Error().Err(err).Msg("booking update failed validation")

		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	// Editing dates, rate, or paid amount must keep the derived columns
	// consistent, so the whole stay is recomputed on every update.
	stay := lifecycle.Recalculate(merged.CheckIn, merged.CheckOut, merged.PricePerNight, merged.PaidAmount)

	updatedFields := shared.TransformFields(req, user)

	updatedFields[model.FieldCheckIn] = merged.CheckIn
	updatedFields[model.FieldCheckOut] = merged.CheckOut
	updatedFields[model.FieldPricePerNight] = merged.PricePerNight
	updatedFields[model.FieldPaidAmount] = merged.PaidAmount
	updatedFields[model.FieldNights] = stay.Nights
	updatedFields[model.FieldTotalAmount] = stay.Total
	updatedFields[model.FieldBalance] = stay.Balance

	// Rows still carrying the legacy "reserved" alias are rewritten to the
	// canonical status on their next successful update.
	if booking.Status != string(status) {
		updatedFields[model.FieldStatus] = string(status)
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, lifecycle.EventCheckIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, lifecycle.EventCheckOut)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, lifecycle.EventCancel)
}

func (s *serviceImpl) transition(ctx context.Context, id string, event lifecycle.Event) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.transition.%s", constant.OtelServiceScopeName, event))
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	current, _ := lifecycle.ParseStatus(booking.Status)

	next, err := lifecycle.Transition(current, event)
	if err != nil {
		var transErr *lifecycle.InvalidTransitionError
		if errors.As(err, &transErr) {
			log.Error().
				Str("booking", id).
				Str("from", string(transErr.From)).
				Str("event", string(transErr.Event)).
				Msg("illegal booking transition requested")

			return res, failure.Conflict(err.Error()) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to transition booking: %w", err)
	}

	booking.Status = string(next)

	updatedFields := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if event == lifecycle.EventCheckOut {
		// Checkout settles the stay in full: the paid amount snaps to the
		// current total and the balance lands at zero.
		stay := lifecycle.Recalculate(booking.CheckIn, booking.CheckOut, booking.PricePerNight, booking.PaidAmount)

		booking.PaidAmount = stay.Total
		booking.Nights = stay.Nights
		booking.TotalAmount = stay.Total
		booking.Balance = 0

		updatedFields[model.FieldPaidAmount] = stay.Total
		updatedFields[model.FieldNights] = stay.Nights
		updatedFields[model.FieldTotalAmount] = stay.Total
		updatedFields[model.FieldBalance] = 0.0
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to persist booking transition")

		return res, fmt.Errorf("failed to persist booking transition: %w", err)
	}

	scope.AddEvent(fmt.Sprintf("booking %s: %s -> %s", id, current, next))

	s.invalidateBooking(ctx, id)
	s.publishEvent(ctx, booking, string(event))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) publishEvent(ctx context.Context, booking model.Booking, event string) {
	if s.producer == nil {
		return
	}

	payload := dto.BookingEvent{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		HotelID:    booking.HotelID,
		GuestName:  booking.GuestName,
		GuestEmail: booking.Email,
		Event:      event,
		Status:     booking.Status,
		Total:      booking.TotalAmount,
		Balance:    booking.Balance,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.producer.SendMessages(c, constant.TopicBookingEvents, kafka.Message{
			Key:   booking.ID,
			Value: payload,
		})
		if err != nil {
			log.Error().Err(err).Str("booking", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func applyUpdate(booking model.Booking, req dto.UpdateBookingRequest) (model.Booking, error) {
	if req.GuestName != "" {
		booking.GuestName = req.GuestName
	}

	if req.Phone != "" {
		booking.Phone = req.Phone
	}

	if req.Email != "" {
		booking.Email = req.Email
	}

	if req.Notes != "" {
		booking.Notes = req.Notes
	}

	if req.CheckIn != "" {
		checkIn, err := time.Parse(constant.CalendarFormat, req.CheckIn)
		if err != nil {
			return booking, err
		}

		booking.CheckIn = checkIn
	}

	if req.CheckOut != "" {
		checkOut, err := time.Parse(constant.CalendarFormat, req.CheckOut)
		if err != nil {
			return booking, err
		}

		booking.CheckOut = checkOut
	}

	if req.PricePerNight != nil {
		booking.PricePerNight = *req.PricePerNight
	}

	if req.PaidAmount != nil {
		booking.PaidAmount = *req.PaidAmount
	}

	return booking, nil
}
