package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	kafkaMocks "inn/infras/kafka/mocks"
	"inn/infras/otel/mocks"
	"inn/internal/domains/booking/lifecycle"
	bookingMocks "inn/internal/domains/booking/mocks"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/service"
	hotelMocks "inn/internal/domains/hotel/mocks"
	roomMocks "inn/internal/domains/room/mocks"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func newBooking(status string) model.Booking {
	return model.Booking{
		ID:            "booking-id",
		RoomID:        "room-id",
		HotelID:       "hotel-id",
		GuestName:     "Jane Guest",
		Email:         "jane@example.com",
		CheckIn:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		PricePerNight: 100,
		PaidAmount:    50,
		Nights:        3,
		TotalAmount:   300,
		Balance:       250,
		Status:        status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user-id",
			ModifiedBy: "test-user-id",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockHotelRepo, cfg, mockCache, mockProducer, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockProducer.EXPECT().SendMessages(gomock.Any(), constant.TopicBookingEvents, gomock.Any()).Return(nil).AnyTimes()

	validReq := dto.CreateBookingRequest{
		RoomID:        "room-id",
		HotelID:       "hotel-id",
		GuestName:     "Jane Guest",
		CheckIn:       "2025-03-10",
		CheckOut:      "2025-03-13",
		PricePerNight: 100,
		PaidAmount:    50,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "successful creation derives the stay",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, 3, res.Nights)
				assert.Equal(t, 300.0, res.TotalAmount)
				assert.Equal(t, 250.0, res.Balance)
				assert.Equal(t, string(lifecycle.StatusBooked), res.Status)
			},
		},
		{
			name: "room does not exist",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "room already has an active booking",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				RoomID:    "room-id",
				HotelID:   "hotel-id",
				GuestName: "Jane Guest",
				CheckIn:   "2025-03-13",
				CheckOut:  "2025-03-10",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed date",
			req: dto.CreateBookingRequest{
				RoomID:    "room-id",
				HotelID:   "hotel-id",
				GuestName: "Jane Guest",
				CheckIn:   "13-03-2025",
				CheckOut:  "2025-03-15",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.check != nil {
					tt.check(t, res)
				}
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockHotelRepo, cfg, mockCache, mockProducer, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockProducer.EXPECT().SendMessages(gomock.Any(), constant.TopicBookingEvents, gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name       string
		current    string
		run        func(ctx context.Context) (dto.BookingResponse, error)
		persists   bool
		wantStatus string
		wantErr    bool
	}{
		{
			name:       "check-in from booked",
			current:    string(lifecycle.StatusBooked),
			run:        func(ctx context.Context) (dto.BookingResponse, error) { return svc.CheckIn(ctx, "booking-id") },
			persists:   true,
			wantStatus: string(lifecycle.StatusCheckedIn),
		},
		{
			name:       "check-in from legacy reserved",
			current:    "reserved",
			run:        func(ctx context.Context) (dto.BookingResponse, error) { return svc.CheckIn(ctx, "booking-id") },
			persists:   true,
			wantStatus: string(lifecycle.StatusCheckedIn),
		},
		{
			name:       "check-out from checked_in",
			current:    string(lifecycle.StatusCheckedIn),
			run:        func(ctx context.Context) (dto.BookingResponse, error) { return svc.CheckOut(ctx, "booking-id") },
			persists:   true,
			wantStatus: string(lifecycle.StatusCheckedOut),
		},
		{
			name:       "cancel from booked",
			current:    string(lifecycle.StatusBooked),
			run:        func(ctx context.Context) (dto.BookingResponse, error) { return svc.Cancel(ctx, "booking-id") },
			persists:   true,
			wantStatus: string(lifecycle.StatusCancelled),
		},
		{
			name:    "check-in on cancelled booking conflicts",
			current: string(lifecycle.StatusCancelled),
			run:     func(ctx context.Context) (dto.BookingResponse, error) { return svc.CheckIn(ctx, "booking-id") },
			wantErr: true,
		},
		{
			name:    "check-out without check-in conflicts",
			current: string(lifecycle.StatusBooked),
			run:     func(ctx context.Context) (dto.BookingResponse, error) { return svc.CheckOut(ctx, "booking-id") },
			wantErr: true,
		},
		{
			name:    "cancel after check-out conflicts",
			current: string(lifecycle.StatusCheckedOut),
			run:     func(ctx context.Context) (dto.BookingResponse, error) { return svc.Cancel(ctx, "booking-id") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking(tt.current), nil)

			if tt.persists {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := tt.run(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_CheckOutSettlesBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockHotelRepo, cfg, mockCache, mockProducer, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockProducer.EXPECT().SendMessages(gomock.Any(), constant.TopicBookingEvents, gomock.Any()).Return(nil).AnyTimes()

	booking := newBooking(string(lifecycle.StatusCheckedIn))
	booking.PaidAmount = 120

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, 300.0, fields[model.FieldTotalAmount])
			assert.Equal(t, 300.0, fields[model.FieldPaidAmount])
			assert.Equal(t, 0.0, fields[model.FieldBalance])

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.CheckOut(ctx, "booking-id")

	assert.NoError(t, err)
	assert.Equal(t, string(lifecycle.StatusCheckedOut), res.Status)
	assert.Equal(t, 300.0, res.PaidAmount)
	assert.Equal(t, 0.0, res.Balance)

	time.Sleep(10 * time.Millisecond)
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockHotelRepo, cfg, mockCache, nil, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	newRate := 150.0

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "changing the rate recomputes the totals",
			req:  dto.UpdateBookingRequest{PricePerNight: &newRate},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking(string(lifecycle.StatusBooked)), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 450.0, fields[model.FieldTotalAmount])
						assert.Equal(t, 400.0, fields[model.FieldBalance])

						return nil
					})
			},
		},
		{
			name: "legacy reserved row is rewritten to booked",
			req:  dto.UpdateBookingRequest{GuestName: "New Name"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking("reserved"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, string(lifecycle.StatusBooked), fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "canonical status is not rewritten",
			req:  dto.UpdateBookingRequest{GuestName: "New Name"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking(string(lifecycle.StatusBooked)), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						_, present := fields[model.FieldStatus]
						assert.False(t, present)

						return nil
					})
			},
		},
		{
			name:      "empty update is rejected",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "checked-out booking is read-only",
			req:  dto.UpdateBookingRequest{GuestName: "New Name"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking(string(lifecycle.StatusCheckedOut)), nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled booking is read-only",
			req:  dto.UpdateBookingRequest{GuestName: "New Name"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking(string(lifecycle.StatusCancelled)), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockHotelRepo, cfg, mockCache, nil, mockOtel)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newBooking(string(lifecycle.StatusBooked)), nil)

		res, err := svc.Get(context.Background(), "booking-id")

		assert.NoError(t, err)
		assert.Equal(t, "booking-id", res.ID)

		time.Sleep(10 * time.Millisecond)
	})
}
