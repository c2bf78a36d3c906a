package booking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inn/infras/otel/mocks"
	"inn/internal/domains/booking/model/dto"
	serviceMocks "inn/internal/domains/booking/service/mocks"
	"inn/internal/handlers/booking"
	"inn/shared/failure"
)

func TestHandler_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := serviceMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	handler := booking.New(mockService, nil, mockOtel)

	created := dto.BookingResponse{
		ID:            "booking-id",
		RoomID:        "room-id",
		HotelID:       "hotel-id",
		GuestName:     "Jane Guest",
		CheckIn:       "2025-03-10",
		CheckOut:      "2025-03-13",
		PricePerNight: 100,
		PaidAmount:    50,
		Nights:        3,
		TotalAmount:   300,
		Balance:       250,
		Status:        "booked",
	}

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func()
		wantStatus int
		wantBody   bool
	}{
		{
			name: "successful creation returns the booking",
			body: map[string]any{
				"room_id":         "room-id",
				"hotel_id":        "hotel-id",
				"guest_name":      "Jane Guest",
				"check_in":        "2025-03-10",
				"check_out":       "2025-03-13",
				"price_per_night": 100,
				"paid_amount":     50,
			},
			setupMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(created, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   true,
		},
		{
			name: "service conflict surfaces as 409",
			body: map[string]any{
				"room_id":    "room-id",
				"hotel_id":   "hotel-id",
				"guest_name": "Jane Guest",
				"check_in":   "2025-03-10",
				"check_out":  "2025-03-13",
			},
			setupMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("room already has an active booking"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing guest name fails validation",
			body: map[string]any{
				"room_id":   "room-id",
				"hotel_id":  "hotel-id",
				"check_in":  "2025-03-10",
				"check_out": "2025-03-13",
			},
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/v1/bookings/", bytes.NewReader(payload))
			rec := httptest.NewRecorder()

			handler.CreateBooking(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody {
				var envelope struct {
					Data dto.BookingResponse `json:"data"`
				}
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

				assert.Equal(t, created.ID, envelope.Data.ID)
				assert.Equal(t, created.Nights, envelope.Data.Nights)
				assert.Equal(t, created.TotalAmount, envelope.Data.TotalAmount)
				assert.Equal(t, created.Balance, envelope.Data.Balance)
				assert.Equal(t, created.Status, envelope.Data.Status)
			}
		})
	}
}
