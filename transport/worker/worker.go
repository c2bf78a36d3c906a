package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"inn/config"
	"inn/infras/kafka"
	bookingDto "inn/internal/domains/booking/model/dto"
	notificationService "inn/internal/domains/notification/service"
	"inn/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker consumes booking lifecycle events from Kafka and fans them out to
// the notification service, which persists an inbox entry and emails the
// guest.
type Worker struct {
	Config        *config.Config
	Kafka         kafka.Client
	Notifications notificationService.Notification
}

func New(cfg *config.Config, kafkaClient kafka.Client, notifications notificationService.Notification) *Worker {
	return &Worker{
		Config:        cfg,
		Kafka:         kafkaClient,
		Notifications: notifications,
	}
}

// Run blocks until SIGINT or SIGTERM.
func (w *Worker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go w.consumeBookingEvents(ctx)

	log.Info().Str("topic", constant.TopicBookingEvents).Msg("Worker started consuming booking events")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	received := <-sig

	log.Info().Str("signal", received.String()).Msg("Worker shutting down")
}

func (w *Worker) consumeBookingEvents(ctx context.Context) {
	w.Kafka.Consume(ctx, w.Config.Kafka.ConsumerGroup, constant.TopicBookingEvents, func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[bookingDto.BookingEvent](message)
		if err != nil {
			log.Error().Err(err).Str("key", string(message.Key)).Msg("Failed to decode booking event")

			return
		}

		event, ok := decoded.Value.(bookingDto.BookingEvent)
		if !ok {
			log.Error().Str("key", decoded.Key).Msg("Unexpected booking event payload type")

			return
		}

		err = w.Notifications.HandleBookingEvent(ctx, event)
		if err != nil {
			log.Error().Err(err).Str("booking_id", event.BookingID).Msg("Failed to handle booking event")
		}
	})
}
