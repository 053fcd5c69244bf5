package service

import (
	"context"
	"encoding/json"
	"time"

	"amozeshgah/internal/model"
	"amozeshgah/internal/pubsub"
	"amozeshgah/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	PurchaseRecordedEventType = "purchase.recorded"
	publishTimeout            = 5 * time.Second
)

// PurchaseRecordedEvent is published after a purchase row was inserted.
type PurchaseRecordedEvent struct {
	Type       string    `json:"type"`
	PurchaseID string    `json:"purchase_id"`
	UserID     string    `json:"user_id"`
	CourseID   string    `json:"course_id"`
	Amount     float64   `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}

type PurchaseService interface {
	// Purchase records that userID bought courseID for amount. Payment status,
	// method and transaction id are left to the database.
	Purchase(ctx context.Context, userID, courseID string, amount float64) (*model.Purchase, error)
}

type purchaseService struct {
	repo      repository.PurchaseRepository
	publisher pubsub.Publisher
	topic     string
	newID     func() string
	now       func() time.Time
	logger    zerolog.Logger
}

func NewPurchaseService(repo repository.PurchaseRepository, publisher pubsub.Publisher, topic string, logger zerolog.Logger) PurchaseService {
	return &purchaseService{
		repo:      repo,
		publisher: publisher,
		topic:     topic,
		newID:     uuid.NewString,
		now:       time.Now,
		logger:    logger.With().Str("service", "PurchaseService").Logger(),
	}
}

func (s *purchaseService) Purchase(ctx context.Context, userID, courseID string, amount float64) (*model.Purchase, error) {
	p := &model.Purchase{
		ID:       s.newID(),
		UserID:   userID,
		CourseID: courseID,
		Amount:   amount,
	}
	if err := s.repo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	s.publishRecorded(ctx, p)
	return p, nil
}

// publishRecorded is best effort: the row is already committed, so failures
// are only logged.
func (s *purchaseService) publishRecorded(ctx context.Context, p *model.Purchase) {
	if s.topic == "" {
		return
	}
	payload, err := json.Marshal(PurchaseRecordedEvent{
		Type:       PurchaseRecordedEventType,
		PurchaseID: p.ID,
		UserID:     p.UserID,
		CourseID:   p.CourseID,
		Amount:     p.Amount,
		RecordedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("purchase_id", p.ID).Msg("Failed to encode purchase event")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	msgID, err := s.publisher.Publish(ctx, s.topic, payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("purchase_id", p.ID).Msg("Failed to publish purchase event")
		return
	}
	s.logger.Debug().Str("purchase_id", p.ID).Str("message_id", msgID).Msg("Published purchase event")
}
