// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/pkg/mailer"
	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/internal/websocket"
	"schoolhub-be/pkg/events"
	pktNats "schoolhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains menu change events from the in-process bus.
// For each event it pushes a refresh to the affected school's connected
// staff, mirrors the event to NATS for other instances, and on a fresh
// grant emails the school admin.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	hub            *websocket.Hub
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		hub:            hub,
		eventPublisher: eventPublisher,
		emailService:   emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishMenuChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal menu change message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Menu changed for school %s (%s)", payload.SchoolId, payload.Change)

	// Push a refresh signal; clients re-fetch the menu rather than
	// patching it from the event.
	wsPayload, _ := json.Marshal(map[string]interface{}{
		"type": "menu.refresh",
		"data": map[string]interface{}{
			"feature_key": payload.FeatureKey,
			"change":      payload.Change,
		},
	})
	if cs.hub != nil {
		cs.hub.BroadcastToSchool(payload.SchoolId, wsPayload)
	}

	if cs.eventPublisher != nil {
		evt := events.NewMenuChangedEvent(payload.SchoolId, payload.FeatureId, payload.FeatureKey, payload.Change)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to mirror menu change to NATS: %v", err)
		}
	}

	if payload.Change == events.MenuChangeEntitlementGranted {
		cs.notifyGrant(ctx, payload)
	}

	msg.Ack()
}

// MenuRefreshTarget is the slice of the websocket hub the NATS bridge
// needs: local delivery only, never re-mirroring.
type MenuRefreshTarget interface {
	DeliverLocal(schoolID uuid.UUID, message []byte)
}

// NewMenuRefreshBridge returns the handler for menu change events
// mirrored through NATS by other instances. It pushes the same refresh
// signal processMessage pushes, but only to this instance's connections.
func NewMenuRefreshBridge(hub MenuRefreshTarget) pktNats.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		data := event.Payload()

		rawSchoolId, _ := data["school_id"].(string)
		schoolId, err := uuid.Parse(rawSchoolId)
		if err != nil {
			// A malformed event never gets better on redelivery.
			log.Printf("[ERROR] Dropping menu change event with bad school_id %q", rawSchoolId)
			return nil
		}

		featureKey, _ := data["feature_key"].(string)
		change, _ := data["change"].(string)

		wsPayload, _ := json.Marshal(map[string]interface{}{
			"type": "menu.refresh",
			"data": map[string]interface{}{
				"feature_key": featureKey,
				"change":      change,
			},
		})
		hub.DeliverLocal(schoolId, wsPayload)
		return nil
	}
}

func (cs *consumerService) notifyGrant(ctx context.Context, payload dto.PublishMenuChangedMessage) {
	if cs.emailService == nil {
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	school, err := uow.SchoolRepository().FindOne(ctx, specification.ByID{ID: payload.SchoolId})
	if err != nil || school == nil {
		log.Printf("[WARN] Grant notification skipped, school %s not found", payload.SchoolId)
		return
	}

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: payload.FeatureId})
	if err != nil || feature == nil {
		log.Printf("[WARN] Grant notification skipped, feature %s not found", payload.FeatureId)
		return
	}

	go func() {
		if err := cs.emailService.SendFeatureGranted(school.AdminEmail, school.Name, feature.Name); err != nil {
			log.Printf("[ERROR] Failed to send grant email to %s: %v", school.AdminEmail, err)
		}
	}()
}
