// FILE: pkg/events/menu_events.go
// Typed events emitted when a school's effective menu may have changed.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicMenuChanged = "MENU_CHANGED"

	MenuChangeEntitlementGranted = "entitlement_granted"
	MenuChangeEntitlementToggled = "entitlement_toggled"
	MenuChangeOverrideSaved      = "override_saved"
	MenuChangeOverrideCleared    = "override_cleared"
)

// MenuChangedEvent signals that the resolved menu for one school is no
// longer current. Consumers push a refresh to connected staff clients;
// nothing is cached, so no invalidation beyond the push is needed.
type MenuChangedEvent struct {
	SchoolId   uuid.UUID
	FeatureId  uuid.UUID
	FeatureKey string
	Change     string
	OccurredAt time.Time
}

func NewMenuChangedEvent(schoolId, featureId uuid.UUID, featureKey, change string) MenuChangedEvent {
	return MenuChangedEvent{
		SchoolId:   schoolId,
		FeatureId:  featureId,
		FeatureKey: featureKey,
		Change:     change,
		OccurredAt: time.Now(),
	}
}

func (e MenuChangedEvent) EventType() string {
	return TopicMenuChanged
}

func (e MenuChangedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"school_id":   e.SchoolId.String(),
		"feature_id":  e.FeatureId.String(),
		"feature_key": e.FeatureKey,
		"change":      e.Change,
		"occurred_at": e.OccurredAt,
	}
}

func (e MenuChangedEvent) Timestamp() time.Time {
	return e.OccurredAt
}
