// FILE: internal/service/consumer_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"

	"schoolhub-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type recordingRefreshTarget struct {
	schoolIds []uuid.UUID
	messages  [][]byte
}

func (r *recordingRefreshTarget) DeliverLocal(schoolID uuid.UUID, message []byte) {
	r.schoolIds = append(r.schoolIds, schoolID)
	r.messages = append(r.messages, message)
}

func TestMenuRefreshBridge(t *testing.T) {
	target := &recordingRefreshTarget{}
	handler := NewMenuRefreshBridge(target)

	schoolId := uuid.New()
	evt := events.NewMenuChangedEvent(schoolId, uuid.New(), "library", events.MenuChangeEntitlementGranted)

	err := handler(context.Background(), evt)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{schoolId}, target.schoolIds)

	var pushed struct {
		Type string `json:"type"`
		Data struct {
			FeatureKey string `json:"feature_key"`
			Change     string `json:"change"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(target.messages[0], &pushed))
	assert.Equal(t, "menu.refresh", pushed.Type)
	assert.Equal(t, "library", pushed.Data.FeatureKey)
	assert.Equal(t, events.MenuChangeEntitlementGranted, pushed.Data.Change)
}

// The bridge reconstructs events from the wire, so a payload without a
// usable school id is dropped and acked, never retried.
func TestMenuRefreshBridgeBadPayload(t *testing.T) {
	target := &recordingRefreshTarget{}
	handler := NewMenuRefreshBridge(target)

	evt := events.BaseEvent{
		Type: events.TopicMenuChanged,
		Data: map[string]interface{}{"school_id": "not-a-uuid"},
	}

	err := handler(context.Background(), evt)
	assert.NoError(t, err)
	assert.Empty(t, target.schoolIds)
}
