package events

import (
	"encoding/json"
	"testing"

	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/testutil/testlog"
)

func TestLookupKnownEventDecodesData(t *testing.T) {
	testlog.Start(t)

	decode, ok := Lookup(CurrentProgramSceneChanged)
	if !ok {
		t.Fatal("expected CurrentProgramSceneChanged to be registered")
	}
	raw := json.RawMessage(`{"sceneName":"Scene A","sceneUuid":"abc-123"}`)
	got, err := decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, ok := got.(CurrentProgramSceneChangedData)
	if !ok {
		t.Fatalf("got %T, want CurrentProgramSceneChangedData", got)
	}
	if data.SceneName != "Scene A" {
		t.Fatalf("got=%q want=%q", data.SceneName, "Scene A")
	}
}

func TestCategoryOfKnownAndUnknownEvents(t *testing.T) {
	testlog.Start(t)

	if got := CategoryOf(InputVolumeMeters); got != protocol.SubscriptionInputVolumeMeters {
		t.Fatalf("got=%v want=%v", got, protocol.SubscriptionInputVolumeMeters)
	}
	if got := CategoryOf("SomethingNotRegistered"); got != protocol.SubscriptionGeneral {
		t.Fatalf("got=%v want=%v", got, protocol.SubscriptionGeneral)
	}
}
