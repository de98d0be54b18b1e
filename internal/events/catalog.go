package events

import "github.com/danmuck/obswire/internal/protocol"

// Discriminator names, exactly as OBS-WebSocket sends them on the wire.
const (
	CurrentProgramSceneChanged = "CurrentProgramSceneChanged"
	CurrentPreviewSceneChanged = "CurrentPreviewSceneChanged"
	SceneListChanged           = "SceneListChanged"
	StudioModeStateChanged     = "StudioModeStateChanged"
	InputMuteStateChanged      = "InputMuteStateChanged"
	StreamStateChanged         = "StreamStateChanged"
	RecordStateChanged         = "RecordStateChanged"
	ExitStarted                = "ExitStarted"
	VendorEvent                = "VendorEvent"
	InputVolumeMeters          = "InputVolumeMeters"
	InputActiveStateChanged    = "InputActiveStateChanged"
	InputShowStateChanged      = "InputShowStateChanged"
	SceneItemTransformChanged  = "SceneItemTransformChanged"
)

type CurrentProgramSceneChangedData struct {
	SceneName string `json:"sceneName"`
	SceneUUID string `json:"sceneUuid"`
}

type CurrentPreviewSceneChangedData struct {
	SceneName string `json:"sceneName"`
	SceneUUID string `json:"sceneUuid"`
}

type SceneListChangedData struct {
	Scenes []map[string]any `json:"scenes"`
}

type StudioModeStateChangedData struct {
	StudioModeEnabled bool `json:"studioModeEnabled"`
}

type InputMuteStateChangedData struct {
	InputName  string `json:"inputName"`
	InputUUID  string `json:"inputUuid"`
	InputMuted bool   `json:"inputMuted"`
}

type StreamStateChangedData struct {
	OutputActive bool   `json:"outputActive"`
	OutputState  string `json:"outputState"`
}

type RecordStateChangedData struct {
	OutputActive bool   `json:"outputActive"`
	OutputState  string `json:"outputState"`
	OutputPath   string `json:"outputPath"`
}

type ExitStartedData struct{}

type VendorEventData struct {
	VendorName string         `json:"vendorName"`
	EventType  string         `json:"eventType"`
	EventData  map[string]any `json:"eventData"`
}

type InputVolumeMetersData struct {
	Inputs []map[string]any `json:"inputs"`
}

type InputActiveStateChangedData struct {
	InputName   string `json:"inputName"`
	InputUUID   string `json:"inputUuid"`
	VideoActive bool   `json:"videoActive"`
}

type InputShowStateChangedData struct {
	InputName    string `json:"inputName"`
	InputUUID    string `json:"inputUuid"`
	VideoShowing bool   `json:"videoShowing"`
}

type SceneItemTransformChangedData struct {
	SceneName          string         `json:"sceneName"`
	SceneUUID          string         `json:"sceneUuid"`
	SceneItemID        int            `json:"sceneItemId"`
	SceneItemTransform map[string]any `json:"sceneItemTransform"`
}

// categories maps each event discriminator to the subscription bucket
// that must be requested during Identify to receive it.
var categories = map[string]protocol.EventSubscription{
	CurrentProgramSceneChanged: protocol.SubscriptionScenes,
	CurrentPreviewSceneChanged: protocol.SubscriptionScenes,
	SceneListChanged:           protocol.SubscriptionScenes,
	StudioModeStateChanged:     protocol.SubscriptionUI,
	InputMuteStateChanged:      protocol.SubscriptionInputs,
	StreamStateChanged:         protocol.SubscriptionOutputs,
	RecordStateChanged:         protocol.SubscriptionOutputs,
	ExitStarted:                protocol.SubscriptionGeneral,
	VendorEvent:                protocol.SubscriptionVendors,
	InputVolumeMeters:          protocol.SubscriptionInputVolumeMeters,
	InputActiveStateChanged:    protocol.SubscriptionInputActiveStateChanged,
	InputShowStateChanged:      protocol.SubscriptionInputShowStateChanged,
	SceneItemTransformChanged:  protocol.SubscriptionSceneItemTransform,
}

// CategoryOf reports which subscription bucket an event type belongs
// to. Unknown event types report protocol.SubscriptionGeneral so that
// callers who haven't taught this package about a new discriminator
// still fall back to the always-on bucket rather than erroring.
func CategoryOf(eventType string) protocol.EventSubscription {
	if c, ok := categories[eventType]; ok {
		return c
	}
	return protocol.SubscriptionGeneral
}

func init() {
	RegisterTyped[CurrentProgramSceneChangedData](CurrentProgramSceneChanged)
	RegisterTyped[CurrentPreviewSceneChangedData](CurrentPreviewSceneChanged)
	RegisterTyped[SceneListChangedData](SceneListChanged)
	RegisterTyped[StudioModeStateChangedData](StudioModeStateChanged)
	RegisterTyped[InputMuteStateChangedData](InputMuteStateChanged)
	RegisterTyped[StreamStateChangedData](StreamStateChanged)
	RegisterTyped[RecordStateChangedData](RecordStateChanged)
	RegisterTyped[ExitStartedData](ExitStarted)
	RegisterTyped[VendorEventData](VendorEvent)
	RegisterTyped[InputVolumeMetersData](InputVolumeMeters)
	RegisterTyped[InputActiveStateChangedData](InputActiveStateChanged)
	RegisterTyped[InputShowStateChangedData](InputShowStateChanged)
	RegisterTyped[SceneItemTransformChangedData](SceneItemTransformChanged)
}
