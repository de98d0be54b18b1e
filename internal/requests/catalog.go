package requests

// Discriminator names, exactly as OBS-WebSocket sends them on the wire.
const (
	GetVersion             = "GetVersion"
	GetStats               = "GetStats"
	BroadcastCustomEvent   = "BroadcastCustomEvent"
	GetStudioModeEnabled   = "GetStudioModeEnabled"
	SetStudioModeEnabled   = "SetStudioModeEnabled"
	GetCurrentProgramScene = "GetCurrentProgramScene"
	SetCurrentProgramScene = "SetCurrentProgramScene"
	GetCurrentPreviewScene = "GetCurrentPreviewScene"
	SetCurrentPreviewScene = "SetCurrentPreviewScene"
	GetSceneList           = "GetSceneList"
	GetInputList           = "GetInputList"
	GetInputMute           = "GetInputMute"
	SetInputMute           = "SetInputMute"
	ToggleInputMute        = "ToggleInputMute"
	StartStream            = "StartStream"
	StopStream             = "StopStream"
	GetStreamStatus        = "GetStreamStatus"
	StartRecord            = "StartRecord"
	StopRecord             = "StopRecord"
	GetRecordStatus        = "GetRecordStatus"
)

// GetVersionResponse mirrors the shape OBS sends back for GetVersion.
type GetVersionResponse struct {
	ObsVersion            string   `json:"obsVersion"`
	ObsWebSocketVersion   string   `json:"obsWebSocketVersion"`
	RPCVersion            int      `json:"rpcVersion"`
	AvailableRequests     []string `json:"availableRequests"`
	SupportedImageFormats []string `json:"supportedImageFormats"`
	Platform              string   `json:"platform"`
	PlatformDescription   string   `json:"platformDescription"`
}

type GetStatsResponse struct {
	CPUUsage                         float64 `json:"cpuUsage"`
	MemoryUsage                      float64 `json:"memoryUsage"`
	AvailableDiskSpace               float64 `json:"availableDiskSpace"`
	ActiveFPS                        float64 `json:"activeFps"`
	AverageFrameRenderTime           float64 `json:"averageFrameRenderTime"`
	RenderSkippedFrames              int     `json:"renderSkippedFrames"`
	RenderTotalFrames                int     `json:"renderTotalFrames"`
	OutputSkippedFrames              int     `json:"outputSkippedFrames"`
	OutputTotalFrames                int     `json:"outputTotalFrames"`
	WebSocketSessionIncomingMessages int64   `json:"webSocketSessionIncomingMessages"`
	WebSocketSessionOutgoingMessages int64   `json:"webSocketSessionOutgoingMessages"`
}

type GetStudioModeEnabledResponse struct {
	StudioModeEnabled bool `json:"studioModeEnabled"`
}

// SetStudioModeEnabledResponse is empty on success; OBS sends `{}`.
type SetStudioModeEnabledResponse struct{}

type GetCurrentProgramSceneResponse struct {
	SceneName string `json:"sceneName"`
	SceneUUID string `json:"sceneUuid"`
}

type SetCurrentProgramSceneResponse struct{}

type GetCurrentPreviewSceneResponse struct {
	SceneName string `json:"sceneName"`
	SceneUUID string `json:"sceneUuid"`
}

type SetCurrentPreviewSceneResponse struct{}

type SceneListEntry struct {
	SceneName  string `json:"sceneName"`
	SceneUUID  string `json:"sceneUuid"`
	SceneIndex int    `json:"sceneIndex"`
}

type GetSceneListResponse struct {
	CurrentProgramSceneName string           `json:"currentProgramSceneName"`
	CurrentPreviewSceneName string           `json:"currentPreviewSceneName"`
	Scenes                  []SceneListEntry `json:"scenes"`
}

type InputListEntry struct {
	InputName string `json:"inputName"`
	InputUUID string `json:"inputUuid"`
	InputKind string `json:"inputKind"`
}

type GetInputListResponse struct {
	Inputs []InputListEntry `json:"inputs"`
}

type GetInputMuteResponse struct {
	InputMuted bool `json:"inputMuted"`
}

type SetInputMuteResponse struct{}

type ToggleInputMuteResponse struct {
	InputMuted bool `json:"inputMuted"`
}

type StartStreamResponse struct{}
type StopStreamResponse struct{}

type GetStreamStatusResponse struct {
	OutputActive       bool   `json:"outputActive"`
	OutputReconnecting bool   `json:"outputReconnecting"`
	OutputTimecode     string `json:"outputTimecode"`
	OutputDuration     int64  `json:"outputDuration"`
	OutputBytes        int64  `json:"outputBytes"`
}

type StartRecordResponse struct{}
type StopRecordResponse struct {
	OutputPath string `json:"outputPath"`
}

type GetRecordStatusResponse struct {
	OutputActive   bool   `json:"outputActive"`
	OutputPaused   bool   `json:"outputPaused"`
	OutputTimecode string `json:"outputTimecode"`
	OutputDuration int64  `json:"outputDuration"`
	OutputBytes    int64  `json:"outputBytes"`
}

type BroadcastCustomEventResponse struct{}

func init() {
	RegisterTyped[GetVersionResponse](GetVersion)
	RegisterTyped[GetStatsResponse](GetStats)
	RegisterTyped[BroadcastCustomEventResponse](BroadcastCustomEvent)
	RegisterTyped[GetStudioModeEnabledResponse](GetStudioModeEnabled)
	RegisterTyped[SetStudioModeEnabledResponse](SetStudioModeEnabled)
	RegisterTyped[GetCurrentProgramSceneResponse](GetCurrentProgramScene)
	RegisterTyped[SetCurrentProgramSceneResponse](SetCurrentProgramScene)
	RegisterTyped[GetCurrentPreviewSceneResponse](GetCurrentPreviewScene)
	RegisterTyped[SetCurrentPreviewSceneResponse](SetCurrentPreviewScene)
	RegisterTyped[GetSceneListResponse](GetSceneList)
	RegisterTyped[GetInputListResponse](GetInputList)
	RegisterTyped[GetInputMuteResponse](GetInputMute)
	RegisterTyped[SetInputMuteResponse](SetInputMute)
	RegisterTyped[ToggleInputMuteResponse](ToggleInputMute)
	RegisterTyped[StartStreamResponse](StartStream)
	RegisterTyped[StopStreamResponse](StopStream)
	RegisterTyped[GetStreamStatusResponse](GetStreamStatus)
	RegisterTyped[StartRecordResponse](StartRecord)
	RegisterTyped[StopRecordResponse](StopRecord)
	RegisterTyped[GetRecordStatusResponse](GetRecordStatus)
}
