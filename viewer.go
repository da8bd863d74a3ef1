package watchapi

// ViewerConfig holds the rendering parameters of the 3D/AR model viewer.
// Values are copied verbatim from the viewer element's attributes.
type ViewerConfig struct {
	GLBURL                string `json:"glb_url"`
	EnvURL                string `json:"env_url"`
	ToneMapping           string `json:"tone_mapping"`
	ToneMappingExposure   string `json:"tone_mapping_exposure"`
	Category              string `json:"category"`
	MinZoom               string `json:"min_zoom"`
	MaxZoom               string `json:"max_zoom"`
	FOVMultiplier         string `json:"fov_multiplier"`
	InteractionPromptURL  string `json:"interaction_prompt_url"`
	InteractionPromptSize string `json:"interaction_prompt_size"`
}
