package watchapi

// Mode is a display mode of the model viewer.
type Mode string

// Display modes.
const (
	Mode3D Mode = "3D"
	ModeAR Mode = "AR"
)

// Toggle returns the other display mode. Anything that is not Mode3D
// toggles to Mode3D.
func (m Mode) Toggle() Mode {
	if m == Mode3D {
		return ModeAR
	}
	return Mode3D
}

// ModeStatus reports which display mode toggles are marked active.
type ModeStatus struct {
	Mode3D bool `json:"mode_3d"`
	ModeAR bool `json:"mode_ar"`
}

// Current returns Mode3D when the 3D toggle is active and ModeAR otherwise.
func (s ModeStatus) Current() Mode {
	if s.Mode3D {
		return Mode3D
	}
	return ModeAR
}
