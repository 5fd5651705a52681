package capture

// AngleStep is one fixed pose the guided capture flow asks the user to
// shoot. The overlay names the client-side guide image drawn over the
// viewfinder.
type AngleStep struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Overlay string `json:"overlay"`
}

// carAngles is the fixed shooting sequence. It never changes at runtime.
var carAngles = []AngleStep{
	{ID: "front", Label: "Fram", Overlay: "overlays/car-front.png"},
	{ID: "side-driver", Label: "Förarsida", Overlay: "overlays/car-side-driver.png"},
	{ID: "interior", Label: "Interiör", Overlay: "overlays/car-interior.png"},
	{ID: "rear", Label: "Bak", Overlay: "overlays/car-rear.png"},
	{ID: "side", Label: "Sida", Overlay: "overlays/car-rear.png"},
	{ID: "rear-side", Label: "Baksida", Overlay: "overlays/car-rear-angle.png"},
}

// Angles returns the ordered angle sequence
func Angles() []AngleStep {
	steps := make([]AngleStep, len(carAngles))
	copy(steps, carAngles)
	return steps
}

type CreateSessionResponse struct {
	SessionID string      `json:"session_id"`
	Steps     []AngleStep `json:"steps"`
	Current   *AngleStep  `json:"current"`
}

type SessionStatusResponse struct {
	SessionID  string            `json:"session_id"`
	StepIndex  int               `json:"step_index"`
	TotalSteps int               `json:"total_steps"`
	Current    *AngleStep        `json:"current,omitempty"`
	IsLastStep bool              `json:"is_last_step"`
	Captured   map[string]string `json:"captured"`
	Completed  bool              `json:"completed"`
}

type CapturePhotoResponse struct {
	SessionID string            `json:"session_id"`
	Location  string            `json:"location"`
	Completed bool              `json:"completed"`
	Next      *AngleStep        `json:"next,omitempty"`
	Captured  map[string]string `json:"captured,omitempty"`
}

type CompleteSessionResponse struct {
	SessionID string            `json:"session_id"`
	Captured  map[string]string `json:"captured"`
}
