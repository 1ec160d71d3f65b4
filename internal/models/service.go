package models

// ServiceInfo is returned by the root endpoint.
type ServiceInfo struct {
	Service   string            `json:"service" example:"Explain This Camera API"`
	Status    string            `json:"status" example:"running"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

type ModeInfo struct {
	ID          Mode   `json:"id" example:"kid"`
	Name        string `json:"name" example:"👶 Kid Mode"`
	Description string `json:"description" example:"Simple, friendly explanations for children"`
}

type ModesResponse struct {
	Modes []ModeInfo `json:"modes"`
}

var modeInfos = map[Mode]ModeInfo{
	ModeKid: {
		ID:          ModeKid,
		Name:        "👶 Kid Mode",
		Description: "Simple, friendly explanations for children",
	},
	ModeStudent: {
		ID:          ModeStudent,
		Name:        "🎓 Student Mode",
		Description: "Clear educational explanations with examples",
	},
	ModeExpert: {
		ID:          ModeExpert,
		Name:        "🧠 Expert Mode",
		Description: "Precise technical language for specialists",
	},
}

// ModeInfos returns a fresh copy of the mode descriptors in display order.
func ModeInfos() []ModeInfo {
	out := make([]ModeInfo, 0, len(Modes))
	for _, m := range Modes {
		out = append(out, modeInfos[m])
	}
	return out
}
