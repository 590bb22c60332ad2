package legalmind

// Models accepted by the analysis service. Unknown identifiers fall back to
// the flash model, matching the service's own behavior.
const (
	ModelPro   = "gemini-1.5-pro"
	ModelFlash = "gemini-1.5-flash"

	DefaultModel = ModelFlash
)

// AllowedModels lists the model identifiers the service recognizes.
var AllowedModels = []string{ModelPro, ModelFlash}

// NormalizeModel maps an arbitrary model identifier to an allowed one.
func NormalizeModel(model string) string {
	for _, m := range AllowedModels {
		if model == m {
			return m
		}
	}
	return DefaultModel
}

// AnalysisResult is the outcome of analyzing one document. It is also the
// JSON shape persisted in the saved-view slot.
type AnalysisResult struct {
	Filename string `json:"filename"`
	Summary  string `json:"summary"`
	FullText string `json:"full_text,omitempty"`
}

// simplifyResponse is the success payload of POST /simplify.
type simplifyResponse struct {
	DocumentText string `json:"document_text"`
	Summary      string `json:"summary"`
}

// askResponse is the success payload of POST /ask.
type askResponse struct {
	Answer string `json:"answer"`
}

// errorResponse is the failure payload of both endpoints.
type errorResponse struct {
	Error string `json:"error"`
}
