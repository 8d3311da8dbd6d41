package dto

type GenerateResumeRequest struct {
	CandidateProfile map[string]any `json:"candidateProfile"`
	JobDescription   map[string]any `json:"jobDescription"`
	ATSScore         float64        `json:"atsScore"`
	ResumeFormat     string         `json:"resumeFormat,omitempty"`
}

type GenerateResumeResponse struct {
	Success            bool           `json:"success"`
	ResumeContent      string         `json:"resumeContent"`
	ResumeTitle        string         `json:"resumeTitle"`
	GenerationMetadata map[string]any `json:"generationMetadata"`
	ResumeID           string         `json:"resumeId"`
	FileURL            string         `json:"fileUrl,omitempty"`
}
