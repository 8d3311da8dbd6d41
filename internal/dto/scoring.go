package dto

// ATSScoreRequest fields are forwarded as decoded; only presence is checked.
type ATSScoreRequest struct {
	JobDescription any `json:"job_description" swaggertype:"string"`
	UserID         any `json:"user_id" swaggertype:"string"`
}

// BatchATSScoreRequest keeps job_descriptions untyped so a wrong shape can be
// reported as invalid instead of failing the whole body.
type BatchATSScoreRequest struct {
	JobDescriptions any `json:"job_descriptions"`
	UserID          any `json:"user_id" swaggertype:"string"`
}

type ParseResumeRequest struct {
	ResumeText string `json:"resume_text"`
}
