package models

// OnboardingData is the candidate profile collected by the multi-step
// onboarding form. Every field is optional; the form validates per step.
type OnboardingData struct {
	FirstName           string       `json:"firstName,omitempty"`
	LastName            string       `json:"lastName,omitempty"`
	Location            string       `json:"location,omitempty"`
	Timezone            string       `json:"timezone,omitempty"`
	Headline            string       `json:"headline,omitempty"`
	ProfessionalSummary string       `json:"professionalSummary,omitempty"`
	Availability        string       `json:"availability,omitempty"`
	Status              string       `json:"status,omitempty"`
	Positions           []string     `json:"positions,omitempty"`
	Seniority           string       `json:"seniority,omitempty"`
	CoreSkills          []string     `json:"coreSkills,omitempty"`
	OtherSkills         []string     `json:"otherSkills,omitempty"`
	WorkEligibility     string       `json:"workEligibility,omitempty"`
	WorkPreference      string       `json:"workPreference,omitempty"`
	WorkingTimezones    []string     `json:"workingTimezones,omitempty"`
	EmploymentType      string       `json:"employmentType,omitempty"`
	ExpectedSalary      string       `json:"expectedSalary,omitempty"`
	SkillsPreference    []string     `json:"skillsPreference,omitempty"`
	Industries          []string     `json:"industries,omitempty"`
	CompanySizes        []string     `json:"companySizes,omitempty"`
	FundingStages       []string     `json:"fundingStages,omitempty"`
	Experiences         []Experience `json:"experiences,omitempty"`
	ProfileImage        string       `json:"profileImage,omitempty"`
}

type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}
