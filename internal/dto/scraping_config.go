package dto

type CreateScrapingConfigRequest struct {
	Name                     string   `json:"name" validate:"required"`
	SearchTerm               string   `json:"search_term" validate:"required"`
	Location                 string   `json:"location" validate:"required"`
	Sites                    []string `json:"sites" validate:"required"`
	ResultsWanted            int      `json:"results_wanted" validate:"required"`
	HoursOld                 *int     `json:"hours_old,omitempty"`
	IsRemote                 bool     `json:"is_remote"`
	JobType                  *string  `json:"job_type,omitempty"`
	CountryIndeed            *string  `json:"country_indeed,omitempty"`
	GoogleSearchTerm         *string  `json:"google_search_term,omitempty"`
	Distance                 *int     `json:"distance,omitempty"`
	EasyApply                bool     `json:"easy_apply"`
	LinkedinFetchDescription bool     `json:"linkedin_fetch_description"`
	LinkedinCompanyIDs       []string `json:"linkedin_company_ids,omitempty"`
	EnforceAnnualSalary      bool     `json:"enforce_annual_salary"`
	DescriptionFormat        string   `json:"description_format,omitempty"`
	PageOffset               *int     `json:"page_offset,omitempty"`
	LogLevel                 int      `json:"log_level"`
	IsActive                 *bool    `json:"is_active,omitempty"`
}

// UpdateScrapingConfigRequest is a partial update: nil fields are left as stored.
// id and created_at are not updatable and are ignored when sent.
type UpdateScrapingConfigRequest struct {
	Name                     *string   `json:"name,omitempty"`
	SearchTerm               *string   `json:"search_term,omitempty"`
	Location                 *string   `json:"location,omitempty"`
	Sites                    *[]string `json:"sites,omitempty"`
	ResultsWanted            *int      `json:"results_wanted,omitempty"`
	HoursOld                 *int      `json:"hours_old,omitempty"`
	IsRemote                 *bool     `json:"is_remote,omitempty"`
	JobType                  *string   `json:"job_type,omitempty"`
	CountryIndeed            *string   `json:"country_indeed,omitempty"`
	GoogleSearchTerm         *string   `json:"google_search_term,omitempty"`
	Distance                 *int      `json:"distance,omitempty"`
	EasyApply                *bool     `json:"easy_apply,omitempty"`
	LinkedinFetchDescription *bool     `json:"linkedin_fetch_description,omitempty"`
	LinkedinCompanyIDs       *[]string `json:"linkedin_company_ids,omitempty"`
	EnforceAnnualSalary      *bool     `json:"enforce_annual_salary,omitempty"`
	DescriptionFormat        *string   `json:"description_format,omitempty"`
	PageOffset               *int      `json:"page_offset,omitempty"`
	LogLevel                 *int      `json:"log_level,omitempty"`
	IsActive                 *bool     `json:"is_active,omitempty"`
}

// Changes returns the column -> value pairs to write.
func (r *UpdateScrapingConfigRequest) Changes() map[string]any {
	changes := map[string]any{}
	set := func(column string, isSet bool, value any) {
		if isSet {
			changes[column] = value
		}
	}
	set("name", r.Name != nil, deref(r.Name))
	set("search_term", r.SearchTerm != nil, deref(r.SearchTerm))
	set("location", r.Location != nil, deref(r.Location))
	set("sites", r.Sites != nil, deref(r.Sites))
	set("results_wanted", r.ResultsWanted != nil, deref(r.ResultsWanted))
	set("hours_old", r.HoursOld != nil, deref(r.HoursOld))
	set("is_remote", r.IsRemote != nil, deref(r.IsRemote))
	set("job_type", r.JobType != nil, deref(r.JobType))
	set("country_indeed", r.CountryIndeed != nil, deref(r.CountryIndeed))
	set("google_search_term", r.GoogleSearchTerm != nil, deref(r.GoogleSearchTerm))
	set("distance", r.Distance != nil, deref(r.Distance))
	set("easy_apply", r.EasyApply != nil, deref(r.EasyApply))
	set("linkedin_fetch_description", r.LinkedinFetchDescription != nil, deref(r.LinkedinFetchDescription))
	set("linkedin_company_ids", r.LinkedinCompanyIDs != nil, deref(r.LinkedinCompanyIDs))
	set("enforce_annual_salary", r.EnforceAnnualSalary != nil, deref(r.EnforceAnnualSalary))
	set("description_format", r.DescriptionFormat != nil, deref(r.DescriptionFormat))
	set("page_offset", r.PageOffset != nil, deref(r.PageOffset))
	set("log_level", r.LogLevel != nil, deref(r.LogLevel))
	set("is_active", r.IsActive != nil, deref(r.IsActive))
	return changes
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
