package models

import (
	"time"

	"github.com/google/uuid"
)

// ScrapingConfig describes one scheduled job-board search run by the scraper service.
type ScrapingConfig struct {
	ID                       uuid.UUID  `db:"id" json:"id"`
	Name                     string     `db:"name" json:"name"`
	SearchTerm               string     `db:"search_term" json:"search_term"`
	Location                 string     `db:"location" json:"location"`
	Sites                    []string   `db:"sites" json:"sites"`
	ResultsWanted            int        `db:"results_wanted" json:"results_wanted"`
	HoursOld                 *int       `db:"hours_old" json:"hours_old,omitempty"`
	IsRemote                 bool       `db:"is_remote" json:"is_remote"`
	JobType                  *string    `db:"job_type" json:"job_type,omitempty"`
	CountryIndeed            *string    `db:"country_indeed" json:"country_indeed,omitempty"`
	GoogleSearchTerm         *string    `db:"google_search_term" json:"google_search_term,omitempty"`
	Distance                 *int       `db:"distance" json:"distance,omitempty"`
	EasyApply                bool       `db:"easy_apply" json:"easy_apply"`
	LinkedinFetchDescription bool       `db:"linkedin_fetch_description" json:"linkedin_fetch_description"`
	LinkedinCompanyIDs       []string   `db:"linkedin_company_ids" json:"linkedin_company_ids,omitempty"`
	EnforceAnnualSalary      bool       `db:"enforce_annual_salary" json:"enforce_annual_salary"`
	DescriptionFormat        string     `db:"description_format" json:"description_format"`
	PageOffset               *int       `db:"page_offset" json:"page_offset,omitempty"`
	LogLevel                 int        `db:"log_level" json:"log_level"`
	IsActive                 bool       `db:"is_active" json:"is_active"`
	LastRun                  *time.Time `db:"last_run" json:"last_run,omitempty"`
	NextRun                  *time.Time `db:"next_run" json:"next_run,omitempty"`
	CreatedAt                time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time  `db:"updated_at" json:"updated_at"`
}
