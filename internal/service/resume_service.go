package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	generatedResumesDir = "generated-resumes"
	jobDescriptionLimit = 1000
)

var (
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrResumeUpload    = errors.New("failed to store resume file")
	ErrResumeSave      = errors.New("failed to save resume record")
)

var nonSlugChars = regexp.MustCompile(`(?i)[^a-z0-9]`)

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (*Generation, error)
}

type GeneratedResumeStore interface {
	Create(ctx context.Context, resume *models.GeneratedResume) error
}

// ResumeService turns a candidate profile and a job posting into a tailored resume.
type ResumeService struct {
	generator   TextGenerator
	repo        GeneratedResumeStore
	uploadDir   string
	minATSScore float64
	logger      *zap.Logger
}

func NewResumeService(generator TextGenerator, repo GeneratedResumeStore, uploadDir string, minATSScore float64, logger *zap.Logger) *ResumeService {
	dir := filepath.Join(uploadDir, generatedResumesDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("Failed to create resume directory", zap.String("dir", dir), zap.Error(err))
	}

	return &ResumeService{
		generator:   generator,
		repo:        repo,
		uploadDir:   uploadDir,
		minATSScore: minATSScore,
		logger:      logger,
	}
}

// Generate checks the ATS score gate, writes the resume with the LLM, stores the
// file under the upload dir and records it. userID is uuid.Nil for anonymous callers.
func (s *ResumeService) Generate(ctx context.Context, userID uuid.UUID, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error) {
	if req.ATSScore < s.minATSScore {
		return nil, &ValidationError{
			Field:   "atsScore",
			Message: fmt.Sprintf("ATS score %s is below the required threshold of %s", formatNumber(req.ATSScore), formatNumber(s.minATSScore)),
		}
	}
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	format := models.ResumeFormatMarkdown
	if req.ResumeFormat != "" {
		format = models.ResumeFormat(req.ResumeFormat)
	}
	switch format {
	case models.ResumeFormatMarkdown, models.ResumeFormatHTML, models.ResumeFormatPDF, models.ResumeFormatDocx:
	default:
		return nil, &ValidationError{Field: "resumeFormat", Message: fmt.Sprintf("Unsupported resume format: %s", req.ResumeFormat)}
	}

	profile := fields(req.CandidateProfile)
	job := fields(req.JobDescription)

	prompt := buildResumePrompt(profile, job, format)
	generation, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate resume: %w", err)
	}

	title := resumeTitle(profile, job)
	metadata := map[string]any{
		"model":               generation.Model,
		"temperature":         generationTemperature,
		"atsScore":            req.ATSScore,
		"jobTitle":            job.str("title", "Unknown"),
		"companyName":         job.str("company_name", "Unknown"),
		"generationTimestamp": time.Now().Unix(),
		"promptLength":        utf8.RuneCountInString(prompt),
	}

	jobID := job.id()
	fileURL, err := s.saveFile(userID, jobID, title, format, generation.Content)
	if err != nil {
		s.logger.Error("Failed to store generated resume", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrResumeUpload, err)
	}

	record := &models.GeneratedResume{
		ID:                 uuid.New(),
		CandidateID:        userID,
		JobID:              jobID,
		ATSScore:           req.ATSScore,
		ResumeTitle:        title,
		ResumeContent:      sanitizeText(generation.Content),
		ResumeFormat:       format,
		FileURL:            fileURL,
		GenerationPrompt:   sanitizeText(prompt),
		GenerationMetadata: metadata,
		CreatedAt:          time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to save generated resume", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrResumeSave, err)
	}

	s.logger.Info("Resume generated",
		zap.String("resume_id", record.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("job_id", jobID),
		zap.String("format", string(format)),
	)

	return &dto.GenerateResumeResponse{
		Success:            true,
		ResumeContent:      generation.Content,
		ResumeTitle:        title,
		GenerationMetadata: metadata,
		ResumeID:           record.ID.String(),
		FileURL:            fileURL,
	}, nil
}

// saveFile writes the resume to <upload>/generated-resumes/<user>/<job>/<slug>.<ext>,
// replacing an earlier file for the same job, and returns its public URL.
func (s *ResumeService) saveFile(userID uuid.UUID, jobID, title string, format models.ResumeFormat, content string) (string, error) {
	rel := path.Join(generatedResumesDir, userID.String(), slug(jobID), slug(title)+"."+string(format))
	dst := filepath.Join(s.uploadDir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return "/uploads/" + rel, nil
}

func slug(s string) string {
	return strings.ToLower(nonSlugChars.ReplaceAllString(s, "_"))
}

// sanitizeText drops byte sequences Postgres refuses in text columns.
func sanitizeText(s string) string {
	return strings.ReplaceAll(strings.ToValidUTF8(s, ""), "\x00", "")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fields reads loosely typed JSON objects sent by the dashboard.
type fields map[string]any

func (f fields) str(key, fallback string) string {
	if v, ok := f[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func (f fields) list(key string) []string {
	raw, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (f fields) number(key string) float64 {
	v, _ := f[key].(float64)
	return v
}

func (f fields) id() string {
	switch v := f["id"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return formatNumber(v)
	}
	return "unknown"
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func resumeTitle(profile, job fields) string {
	return fmt.Sprintf("%s %s - %s at %s",
		profile.str("first_name", "Candidate"),
		profile.str("last_name", ""),
		job.str("title", "Position"),
		job.str("company_name", "Company"),
	)
}

func buildResumePrompt(profile, job fields, format models.ResumeFormat) string {
	var b strings.Builder

	b.WriteString("Create a professional, ATS-optimized resume for the following candidate targeting this specific job opportunity.\n\n")

	b.WriteString("CANDIDATE PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s %s\n", profile.str("first_name", "Candidate"), profile.str("last_name", ""))
	fmt.Fprintf(&b, "- Professional Headline: %s\n", profile.str("headline", "Professional"))
	fmt.Fprintf(&b, "- Seniority Level: %s\n", profile.str("seniority", "mid-level"))
	fmt.Fprintf(&b, "- Years of Experience: %s\n", formatNumber(profile.number("experience_years")))
	fmt.Fprintf(&b, "- Work Preference: %s\n", profile.str("work_preference", "any"))
	fmt.Fprintf(&b, "- Core Skills: %s\n", joinOr(profile.list("core_skills"), "Not specified"))
	fmt.Fprintf(&b, "- Additional Skills: %s\n\n", joinOr(profile.list("other_skills"), "Not specified"))

	sections := []struct{ title, key, missing string }{
		{"CANDIDATE EDUCATION", "education", "Education information not provided"},
		{"CANDIDATE EXPERIENCE", "experience", "Experience information not provided"},
		{"CANDIDATE PROJECTS", "projects", "Project information not provided"},
		{"CANDIDATE ACHIEVEMENTS", "achievements", "Achievement information not provided"},
	}
	for _, sec := range sections {
		fmt.Fprintf(&b, "%s:\n%s\n\n", sec.title, profile.str(sec.key, sec.missing))
	}

	b.WriteString("TARGET JOB OPPORTUNITY:\n")
	fmt.Fprintf(&b, "- Job Title: %s\n", job.str("title", "Position"))
	fmt.Fprintf(&b, "- Company: %s\n", job.str("company_name", "Company"))
	fmt.Fprintf(&b, "- Location: %s\n", job.str("location", ""))
	fmt.Fprintf(&b, "- Job Level: %s\n", job.str("job_level", ""))
	fmt.Fprintf(&b, "- Job Type: %s\n", job.str("job_type", ""))
	fmt.Fprintf(&b, "- Required Skills: %s\n\n", joinOr(job.list("skills"), "Not specified"))

	fmt.Fprintf(&b, "JOB DESCRIPTION:\n%s...\n\n", truncateRunes(job.str("description", ""), jobDescriptionLimit))

	requirements := []string{
		"Format the resume in clean " + formatInstruction(format),
		"Optimize for ATS (Applicant Tracking System) compatibility",
		"Highlight skills and experiences most relevant to this specific job",
		"Use action verbs and quantifiable achievements where possible",
		"Include a compelling professional summary tailored to this role",
		"Organize sections logically: Header, Summary, Experience, Education, Skills, Projects/Achievements",
		"Emphasize transferable skills and relevant experience",
		"Use industry-standard keywords from the job description",
		"Keep the resume concise but comprehensive (1-2 pages when converted to PDF)",
		"Ensure the resume tells a coherent story of why this candidate is perfect for this role",
	}
	switch format {
	case models.ResumeFormatDocx:
		requirements = append(requirements, "Use proper document structure with clear headings and formatting")
	case models.ResumeFormatPDF:
		requirements = append(requirements,
			"Use proper HTML structure with semantic tags (h1, h2, h3, p, ul, li, strong, em)",
			"Include inline CSS styling for professional appearance",
			"Ensure the HTML is print-ready and ATS-friendly",
		)
	}

	b.WriteString("RESUME REQUIREMENTS:\n")
	for i, r := range requirements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	b.WriteString("\nPlease generate a professional resume that maximizes the candidate's chances of getting an interview for this specific position.\n")
	return b.String()
}

func formatInstruction(format models.ResumeFormat) string {
	switch format {
	case models.ResumeFormatDocx:
		return "DOCX format (structured document ready for Word processing)"
	case models.ResumeFormatPDF:
		return "HTML format (ready for PDF conversion)"
	default:
		return "markdown format"
	}
}
