package repository

import (
	"context"
	"fmt"

	"jobboard-bff/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GeneratedResumeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGeneratedResumeRepository(db *pgxpool.Pool, logger *zap.Logger) *GeneratedResumeRepository {
	return &GeneratedResumeRepository{
		db:     db,
		logger: logger,
	}
}

func createGeneratedResumeQuery(resume *models.GeneratedResume) squirrel.InsertBuilder {
	return psql.Insert("generated_resumes").
		Columns("id", "candidate_id", "job_id", "ats_score", "resume_title", "resume_content",
			"resume_format", "file_url", "generation_prompt", "generation_metadata", "created_at").
		Values(resume.ID, resume.CandidateID, resume.JobID, resume.ATSScore, resume.ResumeTitle, resume.ResumeContent,
			string(resume.ResumeFormat), resume.FileURL, resume.GenerationPrompt, resume.GenerationMetadata, resume.CreatedAt)
}

func (r *GeneratedResumeRepository) Create(ctx context.Context, resume *models.GeneratedResume) error {
	sql, args, err := createGeneratedResumeQuery(resume).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert generated resume: %w", err)
	}
	return nil
}
