package repository

import (
	"context"
	"fmt"
	"strings"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const scrapingConfigTable = "scraping_config"

var scrapingConfigColumns = []string{
	"id", "name", "search_term", "location", "sites", "results_wanted", "hours_old",
	"is_remote", "job_type", "country_indeed", "google_search_term", "distance",
	"easy_apply", "linkedin_fetch_description", "linkedin_company_ids",
	"enforce_annual_salary", "description_format", "page_offset", "log_level",
	"is_active", "last_run", "next_run", "created_at", "updated_at",
}

var returningScrapingConfig = "RETURNING " + strings.Join(scrapingConfigColumns, ", ")

type ScrapingConfigRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewScrapingConfigRepository(db *pgxpool.Pool, logger *zap.Logger) *ScrapingConfigRepository {
	return &ScrapingConfigRepository{
		db:     db,
		logger: logger,
	}
}

func listScrapingConfigsQuery() squirrel.SelectBuilder {
	return psql.Select(scrapingConfigColumns...).
		From(scrapingConfigTable).
		OrderBy("created_at DESC")
}

func getScrapingConfigQuery(id uuid.UUID) squirrel.SelectBuilder {
	return psql.Select(scrapingConfigColumns...).
		From(scrapingConfigTable).
		Where(squirrel.Eq{"id": id})
}

func createScrapingConfigQuery(req *dto.CreateScrapingConfigRequest) squirrel.InsertBuilder {
	values := map[string]interface{}{
		"name":                       req.Name,
		"search_term":                req.SearchTerm,
		"location":                   req.Location,
		"sites":                      req.Sites,
		"results_wanted":             req.ResultsWanted,
		"hours_old":                  req.HoursOld,
		"is_remote":                  req.IsRemote,
		"job_type":                   req.JobType,
		"country_indeed":             req.CountryIndeed,
		"google_search_term":         req.GoogleSearchTerm,
		"distance":                   req.Distance,
		"easy_apply":                 req.EasyApply,
		"linkedin_fetch_description": req.LinkedinFetchDescription,
		"linkedin_company_ids":       req.LinkedinCompanyIDs,
		"enforce_annual_salary":      req.EnforceAnnualSalary,
		"page_offset":                req.PageOffset,
		"log_level":                  req.LogLevel,
	}
	// leave the column defaults in place when these are not sent
	if req.DescriptionFormat != "" {
		values["description_format"] = req.DescriptionFormat
	}
	if req.IsActive != nil {
		values["is_active"] = *req.IsActive
	}

	return psql.Insert(scrapingConfigTable).
		SetMap(values).
		Suffix(returningScrapingConfig)
}

func updateScrapingConfigQuery(id uuid.UUID, changes map[string]interface{}) squirrel.UpdateBuilder {
	return psql.Update(scrapingConfigTable).
		SetMap(changes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningScrapingConfig)
}

func deleteScrapingConfigQuery(id uuid.UUID) squirrel.DeleteBuilder {
	return psql.Delete(scrapingConfigTable).Where(squirrel.Eq{"id": id})
}

// List returns every config, newest first.
func (r *ScrapingConfigRepository) List(ctx context.Context) ([]*models.ScrapingConfig, error) {
	sql, args, err := listScrapingConfigsQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list scraping configs: %w", err)
	}

	configs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.ScrapingConfig])
	if err != nil {
		return nil, fmt.Errorf("scan scraping configs: %w", err)
	}
	return configs, nil
}

func (r *ScrapingConfigRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScrapingConfig, error) {
	sql, args, err := getScrapingConfigQuery(id).ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryOne(ctx, sql, args)
}

func (r *ScrapingConfigRepository) Create(ctx context.Context, req *dto.CreateScrapingConfigRequest) (*models.ScrapingConfig, error) {
	sql, args, err := createScrapingConfigQuery(req).ToSql()
	if err != nil {
		return nil, err
	}

	cfg, err := r.queryOne(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Scraping config created", zap.String("id", cfg.ID.String()), zap.String("name", cfg.Name))
	return cfg, nil
}

// Update writes only the given columns. With no changes it returns the stored row.
func (r *ScrapingConfigRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.ScrapingConfig, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := updateScrapingConfigQuery(id, changes).ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryOne(ctx, sql, args)
}

func (r *ScrapingConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := deleteScrapingConfigQuery(id).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete scraping config %s: %w", id, err)
	}
	r.logger.Info("Scraping config deleted", zap.String("id", id.String()), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

func (r *ScrapingConfigRepository) queryOne(ctx context.Context, sql string, args []interface{}) (*models.ScrapingConfig, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	cfg, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.ScrapingConfig])
	if err != nil {
		return nil, notFound(err)
	}
	return cfg, nil
}
