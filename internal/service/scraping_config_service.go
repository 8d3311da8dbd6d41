package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScrapingConfigStore interface {
	List(ctx context.Context) ([]*models.ScrapingConfig, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScrapingConfig, error)
	Create(ctx context.Context, req *dto.CreateScrapingConfigRequest) (*models.ScrapingConfig, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.ScrapingConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScrapingConfigService manages the job-board searches the scraper runs.
type ScrapingConfigService struct {
	repo     ScrapingConfigStore
	validate *validator.Validate
	logger   *zap.Logger
}

func NewScrapingConfigService(repo ScrapingConfigStore, logger *zap.Logger) *ScrapingConfigService {
	validate := validator.New()
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ScrapingConfigService{
		repo:     repo,
		validate: validate,
		logger:   logger,
	}
}

func (s *ScrapingConfigService) List(ctx context.Context) ([]*models.ScrapingConfig, error) {
	configs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if configs == nil {
		configs = []*models.ScrapingConfig{}
	}
	return configs, nil
}

func (s *ScrapingConfigService) Get(ctx context.Context, id uuid.UUID) (*models.ScrapingConfig, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ScrapingConfigService) Create(ctx context.Context, req *dto.CreateScrapingConfigRequest) (*models.ScrapingConfig, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, missingField(err)
	}
	return s.repo.Create(ctx, req)
}

func (s *ScrapingConfigService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateScrapingConfigRequest) (*models.ScrapingConfig, error) {
	return s.repo.Update(ctx, id, req.Changes())
}

func (s *ScrapingConfigService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// missingField reports the first failed field, in declaration order.
func missingField(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		field := validationErrors[0].Field()
		return &ValidationError{Field: field, Message: fmt.Sprintf("Missing required field: %s", field)}
	}
	return &ValidationError{Message: err.Error()}
}
