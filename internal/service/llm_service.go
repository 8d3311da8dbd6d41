package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard-bff/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const (
	resumeWriterInstruction = "You are an expert resume writer and career coach. Create professional, ATS-optimized resumes that highlight the candidate's most relevant skills and experiences for specific job opportunities."

	generationTemperature = 0.3
)

// Generation is one completed LLM answer.
type Generation struct {
	Content string
	Model   string
}

// LLMService writes resumes with GigaChat.
type LLMService struct {
	client    *gigago.Client
	model     *gigago.GenerativeModel
	modelName string
	logger    *zap.Logger
}

func NewLLMService(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GIGACHAT_API_KEY is not set")
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = resumeWriterInstruction
	model.Temperature = generationTemperature

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))

	return &LLMService{
		client:    client,
		model:     model,
		modelName: cfg.Model,
		logger:    logger,
	}, nil
}

func (s *LLMService) Generate(ctx context.Context, prompt string) (*Generation, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from LLM")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("empty response from LLM")
	}

	s.logger.Info("Resume generated",
		zap.String("model", s.modelName),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("content_length", len(content)),
	)
	return &Generation{Content: content, Model: s.modelName}, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
