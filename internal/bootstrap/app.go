package bootstrap

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/llm"
	"interview-backend/internal/llm/bedrock"
	openai "interview-backend/internal/llm/openai"
	"interview-backend/internal/questions"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/server"
	"interview-backend/internal/shared/storage/object"
	localstore "interview-backend/internal/shared/storage/object/local"
	s3store "interview-backend/internal/shared/storage/object/s3"
	"interview-backend/internal/uploads"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Store            object.ObjectStore
	LLM              llm.Client
	QuestionsService *questions.Service
	QuestionsHandler *questions.Handler
	UploadsHandler   *uploads.Handler
}

// Deps allows callers to substitute external clients, mainly for tests.
type Deps struct {
	Store object.ObjectStore
	LLM   llm.Client
}

// Build prepares all dependencies and the router from configuration.
func Build(cfg config.Config) (*App, error) {
	return BuildWith(cfg, Deps{})
}

// BuildWith is Build with dependency overrides.
func BuildWith(cfg config.Config, deps Deps) (*App, error) {
	ctx := context.Background()

	store := deps.Store
	if store == nil {
		var err error
		store, err = buildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	llmClient := deps.LLM
	if llmClient == nil {
		var err error
		llmClient, err = buildLLM(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	svc := &questions.Service{Store: store, LLM: llmClient}
	handler := questions.NewHandler(svc)

	features := []server.Registrar{handler}

	var uploadsHandler *uploads.Handler
	if cfg.UploadsBucket != "" {
		var err error
		uploadsHandler, err = uploads.New(ctx, cfg.AWSRegion, cfg.UploadsBucket, cfg.UploadsPrefix)
		if err != nil {
			return nil, err
		}
		features = append(features, uploadsHandler)
	} else {
		log.Printf("UPLOADS_S3_BUCKET not set, presign endpoint disabled")
	}

	return &App{
		Config:           cfg,
		Router:           server.NewRouter(cfg, features...),
		Store:            store,
		LLM:              llmClient,
		QuestionsService: svc,
		QuestionsHandler: handler,
		UploadsHandler:   uploadsHandler,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	}
	return localstore.New(cfg.LocalStoreDir), nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "openai" {
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	}
	return bedrock.New(ctx, cfg.LLMModel)
}
