package main

import (
	"context"
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"contexta/internal/config"
	"contexta/internal/http"
	"contexta/internal/ingestion"
	"contexta/internal/llm"
	"contexta/internal/retrieval"
	"contexta/internal/search"
	"contexta/internal/service"
	"contexta/internal/storage"
	"contexta/internal/vectorstore"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	chunkRepo := storage.NewChunkRepo(db)
	chatRepo := storage.NewChatRepo(db)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize, cfg.LLMTimeout)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// LLM client serves completions, query expansion, and keyword generation
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.LLMTimeout)

	// Ingestion pipeline
	var ocrClient ingestion.OCRClient
	if cfg.OCRBaseURL != "" {
		ocrClient = ingestion.NewHTTPOCRClient(cfg.OCRBaseURL, cfg.LLMTimeout)
		slog.Info("OCR client configured", "base_url", cfg.OCRBaseURL)
	} else {
		slog.Info("OCR not configured, image ingestion disabled")
	}
	pipeline := ingestion.NewPipeline(
		ingestion.NewChunker(cfg.ChunkWindow, cfg.ChunkOverlap),
		ingestion.NewKeywordGenerator(llmClient),
		embedder,
		vectorStore,
		chunkRepo,
		ocrClient,
		cfg.QdrantCollection,
		cfg.DefaultPageNumber,
		logger,
	)

	// Retrieval: weak queries go lexical, strong queries go semantic
	retrievalCfg := retrieval.Config{
		WeakMinTokens:     cfg.WeakMinTokens,
		WeakMinLength:     cfg.WeakMinLength,
		LexicalLimit:      cfg.LexicalLimit,
		SemanticLimit:     cfg.SemanticLimit,
		ScoreThreshold:    cfg.ScoreThreshold,
		DistanceThreshold: cfg.DistanceThreshold,
	}
	router := retrieval.NewRouter(
		retrievalCfg,
		retrieval.NewExpander(llmClient),
		search.NewLexicalSearcher(chunkRepo),
		search.NewVectorSearcher(embedder, vectorStore, chunkRepo, cfg.QdrantCollection),
	)
	assembler := retrieval.NewAssembler(router)
	slog.Info("Retrieval pipeline initialized")

	chatService := service.NewChatService(chatRepo, assembler, llmClient, cfg.HistoryLimit)

	deps := &http.Deps{
		ChatService: chatService,
		Pipeline:    pipeline,
		DB:          db,
		IndexHTML:   indexHTML,
	}
	httpRouter := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, httpRouter); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
