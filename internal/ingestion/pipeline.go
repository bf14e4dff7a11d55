package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"contexta/internal/storage"
	"contexta/internal/textproc"
	"contexta/internal/vectorstore"
)

// Embedder turns texts into dense vectors.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Pipeline runs the full ingestion flow: extraction, chunking, keyword
// generation, embedding, and persistence into both stores. The vector
// index is written before the relational store so that a failed batch
// never leaves searchable chunks without vectors.
type Pipeline struct {
	chunker     *Chunker
	keywords    *KeywordGenerator
	embedder    Embedder
	vectors     vectorstore.VectorStore
	chunks      storage.ChunkStore
	ocr         OCRClient
	collection  string
	defaultPage int
	logger      *slog.Logger
}

// NewPipeline wires an ingestion pipeline. ocr may be nil when image
// ingestion is not configured. defaultPage is the page number assigned to
// chunks whose source has no intrinsic pagination, such as OCR text.
func NewPipeline(
	chunker *Chunker,
	keywords *KeywordGenerator,
	embedder Embedder,
	vectors vectorstore.VectorStore,
	chunks storage.ChunkStore,
	ocr OCRClient,
	collection string,
	defaultPage int,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		chunker:     chunker,
		keywords:    keywords,
		embedder:    embedder,
		vectors:     vectors,
		chunks:      chunks,
		ocr:         ocr,
		collection:  collection,
		defaultPage: defaultPage,
		logger:      logger,
	}
}

// IngestDocument extracts, chunks, and persists the document at path.
// Returns the number of chunks created. A document whose pages all
// normalize to empty text yields zero chunks and no error.
func (p *Pipeline) IngestDocument(ctx context.Context, path string) (int, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return 0, fmt.Errorf("extraction failed: %w", err)
	}

	var records []*storage.ChunkRecord
	for _, page := range pages {
		text := textproc.Normalize(page.Text)
		if text == "" {
			continue
		}

		keywords, questions := p.keywords.Generate(ctx, text)

		for _, piece := range p.chunker.ChunkText(text) {
			records = append(records, &storage.ChunkRecord{
				ID:               uuid.NewString(),
				SourceType:       storage.SourceTypeDocument,
				Content:          piece,
				PageNumber:       page.Number,
				Keywords:         keywords,
				TypicalQuestions: questions,
			})
		}
	}

	return p.persist(ctx, records)
}

// IngestImage runs OCR on the image at path and persists the recognized
// text. Unreadable images yield zero chunks and no error.
func (p *Pipeline) IngestImage(ctx context.Context, path string) (int, error) {
	if p.ocr == nil {
		return 0, fmt.Errorf("image ingestion is not configured")
	}

	raw, err := p.ocr.RecognizeFile(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("OCR failed: %w", err)
	}

	text := NormalizeOCRText(raw)
	if !OCRFeasible(text) {
		p.logger.InfoContext(ctx, "image text not readable enough to ingest", "path", path)
		return 0, nil
	}

	var records []*storage.ChunkRecord
	for _, piece := range p.chunker.ChunkText(text) {
		records = append(records, &storage.ChunkRecord{
			ID:         uuid.NewString(),
			SourceType: storage.SourceTypeImage,
			Content:    piece,
			PageNumber: p.defaultPage,
		})
	}

	return p.persist(ctx, records)
}

// persist embeds the records and writes them to the vector index and
// the chunk store.
func (p *Pipeline) persist(ctx context.Context, records []*storage.ChunkRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	contents := make([]string, len(records))
	for i, rec := range records {
		contents[i] = rec.Content
	}

	vectors, err := p.embedder.EmbedTexts(ctx, contents)
	if err != nil {
		return 0, fmt.Errorf("embedding failed: %w", err)
	}

	points := make([]vectorstore.Point, len(records))
	for i, rec := range records {
		points[i] = vectorstore.Point{
			ID:  rec.ID,
			Vec: vectors[i],
			Meta: map[string]any{
				"source_type": rec.SourceType,
				"page_number": rec.PageNumber,
			},
		}
	}

	if err := p.vectors.Upsert(ctx, p.collection, points); err != nil {
		return 0, fmt.Errorf("vector upsert failed: %w", err)
	}

	count, err := p.chunks.InsertBatch(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("chunk insert failed: %w", err)
	}

	p.logger.InfoContext(ctx, "ingested chunks",
		"count", count,
		"source_type", records[0].SourceType,
	)
	return count, nil
}

// DeleteSource removes all chunks of sourceType from both stores.
// Returns the number of rows removed from the chunk store.
func (p *Pipeline) DeleteSource(ctx context.Context, sourceType string) (int64, error) {
	if err := p.vectors.DeleteBySourceType(ctx, p.collection, sourceType); err != nil {
		return 0, fmt.Errorf("vector delete failed: %w", err)
	}
	deleted, err := p.chunks.DeleteBySourceType(ctx, sourceType)
	if err != nil {
		return 0, fmt.Errorf("chunk delete failed: %w", err)
	}
	return deleted, nil
}
