package ingestion_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"contexta/internal/ingestion"
	ingestionmocks "contexta/internal/ingestion/mocks"
	"contexta/internal/storage"
	storagemocks "contexta/internal/storage/mocks"
	"contexta/internal/vectorstore"
	vectormocks "contexta/internal/vectorstore/mocks"
)

const testCollection = "context_chunks"

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{0.1, 0.2, 0.3}
	}
	return vectors, nil
}

func writePipelineFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func newTestPipeline(
	completion *ingestionmocks.MockCompletionClient,
	embedder ingestion.Embedder,
	vectors *vectormocks.MockVectorStore,
	chunks *storagemocks.MockChunkStore,
	ocr ingestion.OCRClient,
) *ingestion.Pipeline {
	return ingestion.NewPipeline(
		ingestion.NewChunker(1200, 200),
		ingestion.NewKeywordGenerator(completion),
		embedder,
		vectors,
		chunks,
		ocr,
		testCollection,
		0,
		nil,
	)
}

func TestIngestDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)

	path := writePipelineFixture(t, "policy.txt",
		"All remote workers must use the VPN. Contractors request access through their manager.")

	completion.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"keywords":["vpn","access"],"questions":["Who can use the VPN?"]}`, nil)

	var upserted []vectorstore.Point
	vectors.EXPECT().
		Upsert(gomock.Any(), testCollection, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
			upserted = points
			return nil
		})

	var inserted []*storage.ChunkRecord
	chunks.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []*storage.ChunkRecord) (int, error) {
			inserted = records
			return len(records), nil
		})

	pipeline := newTestPipeline(completion, &fakeEmbedder{}, vectors, chunks, nil)

	count, err := pipeline.IngestDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 chunk, got %d", count)
	}

	rec := inserted[0]
	if rec.SourceType != storage.SourceTypeDocument {
		t.Errorf("expected source type document, got %q", rec.SourceType)
	}
	if rec.ID == "" {
		t.Error("expected generated chunk ID")
	}
	if len(rec.Keywords) != 2 || rec.Keywords[0] != "vpn" {
		t.Errorf("unexpected keywords: %v", rec.Keywords)
	}
	if len(rec.TypicalQuestions) != 1 {
		t.Errorf("unexpected questions: %v", rec.TypicalQuestions)
	}

	if len(upserted) != 1 {
		t.Fatalf("expected 1 point, got %d", len(upserted))
	}
	if upserted[0].ID != rec.ID {
		t.Errorf("point ID %q does not match chunk ID %q", upserted[0].ID, rec.ID)
	}
	if upserted[0].Meta["source_type"] != storage.SourceTypeDocument {
		t.Errorf("unexpected point metadata: %v", upserted[0].Meta)
	}
}

func TestIngestDocumentEmptyFileYieldsNoChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)

	path := writePipelineFixture(t, "empty.txt", "   \n")

	pipeline := newTestPipeline(completion, &fakeEmbedder{}, vectors, chunks, nil)

	count, err := pipeline.IngestDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 chunks, got %d", count)
	}
}

func TestIngestDocumentEmbeddingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)

	path := writePipelineFixture(t, "policy.txt", "Expense reports are due by the fifth of each month.")

	completion.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"keywords":[],"questions":[]}`, nil)

	pipeline := newTestPipeline(completion, &fakeEmbedder{err: errors.New("model offline")}, vectors, chunks, nil)

	if _, err := pipeline.IngestDocument(context.Background(), path); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestIngestImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)
	ocr := ingestionmocks.NewMockOCRClient(ctrl)

	readable := strings.Repeat("invoice total forty two dollars fifty cents due on receipt\n", 3)
	ocr.EXPECT().
		RecognizeFile(gomock.Any(), "/tmp/receipt.png").
		Return(readable, nil)

	vectors.EXPECT().
		Upsert(gomock.Any(), testCollection, gomock.Any()).
		Return(nil)

	var inserted []*storage.ChunkRecord
	chunks.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []*storage.ChunkRecord) (int, error) {
			inserted = records
			return len(records), nil
		})

	pipeline := newTestPipeline(completion, &fakeEmbedder{}, vectors, chunks, ocr)

	count, err := pipeline.IngestImage(context.Background(), "/tmp/receipt.png")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 chunk, got %d", count)
	}
	if inserted[0].SourceType != storage.SourceTypeImage {
		t.Errorf("expected source type image, got %q", inserted[0].SourceType)
	}
	if len(inserted[0].Keywords) != 0 {
		t.Errorf("image chunks carry no keywords, got %v", inserted[0].Keywords)
	}
	if inserted[0].PageNumber != 0 {
		t.Errorf("expected default page number 0, got %d", inserted[0].PageNumber)
	}
}

func TestIngestImageUnreadableYieldsNoChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)
	ocr := ingestionmocks.NewMockOCRClient(ctrl)

	ocr.EXPECT().
		RecognizeFile(gomock.Any(), "/tmp/noise.png").
		Return("#$% 12 !!", nil)

	pipeline := newTestPipeline(completion, &fakeEmbedder{}, vectors, chunks, ocr)

	count, err := pipeline.IngestImage(context.Background(), "/tmp/noise.png")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 chunks, got %d", count)
	}
}

func TestIngestImageOCRFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)
	ocr := ingestionmocks.NewMockOCRClient(ctrl)

	ocr.EXPECT().
		RecognizeFile(gomock.Any(), "/tmp/receipt.png").
		Return("", errors.New("engine offline"))

	pipeline := newTestPipeline(completion, &fakeEmbedder{}, vectors, chunks, ocr)

	if _, err := pipeline.IngestImage(context.Background(), "/tmp/receipt.png"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDeleteSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := ingestionmocks.NewMockCompletionClient(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	chunks := storagemocks.NewMockChunkStore(ctrl)

	vectors.EXPECT().
		DeleteBySourceType(gomock.Any(), testCollection, storage.SourceTypeDocument).
		Return(nil)
	chunks.EXPECT().
		DeleteBySourceType(gomock.Any(), storage.SourceTypeDocument).
		Return(int64(7), nil)

	pipeline := newTestPipeline(completion, &fakeEmbedder{}, vectors, chunks, nil)

	deleted, err := pipeline.DeleteSource(context.Background(), storage.SourceTypeDocument)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != 7 {
		t.Errorf("expected 7 rows deleted, got %d", deleted)
	}
}
