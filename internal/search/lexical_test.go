package search_test

import (
	"context"
	"testing"

	"contexta/internal/search"
	"contexta/internal/storage"
	storagemocks "contexta/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestLexicalSearcher_KeywordSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chunks := storagemocks.NewMockChunkStore(ctrl)
	searcher := search.NewLexicalSearcher(chunks)

	chunks.EXPECT().
		Search(gomock.Any(), "refund policy", 8).
		Return([]storage.ChunkHit{
			{
				ChunkRecord: storage.ChunkRecord{
					Content:          "refunds are processed within 14 days",
					SourceType:       storage.SourceTypeDocument,
					PageNumber:       2,
					Keywords:         []string{"refunds"},
					TypicalQuestions: []string{"How long do refunds take?"},
				},
				Score: 1.7,
			},
		}, nil)

	got, err := searcher.KeywordSearch(context.Background(), "refund policy", 8)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("KeywordSearch() returned %d candidates, want 1", len(got))
	}
	c := got[0]
	if c.Score != 1.7 || c.PageNumber != 2 || c.SourceType != storage.SourceTypeDocument {
		t.Errorf("candidate = %+v, want score 1.7, page 2, document", c)
	}
	if len(c.Keywords) != 1 || c.Keywords[0] != "refunds" {
		t.Errorf("candidate keywords = %v", c.Keywords)
	}
}
