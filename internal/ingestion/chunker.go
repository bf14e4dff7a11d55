package ingestion

// Chunker splits extracted text into fixed-size sliding windows.
// Adjacent windows overlap so that sentence boundaries cut by the window
// edge survive in at least one chunk; the retrieval-side merge collapses
// the duplicated region again.
type Chunker struct {
	Window  int // max characters per chunk
	Overlap int // characters shared between adjacent chunks
}

// NewChunker creates a chunker with the given window and overlap sizes.
func NewChunker(window, overlap int) *Chunker {
	return &Chunker{Window: window, Overlap: overlap}
}

// ChunkText splits text into windows of at most c.Window characters, each
// overlapping the previous by c.Overlap. The last window may be shorter;
// the loop terminates when the window start reaches end-of-text.
func (c *Chunker) ChunkText(text string) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + c.Window
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])

		next := start + c.Window - c.Overlap
		if next <= start {
			break
		}
		start = next
	}
	return chunks
}
