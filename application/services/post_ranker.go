package services

import (
	"go.uber.org/zap"

	"socialgraph/domain/core/aggregates"
	pkgerrors "socialgraph/pkg/errors"
)

// RankingMode selects the importance score computed per post
type RankingMode string

const (
	// ModeViews scores a post by its number of incoming viewed edges
	ModeViews RankingMode = "views"
	// ModeComments scores a post by the number of comments targeting it
	ModeComments RankingMode = "comments"
	// ModeMixed blends both: (1-viewsImportance)*comments + viewsImportance*views
	ModeMixed RankingMode = "mixed"
)

// RankedPost pairs a post id with its computed importance score
type RankedPost struct {
	PostID string  `json:"post_id"`
	Score  float64 `json:"score"`
}

// PostRanker computes importance scores and orders posts with a stable,
// deterministic merge sort. Like PostFilter it holds no mutable state and is
// safe for concurrent use against the same graph.
type PostRanker struct {
	logger *zap.Logger
}

// NewPostRanker creates a post ranker
func NewPostRanker(logger *zap.Logger) *PostRanker {
	return &PostRanker{logger: logger}
}

// Rank scores every post under the given mode and returns the top n in
// descending score order. viewsImportance must lie in [0, 1] and only affects
// the mixed mode. Equal-scoring posts keep their relative insertion order;
// n larger than the candidate list truncates, n <= 0 yields an empty result.
func (r *PostRanker) Rank(graph *aggregates.Graph, mode RankingMode, viewsImportance float64, n int) ([]RankedPost, error) {
	if viewsImportance < 0 || viewsImportance > 1 {
		return nil, pkgerrors.NewValidationError("views importance must lie in [0, 1]")
	}

	switch mode {
	case ModeViews, ModeComments, ModeMixed:
	default:
		return nil, pkgerrors.NewInvalidRankingModeError(string(mode))
	}

	posts := graph.Posts()
	ranked := make([]RankedPost, 0, len(posts))
	for _, post := range posts {
		var score float64
		switch mode {
		case ModeViews:
			score = float64(post.ViewCount())
		case ModeComments:
			score = float64(post.CommentCount())
		case ModeMixed:
			score = (1-viewsImportance)*float64(post.CommentCount()) + viewsImportance*float64(post.ViewCount())
		}
		ranked = append(ranked, RankedPost{PostID: post.ID().String(), Score: score})
	}

	if len(ranked) > 1 {
		mergeSort(ranked, 0, len(ranked)-1)
	}

	if n <= 0 {
		return []RankedPost{}, nil
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	r.logger.Debug("Ranked posts",
		zap.String("graphID", graph.ID().String()),
		zap.String("mode", string(mode)),
		zap.Float64("viewsImportance", viewsImportance),
		zap.Int("returned", len(ranked)),
	)

	return ranked, nil
}

// HighlightIDs projects a ranked list to its post ids for the visualizer.
// It always allocates a fresh slice so no highlight state leaks between calls.
func HighlightIDs(ranked []RankedPost) []string {
	ids := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		ids = append(ids, entry.PostID)
	}
	return ids
}

// mergeSort sorts ranked[begin..end] in place, descending by score, with a
// top-down recursive merge. The non-strict left preference on ties is the
// externally observable stability contract — equal scores keep their original
// relative order — so this must not be swapped for a library sort.
func mergeSort(ranked []RankedPost, begin, end int) {
	if begin >= end {
		return
	}

	mid := (begin + end) / 2
	mergeSort(ranked, begin, mid)
	mergeSort(ranked, mid+1, end)
	merge(ranked, begin, mid, end)
}

func merge(ranked []RankedPost, begin, mid, end int) {
	left := make([]RankedPost, mid-begin+1)
	right := make([]RankedPost, end-mid)
	copy(left, ranked[begin:mid+1])
	copy(right, ranked[mid+1:end+1])

	i, j, k := 0, 0, begin
	for i < len(left) && j < len(right) {
		if left[i].Score >= right[j].Score {
			ranked[k] = left[i]
			i++
		} else {
			ranked[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		ranked[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		ranked[k] = right[j]
		j++
		k++
	}
}
