package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	"socialgraph/pkg/common"
	pkgerrors "socialgraph/pkg/errors"
)

// WordCloudHandler serves the word-cloud collaborator's input: filtered post
// contents plus the space-joined text
type WordCloudHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewWordCloudHandler creates a new word-cloud handler
func NewWordCloudHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *WordCloudHandler {
	return &WordCloudHandler{
		queryBus: queryBus,
		errors:   errorHandler,
		logger:   logger,
	}
}

// GetWordCloudText handles GET /wordcloud
func (h *WordCloudHandler) GetWordCloudText(w http.ResponseWriter, r *http.Request) {
	query := queries.GetWordCloudTextQuery{
		Keywords:     parseKeywords(r),
		AuthorFilter: parseAuthorFilter(r),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
