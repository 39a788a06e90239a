package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	domainconfig "socialgraph/domain/config"
	"socialgraph/pkg/common"
	pkgerrors "socialgraph/pkg/errors"
)

// GraphHandler serves the visualization payload the external visualizer
// collaborator renders from
type GraphHandler struct {
	queryBus  *querybus.QueryBus
	domainCfg *domainconfig.DomainConfig
	errors    *pkgerrors.ErrorHandler
	logger    *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, domainCfg *domainconfig.DomainConfig, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus:  queryBus,
		domainCfg: domainCfg,
		errors:    errorHandler,
		logger:    logger,
	}
}

// GetGraphData handles GET /graph-data. With highlight=true the payload
// carries the top-n post ids under the requested ranking mode.
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := queries.GetGraphDataQuery{}
	if params.Get("highlight") == "true" {
		query.Highlight = true
		query.Mode = h.domainCfg.DefaultRankingMode
		query.ViewsImportance = h.domainCfg.DefaultViewsImportance
		query.N = h.domainCfg.DefaultTopN

		if mode := params.Get("mode"); mode != "" {
			query.Mode = mode
		}
		if raw := params.Get("views_importance"); raw != "" {
			vi, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				h.errors.Handle(w, r, pkgerrors.NewValidationError("views_importance must be a number"))
				return
			}
			query.ViewsImportance = vi
		}
		if raw := params.Get("n"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				h.errors.Handle(w, r, pkgerrors.NewValidationError("n must be an integer"))
				return
			}
			query.N = n
		}
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
