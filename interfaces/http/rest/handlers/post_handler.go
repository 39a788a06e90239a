package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	domainconfig "socialgraph/domain/config"
	"socialgraph/pkg/common"
	pkgerrors "socialgraph/pkg/errors"
)

// PostHandler handles post filtering and ranking HTTP requests
type PostHandler struct {
	queryBus  *querybus.QueryBus
	domainCfg *domainconfig.DomainConfig
	errors    *pkgerrors.ErrorHandler
	logger    *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(queryBus *querybus.QueryBus, domainCfg *domainconfig.DomainConfig, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		queryBus:  queryBus,
		domainCfg: domainCfg,
		errors:    errorHandler,
		logger:    logger,
	}
}

// FilterPosts handles GET /posts
//
// Keywords arrive as repeated keyword params; author attribute filters as
// author.<name> params (author.gender=female&author.location=Berlin).
func (h *PostHandler) FilterPosts(w http.ResponseWriter, r *http.Request) {
	query := queries.FilterPostsQuery{
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

// TopPosts handles GET /posts/top
func (h *PostHandler) TopPosts(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseRanking(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

func (h *PostHandler) parseRanking(r *http.Request) (queries.RankPostsQuery, error) {
	params := r.URL.Query()

	query := queries.RankPostsQuery{
		Mode:            h.domainCfg.DefaultRankingMode,
		ViewsImportance: h.domainCfg.DefaultViewsImportance,
		N:               h.domainCfg.DefaultTopN,
	}

	if mode := params.Get("mode"); mode != "" {
		query.Mode = mode
	}

	if raw := params.Get("views_importance"); raw != "" {
		vi, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return queries.RankPostsQuery{}, pkgerrors.NewValidationError("views_importance must be a number")
		}
		query.ViewsImportance = vi
	}

	if raw := params.Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return queries.RankPostsQuery{}, pkgerrors.NewValidationError("n must be an integer")
		}
		if n > h.domainCfg.MaxTopN {
			n = h.domainCfg.MaxTopN
		}
		query.N = n
	}

	return query, nil
}

func parseKeywords(r *http.Request) []string {
	var keywords []string
	for _, raw := range r.URL.Query()["keyword"] {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}

func parseAuthorFilter(r *http.Request) map[string]string {
	filter := map[string]string{}
	for name, values := range r.URL.Query() {
		if attr, ok := strings.CutPrefix(name, "author."); ok && len(values) > 0 {
			filter[attr] = values[0]
		}
	}
	return filter
}
