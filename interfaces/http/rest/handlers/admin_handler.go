package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"socialgraph/application/commands"
	cmdbus "socialgraph/application/commands/bus"
	"socialgraph/pkg/common"
	pkgerrors "socialgraph/pkg/errors"
)

// AdminHandler handles operational endpoints
type AdminHandler struct {
	commandBus *cmdbus.CommandBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(commandBus *cmdbus.CommandBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		commandBus: commandBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// ReloadDataset handles POST /admin/reload. A failed rebuild leaves the
// current graph in place and reports the build error.
func (h *AdminHandler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	if err := h.commandBus.Send(r.Context(), commands.RebuildGraphCommand{}); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
