package errors

import (
	"fmt"
	"net/http"
)

// Error codes for the social graph domain. Build-time errors abort the whole
// build; query-time errors abort only the call that raised them.
const (
	CodeDuplicateNode      = "DUPLICATE_NODE"
	CodeMalformedEntity    = "MALFORMED_ENTITY"
	CodeInvalidRankingMode = "INVALID_RANKING_MODE"
)

// NewDuplicateNodeError reports a second insertion of an id already present in
// the graph. Ids share one namespace across users, posts and comments.
func NewDuplicateNodeError(nodeID string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       CodeDuplicateNode,
		Message:    fmt.Sprintf("node %q already exists in graph", nodeID),
		Details:    map[string]interface{}{"node_id": nodeID},
		HTTPStatus: http.StatusConflict,
		StackTrace: captureStackTrace(),
	}
}

// NewMalformedEntityError reports a required field missing from an input
// record of the given entity kind.
func NewMalformedEntityError(kind, field string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       CodeMalformedEntity,
		Message:    fmt.Sprintf("%s record is missing required field %q", kind, field),
		Details:    map[string]interface{}{"kind": kind, "field": field},
		HTTPStatus: http.StatusBadRequest,
		StackTrace: captureStackTrace(),
	}
}

// NewInvalidRankingModeError reports an unrecognized ranking mode string.
func NewInvalidRankingModeError(mode string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       CodeInvalidRankingMode,
		Message:    fmt.Sprintf("unrecognized ranking mode %q", mode),
		Details:    map[string]interface{}{"mode": mode},
		HTTPStatus: http.StatusBadRequest,
		StackTrace: captureStackTrace(),
	}
}

// IsCode checks if an error carries a specific error code
func IsCode(err error, code string) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// IsDuplicateNode checks for a build-time id collision
func IsDuplicateNode(err error) bool {
	return IsCode(err, CodeDuplicateNode)
}

// IsMalformedEntity checks for a missing required input field
func IsMalformedEntity(err error) bool {
	return IsCode(err, CodeMalformedEntity)
}

// IsInvalidRankingMode checks for an unrecognized ranking mode
func IsInvalidRankingMode(err error) bool {
	return IsCode(err, CodeInvalidRankingMode)
}
