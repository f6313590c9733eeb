package roadnet

import (
	"github.com/pkg/errors"
)

// ErrorKind groups errors by how the caller should react to them
type ErrorKind uint16

const (
	ERROR_NOT_FOUND = ErrorKind(iota + 1)
	ERROR_ALREADY_EXISTS
	ERROR_INVALID_GEOMETRY
	ERROR_CONFIGURATION
	ERROR_CORRUPTED

	ERROR_UNDEFINED = ErrorKind(0)
)

func (iotaIdx ErrorKind) String() string {
	names := [...]string{"undefined", "not_found", "already_exists", "invalid_geometry", "configuration", "corrupted"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

// Error is a classified error. Sentinels below are compared with errors.Is after wrapping.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrRoadNotFound        = &Error{Kind: ERROR_NOT_FOUND, Message: "road not found"}
	ErrLaneSectionNotFound = &Error{Kind: ERROR_NOT_FOUND, Message: "lane section not found"}
	ErrLaneNotFound        = &Error{Kind: ERROR_NOT_FOUND, Message: "lane not found"}
	ErrJunctionNotFound    = &Error{Kind: ERROR_NOT_FOUND, Message: "junction not found"}
	ErrConnectionNotFound  = &Error{Kind: ERROR_NOT_FOUND, Message: "connection not found"}
	ErrLaneLinkNotFound    = &Error{Kind: ERROR_NOT_FOUND, Message: "lane link not found"}
	ErrNoRoute             = &Error{Kind: ERROR_NOT_FOUND, Message: "no route between roads"}

	ErrRoadExists       = &Error{Kind: ERROR_ALREADY_EXISTS, Message: "road already exists"}
	ErrJunctionExists   = &Error{Kind: ERROR_ALREADY_EXISTS, Message: "junction already exists"}
	ErrConnectionExists = &Error{Kind: ERROR_ALREADY_EXISTS, Message: "connection already exists"}
	ErrLaneLinkExists   = &Error{Kind: ERROR_ALREADY_EXISTS, Message: "lane link already exists"}

	ErrInvalidGeometry = &Error{Kind: ERROR_INVALID_GEOMETRY, Message: "invalid road geometry"}

	ErrCenterLane         = &Error{Kind: ERROR_CONFIGURATION, Message: "center lane has no lateral direction"}
	ErrUnknownTrafficRule = &Error{Kind: ERROR_CONFIGURATION, Message: "unknown traffic rule"}
	ErrUnsupportedFile    = &Error{Kind: ERROR_CONFIGURATION, Message: "unsupported file format"}
	ErrNoRoads            = &Error{Kind: ERROR_CONFIGURATION, Message: "no roads to import"}
	ErrConfiguration      = &Error{Kind: ERROR_CONFIGURATION, Message: "bad configuration"}

	ErrDuplicateLane    = &Error{Kind: ERROR_CORRUPTED, Message: "duplicate lane id within lane section"}
	ErrUnsortedSections = &Error{Kind: ERROR_CORRUPTED, Message: "lane sections are not sorted by s"}
	ErrNilElement       = &Error{Kind: ERROR_CORRUPTED, Message: "nil element"}
)

// KindOf returns kind of the first classified error in the chain
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ERROR_UNDEFINED
}
