package http

import (
	"errors"

	"querykit/internal/catalog"
)

var errIDRequired = errors.New("id is required")

// mapError translates usecase errors into the messages the API exposes.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return catalog.ErrItemNotFound
	case errors.Is(err, catalog.ErrDuplicateName):
		return catalog.ErrDuplicateName
	case errors.Is(err, catalog.ErrInvalidPayload):
		return catalog.ErrInvalidPayload
	}
	return errors.New("internal error")
}
