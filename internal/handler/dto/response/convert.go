package response

import (
	"errors"

	"github.com/google/uuid"
)

var (
	uuidType      = uuid.UUID{}
	uuidPtrType   = (*uuid.UUID)(nil)
	stringPtrType = (*string)(nil)
)

func uuidToString(src any) (any, error) {
	id, ok := src.(uuid.UUID)
	if !ok {
		return nil, errors.New("expected uuid.UUID")
	}
	return id.String(), nil
}

func uuidPtrToString(src any) (any, error) {
	id, ok := src.(*uuid.UUID)
	if !ok {
		return nil, errors.New("expected *uuid.UUID")
	}
	if id == nil {
		return (*string)(nil), nil
	}
	s := id.String()
	return &s, nil
}
