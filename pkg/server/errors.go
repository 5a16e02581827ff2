package server

import (
	"errors"
	"fmt"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"

	"droscher.com/BeerFinder/pkg/auth"
	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/review"
	"droscher.com/BeerFinder/pkg/storage"
	"droscher.com/BeerFinder/pkg/taxonomy"
	"droscher.com/BeerFinder/pkg/wizard"
)

var ErrInvalidInput = errors.New("bad request")

var errorCodes = []struct {
	err  error
	code connect.Code
}{
	{repository.ErrBeerNotFound, connect.CodeNotFound},
	{repository.ErrReviewNotFound, connect.CodeNotFound},
	{repository.ErrFilterOptionNotFound, connect.CodeNotFound},
	{wizard.ErrUnknownSession, connect.CodeNotFound},
	{repository.ErrDuplicateFilterOption, connect.CodeAlreadyExists},
	{ErrInvalidInput, connect.CodeInvalidArgument},
	{review.ErrInvalidReview, connect.CodeInvalidArgument},
	{storage.ErrInvalidImage, connect.CodeInvalidArgument},
	{taxonomy.ErrInvalidOption, connect.CodeInvalidArgument},
	{filter.ErrUnknownCategory, connect.CodeInvalidArgument},
	{wizard.ErrInvalidChoice, connect.CodeInvalidArgument},
	{wizard.ErrFinished, connect.CodeFailedPrecondition},
	{auth.ErrInvalidPassword, connect.CodeUnauthenticated},
	{taxonomy.ErrDegraded, connect.CodeUnavailable},
	{wizard.ErrClosed, connect.CodeUnavailable},
}

// toConnectError gives known errors their Connect code. Anything else is returned as is and reaches the
// client as CodeUnknown.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	for _, mapping := range errorCodes {
		if errors.Is(err, mapping.err) {
			return connect.NewError(mapping.code, err)
		}
	}

	return err
}

func parseID(kind string, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %s id %q", ErrInvalidInput, kind, value))
	}

	return id, nil
}
