package httpserver

import (
	"errors"

	"github.com/shopcloud/backend/domain/checkout"
	"github.com/shopcloud/backend/domain/customer"
	"github.com/shopcloud/backend/domain/product"
	"github.com/shopcloud/backend/pkg/apperror"
	"github.com/labstack/echo/v4"
)

var (
	notFoundErrors = []error{
		customer.ErrNotFound,
		product.ErrNotFound,
		checkout.ErrNotFound,
	}

	conflictErrors = []error{
		customer.ErrAlreadyExists,
		product.ErrAlreadyExists,
		checkout.ErrAlreadyExists,
	}

	domainRuleErrors = []error{
		customer.ErrIDRequired,
		customer.ErrNameRequired,
		customer.ErrAddressRequired,
		customer.ErrInvalidRewardPoint,
		customer.ErrStreetRequired,
		customer.ErrNumberRequired,
		customer.ErrZipRequired,
		customer.ErrCityRequired,
		product.ErrIDRequired,
		product.ErrNameRequired,
		product.ErrInvalidPrice,
		checkout.ErrIDRequired,
		checkout.ErrCustomerIDRequired,
		checkout.ErrItemsRequired,
		checkout.ErrItemIDRequired,
		checkout.ErrItemNameRequired,
		checkout.ErrProductIDRequired,
		checkout.ErrInvalidQuantity,
		checkout.ErrInvalidItemUnitPrice,
	}
)

// domainError maps errors coming out of the domain and the stores to their
// HTTP representation.
func (s *Server) domainError(c echo.Context, err error) error {
	switch {
	case isAny(err, notFoundErrors):
		return s.error(c, apperror.ErrEntityNotFound(err))
	case isAny(err, conflictErrors):
		return s.error(c, apperror.ErrConflict(err))
	case isAny(err, domainRuleErrors):
		return s.error(c, apperror.ErrDomainRule(err))
	}

	return s.error(c, apperror.ErrInternalServer(err))
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
