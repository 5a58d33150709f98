package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"repairdesk/internal/domain/errs"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[errs.Kind]int{
		errs.KindValidation:        http.StatusBadRequest,
		errs.KindNotFound:          http.StatusNotFound,
		errs.KindInvalidTransition: http.StatusConflict,
		errs.KindAlreadyConverted:  http.StatusConflict,
		errs.KindClaimInProgress:   http.StatusConflict,
		errs.KindConflict:          http.StatusConflict,
		errs.KindExceedsBalance:    http.StatusUnprocessableEntity,
		errs.KindWarrantyExpired:   http.StatusUnprocessableEntity,
		errs.KindNotEligible:       http.StatusUnprocessableEntity,
		errs.KindExpired:           http.StatusUnprocessableEntity,
		"":                         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		t.Run(string(kind), func(t *testing.T) {
			assert.Equal(t, want, HTTPStatus(kind))
		})
	}
}

func TestFromError(t *testing.T) {
	t.Run("domain error keeps kind", func(t *testing.T) {
		err := fmt.Errorf("advance: %w", errs.InvalidTransition("ticket", "INTAKE", "READY"))
		appErr := FromError(err)
		assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
		assert.Equal(t, "INVALID_TRANSITION", appErr.Code)
		assert.Contains(t, appErr.ToHTTPError().Message, "cannot move from INTAKE to READY")
		assert.True(t, errors.Is(appErr, errs.ErrInvalidTransition))
	})

	t.Run("app error passes through", func(t *testing.T) {
		in := NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
		assert.Same(t, in, FromError(fmt.Errorf("wrapped: %w", in)))
	})

	t.Run("unknown error is opaque", func(t *testing.T) {
		appErr := FromError(errors.New("dial tcp: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
		assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, appErr.ToHTTPError())
	})
}
