package controllers

import (
	"net/http"

	"github.com/maskrx/pharmacy-backend/api/responses"
	"github.com/maskrx/pharmacy-backend/api/validators"
	purchasesvc "github.com/maskrx/pharmacy-backend/internal/purchase"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
)

// Purchase executes an atomic multi-line purchase for a user.
func Purchase(svc purchasesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "purchase service unavailable"))
			return
		}

		var payload purchasesvc.Request
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithUserName(ctx, payload.UserName)
		}

		receipt, err := svc.Purchase(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, receipt)
	}
}
