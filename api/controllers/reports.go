package controllers

import (
	"net/http"

	"github.com/maskrx/pharmacy-backend/api/responses"
	"github.com/maskrx/pharmacy-backend/api/validators"
	reportsvc "github.com/maskrx/pharmacy-backend/internal/reports"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
)

func parseReportRange(r *http.Request) (reportsvc.DateRange, error) {
	startDate, err := validators.RequireQuery(r, "start_date")
	if err != nil {
		return reportsvc.DateRange{}, err
	}
	endDate, err := validators.RequireQuery(r, "end_date")
	if err != nil {
		return reportsvc.DateRange{}, err
	}
	return reportsvc.ParseDateRange(startDate, endDate)
}

// SalesSummary aggregates transactions over a date range.
func SalesSummary(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		dateRange, err := parseReportRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.SalesSummary(r.Context(), dateRange)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

// TopUsers lists the biggest spenders over a date range.
func TopUsers(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		dateRange, err := parseReportRange(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// Out-of-range limits are clamped by the service.
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		users, err := svc.TopUsers(r.Context(), dateRange, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, users)
	}
}
