package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maskrx/pharmacy-backend/api/responses"
	"github.com/maskrx/pharmacy-backend/api/validators"
	pharmacysvc "github.com/maskrx/pharmacy-backend/internal/pharmacies"
	dbtypes "github.com/maskrx/pharmacy-backend/pkg/db/types"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
)

// OpenPharmacies lists pharmacies open at the queried weekday and time.
// Absent params default to Monday 08:30.
func OpenPharmacies(svc pharmacysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		rawDay := r.URL.Query().Get("weekday")
		if rawDay == "" {
			rawDay = "Mon"
		}
		weekday, err := enums.ParseWeekday(rawDay)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid weekday, use Mon..Sun"))
			return
		}

		rawTime := r.URL.Query().Get("time")
		if rawTime == "" {
			rawTime = "08:30"
		}
		at, err := dbtypes.ParseTimeOfDay(rawTime)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid time format, use HH:MM"))
			return
		}

		open, err := svc.OpenPharmacies(r.Context(), pharmacysvc.OpenQuery{Weekday: weekday, Time: at})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, open)
	}
}

// PharmacyMasks lists the catalog of one pharmacy.
func PharmacyMasks(svc pharmacysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		pharmacyName := chi.URLParam(r, "pharmacyName")

		sortBy := enums.MaskSortName
		if raw := r.URL.Query().Get("sort_by"); raw != "" {
			parsed, err := enums.ParseMaskSort(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "sort_by must be 'name' or 'price'"))
				return
			}
			sortBy = parsed
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPharmacy(ctx, pharmacyName)
		}

		masks, err := svc.ListMasks(ctx, pharmacyName, sortBy)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, masks)
	}
}

// FilterPharmaciesByMaskCount filters pharmacies by how many in-band catalog
// entries they carry.
func FilterPharmaciesByMaskCount(svc pharmacysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pharmacy service unavailable"))
			return
		}

		minPrice, err := validators.ParseQueryDecimal(r, "min_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryDecimal(r, "max_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		count, err := validators.ParseQueryInt(r, "count", -1, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if count < 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "count is required").WithDetails(map[string]any{"field": "count"}))
			return
		}

		rawComparison, err := validators.RequireQuery(r, "comparison")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		comparison, err := enums.ParseComparison(rawComparison)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "comparison must be 'more' or 'fewer'"))
			return
		}

		result, err := svc.FilterByMaskCount(r.Context(), pharmacysvc.MaskCountFilter{
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			Count:      count,
			Comparison: comparison,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
