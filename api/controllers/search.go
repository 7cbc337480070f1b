package controllers

import (
	"net/http"

	"github.com/maskrx/pharmacy-backend/api/responses"
	"github.com/maskrx/pharmacy-backend/api/validators"
	searchsvc "github.com/maskrx/pharmacy-backend/internal/search"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
)

type searchResponse struct {
	Message string `json:"message"`
	Results any    `json:"results"`
}

// Search ranks pharmacies or masks by relevance to the query keyword.
func Search(svc searchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "search service unavailable"))
			return
		}

		keyword, err := validators.RequireQuery(r, "query_name")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rawType, err := validators.RequireQuery(r, "search_type")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		searchType, err := enums.ParseSearchType(rawType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "search_type must be 'pharmacy' or 'mask'"))
			return
		}

		var hits int
		payload := searchResponse{}
		switch searchType {
		case enums.SearchTypeMask:
			results, err := svc.SearchMasks(r.Context(), keyword)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			hits = len(results)
			payload.Results = results
		default:
			results, err := svc.SearchPharmacies(r.Context(), keyword)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			hits = len(results)
			payload.Results = results
		}

		payload.Message = "Search successfully."
		if hits == 0 {
			payload.Message = "No results found."
		}
		responses.WriteSuccess(w, payload)
	}
}
