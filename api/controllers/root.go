package controllers

import (
	"net/http"

	"github.com/maskrx/pharmacy-backend/api/responses"
)

// ServiceInfo answers the root path with the service identity.
func ServiceInfo(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"message": "Pharmacy Mask API",
			"version": version,
		})
	}
}
