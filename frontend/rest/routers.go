// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kr/secureheader"
	log "github.com/sirupsen/logrus"
)

// NewRouter is used to set up HTTP and HTTPS endpoints for the controller
func NewRouter(https bool) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range controllerRoutes {
		var handler http.Handler

		handler = route.HandlerFunc
		handler = Logger(handler, route.Name, log.DebugLevel)
		if https {
			handler = secureheader.Handler(handler)
		}

		router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(handler)
	}

	return router
}
