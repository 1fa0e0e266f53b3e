package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/live/scorecards", handler.ListLiveScorecards)
	mux.HandleFunc("GET /v1/matches/{matchID}/scorecard", handler.GetScorecard)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/profile", handler.GetPlayerProfile)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/queries", handler.ListQueries)
	mux.HandleFunc("GET /v1/queries/{name}", handler.RunQuery)
	mux.HandleFunc("GET /v1/dataset", handler.GetDataset)
	mux.HandleFunc("GET /v1/dataset/summary", handler.GetDatasetSummary)
}

func registerCacheRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/cache/refresh", handler.RefreshCache)
}
