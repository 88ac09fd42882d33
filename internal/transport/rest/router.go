package rest

import "net/http"

// NewRouter builds the route table. Literal segments such as /new-id and
// the lookup paths take precedence over the {id} wildcards.
func NewRouter(
	auth *AuthHandler,
	accounts *AccountHandler,
	risks *RiskHandler,
	lookups *LookupHandler,
	health *HealthHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/sign-up", auth.SignUp)
	mux.HandleFunc("POST /api/auth/sign-in", auth.SignIn)

	mux.HandleFunc("GET /api/account", accounts.Get)
	mux.HandleFunc("PATCH /api/account", accounts.Update)
	mux.HandleFunc("PATCH /api/account/password", accounts.ChangePassword)

	mux.HandleFunc("GET /api/risks", risks.List)
	mux.HandleFunc("POST /api/risks", risks.Create)
	mux.HandleFunc("PATCH /api/risks", risks.Update)
	mux.HandleFunc("GET /api/risks/new-id", risks.NewID)
	mux.HandleFunc("GET /api/risks/{id}", risks.Get)
	mux.HandleFunc("DELETE /api/risks/{id}", risks.Delete)
	mux.HandleFunc("GET /api/risks/{id}/history", risks.History)

	mux.HandleFunc("GET /api/risks/factors", lookups.Factors)
	mux.HandleFunc("GET /api/risks/types", lookups.Types)
	mux.HandleFunc("GET /api/risks/management-methods", lookups.Methods)
	mux.HandleFunc("GET /api/risks/statuses", lookups.Statuses)
	mux.HandleFunc("GET /api/risks/probabilities", lookups.Probabilities)
	mux.HandleFunc("GET /api/risks/impacts", lookups.Impacts)

	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("GET /healthz/live", health.Live)
	mux.HandleFunc("GET /healthz/ready", health.Ready)

	return mux
}
