package http

import (
	"net/http"

	"go.uber.org/zap"
)

// @Summary Subnet calculator
// @Tags calculator
// @Produce json
// @Param cidr query string true "Address with prefix, e.g. 192.168.1.10/24"
// @Success 200 {object} CalculationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/calculator [get]
func (a *API) handleCalculate(w http.ResponseWriter, r *http.Request) {
	calc, err := a.service.Calculate(r.Context(), r.URL.Query().Get("cidr"))
	if err != nil {
		a.respondError(w, r, err, "calculating subnet")
		return
	}
	a.respond(w, r, http.StatusOK, calculationToResponse(calc))
}

// @Summary Headline counts
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/v1/stats [get]
func (a *API) handleGetStats(w http.ResponseWriter, r *http.Request) {
	t, err := a.service.Stats(r.Context())
	if err != nil {
		a.respondError(w, r, err, "reading stats")
		return
	}
	a.respond(w, r, http.StatusOK, StatsResponse{
		Total:      t.Total,
		Allocated:  t.Allocated,
		Available:  t.Available,
		Reserved:   t.Reserved,
		Quarantine: t.Quarantine,
		Conflicts:  t.Conflicts,
	})
}

// @Summary Utilization of every subnet
// @Description Covers defined subnets and subnets referenced only by addresses.
// @Description With cidr set the array holds that one block, defined or not.
// @Tags stats
// @Produce json
// @Param cidr query string false "Summarize only this block"
// @Success 200 {array} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/summaries [get]
func (a *API) handleGetSummaries(w http.ResponseWriter, r *http.Request) {
	if cidr := r.URL.Query().Get("cidr"); cidr != "" {
		summary, err := a.service.SummarizeCIDR(r.Context(), cidr)
		if err != nil {
			a.respondError(w, r, err, "summarizing cidr")
			return
		}
		a.respond(w, r, http.StatusOK, []SummaryResponse{summaryToResponse(summary)})
		return
	}

	summaries, err := a.service.SummarizeAll(r.Context())
	if err != nil {
		a.respondError(w, r, err, "summarizing subnets")
		return
	}
	out := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryToResponse(s))
	}
	a.respond(w, r, http.StatusOK, out)
}

// @Summary List address conflicts
// @Tags conflicts
// @Produce json
// @Success 200 {array} ConflictResponse
// @Router /api/v1/conflicts [get]
func (a *API) handleGetConflicts(w http.ResponseWriter, r *http.Request) {
	conflicts, err := a.service.DetectConflicts(r.Context())
	if err != nil {
		a.respondError(w, r, err, "detecting conflicts")
		return
	}
	out := make([]ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, conflictToResponse(c))
	}
	a.respond(w, r, http.StatusOK, out)
}

// @Summary Resolve a conflict
// @Description Keeps the record for the address and drops every other owner claim.
// @Tags conflicts
// @Produce json
// @Param ip path string true "Dotted-quad address"
// @Success 200 {object} ResolveConflictResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/conflicts/{ip}/resolve [post]
func (a *API) handleResolveConflict(w http.ResponseWriter, r *http.Request) {
	ip := r.PathValue("ip")
	dropped, err := a.service.ResolveConflict(r.Context(), ip)
	if err != nil {
		a.respondError(w, r, err, "resolving conflict")
		return
	}
	a.respond(w, r, http.StatusOK, ResolveConflictResponse{IP: ip, ClaimsDropped: dropped})
}

// @Summary List DHCP scopes with utilization
// @Tags scopes
// @Produce json
// @Success 200 {array} ScopeResponse
// @Router /api/v1/scopes [get]
func (a *API) handleGetScopes(w http.ResponseWriter, r *http.Request) {
	scopes, err := a.service.ListScopes(r.Context())
	if err != nil {
		a.respondError(w, r, err, "listing scopes")
		return
	}
	out := make([]ScopeResponse, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, scopeToResponse(s))
	}
	a.respond(w, r, http.StatusOK, out)
}

// @Summary Create DHCP scope
// @Tags scopes
// @Accept json
// @Produce json
// @Param scope body CreateScopeRequest true "Scope payload"
// @Success 201 {object} ScopeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/scopes [post]
func (a *API) handleCreateScope(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := decode[CreateScopeRequest](r)
	if err != nil {
		a.logger.Debug("unmarshaling scope from request", zap.Error(err))
		a.respond(w, r, http.StatusBadRequest, badRequest("bad request"))
		return
	}
	if err := req.validate(); err != nil {
		a.respondError(w, r, err, "validating scope request")
		return
	}

	scope, err := a.service.CreateScope(r.Context(), req.toInput())
	if err != nil {
		a.respondError(w, r, err, "creating scope")
		return
	}
	a.respond(w, r, http.StatusCreated, scopeToResponse(scope))
}

// @Summary Report a scope's allocated lease count
// @Tags scopes
// @Accept json
// @Produce json
// @Param id path int true "Scope ID"
// @Param payload body ScopeAllocationRequest true "Allocated leases"
// @Success 200 {object} ScopeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scopes/{id}/allocation [put]
func (a *API) handleSetScopeAllocation(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing scope id")
		return
	}

	req, err := decode[ScopeAllocationRequest](r)
	if err != nil {
		a.logger.Debug("unmarshaling allocation from request", zap.Error(err))
		a.respond(w, r, http.StatusBadRequest, badRequest("bad request"))
		return
	}

	scope, err := a.service.SetScopeAllocation(r.Context(), id, req.AllocatedCount)
	if err != nil {
		a.respondError(w, r, err, "setting scope allocation")
		return
	}
	a.respond(w, r, http.StatusOK, scopeToResponse(scope))
}

// @Summary Delete DHCP scope
// @Tags scopes
// @Param id path int true "Scope ID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scopes/{id} [delete]
func (a *API) handleDeleteScope(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing scope id")
		return
	}

	if err := a.service.DeleteScope(r.Context(), id); err != nil {
		a.respondError(w, r, err, "deleting scope")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
