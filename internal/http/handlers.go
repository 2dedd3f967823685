package http

import (
	"net/http"

	"go.uber.org/zap"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.health != nil {
		if err := a.health.Ping(ctx); err != nil {
			a.logger.Error("db ping failed", zap.Error(err))
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List subnets
// @Tags subnets
// @Produce json
// @Success 200 {array} SubnetResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets [get]
func (a *API) handleGetAllSubnets(w http.ResponseWriter, r *http.Request) {
	subnets, err := a.service.ListSubnets(r.Context())
	if err != nil {
		a.respondError(w, r, err, "listing subnets")
		return
	}
	a.respond(w, r, http.StatusOK, subnetsToResponse(subnets))
}

// @Summary Create subnet
// @Tags subnets
// @Accept json
// @Produce json
// @Param subnet body CreateSubnetRequest true "Subnet payload"
// @Success 201 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "overlaps an existing subnet"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets [post]
func (a *API) handleCreateSubnet(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := decode[CreateSubnetRequest](r)
	if err != nil {
		a.logger.Debug("unmarshaling subnet from request", zap.Error(err))
		a.respond(w, r, http.StatusBadRequest, badRequest("bad request"))
		return
	}
	if err := req.validate(); err != nil {
		a.respondError(w, r, err, "validating subnet request")
		return
	}

	subnet, err := a.service.CreateSubnet(r.Context(), req.toInput())
	if err != nil {
		a.respondError(w, r, err, "creating subnet")
		return
	}
	a.respond(w, r, http.StatusCreated, subnetToResponse(subnet))
}

// @Summary Get subnet by ID
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [get]
func (a *API) handleGetSubnetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing subnet id")
		return
	}

	subnet, err := a.service.GetSubnet(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err, "reading subnet")
		return
	}
	a.respond(w, r, http.StatusOK, subnetToResponse(subnet))
}

// @Summary Delete subnet
// @Description Drops the definition only. Addresses inside the block are kept.
// @Tags subnets
// @Param id path int true "Subnet ID of the subnet to delete."
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [delete]
func (a *API) handleDeleteSubnetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing subnet id")
		return
	}

	if err := a.service.DeleteSubnet(r.Context(), id); err != nil {
		a.respondError(w, r, err, "deleting subnet")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Subnet utilization summary
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/subnets/{id}/summary [get]
func (a *API) handleGetSubnetSummary(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing subnet id")
		return
	}

	summary, err := a.service.Summarize(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err, "summarizing subnet")
		return
	}
	a.respond(w, r, http.StatusOK, summaryToResponse(summary))
}

// @Summary Get ips by subnet ID
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {array} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id}/ips [get]
func (a *API) handleGetIPsBySubnetID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing subnet id")
		return
	}

	addrs, err := a.service.ListBySubnet(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err, "listing ips by subnet")
		return
	}
	a.respond(w, r, http.StatusOK, ipsToResponse(addrs))
}

// @Summary Create ip under subnet
// @Description Network and broadcast addresses are rejected except on /31 blocks.
// @Tags subnets
// @Accept json
// @Produce json
// @Param id path int true "Subnet id in which the ip is created."
// @Param payload body CreateIPRequest true "IP address to create."
// @Success 201 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "ip already recorded"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/{id}/ips [post]
func (a *API) handleCreateIPBySubnetID(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondError(w, r, err, "parsing subnet id")
		return
	}

	req, err := decode[CreateIPRequest](r)
	if err != nil {
		a.logger.Debug("unmarshaling ip from request", zap.Error(err))
		a.respond(w, r, http.StatusBadRequest, badRequest("bad request"))
		return
	}
	if err := req.validate(); err != nil {
		a.respondError(w, r, err, "validating ip request")
		return
	}

	addr, err := a.service.CreateAddress(r.Context(), id, req.toInput())
	if err != nil {
		a.respondError(w, r, err, "creating ip")
		return
	}
	a.respond(w, r, http.StatusCreated, ipToResponse(addr))
}

// @Summary List ips inside a cidr
// @Description Returns records recorded under exactly this block. It need not
// @Description be a defined subnet. Host bits are cleared.
// @Tags ips
// @Produce json
// @Param cidr query string true "Block such as 10.0.0.0/24"
// @Success 200 {array} IPResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/ips [get]
func (a *API) handleGetIPsByCIDR(w http.ResponseWriter, r *http.Request) {
	cidr := r.URL.Query().Get("cidr")
	if cidr == "" {
		a.respond(w, r, http.StatusBadRequest, badRequest("cidr query parameter is required"))
		return
	}

	addrs, err := a.service.ListByCIDR(r.Context(), cidr)
	if err != nil {
		a.respondError(w, r, err, "listing ips by cidr")
		return
	}
	a.respond(w, r, http.StatusOK, ipsToResponse(addrs))
}

// @Summary Look up an ip
// @Tags ips
// @Produce json
// @Param ip path string true "Dotted-quad address"
// @Success 200 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ips/{ip} [get]
func (a *API) handleGetIP(w http.ResponseWriter, r *http.Request) {
	addr, err := a.service.Lookup(r.Context(), r.PathValue("ip"))
	if err != nil {
		a.respondError(w, r, err, "looking up ip")
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(addr))
}

// @Summary Insert or replace an ip record
// @Tags ips
// @Accept json
// @Produce json
// @Param ip path string true "Dotted-quad address"
// @Param payload body AddressRequest true "Record fields"
// @Success 200 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ips/{ip} [put]
func (a *API) handlePutIP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := decode[AddressRequest](r)
	if err != nil {
		a.logger.Debug("unmarshaling ip from request", zap.Error(err))
		a.respond(w, r, http.StatusBadRequest, badRequest("bad request"))
		return
	}
	if err := req.validate(); err != nil {
		a.respondError(w, r, err, "validating ip request")
		return
	}

	addr, err := a.service.Upsert(r.Context(), req.toInput(r.PathValue("ip")))
	if err != nil {
		a.respondError(w, r, err, "upserting ip")
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(addr))
}

// @Summary Remove an ip record
// @Description Removing an absent address succeeds unless strict=true.
// @Tags ips
// @Param ip path string true "Dotted-quad address"
// @Param strict query bool false "Return 404 when the address is absent"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ips/{ip} [delete]
func (a *API) handleDeleteIP(w http.ResponseWriter, r *http.Request) {
	strict, err := parseBoolQuery(r, "strict")
	if err != nil {
		a.respondError(w, r, err, "parsing strict flag")
		return
	}

	if err := a.service.Remove(r.Context(), r.PathValue("ip"), strict); err != nil {
		a.respondError(w, r, err, "removing ip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Record an additional owner claim
// @Description The first claim for an address becomes its record; later claims are kept for conflict detection.
// @Tags ips
// @Accept json
// @Produce json
// @Param ip path string true "Dotted-quad address"
// @Param payload body AddressRequest true "Claim fields"
// @Success 201 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/ips/{ip}/claims [post]
func (a *API) handleClaimIP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := decode[AddressRequest](r)
	if err != nil {
		a.logger.Debug("unmarshaling claim from request", zap.Error(err))
		a.respond(w, r, http.StatusBadRequest, badRequest("bad request"))
		return
	}
	if err := req.validate(); err != nil {
		a.respondError(w, r, err, "validating claim request")
		return
	}

	addr, err := a.service.Claim(r.Context(), req.toInput(r.PathValue("ip")))
	if err != nil {
		a.respondError(w, r, err, "claiming ip")
		return
	}
	a.respond(w, r, http.StatusCreated, ipToResponse(addr))
}

// @Summary Remove every ip record
// @Tags ips
// @Success 204 "No content"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ips [delete]
func (a *API) handleResetIPs(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Reset(r.Context()); err != nil {
		a.respondError(w, r, err, "resetting ips")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
