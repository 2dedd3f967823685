package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

// stubService panics on methods without an override below.
type stubService struct {
	domain.IPAMService

	listSubnetsFn   func(context.Context) ([]domain.Subnet, error)
	createSubnetFn  func(context.Context, domain.CreateSubnetInput) (domain.Subnet, error)
	getSubnetFn     func(context.Context, int64) (domain.Subnet, error)
	deleteSubnetFn  func(context.Context, int64) error
	listBySubnetFn  func(context.Context, int64) ([]domain.Address, error)
	createAddressFn func(context.Context, int64, domain.AddressInput) (domain.Address, error)
	upsertFn        func(context.Context, domain.AddressInput) (domain.Address, error)
	claimFn         func(context.Context, domain.AddressInput) (domain.Address, error)
	removeFn        func(context.Context, string, bool) error
	lookupFn        func(context.Context, string) (domain.Address, error)
	importFn        func(context.Context, []domain.Address) (domain.LoadReport, error)
	exportFn        func(context.Context) ([]domain.Address, error)
	detectFn        func(context.Context) ([]domain.ConflictRecord, error)
	resolveFn       func(context.Context, string) (int, error)
	setAllocationFn func(context.Context, int64, int) (domain.ScopeUtilization, error)
}

func (s stubService) ListSubnets(ctx context.Context) ([]domain.Subnet, error) {
	if s.listSubnetsFn == nil {
		return nil, nil
	}
	return s.listSubnetsFn(ctx)
}

func (s stubService) CreateSubnet(ctx context.Context, input domain.CreateSubnetInput) (domain.Subnet, error) {
	if s.createSubnetFn == nil {
		return domain.Subnet{}, nil
	}
	return s.createSubnetFn(ctx, input)
}

func (s stubService) GetSubnet(ctx context.Context, id int64) (domain.Subnet, error) {
	if s.getSubnetFn == nil {
		return domain.Subnet{}, nil
	}
	return s.getSubnetFn(ctx, id)
}

func (s stubService) DeleteSubnet(ctx context.Context, id int64) error {
	if s.deleteSubnetFn == nil {
		return nil
	}
	return s.deleteSubnetFn(ctx, id)
}

func (s stubService) ListBySubnet(ctx context.Context, subnetID int64) ([]domain.Address, error) {
	if s.listBySubnetFn == nil {
		return nil, nil
	}
	return s.listBySubnetFn(ctx, subnetID)
}

func (s stubService) CreateAddress(ctx context.Context, subnetID int64, input domain.AddressInput) (domain.Address, error) {
	if s.createAddressFn == nil {
		return domain.Address{}, nil
	}
	return s.createAddressFn(ctx, subnetID, input)
}

func (s stubService) Upsert(ctx context.Context, input domain.AddressInput) (domain.Address, error) {
	if s.upsertFn == nil {
		return domain.Address{}, nil
	}
	return s.upsertFn(ctx, input)
}

func (s stubService) Claim(ctx context.Context, input domain.AddressInput) (domain.Address, error) {
	if s.claimFn == nil {
		return domain.Address{}, nil
	}
	return s.claimFn(ctx, input)
}

func (s stubService) Remove(ctx context.Context, ip string, strict bool) error {
	if s.removeFn == nil {
		return nil
	}
	return s.removeFn(ctx, ip, strict)
}

func (s stubService) Lookup(ctx context.Context, ip string) (domain.Address, error) {
	if s.lookupFn == nil {
		return domain.Address{}, nil
	}
	return s.lookupFn(ctx, ip)
}

func (s stubService) Import(ctx context.Context, rows []domain.Address) (domain.LoadReport, error) {
	if s.importFn == nil {
		return domain.LoadReport{}, nil
	}
	return s.importFn(ctx, rows)
}

func (s stubService) Export(ctx context.Context) ([]domain.Address, error) {
	if s.exportFn == nil {
		return nil, nil
	}
	return s.exportFn(ctx)
}

func (s stubService) DetectConflicts(ctx context.Context) ([]domain.ConflictRecord, error) {
	if s.detectFn == nil {
		return nil, nil
	}
	return s.detectFn(ctx)
}

func (s stubService) ResolveConflict(ctx context.Context, ip string) (int, error) {
	if s.resolveFn == nil {
		return 0, nil
	}
	return s.resolveFn(ctx, ip)
}

func (s stubService) SetScopeAllocation(ctx context.Context, id int64, allocated int) (domain.ScopeUtilization, error) {
	if s.setAllocationFn == nil {
		return domain.ScopeUtilization{}, nil
	}
	return s.setAllocationFn(ctx, id, allocated)
}

func newHandlerTestAPI(service domain.IPAMService, healthErr error) *API {
	return NewAPI(
		zap.NewNop(),
		stubHealthChecker{err: healthErr},
		service,
		nil,
	)
}

func serve(api *API, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthzReturnsOK(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID response header")
	}
}

func TestReadyzReturnsServiceUnavailableWhenHealthCheckFails(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, context.Canceled)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestGetSubnetByIDReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		getSubnetFn: func(context.Context, int64) (domain.Subnet, error) {
			return domain.Subnet{}, domain.ErrSubnetNotFound
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/subnets/42", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	body := decodeBody[ErrorResponse](t, rec)
	if body.Kind != "NotFound" || !strings.Contains(body.Error, "subnet not found") {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetSubnetByIDRejectsBadID(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	for _, id := range []string{"abc", "0", "-3"} {
		rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/subnets/"+id, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d, got %d", id, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestCreateSubnetReturnsCreated(t *testing.T) {
	created := time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC)
	var got domain.CreateSubnetInput
	api := newHandlerTestAPI(stubService{
		createSubnetFn: func(_ context.Context, input domain.CreateSubnetInput) (domain.Subnet, error) {
			got = input
			return domain.Subnet{
				ID:          3,
				Network:     addrmath.MustParseCIDR(input.CIDR),
				Description: input.Description,
				CreatedAt:   created,
				UpdatedAt:   created,
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subnets", strings.NewReader(`{"cidr":"10.0.0.0/24","description":"office"}`))
	rec := serve(api, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if got.CIDR != "10.0.0.0/24" || got.Description != "office" {
		t.Fatalf("unexpected input: %+v", got)
	}
	body := decodeBody[SubnetResponse](t, rec)
	if body.ID != 3 || body.CIDR != "10.0.0.0/24" || !body.CreatedAt.Equal(created) {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateSubnetReturnsBadRequestOnInvalidInput(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createSubnetFn: func(context.Context, domain.CreateSubnetInput) (domain.Subnet, error) {
			return domain.Subnet{}, addrmath.ErrInvalidPrefix
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subnets", strings.NewReader(`{"cidr":"10.0.0.0/33"}`))
	rec := serve(api, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreateSubnetRequiresCIDR(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createSubnetFn: func(context.Context, domain.CreateSubnetInput) (domain.Subnet, error) {
			t.Fatal("service should not be called")
			return domain.Subnet{}, nil
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPost, "/api/v1/subnets", strings.NewReader(`{"description":"x"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if body := decodeBody[ErrorResponse](t, rec); !strings.Contains(body.Error, "cidr") {
		t.Fatalf("expected cidr in error, got %q", body.Error)
	}
}

func TestCreateSubnetOverlapReturnsConflict(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createSubnetFn: func(context.Context, domain.CreateSubnetInput) (domain.Subnet, error) {
			return domain.Subnet{}, domain.ErrConflict
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPost, "/api/v1/subnets", strings.NewReader(`{"cidr":"10.0.0.0/25"}`)))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestCreateSubnetRejectsMalformedJSON(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPost, "/api/v1/subnets", strings.NewReader(`{"cidr":`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreateIPReturnsConflictForExistingIP(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createAddressFn: func(context.Context, int64, domain.AddressInput) (domain.Address, error) {
			return domain.Address{}, domain.ErrConflict
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subnets/42/ips", strings.NewReader(`{"ip":"10.0.0.10","status":"allocated"}`))
	rec := serve(api, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestCreateIPPassesSubnetAndFields(t *testing.T) {
	var gotID int64
	var gotInput domain.AddressInput
	api := newHandlerTestAPI(stubService{
		createAddressFn: func(_ context.Context, id int64, input domain.AddressInput) (domain.Address, error) {
			gotID, gotInput = id, input
			return domain.Address{
				Value:      addrmath.MustParseCIDR("10.0.0.10/32").Base,
				Subnet:     addrmath.MustParseCIDR("10.0.0.0/24"),
				Status:     domain.StatusAllocated,
				AssignedTo: input.AssignedTo,
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subnets/42/ips",
		strings.NewReader(`{"ip":"10.0.0.10","status":"allocated","assigned_to":"printer-1","last_seen":"2024-05-10T15:04:05Z"}`))
	rec := serve(api, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if gotID != 42 || gotInput.IP != "10.0.0.10" || gotInput.AssignedTo != "printer-1" {
		t.Fatalf("unexpected call: id=%d input=%+v", gotID, gotInput)
	}
	if !gotInput.LastSeen.Equal(time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected last seen: %v", gotInput.LastSeen)
	}
	body := decodeBody[IPResponse](t, rec)
	if body.IP != "10.0.0.10" || body.Subnet != "10.0.0.0/24" || body.LastSeen != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateIPRequiresStatus(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPost, "/api/v1/subnets/1/ips", strings.NewReader(`{"ip":"10.0.0.10"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestPutIPUsesPathAddress(t *testing.T) {
	var got domain.AddressInput
	api := newHandlerTestAPI(stubService{
		upsertFn: func(_ context.Context, input domain.AddressInput) (domain.Address, error) {
			got = input
			return domain.Address{Status: domain.StatusReserved}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/ips/192.168.1.5", strings.NewReader(`{"status":"reserved"}`))
	rec := serve(api, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if got.IP != "192.168.1.5" || got.Status != "reserved" || got.Subnet != "" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestPutIPInvalidStatusReturnsBadRequest(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		upsertFn: func(context.Context, domain.AddressInput) (domain.Address, error) {
			return domain.Address{}, domain.ErrInvalidStatus
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPut, "/api/v1/ips/10.0.0.1", strings.NewReader(`{"status":"Used"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if body := decodeBody[ErrorResponse](t, rec); body.Kind != "InvalidStatus" {
		t.Fatalf("expected InvalidStatus kind, got %+v", body)
	}
}

func TestGetIPNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		lookupFn: func(context.Context, string) (domain.Address, error) {
			return domain.Address{}, domain.ErrAddressNotFound
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/ips/10.0.0.9", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestDeleteIPPassesStrictFlag(t *testing.T) {
	tests := []struct {
		query  string
		strict bool
		code   int
	}{
		{query: "", strict: false, code: http.StatusNoContent},
		{query: "?strict=true", strict: true, code: http.StatusNotFound},
		{query: "?strict=maybe", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		called := false
		api := newHandlerTestAPI(stubService{
			removeFn: func(_ context.Context, ip string, strict bool) error {
				called = true
				if ip != "10.0.0.9" || strict != tt.strict {
					t.Fatalf("unexpected call: ip=%s strict=%v", ip, strict)
				}
				if strict {
					return domain.ErrAddressNotFound
				}
				return nil
			},
		}, nil)

		rec := serve(api, httptest.NewRequest(http.MethodDelete, "/api/v1/ips/10.0.0.9"+tt.query, nil))
		if rec.Code != tt.code {
			t.Fatalf("%q: expected %d, got %d", tt.query, tt.code, rec.Code)
		}
		if tt.code == http.StatusBadRequest && called {
			t.Fatalf("%q: service should not be called", tt.query)
		}
	}
}

func TestClaimIPReturnsCreated(t *testing.T) {
	var got domain.AddressInput
	api := newHandlerTestAPI(stubService{
		claimFn: func(_ context.Context, input domain.AddressInput) (domain.Address, error) {
			got = input
			return domain.Address{AssignedTo: input.AssignedTo}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ips/10.0.0.10/claims",
		strings.NewReader(`{"subnet":"10.0.0.0/24","status":"allocated","assigned_to":"host-b"}`))
	rec := serve(api, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
	}
	if got.IP != "10.0.0.10" || got.Subnet != "10.0.0.0/24" || got.AssignedTo != "host-b" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestGetConflictsRendersOwners(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		detectFn: func(context.Context) ([]domain.ConflictRecord, error) {
			return []domain.ConflictRecord{{
				Address:         addrmath.MustParseCIDR("10.0.0.10/32").Base,
				Subnet:          addrmath.MustParseCIDR("10.0.0.0/24"),
				OccurrenceCount: 2,
				Owners:          []string{"host-a", "host-b"},
				Severity:        domain.SeverityWarning,
			}}, nil
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/conflicts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	body := decodeBody[[]ConflictResponse](t, rec)
	if len(body) != 1 || body[0].IP != "10.0.0.10" || len(body[0].Owners) != 2 || body[0].Severity != "warning" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestResolveConflictReportsDroppedClaims(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		resolveFn: func(context.Context, string) (int, error) { return 2, nil },
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/10.0.0.10/resolve", nil))

	body := decodeBody[ResolveConflictResponse](t, rec)
	if rec.Code != http.StatusOK || body.ClaimsDropped != 2 || body.IP != "10.0.0.10" {
		t.Fatalf("unexpected response: %d %+v", rec.Code, body)
	}
}

func TestSetScopeAllocationOutOfRange(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		setAllocationFn: func(context.Context, int64, int) (domain.ScopeUtilization, error) {
			return domain.ScopeUtilization{}, domain.ErrInvalidInput
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPut, "/api/v1/scopes/1/allocation", strings.NewReader(`{"allocated_count":500}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestSetScopeAllocationReturnsLevel(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		setAllocationFn: func(_ context.Context, id int64, allocated int) (domain.ScopeUtilization, error) {
			return domain.Utilization(domain.Scope{ID: id, Name: "guest", TotalCount: 100, AllocatedCount: allocated}), nil
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodPut, "/api/v1/scopes/1/allocation", strings.NewReader(`{"allocated_count":95}`)))

	body := decodeBody[ScopeResponse](t, rec)
	if rec.Code != http.StatusOK || body.Level != "critical" || body.UtilizationPercent != 95 {
		t.Fatalf("unexpected response: %d %+v", rec.Code, body)
	}
	if body.DNSServers == nil {
		t.Fatal("expected empty dns_servers list, got null")
	}
}

func TestCalculatorInvalidInput(t *testing.T) {
	api := NewAPI(zap.NewNop(), nil, newMemoryService(t), nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/calculator?cidr=10.0.0.1", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if body := decodeBody[ErrorResponse](t, rec); body.Kind != "InvalidFormat" {
		t.Fatalf("expected InvalidFormat kind, got %+v", body)
	}
}

func TestCalculatorReturnsBoundaries(t *testing.T) {
	api := NewAPI(zap.NewNop(), nil, newMemoryService(t), nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/calculator?cidr=192.168.1.10/24", nil))

	body := decodeBody[CalculationResponse](t, rec)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if body.Network != "192.168.1.0/24" || body.Broadcast != "192.168.1.255" || body.UsableHosts != 254 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.BinaryMask != "11111111.11111111.11111111.00000000" {
		t.Fatalf("unexpected binary mask: %q", body.BinaryMask)
	}
}

func TestUndefinedCIDRCanBeListedAndSummarized(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()
	seed := []domain.AddressInput{
		{IP: "172.16.4.9", Subnet: "172.16.4.0/24", Status: "allocated"},
		{IP: "172.16.4.2", Subnet: "172.16.4.0/24", Status: "reserved"},
		{IP: "172.16.5.1", Subnet: "172.16.5.0/24", Status: "allocated"},
	}
	for _, in := range seed {
		if _, err := svc.Upsert(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.IP, err)
		}
	}
	api := NewAPI(zap.NewNop(), nil, svc, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/ips?cidr=172.16.4.7/24", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	ips := decodeBody[[]IPResponse](t, rec)
	if len(ips) != 2 || ips[0].IP != "172.16.4.2" || ips[1].IP != "172.16.4.9" {
		t.Fatalf("unexpected ips: %+v", ips)
	}

	rec = serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/summaries?cidr=172.16.4.0/24", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	summaries := decodeBody[[]SummaryResponse](t, rec)
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %+v", summaries)
	}
	got := summaries[0]
	if got.Subnet != "172.16.4.0/24" || got.Defined || got.Total != 2 || got.Allocated != 1 || got.Reserved != 1 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestCIDRQueryValidation(t *testing.T) {
	api := NewAPI(zap.NewNop(), nil, newMemoryService(t), nil)

	for _, target := range []string{
		"/api/v1/ips",
		"/api/v1/ips?cidr=10.0.0.0/33",
		"/api/v1/ips?cidr=banana",
		"/api/v1/summaries?cidr=10.0.0.0",
	} {
		rec := serve(api, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d, got %d", target, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestExportCSVOrdersByAddress(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()
	for _, ip := range []string{"10.0.0.20", "10.0.0.3"} {
		if _, err := svc.Upsert(ctx, domain.AddressInput{IP: ip, Subnet: "10.0.0.0/24", Status: "allocated"}); err != nil {
			t.Fatalf("seed %s: %v", ip, err)
		}
	}
	api := NewAPI(zap.NewNop(), nil, svc, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/export.csv", nil))

	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", rec.Body.String())
	}
	if !strings.HasPrefix(lines[1], "10.0.0.3,") || !strings.HasPrefix(lines[2], "10.0.0.20,") {
		t.Fatalf("rows not ordered by address: %q", lines[1:])
	}
}

func TestImportCSVFromMultipart(t *testing.T) {
	var got []domain.Address
	api := newHandlerTestAPI(stubService{
		importFn: func(_ context.Context, rows []domain.Address) (domain.LoadReport, error) {
			got = rows
			return domain.LoadReport{Inserted: 1, Claims: 1}, nil
		},
	}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(uploadField, "ips.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("IP Address,Subnet,Status,Assigned To\n10.0.0.10,10.0.0.0/24,allocated,host-a\n10.0.0.10,10.0.0.0/24,allocated,host-b\n"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := serve(api, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if len(got) != 2 || got[1].AssignedTo != "host-b" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	body := decodeBody[ImportResponse](t, rec)
	if body.Rows != 2 || body.Inserted != 1 || body.Claims != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestImportCSVRejectsBadRowsBeforeService(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		importFn: func(context.Context, []domain.Address) (domain.LoadReport, error) {
			t.Fatal("service should not be called")
			return domain.LoadReport{}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import",
		strings.NewReader("IP Address,Subnet,Status\n10.0.0.10,10.0.0.0/24,allocated\n10.0.0.300,10.0.0.0/24,allocated\n"))
	req.Header.Set("Content-Type", "text/csv")
	rec := serve(api, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if body := decodeBody[ErrorResponse](t, rec); !strings.Contains(body.Error, "line 3") {
		t.Fatalf("expected line number in error, got %q", body.Error)
	}
}

func TestImportCSVMultipartWithoutFile(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("other", "x")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := serve(api, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestImportCSVRejectsOversizedBody(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		importFn: func(context.Context, []domain.Address) (domain.LoadReport, error) {
			t.Fatal("service should not be called")
			return domain.LoadReport{}, nil
		},
	}, nil)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "long field past the limit",
			body: "IP Address,Subnet,Status,Description\n" +
				"10.0.0.1,10.0.0.0/24,allocated,a\n" +
				"10.0.0.2,10.0.0.0/24,allocated," + strings.Repeat("x", maxBodyBytes+1<<20) + "\n",
		},
		{
			name: "limit falls on a row boundary",
			body: func() string {
				header := "IP Address,Subnet,Status,Description\n"
				prefix := "10.0.0.1,10.0.0.0/24,allocated,"
				pad := maxBodyBytes - len(header) - len(prefix) - 1
				return header + prefix + strings.Repeat("x", pad) + "\n" +
					"10.0.0.2,10.0.0.0/24,allocated,b\n"
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/import", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "text/csv")
			rec := serve(api, req)

			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("expected %d, got %d: %s", http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestImportCSVRejectsOversizedMultipart(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		importFn: func(context.Context, []domain.Address) (domain.LoadReport, error) {
			t.Fatal("service should not be called")
			return domain.LoadReport{}, nil
		},
	}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(uploadField, "ips.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("IP Address,Subnet,Status,Description\n10.0.0.1,10.0.0.0/24,allocated,"))
	_, _ = part.Write(bytes.Repeat([]byte("x"), maxBodyBytes))
	_, _ = part.Write([]byte("\n"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := serve(api, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected %d, got %d: %s", http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
	}
}

func TestImportCSVAcceptsBodyJustUnderLimit(t *testing.T) {
	var got []domain.Address
	api := newHandlerTestAPI(stubService{
		importFn: func(_ context.Context, rows []domain.Address) (domain.LoadReport, error) {
			got = rows
			return domain.LoadReport{Inserted: len(rows)}, nil
		},
	}, nil)

	header := "IP Address,Subnet,Status,Description\n"
	row := "10.0.0.1,10.0.0.0/24,allocated,"
	body := header + row + strings.Repeat("x", maxBodyBytes-len(header)-len(row)-1) + "\n"

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	rec := serve(api, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if len(got) != 1 || len(got[0].Description) != len(body)-len(header)-len(row)-1 {
		t.Fatalf("expected one untruncated row, got %d rows", len(got))
	}
}

func TestImportTemplateHasHeader(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/import/template", nil))

	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "IP Address,Subnet,Status") {
		t.Fatalf("unexpected template: %d %q", rec.Code, rec.Body.String())
	}
}

func TestUnknownErrorIsHidden(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		listSubnetsFn: func(context.Context) ([]domain.Subnet, error) {
			return nil, errors.New("connection reset by peer")
		},
	}, nil)

	rec := serve(api, httptest.NewRequest(http.MethodGet, "/api/v1/subnets", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if body := decodeBody[ErrorResponse](t, rec); body.Error != "internal server error" {
		t.Fatalf("expected generic message, got %q", body.Error)
	}
}

func TestErrorResponseStatusByKind(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{err: fmt.Errorf("bad octet: %w", domain.ErrInvalidFormat), status: http.StatusBadRequest, kind: "InvalidFormat"},
		{err: domain.ErrInvalidAddress, status: http.StatusBadRequest, kind: "InvalidAddress"},
		{err: domain.ErrInvalidPrefix, status: http.StatusBadRequest, kind: "InvalidPrefix"},
		{err: domain.ErrInvalidStatus, status: http.StatusBadRequest, kind: "InvalidStatus"},
		{err: domain.ErrInvalidInput, status: http.StatusBadRequest, kind: "InvalidInput"},
		{err: domain.ErrSubnetNotFound, status: http.StatusNotFound, kind: "NotFound"},
		{err: domain.ErrConflict, status: http.StatusConflict, kind: "Conflict"},
		{err: errMissingToken, status: http.StatusUnauthorized, kind: "Unauthorized"},
		{err: errors.New("boom"), status: http.StatusInternalServerError, kind: ""},
	}
	for _, tt := range tests {
		status, body := errorResponse(tt.err)
		if status != tt.status || body.Kind != tt.kind {
			t.Fatalf("%v: expected %d/%q, got %d/%q", tt.err, tt.status, tt.kind, status, body.Kind)
		}
	}
}

func newMemoryService(t *testing.T) domain.IPAMService {
	t.Helper()
	svc, err := domain.NewIPAMService(context.Background(), domain.Store{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}
