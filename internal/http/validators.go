package http

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

func parsePathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q is not a positive integer", domain.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// parseBoolQuery treats a missing parameter as false.
func parseBoolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q is not a boolean", domain.ErrInvalidInput, name, raw)
	}
	return v, nil
}

func required(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
}

func (r CreateSubnetRequest) validate() error {
	return required(map[string]string{"cidr": r.CIDR})
}

func (r CreateIPRequest) validate() error {
	return required(map[string]string{"ip": r.IP, "status": r.Status})
}

func (r AddressRequest) validate() error {
	return required(map[string]string{"status": r.Status})
}

func (r CreateScopeRequest) validate() error {
	return required(map[string]string{
		"name":        r.Name,
		"range_start": r.RangeStart,
		"range_end":   r.RangeEnd,
	})
}
