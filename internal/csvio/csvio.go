// Package csvio reads and writes the address inventory CSV format.
package csvio

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net"
	"slices"
	"strings"
	"time"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const (
	ColIP          = "IP Address"
	ColSubnet      = "Subnet"
	ColStatus      = "Status"
	ColAssignedTo  = "Assigned To"
	ColMACAddress  = "MAC Address"
	ColDescription = "Description"
	ColLastSeen    = "Last Seen"
)

// Columns is the export order.
var Columns = []string{ColIP, ColSubnet, ColStatus, ColAssignedTo, ColMACAddress, ColDescription, ColLastSeen}

var required = []string{ColIP, ColSubnet, ColStatus}

// DateLayout is the Last Seen format. Times are written in UTC.
const DateLayout = "2006-01-02 15:04:05"

// maxRowErrors bounds the joined error returned by Import.
const maxRowErrors = 50

var ErrMissingColumn = errors.New("missing required column")

// Export writes rows in ascending integer address order.
func Export(w io.Writer, rows []domain.Address) error {
	sorted := slices.Clone(rows)
	slices.SortFunc(sorted, func(a, b domain.Address) int { return cmp.Compare(a.Value, b.Value) })

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, a := range sorted {
		lastSeen := ""
		if !a.LastSeen.IsZero() {
			lastSeen = a.LastSeen.UTC().Format(DateLayout)
		}
		record := []string{
			a.IP(),
			a.Subnet.String(),
			string(a.Status),
			a.AssignedTo,
			a.MACAddress,
			a.Description,
			lastSeen,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Template writes the header plus sample rows for operators to fill in.
func Template(w io.Writer) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		Columns[:6],
		{"192.168.1.10", "192.168.1.0/24", "allocated", "Server01", "00:11:22:33:44:55", "Web Server"},
		{"192.168.1.11", "192.168.1.0/24", "allocated", "Server02", "00:11:22:33:44:56", "Database Server"},
		{"192.168.1.100", "192.168.1.0/24", "available", "", "", ""},
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// Import parses an inventory file. Header names are matched case
// insensitively and may appear in any order; unknown columns are ignored.
// Any bad row rejects the whole file, and every bad row is reported with
// its line number.
func Import(r io.Reader) ([]domain.Address, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var (
		out  []domain.Address
		errs []error
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The reader reports its own line numbers.
			errs = append(errs, err)
			var perr *csv.ParseError
			if errors.As(err, &perr) && len(errs) < maxRowErrors {
				continue
			}
			break
		}
		line, _ := cr.FieldPos(0)

		a, err := parseRecord(record, index)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			if len(errs) >= maxRowErrors {
				break
			}
			continue
		}
		out = append(out, a)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return out, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		for _, col := range Columns {
			if strings.EqualFold(name, col) {
				if _, dup := index[col]; dup {
					return nil, fmt.Errorf("%w: duplicate column %q", domain.ErrInvalidInput, col)
				}
				index[col] = i
			}
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrInvalidInput, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (domain.Address, error) {
	field := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	ip, err := addrmath.ParseAddr(field(ColIP))
	if err != nil {
		return domain.Address{}, fmt.Errorf("ip address: %w", err)
	}
	n, err := addrmath.ParseCIDR(field(ColSubnet))
	if err != nil {
		return domain.Address{}, fmt.Errorf("subnet: %w", err)
	}
	if !n.Contains(ip) {
		return domain.Address{}, fmt.Errorf("%w: %s is not in %s", domain.ErrInvalidAddress, addrmath.ToDottedQuad(ip), n)
	}
	status, err := domain.ParseStatus(field(ColStatus))
	if err != nil {
		return domain.Address{}, err
	}

	a := domain.Address{
		Value:       ip,
		Subnet:      n,
		Status:      status,
		AssignedTo:  field(ColAssignedTo),
		Description: field(ColDescription),
	}
	if mac := field(ColMACAddress); mac != "" {
		hw, err := net.ParseMAC(mac)
		if err != nil {
			return domain.Address{}, fmt.Errorf("%w: mac address %q", domain.ErrInvalidInput, mac)
		}
		a.MACAddress = hw.String()
	}
	if seen := field(ColLastSeen); seen != "" {
		a.LastSeen, err = parseTime(seen)
		if err != nil {
			return domain.Address{}, fmt.Errorf("%w: last seen %q", domain.ErrInvalidInput, seen)
		}
	}
	return a, nil
}

func parseTime(text string) (time.Time, error) {
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", text)
}
