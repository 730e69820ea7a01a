package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/aussiebroadwan/werewolf/internal/setup/domain"
)

// CustomRolesKey is the blob key custom roles are stored under.
const CustomRolesKey = "play-werewolf-custom-roles"

// ErrCorrupt marks a stored collection that failed to parse or whose
// records do not have exactly the expected shape.
var ErrCorrupt = errors.New("store: corrupt collection")

// ValidateRecords parses raw as a JSON array of objects and checks that
// every element carries exactly the expected keys, no more and no less.
// Any failure rejects the whole collection.
func ValidateRecords(raw []byte, expected []string) ([]map[string]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if items == nil {
		// JSON null parses into a nil slice.
		return nil, fmt.Errorf("%w: not a sequence", ErrCorrupt)
	}

	want := slices.Sorted(slices.Values(expected))
	records := make([]map[string]json.RawMessage, 0, len(items))
	for i, item := range items {
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(item, &rec); err != nil || rec == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrCorrupt, i)
		}
		if got := slices.Sorted(maps.Keys(rec)); !slices.Equal(got, want) {
			return nil, fmt.Errorf("%w: element %d has keys %v", ErrCorrupt, i, got)
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeCustomRoles validates raw and decodes it into typed records.
// A value of the wrong JSON type, a null, or an unknown team is a shape
// mismatch like a missing key.
func DecodeCustomRoles(raw []byte) ([]domain.CustomRoleRecord, error) {
	records, err := ValidateRecords(raw, domain.CustomRoleKeys)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CustomRoleRecord, 0, len(records))
	for i, rec := range records {
		var r domain.CustomRoleRecord
		fields := []struct {
			key string
			dst any
		}{
			{"role", &r.Role},
			{"description", &r.Description},
			{"team", &r.Team},
			{"isTypeOfWerewolf", &r.IsTypeOfWerewolf},
			{"custom", &r.Custom},
			{"saved", &r.Saved},
		}
		for _, f := range fields {
			v := rec[f.key]
			if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				return nil, fmt.Errorf("%w: element %d: %s is null", ErrCorrupt, i, f.key)
			}
			if err := json.Unmarshal(v, f.dst); err != nil {
				return nil, fmt.Errorf("%w: element %d: %s: %v", ErrCorrupt, i, f.key, err)
			}
		}
		if !r.Team.Valid() {
			return nil, fmt.Errorf("%w: element %d: unknown team %q", ErrCorrupt, i, r.Team)
		}
		out = append(out, r)
	}
	return out, nil
}

// EncodeCustomRoles serialises a collection. An empty or nil collection is
// written as [] so the key never reads back as missing or corrupt.
func EncodeCustomRoles(records []domain.CustomRoleRecord) ([]byte, error) {
	if records == nil {
		records = []domain.CustomRoleRecord{}
	}
	return json.Marshal(records)
}
