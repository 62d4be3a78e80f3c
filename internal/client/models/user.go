package models

import (
	"encoding/json"
	"fmt"
)

// UserProfile is the backend's user payload. It is kept verbatim so it can
// be stored and returned unchanged; only DisplayName looks inside.
type UserProfile json.RawMessage

func (u UserProfile) IsZero() bool {
	s := string(u)
	return len(u) == 0 || s == "null" || s == "{}"
}

func (u UserProfile) MarshalJSON() ([]byte, error) {
	if len(u) == 0 {
		return []byte("null"), nil
	}
	return []byte(u), nil
}

func (u *UserProfile) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*u = nil
		return nil
	}
	*u = append((*u)[:0], b...)
	return nil
}

// DisplayName returns username, then email, then id; "" if none is present.
func (u UserProfile) DisplayName() string {
	if u.IsZero() {
		return ""
	}

	var fields map[string]any
	if err := json.Unmarshal(u, &fields); err != nil {
		return ""
	}

	for _, k := range []string{"username", "email", "id"} {
		v, ok := fields[k]
		if !ok || v == nil {
			continue
		}
		switch x := v.(type) {
		case string:
			if x != "" {
				return x
			}
		case float64:
			return fmt.Sprintf("%v", x)
		}
	}
	return ""
}
