package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "username", raw: `{"id":1,"username":"alice","email":"a@x"}`, want: "alice"},
		{name: "email fallback", raw: `{"id":1,"username":"","email":"a@x"}`, want: "a@x"},
		{name: "id fallback", raw: `{"id":12}`, want: "12"},
		{name: "no identifier", raw: `{"bio":"hi"}`, want: ""},
		{name: "not an object", raw: `[1,2]`, want: ""},
		{name: "null", raw: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserProfile(tt.raw).DisplayName())
		})
	}
}

func TestUserProfile_KeptVerbatim(t *testing.T) {
	payload := `{"status":"success","access":"A1","refresh":"R1","user":{"id":1,"username":"alice","extra":{"x":[1,2]}}}`

	var resp LoginResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.JSONEq(t, `{"id":1,"username":"alice","extra":{"x":[1,2]}}`, string(resp.User))

	b, err := json.Marshal(resp.User)
	require.NoError(t, err)
	require.JSONEq(t, string(resp.User), string(b))
}

func TestUserProfile_Absent(t *testing.T) {
	var resp LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":"success","access":"A1","refresh":"R1"}`), &resp))
	require.True(t, resp.User.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"user":null}`), &resp))
	require.True(t, resp.User.IsZero())
}
