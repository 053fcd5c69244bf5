package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequestPassword(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Password
	}{
		{"number", `{"username":"alice","password":1234}`, "1234"},
		{"integral float", `{"username":"alice","password":1234.0}`, "1234"},
		{"exponent", `{"username":"alice","password":1.234e3}`, "1234"},
		{"fraction", `{"username":"alice","password":12.5}`, "12.5"},
		{"string", `{"username":"alice","password":"1234"}`, "1234"},
		{"text", `{"username":"alice","password":"hunter2"}`, "hunter2"},
		{"null", `{"username":"alice","password":null}`, ""},
		{"missing", `{"username":"alice"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req LoginRequestDTO
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, tt.want, req.Password)
		})
	}
}

func TestLoginRequestPasswordRejectsObjects(t *testing.T) {
	var req LoginRequestDTO
	assert.Error(t, json.Unmarshal([]byte(`{"username":"alice","password":{"x":1}}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"username":"alice","password":true}`), &req))
}
