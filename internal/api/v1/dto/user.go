package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"amozeshgah/internal/model"
)

// Password accepts either a JSON string or a JSON number and keeps its text.
type Password string

func (p *Password) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Password(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("password must be a string or a number: %w", err)
	}
	*p = Password(numberText(n))
	return nil
}

// numberText writes integral numbers such as 1234.0 or 1.234e3 as "1234".
func numberText(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

// LoginRequestDTO is the body of POST /api/login
type LoginRequestDTO struct {
	Username string   `json:"username"`
	Password Password `json:"password"`
}

// DashboardRequestDTO is the body of POST /api/dashboard
type DashboardRequestDTO struct {
	UserID string `json:"userId"`
}

// UserEnvelopeDTO wraps the user row returned by login and dashboard lookups
type UserEnvelopeDTO struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}
