package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Job is one posting as returned by the scrape service.
//
// Empty string fields are treated as absent: a filter that targets an
// absent attribute never matches.
type Job struct {
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        string     `json:"location,omitempty"`
	JobType         string     `json:"job_type,omitempty"`
	Salary          Salary     `json:"salary"`
	MaxAmount       Salary     `json:"max_amount"`
	ExperienceLevel string     `json:"experience_level,omitempty"`
	IsRemote        RemoteFlag `json:"is_remote"`
	DatePosted      string     `json:"date_posted,omitempty"`
	Description     string     `json:"description,omitempty"`
	URL             string     `json:"job_url,omitempty"`
	Site            string     `json:"site,omitempty"`
	CompanyLogo     string     `json:"company_logo,omitempty"`
}

// ScoredJob carries the transient relevance score computed for a keyword query.
type ScoredJob struct {
	Job
	Score int `json:"score"`
}

// Salary is a numeric amount that may be missing or unparseable upstream.
type Salary struct {
	Value float64
	Valid bool
}

// NewSalary returns a valid salary of value v.
func NewSalary(v float64) Salary {
	return Salary{Value: v, Valid: true}
}

// ParseSalary accepts a JSON-decoded number or a numeric string.
// Anything else yields an invalid salary.
func ParseSalary(value any) Salary {
	switch v := value.(type) {
	case float64:
		return finiteSalary(v)
	case int:
		return NewSalary(float64(v))
	case int64:
		return NewSalary(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Salary{}
		}
		return finiteSalary(f)
	case string:
		return ParseSalaryString(v)
	}
	return Salary{}
}

// ParseSalaryString parses values such as "85000", "85000.0" or " 50000.00 ".
func ParseSalaryString(value string) Salary {
	value = strings.TrimSpace(value)
	if value == "" {
		return Salary{}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Salary{}
	}
	return finiteSalary(f)
}

func finiteSalary(f float64) Salary {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Salary{}
	}
	return NewSalary(f)
}

// OrZero is the sort key: a missing salary counts as 0.
func (s Salary) OrZero() float64 {
	if !s.Valid {
		return 0
	}
	return s.Value
}

func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

func (s *Salary) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSalary(raw)
	return nil
}

// RemoteFlag keeps the raw is_remote value exactly as the upstream sent it.
// The upstream contract is the string sentinel "yes"; booleans and other
// strings are kept so they can be told apart from it.
type RemoteFlag struct {
	raw any
}

// NewRemoteFlag wraps a JSON-decoded value (string, bool, float64 or nil).
func NewRemoteFlag(value any) RemoteFlag {
	return RemoteFlag{raw: value}
}

// IsYes reports whether the raw value is exactly the string "yes".
// A boolean true does not qualify.
func (r RemoteFlag) IsYes() bool {
	s, ok := r.raw.(string)
	return ok && s == "yes"
}

// Truthy follows JavaScript truthiness of the raw value.
func (r RemoteFlag) Truthy() bool {
	switch v := r.raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	}
	return true
}

// Raw returns the value as decoded from the upstream payload.
func (r RemoteFlag) Raw() any {
	return r.raw
}

func (r RemoteFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw)
}

func (r *RemoteFlag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.raw = raw
	return nil
}
