package geoedge

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// flexInt coerces loosely typed JSON to an int. The upstream API is not
// consistent about numeric fields (plain ints, quoted strings, floats,
// booleans and null all occur); anything unparseable decodes to 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	switch s {
	case "", "null":
		*f = 0
		return nil
	case "true":
		*f = 1
		return nil
	case "false":
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(int(v))
	return nil
}

// flexString tolerates unquoted scalars in fields we expect as strings,
// e.g. numeric status codes.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" {
		*f = ""
		return nil
	}
	*f = flexString(s)
	return nil
}

// StatusEnvelope is the code/message pair the API attaches to every
// response.
type StatusEnvelope struct {
	Code    flexString `json:"code"`
	Message string     `json:"message"`
}

var successMarkers = []string{"success", "ok", "updated"}

// Success reports whether the envelope indicates an accepted request.
// Matching is case-insensitive and substring-tolerant on the message,
// since the API wording varies between endpoints.
func (s StatusEnvelope) Success() bool {
	code := strings.ToLower(strings.TrimSpace(string(s.Code)))
	message := strings.ToLower(strings.TrimSpace(s.Message))
	for _, marker := range successMarkers {
		if code == marker {
			return true
		}
		if message != "" && strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

type projectPayload struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	AutoScan    flexInt    `json:"auto_scan"`
	TimesPerDay flexInt    `json:"times_per_day"`
}

func (p projectPayload) scanConfig() domain.ScanConfig {
	return domain.ScanConfig{
		AutoScan:    p.AutoScan != 0,
		ScansPerDay: int(p.TimesPerDay),
	}
}

type getResponse struct {
	Status   StatusEnvelope `json:"status"`
	Response struct {
		Project projectPayload `json:"project"`
	} `json:"response"`
}

type updateResponse struct {
	Status StatusEnvelope `json:"status"`
}

type listResponse struct {
	Status   StatusEnvelope   `json:"status"`
	Projects []projectPayload `json:"projects"`
	NextPage string           `json:"next_page"`
}

// RemoteProject is one entry from the paginated project listing.
type RemoteProject struct {
	ID     string
	Name   string
	Config domain.ScanConfig
}
