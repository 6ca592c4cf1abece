package viewer

import (
	"github.com/ironsheep/name-list-tools/internal/names"
)

// Status records whether a name has been submitted to the search engine in
// this session.
type Status int

const (
	Unsearched Status = iota
	Searched
)

// String returns the tag shown next to a name.
func (s Status) String() string {
	if s == Searched {
		return "Searched"
	}
	return ""
}

// MarshalText encodes the status as "searched" or "unsearched".
func (s Status) MarshalText() ([]byte, error) {
	if s == Searched {
		return []byte("searched"), nil
	}
	return []byte("unsearched"), nil
}

// Row is one line of the name list as presented to the user.
type Row struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Tag    string `json:"tag"`
}

// Snapshot is an immutable copy of the viewer state.
type Snapshot struct {
	Source    string `json:"source"`
	Query     string `json:"query"`
	Rows      []Row  `json:"rows"`
	Total     int    `json:"total"`
	Result    string `json:"result"`
	ResultFor string `json:"result_for,omitempty"`
	Message   string `json:"message,omitempty"`
	Searching string `json:"searching,omitempty"`
}

// BuildRows filters list by query and pairs each remaining name with its
// search status. Names missing from status are Unsearched.
func BuildRows(list []string, status map[string]Status, query string) []Row {
	filtered := names.Filter(list, query)
	rows := make([]Row, len(filtered))
	for i, name := range filtered {
		st := status[name]
		rows[i] = Row{Name: name, Status: st, Tag: st.String()}
	}
	return rows
}
