package transform

import "github.com/ukaji3/timecollect-go/pkg/timecollect/models"

// DefaultClient is reported for project codes missing from the index.
const DefaultClient = "YTP"

// ClientIndex maps project codes to billing clients. It is immutable once
// built and safe for concurrent use.
type ClientIndex struct {
	clients  map[string]string
	projects []models.Project
}

// NewClientIndex indexes project reference rows of the form
// [code, name, client, ...]. Rows with three or fewer cells are skipped, and a
// repeated code keeps the client of its last row.
func NewClientIndex(rows [][]string) *ClientIndex {
	idx := &ClientIndex{clients: make(map[string]string)}
	for _, row := range rows {
		if len(row) <= 3 {
			continue
		}
		idx.clients[row[0]] = row[2]
		idx.projects = append(idx.projects, models.Project{
			Code:   row[0],
			Name:   row[1],
			Client: row[2],
		})
	}
	return idx
}

// Lookup returns the client of code, or DefaultClient.
func (idx *ClientIndex) Lookup(code string) string {
	if code == "" {
		return DefaultClient
	}
	if client, ok := idx.clients[code]; ok {
		return client
	}
	return DefaultClient
}

// Len returns the number of distinct indexed codes.
func (idx *ClientIndex) Len() int {
	return len(idx.clients)
}

// Projects returns the indexed rows in input order.
func (idx *ClientIndex) Projects() []models.Project {
	return append([]models.Project(nil), idx.projects...)
}
