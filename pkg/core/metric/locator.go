// Package metric searches the document -> code -> metric tree of a report's
// metrics file.
package metric

import (
	"fmt"

	"report_vqa/pkg/models"
)

// NotFoundError reports a sid with no record in the metrics collection.
type NotFoundError struct {
	SID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("metric not found: sid %q", e.SID)
}

// Locate returns the first record whose sid matches, walking groups, codes and
// metrics in stored order. ok is false when nothing matches.
func Locate(groups []models.CodeGroup, sid string) (record models.MetricRecord, ok bool) {
	for _, group := range groups {
		for _, code := range group.Codes {
			for _, m := range code.Metrics {
				if m.SID == sid {
					return m, true
				}
			}
		}
	}
	return models.MetricRecord{}, false
}

// DuplicateSIDs lists sids that appear more than once, in first-seen order.
// Locate resolves such sids to their first occurrence.
func DuplicateSIDs(groups []models.CodeGroup) []string {
	seen := make(map[string]int)
	var dups []string
	for _, group := range groups {
		for _, code := range group.Codes {
			for _, m := range code.Metrics {
				seen[m.SID]++
				if seen[m.SID] == 2 {
					dups = append(dups, m.SID)
				}
			}
		}
	}
	return dups
}
