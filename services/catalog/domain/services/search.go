// Package services holds pure domain services for the catalog context.
package services

import (
	"strings"

	"github.com/ezzystore/partsledger/services/catalog/domain/models"
)

// DropdownLimit caps incremental-search results so the selection dropdown
// stays scannable.
const DropdownLimit = 10

// FilterParts returns all parts whose part number, name, or category contains
// query, case-insensitively. A blank query returns the input unchanged.
// Linear scan; inventories here are shop-scale, not catalog-scale.
func FilterParts(parts []*models.Part, query string) []*models.Part {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return parts
	}

	out := make([]*models.Part, 0, len(parts))
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.PartNumber.String()), query) ||
			strings.Contains(strings.ToLower(p.PartName), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			out = append(out, p)
		}
	}
	return out
}

// SearchParts is the incremental-search variant: matches on part number and
// name only, preserving input order, capped at DropdownLimit results.
func SearchParts(parts []*models.Part, query string) []*models.Part {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	out := make([]*models.Part, 0, DropdownLimit)
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.PartNumber.String()), query) ||
			strings.Contains(strings.ToLower(p.PartName), query) {
			out = append(out, p)
			if len(out) == DropdownLimit {
				break
			}
		}
	}
	return out
}

// LowStockParts returns the parts whose stock is below their minimum,
// preserving input order.
func LowStockParts(parts []*models.Part) []*models.Part {
	out := make([]*models.Part, 0)
	for _, p := range parts {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}
