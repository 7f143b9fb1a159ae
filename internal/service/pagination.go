package service

import (
	"fmt"

	"sample-be/internal/apperror"
	"sample-be/internal/dto"
	"sample-be/internal/repository/specification"
)

// Sortable properties per entity, mapped to their columns.
var (
	parentEntitySortColumns = map[string]string{
		"id":            "id",
		"requiredField": "required_field",
	}
	childEntitySortColumns = map[string]string{
		"id":         "id",
		"childField": "child_field",
	}
)

// pageSpecifications turns a page request into order + limit/offset
// specifications. Results are always ordered by id last so pages are stable.
func pageSpecifications(entityName string, page dto.PageRequest, columns map[string]string) ([]specification.Specification, error) {
	if !page.OffsetFits() {
		return nil, apperror.ValidationFailure(entityName, "page", "page and size are out of range")
	}
	specs := make([]specification.Specification, 0, len(page.Sort)+2)
	sortedById := false
	for _, order := range page.Sort {
		column, ok := columns[order.Property]
		if !ok {
			return nil, apperror.ValidationFailure(entityName, "sort", fmt.Sprintf("cannot sort by %q", order.Property))
		}
		if column == "id" {
			sortedById = true
		}
		specs = append(specs, specification.OrderBy{Field: column, Desc: order.Desc})
	}
	if !sortedById {
		specs = append(specs, specification.OrderBy{Field: "id"})
	}
	return append(specs, specification.Pagination{Limit: page.Size, Offset: page.Offset()}), nil
}
