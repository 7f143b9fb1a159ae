package serverutils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"sample-be/internal/apperror"
	"sample-be/internal/constant"
	"sample-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ParsePageRequest reads ?page=&size=&sort=field,asc|desc (sort repeatable).
// Sort properties are checked against the entity's whitelist by the service.
func ParsePageRequest(ctx *fiber.Ctx, entityName string) (dto.PageRequest, error) {
	page := dto.PageRequest{Page: 0, Size: dto.DefaultPageSize}

	if raw := ctx.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, apperror.ValidationFailure(entityName, "page", "must be a non-negative integer")
		}
		page.Page = n
	}
	if raw := ctx.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return page, apperror.ValidationFailure(entityName, "size", "must be a positive integer")
		}
		if n > dto.MaxPageSize {
			n = dto.MaxPageSize
		}
		page.Size = n
	}
	if !page.OffsetFits() {
		return page, apperror.ValidationFailure(entityName, "page", "is too large for the page size")
	}

	for _, raw := range ctx.Context().QueryArgs().PeekMulti("sort") {
		parts := strings.Split(string(raw), ",")
		order := dto.SortOrder{Property: strings.TrimSpace(parts[0])}
		if order.Property == "" {
			continue
		}
		if len(parts) > 1 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "desc":
				order.Desc = true
			case "asc", "":
			default:
				return page, apperror.ValidationFailure(entityName, "sort", "direction must be asc or desc")
			}
		}
		page.Sort = append(page.Sort, order)
	}
	return page, nil
}

// SetPaginationHeaders writes X-Total-Count and an RFC 5988 Link header. The
// links keep the request's query (sort, filters) and only replace page and size.
func SetPaginationHeaders[T any](ctx *fiber.Ctx, page *dto.Page[T]) {
	ctx.Set(constant.HeaderTotalCount, strconv.FormatInt(page.TotalElements, 10))

	query := url.Values{}
	ctx.Context().QueryArgs().VisitAll(func(key, value []byte) {
		query.Add(string(key), string(value))
	})

	base := ctx.BaseURL() + ctx.Path()
	link := func(number int, rel string) string {
		query.Set("page", strconv.Itoa(number))
		query.Set("size", strconv.Itoa(page.Size))
		return fmt.Sprintf(`<%s?%s>; rel="%s"`, base, query.Encode(), rel)
	}

	lastPage := page.TotalPages() - 1
	if lastPage < 0 {
		lastPage = 0
	}
	links := make([]string, 0, 4)
	if page.HasNext() {
		links = append(links, link(page.Number+1, "next"))
	}
	if page.HasPrevious() {
		links = append(links, link(page.Number-1, "prev"))
	}
	links = append(links, link(lastPage, "last"), link(0, "first"))
	ctx.Set(fiber.HeaderLink, strings.Join(links, ","))
}
