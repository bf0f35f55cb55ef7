package helpers

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ParsePageSize convierte los parámetros de paginación a enteros aplicando defaults.
func ParsePageSize(pageStr, limitStr string) (int, int) {
	page, _ := strconv.Atoi(strings.TrimSpace(pageStr))
	limit, _ := strconv.Atoi(strings.TrimSpace(limitStr))
	return NormalizePage(page, limit)
}

// NormalizePage reemplaza los valores menores a 1 por los defaults; el resto pasa tal cual.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// PageQuery arma el query string page/limit ya normalizado.
func PageQuery(page, limit int) url.Values {
	page, limit = NormalizePage(page, limit)
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
