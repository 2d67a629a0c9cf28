package models

// Page is one page of a cursor-paginated collection. TotalCount is zero when
// the server does not report an overall count.
type Page[T any] struct {
	Items      []T
	TotalCount int
}
