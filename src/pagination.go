package src

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPageNumber  = 0
	DefaultPageSize    = 10
	DefaultMaxPageSize = 2000
)

type PageRequest struct {
	Page int
	Size int
}

// Offset number of rows to skip for this page, only meaningful when Beyond is false
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Beyond reports whether the page starts after the last of total elements.
// Pages whose offset does not fit in an int are always beyond.
func (p PageRequest) Beyond(total int64) bool {
	if p.Size < 1 || p.Page < 0 {
		return true
	}
	if int64(p.Page) > math.MaxInt/int64(p.Size) {
		return true
	}
	return int64(p.Page)*int64(p.Size) >= total
}

// Page envelope returned by the list route
type Page struct {
	Content       []Message `json:"content"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

func NewPage(content []Message, p PageRequest, total int64) *Page {
	if content == nil {
		content = []Message{}
	}
	totalPages := 0
	if p.Size > 0 {
		totalPages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return &Page{
		Content:       content,
		Number:        p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// ParsePageRequest reads page and size query parameters.
// Anything missing or unusable falls back to the defaults, size is capped at maxSize.
func ParsePageRequest(query url.Values, maxSize int) PageRequest {
	if maxSize < 1 {
		maxSize = DefaultMaxPageSize
	}

	p := PageRequest{Page: DefaultPageNumber, Size: DefaultPageSize}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page >= 0 {
		p.Page = page
	}
	if size, err := strconv.Atoi(query.Get("size")); err == nil && size > 0 {
		p.Size = size
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}
