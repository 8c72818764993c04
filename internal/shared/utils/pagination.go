package utils

import (
	"errors"
	"strconv"

	"tattoo-studio/internal/shared/response"
)

// ErrInvalidPage: page không phải số, < 1 hoặc vượt quá số trang
var ErrInvalidPage = errors.New("invalid page")

const LastPage = "last"

type Page struct {
	Number   int
	Size     int
	Total    int
	NumPages int
}

// Paginate resolve page param theo tổng số row.
// "" là trang 1, "last" là trang cuối. Danh sách rỗng vẫn có 1 trang.
func Paginate(raw string, total, size int) (Page, error) {
	if size < 1 {
		size = 1
	}
	numPages := (total + size - 1) / size
	if numPages < 1 {
		numPages = 1
	}

	number := 1
	switch raw {
	case "":
	case LastPage:
		number = numPages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > numPages {
			return Page{}, ErrInvalidPage
		}
		number = n
	}

	return Page{Number: number, Size: size, Total: total, NumPages: numPages}, nil
}

func (p Page) Offset() int   { return (p.Number - 1) * p.Size }
func (p Page) HasNext() bool { return p.Number < p.NumPages }
func (p Page) HasPrev() bool { return p.Number > 1 }

func (p Page) Meta() *response.Meta {
	return &response.Meta{
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      p.Total,
		TotalPages: p.NumPages,
		HasNext:    p.HasNext(),
		HasPrev:    p.HasPrev(),
	}
}
