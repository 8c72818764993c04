package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// BookForm là body thô của POST /appointments/book/.
// scheduled_date và duration_hours giữ dạng raw để lỗi parse thành lỗi theo field.
type BookForm struct {
	ArtistID        string          `json:"artist_id"`
	TattooRequestID string          `json:"tattoo_request_id"`
	ScheduledDate   string          `json:"scheduled_date"`
	DurationHours   json.RawMessage `json:"duration_hours"`
	Notes           string          `json:"notes"`
}

// scheduledLayouts: RFC3339 và dạng datetime-local của form HTML (không timezone, hiểu là UTC)
var scheduledLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseScheduled(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range scheduledLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New(MsgInvalidDateTime)
}

// parseDuration nhận cả số JSON lẫn chuỗi ("2.5"), rỗng/null là không nhập
func parseDuration(raw json.RawMessage) (*decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return nil, nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return nil, errors.New(MsgInvalidNumber)
	}
	return &d, nil
}

// ToBookRequest parse form thành BookRequest. Lỗi parse được gộp với lỗi validate
// của các field còn lại để client nhận đủ lỗi trong một lần.
func (f BookForm) ToBookRequest() (BookRequest, error) {
	req := BookRequest{
		ArtistID:        f.ArtistID,
		TattooRequestID: f.TattooRequestID,
		Notes:           f.Notes,
	}

	parseErrs := validation.Errors{}
	if t, err := parseScheduled(f.ScheduledDate); err != nil {
		parseErrs["scheduled_date"] = err
	} else {
		req.ScheduledDate = t
	}
	if d, err := parseDuration(f.DurationHours); err != nil {
		parseErrs["duration_hours"] = err
	} else {
		req.DurationHours = d
	}

	if len(parseErrs) == 0 {
		return req, nil
	}

	// field parse lỗi giữ message parse, không bị "This field is required." đè
	partial := req
	partial.Normalize()
	var verrs validation.Errors
	if errors.As(partial.Validate(), &verrs) {
		for field, err := range verrs {
			if _, taken := parseErrs[field]; !taken {
				parseErrs[field] = err
			}
		}
	}
	return req, parseErrs
}
