package model

type Filter string

const (
	FilterAll       Filter = "all"
	FilterUpcoming  Filter = "upcoming"
	FilterPending   Filter = "pending"
	FilterConfirmed Filter = "confirmed"
	FilterCompleted Filter = "completed"
	FilterCancelled Filter = "cancelled"
)

// ParseFilter: giá trị lạ được coi như "all"
func ParseFilter(raw string) Filter {
	switch f := Filter(raw); f {
	case FilterUpcoming, FilterPending, FilterConfirmed, FilterCompleted, FilterCancelled:
		return f
	default:
		return FilterAll
	}
}

// Status trả status tương ứng với filter đơn, ok=false cho all/upcoming
func (f Filter) Status() (Status, bool) {
	switch f {
	case FilterPending, FilterConfirmed, FilterCompleted, FilterCancelled:
		return Status(f), true
	default:
		return "", false
	}
}
