package model

import "github.com/shopspring/decimal"

const (
	PageSize      = 10
	UpcomingLimit = 5

	MsgBooked            = "Your appointment request has been submitted and is awaiting approval."
	MsgCancelled         = "Your appointment has been cancelled."
	MsgRescheduleContact = "Please contact your artist to reschedule."
	RescheduleRedirect   = "/appointments/"

	MsgInvalidChoice   = "Select a valid choice."
	MsgInvalidDateTime = "Enter a valid date/time."
	MsgInvalidNumber   = "Enter a number."
)

var (
	DefaultDuration = decimal.NewFromInt(2)
	MinDuration     = decimal.RequireFromString("0.5")
	MaxDuration     = decimal.NewFromInt(8)
)

// FormHelp là help text của booking form
var FormHelp = map[string]string{
	"artist_id":         "Select your preferred artist",
	"tattoo_request_id": "Choose an approved design (optional)",
	"scheduled_date":    "Preferred date and time",
	"duration_hours":    "Estimated session duration",
}
