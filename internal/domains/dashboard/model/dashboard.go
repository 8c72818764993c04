package model

import (
	appointmentModel "tattoo-studio/internal/domains/appointment/model"
	requestModel "tattoo-studio/internal/domains/tattoorequest/model"
)

type Stats struct {
	CompletedAppointments int `json:"completed_appointments"`
	UpcomingAppointments  int `json:"upcoming_appointments"`
	TotalRequests         int `json:"total_requests"`
	TotalDesigns          int `json:"total_designs"`
}

type Dashboard struct {
	Stats                Stats                                  `json:"stats"`
	UpcomingAppointments []appointmentModel.AppointmentResponse `json:"upcoming_appointments"`
	RecentRequests       []requestModel.TattooRequestResponse   `json:"recent_requests"`
}
