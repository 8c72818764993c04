package model

const (
	TitleMinLength       = 5
	TitleMaxLength       = 200
	DescriptionMinLength = 20

	// Dashboard hiển thị 6 request gần nhất
	RecentLimit = 6

	UploadPrefix = "tattoo_requests"

	MsgCreated = "Your tattoo request has been submitted! An artist will review it soon."
)

// FormHelp là help text của form tạo request
var FormHelp = map[string]string{
	"title":           "Give your tattoo idea a title",
	"description":     "Describe your tattoo concept in detail (placement, size, style, colors, etc.)",
	"reference_image": "Upload a reference image (optional)",
}
