package shared

// Asynq task types
const (
	TypeProcessReferenceImage = "tattoo_request:process_reference_image"
	TypeBackfillThumbnails    = "tattoo_request:backfill_thumbnails"
	// TypeInvalidateArtistCache do admin backoffice enqueue sau khi thêm/sửa artist
	TypeInvalidateArtistCache = "artist:invalidate_cache"
)

// Asynq queues
const (
	QueueMedia   = "media"
	QueueDefault = "default"
)

// ReferenceImagePayload là payload của TypeProcessReferenceImage
type ReferenceImagePayload struct {
	TattooRequestID string `json:"tattoo_request_id"`
}

// BackfillThumbnailsPayload là payload của TypeBackfillThumbnails
type BackfillThumbnailsPayload struct {
	Limit int `json:"limit"`
}
