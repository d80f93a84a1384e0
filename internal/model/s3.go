package model

import "time"

type FileMetadata struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	S3Key       string    `json:"s3_key"`
	S3Bucket    string    `json:"s3_bucket"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
