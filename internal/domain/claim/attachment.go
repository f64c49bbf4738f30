package claim

import (
	"fmt"
	"time"

	"claimdesk/internal/shared/biztime"
	"claimdesk/internal/shared/id"
)

// Attachment is an embedded file reference on a claim. Only metadata is
// stored here; the file itself lives in external storage behind the URL.
type Attachment struct {
	id           string
	uploaderID   uint
	uploaderName string
	fileName     string
	url          string
	mimeType     *string
	sizeBytes    *int64
	createdAt    time.Time
}

func NewAttachment(
	uploaderID uint,
	uploaderName string,
	fileName string,
	url string,
	mimeType *string,
	sizeBytes *int64,
) (*Attachment, error) {
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name cannot be empty")
	}
	if url == "" {
		return nil, fmt.Errorf("URL cannot be empty")
	}
	if sizeBytes != nil && *sizeBytes < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	attachmentID, err := id.NewAttachmentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate attachment ID: %w", err)
	}

	return &Attachment{
		id:           attachmentID,
		uploaderID:   uploaderID,
		uploaderName: uploaderName,
		fileName:     fileName,
		url:          url,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	attachmentID string,
	uploaderID uint,
	uploaderName string,
	fileName string,
	url string,
	mimeType *string,
	sizeBytes *int64,
	createdAt time.Time,
) (*Attachment, error) {
	if attachmentID == "" {
		return nil, fmt.Errorf("attachment ID cannot be empty")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		id:           attachmentID,
		uploaderID:   uploaderID,
		uploaderName: uploaderName,
		fileName:     fileName,
		url:          url,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() string {
	return a.id
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) UploaderName() string {
	return a.uploaderName
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) URL() string {
	return a.url
}

func (a *Attachment) MimeType() *string {
	return a.mimeType
}

func (a *Attachment) SizeBytes() *int64 {
	return a.sizeBytes
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}
