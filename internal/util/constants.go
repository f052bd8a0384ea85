package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 첨부파일 업로드 관련 상수
const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedAttachmentExtensions = []string{".pdf", ".png", ".jpg", ".jpeg", ".gif", ".hwp", ".hwpx", ".docx", ".pptx", ".xlsx"}
)
