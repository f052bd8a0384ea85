package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// ValidateMimeType 업로드 스트림 앞부분을 읽어 MIME 타입을 검사한다
// allowedTypes: 허용할 MIME 접두사 또는 전체 타입 ("image/", "application/pdf" 등)
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsImage 이미지 여부
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// AllowedAttachmentExtension 확장자가 허용 목록에 있는지 확인한다
// 한글(hwp) 문서는 DetectContentType이 octet-stream으로 판별하므로 확장자로 거른다
func AllowedAttachmentExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedAttachmentExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
