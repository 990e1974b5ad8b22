package utils

import (
	"github.com/skip2/go-qrcode"
)

// GenerateQRCode 내용으로 QR 코드 PNG 생성 (배송조회 링크 등)
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
