package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// SendPartnerDeliveryEmail 협력사 담당자에게 배송정보 등록 통합 안내 메일 (async)
func SendPartnerDeliveryEmail(to, partnerName string, count int, orderNumbers []string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		if host == "" || to == "" {
			log.Printf("SMTP 미설정 또는 수신자 없음 - 협력사 메일 생략 (%s)", partnerName)
			return
		}

		port, _ := strconv.Atoi(portStr)

		var body strings.Builder
		body.WriteString(fmt.Sprintf("<p>%s님, 배송정보 %d건이 등록되었습니다.</p>", partnerName, count))
		body.WriteString("<ul>")
		for _, no := range orderNumbers {
			body.WriteString("<li>" + no + "</li>")
		}
		body.WriteString("</ul>")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("[배송정보 등록] %s %d건", partnerName, count))
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("협력사 메일 발송 실패 (%s): %v", partnerName, err)
		}
	}()
}

// SendAdminAlertEmail 관리자에게 단순 텍스트 경고 메일 (가져오기 실패 요약 등)
func SendAdminAlertEmail(subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	to := os.Getenv("ADMIN_EMAIL")

	if host == "" || to == "" {
		return fmt.Errorf("SMTP 설정이 없습니다")
	}

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	return e.Send(host+":"+portStr, smtp.PlainAuth("", username, password, host))
}
