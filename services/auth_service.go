package services

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// HashPassword băm mật khẩu bằng bcrypt, không bao giờ lưu mật khẩu thô
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so mật khẩu với hash đã lưu
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateToken tạo access token chứa userid và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("ACCESS_TOKEN_SECRET")))
}

// SendBookingEmail gửi email xác nhận yêu cầu đặt phòng
func SendBookingEmail(email string, bookingID uint, roomName string, totalCost int64, checkIn, checkOut string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}

	to := []string{email}
	subject := "Subject: Yêu cầu đặt phòng của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Đặt phòng</title>
		</head>
		<body>
			<p>Xin chào,</p>
			<p>Chúng tôi đã nhận yêu cầu đặt phòng <strong>%s</strong> của bạn (mã số %d).</p>
			<p>Nhận phòng: <strong>%s</strong> - Trả phòng: <strong>%s</strong></p>
			<p>Tổng tiền: <strong>%d</strong></p>
			<p>Yêu cầu đang chờ chủ phòng duyệt, chúng tôi sẽ báo lại khi có kết quả.</p>
			<p>Xin cám ơn,<br>Hotel Mate</p>
		</body>
		</html>
	`, roomName, bookingID, checkIn, checkOut, totalCost)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
