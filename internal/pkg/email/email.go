package email

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/qs3c/contenthub_go_server/config"
)

const dialTimeout = 10 * time.Second

type Service struct {
	cfg *config.EmailConfig
}

func NewService(cfg *config.EmailConfig) *Service {
	return &Service{cfg: cfg}
}

// SendVerificationCode 发送注册邮箱验证码
func (s *Service) SendVerificationCode(to, code string) error {
	subject := "邮箱验证 - ContentHub 内容平台"
	return s.sendHTML(to, subject, codeBody("您正在注册 ContentHub 账号，验证码为：", code))
}

// SendPasswordResetCode 发送重置密码验证码
func (s *Service) SendPasswordResetCode(to, code string) error {
	subject := "重置密码 - ContentHub 内容平台"
	return s.sendHTML(to, subject, codeBody("您正在重置账号密码，验证码为：", code))
}

// SendPasswordChangeCode 发送修改密码验证码
func (s *Service) SendPasswordChangeCode(to, code string) error {
	subject := "修改密码 - ContentHub 内容平台"
	return s.sendHTML(to, subject, codeBody("您正在修改账号密码，验证码为：", code))
}

// SendAccountDeletionCode 发送注销账号验证码
func (s *Service) SendAccountDeletionCode(to, code string) error {
	subject := "注销账号 - ContentHub 内容平台"
	return s.sendHTML(to, subject, codeBody("您正在注销 ContentHub 账号，此操作不可恢复。验证码为：", code))
}

// codeBody 验证码邮件正文
func codeBody(intro, code string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #6366f1;">ContentHub</h2>
        <p>您好，</p>
        <p>%s</p>
        <div style="background-color: #f3f4f6; padding: 15px; text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">
            %s
        </div>
        <p>验证码有效期为 15 分钟，仅可使用一次。</p>
        <p>如果您没有进行此操作，请忽略此邮件。</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">此邮件由系统自动发送，请勿回复。</p>
    </div>
</body>
</html>
`, intro, code)
}

// sendHTML 发送 HTML 邮件。连接带超时，避免邮件服务器无响应时请求被挂死。
func (s *Service) sendHTML(to, subject, body string) error {
	headers := make(map[string]string)
	headers["From"] = s.cfg.From
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
			return fmt.Errorf("failed to start tls: %w", err)
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg.String())); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
