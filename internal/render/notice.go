package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mhlegal/intake-service/internal/domain"
)

var consultNoticeTmpl = template.Must(template.New("consult").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>신규 상담 신청</title>
</head>
<body style="margin:0;padding:24px;background:#f5f5f5;font-family:'Apple SD Gothic Neo','Malgun Gothic',sans-serif;color:#222;">
<div style="max-width:640px;margin:0 auto;background:#ffffff;border:1px solid #ddd;padding:32px;">
<h1 style="font-size:18px;border-bottom:2px solid #1a3e6e;padding-bottom:12px;">신규 상담 신청이 접수되었습니다</h1>
<table style="width:100%;border-collapse:collapse;font-size:13px;margin-top:20px;">
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;width:30%;">성명</td><td style="border:1px solid #ddd;padding:8px;">{{.Name}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">연락처</td><td style="border:1px solid #ddd;padding:8px;">{{.Phone}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">접수 시각</td><td style="border:1px solid #ddd;padding:8px;">{{.ReceivedAt}}</td></tr>
</table>
{{- if .MessageHTML}}
<h2 style="font-size:15px;margin-top:24px;">문의 내용</h2>
<div style="font-size:13px;line-height:1.7;background:#fafafa;border:1px solid #eee;padding:12px;">{{.MessageHTML}}</div>
{{- end}}
</div>
</body>
</html>
`))

type consultNoticeData struct {
	Name        string
	Phone       string
	ReceivedAt  string
	MessageHTML template.HTML
}

// ConsultNotice renders the internal notification email sent to the office
// when a consult request arrives.
func ConsultNotice(sub *domain.ConsultSubmission, receivedAt time.Time) (string, error) {
	data := consultNoticeData{
		Name:        strings.TrimSpace(sub.Name),
		Phone:       strings.TrimSpace(sub.Phone),
		ReceivedAt:  receivedAt.Format("2006-01-02 15:04:05"),
		MessageHTML: summaryHTML(sub.Message),
	}

	var b strings.Builder

	err := consultNoticeTmpl.Execute(&b, data)
	if err != nil {
		return "", fmt.Errorf("rendering consult notice: %w", err)
	}

	return b.String(), nil
}
