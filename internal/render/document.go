// Package render turns validated submissions into self-contained HTML
// documents for email delivery. All user-supplied values pass through
// html/template's contextual escaping; a raw submission can never inject
// markup into the generated document.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mhlegal/intake-service/internal/domain"
)

// includedServices is the fixed service list printed on every quote.
var includedServices = []string{
	"사건 검토 및 회수 가능성 진단",
	"내용증명 작성 및 발송",
	"지급명령 신청 대행",
	"상대방 재산 조회 안내",
	"진행 상황 정기 보고",
}

// roleLabels and counterpartyLabels map enum keys to document wording.
var roleLabels = map[domain.Role]string{
	domain.RoleCreditor: "채권자 (받을 돈이 있음)",
	domain.RoleDebtor:   "채무자 (갚을 돈이 있음)",
}

var counterpartyLabels = map[domain.Counterparty]string{
	domain.CounterpartyIndividual:   "개인",
	domain.CounterpartyOrganization: "법인/사업자",
}

// quoteDocumentTmpl is a complete standalone document: inline styles only,
// no external references, so it survives every mail client.
var quoteDocumentTmpl = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>견적서 {{.QuoteNumber}}</title>
</head>
<body style="margin:0;padding:24px;background:#f5f5f5;font-family:'Apple SD Gothic Neo','Malgun Gothic',sans-serif;color:#222;">
<div style="max-width:640px;margin:0 auto;background:#ffffff;border:1px solid #ddd;padding:32px;">
<h1 style="font-size:20px;border-bottom:2px solid #1a3e6e;padding-bottom:12px;">채권추심 법률서비스 견적서</h1>
<p style="font-size:13px;color:#666;">견적번호: {{.QuoteNumber}}</p>
<h2 style="font-size:15px;margin-top:28px;">의뢰인 정보</h2>
<table style="width:100%;border-collapse:collapse;font-size:13px;">
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;width:30%;">성명</td><td style="border:1px solid #ddd;padding:8px;">{{.Name}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">연락처</td><td style="border:1px solid #ddd;padding:8px;">{{.Phone}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">이메일</td><td style="border:1px solid #ddd;padding:8px;">{{.Email}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">의뢰인 구분</td><td style="border:1px solid #ddd;padding:8px;">{{.RoleLabel}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">상대방 구분</td><td style="border:1px solid #ddd;padding:8px;">{{.CounterpartyLabel}}</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">채권 금액</td><td style="border:1px solid #ddd;padding:8px;">{{.AmountLabel}}</td></tr>
</table>
<h2 style="font-size:15px;margin-top:28px;">수임료 안내</h2>
<table style="width:100%;border-collapse:collapse;font-size:13px;">
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;width:30%;">착수금</td><td style="border:1px solid #ddd;padding:8px;font-weight:bold;">{{.ConsultingFee}}만원</td></tr>
<tr><td style="border:1px solid #ddd;padding:8px;background:#fafafa;">성공보수</td><td style="border:1px solid #ddd;padding:8px;">{{.SuccessFeeNote}}</td></tr>
</table>
<h2 style="font-size:15px;margin-top:28px;">포함 서비스</h2>
<ol style="font-size:13px;line-height:1.8;padding-left:20px;">
{{- range .Services}}
<li>{{.}}</li>
{{- end}}
</ol>
{{- if .SummaryHTML}}
<h2 style="font-size:15px;margin-top:28px;">사건 개요</h2>
<div style="font-size:13px;line-height:1.7;background:#fafafa;border:1px solid #eee;padding:12px;">{{.SummaryHTML}}</div>
{{- end}}
<p style="font-size:12px;color:#999;margin-top:32px;">본 견적은 기재하신 내용을 기준으로 한 예상 금액이며, 상담 후 사건 난이도에 따라 조정될 수 있습니다.</p>
</div>
</body>
</html>
`))

// quoteDocumentData is the shaped input to the quote template.
type quoteDocumentData struct {
	QuoteNumber       string
	Name              string
	Phone             string
	Email             string
	RoleLabel         string
	CounterpartyLabel string
	AmountLabel       string
	ConsultingFee     int
	SuccessFeeNote    string
	Services          []string
	SummaryHTML       template.HTML
}

// Document renders the complete quote document for a submission, its computed
// fee quote and an already generated quote number. The quote number is passed
// in rather than generated here so output is fully determined by its inputs.
func Document(sub *domain.QuoteSubmission, quote domain.FeeQuote, quoteNumber string) (string, error) {
	data := quoteDocumentData{
		QuoteNumber:       quoteNumber,
		Name:              strings.TrimSpace(sub.Name),
		Phone:             strings.TrimSpace(sub.Phone),
		Email:             strings.TrimSpace(sub.Email),
		RoleLabel:         roleLabels[sub.Role],
		CounterpartyLabel: counterpartyLabels[sub.Counterparty],
		AmountLabel:       sub.Amount.Label(),
		ConsultingFee:     quote.ConsultingFee,
		SuccessFeeNote:    quote.SuccessFeeNote,
		Services:          includedServices,
		SummaryHTML:       summaryHTML(sub.Summary),
	}

	var b strings.Builder

	err := quoteDocumentTmpl.Execute(&b, data)
	if err != nil {
		return "", fmt.Errorf("rendering quote document: %w", err)
	}

	return b.String(), nil
}

// summaryHTML escapes the free-text summary and converts newlines to <br>.
// Returns empty HTML when the summary is blank so the template drops the
// whole section.
func summaryHTML(summary string) template.HTML {
	trimmed := strings.TrimSpace(summary)
	if trimmed == "" {
		return ""
	}

	escaped := template.HTMLEscapeString(trimmed)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\r", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	//nolint:gosec // escaped above; only <br> tags are introduced
	return template.HTML(escaped)
}
