package document

import (
	"fmt"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/pkg/korean"
)

// 메일 본문 전용 한글 표기 (견적서 PDF와 일부 표기가 다름)
var (
	emailPrintTypeLabels = map[model.PrintType]string{
		model.PrintBlackWhite: "레이저흑백",
		model.PrintLaserColor: "레이저칼라",
		model.PrintInkColor:   "잉크칼라",
	}

	emailBindingTypeLabels = map[model.BindingType]string{
		model.BindingRing:    "링제본",
		model.BindingPerfect: "무선제본",
		model.BindingSaddle:  "중철제본",
		model.BindingFolding: "접지",
	}
)

func emailPrintTypeLabel(t model.PrintType) string {
	if label, ok := emailPrintTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func emailBindingTypeLabel(b model.BindingType) string {
	if label, ok := emailBindingTypeLabels[b]; ok {
		return label
	}
	return string(b)
}

// EmailSubject 견적 메일 제목
func EmailSubject(q *Quotation) string {
	return fmt.Sprintf("[%s] 견적서 - %s님", CompanyName, q.CustomerName)
}

// RenderEmailHTML 견적 메일 HTML 본문
func RenderEmailHTML(q *Quotation) string {
	return fmt.Sprintf(emailHTMLTemplate,
		q.CustomerName,
		q.QuotedAt.Format("2006년 01월 02일"),
		q.Pages,
		emailPrintTypeLabel(q.PrintType),
		emailBindingTypeLabel(q.BindingType),
		q.Quantity,
		korean.FormatComma(q.Price.UnitPrintPrice),
		korean.FormatComma(q.Price.PrintPrice),
		korean.FormatComma(q.Price.BindingPrice),
		korean.FormatComma(q.Price.UnitPrice),
		korean.FormatComma(q.Price.TotalPrice),
		CompanyPhone,
		CompanyMobile,
		CompanyEmail,
		CompanyWebsite,
		CompanyHours,
		CompanyName,
		CompanyCEO,
		q.QuotedAt.Format("2006.01.02"),
		CompanyName,
	)
}

// RenderEmailText 견적 메일 텍스트 본문 (HTML 미지원 클라이언트용)
// 금액 수치는 HTML 본문과 항상 같아야 한다
func RenderEmailText(q *Quotation) string {
	return fmt.Sprintf(emailTextTemplate,
		q.CustomerName,
		CompanyName,
		q.CustomerName,
		q.QuotedAt.Format("2006년 01월 02일"),
		q.Pages,
		emailPrintTypeLabel(q.PrintType),
		emailBindingTypeLabel(q.BindingType),
		q.Quantity,
		korean.FormatComma(q.Price.UnitPrintPrice),
		korean.FormatComma(q.Price.PrintPrice),
		korean.FormatComma(q.Price.BindingPrice),
		korean.FormatComma(q.Price.UnitPrice),
		korean.FormatComma(q.Price.TotalPrice),
		CompanyPhone,
		CompanyMobile,
		CompanyEmail,
		CompanyWebsite,
		CompanyHours,
		CompanyName,
	)
}

const emailHTMLTemplate = `<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>견적서</title>
    <style>
        body {
            font-family: 'Malgun Gothic', sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            text-align: center;
            border-bottom: 3px solid #007ACC;
            padding-bottom: 20px;
            margin-bottom: 30px;
        }
        .company-name {
            font-size: 28px;
            font-weight: bold;
            color: #007ACC;
            margin-bottom: 10px;
        }
        .quote-title {
            font-size: 24px;
            font-weight: bold;
            color: #333;
        }
        .quote-info {
            background-color: #f8f9fa;
            padding: 20px;
            border-radius: 10px;
            margin: 20px 0;
        }
        .price-table {
            width: 100%%;
            border-collapse: collapse;
            margin: 20px 0;
        }
        .price-table th, .price-table td {
            border: 1px solid #ddd;
            padding: 12px;
            text-align: left;
        }
        .price-table th {
            background-color: #007ACC;
            color: white;
            font-weight: bold;
        }
        .total-price {
            font-size: 20px;
            font-weight: bold;
            color: #007ACC;
            text-align: right;
        }
        .contact-info {
            background-color: #e9ecef;
            padding: 15px;
            border-radius: 8px;
            margin: 20px 0;
        }
        .stamp-section {
            text-align: right;
            margin-top: 40px;
            position: relative;
        }
        .stamp {
            display: inline-block;
            width: 120px;
            height: 120px;
            border: 3px solid #dc3545;
            border-radius: 50%%;
            position: relative;
            background: linear-gradient(45deg, #fff, #f8f9fa);
        }
        .stamp-text {
            position: absolute;
            top: 50%%;
            left: 50%%;
            transform: translate(-50%%, -50%%);
            font-size: 14px;
            font-weight: bold;
            color: #dc3545;
            text-align: center;
            line-height: 1.2;
        }
        .footer {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #ddd;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-name">온누리인쇄나라</div>
        <div class="quote-title">견적서</div>
    </div>

    <div class="quote-info">
        <p><strong>고객명:</strong> %s</p>
        <p><strong>견적일:</strong> %s</p>
    </div>

    <h3>📋 인쇄 사양</h3>
    <table class="price-table">
        <tr>
            <th>항목</th>
            <th>내용</th>
        </tr>
        <tr>
            <td>페이지 수</td>
            <td>%d페이지</td>
        </tr>
        <tr>
            <td>출력 타입</td>
            <td>%s</td>
        </tr>
        <tr>
            <td>제본 방식</td>
            <td>%s</td>
        </tr>
        <tr>
            <td>수량</td>
            <td>%d권</td>
        </tr>
    </table>

    <h3>💰 가격 내역</h3>
    <table class="price-table">
        <tr>
            <th>항목</th>
            <th>금액</th>
        </tr>
        <tr>
            <td>페이지당 단가</td>
            <td>%s원</td>
        </tr>
        <tr>
            <td>총 출력 가격</td>
            <td>%s원</td>
        </tr>
        <tr>
            <td>제본 가격</td>
            <td>%s원</td>
        </tr>
        <tr>
            <td>단가 (출력+제본)</td>
            <td>%s원</td>
        </tr>
        <tr style="background-color: #e3f2fd;">
            <td><strong>총 가격</strong></td>
            <td class="total-price"><strong>%s원</strong></td>
        </tr>
    </table>

    <div class="contact-info">
        <h4>📞 문의 및 주문</h4>
        <p><strong>전화:</strong> %s</p>
        <p><strong>휴대폰:</strong> %s</p>
        <p><strong>이메일:</strong> %s</p>
        <p><strong>웹사이트:</strong> %s</p>
        <p><strong>영업시간:</strong> %s</p>
    </div>

    <div class="stamp-section">
        <div class="stamp">
            <div class="stamp-text">
                %s<br>
                대표: %s<br>
                %s
            </div>
        </div>
    </div>

    <div class="footer">
        <p><strong>※ 안내사항</strong></p>
        <ul>
            <li>기본 80g 복사용지, 부가세 포함</li>
            <li>페이지 수와 수량에 따른 차등 가격 적용</li>
            <li>본 견적서는 7일간 유효합니다</li>
            <li>실제 가격은 최종 확인 후 결정됩니다</li>
        </ul>
        <p style="text-align: center; margin-top: 20px;">
            <strong>감사합니다. %s 드림</strong>
        </p>
    </div>
</body>
</html>
`

const emailTextTemplate = `안녕하세요, %s님!

%s에서 요청하신 견적서를 보내드립니다.

========================================
           견적서
========================================

고객명: %s
견적일: %s

[인쇄 사양]
페이지 수: %d페이지
출력 타입: %s
제본 방식: %s
수량: %d권

[가격 내역]
페이지당 단가: %s원
총 출력 가격: %s원
제본 가격: %s원
단가 (출력+제본): %s원
총 가격: %s원

※ 기본 80g 복사용지, 부가세 포함
※ 페이지 수와 수량에 따른 차등 가격 적용

========================================

문의사항이나 주문을 원하시면 언제든 연락주세요!

📞 전화: %s
📱 휴대폰: %s
📧 이메일: %s
🌐 웹사이트: %s

⏰ 영업시간: %s

※ 본 견적서는 7일간 유효합니다.
※ 실제 가격은 최종 확인 후 결정됩니다.

감사합니다.
%s 드림
`
