package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"tofu/model"
)

// 计算书 PDF 渲染
// fpdf 内置字体不含中文，需要在配置中指定一个 TTF 字体文件路径
// 未配置字体时退回内置 Arial，仅用于 ASCII 内容的调试

const (
	pdfFontFamily = "report"
	pdfLineHeight = 6
)

func RenderPDF(w io.Writer, doc *model.Document, fontPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	family := "Arial"
	if fontPath != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", fontPath)
		family = pdfFontFamily
	}

	pdf.AddPage()

	// 标题
	pdf.SetFont(family, "", 16)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// 标识信息
	pdf.SetFont(family, "", 10)
	info := []struct{ label, value string }{
		{"计算书编号", doc.Number},
		{"版本", doc.Version},
		{"生成时间", doc.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	for _, item := range info {
		pdf.CellFormat(40, 7, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, item.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// 正文逐行输出，分节线改为留白
	pdf.SetFont(family, "", 9)
	for _, line := range strings.Split(doc.Body, "\n") {
		if strings.HasPrefix(line, "══") || strings.HasPrefix(line, "==") {
			pdf.Ln(2)
			continue
		}
		pdf.MultiCell(0, pdfLineHeight, line, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("生成 PDF 失败: %w", err)
	}
	return nil
}
