package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFileName(t *testing.T) {
	valid := []string{
		"制冷循环计算书_20260828.txt",
		"report.pdf",
		"a b c.txt",
	}
	for _, name := range valid {
		assert.NoError(t, CheckFileName(name), name)
	}

	invalid := []string{
		"",
		"   ",
		"a/b.txt",
		"a\\b.txt",
		"a:b.txt",
		"a*b.txt",
		"a?b.txt",
		"a\"b.txt",
		"a<b>.txt",
		"a|b.txt",
		"bad\x01name.txt",
		"trailing.",
		"trailing ",
		"CON",
		"con.txt",
		"LPT1.pdf",
		strings.Repeat("长", 201) + ".txt",
	}
	for _, name := range invalid {
		assert.Error(t, CheckFileName(name), "%q 应当非法", name)
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"a/b:c*d.txt": "a_b_c_d.txt",
		"report.txt":  "report.txt",
		"trailing. ":  "trailing",
		"":            "计算书",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFileName(in))
	}

	// 整理结果必须能通过合法性检查
	for _, in := range []string{"a/b.txt", "CON.txt", "x|y", strings.Repeat("长", 300)} {
		assert.NoError(t, CheckFileName(SanitizeFileName(in)), in)
	}
}
