package report

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// 导出文件名合法性检查，覆盖 Windows 与类 Unix 的限制

const maxFileNameLength = 200

// 文件名中不允许出现的字符
const illegalChars = `\/:*?"<>|`

// Windows 保留设备名，不区分大小写
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// 检查文件名（不含路径）是否合法
func CheckFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("文件名不能为空")
	}
	if utf8.RuneCountInString(name) > maxFileNameLength {
		return fmt.Errorf("文件名长度超过 %d 个字符", maxFileNameLength)
	}
	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("文件名包含控制字符")
		}
		if strings.ContainsRune(illegalChars, r) {
			return fmt.Errorf("文件名包含非法字符 %q", r)
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return fmt.Errorf("文件名不能以点或空格结尾")
	}
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if reservedNames[strings.ToUpper(base)] {
		return fmt.Errorf("%s 是系统保留名称", base)
	}
	return nil
}

// 将任意字符串整理为合法文件名，非法字符替换为下划线
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(illegalChars, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimRight(b.String(), ". ")
	if out == "" {
		out = "计算书"
	}
	base := out
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if reservedNames[strings.ToUpper(base)] {
		out = "_" + out
	}
	if utf8.RuneCountInString(out) > maxFileNameLength {
		runes := []rune(out)
		out = string(runes[:maxFileNameLength])
	}
	return out
}
