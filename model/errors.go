package model

import (
	"errors"
	"fmt"
)

// 计算错误分类，全部返回给调用方展示，不在进程内重试

// 报告未就绪，计算完成前请求生成计算书
var ErrNotReady = errors.New("请先完成计算再生成计算书")

// 参数超出允许范围
type OutOfRangeError struct {
	Field  string
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("参数 %s 超出范围: %s", e.Field, e.Reason)
}

// 必填参数缺失或非数值
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("缺少必填参数: %s", e.Field)
}

// 计算结果无定义，如压缩功非正时的 COP
type UndefinedResultError struct {
	Reason string
}

func (e *UndefinedResultError) Error() string {
	return fmt.Sprintf("计算结果无定义: %s", e.Reason)
}

func OutOfRange(field, format string, args ...interface{}) error {
	return &OutOfRangeError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func MissingField(field string) error {
	return &MissingFieldError{Field: field}
}

func UndefinedResult(format string, args ...interface{}) error {
	return &UndefinedResultError{Reason: fmt.Sprintf(format, args...)}
}
