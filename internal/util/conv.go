package util

import (
	"strconv"
)

// ParseLimit 解析limit查询参数，缺省或非法时回退默认值
func ParseLimit(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// ParseID 解析路径中的整数ID，解析失败时返回0
func ParseID(s string) int {
	id, _ := strconv.Atoi(s)
	return id
}
