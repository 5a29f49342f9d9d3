// Package keyword 实现简历文本的关键词抽取核心：分词、停用词过滤、
// 单词/短语两种匹配方式，以及固定词表下的技能与学历抽取。
// 本包为纯计算，不做任何IO，也不打日志。
package keyword

import (
	"strings"
	"unicode"
)

// Normalize 把原始文本切分为小写的纯字母token序列。
// 规则：按空白切词，剥离token两端的标点符号，转小写后只保留
// 全部由字母组成且不在停用词表中的token。
// 含数字或内部连字符的token（python3、state-of-the-art）整体丢弃，
// 与原有行为保持一致。空文本返回空序列，没有失败路径。
func Normalize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		if !isAlpha(lower) {
			continue
		}
		if IsStopword(lower) {
			continue
		}
		tokens = append(tokens, lower)
	}
	return tokens
}

// isAlpha 判断字符串是否全部由字母组成（Unicode语义）
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
