package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeBasic 验证基础分词：小写化、去停用词、去标点
func TestNormalizeBasic(t *testing.T) {
	tokens := Normalize("I have experience with Python and Java.")

	assert.Equal(t, []string{"experience", "python", "java"}, tokens, "分词结果与预期不符")
}

// TestNormalizeDropsNonAlphabetic 验证含数字或内部符号的词条被整体丢弃
func TestNormalizeDropsNonAlphabetic(t *testing.T) {
	tokens := Normalize("Used Python3 and state-of-the-art next.js tooling")

	// python3 含数字、state-of-the-art 含连字符、next.js 含点号，均被丢弃
	assert.Equal(t, []string{"used", "tooling"}, tokens, "非纯字母词条应被丢弃")
}

// TestNormalizeTrimsEdgePunctuation 验证词条首尾标点被剥离后参与判定
func TestNormalizeTrimsEdgePunctuation(t *testing.T) {
	tokens := Normalize("(Django), 'Flask'! \"react\";")

	assert.Equal(t, []string{"django", "flask", "react"}, tokens, "首尾标点应被剥离")
}

// TestNormalizeCPlusPlus 验证 c++ 剥离尾部符号后归一为 c
func TestNormalizeCPlusPlus(t *testing.T) {
	tokens := Normalize("Proficient in C++")

	assert.Equal(t, []string{"proficient", "c"}, tokens)
}

// TestNormalizeStopwordsRemoved 验证常见英文停用词全部被过滤
func TestNormalizeStopwordsRemoved(t *testing.T) {
	tokens := Normalize("the and is of a to in that it with for on")

	assert.Empty(t, tokens, "纯停用词文本应产出空结果")
}

// TestNormalizeEmptyAndWhitespace 验证空文本与纯空白文本
func TestNormalizeEmptyAndWhitespace(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   \t\n  "))
	assert.Empty(t, Normalize("!!! ... ---"))
}

// TestIsStopword 验证停用词判定
func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("with"))
	assert.False(t, IsStopword("python"))
	assert.False(t, IsStopword(""))
}
