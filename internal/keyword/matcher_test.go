package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchSingleWords 验证单词关键词按token精确匹配，结果按原始大小写返回
func TestMatchSingleWords(t *testing.T) {
	text := "I have experience with Python and Java."
	matched := Match(text, []string{"python", "java", "go"})

	assert.Equal(t, []string{"python", "java"}, matched, "单词关键词匹配结果与预期不符")
}

// TestMatchResultFollowsVocabularyOrder 验证结果顺序跟随词表顺序而非文本出现顺序
func TestMatchResultFollowsVocabularyOrder(t *testing.T) {
	text := "java first then python"
	matched := Match(text, []string{"python", "java"})

	assert.Equal(t, []string{"python", "java"}, matched, "结果应按词表顺序排列")
}

// TestMatchPhrases 验证多词关键词按过滤后文本的子串匹配
func TestMatchPhrases(t *testing.T) {
	text := "Completed projects involving machine learning and data analysis techniques."
	matched := Match(text, []string{"machine learning", "data analysis", "deep learning"})

	assert.Equal(t, []string{"machine learning", "data analysis"}, matched)
}

// TestMatchPhraseSurvivesStopwordRemoval 验证短语匹配发生在去停用词之后的拼接文本上。
// 原文中短语被停用词隔开时无法命中，这是已知的启发式行为。
func TestMatchPhraseSurvivesStopwordRemoval(t *testing.T) {
	// "learning of machines" 过滤后为 "learning machines"，不包含 "machine learning"
	matched := Match("learning of machines", []string{"machine learning"})
	assert.Empty(t, matched)

	// 停用词被移除后两个词相邻，短语得以命中
	matched = Match("strong machine vision learning background", []string{"machine learning"})
	assert.Empty(t, matched, "被非停用词隔开的短语不应命中")

	matched = Match("strong machine the learning background", []string{"machine learning"})
	assert.Equal(t, []string{"machine learning"}, matched, "仅被停用词隔开的短语应命中")
}

// TestMatchSingleWordNoSubstringHit 验证单词关键词不做子串匹配
func TestMatchSingleWordNoSubstringHit(t *testing.T) {
	matched := Match("javascript developer", []string{"java"})

	assert.Empty(t, matched, "java 不应命中 javascript")
}

// TestMatchCaseInsensitive 验证匹配对大小写不敏感
func TestMatchCaseInsensitive(t *testing.T) {
	matched := Match("Expert in PYTHON and Machine Learning", []string{"python", "machine learning"})

	assert.Equal(t, []string{"python", "machine learning"}, matched)
}

// TestMatchEmptyInputs 验证空文本与空词表
func TestMatchEmptyInputs(t *testing.T) {
	assert.Empty(t, Match("", []string{"python"}))
	assert.Empty(t, Match("python developer", nil))
	assert.Empty(t, Match("", nil))
}

// TestDedupeKeepOrder 验证去重保序，忽略大小写，保留首次出现形式
func TestDedupeKeepOrder(t *testing.T) {
	deduped := dedupeKeepOrder([]string{"Python", "java", "python", "JAVA", "go"})

	assert.Equal(t, []string{"Python", "java", "go"}, deduped, "应保留首次出现的形式并保持顺序")
}

// TestMatchIdempotent 验证对同一输入重复调用结果一致
func TestMatchIdempotent(t *testing.T) {
	text := "python java machine learning bsc"
	first := Match(text, SkillKeywords)
	second := Match(text, SkillKeywords)

	assert.Equal(t, first, second)
}

// TestMatchAgainstBuiltinVocabularies 验证内置词表的整体行为
func TestMatchAgainstBuiltinVocabularies(t *testing.T) {
	text := "BSc graduate skilled in Python, SQL, Docker and natural language processing."

	skills := Match(text, SkillKeywords)
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "sql")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "natural language processing")
	assert.NotContains(t, skills, "java")

	quals := Match(text, QualificationKeywords)
	assert.Contains(t, quals, "bsc")
}
