package keyword

import (
	"github.com/dannya123-blm/MajorIndividualProject/internal/constants"
)

// ExtractionResult 单份简历的关键词抽取结果，创建后不再修改
type ExtractionResult struct {
	Skills         []string `json:"skills"`
	Qualifications []string `json:"qualifications"`
	TextPreview    string   `json:"text_preview"`
}

// Extract 对简历文本执行完整抽取：技能词表与学历词表各匹配一次，
// 并截取开头的文本预览。空文本得到全空结果，这不是错误。
func Extract(text string) ExtractionResult {
	return ExtractionResult{
		Skills:         Match(text, SkillKeywords),
		Qualifications: Match(text, QualificationKeywords),
		TextPreview:    Preview(text, constants.TextPreviewMaxRunes),
	}
}

// Preview 按字符数截取文本开头，maxRunes 以内的文本原样返回
func Preview(text string, maxRunes int) string {
	if text == "" || maxRunes <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes])
}
