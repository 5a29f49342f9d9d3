package ranking

import (
	"errors"
	"sort"
	"strings"

	"github.com/dannya123-blm/MajorIndividualProject/internal/constants"
)

// ErrCatalogUnavailable 岗位目录在启动时加载失败或从未加载。
// 调用方应把它作为服务端配置问题上报，而不是"无匹配结果"。
var ErrCatalogUnavailable = errors.New("岗位目录不可用")

// JobMatch 单个岗位的匹配打分结果
type JobMatch struct {
	Posting            JobPosting `json:"job"`
	SkillScore         int        `json:"skill_score"`
	QualificationScore int        `json:"qualification_score"`
	TotalScore         int        `json:"total_score"`
}

// Flatten 把岗位的全部文本字段拼接成一段小写检索文本。
// 打分算法对列结构零假设，换一种拼接策略只需要改这里。
func Flatten(p JobPosting) string {
	var b strings.Builder
	for _, col := range p.Columns {
		v := p.Values[col]
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v)
	}
	return strings.ToLower(b.String())
}

// Rank 按候选人的技能与学历关键词对岗位目录打分并排序。
//
// 每个岗位：skillScore为在检索文本中出现的技能词个数，
// qualificationScore同理；总分 = 2*skillScore + qualificationScore。
// 关键词按子串匹配（不重新分词），以容忍多词技能短语。
// 总分为0的岗位被丢弃；其余按总分降序稳定排序，同分岗位
// 保持目录中的原始相对顺序；最终截断到limit条。
//
// 技能与学历都为空时直接返回空结果，不扫描目录。
// catalog为nil时返回 ErrCatalogUnavailable。
func Rank(skills, qualifications []string, catalog *Catalog, limit int) ([]JobMatch, error) {
	if catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	if limit <= 0 {
		limit = constants.DefaultMatchLimit
	}

	matches := make([]JobMatch, 0, limit)
	if len(skills) == 0 && len(qualifications) == 0 {
		return matches, nil
	}

	for _, posting := range catalog.Postings {
		searchText := Flatten(posting)

		skillScore := countContained(skills, searchText)
		qualScore := countContained(qualifications, searchText)
		total := constants.SkillScoreWeight*skillScore + constants.QualificationScoreWeight*qualScore
		if total == 0 {
			continue
		}

		matches = append(matches, JobMatch{
			Posting:            posting,
			SkillScore:         skillScore,
			QualificationScore: qualScore,
			TotalScore:         total,
		})
	}

	// 稳定排序：同分岗位保持目录顺序
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].TotalScore > matches[j].TotalScore
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// countContained 统计terms中有多少个（转小写后）是searchText的子串
func countContained(terms []string, searchText string) int {
	count := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(searchText, strings.ToLower(term)) {
			count++
		}
	}
	return count
}
