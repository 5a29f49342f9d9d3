package keyword

import "strings"

// Match 在文本中查找词表内出现的关键词，按词表顺序返回命中项。
// 单词关键词在token集合中做成员测试；含空格的短语关键词在
// 去停用词后重新拼接的token文本里做子串测试。短语匹配是尽力而为的
// 启发式：若短语中的词被停用词过滤掉或被分词打散，则不会命中。
// 结果使用词表中的原始大小写，按大小写不敏感去重，保留首次出现。
func Match(text string, vocabulary []string) []string {
	tokens := Normalize(text)

	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}
	tokenText := strings.Join(tokens, " ")

	found := make([]string, 0, 8)
	for _, kw := range vocabulary {
		kwLower := strings.ToLower(kw)
		if strings.Contains(kwLower, " ") {
			// 短语，如 "machine learning"
			if strings.Contains(tokenText, kwLower) {
				found = append(found, kw)
			}
		} else {
			// 单词，如 "python"
			if _, ok := tokenSet[kwLower]; ok {
				found = append(found, kw)
			}
		}
	}

	return dedupeKeepOrder(found)
}

// dedupeKeepOrder 大小写不敏感去重，保留第一次出现的写法和顺序
func dedupeKeepOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
