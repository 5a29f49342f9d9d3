package keyword

// englishStopwords 英文停用词集合，取自NLTK英文停用词表的纯字母子集。
// 分词阶段只保留纯字母token，因此带撇号的缩写形式（don't、isn't等）
// 永远不会出现，这里只收录它们的字母残段（don、isn等）以保持行为一致。
var englishStopwords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {},
	"ours": {}, "ourselves": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {}, "he": {}, "him": {}, "his": {},
	"himself": {}, "she": {}, "her": {}, "hers": {}, "herself": {},
	"it": {}, "its": {}, "itself": {}, "they": {}, "them": {},
	"their": {}, "theirs": {}, "themselves": {}, "what": {}, "which": {},
	"who": {}, "whom": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "am": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"having": {}, "do": {}, "does": {}, "did": {}, "doing": {},
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {},
	"or": {}, "because": {}, "as": {}, "until": {}, "while": {},
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"against": {}, "between": {}, "into": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"to": {}, "from": {}, "up": {}, "down": {}, "in": {}, "out": {},
	"on": {}, "off": {}, "over": {}, "under": {}, "again": {},
	"further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"when": {}, "where": {}, "why": {}, "how": {}, "all": {}, "any": {},
	"both": {}, "each": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "no": {}, "nor": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {},
	"too": {}, "very": {}, "s": {}, "t": {}, "can": {}, "will": {},
	"just": {}, "don": {}, "should": {}, "now": {}, "d": {}, "ll": {},
	"m": {}, "o": {}, "re": {}, "ve": {}, "y": {}, "ain": {},
	"aren": {}, "couldn": {}, "didn": {}, "doesn": {}, "hadn": {},
	"hasn": {}, "haven": {}, "isn": {}, "ma": {}, "mightn": {},
	"mustn": {}, "needn": {}, "shan": {}, "shouldn": {}, "wasn": {},
	"weren": {}, "won": {}, "wouldn": {},
}

// IsStopword 判断一个小写token是否为英文停用词
func IsStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}
