package keyword

// 两份固定词表在进程启动时定义，之后只读，可被任意并发请求共享。
// 词表内的大小写用于结果展示，匹配时统一转小写比较。
// 顺序即结果中关键词的输出顺序，调整时需注意。

// SkillKeywords 技能关键词词表
var SkillKeywords = []string{
	"python", "java", "javascript", "typescript", "c#", "c++",
	"react", "next.js", "html", "css", "django", "flask", "node.js",
	"sql", "mysql", "postgresql", "azure", "aws", "docker",
	"git", "linux", "power bi",
	"nlp", "natural language processing", "machine learning",
	"data analysis",
}

// QualificationKeywords 学历与证书关键词词表
var QualificationKeywords = []string{
	"bsc", "b.sc", "bachelor", "bachelors", "ba", "b.a",
	"msc", "m.sc", "master", "masters", "ma", "m.a",
	"phd", "doctorate",
	"bachelor of science", "bachelor of engineering",
	"bachelor of arts", "master of science", "master of engineering",
	"master of arts",
	"honours", "hons", "higher diploma", "postgraduate diploma",
	"aws certified", "azure certification", "oracle certified",
	"microsoft certified", "ccna", "comptia",
}
