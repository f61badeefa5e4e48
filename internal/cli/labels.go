package cli

import "github.com/LeeHyunWon999/multi-thread/internal/summation"

// Supported label languages.
const (
	LangKorean  = "ko"
	LangEnglish = "en"
)

// Labels holds the user-facing text of one language.
type Labels struct {
	// SumPrefix precedes the computed sum, e.g. "연산완료 : ".
	SumPrefix string
	// ElapsedPrefix precedes the elapsed milliseconds, e.g. "걸린시간 : ".
	ElapsedPrefix string
	strategies    map[string]string
}

var koreanLabels = Labels{
	SumPrefix:     "연산완료 : ",
	ElapsedPrefix: "걸린시간 : ",
	strategies: map[string]string{
		summation.NameSequential: "100만부터 500만까지 싱글스레드로 덧셈합니다.",
		summation.NamePartition4: "100만부터 500만까지 4개의 멀티스레드로 덧셈합니다.",
		summation.NamePartition8: "100만부터 500만까지 8개의 멀티스레드로 덧셈합니다.",
		summation.NameMutex8:     "100만부터 500만까지 8개의 멀티스레드와 뮤텍스로 덧셈합니다.",
		summation.NameChannel8:   "100만부터 500만까지 8개의 멀티스레드와 채널로 덧셈합니다.",
	},
}

var englishLabels = Labels{
	SumPrefix:     "Sum : ",
	ElapsedPrefix: "Elapsed : ",
	strategies: map[string]string{
		summation.NameSequential: "Summing 1M through 5M on a single thread.",
		summation.NamePartition4: "Summing 1M through 5M with 4 threads.",
		summation.NamePartition8: "Summing 1M through 5M with 8 threads.",
		summation.NameMutex8:     "Summing 1M through 5M with 8 threads and a mutex.",
		summation.NameChannel8:   "Summing 1M through 5M with 8 threads and a channel.",
	},
}

// LabelsFor returns the labels of lang. Unknown languages get Korean.
func LabelsFor(lang string) Labels {
	if lang == LangEnglish {
		return englishLabels
	}
	return koreanLabels
}

// Label returns the descriptive line announcing strategy name. Strategies
// without a translation are announced by their registry name.
func (l Labels) Label(name string) string {
	if label, ok := l.strategies[name]; ok {
		return label
	}
	return name
}

// SupportedLang reports whether lang has a label table.
func SupportedLang(lang string) bool {
	return lang == LangKorean || lang == LangEnglish
}
