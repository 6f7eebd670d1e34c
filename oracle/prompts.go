package oracle

import (
	"fmt"
	"strings"

	"github.com/astroracle/starway/core"
)

// Prompt texts live here, away from the resolution logic, so what the model
// is told and what the fallback says cannot drift apart.

// selectionSystemPrompt constrains the fast model to the one-line
// SELECTED_ID protocol.
const selectionSystemPrompt = "你是一个选择器，任务是根据用户问题在给定航天器列表中选出最匹配的一艘。" +
	"只输出一行，严格格式：SELECTED_ID: <ID>。不输出其它任何内容。"

// selectionExcerptRunes caps the oracle text excerpt shown per candidate.
const selectionExcerptRunes = 100

// buildSelectionPrompt enumerates every candidate with its id, display
// names, keywords and a short oracle excerpt.
func buildSelectionPrompt(question string, records []core.StarshipRecord) string {
	var info strings.Builder
	for i := range records {
		r := &records[i]
		fmt.Fprintf(&info, "ID: %s; 名称: %s (%s); 关键词: %s; 神谕: %s\n",
			r.ArchiveID, r.NameCN, r.NameOfficial,
			strings.Join(r.OracleKeywords, ", "),
			excerpt(r.OracleText, selectionExcerptRunes))
	}

	var b strings.Builder
	b.WriteString("根据用户问题，在下列航天器中选出最匹配的一艘。\n")
	b.WriteString("匹配依据：优先语义主题与关键词相近，其次神谕意象呼应度；并考虑与问题的时效性/指向性。\n")
	b.WriteString("若多艘接近，选择与问题核心更直接、可执行指引性更强的一艘。\n")
	b.WriteString("只能返回一行、严格格式：SELECTED_ID: <ID>（不输出任何解释或其它字符）。\n\n")
	fmt.Fprintf(&b, "候选航天器：\n%s\n", info.String())
	fmt.Fprintf(&b, "用户问题：%s\n", question)
	return b.String()
}

// interpretationSystemPrompt sets the narrator's stance: a definitive single
// answer, all present ships cross-referenced by name, conflicts resolved by
// the fixed priority inquiry > celestial > origin, no filler, no emoji.
const interpretationSystemPrompt = "你是一位冷静、克制且精确的星航预言家。" +
	"文风像深空回声：清澈、含蓄、带宇宙意象，但不拖泥带水。" +
	"核心原则：\n" +
	"- 明确立场：给出单一、可执行的答案与方向；\n" +
	"- 三舟合参：在叙述中自然融入本命/天时/问道的信号，并指出它们的关系与优先级" +
	"（问道=当下抉择的罗盘；天时=时机与风向；本命=长期底色）。\n" +
	"- 禁止和稀泥与安抚式总结：不写诸如“无论如何/都是宇宙的一部分/祝你好运/加油”等句子；\n" +
	"- 禁止列表与标题：不使用编号或项目符号；\n" +
	"- 不使用表情符号；\n" +
	"- 全文不超过五百字；\n" +
	"- 若有不确定性，仅冷静点明，同时仍需给出倾向性的建议。"

// defaultQuestion is substituted when the caller supplies no question text.
// This default applies only to interpretation synthesis, never to selection.
const defaultQuestion = "请基于三艘飞船的神谕，给出对我当下处境的明确解读与行动建议"

// Role labels shared by the interpretation prompt and the fallback composer.
const (
	originLabel    = "本命星舟"
	celestialLabel = "天时星舟"
	inquiryLabel   = "问道星舟"
)

// buildInterpretationPrompt emits one labeled line per present record,
// pairing its display name with its full oracle text. Absent slots are
// omitted, not zero-filled.
func buildInterpretationPrompt(bundle *core.ResolutionBundle) string {
	var ships []string
	appendShip := func(label string, m core.MatchResult) {
		if m.Present() {
			ships = append(ships, fmt.Sprintf("%s: %s — %s", label, m.Starship.NameCN, m.Starship.OracleText))
		}
	}
	appendShip(originLabel, bundle.Origin)
	appendShip(celestialLabel, bundle.Celestial)
	appendShip(inquiryLabel, bundle.Inquiry)

	shipsText := "暂无航天器匹配"
	if len(ships) > 0 {
		shipsText = strings.Join(ships, "\n")
	}

	question := bundle.Question
	if question == "" {
		question = defaultQuestion
	}

	var b strings.Builder
	b.WriteString("以冷静、克制、太空般疏离而富有诗意的语言，娓娓道来对下述问题的解读。")
	b.WriteString("文风含蓄而清晰：不浮夸，不鼓励，不寒暄，不使用表情符号。")
	b.WriteString("在叙述中自然给出明确答案与可执行指引，让读者无需猜测即可行动。")
	b.WriteString("可借用星际、引力、轨道、信标等意象，但保持精确与节制。")
	b.WriteString("必须将在场的飞船以其名称自然写入文本，并说明它们如何相互作用指向结论；")
	b.WriteString("若意见冲突，优先级为问道>天时>本命，同时简短说明本命对长期的影响。")
	b.WriteString("避免使用标题、编号或项目符号。若存在不确定之处，仅冷静点明。\n\n")
	fmt.Fprintf(&b, "飞船的神谕：\n%s\n\n", shipsText)
	fmt.Fprintf(&b, "用户问题：%s\n", question)
	if bundle.UserName != "" {
		fmt.Fprintf(&b, "用户姓名：%s\n", bundle.UserName)
	}
	return b.String()
}

// excerpt returns at most n runes of s with newlines flattened, appending an
// ellipsis when truncated.
func excerpt(s string, n int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
