package resolver

// rule is one literal substring substitution. Rules are applied in slice
// order in a single pass; later rules see text already rewritten by earlier
// ones. The ordering is a behavioral contract: "सरदर्द" must rewrite before
// "दर्द" or the headache keyword is destroyed, and reordering is covered by a
// regression test.
type rule struct {
	from string
	to   string
}

// hindiKeywordRules rewrites known Hindi terms to their canonical English
// keyword before tokenization, so the matching tiers see uniform keywords
// regardless of surface script. Unmapped Hindi terms pass through untouched.
var hindiKeywordRules = []rule{
	{"बुखार", "fever"},
	{"सरदर्द", "headache"},
	{"सिरदर्द", "headache"},
	{"थकान", "fatigue"},
	{"चक्कर", "dizziness"},
	{"खांसी", "cough"},
	{"ठंड", "cold"},
	{"मतली", "nausea"},
	{"दर्द", "pain"},
	{"नींद", "sleep"},
	{"तनाव", "stress"},
	{"ऊर्जा", "energy"},
	{"आहार", "diet"},
	{"हाइड्रेशन", "hydration"},
	{"दिनचर्या", "routine"},
}

// synonymRules collapses near-synonyms and common misspellings onto one
// canonical keyword. No rule's replacement contains its own pattern or any
// other rule's pattern, which keeps normalization a fixed point.
var synonymRules = []rule{
	{"migraine", "headache"},
	{"head pain", "headache"},
	{"dizzzy", "dizziness"},
	{"diziness", "dizziness"},
	{"dizzy", "dizziness"},
	{"lightheaded", "dizziness"},
	{"faint", "dizziness"},
	{"tiredness", "fatigue"},
	{"tired", "fatigue"},
	{"sleepy", "fatigue"},
	{"exhausted", "fatigue"},
	{"high temperature", "fever"},
	{"temperature", "fever"},
	{"feverish", "fever"},
	{"body heat", "fever"},
	{"flu", "cold"},
	{"rhinitis", "cold"},
	{"sneezing", "cold"},
	{"runny nose", "cold"},
	{"blocked nose", "cold"},
	{"nasal congestion", "cold"},
	{"nauseated", "nausea"},
	{"pill", "medicine"},
	{"tablet", "medicine"},
	{"drug", "medicine"},
	{"remedy", "medicine"},
	{"hydrated", "hydration"},
	{"hydrate", "hydration"},
	{"water", "hydration"},
	{"nutrition", "diet"},
	{"injured", "injury"},
	{"wound", "cut"},
	{"burned", "burn"},
	{"sad", "hopeless"},
	{"depressed", "hopeless"},
	{"anxious", "worried"},
	{"angry", "frustrated"},
	{"lonely", "isolated"},
}

// segmentSplitters separates multi-topic queries into independently resolved
// segments. English connectives carry surrounding spaces so "understand" is
// not split; Hindi connectives split on raw substrings as the source data
// does, accepting occasional fragment segments.
var segmentSplitters = []string{
	"और",
	"या",
	"के लिए",
	"कैसे",
	"क्या",
	" and ",
	" or ",
}
