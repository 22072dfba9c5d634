package resolver

import (
	"context"

	"go.uber.org/zap"

	"wellness-bot/kb"
	"wellness-bot/textutil"
)

// conversationalPhrases maps folded short utterances to canned bilingual
// replies. Checked by exact match on the normalized query, before any
// knowledge-base access.
var conversationalPhrases = map[string]kb.Bilingual{}

func init() {
	greeting := kb.Bilingual{
		EN: "Hello! How can I support your wellness today?",
		HI: "नमस्ते! मैं आपकी सेहत से जुड़ी किसी भी बात में मदद कर सकता हूँ।",
	}
	thanks := kb.Bilingual{
		EN: "You're welcome! Let me know if you need anything else.",
		HI: "आपका स्वागत है! अगर कुछ और पूछना चाहें तो बताइए।",
	}
	goodbye := kb.Bilingual{
		EN: "Take care! Wishing you wellness and peace.",
		HI: "ख़्याल रखिए! सेहत और सुकून की शुभकामनाएँ।",
	}

	for phrase, reply := range map[string]kb.Bilingual{
		"hello":     greeting,
		"hi":        greeting,
		"hey":       greeting,
		"नमस्ते":     greeting,
		"सुप्रभात":   greeting,
		"thanks":    thanks,
		"thank you": thanks,
		"धन्यवाद":   thanks,
		"goodbye":   goodbye,
		"bye":       goodbye,
		"अलविदा":    goodbye,
	} {
		conversationalPhrases[textutil.Fold(phrase)] = reply
	}
}

var emptyQueryMessage = kb.Bilingual{
	EN: "Please enter a wellness question or symptom.",
	HI: "कृपया कोई स्वास्थ्य प्रश्न या लक्षण दर्ज करें।",
}

var notFoundMessage = kb.Bilingual{
	EN: "I couldn't find wellness information for that. Try asking about a symptom, condition, or first aid topic.",
	HI: "मुझे उस विषय पर सेहत संबंधी जानकारी नहीं मिली। कृपया किसी लक्षण, शिकायत या प्राथमिक उपचार के बारे में पूछें।",
}

// conversationalReply returns the canned reply for a folded query, if any.
func conversationalReply(foldedText string) (kb.Bilingual, bool) {
	reply, ok := conversationalPhrases[foldedText]
	return reply, ok
}

func emptyQueryResponse(lang string) *Response {
	message := emptyQueryMessage
	return &Response{
		Fallback:       true,
		Message:        &message,
		Language:       lang,
		Conversational: true,
	}
}

// suggestFallback is the terminal branch of the pipeline: it proposes up to
// SuggestionLimit nearest condition names for "did you mean" correction and
// always carries a non-empty bilingual message, so the pipeline never hands
// its caller an empty result.
func (s *Service) suggestFallback(ctx context.Context, query NormalizedQuery) *Response {
	message := notFoundMessage
	return &Response{
		Fallback:    true,
		Message:     &message,
		Suggestions: s.suggestions(ctx, query),
		Language:    query.Language,
	}
}

// suggestions ranks all canonical English condition names against the query,
// keeping the top candidates at or above the suggestion threshold.
func (s *Service) suggestions(ctx context.Context, query NormalizedQuery) []string {
	conditions, err := s.cache.GetOrRefresh(ctx)
	if err != nil {
		s.logger.Warn("Suggestion generation skipped, condition listing unavailable", zap.Error(err))
		return nil
	}

	names := make([]string, 0, len(conditions))
	for _, cond := range conditions {
		if cond.DisplayName.EN != "" {
			names = append(names, cond.DisplayName.EN)
		}
	}

	ranked := closestMatches(query.Text, names, s.cfg.SuggestionLimit, s.cfg.SuggestionThreshold)
	if len(ranked) == 0 {
		return nil
	}
	out := make([]string, len(ranked))
	for i, candidate := range ranked {
		out[i] = candidate.Value
	}
	return out
}
