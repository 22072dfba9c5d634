package resolver

import (
	"context"

	"go.uber.org/zap"

	apperrors "wellness-bot/errors"
	"wellness-bot/kb"
)

// aggregate fetches the matched conditions and merges them into one bilingual
// answer. Stale index entries (not found in the store) are skipped; any other
// store failure propagates so the caller can distinguish infrastructure
// trouble from "no match". Returns a nil answer when nothing survived.
func (s *Service) aggregate(ctx context.Context, matches []Match) (*Answer, []Match, error) {
	type entry struct {
		match Match
		cond  kb.Condition
	}

	var entries []entry
	for _, match := range matches {
		cond, err := s.store.GetCondition(ctx, match.CanonicalID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				s.logger.Debug("Matched condition missing from store, skipping",
					zap.String("canonical_id", match.CanonicalID))
				continue
			}
			return nil, nil, apperrors.WrapErrorf(err, "failed to fetch condition %q", match.CanonicalID)
		}
		match.IntentCategory = cond.IntentCategory
		entries = append(entries, entry{match: match, cond: cond})
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}

	// Near-duplicate display names collapse to the first occurrence, so two
	// aliases of essentially the same condition phrased two ways don't
	// produce a doubled answer.
	var kept []entry
	for _, e := range entries {
		duplicate := false
		for _, existing := range kept {
			if similarityRatio(e.cond.CanonicalID, existing.cond.CanonicalID) >= s.cfg.DedupThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, e)
		}
	}

	answer := &Answer{}
	keptMatches := make([]Match, 0, len(kept))
	for _, e := range kept {
		keptMatches = append(keptMatches, e.match)
		answer.Conditions = append(answer.Conditions, e.cond.DisplayName)
		answer.Description = concatBilingual(answer.Description, e.cond.Description)
		answer.Symptoms = concatBilingual(answer.Symptoms, e.cond.Symptoms)
		answer.FirstAid = concatBilingual(answer.FirstAid, e.cond.FirstAid)
		answer.Prevention = concatBilingual(answer.Prevention, e.cond.Prevention)
		// Disclaimers are near-duplicate boilerplate; keep the last non-empty
		// one per language instead of concatenating.
		if e.cond.Disclaimer.EN != "" {
			answer.Disclaimer.EN = e.cond.Disclaimer.EN
		}
		if e.cond.Disclaimer.HI != "" {
			answer.Disclaimer.HI = e.cond.Disclaimer.HI
		}
	}
	return answer, keptMatches, nil
}

func concatBilingual(acc, next kb.Bilingual) kb.Bilingual {
	return kb.Bilingual{
		EN: concatField(acc.EN, next.EN),
		HI: concatField(acc.HI, next.HI),
	}
}

func concatField(acc, next string) string {
	if next == "" {
		return acc
	}
	if acc == "" {
		return next
	}
	return acc + "\n" + next
}
