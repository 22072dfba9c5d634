package kb

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"wellness-bot/textutil"
)

// overrideUnresolved marks a curated phrase that deliberately resolves to
// nothing: the query is recognized but intentionally left unmatched.
const overrideUnresolved = ""

// manualOverrides maps curated synonym phrases to canonical ids. Checked
// before the automatic per-condition alias scan, so an entry here redirects a
// phrase even when the extractor would map it elsewhere.
var manualOverrides = map[string]string{
	"Persistent Headache": "Headache",
	"Child Fever":         "Fever",
	"Feeling Drained":     "Fatigue",
	"Overwhelmed Emotion": "Emotional Wellness",
	"Elderly Cough Care":  "Cough",
}

// aliasSnapshot is one immutable build of the index. Lookups read whichever
// snapshot was published when they started; reloads construct a complete new
// snapshot and swap the pointer, so in-flight resolutions never observe a
// partially updated index.
type aliasSnapshot struct {
	ids     []string
	aliases map[string]map[string][]string // id -> lang -> folded aliases
}

// AliasIndex owns the canonical-id -> alias mapping. It is built once at
// startup, read-only at request time, and rebuilt wholesale on reload.
type AliasIndex struct {
	snap      atomic.Pointer[aliasSnapshot]
	overrides map[string]string // folded phrase -> canonical id
	logger    *zap.Logger
}

// NewAliasIndex returns an empty index with the curated override table
// installed. Call Reload to populate it from the store.
func NewAliasIndex(logger *zap.Logger) *AliasIndex {
	overrides := make(map[string]string, len(manualOverrides))
	for phrase, canonical := range manualOverrides {
		overrides[textutil.Fold(phrase)] = canonical
	}

	idx := &AliasIndex{overrides: overrides, logger: logger}
	idx.snap.Store(&aliasSnapshot{aliases: map[string]map[string][]string{}})
	return idx
}

// Reload rebuilds the index from the store's conditions merged with an
// optional precomputed alias map, then publishes the result atomically.
// If the store is unreachable the previous snapshot stays published and the
// error is returned; a first-build failure leaves the index empty, which
// degrades the exact/substring tiers to misses rather than crashing.
func (idx *AliasIndex) Reload(ctx context.Context, store Store, extra AliasMap) error {
	conditions, err := store.AllConditions(ctx)
	if err != nil {
		idx.logger.Warn("Alias index reload failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	snap := &aliasSnapshot{aliases: make(map[string]map[string][]string, len(conditions))}
	owner := make(map[string]string) // folded alias -> canonical id

	addAlias := func(id, lang, alias string) {
		folded := textutil.Fold(alias)
		if folded == "" {
			return
		}
		// Aliases are many-to-one: an alias already claimed by another
		// condition is skipped so expansion stays unambiguous.
		if prev, ok := owner[lang+"\x00"+folded]; ok {
			if prev != id {
				idx.logger.Debug("Skipping ambiguous alias",
					zap.String("alias", folded),
					zap.String("kept", prev),
					zap.String("skipped", id))
			}
			return
		}
		owner[lang+"\x00"+folded] = id
		snap.aliases[id][lang] = append(snap.aliases[id][lang], folded)
	}

	for _, cond := range conditions {
		snap.ids = append(snap.ids, cond.CanonicalID)
		snap.aliases[cond.CanonicalID] = map[string][]string{}

		for _, alias := range GenerateAliases(cond.DisplayName.EN, LangEnglish) {
			addAlias(cond.CanonicalID, LangEnglish, alias)
		}
		for _, alias := range GenerateAliases(cond.DisplayName.HI, LangHindi) {
			addAlias(cond.CanonicalID, LangHindi, alias)
		}

		for lang, aliases := range extra[cond.CanonicalID] {
			for _, alias := range aliases {
				addAlias(cond.CanonicalID, lang, alias)
			}
		}
	}

	idx.snap.Store(snap)
	idx.logger.Info("Alias index rebuilt",
		zap.Int("conditions", len(snap.ids)),
		zap.Int("aliases", len(owner)))
	return nil
}

// AliasesFor returns the folded aliases for canonicalID in lang, in insertion
// order with the condition's own display name first.
func (idx *AliasIndex) AliasesFor(canonicalID, lang string) []string {
	langs, ok := idx.snap.Load().aliases[canonicalID]
	if !ok {
		return nil
	}
	return langs[lang]
}

// CanonicalIDs returns every indexed canonical id in load order.
func (idx *AliasIndex) CanonicalIDs() []string {
	return idx.snap.Load().ids
}

// ResolveOverride checks the curated override table for an exact folded-phrase
// match. deliberate is true when the phrase is recognized but intentionally
// mapped to nothing.
func (idx *AliasIndex) ResolveOverride(foldedQuery string) (canonical string, deliberate, ok bool) {
	canonical, ok = idx.overrides[foldedQuery]
	if !ok {
		return "", false, false
	}
	if canonical == overrideUnresolved {
		return "", true, true
	}
	return canonical, false, true
}
