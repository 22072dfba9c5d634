package kb

import (
	"encoding/json"
	"os"

	apperrors "wellness-bot/errors"
)

// AliasMap is the precomputed alias structure produced by the offline alias
// extractor: canonical id -> language code -> alias strings.
type AliasMap map[string]map[string][]string

// LoadAliasFile reads a precomputed alias JSON file. A missing file is not an
// error; the index simply builds from generated aliases alone.
func LoadAliasFile(path string) (AliasMap, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.WrapErrorf(err, "failed to read alias file %s", path)
	}

	var aliases AliasMap
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, apperrors.WrapErrorf(err, "failed to parse alias file %s", path)
	}
	return aliases, nil
}
