package service

import "strings"

// AcceptedVariants splits a reference answer into its normalized variants.
// Both "," and "/" separate variants. The result keeps first-seen order
// without duplicates.
func AcceptedVariants(reference string) []string {
	pieces := strings.Split(strings.ReplaceAll(reference, "/", ","), ",")

	variants := make([]string, 0, len(pieces))
	seen := make(map[string]struct{}, len(pieces))
	for _, piece := range pieces {
		v := normalizeAnswer(piece)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}

// IsCorrect reports whether the answer equals one of the reference variants,
// ignoring case and surrounding whitespace
func IsCorrect(answer, reference string) bool {
	normalized := normalizeAnswer(answer)
	for _, v := range AcceptedVariants(reference) {
		if v == normalized {
			return true
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
