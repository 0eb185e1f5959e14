package issues

import (
	"regexp"
	"strconv"
)

const placeholder = "${PATTERN_GROUP}"

var placeholderRegex = regexp.MustCompile(`\$\{PATTERN_GROUP(?:_(0|[1-9]\d*))?\}`)

// RenderLink substitutes ${PATTERN_GROUP} with match[0] and ${PATTERN_GROUP_i}
// with match[i]. Substitution is a single pass over the template, so matched
// text is inserted literally and never re-expanded. Placeholders for groups
// the match does not have are left as they are.
func RenderLink(template string, match []string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(ph string) string {
		sub := placeholderRegex.FindStringSubmatch(ph)
		if sub[1] == "" {
			if len(match) == 0 {
				return ph
			}
			return match[0]
		}

		i, err := strconv.Atoi(sub[1])
		if err != nil || i >= len(match) {
			return ph
		}
		return match[i]
	})
}
