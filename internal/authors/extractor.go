package authors

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strings"
)

const (
	logEntryFieldSeparatorConstant = "|"
	authorFieldIndexConstant       = 1
)

// logEntryLinePattern matches the revision header lines of `svn log --quiet`
// output. Body and separator lines never match.
var logEntryLinePattern = regexp.MustCompile(`^r\d+ \| [^|]+ \| [^|]+ \| \d+ lines?$`)

// ExtractAuthors reads Subversion log output and returns the unique author
// names in ascending lexicographic order. Input without any revision header
// lines yields an empty slice.
func ExtractAuthors(logReader io.Reader) ([]string, error) {
	seenAuthorNames := map[string]struct{}{}
	lineScanner := bufio.NewScanner(logReader)
	for lineScanner.Scan() {
		logLine := lineScanner.Text()
		if !logEntryLinePattern.MatchString(logLine) {
			continue
		}
		lineFields := strings.Split(logLine, logEntryFieldSeparatorConstant)
		authorName := strings.TrimSpace(lineFields[authorFieldIndexConstant])
		seenAuthorNames[authorName] = struct{}{}
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, scanError
	}

	authorNames := make([]string, 0, len(seenAuthorNames))
	for authorName := range seenAuthorNames {
		authorNames = append(authorNames, authorName)
	}
	sort.Strings(authorNames)
	return authorNames, nil
}
