package commit

import "strings"

// Split separates a raw commit message into its subject, body and footers.
//
// The subject is the first paragraph, so a message starting with a blank line
// has an empty subject. The footers are the longest run of trailer lines at
// the end of the message, and the body is whatever sits between the subject
// and the footers. An empty body is returned as "" and no footers as nil.
func Split(raw string) (string, string, Footers) {
	lines := splitLines(raw)

	sep := len(lines)
	for i, line := range lines {
		if isBlank(line) {
			sep = i
			break
		}
	}
	subject := strings.TrimSpace(strings.Join(lines[:sep], "\n"))
	if sep == len(lines) {
		return subject, "", nil
	}

	rest := lines[sep+1:]
	end := len(rest)
	for end > 0 && isBlank(rest[end-1]) {
		end--
	}

	start := end
	for start > 0 {
		if _, ok := parseFooter(trimLine(rest[start-1])); !ok {
			break
		}
		start--
	}

	var footers Footers
	for _, line := range rest[start:end] {
		f, _ := parseFooter(trimLine(line))
		footers = append(footers, f)
	}

	return subject, joinParagraphs(rest[:start]), footers
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimLine(line string) string {
	return strings.TrimRight(line, " \t")
}

// joinParagraphs joins lines after dropping blank lines at either end.
func joinParagraphs(lines []string) string {
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
