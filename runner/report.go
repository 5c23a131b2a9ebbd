package runner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeffrom/commitlint/rule"
)

// Results are the outcome of checking one or more messages, in the order they
// were checked.
type Results []*Result

// Counts returns the number of error and warning level violations.
func (rs Results) Counts() (int, int) {
	var errs, warnings int
	for _, res := range rs {
		errs += len(res.Errors())
		warnings += len(res.Warnings())
	}
	return errs, warnings
}

// Err returns a CheckFailure if any violation is at error level.
func (rs Results) Err() error {
	if errs, _ := rs.Counts(); errs > 0 {
		return CheckFailure{Results: rs}
	}
	return nil
}

type reportStyles struct {
	title   lipgloss.Style
	id      lipgloss.Style
	rule    lipgloss.Style
	levels  map[rule.Level]lipgloss.Style
	summary lipgloss.Style
}

// newReportStyles binds styles to w so that colors are only used when w is a
// terminal.
func newReportStyles(w io.Writer) reportStyles {
	re := lipgloss.NewRenderer(w)
	return reportStyles{
		title: re.NewStyle().Bold(true),
		id:    re.NewStyle().Foreground(lipgloss.Color("245")),
		rule:  re.NewStyle().Foreground(lipgloss.Color("242")),
		levels: map[rule.Level]lipgloss.Style{
			rule.LevelError:   re.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			rule.LevelWarning: re.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		summary: re.NewStyle().Bold(true),
	}
}

// WriteSummary writes every violation, grouped by message.
func (rs Results) WriteSummary(w io.Writer) error {
	styles := newReportStyles(w)
	bw := bufio.NewWriter(w)

	for _, res := range rs {
		if len(res.Violations) == 0 {
			continue
		}
		title := res.Message.Header()
		if title == "" {
			title = "<empty subject>"
		}
		bw.WriteString(styles.title.Render(title))
		if res.CommitID != "" {
			bw.WriteString(" ")
			bw.WriteString(styles.id.Render("(" + shortID(res.CommitID) + ")"))
		}
		bw.WriteString("\n")

		for _, v := range res.Violations {
			bw.WriteString("  ")
			bw.WriteString(styles.levels[v.Level].Render(fmt.Sprintf("%-7s", v.Level)))
			bw.WriteString(" ")
			bw.WriteString(v.Message)
			bw.WriteString(" ")
			bw.WriteString(styles.rule.Render("[" + v.Rule + "]"))
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
	}

	errs, warnings := rs.Counts()
	if errs+warnings > 0 {
		bw.WriteString(styles.summary.Render(fmt.Sprintf("%d error(s), %d warning(s)", errs, warnings)))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

type jsonReport struct {
	Results  Results `json:"results"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
}

func (rs Results) WriteJSON(w io.Writer) error {
	errs, warnings := rs.Counts()
	if rs == nil {
		rs = Results{}
	}
	b, err := json.MarshalIndent(jsonReport{Results: rs, Errors: errs, Warnings: warnings}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
