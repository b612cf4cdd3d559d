package notify

import (
	"fmt"
	"strings"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// Message templates. Silence is never ambiguous: an empty result always
// renders an explicit sentinel instead of no message at all.
const (
	greetingTemplate = "Hello %s!\nWould you like to check some issues?"

	noMissedDeadlinesMessage = "No missed deadlines.\n"
	noAvailableIssuesMessage = "No available issues.\n"

	// Remaining-time report strings.
	NotAssignedMessage        = "This issue is not assigned."
	DeadlinePassedMessage     = "Deadline has passed."
	RepositoryNotFoundMessage = "Repository details not found."

	blockSeparator = "-----------------------------------\n"
)

// Greeting renders the welcome message for a chat mention.
func Greeting(mention string) string {
	return fmt.Sprintf(greetingTemplate, mention)
}

// RepoHeader renders the banner opening a per-repository report.
func RepoHeader(author, name string) string {
	bar := strings.Repeat("=", 50)
	return fmt.Sprintf("%s\n<b>Repository: %s/%s</b>\n%s\n\n", bar, author, name, bar)
}

// IssueLink renders the issue title as an HTML anchor to its page.
func IssueLink(title, htmlURL string) string {
	if htmlURL == "" {
		return title
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, htmlURL, title)
}

// IssueDetail renders one overdue issue inside a compliance report.
func IssueDetail(rec entities.ComplianceRecord) string {
	var b strings.Builder
	b.WriteString(blockSeparator)
	b.WriteString("Issue: " + IssueLink(rec.Title, rec.HTMLURL) + "\n")
	b.WriteString("User: " + rec.Assignee + "\n")
	b.WriteString("Assigned:\n")
	b.WriteString(fmt.Sprintf("\t\t\t\tDays ago: %d\n", rec.Elapsed.Days))
	b.WriteString(blockSeparator)
	return b.String()
}

// IssueSummary renders one available issue.
func IssueSummary(issue entities.Issue) string {
	return blockSeparator + "Issue: " + IssueLink(issue.Title, issue.HTMLURL) + "\n" + blockSeparator
}

// RevisionBlock renders the reviews of one pull request.
func RevisionBlock(bundle entities.ReviewBundle) string {
	var b strings.Builder
	b.WriteString(blockSeparator)
	b.WriteString("Repository: " + bundle.Repo + "\n")
	b.WriteString("Pull request: " + bundle.PullTitle + "\n")
	b.WriteString("Reviews:\n")
	for _, r := range bundle.Reviews {
		b.WriteString(fmt.Sprintf("\t\t%s: %s\n", r.Reviewer, r.State))
	}
	b.WriteString(blockSeparator)
	return b.String()
}

// RemainingTime renders the countdown to an issue deadline.
func RemainingTime(span entities.Span) string {
	return fmt.Sprintf("Time remaining: %d days, %d hours", span.Days, span.Hours)
}

func quote(text string) string {
	return "<blockquote>" + text + "</blockquote>"
}
