package chat2pdf

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// crlfOrCR normalizes line endings before any other processing.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// messageTemplate is the fixed fragment layout for one message:
// a heading with the title-cased role and the model name, a
// timestamp line, and a body block.
const messageTemplate = `
<div>
    <div>
        <h4>
            <strong>%s</strong>
            <span style="font-size: 12px;">%s</span>
        </h4>
        <div> %s </div>
    </div>
    <br/>
    <br/>

    <div>
        %s
    </div>
</div>
<br/>
`

// messageRenderer renders one Message into an HTML fragment.
type messageRenderer struct {
	wrapWidth int
	titler    cases.Caser
	markdown  *markdownRenderer // nil = escaped plain text (default)
}

func newMessageRenderer(wrapWidth int, markdown *markdownRenderer) *messageRenderer {
	return &messageRenderer{
		wrapWidth: wrapWidth,
		titler:    cases.Title(language.Und),
		markdown:  markdown,
	}
}

// Render builds the HTML fragment for msg.
//
// All user-supplied text is escaped on the raw input; RTL
// normalization then runs on the already-escaped text. Entities
// produced by escaping (&lt; &gt; &amp;) are pure ASCII and are left
// intact by the Arabic reshaping step, so escaping is never undone.
//
// The model name is rendered only for assistant messages. Literal
// newlines become <br/> markers since the fragment is HTML.
func (r *messageRenderer) Render(ctx context.Context, msg Message) (string, error) {
	role := msg.Role
	if role == "" {
		role = RoleUser
	}
	escapedRole := html.EscapeString(role)

	model := ""
	if role == RoleAssistant {
		model = html.EscapeString(msg.Model)
	}

	dateStr := html.EscapeString(FormatTimestamp(msg.Timestamp))

	body, err := r.renderBody(ctx, msg.Content)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(messageTemplate, r.titler.String(escapedRole), model, dateStr, body), nil
}

// renderBody processes message content into HTML.
// RTL content always takes the escaped path: reshaped text is no
// longer valid markdown source.
func (r *messageRenderer) renderBody(ctx context.Context, content string) (string, error) {
	content = crlfOrCR.ReplaceAllString(content, "\n")

	if r.markdown != nil && !ContainsRTL(content) {
		return r.markdown.Fragment(ctx, content)
	}

	escaped := html.EscapeString(content)
	if ContainsRTL(escaped) {
		escaped = FixRTL(escaped, r.wrapWidth)
	}
	return strings.ReplaceAll(escaped, "\n", "<br/>"), nil
}
