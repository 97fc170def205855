package letters

import (
	"fmt"

	"github.com/MiraiSubject/CoteValentines2023/model"
)

// EventFooter is stamped on every embed the bot sends.
const EventFooter = "2023 Classroom of the Elite Valentine's Event"

// PublishTitle is the outward-facing title of a letter. Anonymous letters
// must never reveal who sent them, so the sender only appears on named ones.
func PublishTitle(letter *model.Letter) string {
	if letter.Anonymous {
		return fmt.Sprintf("To %s", letter.Recipient)
	}
	return fmt.Sprintf("From %s to %s", letter.SenderName, letter.Recipient)
}

// AuditTitle is the title used in the mod-only audit channel. The sender is
// always shown there; anonymous letters are just marked as such.
func AuditTitle(letter *model.Letter) string {
	if letter.Anonymous {
		return fmt.Sprintf("ANONYMOUSLY SENT: From %s to %s", letter.SenderName, letter.Recipient)
	}
	return fmt.Sprintf("From %s to %s", letter.SenderName, letter.Recipient)
}

// DeletedTitle annotates a retracted letter's audit message.
func DeletedTitle(letter *model.Letter) string {
	if letter.Anonymous {
		return fmt.Sprintf("Deleted: Sent anonymously by %s to %s", letter.SenderName, letter.Recipient)
	}
	return fmt.Sprintf("Deleted: Sent by %s to %s", letter.SenderName, letter.Recipient)
}

// TruncateEllipse shortens s to at most max runes, appending "..." when
// anything was cut.
func TruncateEllipse(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
