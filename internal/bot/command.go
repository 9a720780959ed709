package bot

import "strings"

// Kind tags the intent a message was classified into.
type Kind int

const (
	KindSetReminder Kind = iota
	KindSearch
	KindListAll
	KindHelp
	KindSaveNote
)

func (k Kind) String() string {
	switch k {
	case KindSetReminder:
		return "set_reminder"
	case KindSearch:
		return "search"
	case KindListAll:
		return "list_all"
	case KindHelp:
		return "help"
	case KindSaveNote:
		return "save_note"
	}
	return "unknown"
}

// Command is the result of classifying one inbound message. Payload carries
// the command's argument text, cut from the original-cased message so replies
// can echo the user's casing.
type Command struct {
	Kind    Kind
	Payload string
}

const reminderPrefix = "remind me to"

// rule matches the lower-cased message and, on a hit, extracts the payload
// from the original-cased message.
type rule struct {
	kind    Kind
	match   func(lower string) bool
	payload func(original string) string
}

// Rules are tried in order; the first hit wins. SetReminder outranks Search,
// so "remind me to find the cat" is a reminder, not a search.
var rules = []rule{
	{
		kind:    KindSetReminder,
		match:   func(l string) bool { return strings.HasPrefix(l, reminderPrefix) },
		payload: func(o string) string { return strings.TrimSpace(o[len(reminderPrefix):]) },
	},
	{
		kind: KindSearch,
		match: func(l string) bool {
			return l == "find" || l == "search" ||
				strings.HasPrefix(l, "find ") || strings.HasPrefix(l, "search ")
		},
		payload: func(o string) string {
			words := strings.Fields(o)
			return strings.Join(words[1:], " ")
		},
	},
	{
		kind:  KindListAll,
		match: func(l string) bool { return l == "show all notes" },
	},
	{
		kind:  KindHelp,
		match: func(l string) bool { return l == "help" },
	},
}

// Classify maps a trimmed message to exactly one Command. It is pure and
// total: anything no rule claims becomes a SaveNote of the full text.
func Classify(text string) Command {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if !r.match(lower) {
			continue
		}
		cmd := Command{Kind: r.kind}
		if r.payload != nil {
			cmd.Payload = r.payload(text)
		}
		return cmd
	}
	return Command{Kind: KindSaveNote, Payload: text}
}
