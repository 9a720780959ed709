package bot

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		kind    Kind
		payload string
	}{
		{"reminder prefix", "remind me to call Jane tomorrow at 10am", KindSetReminder, "call Jane tomorrow at 10am"},
		{"reminder mixed case", "Remind Me To Call JANE tomorrow", KindSetReminder, "Call JANE tomorrow"},
		{"reminder outranks search", "remind me to find the cat", KindSetReminder, "find the cat"},
		{"reminder with no task", "remind me to", KindSetReminder, ""},
		{"find", "find milk", KindSearch, "milk"},
		{"find mixed case keeps payload casing", "FIND Buy Milk", KindSearch, "Buy Milk"},
		{"search", "search groceries list", KindSearch, "groceries list"},
		{"bare find has empty term", "find", KindSearch, ""},
		{"bare search has empty term", "search", KindSearch, ""},
		{"finders is not a search", "finders keepers", KindSaveNote, "finders keepers"},
		{"list exact", "show all notes", KindListAll, ""},
		{"list mixed case", "Show All Notes", KindListAll, ""},
		{"list with trailing words is a note", "show all notes please", KindSaveNote, "show all notes please"},
		{"help exact", "help", KindHelp, ""},
		{"help mixed case", "HELP", KindHelp, ""},
		{"help with trailing words is a note", "help me", KindSaveNote, "help me"},
		{"fallback keeps original text", "Buy Milk #errands", KindSaveNote, "Buy Milk #errands"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Classify(tt.text)
			if cmd.Kind != tt.kind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tt.text, cmd.Kind, tt.kind)
			}
			if cmd.Payload != tt.payload {
				t.Errorf("Classify(%q).Payload = %q, want %q", tt.text, cmd.Payload, tt.payload)
			}
		})
	}
}
