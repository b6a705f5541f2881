package group

import (
	"fmt"
	"strings"
)

const maxHighlights = 4

// buildSummary picks a template based on which tags are present across the
// ranked member list.
func buildSummary(members []Member) string {
	carriers := withTag(members, "Carrying")
	lurkers := withTag(members, "Lurker")
	top := members[0]

	switch {
	case len(carriers) > 0 && len(lurkers) > 0:
		return fmt.Sprintf("%s is carrying this chat while %s mostly watch from the sidelines.",
			carriers[0].Name, joinNames(lurkers))
	case len(carriers) > 0:
		return fmt.Sprintf("%s is doing the heavy lifting in this group.", carriers[0].Name)
	case len(lurkers)*2 > len(members):
		return "Most of this group is lurking — a few voices keep it going."
	case wellDistributed(members):
		return "This group has a healthy balance — everyone pulls their weight."
	default:
		return fmt.Sprintf("%s leads the conversation with %.0f%% of all messages.",
			top.Name, top.Stats.Percentage)
	}
}

// buildHighlights emits up to four callouts in priority order: the top
// contributor, the near-silent members, then any standout tags.
func buildHighlights(members []Member) []string {
	var out []string
	add := func(s string) {
		if len(out) < maxHighlights {
			out = append(out, s)
		}
	}

	top := members[0]
	add(fmt.Sprintf("%s sent the most messages (%d, %.0f%% of the chat)",
		top.Name, top.Stats.Messages, top.Stats.Percentage))

	if lurkers := withTag(members, "Lurker"); len(lurkers) > 0 {
		add(fmt.Sprintf("%s barely said a word", joinNames(lurkers)))
	}
	if ghosts := withTag(members, "Ghost"); len(ghosts) > 0 {
		add(fmt.Sprintf("%s might as well not be here", joinNames(ghosts)))
	}
	if memers := withTag(members, "Meme Lord"); len(memers) > 0 {
		add(fmt.Sprintf("%s keeps the memes coming", memers[0].Name))
	}
	if essayists := withTag(members, "Essay Writer"); len(essayists) > 0 {
		add(fmt.Sprintf("%s writes novels (%.0f words per message)",
			essayists[0].Name, essayists[0].Stats.AvgWords))
	}
	if curious := withTag(members, "Curious"); len(curious) > 0 {
		add(fmt.Sprintf("%s asks all the questions", curious[0].Name))
	}
	return out
}

func withTag(members []Member, label string) []Member {
	var out []Member
	for _, m := range members {
		for _, t := range m.Tags {
			if t.Label == label {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// wellDistributed holds when nobody dominates and nobody is invisible.
func wellDistributed(members []Member) bool {
	for _, m := range members {
		if m.Stats.Percentage > carryingShare || m.Stats.Percentage < lurkerShare {
			return false
		}
	}
	return true
}

func joinNames(members []Member) string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
