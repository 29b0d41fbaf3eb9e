// Package selection tracks which dashboard nodes are currently selected.
//
// State is an immutable value: every transition returns a new State and the
// view-query functions receive it as an argument rather than reading
// ambient globals. The LLM axis and the psychology/theory axis are
// orthogonal; transitions on one never touch the other.
package selection

// State holds the current selections. Empty string means nothing selected
// on that axis. A theory can only be selected under a psychology topic.
type State struct {
	LLMTopic   string `json:"llm_topic,omitempty"`
	PsychTopic string `json:"psych_topic,omitempty"`
	Theory     string `json:"theory,omitempty"`
}

// ToggleLLMTopic selects the given LLM topic, or clears the selection when
// it is already the selected one (re-click toggles off).
func (s State) ToggleLLMTopic(key string) State {
	if s.LLMTopic == key {
		s.LLMTopic = ""
	} else {
		s.LLMTopic = key
	}
	return s
}

// TogglePsychTopic selects the given psychology topic, or clears it on
// re-click. Changing or clearing the topic always clears any selected
// theory, since theories are scoped to their topic.
func (s State) TogglePsychTopic(key string) State {
	if s.PsychTopic == key {
		s.PsychTopic = ""
	} else {
		s.PsychTopic = key
	}
	s.Theory = ""
	return s
}

// SelectTheory selects the given theory under the current psychology topic,
// replacing any previous theory selection. Without a selected psychology
// topic the state is unchanged.
func (s State) SelectTheory(name string) State {
	if s.PsychTopic == "" {
		return s
	}
	s.Theory = name
	return s
}

// ToggleTheory selects the given theory under the current psychology topic,
// or clears it on re-click. Without a selected psychology topic the state
// is unchanged.
func (s State) ToggleTheory(name string) State {
	if s.PsychTopic == "" {
		return s
	}
	if s.Theory == name {
		s.Theory = ""
	} else {
		s.Theory = name
	}
	return s
}

// Reset clears all selections.
func (s State) Reset() State {
	return State{}
}

// Idle reports whether nothing is selected on either axis.
func (s State) Idle() bool {
	return s == State{}
}
